// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config loads the YAML configuration settings of the
// vehicles and pricing services. Both services share one Config
// struct. The pricing service simply leaves the vehicles-specific
// sections, such as the pricing client settings, at their defaults.
// It is preferred to implement Config with primitive fields or other
// structs which are defined locally, not models or structs which are
// defined in lower layers, so the configuration can be kept intact
// while other layers can change freely.
package config

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/momeni/vehicles-api/pkg/adapter/client/maps"
	"github.com/momeni/vehicles-api/pkg/adapter/client/prices"
	"github.com/momeni/vehicles-api/pkg/adapter/config/settings"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin"
	"github.com/momeni/vehicles-api/pkg/core/log"
	"github.com/momeni/vehicles-api/pkg/core/repo"
	"github.com/momeni/vehicles-api/pkg/core/usecase/carsuc"
	"gopkg.in/yaml.v3"
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Server   Server   // HTTP listener settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Pricing  Pricing  // pricing service client settings
	Usecases Usecases // Configuration settings for supported use cases
}

// Database contains the database related configuration settings.
type Database struct {
	Host string // domain name or IP address of the DBMS server
	Port int    // port number of the DBMS server
	Name string // database name, like vehicles or pricing
	User string // database role name
	Pass string // password of the database role

	// SSLMode is passed through as the sslmode URL parameter and
	// defaults to "disable" which suits local deployments.
	SSLMode string `yaml:"ssl-mode"`
}

// URL assembles the connection URL of the configured database.
func (d Database) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(d.User), url.QueryEscape(d.Pass),
		net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		d.Name, d.SSLMode,
	)
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `c` settings.
func (c *Config) ConnectionPool(ctx context.Context) (repo.Pool, error) {
	p, err := postgres.NewPool(ctx, c.Database.URL())
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	return p, nil
}

// Server contains the HTTP listener related configuration settings.
type Server struct {
	// Addr is the listening address like ":8080" or "127.0.0.1:8080".
	Addr string
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized, in which case they take their default
// values during the validation phase.
type Gin struct {
	Logger   *bool // Whether to register the gin.Logger() middleware
	Recovery *bool // Whether to register the gin.Recovery() middleware
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings. The request-id middleware is registered
// unconditionally, so responses of both services are correlatable.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 3)
	middlewares = append(middlewares, gin.RequestID())
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// Pricing contains the pricing service client settings which are
// used by the vehicles service alone.
type Pricing struct {
	// BaseURL locates the pricing service like "http://localhost:8082"
	BaseURL string `yaml:"base-url"`

	// Timeout bounds each price lookup HTTP request.
	// A nil value delegates the choice to the client default.
	Timeout *settings.Duration
}

// NewClient instantiates the pricing HTTP client based on the `p`
// settings.
func (p Pricing) NewClient() *prices.Client {
	var timeout time.Duration
	if p.Timeout != nil {
		timeout = time.Duration(*p.Timeout)
	}
	return prices.New(p.BaseURL, timeout)
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Cars Cars // cars use cases related settings
}

// Cars contains the configuration settings for the cars use cases.
type Cars struct {
	// EnrichListing reports whether listed cars should be enriched
	// with their price and resolved address like individually fetched
	// cars. A nil value enables the enrichment (the default policy).
	EnrichListing *bool `yaml:"enrich-listing"`
}

// NewUseCase instantiates a new cars use case based on the settings
// in the `c` struct.
func (c Cars) NewUseCase(
	p repo.Pool, r repo.Cars, pricer carsuc.Pricer, geocoder carsuc.Geocoder,
) (*carsuc.UseCase, error) {
	opts := make([]carsuc.Option, 0, 1)
	if c.EnrichListing != nil && !*c.EnrichListing {
		opts = append(opts, carsuc.WithoutListEnrichment())
	}
	return carsuc.New(p, r, pricer, geocoder, opts...)
}

// NewGeocoder instantiates the simulated geocoding client.
// It takes no settings currently, but keeps the instantiation
// decision in the config layer beside the other adapters.
func (c *Config) NewGeocoder() *maps.Client {
	return maps.New()
}

// Load reads the configuration file from the given path, deserializes
// its YAML contents, validates them, and normalizes missing settings
// to their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize checks the loaded settings and returns an
// error if they are not acceptable. It can also modify settings in
// order to normalize them or replace some zero values with their
// expected default values (if any). So, it takes a pointer receiver
// instead of a non-reference receiver (in contrast to other methods).
func (c *Config) ValidateAndNormalize() error {
	d := &c.Database
	switch {
	case d.Host == "":
		return errors.New("database host is required")
	case d.Name == "":
		return errors.New("database name is required")
	case d.User == "":
		return errors.New("database user is required")
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	t := true
	if c.Gin.Logger == nil {
		c.Gin.Logger = &t
	}
	if c.Gin.Recovery == nil {
		c.Gin.Recovery = &t
	}
	if p := c.Pricing.Timeout; p != nil && *p <= 0 {
		log.Warn(
			context.Background(),
			"ignoring non-positive pricing timeout",
			log.Valuer("timeout", p),
		)
		c.Pricing.Timeout = nil
	}
	return nil
}
