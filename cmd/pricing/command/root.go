// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the pricing
// web service. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db"
// sub-command can be used for the database schema initialization and
// seeding of the initial price records.
//
//	./pricing [-c /path/of/main/config.yaml]         # start web server
//	./pricing db init [-c /path/of/main/config.yaml]
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/momeni/vehicles-api/pkg/adapter/config"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/routes"
	"github.com/momeni/vehicles-api/pkg/core/log"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "pricing",
	Short: "A standalone web service for vehicle price quotations",
	Long: `A standalone web service for vehicle price quotations which
maintains one price record per vehicle ID in a PostgreSQL database.
It exposes generic CRUD operations over the price records in addition
to a price lookup operation which is consumed by the vehicles web
service whenever a car representation has to be enriched with its
current price quotation.`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	var e *gin.Engine = c.Gin.NewEngine()
	if err = routes.RegisterPricing(e, p); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	log.Info(
		ctx, "starting pricing web server",
		slog.String("addr", c.Server.Addr),
	)
	if err = e.Run(c.Server.Addr); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(setupLogger, fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// setupLogger replaces the default textual slog logger with a JSON
// handler, so log records of all commands are machine-parsable.
func setupLogger() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/pricing.yaml"
	}
}
