// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the vehicles
// web service. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db"
// sub-command can be used for the database schema initialization.
//
//	./vehicles [-c /path/of/main/config.yaml]        # start web server
//	./vehicles db init [-c /path/of/main/config.yaml]
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
	Use:   "vehicles",
	Short: "A REST API for the cars inventory",
	Long: `A REST API for the cars inventory which maintains the car
records in a PostgreSQL database and serves them over a hypermedia
REST interface. Served car representations are enriched on the fly by
consulting the standalone pricing web service for the current price
quotation of each vehicle and a maps client for resolution of the
human readable address of each car location coordinates.
The inventory CRUD operations and the price querying operation are
implemented as independent use cases over a shared connections pool,
keeping the core models and use cases layers independent of the
third-party dependent adapters layer.`,
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
	if err = routes.RegisterVehicles(e, p, c); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	log.Info(
		ctx, "starting vehicles web server",
		slog.String("addr", c.Server.Addr),
		slog.String("pricing", c.Pricing.BaseURL),
	)
	if err = e.Run(c.Server.Addr); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
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
// By the way, default value is not necessarily a single path and may
// check several paths sequentially and take the highest priority one
// among the existing paths. For example, a user-specific path may take
// precedence over a file in /etc which is selected over a file in /usr.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/vehicles.yaml"
	}
}
