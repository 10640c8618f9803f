// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/momeni/vehicles-api/pkg/adapter/config"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/carsrp"
	"github.com/momeni/vehicles-api/pkg/core/repo"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For a fresh installation, the init sub-command creates the cars table
in the database which is specified by the configuration file.`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the cars inventory database schema",
	Long: `Initialize the cars inventory database schema by creating
the cars table. The database connection information are read from the
config file. An existing cars table is left intact, so this action may
be repeated idempotently.`,
	RunE: initDB,
	Args: cobra.NoArgs,
}

func initDB(_ *cobra.Command, _ []string) error {
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
	err = p.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		return carsrp.InitSchema(ctx, conn)
	})
	if err != nil {
		return fmt.Errorf("initializing cars schema: %w", err)
	}
	return nil
}

func init() {
	dbCmd.AddCommand(initCmd)
	rootCmd.AddCommand(dbCmd)
}
