// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/momeni/vehicles-api/pkg/adapter/config"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/pricesrp"
	"github.com/momeni/vehicles-api/pkg/core/repo"
	"github.com/momeni/vehicles-api/pkg/core/usecase/pricinguc"
	"github.com/spf13/cobra"
)

// seededVehicles is the number of vehicle IDs which obtain an initial
// price record when a fresh database is seeded.
const seededVehicles = 20

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For a fresh installation, the init sub-command creates the prices
table in the database which is specified by the configuration file
and seeds it with one price record per known vehicle ID.`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize and seed the prices database schema",
	Long: `Initialize the prices database schema by creating the prices
table and seeding it with randomized USD price records for vehicle IDs
1 through ` + fmt.Sprint(seededVehicles) + `. The database connection
information are read from the config file. This action fails if the
prices table is already seeded since price records conflict on their
vehicle ID.`,
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
		return pricesrp.InitSchema(ctx, conn)
	})
	if err != nil {
		return fmt.Errorf("initializing prices schema: %w", err)
	}
	prices := pricinguc.New(p, pricesrp.New())
	if err = prices.Seed(ctx, seededVehicles); err != nil {
		return fmt.Errorf("seeding price records: %w", err)
	}
	return nil
}

func init() {
	dbCmd.AddCommand(initCmd)
	rootCmd.AddCommand(dbCmd)
}
