// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsrp

import (
	"context"
	"fmt"

	"github.com/momeni/vehicles-api/pkg/core/repo"
)

const createTable = `
CREATE TABLE IF NOT EXISTS cars (
    id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    condition VARCHAR(8) NOT NULL,
    code INTEGER NOT NULL,
    name VARCHAR(80) NOT NULL,
    model VARCHAR(80) NOT NULL,
    number_of_doors INTEGER NOT NULL DEFAULT 0,
    fuel_type VARCHAR(40) NOT NULL DEFAULT '',
    engine VARCHAR(80) NOT NULL DEFAULT '',
    mileage INTEGER NOT NULL DEFAULT 0,
    model_year INTEGER NOT NULL DEFAULT 0,
    production_year INTEGER NOT NULL DEFAULT 0,
    external_color VARCHAR(40) NOT NULL DEFAULT '',
    body VARCHAR(40) NOT NULL DEFAULT '',
    latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
    longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    modified_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// InitSchema creates the cars table if it does not exist yet.
// It is idempotent, so the db init command may run it repeatedly.
func InitSchema(ctx context.Context, c repo.Conn) error {
	if _, err := c.Exec(ctx, createTable); err != nil {
		return fmt.Errorf("creating cars table: %w", err)
	}
	return nil
}
