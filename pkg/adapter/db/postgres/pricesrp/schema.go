// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package pricesrp

import (
	"context"
	"fmt"

	"github.com/momeni/vehicles-api/pkg/core/repo"
)

const createTable = `
CREATE TABLE IF NOT EXISTS prices (
    id BIGINT PRIMARY KEY,
    currency VARCHAR(3) NOT NULL,
    price NUMERIC(19, 4) NOT NULL
)`

// InitSchema creates the prices table if it does not exist yet.
// It is idempotent, so the db init command may run it repeatedly.
// The id column has no foreign key towards any cars table on purpose.
// Prices live in the vehicles identifier space by a caller-side
// convention only.
func InitSchema(ctx context.Context, c repo.Conn) error {
	if _, err := c.Exec(ctx, createTable); err != nil {
		return fmt.Errorf("creating prices table: %w", err)
	}
	return nil
}
