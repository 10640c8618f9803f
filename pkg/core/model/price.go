// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price models a price record which is owned by the pricing service.
// The ID lives in the same identifier space as the Car.ID by an
// external convention which is enforced only by the pricing client,
// not by a database constraint. A price record has a lifecycle which
// is independent of any car record.
type Price struct {
	ID       int64           // vehicle identifier, externally assigned
	Currency string          // ISO 4217 currency code, e.g., "USD"
	Amount   decimal.Decimal `gorm:"column:price"` // monetary amount
}

// Format renders the price as the human-readable string which the
// vehicles API reports for a car, e.g., "USD 1234.56". The amount is
// always rendered with two fractional digits.
func (p Price) Format() string {
	return fmt.Sprintf("%s %s", p.Currency, p.Amount.StringFixed(2))
}
