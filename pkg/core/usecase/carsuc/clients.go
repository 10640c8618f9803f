// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsuc

import (
	"context"

	"github.com/momeni/vehicles-api/pkg/core/model"
)

// Pricer is the external pricing capability. It resolves a vehicle ID
// to a human-readable formatted price string such as "USD 1234.56".
// An implementation is expected to return a cerr.Error with the
// not-found status when no price record exists for the given ID and
// with the service-unavailable status when the pricing collaborator
// cannot answer at all.
type Pricer interface {
	PriceOf(ctx context.Context, vehicleID int64) (string, error)
}

// Geocoder is the external geocoding capability. It takes a location
// with its latitude and longitude coordinates and returns a location
// with the Address field populated, keeping coordinates intact.
// It is a pure function of the coordinates and holds no state.
type Geocoder interface {
	Resolve(ctx context.Context, loc model.Location) (model.Location, error)
}
