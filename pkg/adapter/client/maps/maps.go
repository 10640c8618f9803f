// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package maps adapts a simulated geocoding backend to the
// carsuc.Geocoder capability interface. Instead of calling a real
// geocoding service, it resolves every coordinate pair to an address
// from a fixed table, mimicking the mock address provider which the
// vehicles system is expected to run against. Swapping in a real
// backend only requires another implementation of the same interface.
package maps

import (
	"context"
	"math/rand/v2"

	"github.com/momeni/vehicles-api/pkg/core/model"
)

// addresses is the fixed table which the simulated backend serves.
var addresses = []string{
	"777 Brockton Avenue, Abington MA 2351",
	"30 Memorial Drive, Avon MA 2322",
	"250 Hartford Avenue, Bellingham MA 2019",
	"700 Oak Street, Brockton MA 2301",
	"66-4 Parkhurst Rd, Chelmsford MA 1824",
	"591 Memorial Dr, Chicopee MA 1020",
	"55 Brooksby Village Way, Danvers MA 1923",
	"137 Teaticket Hwy, East Falmouth MA 2536",
	"42 Fairhaven Commons Way, Fairhaven MA 2719",
	"374 William S Canning Blvd, Fall River MA 2721",
}

// Client is a simulated implementation of the carsuc.Geocoder
// interface. It is safe to be used concurrently.
type Client struct {
	pick func(n int) int
}

// New instantiates a simulated geocoding client which picks addresses
// randomly.
func New() *Client {
	return &Client{pick: rand.IntN}
}

// Resolve returns the given location with its Address field populated
// by the simulated backend. Coordinates are kept intact. It never
// fails, as the whole address table is local.
func (c *Client) Resolve(_ context.Context, loc model.Location) (model.Location, error) {
	loc.Address = addresses[c.pick(len(addresses))]
	return loc, nil
}
