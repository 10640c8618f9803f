// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Location represents a geographical location with a latitude and
// longitude, optionally augmented with a resolved street address.
// Only the coordinates are persisted. The Address is filled by the
// external geocoding collaborator on each read path and is excluded
// from the database columns.
type Location struct {
	Lat float64 `gorm:"column:latitude"`  // latitude of the location
	Lon float64 `gorm:"column:longitude"` // longitude of the location

	Address string `gorm:"-"` // resolved address, derived data
}
