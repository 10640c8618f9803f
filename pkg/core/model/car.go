// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., as required by ORM
// libraries) since adding more tags does not complicate definition of
// a struct, but can prevent unnecessary structs duplication.
package model

import "time"

// Car models a vehicle listing which may be persisted in a database.
// The ID field is assigned by the cars repository upon creation and
// stays stable afterwards. The Price and the Location.Address fields
// are derived data. They are computed by the external pricing and
// geocoding collaborators whenever a car is read or written back to
// a client and are never persisted, hence, their exclusion from the
// database columns by the gorm-specific tags.
type Car struct {
	ID        int64     // unique identifier, assigned by the store
	Condition Condition // NEW or USED
	Details   Details   `gorm:"embedded"` // physical attributes
	Location  Location  `gorm:"embedded"` // current geo-location

	// Price is a human-readable formatted price such as "USD 1234.56"
	// as reported by the pricing service for this car ID.
	Price string `gorm:"-"`

	CreatedAt  time.Time // creation time, assigned by the store
	ModifiedAt time.Time `gorm:"autoUpdateTime"` // last update time
}

// Details groups the physical and manufacturing attributes of a Car.
// It has no identity of its own. A car update replaces the entire
// Details value and never patches it field by field.
type Details struct {
	Manufacturer   Manufacturer `gorm:"embedded"`
	Model          string
	NumberOfDoors  int
	FuelType       string
	Engine         string
	Mileage        int
	ModelYear      int
	ProductionYear int
	ExternalColor  string
	Body           string
}

// Manufacturer is an immutable value type identifying the maker of a
// car by a numeric code and a display name, e.g., (101, "Chevrolet").
type Manufacturer struct {
	Code int
	Name string
}
