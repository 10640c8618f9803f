// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsuc

import "errors"

// Option is a functional option for the cars use case.
type Option func(uc *UseCase) error

// WithoutListEnrichment option configures a cars UseCase instance to
// skip the per-car pricing and geocoding calls during the List use
// case. By default, listed cars are enriched exactly like individually
// fetched cars. Skipping trades that uniformity for one remote call
// less per listed car, which an operator may prefer for large fleets.
// This option may be passed to the New() function.
func WithoutListEnrichment() Option {
	return func(uc *UseCase) error {
		if !uc.enrichListing {
			return errors.New("list enrichment is already disabled")
		}
		uc.enrichListing = false
		return nil
	}
}
