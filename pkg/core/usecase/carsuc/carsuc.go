// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsuc contains the cars UseCase which aggregates the cars
// repository with the external pricing and geocoding collaborators.
// It supports five use cases:
//  1. Saving a car (creating or updating it),
//  2. Finding a car by its ID,
//  3. Listing all cars,
//  4. Deleting a car,
//  5. Looking up the formatted price of a vehicle ID.
//
// Every car which leaves this use case through a read path or a write
// echo is enriched, that is, its price and resolved address fields are
// populated by the external collaborators. Enrichment faults are
// fatal for the enclosing operation and propagate to the caller.
package carsuc

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/log"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

// UseCase represents a cars use case. It holds a database connection
// pool, the cars repository instance (to be guided with the DB pool),
// and the two external capability instances which fill the derived
// price and address fields of each reported car.
type UseCase struct {
	pool   repo.Pool
	carsrp repo.Cars

	pricer   Pricer
	geocoder Geocoder

	enrichListing bool
}

// New instantiates a cars use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	p repo.Pool, c repo.Cars, pricer Pricer, geocoder Geocoder,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{
		pool:     p,
		carsrp:   c,
		pricer:   pricer,
		geocoder: geocoder,

		enrichListing: true,
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	return uc, nil
}

// Save use case persists the given car. A car with a zero ID is
// created, obtaining a fresh store-assigned ID. A car with a non-zero
// ID replaces the condition, details, and location of the existing
// record wholesale, running as a single transaction, and fails with
// a not-found error if no such record exists.
// The stored car is echoed back after enrichment.
func (cars *UseCase) Save(ctx context.Context, car *model.Car) (saved *model.Car, err error) {
	if car.ID == 0 {
		err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
			q := cars.carsrp.Conn(c)
			saved, err = q.Create(ctx, car)
			return err
		})
	} else {
		err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
			return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
				q := cars.carsrp.Tx(tx)
				saved, err = q.Update(ctx, car.ID, car)
				return err
			})
		})
	}
	if err != nil {
		return nil, err
	}
	if err = cars.enrich(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// FindByID use case reads the car which is identified by id and
// enriches it. It fails with a not-found error if the store has no
// such car and propagates any collaborator fault.
func (cars *UseCase) FindByID(ctx context.Context, id int64) (car *model.Car, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := cars.carsrp.Conn(c)
		car, err = q.Find(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err = cars.enrich(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// List use case reads all stored cars and enriches each of them
// uniformly, so a listed car and an individually fetched car report
// the same derived fields. The WithoutListEnrichment option disables
// the enrichment step of this use case only.
func (cars *UseCase) List(ctx context.Context) (all []*model.Car, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := cars.carsrp.Conn(c)
		all, err = q.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !cars.enrichListing {
		return all, nil
	}
	for _, car := range all {
		if err = cars.enrich(ctx, car); err != nil {
			return nil, err
		}
	}
	return all, nil
}

// Delete use case removes the car which is identified by id, failing
// with a not-found error if no such car exists.
func (cars *UseCase) Delete(ctx context.Context, id int64) error {
	log.Debug(ctx, "deleting car", log.ID("car", id))
	return cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := cars.carsrp.Conn(c)
		return q.Delete(ctx, id)
	})
}

// PriceOf use case passes a vehicle ID through to the pricing
// collaborator and returns its formatted price string. The car itself
// is not consulted, preserving the loose ID-space convention between
// the two services.
func (cars *UseCase) PriceOf(ctx context.Context, vehicleID int64) (string, error) {
	price, err := cars.pricer.PriceOf(ctx, vehicleID)
	if err != nil {
		return "", fmt.Errorf("pricing vehicle %d: %w", vehicleID, err)
	}
	return price, nil
}

// enrich fills the derived price and address fields of the given car
// by the external collaborators. The car is modified in place.
// A missing price record is reported as a service-unavailable error
// instead of a not-found error because the car itself does exist and
// only its derived data could not be obtained.
func (cars *UseCase) enrich(ctx context.Context, car *model.Car) error {
	price, err := cars.pricer.PriceOf(ctx, car.ID)
	if err != nil {
		err = fmt.Errorf("pricing car %d: %w", car.ID, err)
		var ce *cerr.Error
		if errors.As(err, &ce) && ce.HTTPStatusCode == http.StatusNotFound {
			return cerr.ServiceUnavailable(err)
		}
		return err
	}
	car.Price = price
	loc, err := cars.geocoder.Resolve(ctx, car.Location)
	if err != nil {
		return fmt.Errorf("resolving address of car %d: %w", car.ID, err)
	}
	car.Location = loc
	return nil
}
