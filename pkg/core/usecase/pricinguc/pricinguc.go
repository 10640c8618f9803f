// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package pricinguc contains the prices UseCase of the standalone
// pricing service. It is a thin storage orchestration layer over the
// prices repository, exposing the five CRUD use cases plus a seeding
// use case which provisions price records for a range of vehicle IDs.
// No domain logic lives here beyond storage. The convention that a
// price ID denotes a vehicle ID is kept by the remote callers.
package pricinguc

import (
	"context"
	"math/rand/v2"

	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/repo"
	"github.com/shopspring/decimal"
)

// UseCase represents the prices use case. It holds a database
// connection pool and the prices repository instance (to be guided
// with the DB pool).
type UseCase struct {
	pool     repo.Pool
	pricesrp repo.Prices
}

// New instantiates a prices use case.
func New(p repo.Pool, r repo.Prices) *UseCase {
	return &UseCase{pool: p, pricesrp: r}
}

// Create use case persists the given price record with its
// caller-provided ID, failing with a conflict error if a record with
// that ID already exists.
func (prices *UseCase) Create(ctx context.Context, price *model.Price) (created *model.Price, err error) {
	err = prices.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := prices.pricesrp.Conn(c)
		created, err = q.Create(ctx, price)
		return err
	})
	if err != nil {
		created = nil
	}
	return
}

// Find use case returns the price record which is identified by id,
// failing with a not-found error if no record has that id.
func (prices *UseCase) Find(ctx context.Context, id int64) (price *model.Price, err error) {
	err = prices.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := prices.pricesrp.Conn(c)
		price, err = q.Find(ctx, id)
		return err
	})
	if err != nil {
		price = nil
	}
	return
}

// List use case returns all stored price records.
func (prices *UseCase) List(ctx context.Context) (all []*model.Price, err error) {
	err = prices.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := prices.pricesrp.Conn(c)
		all, err = q.List(ctx)
		return err
	})
	if err != nil {
		all = nil
	}
	return
}

// Update use case replaces the currency and amount of the record
// which is identified by id, running as a single transaction, and
// fails with a not-found error if no record has that id.
func (prices *UseCase) Update(ctx context.Context, id int64, price *model.Price) (updated *model.Price, err error) {
	err = prices.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := prices.pricesrp.Tx(tx)
			updated, err = q.Update(ctx, id, price)
			return err
		})
	})
	if err != nil {
		updated = nil
	}
	return
}

// Delete use case removes the price record which is identified by id,
// failing with a not-found error if no record has that id.
func (prices *UseCase) Delete(ctx context.Context, id int64) error {
	return prices.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := prices.pricesrp.Conn(c)
		return q.Delete(ctx, id)
	})
}

// Seed use case provisions USD price records for the vehicle IDs of
// 1 to n (inclusive) with random amounts in the [1000, 5000) range,
// rounded to two fractional digits. All records are created in one
// transaction, so a re-run against a seeded database changes nothing.
func (prices *UseCase) Seed(ctx context.Context, n int64) error {
	return prices.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := prices.pricesrp.Tx(tx)
			for id := int64(1); id <= n; id++ {
				amount := decimal.NewFromFloat(
					1000 + rand.Float64()*4000,
				).Round(2)
				_, err := q.Create(ctx, &model.Price{
					ID:       id,
					Currency: "USD",
					Amount:   amount,
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	})
}
