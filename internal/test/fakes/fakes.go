// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fakes is an internal helper for the test packages.
// It provides in-memory implementations of the core repo interfaces
// and the cars use case collaborators, so use cases and resources can
// be tested without a DBMS server or running collaborator services.
package fakes

import (
	"context"
	"errors"

	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

// Pool is an in-memory repo.Pool implementation. All connections and
// transactions which it hands out share the same underlying maps, so
// there is no isolation between concurrent handlers.
type Pool struct {
	Cars   Cars
	Prices Prices
}

// NewPool creates a Pool with empty cars and prices tables.
func NewPool() *Pool {
	return &Pool{
		Cars:   Cars{ByID: make(map[int64]*model.Car), NextID: 1},
		Prices: Prices{ByID: make(map[int64]*model.Price)},
	}
}

func (p *Pool) Conn(
	ctx context.Context, handler repo.ConnHandler,
) error {
	return handler(ctx, conn{p})
}

func (p *Pool) Close() error {
	return nil
}

type conn struct {
	p *Pool
}

func (c conn) Exec(
	_ context.Context, _ string, _ ...any,
) (int64, error) {
	return 0, errors.New("raw statements are not supported")
}

func (c conn) Tx(ctx context.Context, handler repo.TxHandler) error {
	return handler(ctx, tx{c.p})
}

func (c conn) IsConn() {}

type tx struct {
	p *Pool
}

func (t tx) Exec(
	_ context.Context, _ string, _ ...any,
) (int64, error) {
	return 0, errors.New("raw statements are not supported")
}

func (t tx) IsTx() {}

// Cars is an in-memory cars repository. The same queryer serves both
// connections and transactions since there is nothing to isolate.
// Deleted IDs are recorded, so tests can assert on the performed
// deletion calls in addition to the visible table state.
type Cars struct {
	ByID        map[int64]*model.Car
	NextID      int64
	DeleteCalls []int64

	// Err, if non-nil, is returned by all queries verbatim.
	Err error
}

func (c *Cars) Conn(repo.Conn) repo.CarsConnQueryer { return c }

func (c *Cars) Tx(repo.Tx) repo.CarsTxQueryer { return c }

func (c *Cars) Create(
	_ context.Context, car *model.Car,
) (*model.Car, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	stored := *car
	stored.ID = c.NextID
	c.NextID++
	c.ByID[stored.ID] = &stored
	reply := stored
	return &reply, nil
}

func (c *Cars) Find(
	_ context.Context, id int64,
) (*model.Car, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	car, exists := c.ByID[id]
	if !exists {
		return nil, cerr.NotFound(errors.New("no such car"))
	}
	reply := *car
	return &reply, nil
}

func (c *Cars) List(_ context.Context) ([]*model.Car, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	all := make([]*model.Car, 0, len(c.ByID))
	for _, car := range c.ByID {
		reply := *car
		all = append(all, &reply)
	}
	return all, nil
}

func (c *Cars) Update(
	_ context.Context, id int64, car *model.Car,
) (*model.Car, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	if _, exists := c.ByID[id]; !exists {
		return nil, cerr.NotFound(errors.New("no such car"))
	}
	stored := *car
	stored.ID = id
	c.ByID[id] = &stored
	reply := stored
	return &reply, nil
}

func (c *Cars) Delete(_ context.Context, id int64) error {
	c.DeleteCalls = append(c.DeleteCalls, id)
	if c.Err != nil {
		return c.Err
	}
	if _, exists := c.ByID[id]; !exists {
		return cerr.NotFound(errors.New("no such car"))
	}
	delete(c.ByID, id)
	return nil
}

// Prices is an in-memory prices repository.
type Prices struct {
	ByID map[int64]*model.Price

	// Err, if non-nil, is returned by all queries verbatim.
	Err error
}

func (p *Prices) Conn(repo.Conn) repo.PricesConnQueryer { return p }

func (p *Prices) Tx(repo.Tx) repo.PricesTxQueryer { return p }

func (p *Prices) Create(
	_ context.Context, price *model.Price,
) (*model.Price, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	if _, exists := p.ByID[price.ID]; exists {
		return nil, cerr.Conflict(errors.New("duplicate price id"))
	}
	stored := *price
	p.ByID[stored.ID] = &stored
	reply := stored
	return &reply, nil
}

func (p *Prices) Find(
	_ context.Context, id int64,
) (*model.Price, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	price, exists := p.ByID[id]
	if !exists {
		return nil, cerr.NotFound(errors.New("no such price"))
	}
	reply := *price
	return &reply, nil
}

func (p *Prices) List(_ context.Context) ([]*model.Price, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	all := make([]*model.Price, 0, len(p.ByID))
	for _, price := range p.ByID {
		reply := *price
		all = append(all, &reply)
	}
	return all, nil
}

func (p *Prices) Update(
	_ context.Context, id int64, price *model.Price,
) (*model.Price, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	if _, exists := p.ByID[id]; !exists {
		return nil, cerr.NotFound(errors.New("no such price"))
	}
	stored := *price
	stored.ID = id
	p.ByID[id] = &stored
	reply := stored
	return &reply, nil
}

func (p *Prices) Delete(_ context.Context, id int64) error {
	if p.Err != nil {
		return p.Err
	}
	if _, exists := p.ByID[id]; !exists {
		return cerr.NotFound(errors.New("no such price"))
	}
	delete(p.ByID, id)
	return nil
}

// Pricer is a canned carsuc.Pricer implementation. If Err is non-nil,
// it is returned for all vehicle IDs. Otherwise, the quote of the
// ByVehicleID map is returned, falling back to a not-found error.
type Pricer struct {
	ByVehicleID map[int64]string
	Err         error

	// Calls records the queried vehicle IDs in order.
	Calls []int64
}

func (p *Pricer) PriceOf(
	_ context.Context, vehicleID int64,
) (string, error) {
	p.Calls = append(p.Calls, vehicleID)
	if p.Err != nil {
		return "", p.Err
	}
	quote, exists := p.ByVehicleID[vehicleID]
	if !exists {
		return "", cerr.NotFound(errors.New("no price for vehicle"))
	}
	return quote, nil
}

// Geocoder is a canned carsuc.Geocoder implementation which resolves
// all coordinates to the fixed Address string.
type Geocoder struct {
	Address string
}

func (g *Geocoder) Resolve(
	_ context.Context, l model.Location,
) (model.Location, error) {
	l.Address = g.Address
	return l, nil
}
