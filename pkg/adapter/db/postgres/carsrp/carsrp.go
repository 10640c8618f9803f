// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrp implements the cars repository over a PostgreSQL
// database, realizing the repo.Cars interface. Query implementations
// are exposed as generic functions over the postgres.Queryer type
// constraint, so they can run uniformly on a connection or within a
// transaction.
package carsrp

import (
	"context"

	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (cars *Repo) Conn(c repo.Conn) repo.CarsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	return Create(ctx, cq.Conn, car)
}

func (cq connQueryer) Find(ctx context.Context, id int64) (*model.Car, error) {
	return Find(ctx, cq.Conn, id)
}

func (cq connQueryer) List(ctx context.Context) ([]*model.Car, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) Update(ctx context.Context, id int64, car *model.Car) (*model.Car, error) {
	return Update(ctx, cq.Conn, id, car)
}

func (cq connQueryer) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, cq.Conn, id)
}

type txQueryer struct {
	*postgres.Tx
}

func (cars *Repo) Tx(tx repo.Tx) repo.CarsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	return Create(ctx, tq.Tx, car)
}

func (tq txQueryer) Find(ctx context.Context, id int64) (*model.Car, error) {
	return Find(ctx, tq.Tx, id)
}

func (tq txQueryer) List(ctx context.Context) ([]*model.Car, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Update(ctx context.Context, id int64, car *model.Car) (*model.Car, error) {
	return Update(ctx, tq.Tx, id, car)
}

func (tq txQueryer) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, tq.Tx, id)
}
