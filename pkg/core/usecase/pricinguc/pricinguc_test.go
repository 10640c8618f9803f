// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package pricinguc_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/momeni/vehicles-api/internal/test/fakes"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/usecase/pricinguc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase() (*pricinguc.UseCase, *fakes.Pool) {
	p := fakes.NewPool()
	return pricinguc.New(p, &p.Prices), p
}

func usd(id int64, amount string) *model.Price {
	return &model.Price{
		ID:       id,
		Currency: "USD",
		Amount:   decimal.RequireFromString(amount),
	}
}

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	created, err := uc.Create(ctx, usd(7, "1234.56"))
	require.NoError(t, err, "cannot create a fresh price record")
	assert.Equal(t, int64(7), created.ID, "ID is caller-provided")

	price, err := uc.Find(ctx, 7)
	require.NoError(t, err, "cannot find the created record")
	assert.Equal(t, "USD 1234.56", price.Format())

	_, err = uc.Find(ctx, 8)
	assertStatus(t, err, http.StatusNotFound)
}

func TestCreateConflict(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	_, err := uc.Create(ctx, usd(7, "1234.56"))
	require.NoError(t, err)

	_, err = uc.Create(ctx, usd(7, "4999.00"))
	assertStatus(t, err, http.StatusConflict)

	price, err := uc.Find(ctx, 7)
	require.NoError(t, err)
	assert.Equal(
		t, "USD 1234.56", price.Format(),
		"conflicting create must not overwrite",
	)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	_, err := uc.Create(ctx, usd(7, "1234.56"))
	require.NoError(t, err)

	updated, err := uc.Update(ctx, 7, usd(0, "2300.10"))
	require.NoError(t, err, "cannot update an existing record")
	assert.Equal(t, int64(7), updated.ID, "ID stays intact")
	assert.Equal(t, "USD 2300.10", updated.Format())

	_, err = uc.Update(ctx, 8, usd(0, "2300.10"))
	assertStatus(t, err, http.StatusNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	_, err := uc.Create(ctx, usd(7, "1234.56"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, 7))
	err = uc.Delete(ctx, 7)
	assertStatus(t, err, http.StatusNotFound)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	uc, p := newUseCase()
	require.NoError(t, uc.Seed(ctx, 20), "cannot seed a fresh table")

	all, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 20, "one record per seeded vehicle ID")
	assert.Len(t, p.Prices.ByID, 20)
	lower := decimal.NewFromInt(1000)
	upper := decimal.NewFromInt(5000)
	for _, price := range all {
		assert.Equal(t, "USD", price.Currency)
		assert.True(
			t, price.Amount.GreaterThanOrEqual(lower),
			"amount %s is below the seeding range", price.Amount,
		)
		assert.True(
			t, price.Amount.LessThan(upper),
			"amount %s is above the seeding range", price.Amount,
		)
		assert.LessOrEqual(
			t, int(price.Amount.Exponent()*-1), 2,
			"amount %s has too many fractional digits", price.Amount,
		)
	}

	err = uc.Seed(ctx, 20)
	assertStatus(t, err, http.StatusConflict)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var cerrErr *cerr.Error
	require.ErrorAs(t, err, &cerrErr, "expected a cerr.Error")
	assert.Equal(t, status, cerrErr.HTTPStatusCode, "wrong status")
}
