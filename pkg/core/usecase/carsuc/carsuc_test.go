// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsuc_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/momeni/vehicles-api/internal/test/fakes"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/usecase/carsuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func impala() *model.Car {
	return &model.Car{
		Condition: model.ConditionUsed,
		Details: model.Details{
			Manufacturer: model.Manufacturer{
				Code: 101,
				Name: "Chevrolet",
			},
			Model:          "Impala",
			NumberOfDoors:  4,
			FuelType:       "Gasoline",
			Engine:         "3.6L V6",
			Mileage:        32280,
			ModelYear:      2018,
			ProductionYear: 2018,
			ExternalColor:  "white",
			Body:           "sedan",
		},
		Location: model.Location{Lat: 40.73061, Lon: -73.935242},
	}
}

func newUseCase(t *testing.T, pricer *fakes.Pricer, opts ...carsuc.Option) (
	*carsuc.UseCase, *fakes.Pool,
) {
	p := fakes.NewPool()
	geocoder := &fakes.Geocoder{Address: "777 Brockton Avenue"}
	uc, err := carsuc.New(p, &p.Cars, pricer, geocoder, opts...)
	require.NoError(t, err, "cannot create cars use case")
	return uc, p
}

func TestSaveAndFind(t *testing.T) {
	ctx := context.Background()
	pricer := &fakes.Pricer{
		ByVehicleID: map[int64]string{1: "USD 1234.56"},
	}
	uc, _ := newUseCase(t, pricer)

	saved, err := uc.Save(ctx, impala())
	require.NoError(t, err, "cannot save a fresh car")
	assert.Equal(t, int64(1), saved.ID, "first assigned ID")
	assert.Equal(t, "USD 1234.56", saved.Price, "echo is enriched")
	assert.Equal(
		t, "777 Brockton Avenue", saved.Location.Address,
		"echo carries a resolved address",
	)

	car, err := uc.FindByID(ctx, saved.ID)
	require.NoError(t, err, "cannot find the saved car")
	assert.Equal(t, "Impala", car.Details.Model)
	assert.Equal(t, model.ConditionUsed, car.Condition)
	assert.Equal(t, "USD 1234.56", car.Price)
}

func TestSaveUpdatesWholesale(t *testing.T) {
	ctx := context.Background()
	pricer := &fakes.Pricer{
		ByVehicleID: map[int64]string{1: "USD 1234.56"},
	}
	uc, _ := newUseCase(t, pricer)
	saved, err := uc.Save(ctx, impala())
	require.NoError(t, err, "cannot save a fresh car")

	replacement := impala()
	replacement.ID = saved.ID
	replacement.Condition = model.ConditionNew
	replacement.Details.Model = "Musclecar"
	replacement.Details.Engine = ""
	updated, err := uc.Save(ctx, replacement)
	require.NoError(t, err, "cannot update an existing car")
	assert.Equal(t, saved.ID, updated.ID, "ID stays intact")
	assert.Equal(t, model.ConditionNew, updated.Condition)
	assert.Equal(t, "Musclecar", updated.Details.Model)
	assert.Empty(t, updated.Details.Engine, "details are replaced")
}

func TestSaveMissingCar(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t, &fakes.Pricer{})
	car := impala()
	car.ID = 42
	_, err := uc.Save(ctx, car)
	assertStatus(t, err, http.StatusNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	pricer := &fakes.Pricer{
		ByVehicleID: map[int64]string{
			1: "USD 1234.56",
			2: "USD 4999.00",
		},
	}
	uc, _ := newUseCase(t, pricer)
	_, err := uc.Save(ctx, impala())
	require.NoError(t, err)
	second := impala()
	second.Details.Model = "Malibu"
	_, err = uc.Save(ctx, second)
	require.NoError(t, err)

	all, err := uc.List(ctx)
	require.NoError(t, err, "cannot list cars")
	require.Len(t, all, 2, "expected both saved cars")
	for _, car := range all {
		assert.NotEmpty(t, car.Price, "listed cars are enriched")
		assert.NotEmpty(t, car.Location.Address)
	}
}

func TestListWithoutEnrichment(t *testing.T) {
	ctx := context.Background()
	pricer := &fakes.Pricer{
		ByVehicleID: map[int64]string{1: "USD 1234.56"},
	}
	uc, _ := newUseCase(
		t, pricer, carsuc.WithoutListEnrichment(),
	)
	_, err := uc.Save(ctx, impala())
	require.NoError(t, err)
	pricer.Calls = nil

	all, err := uc.List(ctx)
	require.NoError(t, err, "cannot list cars")
	require.Len(t, all, 1)
	assert.Empty(t, all[0].Price, "listing must skip enrichment")
	assert.Empty(t, pricer.Calls, "pricer must not be consulted")
}

func TestDuplicateListEnrichmentOption(t *testing.T) {
	p := fakes.NewPool()
	_, err := carsuc.New(
		p, &p.Cars, &fakes.Pricer{}, &fakes.Geocoder{},
		carsuc.WithoutListEnrichment(),
		carsuc.WithoutListEnrichment(),
	)
	assert.Error(t, err, "repeated option must be rejected")
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	pricer := &fakes.Pricer{
		ByVehicleID: map[int64]string{1: "USD 1234.56"},
	}
	uc, p := newUseCase(t, pricer)
	saved, err := uc.Save(ctx, impala())
	require.NoError(t, err)

	err = uc.Delete(ctx, saved.ID)
	require.NoError(t, err, "cannot delete an existing car")
	assert.Equal(t, []int64{saved.ID}, p.Cars.DeleteCalls)

	err = uc.Delete(ctx, saved.ID)
	assertStatus(t, err, http.StatusNotFound)
}

func TestEnrichmentFaultPropagates(t *testing.T) {
	ctx := context.Background()
	fault := cerr.ServiceUnavailable(
		errors.New("pricing service is unreachable"),
	)
	uc, p := newUseCase(t, &fakes.Pricer{Err: fault})
	p.Cars.ByID[1] = impala()
	p.Cars.NextID = 2

	_, err := uc.FindByID(ctx, 1)
	assertStatus(t, err, http.StatusServiceUnavailable)

	_, err = uc.List(ctx)
	assertStatus(t, err, http.StatusServiceUnavailable)
}

func TestEnrichmentWithMissingPrice(t *testing.T) {
	ctx := context.Background()
	uc, p := newUseCase(t, &fakes.Pricer{})
	p.Cars.ByID[1] = impala()
	p.Cars.NextID = 2

	// the car exists, so a missing price record is not a 404
	_, err := uc.FindByID(ctx, 1)
	assertStatus(t, err, http.StatusServiceUnavailable)
}

func TestPriceOf(t *testing.T) {
	ctx := context.Background()
	pricer := &fakes.Pricer{
		ByVehicleID: map[int64]string{7: "USD 2300.10"},
	}
	uc, _ := newUseCase(t, pricer)

	price, err := uc.PriceOf(ctx, 7)
	require.NoError(t, err, "cannot price a known vehicle ID")
	assert.Equal(t, "USD 2300.10", price)
	assert.Equal(t, []int64{7}, pricer.Calls)

	_, err = uc.PriceOf(ctx, 8)
	assertStatus(t, err, http.StatusNotFound)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var cerrErr *cerr.Error
	require.ErrorAs(t, err, &cerrErr, "expected a cerr.Error")
	assert.Equal(t, status, cerrErr.HTTPStatusCode, "wrong status")
}
