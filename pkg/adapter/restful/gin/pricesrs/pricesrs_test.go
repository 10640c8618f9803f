// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package pricesrs_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/vehicles-api/internal/test/fakes"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/pricesrs"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/usecase/pricinguc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	Engine *gin.Engine
	Pool   *fakes.Pool
}

func newEnv() *env {
	p := fakes.NewPool()
	prices := pricinguc.New(p, &p.Prices)
	e := gin.New(gin.RequestID())
	pricesrs.Register(&e.RouterGroup, prices)
	return &env{Engine: e, Pool: p}
}

func (te *env) seed(id int64, amount string) {
	te.Pool.Prices.ByID[id] = &model.Price{
		ID:       id,
		Currency: "USD",
		Amount:   decimal.RequireFromString(amount),
	}
}

func (te *env) send(
	t *testing.T, method, target, body string, res any,
) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	te.Engine.ServeHTTP(w, req)
	if res != nil {
		err := json.Unmarshal(w.Body.Bytes(), res)
		assert.NoError(t, err, "body is not json: %s", w.Body)
	}
	return w
}

func TestCreatePrice(t *testing.T) {
	te := newEnv()
	res := &pricesrs.PriceRep{}
	w := te.send(
		t, http.MethodPost, "/prices",
		`{"vehicleId": 7, "currency": "USD", "price": "1234.56"}`,
		res,
	)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(7), res.VehicleID)
	assert.Equal(t, "USD", res.Currency)
	assert.True(
		t, res.Price.Equal(decimal.RequireFromString("1234.56")),
		"wrong created amount: %s", res.Price,
	)

	w = te.send(
		t, http.MethodPost, "/prices",
		`{"vehicleId": 7, "currency": "USD", "price": "4999.00"}`,
		nil,
	)
	assert.Equal(t, http.StatusConflict, w.Code, "duplicate vehicle ID")
}

func TestCreatePriceBadRequest(t *testing.T) {
	te := newEnv()
	for _, tc := range []struct {
		name string
		body string
	}{
		{name: "no body", body: ""},
		{name: "empty object", body: "{}"},
		{
			name: "negative vehicle id",
			body: `{"vehicleId": -1, "currency": "USD", "price": "1"}`,
		},
		{
			name: "bad currency",
			body: `{"vehicleId": 7, "currency": "DOLLARS", "price": "1"}`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := te.send(t, http.MethodPost, "/prices", tc.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(
				t, te.Pool.Prices.ByID,
				"invalid requests must not store records",
			)
		})
	}
}

func TestListPrices(t *testing.T) {
	te := newEnv()
	te.seed(1, "1234.56")
	te.seed(2, "4999.00")

	var res []pricesrs.PriceRep
	w := te.send(t, http.MethodGet, "/prices", "", &res)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, res, 2)
}

func TestGetPrice(t *testing.T) {
	te := newEnv()
	te.seed(7, "1234.56")

	res := &pricesrs.PriceRep{}
	w := te.send(t, http.MethodGet, "/prices/7", "", res)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), res.VehicleID)

	w = te.send(t, http.MethodGet, "/prices/8", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = te.send(t, http.MethodGet, "/prices/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePrice(t *testing.T) {
	te := newEnv()
	te.seed(7, "1234.56")

	res := &pricesrs.PriceRep{}
	w := te.send(
		t, http.MethodPut, "/prices/7",
		`{"currency": "EUR", "price": "2300.10"}`, res,
	)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), res.VehicleID, "ID stays intact")
	assert.Equal(t, "EUR", res.Currency)

	w = te.send(
		t, http.MethodPut, "/prices/8",
		`{"currency": "EUR", "price": "2300.10"}`, nil,
	)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePrice(t *testing.T) {
	te := newEnv()
	te.seed(7, "1234.56")

	w := te.send(t, http.MethodDelete, "/prices/7", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, te.Pool.Prices.ByID, "the record must be gone")

	w = te.send(t, http.MethodDelete, "/prices/7", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLookupPrice(t *testing.T) {
	te := newEnv()
	te.seed(7, "1234.56")

	res := &pricesrs.PriceRep{}
	w := te.send(
		t, http.MethodGet, "/services/price?vehicleId=7", "", res,
	)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), res.VehicleID)
	assert.Equal(t, "USD", res.Currency)

	w = te.send(t, http.MethodGet, "/services/price?vehicleId=8", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = te.send(t, http.MethodGet, "/services/price", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
