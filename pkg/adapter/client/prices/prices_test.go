// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package prices_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/momeni/vehicles-api/pkg/adapter/client/prices"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPricingServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc(
		"/services/price", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			switch r.URL.Query().Get("vehicleId") {
			case "7":
				w.Header().Set("Content-Type", "application/json")
				_, err := w.Write([]byte(
					`{"vehicleId": 7, "currency": "USD", "price": "1234.56"}`,
				))
				assert.NoError(t, err)
			case "8":
				http.Error(w, "no such price", http.StatusNotFound)
			default:
				http.Error(
					w, "boom", http.StatusInternalServerError,
				)
			}
		},
	)
	return httptest.NewServer(mux)
}

func TestPriceOf(t *testing.T) {
	ctx := context.Background()
	srv := newPricingServer(t)
	defer srv.Close()
	c := prices.New(srv.URL, time.Second)

	price, err := c.PriceOf(ctx, 7)
	require.NoError(t, err, "cannot price a known vehicle ID")
	assert.Equal(t, "USD 1234.56", price)
}

func TestPriceOfMissingVehicle(t *testing.T) {
	ctx := context.Background()
	srv := newPricingServer(t)
	defer srv.Close()
	c := prices.New(srv.URL, time.Second)

	_, err := c.PriceOf(ctx, 8)
	assertStatus(t, err, http.StatusNotFound)
}

func TestPriceOfServerFault(t *testing.T) {
	ctx := context.Background()
	srv := newPricingServer(t)
	defer srv.Close()
	c := prices.New(srv.URL, time.Second)

	_, err := c.PriceOf(ctx, 9)
	assertStatus(t, err, http.StatusServiceUnavailable)
}

func TestPriceOfUnreachableService(t *testing.T) {
	ctx := context.Background()
	srv := newPricingServer(t)
	srv.Close() // shut down before any request is sent
	c := prices.New(srv.URL, time.Second)

	_, err := c.PriceOf(ctx, 7)
	assertStatus(t, err, http.StatusServiceUnavailable)
}

func TestPriceOfMalformedResponse(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte("not a json body"))
			assert.NoError(t, err)
		},
	))
	defer srv.Close()
	c := prices.New(srv.URL, time.Second)

	_, err := c.PriceOf(ctx, 7)
	assertStatus(t, err, http.StatusServiceUnavailable)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var cerrErr *cerr.Error
	require.ErrorAs(t, err, &cerrErr, "expected a cerr.Error")
	assert.Equal(t, status, cerrErr.HTTPStatusCode, "wrong status")
}
