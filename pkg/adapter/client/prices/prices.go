// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package prices adapts the remote pricing service to the
// carsuc.Pricer capability interface. It performs a synchronous HTTP
// read against the pricing service lookup endpoint and formats the
// returned record as a human-readable price string. No retry or
// backoff policy is applied. A request either completes or its fault
// is reported to the caller on the same call.
package prices

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/log"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/shopspring/decimal"
)

// DefaultTimeout bounds a price lookup when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Client is an HTTP implementation of the carsuc.Pricer interface.
// It is safe to be used concurrently.
type Client struct {
	base string
	hc   *http.Client
}

// New instantiates a pricing client for the service which is
// reachable at the given base URL, e.g., "http://localhost:8082".
// A non-positive timeout falls back to the DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: timeout},
	}
}

// priceRep mirrors the wire representation of a price record as it is
// serialized by the pricing service lookup endpoint.
type priceRep struct {
	VehicleID int64           `json:"vehicleId"`
	Currency  string          `json:"currency"`
	Price     decimal.Decimal `json:"price"`
}

// PriceOf resolves the given vehicle ID to its formatted price string
// by querying the remote pricing service. An unknown ID is reported
// as a not-found error. A service which cannot answer at all, or
// answers with an unexpected status, is reported as a
// service-unavailable error.
func (c *Client) PriceOf(ctx context.Context, vehicleID int64) (string, error) {
	u := c.base + "/services/price?vehicleId=" +
		strconv.FormatInt(vehicleID, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("preparing request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		log.Warn(ctx, "pricing service is unreachable", log.Err("error", err))
		return "", cerr.ServiceUnavailable(
			fmt.Errorf("pricing service: %w", err),
		)
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		// fallthrough to decoding
	case http.StatusNotFound:
		return "", cerr.NotFound(
			fmt.Errorf("no price for vehicle %d", vehicleID),
		)
	default:
		log.Warn(ctx, "unexpected pricing service status",
			slog.Int("status", resp.StatusCode))
		return "", cerr.ServiceUnavailable(
			fmt.Errorf("pricing service status: %d", resp.StatusCode),
		)
	}
	rep := priceRep{}
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		return "", cerr.ServiceUnavailable(
			fmt.Errorf("decoding pricing response: %w", err),
		)
	}
	p := model.Price{
		ID:       rep.VehicleID,
		Currency: rep.Currency,
		Amount:   rep.Price,
	}
	return p.Format(), nil
}
