// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package pricesrs realizes the prices resource of the standalone
// pricing service. It exposes the generic CRUD REST APIs over the
// price records in addition to the /services/price lookup endpoint
// which the vehicles service consumes as its pricing collaborator.
package pricesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/vehicles-api/pkg/core/usecase/pricinguc"
)

type resource struct {
	prices *pricinguc.UseCase
}

// Register instantiates a resource adapting the prices use case
// instance with the relevant REST APIs including:
//  1. POST request to /prices in order to create a price record,
//  2. GET request to /prices in order to list all price records,
//  3. GET request to /prices/:id in order to fetch one record,
//  4. PUT request to /prices/:id in order to update a record,
//  5. DELETE request to /prices/:id in order to remove a record,
//  6. GET request to /services/price?vehicleId=N in order to look a
//     record up by its vehicle ID.
func Register(r *gin.RouterGroup, prices *pricinguc.UseCase) {
	rs := &resource{prices: prices}
	r.POST("prices", rs.CreatePrice)
	r.GET("prices", rs.ListPrices)
	r.GET("prices/:id", rs.GetPrice)
	r.PUT("prices/:id", rs.UpdatePrice)
	r.DELETE("prices/:id", rs.DeletePrice)
	r.GET("services/price", rs.LookupPrice)
}

func (rs *resource) CreatePrice(c *gin.Context) {
	price := rs.DserCreatePriceReq(c)
	if price == nil {
		return
	}
	created, err := rs.prices.Create(c, price)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, SerPrice(created))
}

func (rs *resource) ListPrices(c *gin.Context) {
	all, err := rs.prices.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerPriceList(all))
}

func (rs *resource) GetPrice(c *gin.Context) {
	id, ok := rs.DserPriceID(c)
	if !ok {
		return
	}
	price, err := rs.prices.Find(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerPrice(price))
}

func (rs *resource) UpdatePrice(c *gin.Context) {
	id, ok := rs.DserPriceID(c)
	if !ok {
		return
	}
	price := rs.DserUpdatePriceReq(c, id)
	if price == nil {
		return
	}
	updated, err := rs.prices.Update(c, id, price)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerPrice(updated))
}

func (rs *resource) DeletePrice(c *gin.Context) {
	id, ok := rs.DserPriceID(c)
	if !ok {
		return
	}
	if err := rs.prices.Delete(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (rs *resource) LookupPrice(c *gin.Context) {
	id, ok := rs.DserVehicleID(c)
	if !ok {
		return
	}
	price, err := rs.prices.Find(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerPrice(price))
}
