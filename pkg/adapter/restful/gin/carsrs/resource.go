// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrs realizes the cars resource, allowing the cars
// manipulation REST APIs to be accepted and delegated to the
// cars use cases respectively.
package carsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/vehicles-api/pkg/core/usecase/carsuc"
)

type resource struct {
	cars *carsuc.UseCase
}

// Register instantiates a resource adapting the cars use case instance
// with the relevant REST APIs including:
//  1. POST request to /cars in order to create a car,
//  2. GET request to /cars in order to list all cars,
//  3. GET request to /cars/:id in order to fetch one car,
//  4. PUT request to /cars/:id in order to update a car,
//  5. DELETE request to /cars/:id in order to remove a car,
//  6. GET request to /services/price?vehicleId=N in order to pass a
//     price lookup through to the pricing collaborator.
//
// Responses carry hypermedia-style self links, computed per item, so
// clients can navigate from a collection to its members.
func Register(r *gin.RouterGroup, cars *carsuc.UseCase) {
	rs := &resource{cars: cars}
	r.POST("cars", rs.CreateCar)
	r.GET("cars", rs.ListCars)
	r.GET("cars/:id", rs.GetCar)
	r.PUT("cars/:id", rs.UpdateCar)
	r.DELETE("cars/:id", rs.DeleteCar)
	r.GET("services/price", rs.GetPrice)
}

func (rs *resource) CreateCar(c *gin.Context) {
	car := rs.DserCarReq(c)
	if car == nil {
		return
	}
	saved, err := rs.cars.Save(c, car)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	rep := SerCar(c.Request, saved)
	c.Header("Location", rep.Links.Self.Href)
	c.JSON(http.StatusCreated, rep)
}

func (rs *resource) ListCars(c *gin.Context) {
	all, err := rs.cars.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCarList(c.Request, all))
}

func (rs *resource) GetCar(c *gin.Context) {
	id, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	car, err := rs.cars.FindByID(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCar(c.Request, car))
}

func (rs *resource) UpdateCar(c *gin.Context) {
	id, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	car := rs.DserCarReq(c)
	if car == nil {
		return
	}
	car.ID = id
	saved, err := rs.cars.Save(c, car)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCar(c.Request, saved))
}

func (rs *resource) DeleteCar(c *gin.Context) {
	id, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	if err := rs.cars.Delete(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (rs *resource) GetPrice(c *gin.Context) {
	id, ok := rs.DserVehicleID(c)
	if !ok {
		return
	}
	price, err := rs.cars.PriceOf(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"price": price})
}
