// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
// Each use case package is named like carsuc, each repository package
// is named like carsrp, and each resource package is named like
// carsrs. The two services of this project register disjoint resource
// sets, hence, the two registration functions.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/momeni/vehicles-api/pkg/adapter/config"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/carsrp"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/pricesrp"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/carsrs"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/pricesrs"
	"github.com/momeni/vehicles-api/pkg/core/repo"
	"github.com/momeni/vehicles-api/pkg/core/usecase/pricinguc"
)

// RegisterVehicles instantiates the cars repository, the pricing and
// geocoding clients, and the cars use case based on the c
// configuration settings, registering the cars resource handlers on
// the e gin-gonic engine instance. The p connections pool is passed
// to the use case instance, so it may acquire/release connections and
// transactions on demand.
func RegisterVehicles(e *gin.Engine, p repo.Pool, c *config.Config) error {
	carsRepo := carsrp.New()
	pricer := c.Pricing.NewClient()
	geocoder := c.NewGeocoder()
	cars, err := c.Usecases.Cars.NewUseCase(p, carsRepo, pricer, geocoder)
	if err != nil {
		return fmt.Errorf("creating cars use case: %w", err)
	}
	r := &e.RouterGroup
	carsrs.Register(r, cars)
	return nil
}

// RegisterPricing instantiates the prices repository and use case,
// registering the prices resource handlers on the e gin-gonic engine
// instance.
func RegisterPricing(e *gin.Engine, p repo.Pool) error {
	prices := pricinguc.New(p, pricesrp.New())
	r := &e.RouterGroup
	pricesrs.Register(r, prices)
	return nil
}
