package carsrs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/vehicles-api/pkg/core/model"
)

type rawManufacturer struct {
	Code int    `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type rawDetails struct {
	Manufacturer   rawManufacturer `json:"manufacturer" binding:"required"`
	Model          string          `json:"model" binding:"required"`
	NumberOfDoors  int             `json:"numberOfDoors"`
	FuelType       string          `json:"fuelType"`
	Engine         string          `json:"engine"`
	Mileage        int             `json:"mileage"`
	ModelYear      int             `json:"modelYear"`
	ProductionYear int             `json:"productionYear"`
	ExternalColor  string          `json:"externalColor"`
	Body           string          `json:"body"`
}

type rawLocation struct {
	Lat *float64 `json:"lat" binding:"required,latitude"`
	Lon *float64 `json:"lon" binding:"required,longitude"`
}

type rawCarReq struct {
	Condition string      `json:"condition" binding:"required,oneof=NEW USED"`
	Details   rawDetails  `json:"details" binding:"required"`
	Location  rawLocation `json:"location" binding:"required"`
}

func (req *rawCarReq) ToModel() (*model.Car, error) {
	cond, err := model.ParseCondition(req.Condition)
	if err != nil {
		return nil, err
	}
	d := req.Details
	return &model.Car{
		Condition: cond,
		Details: model.Details{
			Manufacturer: model.Manufacturer{
				Code: d.Manufacturer.Code,
				Name: d.Manufacturer.Name,
			},
			Model:          d.Model,
			NumberOfDoors:  d.NumberOfDoors,
			FuelType:       d.FuelType,
			Engine:         d.Engine,
			Mileage:        d.Mileage,
			ModelYear:      d.ModelYear,
			ProductionYear: d.ProductionYear,
			ExternalColor:  d.ExternalColor,
			Body:           d.Body,
		},
		Location: model.Location{
			Lat: *req.Location.Lat,
			Lon: *req.Location.Lon,
		},
	}, nil
}

// DserCarReq deserializes a car creation or update request body,
// reporting a bad-request error to the client and returning nil if
// the body is missing, malformed, or invalid.
func (rs *resource) DserCarReq(c *gin.Context) *model.Car {
	req := &rawCarReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	car, err := req.ToModel()
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "condition", err.Error())
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return car
}

// DserCarID deserializes the :id path parameter as a car identifier.
func (rs *resource) DserCarID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		var errs map[string][]string
		serdser.AddErr(
			&errs, "id", "Path param id is not a positive integer.",
		)
		c.JSON(http.StatusBadRequest, errs)
		return 0, false
	}
	return id, true
}

// DserVehicleID deserializes the vehicleId query parameter of the
// price pass-through endpoint.
func (rs *resource) DserVehicleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("vehicleId"), 10, 64)
	if err != nil || id <= 0 {
		var errs map[string][]string
		serdser.AddErr(
			&errs, "vehicleId",
			"Query param vehicleId is not a positive integer.",
		)
		c.JSON(http.StatusBadRequest, errs)
		return 0, false
	}
	return id, true
}

// Link is a single hypermedia reference.
type Link struct {
	Href string `json:"href"`
}

// Links groups the hypermedia references of a representation.
type Links struct {
	Self Link `json:"self"`
}

// CarRep is the wire representation of a single car, including its
// hypermedia self link.
type CarRep struct {
	ID         int64       `json:"id"`
	Condition  string      `json:"condition"`
	Details    rawDetails  `json:"details"`
	Location   locationRep `json:"location"`
	Price      string      `json:"price"`
	CreatedAt  time.Time   `json:"createdAt"`
	ModifiedAt time.Time   `json:"modifiedAt"`
	Links      Links       `json:"_links"`
}

type locationRep struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address string  `json:"address,omitempty"`
}

// CarListRep is the wire representation of the cars collection,
// embedding the car representations under the _embedded.carList key.
type CarListRep struct {
	Embedded embeddedCars `json:"_embedded"`
	Links    Links        `json:"_links"`
}

type embeddedCars struct {
	CarList []CarRep `json:"carList"`
}

// baseURL computes the absolute URL prefix of this service as it was
// addressed by the given request, so self links point back to the
// same host which served them.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// SerCar shapes the given car into its wire representation, appending
// a computed self link of the .../cars/{id} form.
func SerCar(r *http.Request, car *model.Car) CarRep {
	d := car.Details
	return CarRep{
		ID:        car.ID,
		Condition: car.Condition.String(),
		Details: rawDetails{
			Manufacturer: rawManufacturer{
				Code: d.Manufacturer.Code,
				Name: d.Manufacturer.Name,
			},
			Model:          d.Model,
			NumberOfDoors:  d.NumberOfDoors,
			FuelType:       d.FuelType,
			Engine:         d.Engine,
			Mileage:        d.Mileage,
			ModelYear:      d.ModelYear,
			ProductionYear: d.ProductionYear,
			ExternalColor:  d.ExternalColor,
			Body:           d.Body,
		},
		Location: locationRep{
			Lat:     car.Location.Lat,
			Lon:     car.Location.Lon,
			Address: car.Location.Address,
		},
		Price:      car.Price,
		CreatedAt:  car.CreatedAt,
		ModifiedAt: car.ModifiedAt,
		Links: Links{
			Self: Link{
				Href: baseURL(r) + "/cars/" +
					strconv.FormatInt(car.ID, 10),
			},
		},
	}
}

// SerCarList shapes the given cars into the hypermedia collection
// representation with one self link per embedded item.
func SerCarList(r *http.Request, all []*model.Car) CarListRep {
	reps := make([]CarRep, 0, len(all))
	for _, car := range all {
		reps = append(reps, SerCar(r, car))
	}
	return CarListRep{
		Embedded: embeddedCars{CarList: reps},
		Links:    Links{Self: Link{Href: baseURL(r) + "/cars"}},
	}
}
