package pricesrs

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/shopspring/decimal"
)

type rawCreatePriceReq struct {
	VehicleID int64           `json:"vehicleId" binding:"required,gt=0"`
	Currency  string          `json:"currency" binding:"required,len=3"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

type rawUpdatePriceReq struct {
	Currency string          `json:"currency" binding:"required,len=3"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

// DserCreatePriceReq deserializes a price creation request body,
// reporting a bad-request error to the client and returning nil if
// the body is missing, malformed, or invalid.
func (rs *resource) DserCreatePriceReq(c *gin.Context) *model.Price {
	req := &rawCreatePriceReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.Price{
		ID:       req.VehicleID,
		Currency: req.Currency,
		Amount:   req.Price,
	}
}

// DserUpdatePriceReq deserializes a price update request body for the
// record which is identified by id.
func (rs *resource) DserUpdatePriceReq(c *gin.Context, id int64) *model.Price {
	req := &rawUpdatePriceReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.Price{
		ID:       id,
		Currency: req.Currency,
		Amount:   req.Price,
	}
}

// DserPriceID deserializes the :id path parameter as a price record
// identifier.
func (rs *resource) DserPriceID(c *gin.Context) (int64, bool) {
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
// lookup endpoint.
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

// PriceRep is the wire representation of a price record.
type PriceRep struct {
	VehicleID int64           `json:"vehicleId"`
	Currency  string          `json:"currency"`
	Price     decimal.Decimal `json:"price"`
}

// SerPrice shapes the given price record into its wire
// representation.
func SerPrice(price *model.Price) PriceRep {
	return PriceRep{
		VehicleID: price.ID,
		Currency:  price.Currency,
		Price:     price.Amount,
	}
}

// SerPriceList shapes the given price records into a list of wire
// representations.
func SerPriceList(all []*model.Price) []PriceRep {
	reps := make([]PriceRep, 0, len(all))
	for _, price := range all {
		reps = append(reps, SerPrice(price))
	}
	return reps
}
