package repo

import (
	"context"

	"github.com/momeni/vehicles-api/pkg/core/model"
)

type PricesConnQueryer interface {
	PricesQueryer
}

type PricesTxQueryer interface {
	PricesQueryer
}

// PricesQueryer lists the supported queries on the prices table.
// The prices repository is a pure storage contract. The convention
// that a price ID equals a vehicle ID belongs to the callers.
type PricesQueryer interface {
	// Create persists the given price record with its caller-provided
	// ID. A cerr.Error with the conflict status is returned if a
	// record with that ID already exists.
	Create(ctx context.Context, price *model.Price) (*model.Price, error)

	// Find returns the price record which is identified by id.
	// A cerr.Error with the not-found status is returned if no record
	// has that id.
	Find(ctx context.Context, id int64) (*model.Price, error)

	// List returns all stored price records in an unspecified order.
	List(ctx context.Context) ([]*model.Price, error)

	// Update replaces the currency and amount of the record which is
	// identified by id and returns the updated record. A cerr.Error
	// with the not-found status is returned if no record has that id.
	Update(ctx context.Context, id int64, price *model.Price) (*model.Price, error)

	// Delete removes the price record which is identified by id.
	// A cerr.Error with the not-found status is returned if no record
	// has that id.
	Delete(ctx context.Context, id int64) error
}

// Prices repository provides the prices table related queries, after
// taking a Conn or Tx argument in order to guide the connection or
// transaction which must be used for running those queries.
type Prices interface {
	Conn(Conn) PricesConnQueryer
	Tx(Tx) PricesTxQueryer
}
