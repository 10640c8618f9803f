package repo

import (
	"context"

	"github.com/momeni/vehicles-api/pkg/core/model"
)

type CarsConnQueryer interface {
	CarsQueryer
}

type CarsTxQueryer interface {
	CarsQueryer
}

// CarsQueryer lists the supported queries on the cars table.
// All operations observe single-statement atomicity only, unless they
// are obtained from a transaction (see the Cars interface).
type CarsQueryer interface {
	// Create persists the given car, ignoring its ID field, and
	// returns the stored car with its store-assigned unique ID.
	Create(ctx context.Context, car *model.Car) (*model.Car, error)

	// Find returns the car which is identified by id.
	// A cerr.Error with the not-found status is returned if no car
	// has that id.
	Find(ctx context.Context, id int64) (*model.Car, error)

	// List returns all stored cars in an unspecified order.
	List(ctx context.Context) ([]*model.Car, error)

	// Update replaces the condition, details, and location of the car
	// which is identified by id, keeping its ID intact, and returns
	// the updated car. A cerr.Error with the not-found status is
	// returned if no car has that id.
	Update(ctx context.Context, id int64, car *model.Car) (*model.Car, error)

	// Delete removes the car which is identified by id.
	// A cerr.Error with the not-found status is returned if no car
	// has that id.
	Delete(ctx context.Context, id int64) error
}

// Cars repository provides the cars table related queries, after
// taking a Conn or Tx argument in order to guide the connection or
// transaction which must be used for running those queries.
type Cars interface {
	Conn(Conn) CarsConnQueryer
	Tx(Tx) CarsTxQueryer
}
