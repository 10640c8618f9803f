package carsrp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gCar struct {
	ID         int64          `gorm:"primaryKey;column:id"`
	Condition  string         `gorm:"column:condition"`
	Details    model.Details  `gorm:"embedded"`
	Location   model.Location `gorm:"embedded"`
	CreatedAt  time.Time
	ModifiedAt time.Time `gorm:"autoUpdateTime"`
}

func (gc *gCar) TableName() string {
	return "cars"
}

func (gc *gCar) Model() (*model.Car, error) {
	cond, err := model.ParseCondition(gc.Condition)
	if err != nil {
		return nil, fmt.Errorf("condition column %q: %w", gc.Condition, err)
	}
	return &model.Car{
		ID:         gc.ID,
		Condition:  cond,
		Details:    gc.Details,
		Location:   gc.Location,
		CreatedAt:  gc.CreatedAt,
		ModifiedAt: gc.ModifiedAt,
	}, nil
}

func newGCar(car *model.Car) *gCar {
	return &gCar{
		Condition: car.Condition.String(),
		Details:   car.Details,
		Location:  car.Location,
	}
}

// replacedColumns are the columns which an update overwrites
// wholesale, including zero values. The id and created_at columns
// stay intact and modified_at is refreshed by its auto-update hook.
var replacedColumns = []string{
	"condition",
	"code", "name", "model", "number_of_doors", "fuel_type",
	"engine", "mileage", "model_year", "production_year",
	"external_color", "body",
	"latitude", "longitude",
	"modified_at",
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, car *model.Car) (*model.Car, error) {
	gdb := q.GORM(ctx)
	gc := newGCar(car)
	if err := gdb.Create(gc).Error; err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	return gc.Model()
}

func Find[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Car, error) {
	gdb := q.GORM(ctx)
	gc := &gCar{}
	err := gdb.First(gc, "id = ?", id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, cerr.NotFound(fmt.Errorf("no car with id %d", id))
	case err != nil:
		return nil, fmt.Errorf("query: %w", err)
	}
	return gc.Model()
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]*model.Car, error) {
	gdb := q.GORM(ctx)
	var gcs []gCar
	if err := gdb.Find(&gcs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	cars := make([]*model.Car, 0, len(gcs))
	for i := range gcs {
		car, err := gcs[i].Model()
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, id int64, car *model.Car) (*model.Car, error) {
	gdb := q.GORM(ctx)
	var gc []gCar
	gdb.Model(&gc).Clauses(clause.Returning{}).Select(
		replacedColumns,
	).Where(
		"id = ?", id,
	).Updates(*newGCar(car))
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gc); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gc[0].Model()
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	gdb := q.GORM(ctx)
	tt := gdb.Where("id = ?", id).Delete(&gCar{})
	if err := tt.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if tt.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("no car with id %d", id))
	}
	return nil
}
