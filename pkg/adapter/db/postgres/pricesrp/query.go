package pricesrp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the SQLSTATE code which a PostgreSQL server
// reports for a duplicated primary key.
const uniqueViolation = "23505"

type gPrice struct {
	ID       int64           `gorm:"primaryKey;column:id"`
	Currency string          `gorm:"column:currency"`
	Amount   decimal.Decimal `gorm:"column:price"`
}

func (gp *gPrice) TableName() string {
	return "prices"
}

func (gp *gPrice) Model() *model.Price {
	return &model.Price{
		ID:       gp.ID,
		Currency: gp.Currency,
		Amount:   gp.Amount,
	}
}

func newGPrice(price *model.Price) *gPrice {
	return &gPrice{
		ID:       price.ID,
		Currency: price.Currency,
		Amount:   price.Amount,
	}
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, price *model.Price) (*model.Price, error) {
	gdb := q.GORM(ctx)
	gp := newGPrice(price)
	err := gdb.Create(gp).Error
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgErr.SQLState() == uniqueViolation:
		return nil, cerr.Conflict(
			fmt.Errorf("price record %d already exists", price.ID),
		)
	case err != nil:
		return nil, fmt.Errorf("insert: %w", err)
	}
	return gp.Model(), nil
}

func Find[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Price, error) {
	gdb := q.GORM(ctx)
	gp := &gPrice{}
	err := gdb.First(gp, "id = ?", id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, cerr.NotFound(fmt.Errorf("no price with id %d", id))
	case err != nil:
		return nil, fmt.Errorf("query: %w", err)
	}
	return gp.Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]*model.Price, error) {
	gdb := q.GORM(ctx)
	var gps []gPrice
	if err := gdb.Find(&gps).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	prices := make([]*model.Price, 0, len(gps))
	for i := range gps {
		prices = append(prices, gps[i].Model())
	}
	return prices, nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, id int64, price *model.Price) (*model.Price, error) {
	gdb := q.GORM(ctx)
	var gp []gPrice
	gdb.Model(&gp).Clauses(clause.Returning{}).Select(
		"currency", "price",
	).Where(
		"id = ?", id,
	).Updates(*newGPrice(price))
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gp); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gp[0].Model(), nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	gdb := q.GORM(ctx)
	tt := gdb.Where("id = ?", id).Delete(&gPrice{})
	if err := tt.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if tt.RowsAffected == 0 {
		return cerr.NotFound(fmt.Errorf("no price with id %d", id))
	}
	return nil
}
