package postgres

import (
	"context"

	"github.com/momeni/vehicles-api/pkg/core/repo"
	"gorm.io/gorm"
)

type Queryer interface {
	*Conn | *Tx
	repo.Queryer

	GORM(ctx context.Context) *gorm.DB
}
