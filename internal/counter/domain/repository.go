package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	// FindForUpdate loads a counter row under a row lock so concurrent
	// allocations for the same screen serialize.
	FindForUpdate(ctx context.Context, screenID string) (*CounterNumber, error)
	Save(ctx context.Context, row *CounterNumber) error
}
