package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrScreenNotFound   = errors.New("counter screen not found")
	ErrCounterExhausted = errors.New("counter exhausted")
)

type Service interface {
	// Allocate returns the next formatted identifier for a screen and
	// persists the advanced counter. When tx is non-nil the allocation
	// joins the caller's transaction; otherwise the service opens its own.
	Allocate(ctx context.Context, tx *gorm.DB, screenID string) (string, error)
}
