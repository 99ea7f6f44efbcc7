package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kelolahq/anggaran/internal/clock"
	"github.com/kelolahq/anggaran/internal/counter/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type service struct {
	db    *gorm.DB
	repo  domain.Repository
	clock clock.Clock
	log   *zap.Logger
}

func NewService(db *gorm.DB, repo domain.Repository, clk clock.Clock, log *zap.Logger) domain.Service {
	return &service{
		db:    db,
		repo:  repo,
		clock: clk,
		log:   log,
	}
}

func (s *service) Allocate(ctx context.Context, tx *gorm.DB, screenID string) (string, error) {
	if tx != nil {
		return s.allocate(ctx, tx, screenID)
	}

	var formatted string
	err := s.db.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
		value, err := s.allocate(ctx, inner, screenID)
		if err != nil {
			return err
		}
		formatted = value
		return nil
	})
	return formatted, err
}

func (s *service) allocate(ctx context.Context, tx *gorm.DB, screenID string) (string, error) {
	repo := s.repo.WithTx(tx)

	row, err := repo.FindForUpdate(ctx, screenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrScreenNotFound
		}
		return "", err
	}

	period := row.PeriodMarker
	if row.ResetPerPeriod && row.PeriodFormat != "" {
		period = s.clock.Now().Format(row.PeriodFormat)
		if period != row.PeriodMarker {
			row.CurrentValue = row.MinValue
		}
	}

	row.CurrentValue++
	if row.MaxValue > 0 && row.CurrentValue > row.MaxValue {
		return "", domain.ErrCounterExhausted
	}
	row.PeriodMarker = period
	row.UpdatedDate = s.clock.Now()

	if err := repo.Save(ctx, row); err != nil {
		return "", err
	}

	formatted := format(row)
	s.log.Debug("allocated sequence number",
		zap.String("screen_id", screenID),
		zap.String("value", formatted),
	)
	return formatted, nil
}

func format(row *domain.CounterNumber) string {
	value := fmt.Sprintf("%0*d", row.Digit, row.CurrentValue)
	out := row.Prefix + value
	if row.Suffix != "" {
		out += row.Separator + row.Suffix
	}
	return out
}
