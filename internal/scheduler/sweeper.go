// Package scheduler runs background maintenance jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/kelolahq/anggaran/internal/audit"
	"github.com/kelolahq/anggaran/internal/clock"
	"github.com/kelolahq/anggaran/internal/config"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sweeper prunes audit rows past the retention window on a cron schedule.
type Sweeper struct {
	db        *gorm.DB
	clock     clock.Clock
	retention time.Duration
	schedule  string
	log       *zap.Logger
	cron      *cron.Cron
}

func NewSweeper(cfg config.Config, db *gorm.DB, clk clock.Clock, log *zap.Logger) *Sweeper {
	return &Sweeper{
		db:        db,
		clock:     clk,
		retention: time.Duration(cfg.AuditRetentionDays) * 24 * time.Hour,
		schedule:  cfg.AuditSweepSchedule,
		log:       log,
		cron:      cron.New(),
	}
}

func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.SweepOnce(context.Background()); err != nil {
			s.log.Error("audit sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("audit sweeper started",
		zap.String("schedule", s.schedule),
		zap.Duration("retention", s.retention),
	)
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

// SweepOnce deletes audit rows older than the retention cutoff.
func (s *Sweeper) SweepOnce(ctx context.Context) error {
	cutoff := s.clock.Now().Add(-s.retention)
	removed, err := audit.Prune(ctx, s.db, cutoff)
	if err != nil {
		return err
	}
	s.log.Info("audit sweep done",
		zap.Int64("removed", removed),
		zap.Time("cutoff", cutoff),
	)
	return nil
}
