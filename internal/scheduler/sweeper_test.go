package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/kelolahq/anggaran/internal/audit/domain"
	"github.com/kelolahq/anggaran/internal/clock"
	"github.com/kelolahq/anggaran/internal/config"
	dbpkg "github.com/kelolahq/anggaran/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSweepOnceRemovesOnlyExpiredRows(t *testing.T) {
	db, err := dbpkg.NewTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&auditdomain.AuditLog{}))

	node, err := snowflake.NewNode(4)
	require.NoError(t, err)

	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	rows := []auditdomain.AuditLog{
		{ID: node.Generate(), Entity: "budget", EntityID: "BDG00001", Action: auditdomain.ActionCreate, ActorID: "USR0001", CreatedDate: now.AddDate(0, 0, -200)},
		{ID: node.Generate(), Entity: "budget", EntityID: "BDG00002", Action: auditdomain.ActionCreate, ActorID: "USR0001", CreatedDate: now.AddDate(0, 0, -10)},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	sweeper := NewSweeper(config.Config{
		AuditRetentionDays: 180,
		AuditSweepSchedule: "0 3 * * *",
	}, db, clock.NewFakeClock(now), zaptest.NewLogger(t))

	require.NoError(t, sweeper.SweepOnce(context.Background()))

	var kept []auditdomain.AuditLog
	require.NoError(t, db.Find(&kept).Error)
	require.Len(t, kept, 1)
	assert.Equal(t, "BDG00002", kept[0].EntityID)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	db, err := dbpkg.NewTest()
	require.NoError(t, err)

	sweeper := NewSweeper(config.Config{
		AuditRetentionDays: 180,
		AuditSweepSchedule: "not-a-schedule",
	}, db, clock.SystemClock{}, zaptest.NewLogger(t))

	assert.Error(t, sweeper.Start())
}
