package service

import (
	"context"
	"testing"
	"time"

	"github.com/kelolahq/anggaran/internal/clock"
	"github.com/kelolahq/anggaran/internal/counter/domain"
	"github.com/kelolahq/anggaran/internal/counter/repository"
	dbpkg "github.com/kelolahq/anggaran/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, clk clock.Clock) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := dbpkg.NewTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.CounterNumber{}))

	repo := repository.NewRepository(db)
	return NewService(db, repo, clk, zaptest.NewLogger(t)), db
}

func seedCounter(t *testing.T, db *gorm.DB, row domain.CounterNumber) {
	t.Helper()
	require.NoError(t, db.Create(&row).Error)
}

func TestAllocateFormatsFromFreshCounter(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, db := newTestService(t, clk)
	seedCounter(t, db, domain.CounterNumber{
		ScreenID: "MCO01",
		Prefix:   "MS",
		Digit:    5,
		MinValue: 0,
		MaxValue: 99999,
	})

	id, err := svc.Allocate(context.Background(), nil, "MCO01")
	require.NoError(t, err)
	assert.Equal(t, "MS00001", id)
}

func TestAllocateIsMonotonicWithinPeriod(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, db := newTestService(t, clk)
	seedCounter(t, db, domain.CounterNumber{
		ScreenID:       "MCO01",
		Prefix:         "MS",
		Digit:          5,
		MaxValue:       99999,
		PeriodFormat:   "20060102",
		ResetPerPeriod: true,
	})

	first, err := svc.Allocate(context.Background(), nil, "MCO01")
	require.NoError(t, err)
	second, err := svc.Allocate(context.Background(), nil, "MCO01")
	require.NoError(t, err)

	assert.Equal(t, "MS00001", first)
	assert.Equal(t, "MS00002", second)
	assert.Less(t, first, second)
}

func TestAllocateResetsOnPeriodRollover(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC))
	svc, db := newTestService(t, clk)
	seedCounter(t, db, domain.CounterNumber{
		ScreenID:       "MBG01",
		Prefix:         "BDG",
		Digit:          6,
		MaxValue:       999999,
		PeriodFormat:   "20060102",
		ResetPerPeriod: true,
		CurrentValue:   41,
		PeriodMarker:   "20250310",
	})

	same, err := svc.Allocate(context.Background(), nil, "MBG01")
	require.NoError(t, err)
	assert.Equal(t, "BDG000042", same)

	clk.Advance(2 * time.Hour) // crosses midnight
	next, err := svc.Allocate(context.Background(), nil, "MBG01")
	require.NoError(t, err)
	assert.Equal(t, "BDG000001", next)

	var row domain.CounterNumber
	require.NoError(t, db.First(&row, "screen_id = ?", "MBG01").Error)
	assert.Equal(t, "20250311", row.PeriodMarker)
	assert.EqualValues(t, 1, row.CurrentValue)
}

func TestAllocateKeepsCountingWithoutPeriodReset(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC))
	svc, db := newTestService(t, clk)
	seedCounter(t, db, domain.CounterNumber{
		ScreenID:     "MVD01",
		Prefix:       "VDR",
		Digit:        4,
		MaxValue:     9999,
		CurrentValue: 7,
	})

	clkBefore, err := svc.Allocate(context.Background(), nil, "MVD01")
	require.NoError(t, err)
	clk.Advance(24 * time.Hour)
	clkAfter, err := svc.Allocate(context.Background(), nil, "MVD01")
	require.NoError(t, err)

	assert.Equal(t, "VDR0008", clkBefore)
	assert.Equal(t, "VDR0009", clkAfter)
}

func TestAllocateAppendsSuffix(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, db := newTestService(t, clk)
	seedCounter(t, db, domain.CounterNumber{
		ScreenID:  "MBK01",
		Prefix:    "BNK",
		Suffix:    "HQ",
		Separator: "/",
		Digit:     3,
		MaxValue:  999,
	})

	id, err := svc.Allocate(context.Background(), nil, "MBK01")
	require.NoError(t, err)
	assert.Equal(t, "BNK001/HQ", id)
}

func TestAllocateUnknownScreen(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, _ := newTestService(t, clk)

	_, err := svc.Allocate(context.Background(), nil, "NOPE")
	assert.ErrorIs(t, err, domain.ErrScreenNotFound)
}

func TestAllocateExhaustedCounter(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, db := newTestService(t, clk)
	seedCounter(t, db, domain.CounterNumber{
		ScreenID:     "MCO01",
		Prefix:       "MS",
		Digit:        2,
		MaxValue:     2,
		CurrentValue: 2,
	})

	_, err := svc.Allocate(context.Background(), nil, "MCO01")
	assert.ErrorIs(t, err, domain.ErrCounterExhausted)

	// failed allocation must not advance the persisted counter
	var row domain.CounterNumber
	require.NoError(t, db.First(&row, "screen_id = ?", "MCO01").Error)
	assert.EqualValues(t, 2, row.CurrentValue)
}

func TestAllocateJoinsCallerTransactionAndRollsBack(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	svc, db := newTestService(t, clk)
	seedCounter(t, db, domain.CounterNumber{
		ScreenID: "MCO01",
		Prefix:   "MS",
		Digit:    5,
		MaxValue: 99999,
	})

	sentinel := assert.AnError
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := svc.Allocate(context.Background(), tx, "MCO01")
		require.NoError(t, err)
		assert.Equal(t, "MS00001", id)
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	// rollback leaves no trace of the increment
	var row domain.CounterNumber
	require.NoError(t, db.First(&row, "screen_id = ?", "MCO01").Error)
	assert.EqualValues(t, 0, row.CurrentValue)
}
