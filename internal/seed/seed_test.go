package seed

import (
	"testing"

	counterdomain "github.com/kelolahq/anggaran/internal/counter/domain"
	masterdomain "github.com/kelolahq/anggaran/internal/masterdata/domain"
	dbpkg "github.com/kelolahq/anggaran/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDefaultsIsIdempotent(t *testing.T) {
	db, err := dbpkg.NewTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&counterdomain.CounterNumber{}, &masterdomain.User{}))

	require.NoError(t, EnsureDefaults(db))
	require.NoError(t, EnsureDefaults(db))

	var counters int64
	require.NoError(t, db.Model(&counterdomain.CounterNumber{}).Count(&counters).Error)
	assert.EqualValues(t, 4, counters)

	var users int64
	require.NoError(t, db.Model(&masterdomain.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, users)
}

func TestEnsureDefaultsKeepsAdvancedCounter(t *testing.T) {
	db, err := dbpkg.NewTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&counterdomain.CounterNumber{}, &masterdomain.User{}))

	require.NoError(t, EnsureDefaults(db))
	require.NoError(t, db.Model(&counterdomain.CounterNumber{}).
		Where("screen_id = ?", "MBG01").
		Update("curr_value", 42).Error)

	require.NoError(t, EnsureDefaults(db))

	var counter counterdomain.CounterNumber
	require.NoError(t, db.First(&counter, "screen_id = ?", "MBG01").Error)
	assert.EqualValues(t, 42, counter.CurrentValue)
}
