package duplicate

import (
	"context"
	"testing"

	dbpkg "github.com/kelolahq/anggaran/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := dbpkg.NewTest()
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE ms_company (
		company_id TEXT PRIMARY KEY,
		company_code TEXT NOT NULL,
		company_name TEXT NOT NULL,
		unique_id INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1
	)`).Error)

	seed := []struct {
		id, code, name string
		uniqueID       int64
		active         bool
	}{
		{"MCO0001", "EAU", "Eau Corp", 101, true},
		{"MCO0002", "XYZ", "Xyz Corp", 102, true},
		{"MCO0003", "OLD", "Old Corp", 103, false},
	}
	for _, row := range seed {
		require.NoError(t, db.Exec(
			`INSERT INTO ms_company (company_id, company_code, company_name, unique_id, is_active) VALUES (?, ?, ?, ?, ?)`,
			row.id, row.code, row.name, row.uniqueID, row.active,
		).Error)
	}
	return db
}

func TestCountMatchAnyGroup(t *testing.T) {
	db := newTestDB(t)
	det := NewDetector(db)

	// code collides, name does not
	n, err := det.Count(context.Background(), Spec{
		Table: "ms_company",
		Groups: []Group{
			{{Column: "company_code", Value: "EAU"}},
			{{Column: "company_name", Value: "Fresh Corp"}},
		},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCountMatchAllWithinGroup(t *testing.T) {
	db := newTestDB(t)
	det := NewDetector(db)

	// both fields must match inside a single group
	n, err := det.Count(context.Background(), Spec{
		Table: "ms_company",
		Groups: []Group{
			{{Column: "company_code", Value: "EAU"}, {Column: "company_name", Value: "Wrong Name"}},
		},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestCountIgnoresInactiveRows(t *testing.T) {
	db := newTestDB(t)
	det := NewDetector(db)

	n, err := det.Count(context.Background(), Spec{
		Table:  "ms_company",
		Groups: []Group{{{Column: "company_code", Value: "OLD"}}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestCountExcludesSelfOnUpdate(t *testing.T) {
	db := newTestDB(t)
	det := NewDetector(db)

	spec := Spec{
		Table:  "ms_company",
		Groups: []Group{{{Column: "company_code", Value: "EAU"}}},
	}

	n, err := det.Count(context.Background(), spec)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	spec.ExcludeUniqueID = 101
	n, err = det.Count(context.Background(), spec)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestCountEmptyGroupsCountsAllActive(t *testing.T) {
	db := newTestDB(t)
	det := NewDetector(db)

	n, err := det.Count(context.Background(), Spec{Table: "ms_company"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

// A plain COUNT under REPEATABLE READ reads the transaction snapshot and
// misses rows a concurrent transaction committed while this one was blocked
// on the code-scope scan. The count must therefore be a locking read on
// dialects with row locks.
func TestCountIsLockingReadOnMySQL(t *testing.T) {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "root:@tcp(127.0.0.1:3306)/anggaran?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	det := NewDetector(db)
	var n int64
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return det.countQuery(tx, Spec{
			Table:  "ms_budget",
			Groups: []Group{{{Column: "budget_code", Value: "B-EAU-25-0001"}}},
		}, &n)
	})

	assert.Contains(t, sql, "FOR UPDATE")
}

func TestCountSkipsLockClauseOnSQLite(t *testing.T) {
	db := newTestDB(t)

	det := NewDetector(db)
	var n int64
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return det.countQuery(tx, Spec{
			Table:  "ms_company",
			Groups: []Group{{{Column: "company_code", Value: "EAU"}}},
		}, &n)
	})

	assert.NotContains(t, sql, "FOR UPDATE")
}
