// Package duplicate counts active rows colliding with a candidate under a
// declarative composite-key policy, so every entity shares one detector
// instead of ad hoc per-table queries.
package duplicate

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	dbpkg "github.com/kelolahq/anggaran/pkg/db"
	"gorm.io/gorm"
)

// Field matches one column against a candidate value.
type Field struct {
	Column string
	Value  any
}

// Group is a set of fields that must all match (AND).
type Group []Field

// Spec describes one uniqueness scope. Groups are OR'd together: a row is a
// duplicate when it is active and any group matches in full. On update,
// ExcludeUniqueID removes the row being updated from consideration.
type Spec struct {
	Table           string
	Groups          []Group
	ExcludeUniqueID snowflake.ID
}

type Detector struct {
	db *gorm.DB
}

func NewDetector(db *gorm.DB) *Detector {
	return &Detector{db: db}
}

func (d *Detector) WithTx(tx *gorm.DB) *Detector {
	return &Detector{db: tx}
}

// Count returns how many active rows collide with the spec. Any result
// greater than zero means the caller must reject with a conflict.
//
// The count is a locking read. A plain COUNT inside REPEATABLE READ reads
// the transaction snapshot, so a transaction that blocked on the code-scope
// scan would resume, see zero rows, and insert a duplicate the winner just
// committed. FOR UPDATE forces a current read over the matching rows.
func (d *Detector) Count(ctx context.Context, spec Spec) (int64, error) {
	var n int64
	if err := d.countQuery(d.db.WithContext(ctx), spec, &n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (d *Detector) countQuery(tx *gorm.DB, spec Spec, n *int64) *gorm.DB {
	query := dbpkg.ForUpdate(tx).
		Table(spec.Table).
		Where("is_active = ?", true)

	if cond, args := buildGroups(spec.Groups); cond != "" {
		query = query.Where(cond, args...)
	}
	if spec.ExcludeUniqueID != 0 {
		query = query.Where("unique_id <> ?", spec.ExcludeUniqueID)
	}

	return query.Count(n)
}

func buildGroups(groups []Group) (string, []any) {
	var (
		parts []string
		args  []any
	)
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		conds := make([]string, 0, len(group))
		for _, field := range group {
			conds = append(conds, field.Column+" = ?")
			args = append(args, field.Value)
		}
		parts = append(parts, "("+strings.Join(conds, " AND ")+")")
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}
