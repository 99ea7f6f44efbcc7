package domain

import (
	"context"

	"gorm.io/gorm"
)

type ListQuery struct {
	CompanyID  string
	Year       int
	ActiveOnly bool
	AfterID    string
	Limit      int
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, row *Budget) error
	FindByUniqueID(ctx context.Context, uniqueID int64) (*Budget, error)
	Update(ctx context.Context, row *Budget) error
	// MaxCodeForUpdate returns the highest existing budget code sharing the
	// prefix, locking the competing rows so two transactions cannot compute
	// the same next suffix. Returns "" when the scope has no codes yet.
	MaxCodeForUpdate(ctx context.Context, prefix string) (string, error)
	// CountActiveCategoryBudgets reports how many active category budgets
	// still reference the budget; a non-zero count blocks update and delete.
	CountActiveCategoryBudgets(ctx context.Context, budgetID string) (int64, error)
	List(ctx context.Context, q ListQuery) ([]Budget, error)
}
