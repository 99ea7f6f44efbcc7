package domain

import (
	"context"

	budgetdomain "github.com/kelolahq/anggaran/internal/budget/domain"
	"gorm.io/gorm"
)

// ListQuery narrows List to a budget and/or active rows, with a
// keyset cursor on category_budget_id.
type ListQuery struct {
	BudgetID   string
	ActiveOnly bool
	AfterID    string
	Limit      int
}

// Repository persists category budgets.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	// FindBudget loads the active parent budget.
	FindBudget(ctx context.Context, budgetID string) (*budgetdomain.Budget, error)

	Create(ctx context.Context, row *CategoryBudget) error
	FindByUniqueID(ctx context.Context, uniqueID int64) (*CategoryBudget, error)
	Update(ctx context.Context, row *CategoryBudget) error

	// MaxCodeForUpdate returns the lexically greatest category_budget_code
	// with the given prefix, locking the matching rows. Returns "" when no
	// code exists under the prefix yet.
	MaxCodeForUpdate(ctx context.Context, prefix string) (string, error)

	List(ctx context.Context, q ListQuery) ([]CategoryBudget, error)
}
