package repository

import (
	"context"

	budgetdomain "github.com/kelolahq/anggaran/internal/budget/domain"
	"github.com/kelolahq/anggaran/internal/categorybudget/domain"
	dbpkg "github.com/kelolahq/anggaran/pkg/db"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) domain.Repository {
	return &repository{db: tx}
}

func (r *repository) FindBudget(ctx context.Context, budgetID string) (*budgetdomain.Budget, error) {
	var row budgetdomain.Budget
	err := r.db.WithContext(ctx).
		First(&row, "budget_id = ? AND is_active = ?", budgetID, true).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Create(ctx context.Context, row *domain.CategoryBudget) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindByUniqueID(ctx context.Context, uniqueID int64) (*domain.CategoryBudget, error) {
	var row domain.CategoryBudget
	err := r.db.WithContext(ctx).
		First(&row, "unique_id = ? AND is_active = ?", uniqueID, true).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Update(ctx context.Context, row *domain.CategoryBudget) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) MaxCodeForUpdate(ctx context.Context, prefix string) (string, error) {
	// zero-padded suffixes make the lexical maximum the numeric maximum
	var codes []string
	err := dbpkg.ForUpdate(r.db.WithContext(ctx)).
		Model(&domain.CategoryBudget{}).
		Where("category_budget_code LIKE ?", prefix+"%").
		Order("category_budget_code DESC").
		Limit(1).
		Pluck("category_budget_code", &codes).Error
	if err != nil {
		return "", err
	}
	if len(codes) == 0 {
		return "", nil
	}
	return codes[0], nil
}

func (r *repository) List(ctx context.Context, q domain.ListQuery) ([]domain.CategoryBudget, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.CategoryBudget{}).
		Order("category_budget_id ASC")

	if q.BudgetID != "" {
		query = query.Where("budget_id = ?", q.BudgetID)
	}
	if q.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if q.AfterID != "" {
		query = query.Where("category_budget_id > ?", q.AfterID)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var rows []domain.CategoryBudget
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
