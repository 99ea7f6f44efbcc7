package repository

import (
	"context"

	"github.com/kelolahq/anggaran/internal/budget/domain"
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

func (r *repository) Create(ctx context.Context, row *domain.Budget) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindByUniqueID(ctx context.Context, uniqueID int64) (*domain.Budget, error) {
	var row domain.Budget
	err := r.db.WithContext(ctx).
		First(&row, "unique_id = ? AND is_active = ?", uniqueID, true).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Update(ctx context.Context, row *domain.Budget) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) MaxCodeForUpdate(ctx context.Context, prefix string) (string, error) {
	// zero-padded suffixes make the lexical maximum the numeric maximum
	var codes []string
	err := dbpkg.ForUpdate(r.db.WithContext(ctx)).
		Model(&domain.Budget{}).
		Where("budget_code LIKE ?", prefix+"%").
		Order("budget_code DESC").
		Limit(1).
		Pluck("budget_code", &codes).Error
	if err != nil {
		return "", err
	}
	if len(codes) == 0 {
		return "", nil
	}
	return codes[0], nil
}

func (r *repository) CountActiveCategoryBudgets(ctx context.Context, budgetID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("ms_category_budget").
		Where("budget_id = ? AND is_active = ?", budgetID, true).
		Count(&n).Error
	return n, err
}

func (r *repository) List(ctx context.Context, q domain.ListQuery) ([]domain.Budget, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Budget{}).
		Order("budget_id ASC")

	if q.CompanyID != "" {
		query = query.Where("company_id = ?", q.CompanyID)
	}
	if q.Year != 0 {
		query = query.Where("budget_year = ?", q.Year)
	}
	if q.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if q.AfterID != "" {
		query = query.Where("budget_id > ?", q.AfterID)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var rows []domain.Budget
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
