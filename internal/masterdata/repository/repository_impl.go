package repository

import (
	"context"
	"fmt"

	"github.com/kelolahq/anggaran/internal/masterdata/domain"
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

func (r *repository) Exists(ctx context.Context, kind domain.Kind, id string) (bool, error) {
	if !kind.Valid() {
		return false, domain.ErrInvalidKind
	}
	meta := kind.Meta()

	var n int64
	err := r.db.WithContext(ctx).
		Table(meta.Table).
		Where(meta.PK+" = ? AND is_active = ?", id, true).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *repository) FindCompany(ctx context.Context, id string) (*domain.Company, error) {
	var row domain.Company
	err := r.db.WithContext(ctx).
		First(&row, "company_id = ? AND is_active = ?", id, true).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindDepartment(ctx context.Context, id string) (*domain.Department, error) {
	var row domain.Department
	err := r.db.WithContext(ctx).
		First(&row, "department_id = ? AND is_active = ?", id, true).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) CreateCompany(ctx context.Context, row *domain.Company) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindCompanyByUniqueID(ctx context.Context, uniqueID int64) (*domain.Company, error) {
	var row domain.Company
	err := r.db.WithContext(ctx).
		First(&row, "unique_id = ? AND is_active = ?", uniqueID, true).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) UpdateCompany(ctx context.Context, row *domain.Company) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) CreateDepartment(ctx context.Context, row *domain.Department) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindDepartmentByUniqueID(ctx context.Context, uniqueID int64) (*domain.Department, error) {
	var row domain.Department
	err := r.db.WithContext(ctx).
		First(&row, "unique_id = ? AND is_active = ?", uniqueID, true).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) UpdateDepartment(ctx context.Context, row *domain.Department) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) Get(ctx context.Context, kind domain.Kind, id string) (*domain.MasterRow, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidKind
	}
	meta := kind.Meta()

	var row domain.MasterRow
	err := r.db.WithContext(ctx).
		Table(meta.Table).
		Select(fmt.Sprintf("%s AS id, %s AS code, %s AS name, is_active AS active, created_date", meta.PK, meta.CodeCol, meta.NameCol)).
		Where(meta.PK+" = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) List(ctx context.Context, kind domain.Kind, filter domain.ListFilter) ([]domain.MasterRow, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidKind
	}
	meta := kind.Meta()

	query := r.db.WithContext(ctx).
		Table(meta.Table).
		Select(fmt.Sprintf("%s AS id, %s AS code, %s AS name, is_active AS active, created_date", meta.PK, meta.CodeCol, meta.NameCol)).
		Order(meta.PK + " ASC")

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(fmt.Sprintf("%s LIKE ? OR %s LIKE ?", meta.CodeCol, meta.NameCol), like, like)
	}

	var rows []domain.MasterRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
