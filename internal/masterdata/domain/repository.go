package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// MasterRow is the dialect-independent projection used by the generic
// read endpoints.
type MasterRow struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Active      bool      `json:"is_active"`
	CreatedDate time.Time `json:"created_date"`
}

type ListFilter struct {
	Search     string
	ActiveOnly bool
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	// Exists reports whether exactly one active row of the kind carries
	// the identifier. Soft-deleted rows do not count.
	Exists(ctx context.Context, kind Kind, id string) (bool, error)

	FindCompany(ctx context.Context, id string) (*Company, error)
	FindDepartment(ctx context.Context, id string) (*Department, error)

	CreateCompany(ctx context.Context, row *Company) error
	FindCompanyByUniqueID(ctx context.Context, uniqueID int64) (*Company, error)
	UpdateCompany(ctx context.Context, row *Company) error

	CreateDepartment(ctx context.Context, row *Department) error
	FindDepartmentByUniqueID(ctx context.Context, uniqueID int64) (*Department, error)
	UpdateDepartment(ctx context.Context, row *Department) error

	Get(ctx context.Context, kind Kind, id string) (*MasterRow, error)
	List(ctx context.Context, kind Kind, filter ListFilter) ([]MasterRow, error)
}
