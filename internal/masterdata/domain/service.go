package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInvalidKind    = errors.New("invalid_kind")
	ErrConflict       = errors.New("duplicate master data")
)

type Service interface {
	CreateCompany(ctx context.Context, req CreateCompanyRequest) (*Company, error)
	UpdateCompany(ctx context.Context, req UpdateCompanyRequest) (*Company, error)

	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*Department, error)
	UpdateDepartment(ctx context.Context, req UpdateDepartmentRequest) (*Department, error)

	GetMaster(ctx context.Context, kind Kind, id string) (*MasterRow, error)
	ListMasters(ctx context.Context, kind Kind, filter ListFilter) ([]MasterRow, error)
}

type CreateCompanyRequest struct {
	CompanyCode string
	CompanyName string
	Address     string
	UserID      string
}

type UpdateCompanyRequest struct {
	UniqueID    string
	CompanyCode string
	CompanyName string
	Address     string
	UserID      string
}

type CreateDepartmentRequest struct {
	DepartmentCode string
	DepartmentName string
	UserID         string
}

type UpdateDepartmentRequest struct {
	UniqueID       string
	DepartmentCode string
	DepartmentName string
	UserID         string
}
