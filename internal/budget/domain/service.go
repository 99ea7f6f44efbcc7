package domain

import (
	"context"
	"errors"
	"time"

	"github.com/kelolahq/anggaran/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNotFound       = errors.New("budget not found")
	ErrConflict       = errors.New("duplicate budget")
	// ErrInUse blocks updates and deletes while active category budgets
	// still reference the budget.
	ErrInUse = errors.New("budget has active category budgets")
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, uniqueID, userID string) error
	Get(ctx context.Context, uniqueID string) (*Response, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
}

type CreateRequest struct {
	CompanyID    string
	BrandID      string
	BranchID     string
	DepartmentID string
	Year         int
	TotalBudget  decimal.Decimal
	UserID       string
}

type UpdateRequest struct {
	UniqueID     string
	CompanyID    string
	BrandID      string
	BranchID     string
	DepartmentID string
	Year         int
	TotalBudget  decimal.Decimal
	UserID       string
}

type ListRequest struct {
	CompanyID  string
	Year       int
	ActiveOnly bool
	Pagination pagination.Pagination
}

type Response struct {
	BudgetID     string          `json:"budget_id"`
	BudgetCode   string          `json:"budget_code"`
	CompanyID    string          `json:"company_id"`
	BrandID      string          `json:"brand_id"`
	BranchID     string          `json:"branch_id"`
	DepartmentID string          `json:"department_id"`
	Year         int             `json:"year"`
	TotalBudget  decimal.Decimal `json:"total_budget"`
	UniqueID     string          `json:"unique_id"`
	Active       bool            `json:"is_active"`
	CreatedBy    string          `json:"created_by"`
	CreatedDate  time.Time       `json:"created_date"`
	UpdatedBy    string          `json:"updated_by,omitempty"`
	UpdatedDate  *time.Time      `json:"updated_date,omitempty"`
}

type ListResponse struct {
	Items    []Response          `json:"items"`
	PageInfo pagination.PageInfo `json:"page_info"`
}

func NewResponse(row Budget) Response {
	return Response{
		BudgetID:     row.BudgetID,
		BudgetCode:   row.BudgetCode,
		CompanyID:    row.CompanyID,
		BrandID:      row.BrandID,
		BranchID:     row.BranchID,
		DepartmentID: row.DepartmentID,
		Year:         row.Year,
		TotalBudget:  row.TotalBudget,
		UniqueID:     row.UniqueID.String(),
		Active:       row.Active,
		CreatedBy:    row.CreatedBy,
		CreatedDate:  row.CreatedDate,
		UpdatedBy:    row.UpdatedBy,
		UpdatedDate:  row.UpdatedDate,
	}
}
