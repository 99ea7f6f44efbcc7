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
	ErrNotFound       = errors.New("category budget not found")
	ErrConflict       = errors.New("duplicate category budget")
	// ErrBudgetNotFound means the referenced parent budget does not
	// exist or is inactive.
	ErrBudgetNotFound = errors.New("Budget data not found")
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, uniqueID, userID string) error
	Get(ctx context.Context, uniqueID string) (*Response, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
}

type CreateRequest struct {
	BudgetID            string
	SubCoaID            string
	BusinessLineID      string
	SubBusinessLine1ID  string
	SubBusinessLine2ID  string
	CategoryBudgetName  string
	TotalCategoryBudget decimal.Decimal
	UserID              string
}

type UpdateRequest struct {
	UniqueID            string
	BudgetID            string
	SubCoaID            string
	BusinessLineID      string
	SubBusinessLine1ID  string
	SubBusinessLine2ID  string
	CategoryBudgetName  string
	TotalCategoryBudget decimal.Decimal
	UserID              string
}

type ListRequest struct {
	BudgetID   string
	ActiveOnly bool
	Pagination pagination.Pagination
}

type Response struct {
	CategoryBudgetID           string          `json:"category_budget_id"`
	CategoryBudgetCode         string          `json:"category_budget_code"`
	CategoryBudgetName         string          `json:"category_budget_name"`
	BudgetID                   string          `json:"budget_id"`
	SubCoaID                   string          `json:"sub_coa_id"`
	BusinessLineID             string          `json:"business_line_id"`
	SubBusinessLine1ID         string          `json:"sub_business_line_1_id"`
	SubBusinessLine2ID         string          `json:"sub_business_line_2_id"`
	TotalCategoryBudget        decimal.Decimal `json:"total_category_budget"`
	TotalOpeningCategoryBudget decimal.Decimal `json:"total_opening_category_budget"`
	RemainingSubmit            decimal.Decimal `json:"remaining_submit"`
	RemainingActual            decimal.Decimal `json:"remaining_actual"`
	UniqueID                   string          `json:"unique_id"`
	Active                     bool            `json:"is_active"`
	CreatedBy                  string          `json:"created_by"`
	CreatedDate                time.Time       `json:"created_date"`
	UpdatedBy                  string          `json:"updated_by,omitempty"`
	UpdatedDate                *time.Time      `json:"updated_date,omitempty"`
}

type ListResponse struct {
	Items    []Response          `json:"items"`
	PageInfo pagination.PageInfo `json:"page_info"`
}

func NewResponse(row CategoryBudget) Response {
	return Response{
		CategoryBudgetID:           row.CategoryBudgetID,
		CategoryBudgetCode:         row.CategoryBudgetCode,
		CategoryBudgetName:         row.CategoryBudgetName,
		BudgetID:                   row.BudgetID,
		SubCoaID:                   row.SubCoaID,
		BusinessLineID:             row.BusinessLineID,
		SubBusinessLine1ID:         row.SubBusinessLine1ID,
		SubBusinessLine2ID:         row.SubBusinessLine2ID,
		TotalCategoryBudget:        row.TotalCategoryBudget,
		TotalOpeningCategoryBudget: row.TotalOpeningCategoryBudget,
		RemainingSubmit:            row.RemainingSubmit,
		RemainingActual:            row.RemainingActual,
		UniqueID:                   row.UniqueID.String(),
		Active:                     row.Active,
		CreatedBy:                  row.CreatedBy,
		CreatedDate:                row.CreatedDate,
		UpdatedBy:                  row.UpdatedBy,
		UpdatedDate:                row.UpdatedDate,
	}
}
