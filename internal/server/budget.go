package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	budgetdomain "github.com/kelolahq/anggaran/internal/budget/domain"
	"github.com/kelolahq/anggaran/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

type budgetRequest struct {
	CompanyID    string          `json:"company_id"`
	BrandID      string          `json:"brand_id"`
	BranchID     string          `json:"branch_id"`
	DepartmentID string          `json:"department_id"`
	Year         int             `json:"budget_year"`
	TotalBudget  decimal.Decimal `json:"total_budget"`
	UserID       string          `json:"user_id"`
}

func (s *Server) CreateBudget(c *gin.Context) {
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, budgetdomain.ErrInvalidRequest)
		return
	}

	resp, err := s.budgetSvc.Create(c.Request.Context(), budgetdomain.CreateRequest{
		CompanyID:    strings.TrimSpace(req.CompanyID),
		BrandID:      strings.TrimSpace(req.BrandID),
		BranchID:     strings.TrimSpace(req.BranchID),
		DepartmentID: strings.TrimSpace(req.DepartmentID),
		Year:         req.Year,
		TotalBudget:  req.TotalBudget,
		UserID:       strings.TrimSpace(req.UserID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

func (s *Server) UpdateBudget(c *gin.Context) {
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, budgetdomain.ErrInvalidRequest)
		return
	}

	resp, err := s.budgetSvc.Update(c.Request.Context(), budgetdomain.UpdateRequest{
		UniqueID:     c.Param("unique_id"),
		CompanyID:    strings.TrimSpace(req.CompanyID),
		BrandID:      strings.TrimSpace(req.BrandID),
		BranchID:     strings.TrimSpace(req.BranchID),
		DepartmentID: strings.TrimSpace(req.DepartmentID),
		Year:         req.Year,
		TotalBudget:  req.TotalBudget,
		UserID:       strings.TrimSpace(req.UserID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

func (s *Server) DeleteBudget(c *gin.Context) {
	userID, err := requireUserID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.budgetSvc.Delete(c.Request.Context(), c.Param("unique_id"), userID); err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, nil)
}

func (s *Server) GetBudget(c *gin.Context) {
	resp, err := s.budgetSvc.Get(c.Request.Context(), c.Param("unique_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

func (s *Server) ListBudgets(c *gin.Context) {
	var query struct {
		pagination.Pagination
		CompanyID  string `form:"company_id"`
		Year       int    `form:"budget_year"`
		ActiveOnly bool   `form:"active_only"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, budgetdomain.ErrInvalidRequest)
		return
	}

	resp, err := s.budgetSvc.List(c.Request.Context(), budgetdomain.ListRequest{
		CompanyID:  strings.TrimSpace(query.CompanyID),
		Year:       query.Year,
		ActiveOnly: query.ActiveOnly,
		Pagination: query.Pagination,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}
