package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	categorybudgetdomain "github.com/kelolahq/anggaran/internal/categorybudget/domain"
	"github.com/kelolahq/anggaran/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

type categoryBudgetRequest struct {
	BudgetID            string          `json:"budget_id"`
	SubCoaID            string          `json:"sub_coa_id"`
	BusinessLineID      string          `json:"business_line_id"`
	SubBusinessLine1ID  string          `json:"sub_business_line_1_id"`
	SubBusinessLine2ID  string          `json:"sub_business_line_2_id"`
	CategoryBudgetName  string          `json:"category_budget_name"`
	TotalCategoryBudget decimal.Decimal `json:"total_category_budget"`
	UserID              string          `json:"user_id"`
}

func (s *Server) CreateCategoryBudget(c *gin.Context) {
	var req categoryBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, categorybudgetdomain.ErrInvalidRequest)
		return
	}

	resp, err := s.categoryBudgetSvc.Create(c.Request.Context(), categorybudgetdomain.CreateRequest{
		BudgetID:            strings.TrimSpace(req.BudgetID),
		SubCoaID:            strings.TrimSpace(req.SubCoaID),
		BusinessLineID:      strings.TrimSpace(req.BusinessLineID),
		SubBusinessLine1ID:  strings.TrimSpace(req.SubBusinessLine1ID),
		SubBusinessLine2ID:  strings.TrimSpace(req.SubBusinessLine2ID),
		CategoryBudgetName:  strings.TrimSpace(req.CategoryBudgetName),
		TotalCategoryBudget: req.TotalCategoryBudget,
		UserID:              strings.TrimSpace(req.UserID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

func (s *Server) UpdateCategoryBudget(c *gin.Context) {
	var req categoryBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, categorybudgetdomain.ErrInvalidRequest)
		return
	}

	resp, err := s.categoryBudgetSvc.Update(c.Request.Context(), categorybudgetdomain.UpdateRequest{
		UniqueID:            c.Param("unique_id"),
		BudgetID:            strings.TrimSpace(req.BudgetID),
		SubCoaID:            strings.TrimSpace(req.SubCoaID),
		BusinessLineID:      strings.TrimSpace(req.BusinessLineID),
		SubBusinessLine1ID:  strings.TrimSpace(req.SubBusinessLine1ID),
		SubBusinessLine2ID:  strings.TrimSpace(req.SubBusinessLine2ID),
		CategoryBudgetName:  strings.TrimSpace(req.CategoryBudgetName),
		TotalCategoryBudget: req.TotalCategoryBudget,
		UserID:              strings.TrimSpace(req.UserID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

func (s *Server) DeleteCategoryBudget(c *gin.Context) {
	userID, err := requireUserID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.categoryBudgetSvc.Delete(c.Request.Context(), c.Param("unique_id"), userID); err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, nil)
}

func (s *Server) GetCategoryBudget(c *gin.Context) {
	resp, err := s.categoryBudgetSvc.Get(c.Request.Context(), c.Param("unique_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

func (s *Server) ListCategoryBudgets(c *gin.Context) {
	var query struct {
		pagination.Pagination
		BudgetID   string `form:"budget_id"`
		ActiveOnly bool   `form:"active_only"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, categorybudgetdomain.ErrInvalidRequest)
		return
	}

	resp, err := s.categoryBudgetSvc.List(c.Request.Context(), categorybudgetdomain.ListRequest{
		BudgetID:   strings.TrimSpace(query.BudgetID),
		ActiveOnly: query.ActiveOnly,
		Pagination: query.Pagination,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}
