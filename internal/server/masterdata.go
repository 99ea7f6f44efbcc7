package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	masterdomain "github.com/kelolahq/anggaran/internal/masterdata/domain"
)

type companyRequest struct {
	CompanyCode string `json:"company_code"`
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	UserID      string `json:"user_id"`
}

func (s *Server) CreateCompany(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, masterdomain.ErrInvalidRequest)
		return
	}

	resp, err := s.masterSvc.CreateCompany(c.Request.Context(), masterdomain.CreateCompanyRequest{
		CompanyCode: strings.TrimSpace(req.CompanyCode),
		CompanyName: strings.TrimSpace(req.CompanyName),
		Address:     strings.TrimSpace(req.Address),
		UserID:      strings.TrimSpace(req.UserID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

func (s *Server) UpdateCompany(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, masterdomain.ErrInvalidRequest)
		return
	}

	resp, err := s.masterSvc.UpdateCompany(c.Request.Context(), masterdomain.UpdateCompanyRequest{
		UniqueID:    c.Param("unique_id"),
		CompanyCode: strings.TrimSpace(req.CompanyCode),
		CompanyName: strings.TrimSpace(req.CompanyName),
		Address:     strings.TrimSpace(req.Address),
		UserID:      strings.TrimSpace(req.UserID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

type departmentRequest struct {
	DepartmentCode string `json:"department_code"`
	DepartmentName string `json:"department_name"`
	UserID         string `json:"user_id"`
}

func (s *Server) CreateDepartment(c *gin.Context) {
	var req departmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, masterdomain.ErrInvalidRequest)
		return
	}

	resp, err := s.masterSvc.CreateDepartment(c.Request.Context(), masterdomain.CreateDepartmentRequest{
		DepartmentCode: strings.TrimSpace(req.DepartmentCode),
		DepartmentName: strings.TrimSpace(req.DepartmentName),
		UserID:         strings.TrimSpace(req.UserID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

func (s *Server) UpdateDepartment(c *gin.Context) {
	var req departmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, masterdomain.ErrInvalidRequest)
		return
	}

	resp, err := s.masterSvc.UpdateDepartment(c.Request.Context(), masterdomain.UpdateDepartmentRequest{
		UniqueID:       c.Param("unique_id"),
		DepartmentCode: strings.TrimSpace(req.DepartmentCode),
		DepartmentName: strings.TrimSpace(req.DepartmentName),
		UserID:         strings.TrimSpace(req.UserID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

func (s *Server) GetMaster(c *gin.Context) {
	kind := masterdomain.Kind(c.Param("kind"))
	resp, err := s.masterSvc.GetMaster(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

func (s *Server) ListMasters(c *gin.Context) {
	var query struct {
		Search     string `form:"search"`
		ActiveOnly bool   `form:"active_only"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, masterdomain.ErrInvalidRequest)
		return
	}

	kind := masterdomain.Kind(c.Param("kind"))
	resp, err := s.masterSvc.ListMasters(c.Request.Context(), kind, masterdomain.ListFilter{
		Search:     strings.TrimSpace(query.Search),
		ActiveOnly: query.ActiveOnly,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}
