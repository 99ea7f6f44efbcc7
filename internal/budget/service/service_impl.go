package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/kelolahq/anggaran/internal/audit"
	"github.com/kelolahq/anggaran/internal/budget/domain"
	"github.com/kelolahq/anggaran/internal/clock"
	"github.com/kelolahq/anggaran/internal/codegen"
	counterdomain "github.com/kelolahq/anggaran/internal/counter/domain"
	"github.com/kelolahq/anggaran/internal/duplicate"
	masterdomain "github.com/kelolahq/anggaran/internal/masterdata/domain"
	"github.com/kelolahq/anggaran/pkg/db/pagination"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const screenBudget = "MBG01"

type service struct {
	db       *gorm.DB
	repo     domain.Repository
	masters  masterdomain.Repository
	counters counterdomain.Service
	detector *duplicate.Detector
	recorder *audit.Recorder
	genID    *snowflake.Node
	clock    clock.Clock
	log      *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo domain.Repository,
	masters masterdomain.Repository,
	counters counterdomain.Service,
	detector *duplicate.Detector,
	recorder *audit.Recorder,
	genID *snowflake.Node,
	clk clock.Clock,
	log *zap.Logger,
) domain.Service {
	return &service{
		db:       db,
		repo:     repo,
		masters:  masters,
		counters: counters,
		detector: detector,
		recorder: recorder,
		genID:    genID,
		clock:    clk,
		log:      log,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	if err := validateScope(req.CompanyID, req.BrandID, req.BranchID, req.DepartmentID, req.Year, req.UserID); err != nil {
		return nil, err
	}
	if req.TotalBudget.IsNegative() {
		return nil, domain.ErrInvalidRequest
	}

	var out *domain.Response
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		masters := s.masters.WithTx(tx)

		if err := masterdomain.ValidateRefs(ctx, masters,
			masterdomain.Ref{Kind: masterdomain.KindCompany, ID: req.CompanyID},
			masterdomain.Ref{Kind: masterdomain.KindBrand, ID: req.BrandID},
			masterdomain.Ref{Kind: masterdomain.KindBranch, ID: req.BranchID},
			masterdomain.Ref{Kind: masterdomain.KindDepartment, ID: req.DepartmentID},
			masterdomain.Ref{Kind: masterdomain.KindUser, ID: req.UserID},
		); err != nil {
			return err
		}

		company, err := masters.FindCompany(ctx, req.CompanyID)
		if err != nil {
			return err
		}

		code, err := s.nextCode(ctx, repo, company.CompanyCode, req.Year)
		if err != nil {
			return err
		}

		n, err := s.detector.WithTx(tx).Count(ctx, duplicate.Spec{
			Table: "ms_budget",
			Groups: []duplicate.Group{
				{{Column: "budget_code", Value: code}},
				{
					{Column: "company_id", Value: req.CompanyID},
					{Column: "brand_id", Value: req.BrandID},
					{Column: "branch_id", Value: req.BranchID},
					{Column: "department_id", Value: req.DepartmentID},
					{Column: "budget_year", Value: req.Year},
				},
			},
		})
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}

		budgetID, err := s.counters.Allocate(ctx, tx, screenBudget)
		if err != nil {
			return err
		}

		row := domain.Budget{
			BudgetID:     budgetID,
			BudgetCode:   code,
			CompanyID:    req.CompanyID,
			BrandID:      req.BrandID,
			BranchID:     req.BranchID,
			DepartmentID: req.DepartmentID,
			Year:         req.Year,
			TotalBudget:  req.TotalBudget,
			UniqueID:     s.genID.Generate(),
			Active:       true,
			CreatedBy:    req.UserID,
			CreatedDate:  s.clock.Now(),
		}
		if err := repo.Create(ctx, &row); err != nil {
			return err
		}

		if err := s.recorder.Record(ctx, tx, audit.Entry{
			Entity:   "budget",
			EntityID: row.BudgetID,
			Action:   audit.ActionCreate,
			ActorID:  req.UserID,
			Payload:  map[string]any{"budget_code": row.BudgetCode, "year": row.Year},
		}); err != nil {
			return err
		}

		resp := domain.NewResponse(row)
		out = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("budget created",
		zap.String("budget_id", out.BudgetID),
		zap.String("budget_code", out.BudgetCode),
	)
	return out, nil
}

func (s *service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	uniqueID, err := parseUniqueID(req.UniqueID)
	if err != nil {
		return nil, err
	}
	if err := validateScope(req.CompanyID, req.BrandID, req.BranchID, req.DepartmentID, req.Year, req.UserID); err != nil {
		return nil, err
	}
	if req.TotalBudget.IsNegative() {
		return nil, domain.ErrInvalidRequest
	}

	var out *domain.Response
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		masters := s.masters.WithTx(tx)

		row, err := repo.FindByUniqueID(ctx, uniqueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if err := masterdomain.ValidateRefs(ctx, masters,
			masterdomain.Ref{Kind: masterdomain.KindCompany, ID: req.CompanyID},
			masterdomain.Ref{Kind: masterdomain.KindBrand, ID: req.BrandID},
			masterdomain.Ref{Kind: masterdomain.KindBranch, ID: req.BranchID},
			masterdomain.Ref{Kind: masterdomain.KindDepartment, ID: req.DepartmentID},
			masterdomain.Ref{Kind: masterdomain.KindUser, ID: req.UserID},
		); err != nil {
			return err
		}

		children, err := repo.CountActiveCategoryBudgets(ctx, row.BudgetID)
		if err != nil {
			return err
		}
		if children > 0 {
			return domain.ErrInUse
		}

		// the code scope is company+year; anything else changes in place
		code := row.BudgetCode
		if row.CompanyID != req.CompanyID || row.Year != req.Year {
			company, err := masters.FindCompany(ctx, req.CompanyID)
			if err != nil {
				return err
			}
			code, err = s.nextCode(ctx, repo, company.CompanyCode, req.Year)
			if err != nil {
				return err
			}
		}

		n, err := s.detector.WithTx(tx).Count(ctx, duplicate.Spec{
			Table: "ms_budget",
			Groups: []duplicate.Group{
				{{Column: "budget_code", Value: code}},
				{
					{Column: "company_id", Value: req.CompanyID},
					{Column: "brand_id", Value: req.BrandID},
					{Column: "branch_id", Value: req.BranchID},
					{Column: "department_id", Value: req.DepartmentID},
					{Column: "budget_year", Value: req.Year},
				},
			},
			ExcludeUniqueID: row.UniqueID,
		})
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}
		row.BudgetCode = code

		now := s.clock.Now()
		row.CompanyID = req.CompanyID
		row.BrandID = req.BrandID
		row.BranchID = req.BranchID
		row.DepartmentID = req.DepartmentID
		row.Year = req.Year
		row.TotalBudget = req.TotalBudget
		row.UpdatedBy = req.UserID
		row.UpdatedDate = &now
		if err := repo.Update(ctx, row); err != nil {
			return err
		}

		if err := s.recorder.Record(ctx, tx, audit.Entry{
			Entity:   "budget",
			EntityID: row.BudgetID,
			Action:   audit.ActionUpdate,
			ActorID:  req.UserID,
			Payload:  map[string]any{"budget_code": row.BudgetCode, "year": row.Year},
		}); err != nil {
			return err
		}

		resp := domain.NewResponse(*row)
		out = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *service) Delete(ctx context.Context, uniqueID, userID string) error {
	id, err := parseUniqueID(uniqueID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(userID) == "" {
		return domain.ErrInvalidRequest
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		row, err := repo.FindByUniqueID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		children, err := repo.CountActiveCategoryBudgets(ctx, row.BudgetID)
		if err != nil {
			return err
		}
		if children > 0 {
			return domain.ErrInUse
		}

		now := s.clock.Now()
		row.Active = false
		row.UpdatedBy = userID
		row.UpdatedDate = &now
		if err := repo.Update(ctx, row); err != nil {
			return err
		}

		return s.recorder.Record(ctx, tx, audit.Entry{
			Entity:   "budget",
			EntityID: row.BudgetID,
			Action:   audit.ActionDelete,
			ActorID:  userID,
			Payload:  map[string]any{"budget_code": row.BudgetCode},
		})
	})
}

func (s *service) Get(ctx context.Context, uniqueID string) (*domain.Response, error) {
	id, err := parseUniqueID(uniqueID)
	if err != nil {
		return nil, err
	}

	row, err := s.repo.FindByUniqueID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	resp := domain.NewResponse(*row)
	return &resp, nil
}

func (s *service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	size := req.Pagination.PageSize
	if size <= 0 {
		size = 10
	}

	afterID := ""
	if req.Pagination.PageToken != "" {
		cursor, err := pagination.DecodeCursor(req.Pagination.PageToken)
		if err != nil {
			return nil, domain.ErrInvalidRequest
		}
		afterID = cursor.ID
	}

	rows, err := s.repo.List(ctx, domain.ListQuery{
		CompanyID:  req.CompanyID,
		Year:       req.Year,
		ActiveOnly: req.ActiveOnly,
		AfterID:    afterID,
		Limit:      size + 1,
	})
	if err != nil {
		return nil, err
	}

	hasMore := len(rows) > size
	if hasMore {
		rows = rows[:size]
	}

	items := make([]domain.Response, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.NewResponse(row))
	}

	info := pagination.PageInfo{HasMore: hasMore}
	if hasMore && len(rows) > 0 {
		token, err := pagination.EncodeCursor(pagination.Cursor{ID: rows[len(rows)-1].BudgetID})
		if err != nil {
			return nil, err
		}
		info.NextPageToken = token
	}

	return &domain.ListResponse{Items: items, PageInfo: info}, nil
}

func (s *service) nextCode(ctx context.Context, repo domain.Repository, companyCode string, year int) (string, error) {
	prefix := codegen.BudgetPrefix(companyCode, year)
	highest, err := repo.MaxCodeForUpdate(ctx, prefix)
	if err != nil {
		return "", err
	}
	return codegen.BudgetCode(companyCode, year, codegen.NextSuffix(highest)), nil
}

func validateScope(companyID, brandID, branchID, departmentID string, year int, userID string) error {
	if strings.TrimSpace(companyID) == "" ||
		strings.TrimSpace(brandID) == "" ||
		strings.TrimSpace(branchID) == "" ||
		strings.TrimSpace(departmentID) == "" ||
		strings.TrimSpace(userID) == "" ||
		year <= 0 {
		return domain.ErrInvalidRequest
	}
	return nil
}

func parseUniqueID(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, domain.ErrInvalidRequest
	}
	parsed, err := snowflake.ParseString(trimmed)
	if err != nil || parsed == 0 {
		return 0, domain.ErrInvalidRequest
	}
	return parsed.Int64(), nil
}
