package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/kelolahq/anggaran/internal/audit"
	budgetdomain "github.com/kelolahq/anggaran/internal/budget/domain"
	"github.com/kelolahq/anggaran/internal/categorybudget/domain"
	"github.com/kelolahq/anggaran/internal/clock"
	"github.com/kelolahq/anggaran/internal/codegen"
	counterdomain "github.com/kelolahq/anggaran/internal/counter/domain"
	"github.com/kelolahq/anggaran/internal/duplicate"
	masterdomain "github.com/kelolahq/anggaran/internal/masterdata/domain"
	"github.com/kelolahq/anggaran/pkg/db/pagination"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const screenCategoryBudget = "MCB01"

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
	if err := validateScope(req.BudgetID, req.SubCoaID, req.BusinessLineID,
		req.SubBusinessLine1ID, req.SubBusinessLine2ID, req.CategoryBudgetName, req.UserID); err != nil {
		return nil, err
	}
	if req.TotalCategoryBudget.IsNegative() {
		return nil, domain.ErrInvalidRequest
	}

	var out *domain.Response
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		masters := s.masters.WithTx(tx)

		budget, err := repo.FindBudget(ctx, req.BudgetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBudgetNotFound
			}
			return err
		}

		if err := masterdomain.ValidateRefs(ctx, masters,
			masterdomain.Ref{Kind: masterdomain.KindSubCoa, ID: req.SubCoaID},
			masterdomain.Ref{Kind: masterdomain.KindBusinessLine, ID: req.BusinessLineID},
			masterdomain.Ref{Kind: masterdomain.KindSubBusinessLine1, ID: req.SubBusinessLine1ID},
			masterdomain.Ref{Kind: masterdomain.KindSubBusinessLine2, ID: req.SubBusinessLine2ID},
			masterdomain.Ref{Kind: masterdomain.KindUser, ID: req.UserID},
		); err != nil {
			return err
		}

		code, err := s.nextCode(ctx, repo, masters, budget)
		if err != nil {
			return err
		}

		n, err := s.detector.WithTx(tx).Count(ctx, duplicate.Spec{
			Table: "ms_category_budget",
			Groups: []duplicate.Group{
				{{Column: "category_budget_code", Value: code}},
				{
					{Column: "budget_id", Value: req.BudgetID},
					{Column: "sub_coa_id", Value: req.SubCoaID},
					{Column: "business_line_id", Value: req.BusinessLineID},
					{Column: "sub_business_line_1_id", Value: req.SubBusinessLine1ID},
					{Column: "sub_business_line_2_id", Value: req.SubBusinessLine2ID},
					{Column: "category_budget_name", Value: req.CategoryBudgetName},
				},
			},
		})
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}

		categoryBudgetID, err := s.counters.Allocate(ctx, tx, screenCategoryBudget)
		if err != nil {
			return err
		}

		// the remaining balances open at the full amount; submission and
		// actualization flows draw them down later
		row := domain.CategoryBudget{
			CategoryBudgetID:           categoryBudgetID,
			CategoryBudgetCode:         code,
			CategoryBudgetName:         req.CategoryBudgetName,
			BudgetID:                   req.BudgetID,
			SubCoaID:                   req.SubCoaID,
			BusinessLineID:             req.BusinessLineID,
			SubBusinessLine1ID:         req.SubBusinessLine1ID,
			SubBusinessLine2ID:         req.SubBusinessLine2ID,
			TotalCategoryBudget:        req.TotalCategoryBudget,
			TotalOpeningCategoryBudget: req.TotalCategoryBudget,
			RemainingSubmit:            req.TotalCategoryBudget,
			RemainingActual:            req.TotalCategoryBudget,
			UniqueID:                   s.genID.Generate(),
			Active:                     true,
			CreatedBy:                  req.UserID,
			CreatedDate:                s.clock.Now(),
		}
		if err := repo.Create(ctx, &row); err != nil {
			return err
		}

		if err := s.recorder.Record(ctx, tx, audit.Entry{
			Entity:   "category_budget",
			EntityID: row.CategoryBudgetID,
			Action:   audit.ActionCreate,
			ActorID:  req.UserID,
			Payload:  map[string]any{"category_budget_code": row.CategoryBudgetCode, "budget_id": row.BudgetID},
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

	s.log.Info("category budget created",
		zap.String("category_budget_id", out.CategoryBudgetID),
		zap.String("category_budget_code", out.CategoryBudgetCode),
	)
	return out, nil
}

func (s *service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	uniqueID, err := parseUniqueID(req.UniqueID)
	if err != nil {
		return nil, err
	}
	if err := validateScope(req.BudgetID, req.SubCoaID, req.BusinessLineID,
		req.SubBusinessLine1ID, req.SubBusinessLine2ID, req.CategoryBudgetName, req.UserID); err != nil {
		return nil, err
	}
	if req.TotalCategoryBudget.IsNegative() {
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

		budget, err := repo.FindBudget(ctx, req.BudgetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBudgetNotFound
			}
			return err
		}

		if err := masterdomain.ValidateRefs(ctx, masters,
			masterdomain.Ref{Kind: masterdomain.KindSubCoa, ID: req.SubCoaID},
			masterdomain.Ref{Kind: masterdomain.KindBusinessLine, ID: req.BusinessLineID},
			masterdomain.Ref{Kind: masterdomain.KindSubBusinessLine1, ID: req.SubBusinessLine1ID},
			masterdomain.Ref{Kind: masterdomain.KindSubBusinessLine2, ID: req.SubBusinessLine2ID},
			masterdomain.Ref{Kind: masterdomain.KindUser, ID: req.UserID},
		); err != nil {
			return err
		}

		// the code scope follows the parent budget; moving the category
		// under another budget re-keys it
		code := row.CategoryBudgetCode
		if row.BudgetID != req.BudgetID {
			code, err = s.nextCode(ctx, repo, masters, budget)
			if err != nil {
				return err
			}
		}

		n, err := s.detector.WithTx(tx).Count(ctx, duplicate.Spec{
			Table: "ms_category_budget",
			Groups: []duplicate.Group{
				{{Column: "category_budget_code", Value: code}},
				{
					{Column: "budget_id", Value: req.BudgetID},
					{Column: "sub_coa_id", Value: req.SubCoaID},
					{Column: "business_line_id", Value: req.BusinessLineID},
					{Column: "sub_business_line_1_id", Value: req.SubBusinessLine1ID},
					{Column: "sub_business_line_2_id", Value: req.SubBusinessLine2ID},
					{Column: "category_budget_name", Value: req.CategoryBudgetName},
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
		row.CategoryBudgetCode = code

		now := s.clock.Now()
		row.BudgetID = req.BudgetID
		row.SubCoaID = req.SubCoaID
		row.BusinessLineID = req.BusinessLineID
		row.SubBusinessLine1ID = req.SubBusinessLine1ID
		row.SubBusinessLine2ID = req.SubBusinessLine2ID
		row.CategoryBudgetName = req.CategoryBudgetName
		row.TotalCategoryBudget = req.TotalCategoryBudget
		row.UpdatedBy = req.UserID
		row.UpdatedDate = &now
		if err := repo.Update(ctx, row); err != nil {
			return err
		}

		if err := s.recorder.Record(ctx, tx, audit.Entry{
			Entity:   "category_budget",
			EntityID: row.CategoryBudgetID,
			Action:   audit.ActionUpdate,
			ActorID:  req.UserID,
			Payload:  map[string]any{"category_budget_code": row.CategoryBudgetCode, "budget_id": row.BudgetID},
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

		now := s.clock.Now()
		row.Active = false
		row.UpdatedBy = userID
		row.UpdatedDate = &now
		if err := repo.Update(ctx, row); err != nil {
			return err
		}

		return s.recorder.Record(ctx, tx, audit.Entry{
			Entity:   "category_budget",
			EntityID: row.CategoryBudgetID,
			Action:   audit.ActionDelete,
			ActorID:  userID,
			Payload:  map[string]any{"category_budget_code": row.CategoryBudgetCode},
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
		BudgetID:   req.BudgetID,
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
		token, err := pagination.EncodeCursor(pagination.Cursor{ID: rows[len(rows)-1].CategoryBudgetID})
		if err != nil {
			return nil, err
		}
		info.NextPageToken = token
	}

	return &domain.ListResponse{Items: items, PageInfo: info}, nil
}

// nextCode derives the code scope from the parent budget: its company
// and department codes plus its year.
func (s *service) nextCode(ctx context.Context, repo domain.Repository, masters masterdomain.Repository, budget *budgetdomain.Budget) (string, error) {
	company, err := masters.FindCompany(ctx, budget.CompanyID)
	if err != nil {
		return "", err
	}
	department, err := masters.FindDepartment(ctx, budget.DepartmentID)
	if err != nil {
		return "", err
	}

	prefix := codegen.CategoryBudgetPrefix(company.CompanyCode, department.DepartmentCode, budget.Year)
	highest, err := repo.MaxCodeForUpdate(ctx, prefix)
	if err != nil {
		return "", err
	}
	return codegen.CategoryBudgetCode(company.CompanyCode, department.DepartmentCode, budget.Year, codegen.NextSuffix(highest)), nil
}

func validateScope(budgetID, subCoaID, businessLineID, sub1ID, sub2ID, name, userID string) error {
	if strings.TrimSpace(budgetID) == "" ||
		strings.TrimSpace(subCoaID) == "" ||
		strings.TrimSpace(businessLineID) == "" ||
		strings.TrimSpace(sub1ID) == "" ||
		strings.TrimSpace(sub2ID) == "" ||
		strings.TrimSpace(name) == "" ||
		strings.TrimSpace(userID) == "" {
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
