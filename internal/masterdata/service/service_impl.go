package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/kelolahq/anggaran/internal/audit"
	"github.com/kelolahq/anggaran/internal/clock"
	counterdomain "github.com/kelolahq/anggaran/internal/counter/domain"
	"github.com/kelolahq/anggaran/internal/duplicate"
	"github.com/kelolahq/anggaran/internal/masterdata/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	screenCompany    = "MCO01"
	screenDepartment = "MDP01"
)

type service struct {
	db       *gorm.DB
	repo     domain.Repository
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
		counters: counters,
		detector: detector,
		recorder: recorder,
		genID:    genID,
		clock:    clk,
		log:      log,
	}
}

func (s *service) CreateCompany(ctx context.Context, req domain.CreateCompanyRequest) (*domain.Company, error) {
	code := strings.TrimSpace(req.CompanyCode)
	name := strings.TrimSpace(req.CompanyName)
	userID := strings.TrimSpace(req.UserID)
	if code == "" || name == "" || userID == "" {
		return nil, domain.ErrInvalidRequest
	}

	var out *domain.Company
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if err := domain.ValidateRefs(ctx, repo, domain.Ref{Kind: domain.KindUser, ID: userID}); err != nil {
			return err
		}

		n, err := s.detector.WithTx(tx).Count(ctx, duplicate.Spec{
			Table: "ms_company",
			Groups: []duplicate.Group{
				{{Column: "company_code", Value: code}},
				{{Column: "company_name", Value: name}},
			},
		})
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}

		companyID, err := s.counters.Allocate(ctx, tx, screenCompany)
		if err != nil {
			return err
		}

		row := domain.Company{
			CompanyID:   companyID,
			CompanyCode: code,
			CompanyName: name,
			Address:     strings.TrimSpace(req.Address),
			UniqueID:    s.genID.Generate(),
			Active:      true,
			CreatedBy:   userID,
			CreatedDate: s.clock.Now(),
		}
		if err := repo.CreateCompany(ctx, &row); err != nil {
			return err
		}

		if err := s.recorder.Record(ctx, tx, audit.Entry{
			Entity:   "company",
			EntityID: row.CompanyID,
			Action:   audit.ActionCreate,
			ActorID:  userID,
			Payload:  map[string]any{"company_code": code, "company_name": name},
		}); err != nil {
			return err
		}

		out = &row
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("company created",
		zap.String("company_id", out.CompanyID),
		zap.String("company_code", out.CompanyCode),
	)
	return out, nil
}

func (s *service) UpdateCompany(ctx context.Context, req domain.UpdateCompanyRequest) (*domain.Company, error) {
	uniqueID, err := parseUniqueID(req.UniqueID)
	if err != nil {
		return nil, err
	}
	code := strings.TrimSpace(req.CompanyCode)
	name := strings.TrimSpace(req.CompanyName)
	userID := strings.TrimSpace(req.UserID)
	if code == "" || name == "" || userID == "" {
		return nil, domain.ErrInvalidRequest
	}

	var out *domain.Company
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		row, err := repo.FindCompanyByUniqueID(ctx, uniqueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.RefError{Kind: domain.KindCompany}
			}
			return err
		}

		if err := domain.ValidateRefs(ctx, repo, domain.Ref{Kind: domain.KindUser, ID: userID}); err != nil {
			return err
		}

		n, err := s.detector.WithTx(tx).Count(ctx, duplicate.Spec{
			Table: "ms_company",
			Groups: []duplicate.Group{
				{{Column: "company_code", Value: code}},
				{{Column: "company_name", Value: name}},
			},
			ExcludeUniqueID: row.UniqueID,
		})
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}

		now := s.clock.Now()
		row.CompanyCode = code
		row.CompanyName = name
		row.Address = strings.TrimSpace(req.Address)
		row.UpdatedBy = userID
		row.UpdatedDate = &now
		if err := repo.UpdateCompany(ctx, row); err != nil {
			return err
		}

		if err := s.recorder.Record(ctx, tx, audit.Entry{
			Entity:   "company",
			EntityID: row.CompanyID,
			Action:   audit.ActionUpdate,
			ActorID:  userID,
			Payload:  map[string]any{"company_code": code, "company_name": name},
		}); err != nil {
			return err
		}

		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *service) CreateDepartment(ctx context.Context, req domain.CreateDepartmentRequest) (*domain.Department, error) {
	code := strings.TrimSpace(req.DepartmentCode)
	name := strings.TrimSpace(req.DepartmentName)
	userID := strings.TrimSpace(req.UserID)
	if code == "" || name == "" || userID == "" {
		return nil, domain.ErrInvalidRequest
	}

	var out *domain.Department
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if err := domain.ValidateRefs(ctx, repo, domain.Ref{Kind: domain.KindUser, ID: userID}); err != nil {
			return err
		}

		n, err := s.detector.WithTx(tx).Count(ctx, duplicate.Spec{
			Table: "ms_department",
			Groups: []duplicate.Group{
				{{Column: "department_code", Value: code}},
				{{Column: "department_name", Value: name}},
			},
		})
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}

		departmentID, err := s.counters.Allocate(ctx, tx, screenDepartment)
		if err != nil {
			return err
		}

		row := domain.Department{
			DepartmentID:   departmentID,
			DepartmentCode: code,
			DepartmentName: name,
			UniqueID:       s.genID.Generate(),
			Active:         true,
			CreatedBy:      userID,
			CreatedDate:    s.clock.Now(),
		}
		if err := repo.CreateDepartment(ctx, &row); err != nil {
			return err
		}

		if err := s.recorder.Record(ctx, tx, audit.Entry{
			Entity:   "department",
			EntityID: row.DepartmentID,
			Action:   audit.ActionCreate,
			ActorID:  userID,
			Payload:  map[string]any{"department_code": code, "department_name": name},
		}); err != nil {
			return err
		}

		out = &row
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("department created",
		zap.String("department_id", out.DepartmentID),
		zap.String("department_code", out.DepartmentCode),
	)
	return out, nil
}

func (s *service) UpdateDepartment(ctx context.Context, req domain.UpdateDepartmentRequest) (*domain.Department, error) {
	uniqueID, err := parseUniqueID(req.UniqueID)
	if err != nil {
		return nil, err
	}
	code := strings.TrimSpace(req.DepartmentCode)
	name := strings.TrimSpace(req.DepartmentName)
	userID := strings.TrimSpace(req.UserID)
	if code == "" || name == "" || userID == "" {
		return nil, domain.ErrInvalidRequest
	}

	var out *domain.Department
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		row, err := repo.FindDepartmentByUniqueID(ctx, uniqueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.RefError{Kind: domain.KindDepartment}
			}
			return err
		}

		if err := domain.ValidateRefs(ctx, repo, domain.Ref{Kind: domain.KindUser, ID: userID}); err != nil {
			return err
		}

		n, err := s.detector.WithTx(tx).Count(ctx, duplicate.Spec{
			Table: "ms_department",
			Groups: []duplicate.Group{
				{{Column: "department_code", Value: code}},
				{{Column: "department_name", Value: name}},
			},
			ExcludeUniqueID: row.UniqueID,
		})
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}

		now := s.clock.Now()
		row.DepartmentCode = code
		row.DepartmentName = name
		row.UpdatedBy = userID
		row.UpdatedDate = &now
		if err := repo.UpdateDepartment(ctx, row); err != nil {
			return err
		}

		if err := s.recorder.Record(ctx, tx, audit.Entry{
			Entity:   "department",
			EntityID: row.DepartmentID,
			Action:   audit.ActionUpdate,
			ActorID:  userID,
			Payload:  map[string]any{"department_code": code, "department_name": name},
		}); err != nil {
			return err
		}

		out = row
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *service) GetMaster(ctx context.Context, kind domain.Kind, id string) (*domain.MasterRow, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidKind
	}
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidRequest
	}

	row, err := s.repo.Get(ctx, kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.RefError{Kind: kind}
		}
		return nil, err
	}
	return row, nil
}

func (s *service) ListMasters(ctx context.Context, kind domain.Kind, filter domain.ListFilter) ([]domain.MasterRow, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidKind
	}
	return s.repo.List(ctx, kind, filter)
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
