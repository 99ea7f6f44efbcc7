package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/kelolahq/anggaran/internal/audit"
	auditdomain "github.com/kelolahq/anggaran/internal/audit/domain"
	"github.com/kelolahq/anggaran/internal/clock"
	counterdomain "github.com/kelolahq/anggaran/internal/counter/domain"
	counterrepo "github.com/kelolahq/anggaran/internal/counter/repository"
	counterservice "github.com/kelolahq/anggaran/internal/counter/service"
	"github.com/kelolahq/anggaran/internal/duplicate"
	"github.com/kelolahq/anggaran/internal/masterdata/domain"
	"github.com/kelolahq/anggaran/internal/masterdata/repository"
	dbpkg "github.com/kelolahq/anggaran/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := dbpkg.NewTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&counterdomain.CounterNumber{},
		&domain.Company{},
		&domain.Department{},
		&domain.User{},
		&auditdomain.AuditLog{},
	))

	clk := clock.NewFakeClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	node, err := snowflake.NewNode(3)
	require.NoError(t, err)
	log := zaptest.NewLogger(t)

	for _, counter := range []counterdomain.CounterNumber{
		{ScreenID: "MCO01", Prefix: "MS", Digit: 5, MaxValue: 99999},
		{ScreenID: "MDP01", Prefix: "MDP", Digit: 4, MaxValue: 9999},
	} {
		require.NoError(t, db.Create(&counter).Error)
	}
	require.NoError(t, db.Create(&domain.User{
		UserID: "USR0001", Username: "admin", FullName: "Admin",
		UniqueID: node.Generate(), Active: true, CreatedDate: clk.Now(),
	}).Error)

	counters := counterservice.NewService(db, counterrepo.NewRepository(db), clk, log)
	svc := NewService(
		db,
		repository.NewRepository(db),
		counters,
		duplicate.NewDetector(db),
		audit.NewRecorder(node),
		node,
		clk,
		log,
	)
	return svc, db
}

func TestCreateCompanyAllocatesCounterID(t *testing.T) {
	svc, db := newTestService(t)

	company, err := svc.CreateCompany(context.Background(), domain.CreateCompanyRequest{
		CompanyCode: "EAU",
		CompanyName: "Eau Corp",
		Address:     "Jl. Sudirman 1",
		UserID:      "USR0001",
	})
	require.NoError(t, err)

	assert.Equal(t, "MS00001", company.CompanyID)
	assert.Equal(t, "EAU", company.CompanyCode)
	assert.True(t, company.Active)
	assert.NotZero(t, company.UniqueID)

	var audits int64
	require.NoError(t, db.Model(&auditdomain.AuditLog{}).Where("entity = ?", "company").Count(&audits).Error)
	assert.EqualValues(t, 1, audits)
}

func TestCreateCompanyConflictsOnCodeOrName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateCompany(context.Background(), domain.CreateCompanyRequest{
		CompanyCode: "EAU", CompanyName: "Eau Corp", UserID: "USR0001",
	})
	require.NoError(t, err)

	// same code, different name
	_, err = svc.CreateCompany(context.Background(), domain.CreateCompanyRequest{
		CompanyCode: "EAU", CompanyName: "Other Corp", UserID: "USR0001",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// same name, different code
	_, err = svc.CreateCompany(context.Background(), domain.CreateCompanyRequest{
		CompanyCode: "OTH", CompanyName: "Eau Corp", UserID: "USR0001",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateCompanyUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateCompany(context.Background(), domain.CreateCompanyRequest{
		CompanyCode: "EAU", CompanyName: "Eau Corp", UserID: "USR9999",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "User data not found")
}

func TestUpdateCompanyExcludesSelfFromDuplicateCheck(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateCompany(context.Background(), domain.CreateCompanyRequest{
		CompanyCode: "EAU", CompanyName: "Eau Corp", UserID: "USR0001",
	})
	require.NoError(t, err)

	// renaming to its own current values is not a conflict
	updated, err := svc.UpdateCompany(context.Background(), domain.UpdateCompanyRequest{
		UniqueID:    created.UniqueID.String(),
		CompanyCode: "EAU",
		CompanyName: "Eau Corp",
		Address:     "Jl. Thamrin 2",
		UserID:      "USR0001",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jl. Thamrin 2", updated.Address)
	assert.NotNil(t, updated.UpdatedDate)
}

func TestUpdateCompanyConflictsWithOtherRow(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateCompany(context.Background(), domain.CreateCompanyRequest{
		CompanyCode: "EAU", CompanyName: "Eau Corp", UserID: "USR0001",
	})
	require.NoError(t, err)
	other, err := svc.CreateCompany(context.Background(), domain.CreateCompanyRequest{
		CompanyCode: "XYZ", CompanyName: "Xyz Corp", UserID: "USR0001",
	})
	require.NoError(t, err)

	_, err = svc.UpdateCompany(context.Background(), domain.UpdateCompanyRequest{
		UniqueID:    other.UniqueID.String(),
		CompanyCode: "EAU",
		CompanyName: "Xyz Corp",
		UserID:      "USR0001",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateDepartment(t *testing.T) {
	svc, _ := newTestService(t)

	department, err := svc.CreateDepartment(context.Background(), domain.CreateDepartmentRequest{
		DepartmentCode: "FIN",
		DepartmentName: "Finance",
		UserID:         "USR0001",
	})
	require.NoError(t, err)

	assert.Equal(t, "MDP0001", department.DepartmentID)
	assert.Equal(t, "FIN", department.DepartmentCode)
}

func TestGetMasterByKind(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateCompany(context.Background(), domain.CreateCompanyRequest{
		CompanyCode: "EAU", CompanyName: "Eau Corp", UserID: "USR0001",
	})
	require.NoError(t, err)

	row, err := svc.GetMaster(context.Background(), domain.KindCompany, created.CompanyID)
	require.NoError(t, err)
	assert.Equal(t, created.CompanyID, row.ID)
	assert.Equal(t, "EAU", row.Code)
	assert.Equal(t, "Eau Corp", row.Name)

	_, err = svc.GetMaster(context.Background(), domain.Kind("warehouse"), "X1")
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}

func TestListMastersSearchAndActiveFilter(t *testing.T) {
	svc, db := newTestService(t)

	for _, seed := range []domain.CreateCompanyRequest{
		{CompanyCode: "EAU", CompanyName: "Eau Corp", UserID: "USR0001"},
		{CompanyCode: "XYZ", CompanyName: "Xyz Corp", UserID: "USR0001"},
	} {
		_, err := svc.CreateCompany(context.Background(), seed)
		require.NoError(t, err)
	}
	require.NoError(t, db.Model(&domain.Company{}).
		Where("company_code = ?", "XYZ").
		Update("is_active", false).Error)

	rows, err := svc.ListMasters(context.Background(), domain.KindCompany, domain.ListFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EAU", rows[0].Code)

	rows, err = svc.ListMasters(context.Background(), domain.KindCompany, domain.ListFilter{Search: "xyz"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "XYZ", rows[0].Code)
}
