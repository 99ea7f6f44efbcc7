package server

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/kelolahq/anggaran/internal/audit"
	auditdomain "github.com/kelolahq/anggaran/internal/audit/domain"
	budgetdomain "github.com/kelolahq/anggaran/internal/budget/domain"
	budgetrepo "github.com/kelolahq/anggaran/internal/budget/repository"
	budgetservice "github.com/kelolahq/anggaran/internal/budget/service"
	categorybudgetdomain "github.com/kelolahq/anggaran/internal/categorybudget/domain"
	categorybudgetrepo "github.com/kelolahq/anggaran/internal/categorybudget/repository"
	categorybudgetservice "github.com/kelolahq/anggaran/internal/categorybudget/service"
	"github.com/kelolahq/anggaran/internal/clock"
	counterdomain "github.com/kelolahq/anggaran/internal/counter/domain"
	counterrepo "github.com/kelolahq/anggaran/internal/counter/repository"
	counterservice "github.com/kelolahq/anggaran/internal/counter/service"
	"github.com/kelolahq/anggaran/internal/duplicate"
	masterdomain "github.com/kelolahq/anggaran/internal/masterdata/domain"
	masterrepo "github.com/kelolahq/anggaran/internal/masterdata/repository"
	masterservice "github.com/kelolahq/anggaran/internal/masterdata/service"
	"github.com/kelolahq/anggaran/internal/seed"
	dbpkg "github.com/kelolahq/anggaran/pkg/db"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

// newTestServer wires the full service stack on an in-memory database.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := dbpkg.NewTest()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&counterdomain.CounterNumber{},
		&masterdomain.Company{},
		&masterdomain.Brand{},
		&masterdomain.Branch{},
		&masterdomain.Department{},
		&masterdomain.Division{},
		&masterdomain.Coa{},
		&masterdomain.SubCoa{},
		&masterdomain.BusinessLine{},
		&masterdomain.SubBusinessLine1{},
		&masterdomain.SubBusinessLine2{},
		&masterdomain.User{},
		&masterdomain.Vendor{},
		&masterdomain.Bank{},
		&budgetdomain.Budget{},
		&categorybudgetdomain.CategoryBudget{},
		&auditdomain.AuditLog{},
	))
	require.NoError(t, seed.EnsureDefaults(db))

	clk := clock.NewFakeClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	node, err := snowflake.NewNode(5)
	require.NoError(t, err)
	log := zaptest.NewLogger(t)

	masters := masterrepo.NewRepository(db)
	counters := counterservice.NewService(db, counterrepo.NewRepository(db), clk, log)
	detector := duplicate.NewDetector(db)
	recorder := audit.NewRecorder(node)

	budgetSvc := budgetservice.NewService(db, budgetrepo.NewRepository(db), masters, counters, detector, recorder, node, clk, log)
	categoryBudgetSvc := categorybudgetservice.NewService(db, categorybudgetrepo.NewRepository(db), masters, counters, detector, recorder, node, clk, log)
	masterSvc := masterservice.NewService(db, masters, counters, detector, recorder, node, clk, log)

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())
	return NewServer(engine, budgetSvc, categoryBudgetSvc, masterSvc), db
}

func seedBudgetMasters(t *testing.T, db *gorm.DB) {
	t.Helper()

	node, err := snowflake.NewNode(6)
	require.NoError(t, err)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&masterdomain.Company{CompanyID: "MCO0001", CompanyCode: "EAU", CompanyName: "Eau Corp", UniqueID: node.Generate(), Active: true, CreatedDate: now}).Error)
	require.NoError(t, db.Create(&masterdomain.Brand{BrandID: "MBR0001", CompanyID: "MCO0001", BrandCode: "BR1", BrandName: "Brand One", UniqueID: node.Generate(), Active: true, CreatedDate: now}).Error)
	require.NoError(t, db.Create(&masterdomain.Branch{BranchID: "MBC0001", BrandID: "MBR0001", BranchCode: "HQ", BranchName: "Head Office", UniqueID: node.Generate(), Active: true, CreatedDate: now}).Error)
	require.NoError(t, db.Create(&masterdomain.Department{DepartmentID: "MDP0001", DepartmentCode: "FIN", DepartmentName: "Finance", UniqueID: node.Generate(), Active: true, CreatedDate: now}).Error)
}
