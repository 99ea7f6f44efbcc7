package migration

import (
	auditdomain "github.com/kelolahq/anggaran/internal/audit/domain"
	budgetdomain "github.com/kelolahq/anggaran/internal/budget/domain"
	categorybudgetdomain "github.com/kelolahq/anggaran/internal/categorybudget/domain"
	"github.com/kelolahq/anggaran/internal/config"
	counterdomain "github.com/kelolahq/anggaran/internal/counter/domain"
	masterdomain "github.com/kelolahq/anggaran/internal/masterdata/domain"
	"github.com/kelolahq/anggaran/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "sqlite" {
			// local development path; production schemas go through the
			// versioned migrations
			if err := conn.AutoMigrate(
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
			); err != nil {
				return err
			}
		} else {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB, cfg.DBType); err != nil {
				return err
			}
		}

		if cfg.SeedOnStartup {
			return seed.EnsureDefaults(conn)
		}
		return nil
	}),
)
