// Package domain contains the budget persistence model and service contract.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Budget is one yearly allocation scoped to a company, brand, branch and
// department. budget_id is allocated from the counter table; budget_code is
// derived from the company code and year and regenerated only when that
// scope changes.
type Budget struct {
	BudgetID     string          `gorm:"primaryKey;column:budget_id;type:varchar(30)" json:"budget_id"`
	BudgetCode   string          `gorm:"column:budget_code;type:varchar(30);not null;index" json:"budget_code"`
	CompanyID    string          `gorm:"column:company_id;type:varchar(20);not null;index" json:"company_id"`
	BrandID      string          `gorm:"column:brand_id;type:varchar(20);not null" json:"brand_id"`
	BranchID     string          `gorm:"column:branch_id;type:varchar(20);not null" json:"branch_id"`
	DepartmentID string          `gorm:"column:department_id;type:varchar(20);not null" json:"department_id"`
	Year         int             `gorm:"column:budget_year;not null;index" json:"year"`
	TotalBudget  decimal.Decimal `gorm:"column:total_budget;type:decimal(20,2);not null" json:"total_budget"`
	UniqueID     snowflake.ID    `gorm:"column:unique_id;uniqueIndex:ux_budget_unique_id" json:"unique_id"`
	Active       bool            `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy    string          `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate  time.Time       `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy    string          `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate  *time.Time      `gorm:"column:updated_date" json:"updated_date"`
}

// TableName sets the database table name.
func (Budget) TableName() string { return "ms_budget" }
