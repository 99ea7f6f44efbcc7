// Package domain contains the category budget model and service contract.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// CategoryBudget is one spending category carved out of a budget.
// total_opening_category_budget is a snapshot taken at creation; the
// remaining balances start equal to the total and are drawn down by
// submission/actual flows outside this service.
type CategoryBudget struct {
	CategoryBudgetID           string          `gorm:"primaryKey;column:category_budget_id;type:varchar(30)" json:"category_budget_id"`
	CategoryBudgetCode         string          `gorm:"column:category_budget_code;type:varchar(40);not null;index" json:"category_budget_code"`
	CategoryBudgetName         string          `gorm:"column:category_budget_name;type:varchar(100);not null" json:"category_budget_name"`
	BudgetID                   string          `gorm:"column:budget_id;type:varchar(30);not null;index" json:"budget_id"`
	SubCoaID                   string          `gorm:"column:sub_coa_id;type:varchar(20);not null" json:"sub_coa_id"`
	BusinessLineID             string          `gorm:"column:business_line_id;type:varchar(20);not null" json:"business_line_id"`
	SubBusinessLine1ID         string          `gorm:"column:sub_business_line_1_id;type:varchar(20);not null" json:"sub_business_line_1_id"`
	SubBusinessLine2ID         string          `gorm:"column:sub_business_line_2_id;type:varchar(20);not null" json:"sub_business_line_2_id"`
	TotalCategoryBudget        decimal.Decimal `gorm:"column:total_category_budget;type:decimal(20,2);not null" json:"total_category_budget"`
	TotalOpeningCategoryBudget decimal.Decimal `gorm:"column:total_opening_category_budget;type:decimal(20,2);not null" json:"total_opening_category_budget"`
	RemainingSubmit            decimal.Decimal `gorm:"column:remaining_submit;type:decimal(20,2);not null" json:"remaining_submit"`
	RemainingActual            decimal.Decimal `gorm:"column:remaining_actual;type:decimal(20,2);not null" json:"remaining_actual"`
	UniqueID                   snowflake.ID    `gorm:"column:unique_id;uniqueIndex:ux_category_budget_unique_id" json:"unique_id"`
	Active                     bool            `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy                  string          `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate                time.Time       `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy                  string          `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate                *time.Time      `gorm:"column:updated_date" json:"updated_date"`
}

// TableName sets the database table name.
func (CategoryBudget) TableName() string { return "ms_category_budget" }
