// Package domain contains the master entities referenced by budget flows.
// Primary keys are allocated, human-readable identifiers; unique_id is the
// externally exposed opaque identifier. Rows are never hard-deleted, only
// flagged inactive.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Company struct {
	CompanyID   string       `gorm:"primaryKey;column:company_id;type:varchar(20)" json:"company_id"`
	CompanyCode string       `gorm:"column:company_code;type:varchar(10);not null" json:"company_code"`
	CompanyName string       `gorm:"column:company_name;type:varchar(100);not null" json:"company_name"`
	Address     string       `gorm:"column:address;type:varchar(255)" json:"address"`
	UniqueID    snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_company_unique_id" json:"unique_id"`
	Active      bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy   string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy   string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (Company) TableName() string { return "ms_company" }

type Brand struct {
	BrandID     string       `gorm:"primaryKey;column:brand_id;type:varchar(20)" json:"brand_id"`
	CompanyID   string       `gorm:"column:company_id;type:varchar(20);index" json:"company_id"`
	BrandCode   string       `gorm:"column:brand_code;type:varchar(10);not null" json:"brand_code"`
	BrandName   string       `gorm:"column:brand_name;type:varchar(100);not null" json:"brand_name"`
	UniqueID    snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_brand_unique_id" json:"unique_id"`
	Active      bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy   string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy   string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (Brand) TableName() string { return "ms_brand" }

type Branch struct {
	BranchID    string       `gorm:"primaryKey;column:branch_id;type:varchar(20)" json:"branch_id"`
	BrandID     string       `gorm:"column:brand_id;type:varchar(20);index" json:"brand_id"`
	BranchCode  string       `gorm:"column:branch_code;type:varchar(10);not null" json:"branch_code"`
	BranchName  string       `gorm:"column:branch_name;type:varchar(100);not null" json:"branch_name"`
	UniqueID    snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_branch_unique_id" json:"unique_id"`
	Active      bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy   string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy   string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (Branch) TableName() string { return "ms_branch" }

type Department struct {
	DepartmentID   string       `gorm:"primaryKey;column:department_id;type:varchar(20)" json:"department_id"`
	DepartmentCode string       `gorm:"column:department_code;type:varchar(10);not null" json:"department_code"`
	DepartmentName string       `gorm:"column:department_name;type:varchar(100);not null" json:"department_name"`
	UniqueID       snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_department_unique_id" json:"unique_id"`
	Active         bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy      string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate    time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy      string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate    *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (Department) TableName() string { return "ms_department" }

type Division struct {
	DivisionID   string       `gorm:"primaryKey;column:division_id;type:varchar(20)" json:"division_id"`
	DepartmentID string       `gorm:"column:department_id;type:varchar(20);index" json:"department_id"`
	DivisionCode string       `gorm:"column:division_code;type:varchar(10);not null" json:"division_code"`
	DivisionName string       `gorm:"column:division_name;type:varchar(100);not null" json:"division_name"`
	UniqueID     snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_division_unique_id" json:"unique_id"`
	Active       bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy    string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate  time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy    string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate  *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (Division) TableName() string { return "ms_division" }

type Coa struct {
	CoaID       string       `gorm:"primaryKey;column:coa_id;type:varchar(20)" json:"coa_id"`
	CoaCode     string       `gorm:"column:coa_code;type:varchar(20);not null" json:"coa_code"`
	CoaName     string       `gorm:"column:coa_name;type:varchar(100);not null" json:"coa_name"`
	UniqueID    snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_coa_unique_id" json:"unique_id"`
	Active      bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy   string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy   string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (Coa) TableName() string { return "ms_coa" }

type SubCoa struct {
	SubCoaID    string       `gorm:"primaryKey;column:sub_coa_id;type:varchar(20)" json:"sub_coa_id"`
	CoaID       string       `gorm:"column:coa_id;type:varchar(20);index" json:"coa_id"`
	SubCoaCode  string       `gorm:"column:sub_coa_code;type:varchar(20);not null" json:"sub_coa_code"`
	SubCoaName  string       `gorm:"column:sub_coa_name;type:varchar(100);not null" json:"sub_coa_name"`
	UniqueID    snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_sub_coa_unique_id" json:"unique_id"`
	Active      bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy   string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy   string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (SubCoa) TableName() string { return "ms_sub_coa" }

type BusinessLine struct {
	BusinessLineID   string       `gorm:"primaryKey;column:business_line_id;type:varchar(20)" json:"business_line_id"`
	BusinessLineCode string       `gorm:"column:business_line_code;type:varchar(10);not null" json:"business_line_code"`
	BusinessLineName string       `gorm:"column:business_line_name;type:varchar(100);not null" json:"business_line_name"`
	UniqueID         snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_business_line_unique_id" json:"unique_id"`
	Active           bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy        string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate      time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy        string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate      *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (BusinessLine) TableName() string { return "ms_business_line" }

type SubBusinessLine1 struct {
	SubBusinessLine1ID   string       `gorm:"primaryKey;column:sub_business_line_1_id;type:varchar(20)" json:"sub_business_line_1_id"`
	BusinessLineID       string       `gorm:"column:business_line_id;type:varchar(20);index" json:"business_line_id"`
	SubBusinessLine1Code string       `gorm:"column:sub_business_line_1_code;type:varchar(10);not null" json:"sub_business_line_1_code"`
	SubBusinessLine1Name string       `gorm:"column:sub_business_line_1_name;type:varchar(100);not null" json:"sub_business_line_1_name"`
	UniqueID             snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_sub_business_line_1_unique_id" json:"unique_id"`
	Active               bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy            string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate          time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy            string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate          *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (SubBusinessLine1) TableName() string { return "ms_sub_business_line_1" }

type SubBusinessLine2 struct {
	SubBusinessLine2ID   string       `gorm:"primaryKey;column:sub_business_line_2_id;type:varchar(20)" json:"sub_business_line_2_id"`
	SubBusinessLine1ID   string       `gorm:"column:sub_business_line_1_id;type:varchar(20);index" json:"sub_business_line_1_id"`
	SubBusinessLine2Code string       `gorm:"column:sub_business_line_2_code;type:varchar(10);not null" json:"sub_business_line_2_code"`
	SubBusinessLine2Name string       `gorm:"column:sub_business_line_2_name;type:varchar(100);not null" json:"sub_business_line_2_name"`
	UniqueID             snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_sub_business_line_2_unique_id" json:"unique_id"`
	Active               bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy            string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate          time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy            string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate          *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (SubBusinessLine2) TableName() string { return "ms_sub_business_line_2" }

type User struct {
	UserID      string       `gorm:"primaryKey;column:user_id;type:varchar(20)" json:"user_id"`
	Username    string       `gorm:"column:username;type:varchar(50);not null" json:"username"`
	FullName    string       `gorm:"column:full_name;type:varchar(100);not null" json:"full_name"`
	Email       string       `gorm:"column:email;type:varchar(100)" json:"email"`
	UniqueID    snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_user_unique_id" json:"unique_id"`
	Active      bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy   string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy   string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (User) TableName() string { return "ms_user" }

type Vendor struct {
	VendorID    string       `gorm:"primaryKey;column:vendor_id;type:varchar(20)" json:"vendor_id"`
	VendorCode  string       `gorm:"column:vendor_code;type:varchar(10);not null" json:"vendor_code"`
	VendorName  string       `gorm:"column:vendor_name;type:varchar(100);not null" json:"vendor_name"`
	UniqueID    snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_vendor_unique_id" json:"unique_id"`
	Active      bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy   string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy   string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (Vendor) TableName() string { return "ms_vendor" }

type Bank struct {
	BankID      string       `gorm:"primaryKey;column:bank_id;type:varchar(20)" json:"bank_id"`
	BankCode    string       `gorm:"column:bank_code;type:varchar(10);not null" json:"bank_code"`
	BankName    string       `gorm:"column:bank_name;type:varchar(100);not null" json:"bank_name"`
	UniqueID    snowflake.ID `gorm:"column:unique_id;uniqueIndex:ux_bank_unique_id" json:"unique_id"`
	Active      bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy   string       `gorm:"column:created_by;type:varchar(20)" json:"created_by"`
	CreatedDate time.Time    `gorm:"column:created_date;not null" json:"created_date"`
	UpdatedBy   string       `gorm:"column:updated_by;type:varchar(20)" json:"updated_by"`
	UpdatedDate *time.Time   `gorm:"column:updated_date" json:"updated_date"`
}

func (Bank) TableName() string { return "ms_bank" }
