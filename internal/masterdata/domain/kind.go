package domain

// Kind identifies one master entity type for lookups, validation and the
// generic read endpoints.
type Kind string

const (
	KindUser             Kind = "user"
	KindCompany          Kind = "company"
	KindBrand            Kind = "brand"
	KindBranch           Kind = "branch"
	KindDepartment       Kind = "department"
	KindDivision         Kind = "division"
	KindCoa              Kind = "coa"
	KindSubCoa           Kind = "sub-coa"
	KindBusinessLine     Kind = "business-line"
	KindSubBusinessLine1 Kind = "sub-business-line-1"
	KindSubBusinessLine2 Kind = "sub-business-line-2"
	KindVendor           Kind = "vendor"
	KindBank             Kind = "bank"
)

// Meta maps a kind onto its table layout for generic queries.
type Meta struct {
	Table   string
	PK      string
	CodeCol string
	NameCol string
	Label   string
}

var kinds = map[Kind]Meta{
	KindUser:             {Table: "ms_user", PK: "user_id", CodeCol: "username", NameCol: "full_name", Label: "User"},
	KindCompany:          {Table: "ms_company", PK: "company_id", CodeCol: "company_code", NameCol: "company_name", Label: "Company"},
	KindBrand:            {Table: "ms_brand", PK: "brand_id", CodeCol: "brand_code", NameCol: "brand_name", Label: "Brand"},
	KindBranch:           {Table: "ms_branch", PK: "branch_id", CodeCol: "branch_code", NameCol: "branch_name", Label: "Branch"},
	KindDepartment:       {Table: "ms_department", PK: "department_id", CodeCol: "department_code", NameCol: "department_name", Label: "Department"},
	KindDivision:         {Table: "ms_division", PK: "division_id", CodeCol: "division_code", NameCol: "division_name", Label: "Division"},
	KindCoa:              {Table: "ms_coa", PK: "coa_id", CodeCol: "coa_code", NameCol: "coa_name", Label: "COA"},
	KindSubCoa:           {Table: "ms_sub_coa", PK: "sub_coa_id", CodeCol: "sub_coa_code", NameCol: "sub_coa_name", Label: "Sub COA"},
	KindBusinessLine:     {Table: "ms_business_line", PK: "business_line_id", CodeCol: "business_line_code", NameCol: "business_line_name", Label: "Business Line"},
	KindSubBusinessLine1: {Table: "ms_sub_business_line_1", PK: "sub_business_line_1_id", CodeCol: "sub_business_line_1_code", NameCol: "sub_business_line_1_name", Label: "Sub Business Line 1"},
	KindSubBusinessLine2: {Table: "ms_sub_business_line_2", PK: "sub_business_line_2_id", CodeCol: "sub_business_line_2_code", NameCol: "sub_business_line_2_name", Label: "Sub Business Line 2"},
	KindVendor:           {Table: "ms_vendor", PK: "vendor_id", CodeCol: "vendor_code", NameCol: "vendor_name", Label: "Vendor"},
	KindBank:             {Table: "ms_bank", PK: "bank_id", CodeCol: "bank_code", NameCol: "bank_name", Label: "Bank"},
}

func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

func (k Kind) Meta() Meta {
	return kinds[k]
}

func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	return out
}
