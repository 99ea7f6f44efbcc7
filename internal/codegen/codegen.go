// Package codegen derives the human-readable budget code grammar:
//
//	budget:          B-<company>-<yy>-<nnnn>
//	category budget: B-<company>-<department>-<yy>-<nnnn>
//
// The numeric suffix is zero-padded to a fixed width, so codes sharing a
// prefix sort lexically in numeric order and the highest existing code in a
// scope can be found with a single ordered scan.
package codegen

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	Separator   = "-"
	Marker      = "B"
	SuffixWidth = 4
	FirstSuffix = 1
)

// BudgetPrefix is the code scope shared by all budgets of one company and year.
func BudgetPrefix(companyCode string, year int) string {
	return Marker + Separator + companyCode + Separator + yearDigits(year) + Separator
}

func BudgetCode(companyCode string, year, seq int) string {
	return BudgetPrefix(companyCode, year) + pad(seq)
}

// CategoryBudgetPrefix is the scope shared by all category budgets of one
// company, department and year.
func CategoryBudgetPrefix(companyCode, departmentCode string, year int) string {
	return Marker + Separator + companyCode + Separator + departmentCode + Separator + yearDigits(year) + Separator
}

func CategoryBudgetCode(companyCode, departmentCode string, year, seq int) string {
	return CategoryBudgetPrefix(companyCode, departmentCode, year) + pad(seq)
}

// SuffixOf extracts the trailing numeric suffix of a code. The second return
// is false when the code does not end in a numeric segment.
func SuffixOf(code string) (int, bool) {
	idx := strings.LastIndex(code, Separator)
	if idx < 0 || idx == len(code)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(code[idx+1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// NextSuffix returns the suffix following the highest existing code in a
// scope. An empty highest code starts the scope at FirstSuffix.
func NextSuffix(highestCode string) int {
	n, ok := SuffixOf(highestCode)
	if !ok {
		return FirstSuffix
	}
	return n + 1
}

func pad(seq int) string {
	return fmt.Sprintf("%0*d", SuffixWidth, seq)
}

func yearDigits(year int) string {
	return fmt.Sprintf("%02d", year%100)
}
