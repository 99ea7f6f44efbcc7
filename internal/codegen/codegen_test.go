package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetCode(t *testing.T) {
	assert.Equal(t, "B-EAU-25-0001", BudgetCode("EAU", 2025, 1))
	assert.Equal(t, "B-EAU-25-0042", BudgetCode("EAU", 2025, 42))
	assert.Equal(t, "B-XYZ-07-9999", BudgetCode("XYZ", 2007, 9999))
	// width overflows rather than truncates
	assert.Equal(t, "B-EAU-25-10000", BudgetCode("EAU", 2025, 10000))
}

func TestCategoryBudgetCode(t *testing.T) {
	assert.Equal(t, "B-EAU-FIN-25-0001", CategoryBudgetCode("EAU", "FIN", 2025, 1))
	assert.Equal(t, "B-EAU-FIN-25-", CategoryBudgetPrefix("EAU", "FIN", 2025))
}

func TestSuffixOf(t *testing.T) {
	n, ok := SuffixOf("B-EAU-25-0042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = SuffixOf("")
	assert.False(t, ok)

	_, ok = SuffixOf("B-EAU-25-")
	assert.False(t, ok)

	_, ok = SuffixOf("no separator")
	assert.False(t, ok)
}

func TestNextSuffix(t *testing.T) {
	assert.Equal(t, 1, NextSuffix(""))
	assert.Equal(t, 43, NextSuffix("B-EAU-25-0042"))
	assert.Equal(t, 1, NextSuffix("garbage"))
}
