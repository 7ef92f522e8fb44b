package insights_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/utils/insights"
)

func inr(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func TestSummarizeBudget_TotalsAndOverspend(t *testing.T) {
	expenses := []domain.Expense{
		{Category: "Kitchen", Total: inr(600000), Priority: domain.PriorityMustHave},
		{Category: "Electrical", Total: inr(40000), Priority: domain.PriorityNiceToHave},
		{Category: "Decor/Accessories", Total: inr(15000), Priority: domain.PriorityCanSkip},
	}
	allocations := map[string]decimal.Decimal{
		"Kitchen":    inr(500000),
		"Electrical": inr(100000),
	}

	summary := insights.SummarizeBudget(expenses, domain.ExpenseCategories, allocations)

	// Total spent must equal the sum over category rows, even with overspend.
	rowSum := decimal.Zero
	for _, cat := range summary.Categories {
		rowSum = rowSum.Add(cat.Spent)
	}
	assert.True(t, summary.TotalSpent.Equal(rowSum), "totalSpent %s != Σ category.spent %s", summary.TotalSpent, rowSum)
	assert.True(t, summary.TotalRemaining.Equal(summary.TotalAllocated.Sub(summary.TotalSpent)))
	assert.True(t, summary.TotalRemaining.IsNegative(), "overspend should drive remaining negative")
}

func TestSummarizeBudget_CategoryBreakdown(t *testing.T) {
	expenses := []domain.Expense{
		{Category: "Kitchen", Total: inr(600000)},
	}
	allocations := map[string]decimal.Decimal{"Kitchen": inr(500000)}

	summary := insights.SummarizeBudget(expenses, domain.ExpenseCategories, allocations)

	require.Len(t, summary.Categories, 1)
	kitchen := summary.Categories[0]
	assert.Equal(t, "Kitchen", kitchen.Category)
	assert.True(t, kitchen.Allocated.Equal(inr(500000)))
	assert.True(t, kitchen.Spent.Equal(inr(600000)))
	assert.True(t, kitchen.Remaining.Equal(inr(-100000)))
	assert.Equal(t, int64(120), kitchen.PercentUsed)
}

func TestSummarizeBudget_ZeroAllocationPercentGuard(t *testing.T) {
	expenses := []domain.Expense{
		{Category: "Furniture", Total: inr(250000)},
	}

	summary := insights.SummarizeBudget(expenses, domain.ExpenseCategories, map[string]decimal.Decimal{})

	require.Len(t, summary.Categories, 1)
	assert.Equal(t, int64(0), summary.Categories[0].PercentUsed)
	assert.True(t, summary.Categories[0].Spent.Equal(inr(250000)))
}

func TestSummarizeBudget_ExcludesUntouchedCategories(t *testing.T) {
	expenses := []domain.Expense{
		{Category: "Painting", Total: inr(20000)},
	}
	allocations := map[string]decimal.Decimal{
		"Painting": inr(100000),
		"Kitchen":  inr(500000),
	}

	summary := insights.SummarizeBudget(expenses, domain.ExpenseCategories, allocations)

	names := make([]string, 0, len(summary.Categories))
	for _, cat := range summary.Categories {
		names = append(names, cat.Category)
	}
	assert.ElementsMatch(t, []string{"Painting", "Kitchen"}, names,
		"only categories with an allocation or a spend appear in the breakdown")
	// Untouched allocations still count toward the totals.
	assert.True(t, summary.TotalAllocated.Equal(inr(600000)))
}

func TestSummarizeBudget_NeedsWantsClosure(t *testing.T) {
	expenses := []domain.Expense{
		{Category: "Kitchen", Total: inr(100000), Priority: domain.PriorityMustHave},
		{Category: "Furniture", Total: inr(50000), Priority: domain.PriorityNiceToHave},
		{Category: "Decor/Accessories", Total: inr(10000), Priority: domain.PriorityCanSkip},
		{Category: "Electrical", Total: inr(30000)},                      // no priority, defaults to Must-Have
		{Category: "Plumbing", Total: inr(5000), Priority: "Desperate"}, // unknown, dropped from the split
	}

	summary := insights.SummarizeBudget(expenses, domain.ExpenseCategories, domain.DefaultBudgetAllocations)

	assert.True(t, summary.NeedsWants[domain.PriorityMustHave].Equal(inr(130000)))
	assert.True(t, summary.NeedsWants[domain.PriorityNiceToHave].Equal(inr(50000)))
	assert.True(t, summary.NeedsWants[domain.PriorityCanSkip].Equal(inr(10000)))
	assert.True(t, summary.SavingsIfSkipped().Equal(inr(60000)))

	bucketSum := summary.NeedsWants[domain.PriorityMustHave].
		Add(summary.NeedsWants[domain.PriorityNiceToHave]).
		Add(summary.NeedsWants[domain.PriorityCanSkip])
	assert.True(t, bucketSum.Equal(inr(190000)), "buckets must close over all known-priority expenses")
}

func TestSummarizeBudget_EmptyInput(t *testing.T) {
	summary := insights.SummarizeBudget(nil, domain.ExpenseCategories, map[string]decimal.Decimal{})

	assert.Empty(t, summary.Categories)
	assert.True(t, summary.TotalSpent.IsZero())
	assert.True(t, summary.TotalRemaining.IsZero())
}

func TestAllocationTable(t *testing.T) {
	defaults := map[string]decimal.Decimal{"Kitchen": inr(500000)}

	t.Run("no overrides falls back to defaults", func(t *testing.T) {
		table := insights.AllocationTable(nil, defaults)
		assert.True(t, table["Kitchen"].Equal(inr(500000)))
	})

	t.Run("overrides replace the table entirely", func(t *testing.T) {
		overrides := []domain.BudgetAllocation{{Category: "Kitchen", Allocated: inr(750000)}}
		table := insights.AllocationTable(overrides, defaults)
		assert.True(t, table["Kitchen"].Equal(inr(750000)))
		assert.Len(t, table, 1)
	})
}
