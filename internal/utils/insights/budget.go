// Package insights holds the pure aggregation functions behind the project
// dashboard: budget usage, phase pipeline state, EMI cashflow, alerts, the
// recent-activity feed and the room spend rollup. Every function here is a
// pure fold over an immutable snapshot of a project's records plus
// explicitly injected static configuration. None of them return errors:
// malformed input degrades the result (zero defaults, silent exclusion of
// unknown enum values) rather than failing the whole recompute.
package insights

import (
	"github.com/shopspring/decimal"

	"github.com/variohq/reno_backend/internal/core/domain"
)

var oneHundred = decimal.NewFromInt(100)

// AllocationTable resolves the allocation map for a project: its own
// per-category overrides when present, otherwise the supplied defaults.
func AllocationTable(overrides []domain.BudgetAllocation, defaults map[string]decimal.Decimal) map[string]decimal.Decimal {
	if len(overrides) == 0 {
		return defaults
	}
	table := make(map[string]decimal.Decimal, len(overrides))
	for _, a := range overrides {
		table[a.Category] = a.Allocated
	}
	return table
}

// SummarizeBudget folds an expense snapshot into per-category budget usage,
// totals, and the needs/wants split.
//
// Categories with zero allocation and zero spend are excluded from the
// per-category breakdown but still counted in the totals. PercentUsed is 0
// whenever the allocation is 0, regardless of spend. Overspend is a valid
// state: TotalRemaining and per-category Remaining may be negative.
func SummarizeBudget(expenses []domain.Expense, categories []string, allocations map[string]decimal.Decimal) domain.BudgetSummary {
	spentByCategory := make(map[string]decimal.Decimal, len(categories))
	for _, exp := range expenses {
		spentByCategory[exp.Category] = spentByCategory[exp.Category].Add(exp.Total)
	}

	summary := domain.BudgetSummary{
		NeedsWants: map[domain.Priority]decimal.Decimal{
			domain.PriorityMustHave:   decimal.Zero,
			domain.PriorityNiceToHave: decimal.Zero,
			domain.PriorityCanSkip:    decimal.Zero,
		},
	}

	for _, cat := range categories {
		allocated := allocations[cat]
		spent := spentByCategory[cat]

		summary.TotalAllocated = summary.TotalAllocated.Add(allocated)
		summary.TotalSpent = summary.TotalSpent.Add(spent)

		if allocated.IsZero() && spent.IsZero() {
			continue
		}

		var percentUsed int64
		if allocated.IsPositive() {
			percentUsed = spent.Div(allocated).Mul(oneHundred).Round(0).IntPart()
		}

		summary.Categories = append(summary.Categories, domain.CategoryBudget{
			Category:    cat,
			Allocated:   allocated,
			Spent:       spent,
			Remaining:   allocated.Sub(spent),
			PercentUsed: percentUsed,
		})
	}

	summary.TotalRemaining = summary.TotalAllocated.Sub(summary.TotalSpent)

	for _, exp := range expenses {
		priority := exp.Priority
		if priority == "" {
			priority = domain.PriorityMustHave
		}
		if _, ok := summary.NeedsWants[priority]; ok {
			summary.NeedsWants[priority] = summary.NeedsWants[priority].Add(exp.Total)
		}
	}

	return summary
}
