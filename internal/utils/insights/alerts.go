package insights

import (
	"fmt"
	"time"

	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/utils"
)

// GenerateAlerts derives the prioritized dashboard notices from the budget
// rollup, the raw records and the phase rollup. Generation order is fixed
// and doubles as display order:
//
//  1. one error per over-budget category;
//  2. one warning covering all pending / partially paid expenses;
//  3. one info for upcoming (unpaid, not yet due) EMI installments;
//  4. one info for phases currently on hold.
//
// Rules 2-4 fire at most once with an aggregated count. Alerts are
// ephemeral: dismissal is a presentation concern and nothing is persisted,
// so a dismissed alert reappears on the next recompute.
func GenerateAlerts(budget domain.BudgetSummary, expenses []domain.Expense, orders []domain.Order, phases domain.PhaseSummary, now time.Time) []domain.Alert {
	alerts := []domain.Alert{}

	for _, cat := range budget.Categories {
		if cat.Allocated.IsPositive() && cat.Spent.GreaterThan(cat.Allocated) {
			overage := cat.Spent.Sub(cat.Allocated)
			alerts = append(alerts, domain.Alert{
				ID:      "over-budget-" + cat.Category,
				Type:    domain.AlertError,
				Message: fmt.Sprintf("%s is over budget by %s", cat.Category, utils.FormatINRCompact(overage)),
				Amount:  overage,
			})
		}
	}

	pending := 0
	for _, exp := range expenses {
		if exp.Status == domain.ExpensePending || exp.Status == domain.ExpensePartiallyPaid {
			pending++
		}
	}
	if pending > 0 {
		alerts = append(alerts, domain.Alert{
			ID:      "pending-payments",
			Type:    domain.AlertWarning,
			Message: fmt.Sprintf("%d %s awaiting payment", pending, pluralize(pending, "expense", "expenses")),
		})
	}

	today := now.Format(isoDate)
	upcoming := 0
	for _, order := range orders {
		for _, inst := range order.EMISchedule {
			if !inst.Paid && inst.DueDate >= today {
				upcoming++
			}
		}
	}
	if upcoming > 0 {
		alerts = append(alerts, domain.Alert{
			ID:      "upcoming-emis",
			Type:    domain.AlertInfo,
			Message: fmt.Sprintf("%d EMI %s coming up", upcoming, pluralize(upcoming, "payment", "payments")),
		})
	}

	onHold := 0
	for _, status := range phases.Statuses {
		if status == domain.TaskOnHold {
			onHold++
		}
	}
	if onHold > 0 {
		alerts = append(alerts, domain.Alert{
			ID:      "phases-on-hold",
			Type:    domain.AlertInfo,
			Message: fmt.Sprintf("%d %s on hold", onHold, pluralize(onHold, "phase", "phases")),
		})
	}

	return alerts
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
