package insights_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/utils/insights"
)

var alertsNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func TestGenerateAlerts_OverBudget(t *testing.T) {
	expenses := []domain.Expense{{Category: "Kitchen", Total: inr(600000)}}
	budget := insights.SummarizeBudget(expenses, domain.ExpenseCategories, map[string]decimal.Decimal{
		"Kitchen": inr(500000),
	})

	alerts := insights.GenerateAlerts(budget, expenses, nil, insights.SummarizePhases(nil, domain.TaskPhases), alertsNow)

	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertError, alerts[0].Type)
	assert.Equal(t, "Kitchen is over budget by ₹1.0L", alerts[0].Message)
	assert.True(t, alerts[0].Amount.Equal(inr(100000)))
}

func TestGenerateAlerts_ZeroAllocationNeverOverBudget(t *testing.T) {
	expenses := []domain.Expense{{Category: "Furniture", Total: inr(250000)}}
	budget := insights.SummarizeBudget(expenses, domain.ExpenseCategories, map[string]decimal.Decimal{})

	alerts := insights.GenerateAlerts(budget, expenses, nil, insights.SummarizePhases(nil, domain.TaskPhases), alertsNow)

	assert.Empty(t, alerts, "spend against a zero allocation is untracked, not overspent")
}

func TestGenerateAlerts_PendingPayments(t *testing.T) {
	tests := []struct {
		name     string
		expenses []domain.Expense
		want     string
	}{
		{
			name:     "singular",
			expenses: []domain.Expense{{Status: domain.ExpensePending}},
			want:     "1 expense awaiting payment",
		},
		{
			name: "plural, partially paid counts too",
			expenses: []domain.Expense{
				{Status: domain.ExpensePending},
				{Status: domain.ExpensePartiallyPaid},
				{Status: domain.ExpensePaid},
				{Status: domain.ExpenseCancelled},
			},
			want: "2 expenses awaiting payment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := insights.SummarizeBudget(tt.expenses, domain.ExpenseCategories, map[string]decimal.Decimal{})
			alerts := insights.GenerateAlerts(budget, tt.expenses, nil, insights.SummarizePhases(nil, domain.TaskPhases), alertsNow)

			require.Len(t, alerts, 1)
			assert.Equal(t, domain.AlertWarning, alerts[0].Type)
			assert.Equal(t, tt.want, alerts[0].Message)
		})
	}
}

func TestGenerateAlerts_UpcomingEMIs(t *testing.T) {
	orders := []domain.Order{
		{OrderID: "ORD-1", IsEMI: true, EMISchedule: []domain.EMIInstallment{
			{Month: 1, DueDate: "2026-03-01", Paid: false, Amount: inr(1000)}, // overdue, not "upcoming"
			{Month: 2, DueDate: "2026-03-15", Paid: false, Amount: inr(1000)}, // due today counts
			{Month: 3, DueDate: "2026-04-15", Paid: false, Amount: inr(1000)},
			{Month: 4, DueDate: "2026-05-15", Paid: true, Amount: inr(1000)},
		}},
	}
	budget := insights.SummarizeBudget(nil, domain.ExpenseCategories, map[string]decimal.Decimal{})

	alerts := insights.GenerateAlerts(budget, nil, orders, insights.SummarizePhases(nil, domain.TaskPhases), alertsNow)

	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertInfo, alerts[0].Type)
	assert.Equal(t, "2 EMI payments coming up", alerts[0].Message)
}

func TestGenerateAlerts_FixedOrder(t *testing.T) {
	expenses := []domain.Expense{
		{Category: "Kitchen", Total: inr(600000), Status: domain.ExpensePending},
	}
	orders := []domain.Order{
		{OrderID: "ORD-1", IsEMI: true, EMISchedule: []domain.EMIInstallment{
			{Month: 1, DueDate: "2026-04-01", Paid: false, Amount: inr(1000)},
		}},
	}
	tasks := []domain.Task{{Phase: "Painting", Status: domain.TaskOnHold}}

	budget := insights.SummarizeBudget(expenses, domain.ExpenseCategories, map[string]decimal.Decimal{
		"Kitchen": inr(500000),
	})
	phases := insights.SummarizePhases(tasks, domain.TaskPhases)

	alerts := insights.GenerateAlerts(budget, expenses, orders, phases, alertsNow)

	require.Len(t, alerts, 4)
	assert.Equal(t, domain.AlertError, alerts[0].Type)
	assert.Equal(t, domain.AlertWarning, alerts[1].Type)
	assert.Equal(t, domain.AlertInfo, alerts[2].Type)
	assert.Equal(t, "1 EMI payment coming up", alerts[2].Message)
	assert.Equal(t, "1 phase on hold", alerts[3].Message)
	assert.Equal(t, domain.AlertInfo, alerts[3].Type)
}

func TestGenerateAlerts_QuietProject(t *testing.T) {
	budget := insights.SummarizeBudget(nil, domain.ExpenseCategories, domain.DefaultBudgetAllocations)

	alerts := insights.GenerateAlerts(budget, nil, nil, insights.SummarizePhases(nil, domain.TaskPhases), alertsNow)

	assert.Empty(t, alerts)
}
