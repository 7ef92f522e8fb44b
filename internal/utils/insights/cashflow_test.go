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

var cashflowNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func TestSummarizeCashflow_Totals(t *testing.T) {
	orders := []domain.Order{
		{OrderID: "ORD-1", Vendor: "Livspace", TotalAmount: inr(300000), AmountPaid: inr(100000), IsEMI: true, EMIPerMonth: inr(25000)},
		{OrderID: "ORD-2", Vendor: "Pepperfry", TotalAmount: inr(80000), AmountPaid: inr(80000)},
	}

	summary := insights.SummarizeCashflow(orders, cashflowNow)

	assert.True(t, summary.TotalOrdersValue.Equal(inr(380000)))
	assert.True(t, summary.TotalPaid.Equal(inr(180000)))
	assert.True(t, summary.Outstanding.Equal(inr(200000)))
	assert.True(t, summary.MonthlyEMI.Equal(inr(25000)), "only EMI orders contribute to the monthly load")
	require.Len(t, summary.OrderBars, 2)
}

func TestSummarizeCashflow_OverdueFirst(t *testing.T) {
	order := domain.Order{
		OrderID: "ORD-9",
		Vendor:  "Urban Ladder",
		IsEMI:   true,
		EMISchedule: []domain.EMIInstallment{
			{Month: 1, DueDate: "2026-03-14", Paid: false, Amount: inr(1000)},
			{Month: 2, DueDate: "2026-03-16", Paid: false, Amount: inr(1000)},
		},
	}

	summary := insights.SummarizeCashflow([]domain.Order{order}, cashflowNow)

	require.Len(t, summary.UpcomingPayments, 2)
	assert.True(t, summary.UpcomingPayments[0].IsOverdue)
	assert.Equal(t, "2026-03-14", summary.UpcomingPayments[0].DueDate)
	assert.False(t, summary.UpcomingPayments[1].IsOverdue)
}

func TestSummarizeCashflow_QueueSortAcrossOrders(t *testing.T) {
	orders := []domain.Order{
		{OrderID: "ORD-A", Vendor: "A", EMISchedule: []domain.EMIInstallment{
			{Month: 1, DueDate: "2026-04-10", Paid: false, Amount: inr(5000)},
			{Month: 2, DueDate: "2026-01-10", Paid: false, Amount: inr(5000)},
		}},
		{OrderID: "ORD-B", Vendor: "B", EMISchedule: []domain.EMIInstallment{
			{Month: 1, DueDate: "2026-02-10", Paid: false, Amount: inr(3000)},
			{Month: 2, DueDate: "2026-03-20", Paid: false, Amount: inr(3000)},
			{Month: 3, DueDate: "2026-05-20", Paid: true, Amount: inr(3000)},
		}},
	}

	summary := insights.SummarizeCashflow(orders, cashflowNow)

	require.Len(t, summary.UpcomingPayments, 4, "paid installments never enter the queue")
	overdueSeen := true
	for i, p := range summary.UpcomingPayments {
		if !p.IsOverdue {
			overdueSeen = false
		}
		assert.Equal(t, overdueSeen, p.IsOverdue, "entry %d: overdue entries must all precede non-overdue ones", i)
		if i > 0 && summary.UpcomingPayments[i-1].IsOverdue == p.IsOverdue {
			assert.LessOrEqual(t, summary.UpcomingPayments[i-1].DueDate, p.DueDate)
		}
	}
	assert.Equal(t, "2026-01-10", summary.UpcomingPayments[0].DueDate)
	assert.Equal(t, "2026-04-10", summary.UpcomingPayments[3].DueDate)
}

func TestOrderBar_PaidPercent(t *testing.T) {
	tests := []struct {
		name string
		bar  domain.OrderBar
		want decimal.Decimal
	}{
		{"zero total reports zero", domain.OrderBar{TotalAmount: decimal.Zero, AmountPaid: inr(5000)}, decimal.Zero},
		{"partial payment", domain.OrderBar{TotalAmount: inr(100000), AmountPaid: inr(25000)}, inr(25)},
		{"overpayment is not clamped", domain.OrderBar{TotalAmount: inr(10000), AmountPaid: inr(12000)}, inr(120)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.bar.PaidPercent().Equal(tt.want),
				"got %s, want %s", tt.bar.PaidPercent(), tt.want)
		})
	}
}

func TestSummarizeCashflow_Empty(t *testing.T) {
	summary := insights.SummarizeCashflow(nil, cashflowNow)

	assert.True(t, summary.Outstanding.IsZero())
	assert.Empty(t, summary.UpcomingPayments)
	assert.Empty(t, summary.OrderBars)
}
