package insights

import (
	"sort"
	"time"

	"github.com/variohq/reno_backend/internal/core/domain"
)

const isoDate = "2006-01-02"

// SummarizeCashflow folds an order snapshot into outstanding balances,
// the monthly EMI load, the upcoming-payment queue and per-order payment
// bars.
//
// The queue holds every unpaid installment across all EMI schedules,
// overdue entries first, then due date ascending within each group (plain
// ISO string comparison, stable within ties). Urgency before chronology is
// deliberate. An order with a zero total must not break percentage math
// downstream; OrderBar.PaidPercent carries that guard.
func SummarizeCashflow(orders []domain.Order, now time.Time) domain.CashflowSummary {
	today := now.Format(isoDate)

	summary := domain.CashflowSummary{}
	for _, order := range orders {
		summary.TotalOrdersValue = summary.TotalOrdersValue.Add(order.TotalAmount)
		summary.TotalPaid = summary.TotalPaid.Add(order.AmountPaid)
		if order.IsEMI {
			summary.MonthlyEMI = summary.MonthlyEMI.Add(order.EMIPerMonth)
		}

		for _, inst := range order.EMISchedule {
			if inst.Paid {
				continue
			}
			summary.UpcomingPayments = append(summary.UpcomingPayments, domain.UpcomingPayment{
				Vendor:    order.Vendor,
				OrderID:   order.OrderID,
				Month:     inst.Month,
				DueDate:   inst.DueDate,
				Amount:    inst.Amount,
				IsOverdue: inst.DueDate < today,
			})
		}

		summary.OrderBars = append(summary.OrderBars, domain.OrderBar{
			Vendor:      order.Vendor,
			OrderID:     order.OrderID,
			TotalAmount: order.TotalAmount,
			AmountPaid:  order.AmountPaid,
		})
	}
	summary.Outstanding = summary.TotalOrdersValue.Sub(summary.TotalPaid)

	sort.SliceStable(summary.UpcomingPayments, func(i, j int) bool {
		a, b := summary.UpcomingPayments[i], summary.UpcomingPayments[j]
		if a.IsOverdue != b.IsOverdue {
			return a.IsOverdue
		}
		return a.DueDate < b.DueDate
	})

	return summary
}
