package insights

import (
	"sort"
	"strings"

	"github.com/variohq/reno_backend/internal/core/domain"
)

const recentActivityCap = 6

// MergeRecentActivity builds the unified recent-activity feed: the first
// six expenses and first six orders (in the order they arrive, typically
// date-descending from the source), merged, sorted date-descending and
// capped at six.
//
// An empty date compares before every valid ISO date, so undated items sink
// to the bottom of the descending feed. That behavior is relied upon.
func MergeRecentActivity(expenses []domain.Expense, orders []domain.Order) []domain.ActivityItem {
	items := make([]domain.ActivityItem, 0, 2*recentActivityCap)

	for i, exp := range expenses {
		if i == recentActivityCap {
			break
		}
		items = append(items, domain.ActivityItem{
			ID:            exp.ExpenseID,
			Type:          domain.ActivityExpense,
			Description:   exp.Item,
			Amount:        exp.Total,
			Date:          exp.Date,
			Status:        string(exp.Status),
			SecondaryInfo: exp.Category,
		})
	}

	for i, order := range orders {
		if i == recentActivityCap {
			break
		}
		description := strings.Join(order.Items, ", ")
		if description == "" {
			description = "Order " + order.OrderID
		}
		items = append(items, domain.ActivityItem{
			ID:            order.ID,
			Type:          domain.ActivityOrder,
			Description:   description,
			Amount:        order.TotalAmount,
			Date:          order.OrderDate,
			Status:        string(order.Status),
			SecondaryInfo: order.Vendor,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})

	if len(items) > recentActivityCap {
		items = items[:recentActivityCap]
	}
	return items
}
