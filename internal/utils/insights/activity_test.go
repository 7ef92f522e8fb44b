package insights_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/utils/insights"
)

func TestMergeRecentActivity_MergeAndSort(t *testing.T) {
	expenses := []domain.Expense{
		{ExpenseID: "e1", Item: "Vitrified tiles", Category: "Flooring", Total: inr(45000), Date: "2026-03-10", Status: domain.ExpensePaid},
		{ExpenseID: "e2", Item: "POP sheets", Category: "False Ceiling", Total: inr(12000), Date: "2026-03-01", Status: domain.ExpensePaid},
	}
	orders := []domain.Order{
		{ID: "o1", OrderID: "ORD-77", Vendor: "Livspace", Items: []string{"Modular kitchen", "Wardrobe"}, TotalAmount: inr(400000), OrderDate: "2026-03-12", Status: domain.OrderProcessing},
	}

	feed := insights.MergeRecentActivity(expenses, orders)

	require.Len(t, feed, 3)
	assert.Equal(t, "o1", feed[0].ID)
	assert.Equal(t, domain.ActivityOrder, feed[0].Type)
	assert.Equal(t, "Modular kitchen, Wardrobe", feed[0].Description)
	assert.Equal(t, "Livspace", feed[0].SecondaryInfo)
	assert.Equal(t, "e1", feed[1].ID)
	assert.Equal(t, "Flooring", feed[1].SecondaryInfo)
	assert.Equal(t, "e2", feed[2].ID)
}

func TestMergeRecentActivity_Cap(t *testing.T) {
	var expenses []domain.Expense
	var orders []domain.Order
	for i := 0; i < 10; i++ {
		expenses = append(expenses, domain.Expense{
			ExpenseID: fmt.Sprintf("e%d", i),
			Date:      fmt.Sprintf("2026-01-%02d", i+1),
		})
		orders = append(orders, domain.Order{
			ID:        fmt.Sprintf("o%d", i),
			OrderID:   fmt.Sprintf("ORD-%d", i),
			OrderDate: fmt.Sprintf("2026-02-%02d", i+1),
		})
	}

	feed := insights.MergeRecentActivity(expenses, orders)

	require.Len(t, feed, 6)
	// February orders outrank January expenses, but only the first six
	// orders were candidates in the first place.
	for i, item := range feed {
		assert.Equal(t, domain.ActivityOrder, item.Type, "entry %d", i)
		if i > 0 {
			assert.GreaterOrEqual(t, feed[i-1].Date, item.Date)
		}
	}
	assert.Equal(t, "2026-02-06", feed[0].Date)
}

func TestMergeRecentActivity_EmptyDatesSink(t *testing.T) {
	expenses := []domain.Expense{
		{ExpenseID: "undated", Item: "Loose hardware"},
		{ExpenseID: "dated", Item: "Paint", Date: "2026-02-20"},
	}

	feed := insights.MergeRecentActivity(expenses, nil)

	require.Len(t, feed, 2)
	assert.Equal(t, "dated", feed[0].ID)
	assert.Equal(t, "undated", feed[1].ID)
}

func TestMergeRecentActivity_OrderDescriptionFallback(t *testing.T) {
	orders := []domain.Order{
		{ID: "o1", OrderID: "ORD-42", Vendor: "Local vendor", OrderDate: "2026-02-01"},
	}

	feed := insights.MergeRecentActivity(nil, orders)

	require.Len(t, feed, 1)
	assert.Equal(t, "Order ORD-42", feed[0].Description)
}
