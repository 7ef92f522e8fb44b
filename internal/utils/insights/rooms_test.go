package insights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/utils/insights"
)

func TestSummarizeRooms(t *testing.T) {
	rooms := []string{"Master Bedroom", "Kitchen", "Balcony"}
	expenses := []domain.Expense{
		{Room: "Master Bedroom", Total: inr(50000)},
		{Room: "master bedroom", Total: inr(10000)}, // case-insensitive fallback
		{Room: "Kitchen", Total: inr(200000)},
		{Room: "Terrace", Total: inr(5000)}, // no matching room, silently skipped
	}

	spends := insights.SummarizeRooms(rooms, expenses)

	require.Len(t, spends, 3)
	assert.Equal(t, "Master Bedroom", spends[0].Room)
	assert.Equal(t, 2, spends[0].ItemCount)
	assert.True(t, spends[0].TotalSpent.Equal(inr(60000)))
	assert.True(t, spends[1].TotalSpent.Equal(inr(200000)))

	// A room nothing references still gets a zero row.
	assert.Equal(t, "Balcony", spends[2].Room)
	assert.Equal(t, 0, spends[2].ItemCount)
	assert.True(t, spends[2].TotalSpent.IsZero())
}

func TestSummarizeRooms_NoRooms(t *testing.T) {
	spends := insights.SummarizeRooms(nil, []domain.Expense{{Room: "Kitchen", Total: inr(1000)}})
	assert.Empty(t, spends)
}
