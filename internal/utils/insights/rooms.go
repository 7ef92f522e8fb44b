package insights

import (
	"strings"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// SummarizeRooms rolls expenses up per project room. Matching is by string
// equality with a case-insensitive fallback; a room no expense references
// yields a zero row rather than being omitted.
func SummarizeRooms(rooms []string, expenses []domain.Expense) []domain.RoomSpend {
	spends := make([]domain.RoomSpend, 0, len(rooms))
	for _, room := range rooms {
		spend := domain.RoomSpend{Room: room}
		for _, exp := range expenses {
			if exp.Room == room || strings.EqualFold(exp.Room, room) {
				spend.ItemCount++
				spend.TotalSpent = spend.TotalSpent.Add(exp.Total)
			}
		}
		spends = append(spends, spend)
	}
	return spends
}
