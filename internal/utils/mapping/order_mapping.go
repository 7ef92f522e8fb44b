package mapping

import (
	"encoding/json"

	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/models"
)

// ToModelOrder converts a domain Order to a model Order. The EMI schedule
// and item list are serialized into their JSONB columns.
func ToModelOrder(d domain.Order) (models.Order, error) {
	schedule, err := json.Marshal(d.EMISchedule)
	if err != nil {
		return models.Order{}, err
	}
	items, err := json.Marshal(d.Items)
	if err != nil {
		return models.Order{}, err
	}
	return models.Order{
		ID:          d.ID,
		ProjectID:   d.ProjectID,
		OrderID:     d.OrderID,
		Vendor:      d.Vendor,
		OrderDate:   d.OrderDate,
		TotalAmount: d.TotalAmount,
		IsEMI:       d.IsEMI,
		EMIMonths:   d.EMIMonths,
		EMIPerMonth: d.EMIPerMonth,
		EMISchedule: schedule,
		AmountPaid:  d.AmountPaid,
		Balance:     d.Balance,
		Status:      string(d.Status),
		Items:       items,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainOrder converts a model Order to a domain Order. A corrupt JSONB
// column yields an empty slice rather than an error; the rollups degrade
// gracefully on partial data.
func ToDomainOrder(m models.Order) domain.Order {
	var schedule []domain.EMIInstallment
	if len(m.EMISchedule) > 0 {
		_ = json.Unmarshal(m.EMISchedule, &schedule)
	}
	var items []string
	if len(m.Items) > 0 {
		_ = json.Unmarshal(m.Items, &items)
	}
	return domain.Order{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		OrderID:     m.OrderID,
		Vendor:      m.Vendor,
		OrderDate:   m.OrderDate,
		TotalAmount: m.TotalAmount,
		IsEMI:       m.IsEMI,
		EMIMonths:   m.EMIMonths,
		EMIPerMonth: m.EMIPerMonth,
		EMISchedule: schedule,
		AmountPaid:  m.AmountPaid,
		Balance:     m.Balance,
		Status:      domain.OrderStatus(m.Status),
		Items:       items,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrderSlice converts a slice of model Orders to domain Orders
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}
