package mapping

import (
	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		ProjectID:   d.ProjectID,
		Item:        d.Item,
		Category:    d.Category,
		Room:        d.Room,
		Vendor:      d.Vendor,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Total:       d.Total,
		AdvancePaid: d.AdvancePaid,
		Balance:     d.Balance,
		Date:        d.Date,
		Status:      string(d.Status),
		PaymentMode: string(d.PaymentMode),
		Priority:    string(d.Priority),
		OrderID:     d.OrderID,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		ProjectID:   m.ProjectID,
		Item:        m.Item,
		Category:    m.Category,
		Room:        m.Room,
		Vendor:      m.Vendor,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Total:       m.Total,
		AdvancePaid: m.AdvancePaid,
		Balance:     m.Balance,
		Date:        m.Date,
		Status:      domain.ExpenseStatus(m.Status),
		PaymentMode: domain.PaymentMode(m.PaymentMode),
		Priority:    domain.Priority(m.Priority),
		OrderID:     m.OrderID,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
