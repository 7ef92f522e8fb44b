package services

import (
	"context"

	"github.com/variohq/reno_backend/internal/core/domain"
	portsrepo "github.com/variohq/reno_backend/internal/core/ports/repositories"
	"github.com/variohq/reno_backend/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a single expense after authorization.
	GetExpenseByID(ctx context.Context, projectID, expenseID, requestingUserID string) (*domain.Expense, error)

	// ListExpenses retrieves a filtered, paginated page of a project's
	// expenses. The returned token fetches the next page; empty means done.
	ListExpenses(ctx context.Context, projectID, requestingUserID string, filters portsrepo.ExpenseListFilters) ([]domain.Expense, string, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense creates a new expense. Total and Balance are recomputed
	// server-side from quantity, unit price and advance paid.
	CreateExpense(ctx context.Context, projectID string, req dto.CreateExpenseRequest, requestingUserID string) (*domain.Expense, error)

	// ImportExpenses creates a batch of expenses in one transaction,
	// recomputing derived amounts per row. Used by the spreadsheet import.
	ImportExpenses(ctx context.Context, projectID string, reqs []dto.CreateExpenseRequest, requestingUserID string) ([]domain.Expense, error)

	// UpdateExpense updates an existing expense, recomputing derived amounts.
	UpdateExpense(ctx context.Context, projectID, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, projectID, expenseID, requestingUserID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
