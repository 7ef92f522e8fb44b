package repositories

import (
	"context"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// ExpenseListFilters narrows an expense listing. Zero values mean "no
// filter"; Limit 0 falls back to the repository default page size.
type ExpenseListFilters struct {
	Category  string
	Room      string
	Status    domain.ExpenseStatus
	Priority  domain.Priority
	FromDate  string // inclusive, ISO yyyy-mm-dd
	ToDate    string // inclusive, ISO yyyy-mm-dd
	Limit     int
	NextToken string // keyset token from the previous page
}

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its ID.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a filtered, keyset-paginated page of a
	// project's expenses, newest first. The returned token is empty on the
	// last page.
	ListExpenses(ctx context.Context, projectID string, filters ExpenseListFilters) ([]domain.Expense, string, error)

	// ListAllExpenses retrieves every expense of a project, newest first.
	// Used by the aggregation snapshot, which folds over the full list.
	ListAllExpenses(ctx context.Context, projectID string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// SaveExpenses persists a batch of expenses in one transaction.
	SaveExpenses(ctx context.Context, expenses []domain.Expense) error

	// UpdateExpense updates an existing expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}

// ExpenseRepositoryWithTx extends ExpenseRepositoryFacade with transaction capabilities
type ExpenseRepositoryWithTx interface {
	ExpenseRepositoryFacade
	TransactionManager
}
