package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/variohq/reno_backend/internal/apperrors"
	"github.com/variohq/reno_backend/internal/core/domain"
	portsrepo "github.com/variohq/reno_backend/internal/core/ports/repositories"
	portssvc "github.com/variohq/reno_backend/internal/core/ports/services"
	"github.com/variohq/reno_backend/internal/dto"
)

// expenseService implements the ExpenseSvcFacade.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, opts ...ServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		expenseRepo: expenseRepo,
	}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// recalculateAmounts derives Total and Balance. These are never taken from
// callers; every write path runs through here.
func recalculateAmounts(e *domain.Expense) {
	if e.Quantity <= 0 {
		e.Quantity = 1
	}
	e.Total = e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
	e.Balance = e.Total.Sub(e.AdvancePaid)
}

func (s *expenseService) buildExpense(projectID string, req dto.CreateExpenseRequest, creatorUserID string, now time.Time) (domain.Expense, error) {
	if !domain.IsValidCategory(req.Category) {
		return domain.Expense{}, apperrors.NewValidationFailedError("unknown expense category: " + req.Category)
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		ProjectID:   projectID,
		Date:        req.Date,
		Category:    req.Category,
		Room:        req.Room,
		Item:        req.Item,
		Vendor:      req.Vendor,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		AdvancePaid: req.AdvancePaid,
		Status:      domain.ExpenseStatus(req.Status),
		PaymentMode: domain.PaymentMode(req.PaymentMode),
		Priority:    domain.Priority(req.Priority),
		OrderID:     req.OrderID,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if expense.Status == "" {
		expense.Status = domain.ExpensePending
	}
	if expense.Priority == "" {
		expense.Priority = domain.PriorityMustHave
	}
	recalculateAmounts(&expense)
	return expense, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, projectID string, req dto.CreateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return nil, err
	}

	expense, err := s.buildExpense(projectID, req, requestingUserID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("project_id", projectID))
		return nil, err
	}
	return &expense, nil
}

// ImportExpenses creates a batch of expenses atomically. A single invalid
// row rejects the whole batch before anything is written.
func (s *expenseService) ImportExpenses(ctx context.Context, projectID string, reqs []dto.CreateExpenseRequest, requestingUserID string) ([]domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return nil, err
	}

	now := time.Now()
	expenses := make([]domain.Expense, 0, len(reqs))
	for _, req := range reqs {
		expense, err := s.buildExpense(projectID, req, requestingUserID, now)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	if err := s.expenseRepo.SaveExpenses(ctx, expenses); err != nil {
		s.LogError(ctx, err, "Failed to import expense batch",
			slog.String("project_id", projectID),
			slog.Int("batch_size", len(expenses)))
		return nil, err
	}
	s.LogInfo(ctx, "Imported expense batch",
		slog.String("project_id", projectID),
		slog.Int("batch_size", len(expenses)))
	return expenses, nil
}

// findProjectExpense fetches an expense and verifies it belongs to the
// project in the request path. A mismatch reads as not found.
func (s *expenseService) findProjectExpense(ctx context.Context, projectID, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.ProjectID != projectID {
		return nil, apperrors.ErrNotFound
	}
	return expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, projectID, expenseID, requestingUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.findProjectExpense(ctx, projectID, expenseID)
}

func (s *expenseService) ListExpenses(ctx context.Context, projectID, requestingUserID string, filters portsrepo.ExpenseListFilters) ([]domain.Expense, string, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, "", err
	}
	return s.expenseRepo.ListExpenses(ctx, projectID, filters)
}

func (s *expenseService) UpdateExpense(ctx context.Context, projectID, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return nil, err
	}

	expense, err := s.findProjectExpense(ctx, projectID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Category != nil {
		if !domain.IsValidCategory(*req.Category) {
			return nil, apperrors.NewValidationFailedError("unknown expense category: " + *req.Category)
		}
		expense.Category = *req.Category
	}
	if req.Room != nil {
		expense.Room = *req.Room
	}
	if req.Item != nil {
		expense.Item = *req.Item
	}
	if req.Vendor != nil {
		expense.Vendor = *req.Vendor
	}
	if req.Quantity != nil {
		expense.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		expense.UnitPrice = *req.UnitPrice
	}
	if req.AdvancePaid != nil {
		expense.AdvancePaid = *req.AdvancePaid
	}
	if req.Status != nil {
		expense.Status = domain.ExpenseStatus(*req.Status)
	}
	if req.PaymentMode != nil {
		expense.PaymentMode = domain.PaymentMode(*req.PaymentMode)
	}
	if req.Priority != nil {
		expense.Priority = domain.Priority(*req.Priority)
	}
	if req.OrderID != nil {
		expense.OrderID = *req.OrderID
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	recalculateAmounts(expense)
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = requestingUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, projectID, expenseID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return err
	}
	if _, err := s.findProjectExpense(ctx, projectID, expenseID); err != nil {
		return err
	}
	return s.expenseRepo.DeleteExpense(ctx, expenseID)
}
