package services

import (
	"context"
	"fmt"
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

const isoDate = "2006-01-02"

// orderService implements the OrderSvcFacade.
type orderService struct {
	BaseService
	orderRepo portsrepo.OrderRepositoryFacade
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, opts ...ServiceOption) portssvc.OrderSvcFacade {
	svc := &orderService{
		orderRepo: orderRepo,
	}
	for _, opt := range opts {
		opt(&svc.BaseService)
	}
	return svc
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// buildEMISchedule generates monthly installments starting one month after
// the order date. A zero per-month amount is derived by splitting the order
// total evenly across the months.
func buildEMISchedule(orderDate string, months int, perMonth, totalAmount decimal.Decimal, now time.Time) []domain.EMIInstallment {
	if months <= 0 {
		return nil
	}
	start, err := time.Parse(isoDate, orderDate)
	if err != nil {
		start = now
	}
	if perMonth.IsZero() {
		perMonth = totalAmount.DivRound(decimal.NewFromInt(int64(months)), 2)
	}

	schedule := make([]domain.EMIInstallment, months)
	for i := 0; i < months; i++ {
		schedule[i] = domain.EMIInstallment{
			Month:   i + 1,
			DueDate: start.AddDate(0, i+1, 0).Format(isoDate),
			Amount:  perMonth,
		}
	}
	return schedule
}

func (s *orderService) CreateOrder(ctx context.Context, projectID string, req dto.CreateOrderRequest, requestingUserID string) (*domain.Order, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return nil, err
	}
	if req.IsEMI && req.EMIMonths <= 0 {
		return nil, apperrors.NewValidationFailedError("EMI orders need emiMonths")
	}

	now := time.Now()
	order := domain.Order{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		OrderID:     req.OrderID,
		Vendor:      req.Vendor,
		OrderDate:   req.OrderDate,
		TotalAmount: req.TotalAmount,
		IsEMI:       req.IsEMI,
		EMIMonths:   req.EMIMonths,
		EMIPerMonth: req.EMIPerMonth,
		AmountPaid:  req.AmountPaid,
		Status:      domain.OrderStatus(req.Status),
		Items:       req.Items,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if order.Status == "" {
		order.Status = domain.OrderPlaced
	}
	if order.IsEMI {
		order.EMISchedule = buildEMISchedule(order.OrderDate, order.EMIMonths, order.EMIPerMonth, order.TotalAmount, now)
		if order.EMIPerMonth.IsZero() && len(order.EMISchedule) > 0 {
			order.EMIPerMonth = order.EMISchedule[0].Amount
		}
	}
	order.Balance = order.TotalAmount.Sub(order.AmountPaid)

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save order", slog.String("project_id", projectID))
		return nil, err
	}
	return &order, nil
}

// findProjectOrder fetches an order and verifies it belongs to the project
// in the request path. A mismatch reads as not found.
func (s *orderService) findProjectOrder(ctx context.Context, projectID, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ProjectID != projectID {
		return nil, apperrors.ErrNotFound
	}
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, projectID, orderID, requestingUserID string) (*domain.Order, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.findProjectOrder(ctx, projectID, orderID)
}

func (s *orderService) ListOrders(ctx context.Context, projectID, requestingUserID string) ([]domain.Order, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.orderRepo.ListOrders(ctx, projectID)
}

func (s *orderService) UpdateOrder(ctx context.Context, projectID, orderID string, req dto.UpdateOrderRequest, requestingUserID string) (*domain.Order, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return nil, err
	}

	order, err := s.findProjectOrder(ctx, projectID, orderID)
	if err != nil {
		return nil, err
	}

	emiTermsChanged := false
	if req.OrderID != nil {
		order.OrderID = *req.OrderID
	}
	if req.Vendor != nil {
		order.Vendor = *req.Vendor
	}
	if req.OrderDate != nil {
		order.OrderDate = *req.OrderDate
		emiTermsChanged = true
	}
	if req.TotalAmount != nil {
		order.TotalAmount = *req.TotalAmount
	}
	if req.IsEMI != nil {
		order.IsEMI = *req.IsEMI
		emiTermsChanged = true
	}
	if req.EMIMonths != nil {
		order.EMIMonths = *req.EMIMonths
		emiTermsChanged = true
	}
	if req.EMIPerMonth != nil {
		order.EMIPerMonth = *req.EMIPerMonth
		emiTermsChanged = true
	}
	if req.AmountPaid != nil {
		order.AmountPaid = *req.AmountPaid
	}
	if req.Status != nil {
		order.Status = domain.OrderStatus(*req.Status)
	}
	if req.Items != nil {
		order.Items = *req.Items
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	if emiTermsChanged {
		if !order.IsEMI {
			order.EMISchedule = nil
			order.EMIMonths = 0
			order.EMIPerMonth = decimal.Zero
		} else {
			// Regenerate the schedule but keep installments already paid.
			paidByMonth := make(map[int]domain.EMIInstallment, len(order.EMISchedule))
			for _, inst := range order.EMISchedule {
				if inst.Paid {
					paidByMonth[inst.Month] = inst
				}
			}
			schedule := buildEMISchedule(order.OrderDate, order.EMIMonths, order.EMIPerMonth, order.TotalAmount, time.Now())
			for i, inst := range schedule {
				if paid, ok := paidByMonth[inst.Month]; ok {
					schedule[i].Paid = true
					schedule[i].PaidDate = paid.PaidDate
					schedule[i].Amount = paid.Amount
				}
			}
			order.EMISchedule = schedule
			if order.EMIPerMonth.IsZero() && len(schedule) > 0 {
				order.EMIPerMonth = schedule[0].Amount
			}
		}
	}

	order.Balance = order.TotalAmount.Sub(order.AmountPaid)
	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = requestingUserID

	if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
		s.LogError(ctx, err, "Failed to update order", slog.String("order_id", orderID))
		return nil, err
	}
	return order, nil
}

// MarkInstallmentPaid marks one installment paid and rolls its amount into
// the order's paid total and balance.
func (s *orderService) MarkInstallmentPaid(ctx context.Context, projectID, orderID string, month int, paidDate string, requestingUserID string) (*domain.Order, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return nil, err
	}

	order, err := s.findProjectOrder(ctx, projectID, orderID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, inst := range order.EMISchedule {
		if inst.Month == month {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("order has no installment for month %d", month))
	}
	if order.EMISchedule[idx].Paid {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("installment for month %d is already paid", month))
	}

	if paidDate == "" {
		paidDate = time.Now().Format(isoDate)
	}
	order.EMISchedule[idx].Paid = true
	order.EMISchedule[idx].PaidDate = paidDate
	order.AmountPaid = order.AmountPaid.Add(order.EMISchedule[idx].Amount)
	order.Balance = order.TotalAmount.Sub(order.AmountPaid)
	order.LastUpdatedAt = time.Now()
	order.LastUpdatedBy = requestingUserID

	if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
		s.LogError(ctx, err, "Failed to record installment payment",
			slog.String("order_id", orderID),
			slog.Int("month", month))
		return nil, err
	}
	s.LogInfo(ctx, "Installment marked paid",
		slog.String("order_id", orderID),
		slog.Int("month", month))
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, projectID, orderID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, projectID, domain.RoleEditor); err != nil {
		return err
	}
	if _, err := s.findProjectOrder(ctx, projectID, orderID); err != nil {
		return err
	}
	return s.orderRepo.DeleteOrder(ctx, orderID)
}
