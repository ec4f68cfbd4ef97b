// Package order implements the application service for plan orders,
// including payment attachment and per-user spend totals.
package order

import (
	"context"
	"time"

	"telmesh/internal/domain/order"
	"telmesh/internal/domain/payment"
	"telmesh/internal/domain/plan"
	"telmesh/internal/domain/user"
	"telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type Service struct {
	orderRepo   order.Repository
	paymentRepo payment.Repository
	userRepo    user.Repository
	planRepo    plan.Repository
	logger      logger.Interface
}

func NewService(
	orderRepo order.Repository,
	paymentRepo payment.Repository,
	userRepo user.Repository,
	planRepo plan.Repository,
	log logger.Interface,
) *Service {
	return &Service{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		planRepo:    planRepo,
		logger:      log,
	}
}

// Create places an order for a plan on behalf of a user. Both ends
// must exist.
func (s *Service) Create(ctx context.Context, orderDate time.Time, totalAmount float64, userID, planID uint) (*order.Order, error) {
	s.logger.Infow("creating order", "user_id", userID, "plan_id", planID)

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(orderDate, totalAmount, userID, planID)
	if err != nil {
		s.logger.Errorw("invalid order data", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.orderRepo.Save(ctx, newOrder); err != nil {
		s.logger.Errorw("failed to save order", "error", err)
		return nil, err
	}

	s.logger.Infow("order created", "order_id", newOrder.ID(), "user_id", userID, "plan_id", planID)
	return newOrder, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*order.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]*order.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]*order.Order, int64, error) {
	return s.orderRepo.List(ctx, offset, limit)
}

func (s *Service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.orderRepo.ExistsByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uint, orderDate time.Time, totalAmount float64, userID, planID uint) (*order.Order, error) {
	existing, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return nil, err
	}

	if err := existing.Update(orderDate, totalAmount, userID, planID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.orderRepo.Save(ctx, existing); err != nil {
		s.logger.Errorw("failed to update order", "order_id", id, "error", err)
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.orderRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("order deleted", "order_id", id)
	return nil
}

func (s *Service) FindByUser(ctx context.Context, userID uint) ([]*order.Order, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.orderRepo.FindByUserID(ctx, userID)
}

func (s *Service) FindByPlan(ctx context.Context, planID uint) ([]*order.Order, error) {
	if _, err := s.planRepo.FindByID(ctx, planID); err != nil {
		return nil, err
	}
	return s.orderRepo.FindByPlanID(ctx, planID)
}

func (s *Service) FindByOrderDateBetween(ctx context.Context, start, end time.Time) ([]*order.Order, error) {
	return s.orderRepo.FindByOrderDateBetween(ctx, start, end)
}

// TotalAmountForUser sums the total amounts of the user's orders.
func (s *Service) TotalAmountForUser(ctx context.Context, userID uint) (float64, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return 0, err
	}

	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, o := range orders {
		total += o.TotalAmount()
	}
	return total, nil
}

// AddPayment attaches an existing payment to the order. A payment
// belongs to at most one order; attaching moves it.
func (s *Service) AddPayment(ctx context.Context, orderID, paymentID uint) error {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return err
	}
	p, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}

	if err := p.AssignOrder(orderID); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := s.paymentRepo.Save(ctx, p); err != nil {
		s.logger.Errorw("failed to attach payment", "order_id", orderID, "payment_id", paymentID, "error", err)
		return err
	}

	s.logger.Infow("payment attached to order", "order_id", orderID, "payment_id", paymentID)
	return nil
}

// RemovePayment detaches a payment from the order. The payment must
// currently belong to this order.
func (s *Service) RemovePayment(ctx context.Context, orderID, paymentID uint) error {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return err
	}
	p, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}

	if p.OrderID() == nil || *p.OrderID() != orderID {
		return errors.NewNotFoundError("payment does not belong to order")
	}

	p.DetachOrder()
	if err := s.paymentRepo.Save(ctx, p); err != nil {
		s.logger.Errorw("failed to detach payment", "order_id", orderID, "payment_id", paymentID, "error", err)
		return err
	}

	s.logger.Infow("payment detached from order", "order_id", orderID, "payment_id", paymentID)
	return nil
}

// Payments lists the payments attached to the order.
func (s *Service) Payments(ctx context.Context, orderID uint) ([]*payment.Payment, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindByOrderID(ctx, orderID)
}
