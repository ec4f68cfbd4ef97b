// Package payment implements the application service for payments.
// A payment always belongs to a user and optionally to an order.
package payment

import (
	"context"
	"time"

	"telmesh/internal/domain/order"
	"telmesh/internal/domain/payment"
	"telmesh/internal/domain/user"
	"telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type Service struct {
	paymentRepo payment.Repository
	userRepo    user.Repository
	orderRepo   order.Repository
	logger      logger.Interface
}

func NewService(
	paymentRepo payment.Repository,
	userRepo user.Repository,
	orderRepo order.Repository,
	log logger.Interface,
) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		logger:      log,
	}
}

// Create records a payment for a user. An order reference is optional;
// when present it must resolve.
func (s *Service) Create(ctx context.Context, amount float64, paymentDate time.Time, userID uint, orderID *uint) (*payment.Payment, error) {
	s.logger.Infow("creating payment", "user_id", userID)

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if orderID != nil {
		if _, err := s.orderRepo.FindByID(ctx, *orderID); err != nil {
			return nil, err
		}
	}

	newPayment, err := payment.NewPayment(amount, paymentDate, userID, orderID)
	if err != nil {
		s.logger.Errorw("invalid payment data", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.paymentRepo.Save(ctx, newPayment); err != nil {
		s.logger.Errorw("failed to save payment", "error", err)
		return nil, err
	}

	s.logger.Infow("payment created", "payment_id", newPayment.ID(), "user_id", userID)
	return newPayment, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*payment.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]*payment.Payment, error) {
	return s.paymentRepo.FindAll(ctx)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]*payment.Payment, int64, error) {
	return s.paymentRepo.List(ctx, offset, limit)
}

func (s *Service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.paymentRepo.ExistsByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uint, amount float64, paymentDate time.Time, userID uint, orderID *uint) (*payment.Payment, error) {
	existing, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if orderID != nil {
		if _, err := s.orderRepo.FindByID(ctx, *orderID); err != nil {
			return nil, err
		}
	}

	if err := existing.Update(amount, paymentDate, userID, orderID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.paymentRepo.Save(ctx, existing); err != nil {
		s.logger.Errorw("failed to update payment", "payment_id", id, "error", err)
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.paymentRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("payment deleted", "payment_id", id)
	return nil
}

func (s *Service) FindByUser(ctx context.Context, userID uint) ([]*payment.Payment, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindByUserID(ctx, userID)
}

func (s *Service) FindByOrder(ctx context.Context, orderID uint) ([]*payment.Payment, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindByOrderID(ctx, orderID)
}

func (s *Service) FindByPaymentDateBetween(ctx context.Context, start, end time.Time) ([]*payment.Payment, error) {
	return s.paymentRepo.FindByPaymentDateBetween(ctx, start, end)
}

func (s *Service) FindByAmountBetween(ctx context.Context, min, max float64) ([]*payment.Payment, error) {
	if min > max {
		return nil, errors.NewValidationError("minimum amount must not exceed maximum amount")
	}
	return s.paymentRepo.FindByAmountBetween(ctx, min, max)
}
