package payment

import (
	"context"
	"time"
)

// Repository defines the persistence contract for payments.
type Repository interface {
	Save(ctx context.Context, p *Payment) error
	FindByID(ctx context.Context, id uint) (*Payment, error)
	FindAll(ctx context.Context) ([]*Payment, error)
	List(ctx context.Context, offset, limit int) ([]*Payment, int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error

	FindByUserID(ctx context.Context, userID uint) ([]*Payment, error)
	FindByOrderID(ctx context.Context, orderID uint) ([]*Payment, error)
	FindByPaymentDateBetween(ctx context.Context, start, end time.Time) ([]*Payment, error)
	FindByAmountBetween(ctx context.Context, min, max float64) ([]*Payment, error)
}
