package order

import (
	"context"
	"time"
)

// Repository defines the persistence contract for orders.
// DeleteByID cascades to the order's payments.
type Repository interface {
	Save(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	FindAll(ctx context.Context) ([]*Order, error)
	List(ctx context.Context, offset, limit int) ([]*Order, int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error

	FindByUserID(ctx context.Context, userID uint) ([]*Order, error)
	FindByPlanID(ctx context.Context, planID uint) ([]*Order, error)
	FindByOrderDateBetween(ctx context.Context, start, end time.Time) ([]*Order, error)
}
