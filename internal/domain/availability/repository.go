package availability

import (
	"context"
	"time"
)

// Repository defines the persistence contract for availability windows.
// DeleteByID (and DeleteByStatus) remove the rows and their plan/network
// join rows; plans and network statuses themselves are preserved.
type Repository interface {
	Save(ctx context.Context, a *Availability) error
	FindByID(ctx context.Context, id uint) (*Availability, error)
	FindAll(ctx context.Context) ([]*Availability, error)
	FindAllSortedByDate(ctx context.Context) ([]*Availability, error)
	List(ctx context.Context, offset, limit int) ([]*Availability, int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteByStatus(ctx context.Context, status string) (int64, error)

	FindByStatus(ctx context.Context, status string) ([]*Availability, error)
	FindByDateBetween(ctx context.Context, start, end time.Time) ([]*Availability, error)

	// Inverse-side lookups across the join tables owned by plan and
	// network status.
	PlanIDs(ctx context.Context, availabilityID uint) ([]uint, error)
	NetworkStatusIDs(ctx context.Context, availabilityID uint) ([]uint, error)
}
