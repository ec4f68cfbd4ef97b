package network

import (
	"context"
	"time"
)

// Repository defines the persistence contract for network statuses.
// DeleteByID removes the status and its availability join rows; the
// availabilities themselves are preserved.
type Repository interface {
	Save(ctx context.Context, s *Status) error
	SaveAll(ctx context.Context, statuses []*Status) error
	FindByID(ctx context.Context, id uint) (*Status, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*Status, error)
	FindAll(ctx context.Context) ([]*Status, error)
	List(ctx context.Context, offset, limit int) ([]*Status, int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error

	FindByRegionID(ctx context.Context, regionID uint) ([]*Status, error)
	FindByUpdateDateBetween(ctx context.Context, start, end time.Time) ([]*Status, error)
	FindByAvailabilityID(ctx context.Context, availabilityID uint) ([]*Status, error)

	// Availability join rows (network_status_availabilities).
	AddAvailability(ctx context.Context, statusID, availabilityID uint) error
	RemoveAvailability(ctx context.Context, statusID, availabilityID uint) error
	HasAvailability(ctx context.Context, statusID, availabilityID uint) (bool, error)
	AvailabilityIDs(ctx context.Context, statusID uint) ([]uint, error)
}
