package plan

import "context"

// Repository defines the persistence contract for service plans.
// DeleteByID cascades to the plan's orders (and their payments) and
// feedback, and removes membership/availability join rows.
type Repository interface {
	Save(ctx context.Context, p *Plan) error
	FindByID(ctx context.Context, id uint) (*Plan, error)
	FindAll(ctx context.Context) ([]*Plan, error)
	List(ctx context.Context, offset, limit int) ([]*Plan, int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error

	// Search matches the query against name or description,
	// case-insensitively.
	Search(ctx context.Context, query string) ([]*Plan, error)
	FindByUserID(ctx context.Context, userID uint) ([]*Plan, error)
	CountUsers(ctx context.Context, planID uint) (int64, error)
	CountOrders(ctx context.Context, planID uint) (int64, error)

	// Availability join rows (service_plan_availabilities).
	AddAvailability(ctx context.Context, planID, availabilityID uint) error
	RemoveAvailability(ctx context.Context, planID, availabilityID uint) error
	HasAvailability(ctx context.Context, planID, availabilityID uint) (bool, error)
	AvailabilityIDs(ctx context.Context, planID uint) ([]uint, error)
}
