package user

import "context"

// Repository defines the persistence contract for the user aggregate.
// Save inserts when the aggregate has no ID and overwrites the full row
// otherwise. DeleteByID cascades to exclusively owned children (orders,
// payments, feedback, support tickets) and plan membership rows.
type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	List(ctx context.Context, offset, limit int) ([]*User, int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SearchByUsername(ctx context.Context, username string) ([]*User, error)
	FindByRole(ctx context.Context, role Role) ([]*User, error)
	FindByRegionID(ctx context.Context, regionID uint) ([]*User, error)
	FindByPlanID(ctx context.Context, planID uint) ([]*User, error)

	// Plan membership rows (user_service_plans). The join table is owned by
	// the user side; both user and plan facades mutate it through here.
	AddPlanMembership(ctx context.Context, userID, planID uint) error
	RemovePlanMembership(ctx context.Context, userID, planID uint) error
	HasPlanMembership(ctx context.Context, userID, planID uint) (bool, error)
	PlanIDs(ctx context.Context, userID uint) ([]uint, error)
}
