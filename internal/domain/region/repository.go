package region

import "context"

// Repository defines the persistence contract for the region aggregate.
// DeleteByID cascades to the region's users (recursively) and network
// statuses.
type Repository interface {
	Save(ctx context.Context, r *Region) error
	FindByID(ctx context.Context, id uint) (*Region, error)
	FindAll(ctx context.Context) ([]*Region, error)
	List(ctx context.Context, offset, limit int) ([]*Region, int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error

	SearchByName(ctx context.Context, name string) ([]*Region, error)
	SearchByDescription(ctx context.Context, description string) ([]*Region, error)
}
