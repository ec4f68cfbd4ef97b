package feedback

import "context"

// Repository defines the persistence contract for feedback entries.
type Repository interface {
	Save(ctx context.Context, f *Feedback) error
	FindByID(ctx context.Context, id uint) (*Feedback, error)
	FindAll(ctx context.Context) ([]*Feedback, error)
	List(ctx context.Context, offset, limit int) ([]*Feedback, int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error

	FindByRating(ctx context.Context, rating int) ([]*Feedback, error)
	FindByRatingBetween(ctx context.Context, min, max int) ([]*Feedback, error)
	FindByUserID(ctx context.Context, userID uint) ([]*Feedback, error)
	FindByPlanID(ctx context.Context, planID uint) ([]*Feedback, error)
}
