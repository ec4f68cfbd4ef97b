package ticket

import (
	"context"
	"time"
)

// Repository defines the persistence contract for support tickets.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindAll(ctx context.Context) ([]*Ticket, error)
	List(ctx context.Context, offset, limit int) ([]*Ticket, int64, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	DeleteByID(ctx context.Context, id uint) error

	FindByStatus(ctx context.Context, status string) ([]*Ticket, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	FindByUserID(ctx context.Context, userID uint) ([]*Ticket, error)
	FindByCreatedDateBetween(ctx context.Context, start, end time.Time) ([]*Ticket, error)
	SearchByIssueDescription(ctx context.Context, keyword string) ([]*Ticket, error)
}
