// Package ticket provides the support ticket aggregate and its repository
// contract.
package ticket

import (
	"fmt"
	"time"
)

const (
	MinDescriptionLength = 5
	MaxDescriptionLength = 1000
	MaxStatusLength      = 50
)

// Ticket represents a support ticket raised by a user. The status is an
// open string; no workflow is enforced on it.
type Ticket struct {
	id               uint
	issueDescription string
	status           string
	createdDate      time.Time
	userID           uint
	createdAt        time.Time
	updatedAt        time.Time
	version          int
}

// NewTicket creates a new support ticket. createdDate is the caller-visible
// creation time and is immutable after first persist; the audit timestamps
// are maintained separately.
func NewTicket(issueDescription, status string, createdDate time.Time, userID uint) (*Ticket, error) {
	if err := validateDescription(issueDescription); err != nil {
		return nil, err
	}
	if err := validateTicketStatus(status); err != nil {
		return nil, err
	}
	if createdDate.IsZero() {
		return nil, fmt.Errorf("created date is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := time.Now()
	return &Ticket{
		issueDescription: issueDescription,
		status:           status,
		createdDate:      createdDate,
		userID:           userID,
		createdAt:        now,
		updatedAt:        now,
		version:          1,
	}, nil
}

// ReconstructTicket reconstructs a support ticket from persistence
func ReconstructTicket(
	id uint,
	issueDescription, status string,
	createdDate time.Time,
	userID uint,
	createdAt, updatedAt time.Time,
	version int,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if issueDescription == "" {
		return nil, fmt.Errorf("issue description is required")
	}

	return &Ticket{
		id:               id,
		issueDescription: issueDescription,
		status:           status,
		createdDate:      createdDate,
		userID:           userID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		version:          version,
	}, nil
}

func validateDescription(description string) error {
	if len(description) < MinDescriptionLength || len(description) > MaxDescriptionLength {
		return fmt.Errorf("issue description must be between %d and %d characters",
			MinDescriptionLength, MaxDescriptionLength)
	}
	return nil
}

func validateTicketStatus(status string) error {
	if status == "" {
		return fmt.Errorf("status is required")
	}
	if len(status) > MaxStatusLength {
		return fmt.Errorf("status must not exceed %d characters", MaxStatusLength)
	}
	return nil
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) IssueDescription() string { return t.issueDescription }
func (t *Ticket) Status() string           { return t.status }
func (t *Ticket) CreatedDate() time.Time   { return t.createdDate }
func (t *Ticket) UserID() uint             { return t.userID }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time     { return t.updatedAt }
func (t *Ticket) Version() int             { return t.version }

// SetID sets the ticket ID (only for persistence layer use)
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Update replaces description and status; createdDate stays immutable.
func (t *Ticket) Update(issueDescription, status string) error {
	if err := validateDescription(issueDescription); err != nil {
		return err
	}
	if err := validateTicketStatus(status); err != nil {
		return err
	}
	t.issueDescription = issueDescription
	t.status = status
	t.touch()
	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
	t.version++
}
