// Package feedback provides the feedback aggregate and its repository
// contract.
package feedback

import (
	"fmt"
	"time"
)

const (
	MinRating     = 1
	MaxRating     = 5
	MinTextLength = 5
	MaxTextLength = 500
)

// Feedback represents a user's rating of a service plan.
type Feedback struct {
	id            uint
	feedbackText  string
	rating        int
	submittedDate time.Time
	userID        uint
	planID        uint
	createdAt     time.Time
	updatedAt     time.Time
	version       int
}

// NewFeedback creates a new feedback entry
func NewFeedback(text string, rating int, submittedDate time.Time, userID, planID uint) (*Feedback, error) {
	if err := Validate(text, rating); err != nil {
		return nil, err
	}
	if submittedDate.IsZero() {
		return nil, fmt.Errorf("submitted date is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}

	now := time.Now()
	return &Feedback{
		feedbackText:  text,
		rating:        rating,
		submittedDate: submittedDate,
		userID:        userID,
		planID:        planID,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
	}, nil
}

// ReconstructFeedback reconstructs a feedback entry from persistence
func ReconstructFeedback(
	id uint,
	text string,
	rating int,
	submittedDate time.Time,
	userID, planID uint,
	createdAt, updatedAt time.Time,
	version int,
) (*Feedback, error) {
	if id == 0 {
		return nil, fmt.Errorf("feedback ID cannot be zero")
	}
	if err := Validate(text, rating); err != nil {
		return nil, err
	}

	return &Feedback{
		id:            id,
		feedbackText:  text,
		rating:        rating,
		submittedDate: submittedDate,
		userID:        userID,
		planID:        planID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
	}, nil
}

// Validate checks the rating bound and text length constraints. Exported so
// the application facade can re-check inputs before any store mutation.
func Validate(text string, rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	if len(text) < MinTextLength || len(text) > MaxTextLength {
		return fmt.Errorf("feedback text must be between %d and %d characters", MinTextLength, MaxTextLength)
	}
	return nil
}

func (f *Feedback) ID() uint                 { return f.id }
func (f *Feedback) Text() string             { return f.feedbackText }
func (f *Feedback) Rating() int              { return f.rating }
func (f *Feedback) SubmittedDate() time.Time { return f.submittedDate }
func (f *Feedback) UserID() uint             { return f.userID }
func (f *Feedback) PlanID() uint             { return f.planID }
func (f *Feedback) CreatedAt() time.Time     { return f.createdAt }
func (f *Feedback) UpdatedAt() time.Time     { return f.updatedAt }
func (f *Feedback) Version() int             { return f.version }

// SetID sets the feedback ID (only for persistence layer use)
func (f *Feedback) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feedback ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feedback ID cannot be zero")
	}
	f.id = id
	return nil
}

// Update replaces the feedback fields
func (f *Feedback) Update(text string, rating int, submittedDate time.Time, userID, planID uint) error {
	if err := Validate(text, rating); err != nil {
		return err
	}
	if userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return fmt.Errorf("plan ID is required")
	}
	f.feedbackText = text
	f.rating = rating
	f.submittedDate = submittedDate
	f.userID = userID
	f.planID = planID
	f.touch()
	return nil
}

func (f *Feedback) touch() {
	f.updatedAt = time.Now()
	f.version++
}
