// Package availability provides the service availability aggregate and its
// repository contract.
package availability

import (
	"fmt"
	"time"
)

// Availability represents a service availability window. It is the inverse
// side of the plan and network status many-to-many relationships; the join
// rows are owned by those aggregates. The availability status is an open
// string by design.
type Availability struct {
	id               uint
	availabilityStatus string
	availabilityDate time.Time
	createdAt        time.Time
	updatedAt        time.Time
	version          int
}

// NewAvailability creates a new availability window
func NewAvailability(status string, date time.Time) (*Availability, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, fmt.Errorf("availability date is required")
	}

	now := time.Now()
	return &Availability{
		availabilityStatus: status,
		availabilityDate:   date,
		createdAt:          now,
		updatedAt:          now,
		version:            1,
	}, nil
}

// ReconstructAvailability reconstructs an availability from persistence
func ReconstructAvailability(
	id uint,
	status string,
	date time.Time,
	createdAt, updatedAt time.Time,
	version int,
) (*Availability, error) {
	if id == 0 {
		return nil, fmt.Errorf("availability ID cannot be zero")
	}
	if status == "" {
		return nil, fmt.Errorf("availability status is required")
	}

	return &Availability{
		id:                 id,
		availabilityStatus: status,
		availabilityDate:   date,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		version:            version,
	}, nil
}

func validateStatus(status string) error {
	if len(status) < 3 || len(status) > 100 {
		return fmt.Errorf("availability status must be between 3 and 100 characters")
	}
	return nil
}

func (a *Availability) ID() uint                    { return a.id }
func (a *Availability) Status() string              { return a.availabilityStatus }
func (a *Availability) AvailabilityDate() time.Time { return a.availabilityDate }
func (a *Availability) CreatedAt() time.Time        { return a.createdAt }
func (a *Availability) UpdatedAt() time.Time        { return a.updatedAt }
func (a *Availability) Version() int                { return a.version }

// SetID sets the availability ID (only for persistence layer use)
func (a *Availability) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("availability ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("availability ID cannot be zero")
	}
	a.id = id
	return nil
}

// Update replaces status and date
func (a *Availability) Update(status string, date time.Time) error {
	if err := validateStatus(status); err != nil {
		return err
	}
	if date.IsZero() {
		return fmt.Errorf("availability date is required")
	}
	a.availabilityStatus = status
	a.availabilityDate = date
	a.touch()
	return nil
}

// Touch marks the aggregate as modified.
func (a *Availability) Touch() {
	a.touch()
}

func (a *Availability) touch() {
	a.updatedAt = time.Now()
	a.version++
}
