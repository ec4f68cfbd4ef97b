// Package network provides the network status aggregate and its repository
// contract.
package network

import (
	"fmt"
	"time"
)

// Status represents a network status report for a region. The status value
// is an open string; downstream consumers filter on caller-defined values.
type Status struct {
	id             uint
	status         string
	updateDate     time.Time
	regionID       *uint
	createdAt      time.Time
	updatedAt      time.Time
	version        int
}

// NewStatus creates a new network status report
func NewStatus(status string, updateDate time.Time, regionID uint) (*Status, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}
	if updateDate.IsZero() {
		return nil, fmt.Errorf("update date is required")
	}
	if regionID == 0 {
		return nil, fmt.Errorf("region ID is required")
	}

	now := time.Now()
	return &Status{
		status:     status,
		updateDate: updateDate,
		regionID:   &regionID,
		createdAt:  now,
		updatedAt:  now,
		version:    1,
	}, nil
}

// ReconstructStatus reconstructs a network status from persistence
func ReconstructStatus(
	id uint,
	status string,
	updateDate time.Time,
	regionID *uint,
	createdAt, updatedAt time.Time,
	version int,
) (*Status, error) {
	if id == 0 {
		return nil, fmt.Errorf("network status ID cannot be zero")
	}
	if status == "" {
		return nil, fmt.Errorf("status is required")
	}

	return &Status{
		id:         id,
		status:     status,
		updateDate: updateDate,
		regionID:   regionID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		version:    version,
	}, nil
}

func validateStatus(status string) error {
	if len(status) < 3 || len(status) > 100 {
		return fmt.Errorf("status must be between 3 and 100 characters")
	}
	return nil
}

func (s *Status) ID() uint              { return s.id }
func (s *Status) StatusValue() string   { return s.status }
func (s *Status) UpdateDate() time.Time { return s.updateDate }
func (s *Status) RegionID() *uint       { return s.regionID }
func (s *Status) CreatedAt() time.Time  { return s.createdAt }
func (s *Status) UpdatedAt() time.Time  { return s.updatedAt }
func (s *Status) Version() int          { return s.version }

// SetID sets the status ID (only for persistence layer use)
func (s *Status) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("network status ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("network status ID cannot be zero")
	}
	s.id = id
	return nil
}

// Update replaces the status value and update date
func (s *Status) Update(status string, updateDate time.Time) error {
	if err := validateStatus(status); err != nil {
		return err
	}
	if updateDate.IsZero() {
		return fmt.Errorf("update date is required")
	}
	s.status = status
	s.updateDate = updateDate
	s.touch()
	return nil
}

// ChangeStatus replaces only the status value, used by bulk updates
func (s *Status) ChangeStatus(status string) error {
	if err := validateStatus(status); err != nil {
		return err
	}
	s.status = status
	s.touch()
	return nil
}

// AssignRegion sets the owning region reference
func (s *Status) AssignRegion(regionID uint) error {
	if regionID == 0 {
		return fmt.Errorf("region ID cannot be zero")
	}
	s.regionID = &regionID
	s.touch()
	return nil
}

// ClearRegion detaches the status from its region
func (s *Status) ClearRegion() {
	if s.regionID == nil {
		return
	}
	s.regionID = nil
	s.touch()
}

// Touch marks the aggregate as modified.
func (s *Status) Touch() {
	s.touch()
}

func (s *Status) touch() {
	s.updatedAt = time.Now()
	s.version++
}
