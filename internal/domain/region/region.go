// Package region provides the region aggregate and its repository contract.
package region

import (
	"fmt"
	"time"
)

// Region represents a geographic service region aggregate root.
type Region struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
	version     int
}

// NewRegion creates a new region
func NewRegion(name, description string) (*Region, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Region{
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
		version:     1,
	}, nil
}

// ReconstructRegion reconstructs a region from persistence
func ReconstructRegion(id uint, name, description string, createdAt, updatedAt time.Time, version int) (*Region, error) {
	if id == 0 {
		return nil, fmt.Errorf("region ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("region name is required")
	}

	return &Region{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		version:     version,
	}, nil
}

func validateName(name string) error {
	if len(name) < 3 || len(name) > 100 {
		return fmt.Errorf("region name must be between 3 and 100 characters")
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > 500 {
		return fmt.Errorf("region description must not exceed 500 characters")
	}
	return nil
}

func (r *Region) ID() uint             { return r.id }
func (r *Region) Name() string         { return r.name }
func (r *Region) Description() string  { return r.description }
func (r *Region) CreatedAt() time.Time { return r.createdAt }
func (r *Region) UpdatedAt() time.Time { return r.updatedAt }
func (r *Region) Version() int         { return r.version }

// SetID sets the region ID (only for persistence layer use)
func (r *Region) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("region ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("region ID cannot be zero")
	}
	r.id = id
	return nil
}

// Update replaces name and description
func (r *Region) Update(name, description string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	r.name = name
	r.description = description
	r.touch()
	return nil
}

// Touch marks the aggregate as modified, used when a membership change
// involves this region.
func (r *Region) Touch() {
	r.touch()
}

func (r *Region) touch() {
	r.updatedAt = time.Now()
	r.version++
}
