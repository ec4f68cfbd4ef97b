// Package plan provides the service plan aggregate and its repository
// contract.
package plan

import (
	"fmt"
	"time"
)

// Plan represents a service plan aggregate root.
type Plan struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
	version     int
}

// NewPlan creates a new service plan
func NewPlan(name, description string) (*Plan, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Plan{
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
		version:     1,
	}, nil
}

// ReconstructPlan reconstructs a service plan from persistence
func ReconstructPlan(id uint, name, description string, createdAt, updatedAt time.Time, version int) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}

	return &Plan{
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
		return fmt.Errorf("plan name must be between 3 and 100 characters")
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > 500 {
		return fmt.Errorf("plan description must not exceed 500 characters")
	}
	return nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) Description() string  { return p.description }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }
func (p *Plan) Version() int         { return p.version }

// SetID sets the plan ID (only for persistence layer use)
func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

// Update replaces name and description
func (p *Plan) Update(name, description string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	p.name = name
	p.description = description
	p.touch()
	return nil
}

// Touch marks the aggregate as modified.
func (p *Plan) Touch() {
	p.touch()
}

func (p *Plan) touch() {
	p.updatedAt = time.Now()
	p.version++
}
