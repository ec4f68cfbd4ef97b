// Package order provides the order aggregate and its repository contract.
package order

import (
	"fmt"
	"time"
)

// Order represents a service plan purchase by a user.
type Order struct {
	id          uint
	orderDate   time.Time
	totalAmount float64
	userID      uint
	planID      uint
	createdAt   time.Time
	updatedAt   time.Time
	version     int
}

// NewOrder creates a new order
func NewOrder(orderDate time.Time, totalAmount float64, userID, planID uint) (*Order, error) {
	if orderDate.IsZero() {
		return nil, fmt.Errorf("order date is required")
	}
	if totalAmount <= 0 {
		return nil, fmt.Errorf("total amount must be positive")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}

	now := time.Now()
	return &Order{
		orderDate:   orderDate,
		totalAmount: totalAmount,
		userID:      userID,
		planID:      planID,
		createdAt:   now,
		updatedAt:   now,
		version:     1,
	}, nil
}

// ReconstructOrder reconstructs an order from persistence
func ReconstructOrder(
	id uint,
	orderDate time.Time,
	totalAmount float64,
	userID, planID uint,
	createdAt, updatedAt time.Time,
	version int,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if totalAmount <= 0 {
		return nil, fmt.Errorf("total amount must be positive")
	}

	return &Order{
		id:          id,
		orderDate:   orderDate,
		totalAmount: totalAmount,
		userID:      userID,
		planID:      planID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		version:     version,
	}, nil
}

func (o *Order) ID() uint             { return o.id }
func (o *Order) OrderDate() time.Time { return o.orderDate }
func (o *Order) TotalAmount() float64 { return o.totalAmount }
func (o *Order) UserID() uint         { return o.userID }
func (o *Order) PlanID() uint         { return o.planID }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
func (o *Order) Version() int         { return o.version }

// SetID sets the order ID (only for persistence layer use)
func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

// Update replaces the order fields
func (o *Order) Update(orderDate time.Time, totalAmount float64, userID, planID uint) error {
	if orderDate.IsZero() {
		return fmt.Errorf("order date is required")
	}
	if totalAmount <= 0 {
		return fmt.Errorf("total amount must be positive")
	}
	if userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	if planID == 0 {
		return fmt.Errorf("plan ID is required")
	}
	o.orderDate = orderDate
	o.totalAmount = totalAmount
	o.userID = userID
	o.planID = planID
	o.touch()
	return nil
}

// Touch marks the aggregate as modified.
func (o *Order) Touch() {
	o.touch()
}

func (o *Order) touch() {
	o.updatedAt = time.Now()
	o.version++
}
