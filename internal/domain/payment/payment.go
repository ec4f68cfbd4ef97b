// Package payment provides the payment aggregate and its repository
// contract.
package payment

import (
	"fmt"
	"time"
)

// Payment represents a payment made by a user. A payment may be detached
// from its order (orderID nil): removing a payment from an order keeps the
// payment record for audit.
type Payment struct {
	id          uint
	amount      float64
	paymentDate time.Time
	userID      uint
	orderID     *uint
	createdAt   time.Time
	updatedAt   time.Time
	version     int
}

// NewPayment creates a new payment
func NewPayment(amount float64, paymentDate time.Time, userID uint, orderID *uint) (*Payment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if paymentDate.IsZero() {
		return nil, fmt.Errorf("payment date is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := time.Now()
	return &Payment{
		amount:      amount,
		paymentDate: paymentDate,
		userID:      userID,
		orderID:     orderID,
		createdAt:   now,
		updatedAt:   now,
		version:     1,
	}, nil
}

// ReconstructPayment reconstructs a payment from persistence
func ReconstructPayment(
	id uint,
	amount float64,
	paymentDate time.Time,
	userID uint,
	orderID *uint,
	createdAt, updatedAt time.Time,
	version int,
) (*Payment, error) {
	if id == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	return &Payment{
		id:          id,
		amount:      amount,
		paymentDate: paymentDate,
		userID:      userID,
		orderID:     orderID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		version:     version,
	}, nil
}

func (p *Payment) ID() uint               { return p.id }
func (p *Payment) Amount() float64        { return p.amount }
func (p *Payment) PaymentDate() time.Time { return p.paymentDate }
func (p *Payment) UserID() uint           { return p.userID }
func (p *Payment) OrderID() *uint         { return p.orderID }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time   { return p.updatedAt }
func (p *Payment) Version() int           { return p.version }

// SetID sets the payment ID (only for persistence layer use)
func (p *Payment) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	p.id = id
	return nil
}

// Update replaces amount, date and owning references
func (p *Payment) Update(amount float64, paymentDate time.Time, userID uint, orderID *uint) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if paymentDate.IsZero() {
		return fmt.Errorf("payment date is required")
	}
	if userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	p.amount = amount
	p.paymentDate = paymentDate
	p.userID = userID
	p.orderID = orderID
	p.touch()
	return nil
}

// AssignOrder re-parents the payment to an order
func (p *Payment) AssignOrder(orderID uint) error {
	if orderID == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	p.orderID = &orderID
	p.touch()
	return nil
}

// DetachOrder clears the order reference while keeping the payment record
func (p *Payment) DetachOrder() {
	if p.orderID == nil {
		return
	}
	p.orderID = nil
	p.touch()
}

// Touch marks the aggregate as modified.
func (p *Payment) Touch() {
	p.touch()
}

func (p *Payment) touch() {
	p.updatedAt = time.Now()
	p.version++
}
