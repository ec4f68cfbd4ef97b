package models

type PaymentModel struct {
	ID          uint    `gorm:"primaryKey"`
	Amount      float64 `gorm:"not null"`
	PaymentDate int64   `gorm:"not null;index"`
	UserID      uint    `gorm:"not null;index"`
	// OrderID is nullable: a payment detached from its order stays on
	// record for audit.
	OrderID   *uint `gorm:"index"`
	Version   int   `gorm:"not null;default:1"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
