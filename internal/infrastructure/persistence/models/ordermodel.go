package models

type OrderModel struct {
	ID            uint    `gorm:"primaryKey"`
	OrderDate     int64   `gorm:"not null;index"`
	TotalAmount   float64 `gorm:"not null"`
	UserID        uint    `gorm:"not null;index"`
	ServicePlanID uint    `gorm:"not null;index"`
	Version       int     `gorm:"not null;default:1"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (OrderModel) TableName() string {
	return "orders"
}
