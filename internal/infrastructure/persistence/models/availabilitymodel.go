package models

type ServiceAvailabilityModel struct {
	ID                 uint   `gorm:"primaryKey"`
	AvailabilityStatus string `gorm:"size:100;not null;index"`
	AvailabilityDate   int64  `gorm:"not null;index"`
	Version            int    `gorm:"not null;default:1"`
	CreatedAt          int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ServiceAvailabilityModel) TableName() string {
	return "service_availabilities"
}
