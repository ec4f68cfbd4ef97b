package models

type NetworkStatusModel struct {
	ID         uint   `gorm:"primaryKey"`
	Status     string `gorm:"size:100;not null;index"`
	UpdateDate int64  `gorm:"not null;index"`
	RegionID   *uint  `gorm:"index"`
	Version    int    `gorm:"not null;default:1"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (NetworkStatusModel) TableName() string {
	return "network_statuses"
}

// NetworkAvailabilityModel links network statuses to availability windows.
type NetworkAvailabilityModel struct {
	ID                    uint  `gorm:"primaryKey"`
	NetworkStatusID       uint  `gorm:"not null;uniqueIndex:idx_network_availability"`
	ServiceAvailabilityID uint  `gorm:"not null;uniqueIndex:idx_network_availability;index"`
	CreatedAt             int64 `gorm:"autoCreateTime:milli;not null"`
}

func (NetworkAvailabilityModel) TableName() string {
	return "network_status_availabilities"
}
