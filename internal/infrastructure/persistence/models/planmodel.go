package models

type ServicePlanModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"size:500"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ServicePlanModel) TableName() string {
	return "service_plans"
}

// PlanAvailabilityModel links service plans to availability windows.
type PlanAvailabilityModel struct {
	ID                    uint  `gorm:"primaryKey"`
	ServicePlanID         uint  `gorm:"not null;uniqueIndex:idx_plan_availability"`
	ServiceAvailabilityID uint  `gorm:"not null;uniqueIndex:idx_plan_availability;index"`
	CreatedAt             int64 `gorm:"autoCreateTime:milli;not null"`
}

func (PlanAvailabilityModel) TableName() string {
	return "service_plan_availabilities"
}
