package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	Email        string `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;index"`
	RegionID     *uint  `gorm:"index"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}

// UserPlanModel is the membership row linking users to service plans.
type UserPlanModel struct {
	ID            uint `gorm:"primaryKey"`
	UserID        uint `gorm:"not null;uniqueIndex:idx_user_plan"`
	ServicePlanID uint `gorm:"not null;uniqueIndex:idx_user_plan;index"`
	CreatedAt     int64 `gorm:"autoCreateTime:milli;not null"`
}

func (UserPlanModel) TableName() string {
	return "user_service_plans"
}
