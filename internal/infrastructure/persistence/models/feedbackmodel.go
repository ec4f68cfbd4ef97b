package models

type FeedbackModel struct {
	ID            uint   `gorm:"primaryKey"`
	FeedbackText  string `gorm:"size:500;not null"`
	Rating        int    `gorm:"not null;index"`
	SubmittedDate int64  `gorm:"not null"`
	UserID        uint   `gorm:"not null;index"`
	ServicePlanID uint   `gorm:"not null;index"`
	Version       int    `gorm:"not null;default:1"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}
