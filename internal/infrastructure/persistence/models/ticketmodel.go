package models

type SupportTicketModel struct {
	ID               uint   `gorm:"primaryKey"`
	IssueDescription string `gorm:"size:1000;not null"`
	Status           string `gorm:"size:50;not null;index"`
	// CreatedDate is the caller-visible creation time, distinct from the
	// audit CreatedAt and immutable after first persist.
	CreatedDate int64 `gorm:"not null;index"`
	UserID      uint  `gorm:"not null;index"`
	Version     int   `gorm:"not null;default:1"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (SupportTicketModel) TableName() string {
	return "support_tickets"
}
