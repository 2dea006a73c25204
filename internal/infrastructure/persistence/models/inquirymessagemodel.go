package models

// OwnerMessageModel persists messages authored by the inquiry owner.
// The composite index backs the cursor queries ordered (created_at, id) desc.
type OwnerMessageModel struct {
	ID        uint   `gorm:"primaryKey"`
	InquiryID uint   `gorm:"not null;index:idx_owner_msg_timeline"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"not null;index:idx_owner_msg_timeline;autoCreateTime:false"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false"`
}

func (OwnerMessageModel) TableName() string {
	return "inquiry_owner_messages"
}

// AssignmentMessageModel persists moderator messages. They reach their
// inquiry through the assignment row, so timeline queries join
// inquiry_assignments.
type AssignmentMessageModel struct {
	ID           uint   `gorm:"primaryKey"`
	AssignmentID uint   `gorm:"not null;index:idx_assignment_msg_timeline"`
	ModeratorID  uint   `gorm:"not null;index"`
	Body         string `gorm:"type:text;not null"`
	CreatedAt    int64  `gorm:"not null;index:idx_assignment_msg_timeline;autoCreateTime:false"`
	UpdatedAt    int64  `gorm:"not null;autoUpdateTime:false"`
}

func (AssignmentMessageModel) TableName() string {
	return "inquiry_assignment_messages"
}
