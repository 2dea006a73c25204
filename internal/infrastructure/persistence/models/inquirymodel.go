package models

// InquiryModel persists inquiries. UpdatedAt is not auto-managed: the domain
// entity owns the activity timestamp, and read-marker writes must not move it.
type InquiryModel struct {
	ID         uint   `gorm:"primaryKey"`
	SID        string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	CategoryID uint   `gorm:"not null;index"`
	Title      string `gorm:"size:200;not null"`
	OwnerID    uint   `gorm:"not null;index"`
	Solved     bool   `gorm:"not null;default:false;index"`
	LastReadAt int64  `gorm:"not null"`
	CreatedAt  int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  int64  `gorm:"not null;index;autoUpdateTime:false"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (InquiryModel) TableName() string {
	return "inquiries"
}

// InquiryAssignmentModel persists moderator engagements. Rows are never
// deleted; stepping down only clears the in_charge flag so that moderator
// messages keep a valid engagement to hang off.
type InquiryAssignmentModel struct {
	ID          uint  `gorm:"primaryKey"`
	InquiryID   uint  `gorm:"not null;uniqueIndex:idx_inquiry_moderator"`
	ModeratorID uint  `gorm:"not null;uniqueIndex:idx_inquiry_moderator;index"`
	InCharge    bool  `gorm:"not null;index"`
	LastReadAt  int64 `gorm:"not null"`
	CreatedAt   int64 `gorm:"not null;autoCreateTime:false"`
}

func (InquiryAssignmentModel) TableName() string {
	return "inquiry_assignments"
}
