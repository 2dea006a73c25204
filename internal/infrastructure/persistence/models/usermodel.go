package models

import "time"

// UserModel is a read-only projection of accounts owned by the identity
// service. This service never inserts or mutates rows here.
type UserModel struct {
	ID        uint    `gorm:"primarykey"`
	SID       string  `gorm:"column:sid;uniqueIndex;size:32;not null"`
	Username  string  `gorm:"not null;size:100"`
	AvatarURL *string `gorm:"size:500"`
	Moderator bool    `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}
