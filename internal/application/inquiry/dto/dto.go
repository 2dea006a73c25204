package dto

import (
	"time"

	"courtside/internal/domain/inquiry"
	"courtside/internal/domain/user"
)

type UserDTO struct {
	SID       string `json:"sid"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type MessageDTO struct {
	ID     uint     `json:"id"`
	Origin string   `json:"origin"`
	Author *UserDTO `json:"author,omitempty"`
	Body   string   `json:"body"`
	// BodyHTML is the markdown-rendered body, populated on snapshot
	// payloads so list rows can show rich previews without a client-side
	// renderer.
	BodyHTML  string    `json:"body_html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TimelineDTO struct {
	Items      []MessageDTO `json:"items"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

type ModeratorDTO struct {
	User       *UserDTO  `json:"user"`
	InCharge   bool      `json:"in_charge"`
	AssignedAt time.Time `json:"assigned_at"`
}

// InquirySnapshotDTO is the owner/dashboard view of an inquiry: enough to
// render a list row live without re-polling. It deliberately carries no
// unread field; the owner already knows what they have read, and dashboard
// counts are per-moderator.
type InquirySnapshotDTO struct {
	SID         string         `json:"sid"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Solved      bool           `json:"solved"`
	Owner       *UserDTO       `json:"owner"`
	Moderators  []ModeratorDTO `json:"moderators"`
	LastMessage *MessageDTO    `json:"last_message,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// InquirySnapshotWithUnreadDTO is the per-moderator snapshot: the shared
// snapshot plus that moderator's own unread counters.
type InquirySnapshotWithUnreadDTO struct {
	InquirySnapshotDTO
	Unread      int64 `json:"unread"`
	CrossUnread int64 `json:"cross_unread"`
}

type UnreadCountsDTO struct {
	Own         int64  `json:"own"`
	CrossOthers *int64 `json:"cross_others,omitempty"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		SID:       u.SID(),
		Username:  u.Username(),
		AvatarURL: u.AvatarURL(),
	}
}

func ToMessageDTO(e inquiry.TimelineEntry, author *user.User) MessageDTO {
	return MessageDTO{
		ID:        e.MessageID,
		Origin:    string(e.Origin),
		Author:    ToUserDTO(author),
		Body:      e.Body,
		CreatedAt: e.CreatedAt,
	}
}

func ToModeratorDTO(a *inquiry.Assignment, u *user.User) ModeratorDTO {
	return ModeratorDTO{
		User:       ToUserDTO(u),
		InCharge:   a.InCharge(),
		AssignedAt: a.CreatedAt(),
	}
}
