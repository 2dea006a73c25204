package inquiry

import (
	"time"
)

type InquiryOpenedEvent struct {
	InquiryID uint
	SID       string
	OwnerID   uint
	Title     string
	Timestamp time.Time
}

func NewInquiryOpenedEvent(inquiryID uint, sid string, ownerID uint, title string, timestamp time.Time) InquiryOpenedEvent {
	return InquiryOpenedEvent{
		InquiryID: inquiryID,
		SID:       sid,
		OwnerID:   ownerID,
		Title:     title,
		Timestamp: timestamp,
	}
}

type OwnerMessageCreatedEvent struct {
	InquiryID uint
	MessageID uint
	OwnerID   uint
	Body      string
	Timestamp time.Time
}

func NewOwnerMessageCreatedEvent(inquiryID, messageID, ownerID uint, body string, timestamp time.Time) OwnerMessageCreatedEvent {
	return OwnerMessageCreatedEvent{
		InquiryID: inquiryID,
		MessageID: messageID,
		OwnerID:   ownerID,
		Body:      body,
		Timestamp: timestamp,
	}
}

type ModeratorMessageCreatedEvent struct {
	InquiryID    uint
	AssignmentID uint
	MessageID    uint
	ModeratorID  uint
	Body         string
	Timestamp    time.Time
}

func NewModeratorMessageCreatedEvent(inquiryID, assignmentID, messageID, moderatorID uint, body string, timestamp time.Time) ModeratorMessageCreatedEvent {
	return ModeratorMessageCreatedEvent{
		InquiryID:    inquiryID,
		AssignmentID: assignmentID,
		MessageID:    messageID,
		ModeratorID:  moderatorID,
		Body:         body,
		Timestamp:    timestamp,
	}
}

type ModeratorAssignedEvent struct {
	InquiryID   uint
	ModeratorID uint
	Timestamp   time.Time
}

func NewModeratorAssignedEvent(inquiryID, moderatorID uint, timestamp time.Time) ModeratorAssignedEvent {
	return ModeratorAssignedEvent{
		InquiryID:   inquiryID,
		ModeratorID: moderatorID,
		Timestamp:   timestamp,
	}
}

type ModeratorUnassignedEvent struct {
	InquiryID   uint
	ModeratorID uint
	Timestamp   time.Time
}

func NewModeratorUnassignedEvent(inquiryID, moderatorID uint, timestamp time.Time) ModeratorUnassignedEvent {
	return ModeratorUnassignedEvent{
		InquiryID:   inquiryID,
		ModeratorID: moderatorID,
		Timestamp:   timestamp,
	}
}

type InquiryStateUpdatedEvent struct {
	InquiryID uint
	Solved    bool
	Timestamp time.Time
}

func NewInquiryStateUpdatedEvent(inquiryID uint, solved bool, timestamp time.Time) InquiryStateUpdatedEvent {
	return InquiryStateUpdatedEvent{
		InquiryID: inquiryID,
		Solved:    solved,
		Timestamp: timestamp,
	}
}
