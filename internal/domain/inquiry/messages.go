package inquiry

import (
	"fmt"
	"strings"
	"time"
)

// OwnerMessage is an append-only message authored by the inquiry owner.
type OwnerMessage struct {
	id        uint
	inquiryID uint
	body      string
	createdAt time.Time
	updatedAt time.Time
}

func NewOwnerMessage(inquiryID uint, body string) (*OwnerMessage, error) {
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}
	if err := validateBody(body); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &OwnerMessage{
		inquiryID: inquiryID,
		body:      body,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructOwnerMessage(id, inquiryID uint, body string, createdAt, updatedAt time.Time) (*OwnerMessage, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}

	return &OwnerMessage{
		id:        id,
		inquiryID: inquiryID,
		body:      body,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (m *OwnerMessage) ID() uint             { return m.id }
func (m *OwnerMessage) InquiryID() uint      { return m.inquiryID }
func (m *OwnerMessage) Body() string         { return m.body }
func (m *OwnerMessage) CreatedAt() time.Time { return m.createdAt }
func (m *OwnerMessage) UpdatedAt() time.Time { return m.updatedAt }

func (m *OwnerMessage) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// AssignmentMessage is an append-only message authored by the moderator of
// one assignment. It reaches its inquiry through the assignment row, which
// keeps message authorship tied to a specific engagement.
type AssignmentMessage struct {
	id           uint
	assignmentID uint
	moderatorID  uint
	body         string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAssignmentMessage(assignmentID, moderatorID uint, body string) (*AssignmentMessage, error) {
	if assignmentID == 0 {
		return nil, fmt.Errorf("assignment ID is required")
	}
	if moderatorID == 0 {
		return nil, fmt.Errorf("moderator ID is required")
	}
	if err := validateBody(body); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &AssignmentMessage{
		assignmentID: assignmentID,
		moderatorID:  moderatorID,
		body:         body,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAssignmentMessage(id, assignmentID, moderatorID uint, body string, createdAt, updatedAt time.Time) (*AssignmentMessage, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if assignmentID == 0 {
		return nil, fmt.Errorf("assignment ID is required")
	}

	return &AssignmentMessage{
		id:           id,
		assignmentID: assignmentID,
		moderatorID:  moderatorID,
		body:         body,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (m *AssignmentMessage) ID() uint             { return m.id }
func (m *AssignmentMessage) AssignmentID() uint   { return m.assignmentID }
func (m *AssignmentMessage) ModeratorID() uint    { return m.moderatorID }
func (m *AssignmentMessage) Body() string         { return m.body }
func (m *AssignmentMessage) CreatedAt() time.Time { return m.createdAt }
func (m *AssignmentMessage) UpdatedAt() time.Time { return m.updatedAt }

func (m *AssignmentMessage) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// ValidateBody checks message body constraints without building a message.
func ValidateBody(body string) error {
	return validateBody(body)
}

func validateBody(body string) error {
	if len(strings.TrimSpace(body)) == 0 {
		return fmt.Errorf("message body is required")
	}
	if len(body) > maxBodyLength {
		return fmt.Errorf("message body exceeds maximum length of %d characters", maxBodyLength)
	}
	return nil
}
