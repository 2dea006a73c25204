package inquiry

import (
	"fmt"
	"time"
)

// Assignment records a moderator's engagement with an inquiry. Rows are
// never deleted: moderator messages reference their assignment, so history
// must stay addressable after a moderator steps down. At most one row
// exists per (inquiry, moderator) pair.
type Assignment struct {
	id          uint
	inquiryID   uint
	moderatorID uint
	inCharge    bool
	lastReadAt  time.Time
	createdAt   time.Time
}

func NewAssignment(inquiryID, moderatorID uint) (*Assignment, error) {
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}
	if moderatorID == 0 {
		return nil, fmt.Errorf("moderator ID is required")
	}

	now := time.Now().UTC()
	return &Assignment{
		inquiryID:   inquiryID,
		moderatorID: moderatorID,
		inCharge:    true,
		lastReadAt:  now,
		createdAt:   now,
	}, nil
}

func ReconstructAssignment(
	id uint,
	inquiryID uint,
	moderatorID uint,
	inCharge bool,
	lastReadAt time.Time,
	createdAt time.Time,
) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}
	if moderatorID == 0 {
		return nil, fmt.Errorf("moderator ID is required")
	}

	return &Assignment{
		id:          id,
		inquiryID:   inquiryID,
		moderatorID: moderatorID,
		inCharge:    inCharge,
		lastReadAt:  lastReadAt,
		createdAt:   createdAt,
	}, nil
}

func (a *Assignment) ID() uint              { return a.id }
func (a *Assignment) InquiryID() uint       { return a.inquiryID }
func (a *Assignment) ModeratorID() uint     { return a.moderatorID }
func (a *Assignment) InCharge() bool        { return a.inCharge }
func (a *Assignment) LastReadAt() time.Time { return a.lastReadAt }
func (a *Assignment) CreatedAt() time.Time  { return a.createdAt }

func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}

// TakeCharge reactivates the assignment. Idempotent.
func (a *Assignment) TakeCharge() {
	a.inCharge = true
}

// StepDown deactivates the assignment without removing it.
func (a *Assignment) StepDown() {
	a.inCharge = false
}

// MarkRead advances the moderator's read marker, never backward.
func (a *Assignment) MarkRead(at time.Time) bool {
	if !at.After(a.lastReadAt) {
		return false
	}
	a.lastReadAt = at
	return true
}
