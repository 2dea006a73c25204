package inquiry

import (
	"fmt"
	"time"
)

const (
	maxTitleLength = 200
	maxBodyLength  = 5000
)

// Inquiry is a support thread opened by one end user. It is owned by that
// user for its whole lifetime and is never hard-deleted; resolution happens
// through the solved flag only.
type Inquiry struct {
	id         uint
	sid        string
	categoryID uint
	title      string
	ownerID    uint
	solved     bool
	lastReadAt time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewInquiry(sid string, categoryID uint, title string, ownerID uint) (*Inquiry, error) {
	if sid == "" {
		return nil, fmt.Errorf("sid is required")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now().UTC()
	return &Inquiry{
		sid:        sid,
		categoryID: categoryID,
		title:      title,
		ownerID:    ownerID,
		solved:     false,
		lastReadAt: now,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructInquiry(
	id uint,
	sid string,
	categoryID uint,
	title string,
	ownerID uint,
	solved bool,
	lastReadAt time.Time,
	createdAt, updatedAt time.Time,
) (*Inquiry, error) {
	if id == 0 {
		return nil, fmt.Errorf("inquiry ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("sid is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Inquiry{
		id:         id,
		sid:        sid,
		categoryID: categoryID,
		title:      title,
		ownerID:    ownerID,
		solved:     solved,
		lastReadAt: lastReadAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (i *Inquiry) ID() uint              { return i.id }
func (i *Inquiry) SID() string           { return i.sid }
func (i *Inquiry) CategoryID() uint      { return i.categoryID }
func (i *Inquiry) Title() string         { return i.title }
func (i *Inquiry) OwnerID() uint         { return i.ownerID }
func (i *Inquiry) Solved() bool          { return i.solved }
func (i *Inquiry) LastReadAt() time.Time { return i.lastReadAt }
func (i *Inquiry) CreatedAt() time.Time  { return i.createdAt }
func (i *Inquiry) UpdatedAt() time.Time  { return i.updatedAt }

func (i *Inquiry) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("inquiry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("inquiry ID cannot be zero")
	}
	i.id = id
	return nil
}

// IsOwnedBy reports whether the given user owns this inquiry.
func (i *Inquiry) IsOwnedBy(userID uint) bool {
	return i.ownerID == userID
}

// SetSolved toggles the resolution state. It always bumps updatedAt, even
// when the value is unchanged, so list views sorted by activity move the
// inquiry to the top.
func (i *Inquiry) SetSolved(solved bool) {
	i.solved = solved
	i.updatedAt = time.Now().UTC()
}

func (i *Inquiry) Retitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	i.title = title
	i.updatedAt = time.Now().UTC()
	return nil
}

func (i *Inquiry) Reclassify(categoryID uint) error {
	if categoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	i.categoryID = categoryID
	i.updatedAt = time.Now().UTC()
	return nil
}

// Touch bumps updatedAt for state-relevant mutations recorded outside the
// entity itself, such as a new message or assignment change.
func (i *Inquiry) Touch() {
	i.updatedAt = time.Now().UTC()
}

// MarkRead advances the owner's read marker. Markers are monotonic: a call
// with an earlier timestamp is a no-op. Reading never counts as a mutation,
// so updatedAt stays untouched.
func (i *Inquiry) MarkRead(at time.Time) bool {
	if !at.After(i.lastReadAt) {
		return false
	}
	i.lastReadAt = at
	return true
}
