package inquiry

import (
	"context"
	"time"
)

// Segment names one dashboard slice of the inquiry list.
type Segment string

const (
	SegmentAll        Segment = "all"
	SegmentUnassigned Segment = "unassigned"
	SegmentAssigned   Segment = "assigned"
	SegmentSolved     Segment = "solved"
	SegmentUnsolved   Segment = "unsolved"
)

// IsValid reports whether s is a known dashboard segment.
func (s Segment) IsValid() bool {
	switch s {
	case SegmentAll, SegmentUnassigned, SegmentAssigned, SegmentSolved, SegmentUnsolved:
		return true
	}
	return false
}

// DashboardSegments returns the channels an inquiry belongs to at a point
// in time: "all" plus exactly one of each assigned/solved pair.
func DashboardSegments(assigned, solved bool) []Segment {
	segments := []Segment{SegmentAll}
	if assigned {
		segments = append(segments, SegmentAssigned)
	} else {
		segments = append(segments, SegmentUnassigned)
	}
	if solved {
		segments = append(segments, SegmentSolved)
	} else {
		segments = append(segments, SegmentUnsolved)
	}
	return segments
}

// InquiryFilter narrows and paginates inquiry lists. Segment and OwnerID
// are mutually exclusive in practice: dashboards filter by segment, the
// owner's "mine" list filters by owner.
type InquiryFilter struct {
	Segment  Segment
	OwnerID  *uint
	Page     int
	PageSize int
}

type InquiryRepository interface {
	Create(ctx context.Context, inq *Inquiry) error
	// Update persists everything except the read marker, which has its own
	// monotonic write so concurrent reads can never be rolled back by a
	// stale entity.
	Update(ctx context.Context, inq *Inquiry) error
	// UpdateLastReadAt advances the owner's read marker, never backward.
	UpdateLastReadAt(ctx context.Context, id uint, readAt time.Time) error
	GetByID(ctx context.Context, id uint) (*Inquiry, error)
	GetBySID(ctx context.Context, sid string) (*Inquiry, error)
	// List returns inquiries ordered by updated_at descending.
	List(ctx context.Context, filter InquiryFilter) ([]*Inquiry, int64, error)
}

type AssignmentRepository interface {
	// Upsert inserts the assignment or, when the (inquiry, moderator) row
	// already exists, flips it back to in_charge=true. Concurrent
	// double-assigns must be absorbed, never surfaced as a conflict.
	Upsert(ctx context.Context, a *Assignment) error
	// Update persists in_charge only; read markers move through
	// UpdateLastReadAt so a stale entity cannot rewind them.
	Update(ctx context.Context, a *Assignment) error
	// UpdateLastReadAt advances the moderator's read marker, never backward.
	UpdateLastReadAt(ctx context.Context, id uint, readAt time.Time) error
	GetByInquiryAndModerator(ctx context.Context, inquiryID, moderatorID uint) (*Assignment, error)
	ListByInquiry(ctx context.Context, inquiryID uint) ([]*Assignment, error)
	// HasInCharge reports whether any assignment on the inquiry is active.
	HasInCharge(ctx context.Context, inquiryID uint) (bool, error)
}

type MessageRepository interface {
	CreateOwnerMessage(ctx context.Context, m *OwnerMessage) error
	CreateAssignmentMessage(ctx context.Context, m *AssignmentMessage) error

	// ListOwnerMessagesBefore returns up to limit owner messages of the
	// inquiry with created_at strictly before the bound (unbounded when
	// nil), ordered by (created_at, id) descending.
	ListOwnerMessagesBefore(ctx context.Context, inquiryID uint, before *time.Time, limit int) ([]*OwnerMessage, error)
	// ListAssignmentMessagesBefore is the moderator-stream counterpart,
	// joined through assignments so it never crosses inquiries.
	ListAssignmentMessagesBefore(ctx context.Context, inquiryID uint, before *time.Time, limit int) ([]*AssignmentMessage, error)

	CountOwnerMessagesAfter(ctx context.Context, inquiryID uint, after time.Time) (int64, error)
	CountAssignmentMessagesAfter(ctx context.Context, inquiryID uint, after time.Time) (int64, error)
	// CountOtherAssignmentMessagesAfter counts moderator messages on the
	// inquiry excluding the given assignment's own rows.
	CountOtherAssignmentMessagesAfter(ctx context.Context, inquiryID, excludeAssignmentID uint, after time.Time) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	CreateDisplayName(ctx context.Context, d *CategoryDisplayName) error
	ListDisplayNames(ctx context.Context, categoryID uint) ([]*CategoryDisplayName, error)
}
