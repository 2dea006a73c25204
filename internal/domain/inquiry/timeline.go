package inquiry

import (
	"time"
)

// TimelinePageSize is the fixed page size of the merged message feed.
const TimelinePageSize = 25

// MessageOrigin tags a timeline entry with the stream it came from.
type MessageOrigin string

const (
	OriginOwner     MessageOrigin = "owner"
	OriginModerator MessageOrigin = "moderator"
)

// TimelineEntry is one item of the merged reverse-chronological feed.
type TimelineEntry struct {
	Origin    MessageOrigin
	MessageID uint
	AuthorID  uint
	Body      string
	CreatedAt time.Time
}

// OwnerEntry converts an owner message into a timeline entry.
func OwnerEntry(m *OwnerMessage, ownerID uint) TimelineEntry {
	return TimelineEntry{
		Origin:    OriginOwner,
		MessageID: m.ID(),
		AuthorID:  ownerID,
		Body:      m.Body(),
		CreatedAt: m.CreatedAt(),
	}
}

// ModeratorEntry converts an assignment message into a timeline entry.
func ModeratorEntry(m *AssignmentMessage) TimelineEntry {
	return TimelineEntry{
		Origin:    OriginModerator,
		MessageID: m.ID(),
		AuthorID:  m.ModeratorID(),
		Body:      m.Body(),
		CreatedAt: m.CreatedAt(),
	}
}

// MergeTimeline merges the owner and moderator streams into a single page.
// Both inputs must already be sorted by (CreatedAt, ID) descending under the
// same cursor bound, and each must be fetched with LIMIT pageSize+1: the
// extra row is how the merge tells "stream ended" apart from "stream hit its
// limit", so a stream that fills a whole page by itself still yields a
// cursor instead of silently cutting the feed off.
//
// The second return value is the next cursor: the creation time of the
// oldest entry returned, present iff either stream still held entries after
// the page filled.
func MergeTimeline(ownerEntries, moderatorEntries []TimelineEntry, pageSize int) ([]TimelineEntry, *time.Time) {
	if pageSize <= 0 {
		pageSize = TimelinePageSize
	}

	merged := make([]TimelineEntry, 0, pageSize)
	var oi, mi int
	for len(merged) < pageSize && (oi < len(ownerEntries) || mi < len(moderatorEntries)) {
		switch {
		case oi >= len(ownerEntries):
			merged = append(merged, moderatorEntries[mi])
			mi++
		case mi >= len(moderatorEntries):
			merged = append(merged, ownerEntries[oi])
			oi++
		case entryBefore(ownerEntries[oi], moderatorEntries[mi]):
			merged = append(merged, ownerEntries[oi])
			oi++
		default:
			merged = append(merged, moderatorEntries[mi])
			mi++
		}
	}

	if oi == len(ownerEntries) && mi == len(moderatorEntries) {
		return merged, nil
	}
	if len(merged) == 0 {
		return merged, nil
	}

	next := merged[len(merged)-1].CreatedAt
	return merged, &next
}

// entryBefore reports whether a precedes b in the reverse-chronological
// feed. Newer entries come first; equal timestamps within one stream fall
// back to the larger row ID, and equal timestamps across streams place the
// owner's entry first so pagination stays deterministic.
func entryBefore(a, b TimelineEntry) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	if a.Origin != b.Origin {
		return a.Origin == OriginOwner
	}
	return a.MessageID > b.MessageID
}
