package inquiry

// OwnerUnread is the owner's view of unread activity: moderator messages
// across every assignment of the inquiry newer than the owner's read marker.
type OwnerUnread struct {
	Messages int64
}

// ModeratorUnread is one moderator's view of unread activity on an inquiry.
// Own counts owner messages newer than the moderator's read marker;
// CrossOthers counts messages from other moderators' assignments over the
// same boundary, kept separate so colleague activity is visible without
// inflating the owner-message count.
type ModeratorUnread struct {
	Own         int64
	CrossOthers int64
}
