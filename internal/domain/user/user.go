package user

import (
	"fmt"
)

// User is the read-only identity projection this subsystem needs for
// display fields and moderator gating. Account management lives in the
// platform's identity service; nothing here mutates users.
type User struct {
	id        uint
	sid       string
	username  string
	avatarURL string
	moderator bool
}

func ReconstructUser(id uint, sid, username, avatarURL string, moderator bool) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("sid is required")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:        id,
		sid:       sid,
		username:  username,
		avatarURL: avatarURL,
		moderator: moderator,
	}, nil
}

func (u *User) ID() uint          { return u.id }
func (u *User) SID() string       { return u.sid }
func (u *User) Username() string  { return u.username }
func (u *User) AvatarURL() string { return u.avatarURL }
func (u *User) IsModerator() bool { return u.moderator }
