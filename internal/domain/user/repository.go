package user

import "context"

// Repository defines read-only identity lookups.
type Repository interface {
	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByIDs retrieves multiple users by internal IDs
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)

	// GetBySID retrieves a user by external SID
	GetBySID(ctx context.Context, sid string) (*User, error)
}
