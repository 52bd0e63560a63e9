package domain

import (
	"context"
	"time"
)

// User represents a reader of the catalog. Account lifecycle (creation,
// credential changes) is owned by the external auth provider; this
// service only reads identity fields and grows the read set.
type User struct {
	ID        int64     // Unique identifier
	Username  string    // Display name, unique
	Email     string    // Contact email
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	GetByIDs(ctx context.Context, userIDs []int64) ([]User, error)
}

// ReadRepository persists the per-user read set as (user_id, article_id)
// rows under a unique index. The set only grows; no removal path exists.
type ReadRepository interface {
	// AddReadRecord adds articleID to the user's read set.
	// Returns false if the record was already present.
	AddReadRecord(ctx context.Context, userID, articleID int64) (bool, error)

	// FetchReadArticleIDs retrieves every article ID the user has read.
	FetchReadArticleIDs(ctx context.Context, userID int64) ([]int64, error)

	// CountRead counts the user's read records.
	CountRead(ctx context.Context, userID int64) (int64, error)
}
