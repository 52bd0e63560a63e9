package domain

import (
	"context"
	"time"
)

// Comment domain model. Comments are immutable once created: there is
// no edit or delete path, and listing order always reflects submission
// order.
type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// User carries the resolved author for display. It is filled at
	// read time and never persisted with the comment.
	User *User `json:"user,omitempty"`
}

// CommentRepository defines the append-only persistence contract.
type CommentRepository interface {
	// Store appends a comment. The insert position is the storage
	// commit order, which fixes the listing order for good.
	Store(ctx context.Context, c *Comment) error

	// FetchByArticle retrieves all comments of an article in append order.
	FetchByArticle(ctx context.Context, articleID int64) ([]Comment, error)
}
