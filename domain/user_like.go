package domain

import "time"

// UserLike is representing a like record
type UserLike struct {
	ArticleID int64
	UserID    int64
	CreatedAt time.Time
}
