package model

import "time"

// UserRead is one membership row of a user's read set, unique per
// (user_id, article_id). The set only grows.
type UserRead struct {
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_user_article;not null"`
	ArticleID int64     `gorm:"column:article_id;uniqueIndex:idx_user_article;index;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (UserRead) TableName() string {
	return "user_reads"
}
