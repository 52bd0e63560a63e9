package model

import (
	"time"

	"github.com/lawaware/backend/domain"
)

// UserLike is one membership row of an article's like set. The unique
// (article_id, user_id) index is what makes the set semantics hold under
// concurrent inserts.
type UserLike struct {
	ArticleID int64     `gorm:"column:article_id;uniqueIndex:idx_article_user;not null"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_article_user;index;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (UserLike) TableName() string {
	return "user_likes"
}

func NewUserLikeFromDomain(ul domain.UserLike) UserLike {
	return UserLike{
		ArticleID: ul.ArticleID,
		UserID:    ul.UserID,
		CreatedAt: ul.CreatedAt,
	}
}
