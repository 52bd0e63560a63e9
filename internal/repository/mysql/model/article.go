package model

import (
	"time"

	"github.com/lawaware/backend/domain"
)

type Article struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Number      int64     `gorm:"column:number;uniqueIndex;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Content     string    `gorm:"type:longtext;not null"`
	Likes       int64     `gorm:"default:0"`
	UpdatedAt   time.Time `gorm:"type:datetime"`
	CreatedAt   time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "article"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:          m.ID,
		Number:      m.Number,
		Title:       m.Title,
		Description: m.Description,
		Content:     m.Content,
		Likes:       m.Likes,
		UpdatedAt:   m.UpdatedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:          a.ID,
		Number:      a.Number,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		Likes:       a.Likes,
		UpdatedAt:   a.UpdatedAt,
		CreatedAt:   a.CreatedAt,
	}
}
