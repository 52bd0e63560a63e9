package request

import "github.com/lawaware/backend/domain"

type Article struct {
	Number      int64  `json:"number" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Article) ToDomain() domain.Article {
	return domain.Article{
		Number:      r.Number,
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
	}
}
