package response

import (
	"github.com/lawaware/backend/domain"
)

const DateTimeFormat = "2006-01-02 15:04:05"

type Article struct {
	ID          int64  `json:"id"`
	Number      int64  `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Likes       int64  `json:"likes"`
	UpdatedAt   string `json:"updated_at"`
	CreatedAt   string `json:"created_at"`
}

// NewArticleFromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	return Article{
		ID:          a.ID,
		Number:      a.Number,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		Likes:       a.Likes,
		UpdatedAt:   a.UpdatedAt.Format(DateTimeFormat),
		CreatedAt:   a.CreatedAt.Format(DateTimeFormat),
	}
}

// ArticlePage mirrors the listing payload of the catalog: summaries
// only, plus the window metadata.
type ArticlePage struct {
	Articles      []domain.ArticleSummary `json:"articles"`
	CurrentPage   int                     `json:"currentPage"`
	TotalPages    int                     `json:"totalPages"`
	TotalArticles int64                   `json:"totalArticles"`
	HasNextPage   bool                    `json:"hasNextPage"`
	HasPrevPage   bool                    `json:"hasPrevPage"`
}

func NewArticlePageFromDomain(p domain.ArticlePage) ArticlePage {
	return ArticlePage{
		Articles:      p.Items,
		CurrentPage:   p.Page,
		TotalPages:    p.TotalPages,
		TotalArticles: p.TotalArticles,
		HasNextPage:   p.HasNext,
		HasPrevPage:   p.HasPrev,
	}
}
