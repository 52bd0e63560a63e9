package response

import "github.com/lawaware/backend/domain"

type Comment struct {
	ID        int64  `json:"id"`
	ArticleID int64  `json:"article_id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username,omitempty"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	res := Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		UserID:    c.UserID,
		Text:      c.Content,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
	}
	if c.User != nil {
		res.Username = c.User.Username
	}
	return res
}
