package response

import (
	"fmt"

	"github.com/lawaware/backend/domain"
)

type Profile struct {
	Username       string                  `json:"username"`
	Email          string                  `json:"email"`
	ReadCount      int64                   `json:"readCount"`
	TotalArticles  int64                   `json:"totalArticles"`
	ReadPercentage string                  `json:"readPercentage"`
	ReadArticles   []domain.ArticleSummary `json:"readArticles"`
}

// NewProfileFromDomain renders the percentage with two-decimal precision.
func NewProfileFromDomain(p domain.Profile) Profile {
	return Profile{
		Username:       p.Username,
		Email:          p.Email,
		ReadCount:      p.ReadCount,
		TotalArticles:  p.TotalArticles,
		ReadPercentage: fmt.Sprintf("%.2f", p.ReadPercentage),
		ReadArticles:   p.ReadArticles,
	}
}
