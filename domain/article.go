package domain

import (
	"context"
	"time"
)

// Article is representing the Article data struct
type Article struct {
	ID          int64     // Unique identifier for the article
	Number      int64     // Natural article number, unique, drives listing order
	Title       string    // Article title
	Description string    // Short description shown in previews
	Content     string    // Article body content
	Likes       int64     // Denormalized like count, reconciled from like records
	UpdatedAt   time.Time // Last update timestamp
	CreatedAt   time.Time // Creation timestamp
}

// ArticleSummary is the listing projection of an article.
// The body is never returned in a listing.
type ArticleSummary struct {
	ID     int64  `json:"id"`
	Number int64  `json:"number"`
	Title  string `json:"title"`
}

// ArticlePage is one window over the article set, ordered by number ascending.
type ArticlePage struct {
	Items         []ArticleSummary
	Page          int
	TotalPages    int
	TotalArticles int64
	HasNext       bool
	HasPrev       bool
}

// ArticleRepository defines the contract for article data persistence.
//
// Like membership is stored as (article_id, user_id) rows under a unique
// index, so AddLikeRecord/RemoveLikeRecord are atomic set operations:
// two concurrent calls can never produce a duplicate entry or lose an update.
type ArticleRepository interface {
	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)

	// GetByNumber retrieves an article by its natural number.
	GetByNumber(ctx context.Context, number int64) (Article, error)

	// Store creates a new article and backfills generated fields.
	Store(ctx context.Context, a *Article) error

	// Update modifies number, title, description and content of an
	// existing article. Returns ErrNotFound if the article doesn't exist.
	Update(ctx context.Context, a *Article) error

	// Count returns the total number of articles.
	Count(ctx context.Context) (int64, error)

	// FetchPage retrieves one window of listing summaries ordered by
	// number ascending, ties broken by id.
	FetchPage(ctx context.Context, offset, limit int) ([]ArticleSummary, error)

	// GetSummariesByIDs retrieves summaries for the given IDs.
	// IDs that do not resolve are omitted, not an error.
	GetSummariesByIDs(ctx context.Context, ids []int64) ([]ArticleSummary, error)

	// AddLikeRecord adds userID to the article's like set.
	// Returns false if the record was already present.
	AddLikeRecord(ctx context.Context, articleID, userID int64) (bool, error)

	// RemoveLikeRecord removes userID from the article's like set.
	// Returns false if no record was present.
	RemoveLikeRecord(ctx context.Context, articleID, userID int64) (bool, error)

	// IsLiked reports membership of userID in the article's like set.
	IsLiked(ctx context.Context, articleID, userID int64) (bool, error)

	// FetchLikedArticleIDs retrieves every article ID the user has liked,
	// used to warm the cached like set.
	FetchLikedArticleIDs(ctx context.Context, userID int64) ([]int64, error)

	// CountLikes counts the like records of an article.
	CountLikes(ctx context.Context, articleID int64) (int64, error)

	// UpdateLikeCount overwrites the denormalized like counter.
	UpdateLikeCount(ctx context.Context, articleID, likes int64) error

	// FetchIDs pages over all article IDs, used to seed the bloom filter.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

type ArticleCache interface {
	GetArticle(ctx context.Context, id int64) (res Article, err error)
	SetArticle(ctx context.Context, ar *Article) (err error)
	DeleteArticle(ctx context.Context, id int64) (err error)

	// Likes related
	GetLikeCount(ctx context.Context, articleID int64) (int64, error)
	SetLikeCount(ctx context.Context, articleID int64, likes int64) error

	AddLikeRecord(ctx context.Context, likeRecord UserLike) (bool, error)
	RemoveLikeRecord(ctx context.Context, likeRecord UserLike) (bool, error)
	IsLiked(ctx context.Context, likeRecord UserLike) (bool, error)
	SetUserLikedArticles(ctx context.Context, userID int64, articleIDs []int64) error
}

// ArticleUsecase is the catalog service: admin-gated writes plus the
// public read side.
type ArticleUsecase interface {
	// Create stores a new article. Returns ErrForbidden unless the caller
	// is an admin, ErrBadParamInput when a required field is missing and
	// ErrConflict when the article number is already taken.
	Create(ctx context.Context, caller Identity, ar *Article) error

	// Update modifies an existing article, admin only.
	Update(ctx context.Context, caller Identity, ar *Article) error

	// GetByID retrieves the full article.
	GetByID(ctx context.Context, id int64) (Article, error)

	// List produces one stable page of the catalog. Pages past the end
	// yield an empty item slice with correct metadata, not an error.
	List(ctx context.Context, page int) (ArticlePage, error)

	InitBloomFilter(ctx context.Context) error
}
