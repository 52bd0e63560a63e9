package domain

import "context"

// Profile is a computed, non-persisted summary of a user's read progress.
type Profile struct {
	Username       string
	Email          string
	ReadCount      int64
	TotalArticles  int64
	ReadPercentage float64 // 0..100, two-decimal precision
	ReadArticles   []ArticleSummary
}

// ReaderUsecase records read-marks and aggregates them into a profile.
type ReaderUsecase interface {
	// MarkRead idempotently adds the article to the user's read set.
	// Returns false when the article was already in the set.
	MarkRead(ctx context.Context, userID, articleID int64) (added bool, err error)

	// Profile computes the caller's read progress. A catalog with zero
	// articles yields ReadPercentage 0, never a division error.
	Profile(ctx context.Context, userID int64) (Profile, error)
}
