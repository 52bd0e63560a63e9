package domain

import "context"

// EngagementUsecase covers per-user interaction with a single article:
// like toggling and commenting.
type EngagementUsecase interface {
	// ToggleLike flips the caller's membership in the article's like set
	// and reports the new state. Two sequential toggles by the same user
	// restore the original membership.
	ToggleLike(ctx context.Context, articleID, userID int64) (liked bool, err error)

	// LikeStatus is a pure membership test, no mutation.
	LikeStatus(ctx context.Context, articleID, userID int64) (bool, error)

	// AddComment appends a comment and returns it with generated id and
	// timestamp. Returns ErrBadParamInput on empty text.
	AddComment(ctx context.Context, articleID, userID int64, text string) (Comment, error)

	// ListComments returns all comments of an article in append order
	// with authors resolved for display.
	ListComments(ctx context.Context, articleID int64) ([]Comment, error)
}
