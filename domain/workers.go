package domain

import "context"

// LikeCountSyncer reconciles the denormalized like counter of articles
// whose like set changed. Toggles write their set row synchronously;
// only the counter refresh is deferred to the worker.
type LikeCountSyncer interface {
	Start(ctx context.Context)

	// Notify queues an article for counter reconciliation. It never
	// blocks; a full queue drops the notification and the next toggle
	// or restart catches the counter up.
	Notify(articleID int64)
}
