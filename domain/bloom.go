package domain

import "context"

type BloomRepository interface {
	// Add puts an article ID into the filter.
	Add(ctx context.Context, id int64) error

	// Exists checks whether the ID may exist.
	// true: possibly present, check cache/DB next.
	// false: definitely absent, short-circuit to 404.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd seeds the filter with many IDs at once.
	BulkAdd(ctx context.Context, ids []int64) error
}
