package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lawaware/backend/domain"
)

const (
	queueSize     = 1024
	batchSize     = 100
	flushInterval = 1 * time.Second
)

// likeCountSyncer refreshes the denormalized like counter of articles
// whose like set changed. The membership rows are already committed by
// the time a notification arrives; only the counter lags.
type likeCountSyncer struct {
	articleRepo domain.ArticleRepository
	cache       domain.ArticleCache
	ch          chan int64
}

var _ domain.LikeCountSyncer = (*likeCountSyncer)(nil)

func NewLikeCountSyncer(articleRepo domain.ArticleRepository, cache domain.ArticleCache) *likeCountSyncer {
	return &likeCountSyncer{
		articleRepo: articleRepo,
		cache:       cache,
		ch:          make(chan int64, queueSize),
	}
}

func (s *likeCountSyncer) Notify(articleID int64) {
	select {
	case s.ch <- articleID:
	default:
		logrus.Info("likeCountSyncer's channel is full, notification dropped")
	}
}

func (s *likeCountSyncer) Start(ctx context.Context) {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]int64, 0, batchSize)
	for {
		select {
		case id := <-s.ch:
			batch = append(batch, id)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]int64, 0, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]int64, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down likeCountSyncer, flushing remaining notifications...")
			for {
				select {
				case id := <-s.ch:
					batch = append(batch, id)
					continue
				default:
				}
				break
			}
			s.flush(context.Background(), batch)
			return
		}
	}
}

func (s *likeCountSyncer) flush(ctx context.Context, batch []int64) {
	unique := make(map[int64]struct{}, len(batch))
	for _, id := range batch {
		unique[id] = struct{}{}
	}

	for id := range unique {
		count, err := s.articleRepo.CountLikes(ctx, id)
		if err != nil {
			logrus.Errorf("failed to count likes of article %d: %v", id, err)
			continue
		}
		if err := s.articleRepo.UpdateLikeCount(ctx, id, count); err != nil {
			logrus.Errorf("failed to update like count of article %d: %v", id, err)
			continue
		}
		if err := s.cache.SetLikeCount(ctx, id, count); err != nil {
			logrus.Warnf("failed to cache like count of article %d: %v", id, err)
		}
	}
}
