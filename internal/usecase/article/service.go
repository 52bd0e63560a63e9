package article

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lawaware/backend/domain"
)

const bloomSeedBatch = 500

type Service struct {
	articleRepo domain.ArticleRepository
	cache       domain.ArticleCache
	bloomRepo   domain.BloomRepository
	pageSize    int
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new catalog service object
func NewService(a domain.ArticleRepository, c domain.ArticleCache, b domain.BloomRepository, pageSize int) *Service {
	return &Service{
		articleRepo: a,
		cache:       c,
		bloomRepo:   b,
		pageSize:    pageSize,
	}
}

func validateFields(ar *domain.Article) error {
	if ar.Number <= 0 ||
		strings.TrimSpace(ar.Title) == "" ||
		strings.TrimSpace(ar.Description) == "" ||
		strings.TrimSpace(ar.Content) == "" {
		return domain.ErrBadParamInput
	}
	return nil
}

func (s *Service) Create(ctx context.Context, caller domain.Identity, ar *domain.Article) error {
	if !caller.IsAdmin {
		return domain.ErrForbidden
	}
	if err := validateFields(ar); err != nil {
		return err
	}

	existing, err := s.articleRepo.GetByNumber(ctx, ar.Number)
	if err == nil && existing.ID != 0 {
		return domain.ErrConflict
	}

	if err := s.articleRepo.Store(ctx, ar); err != nil {
		return err
	}

	if err := s.bloomRepo.Add(ctx, ar.ID); err != nil {
		logrus.Warnf("failed to add article %d to bloom filter: %v", ar.ID, err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, caller domain.Identity, ar *domain.Article) error {
	if !caller.IsAdmin {
		return domain.ErrForbidden
	}

	ar.UpdatedAt = time.Now()
	if err := s.articleRepo.Update(ctx, ar); err != nil {
		return err
	}

	if err := s.cache.DeleteArticle(ctx, ar.ID); err != nil {
		logrus.Warnf("failed to invalidate article %d cache: %v", ar.ID, err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (res domain.Article, err error) {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		return domain.Article{}, domain.ErrNotFound
	}

	res, err = s.cache.GetArticle(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logrus.Warnf("cache get error: %v", err)
		}

		res, err = s.articleRepo.GetByID(ctx, id)
		if err != nil {
			return domain.Article{}, err
		}

		go func(art domain.Article) {
			if err := s.cache.SetArticle(context.Background(), &art); err != nil {
				logrus.Warnf("failed to set cache: %v", err)
			}
		}(res)
	}

	newLikes, err := s.cache.GetLikeCount(ctx, id)
	if errors.Is(err, domain.ErrCacheMiss) {
		_ = s.cache.SetLikeCount(ctx, res.ID, res.Likes)
	} else if err != nil {
		logrus.Errorf("failed to get like count from cache: %v", err)
	} else {
		res.Likes = newLikes
	}

	return res, nil
}

// List windows the catalog by (page, pageSize). Across pages 1..totalPages
// the windows partition the article set exactly once: the ordering key
// (number, id) is total and the offset math leaves no gap or overlap.
func (s *Service) List(ctx context.Context, page int) (domain.ArticlePage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.articleRepo.Count(ctx)
	if err != nil {
		return domain.ArticlePage{}, err
	}

	res := domain.ArticlePage{
		Items:         []domain.ArticleSummary{},
		Page:          page,
		TotalArticles: total,
	}
	if total == 0 {
		return res, nil
	}

	res.TotalPages = int((total + int64(s.pageSize) - 1) / int64(s.pageSize))
	res.HasNext = page < res.TotalPages
	res.HasPrev = page > 1

	// A page past the end keeps its metadata and an empty item slice.
	if page > res.TotalPages {
		return res, nil
	}

	items, err := s.articleRepo.FetchPage(ctx, (page-1)*s.pageSize, s.pageSize)
	if err != nil {
		return domain.ArticlePage{}, err
	}
	res.Items = items
	return res, nil
}

func (s *Service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := s.articleRepo.FetchIDs(ctx, cursor, bloomSeedBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}
