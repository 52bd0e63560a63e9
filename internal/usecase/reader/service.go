package reader

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/lawaware/backend/domain"
)

type Service struct {
	userRepo    domain.UserRepository
	readRepo    domain.ReadRepository
	articleRepo domain.ArticleRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.ReaderUsecase = (*Service)(nil)

func NewService(
	userRepo domain.UserRepository,
	readRepo domain.ReadRepository,
	articleRepo domain.ArticleRepository,
	bloomRepo domain.BloomRepository,
) *Service {
	return &Service{
		userRepo:    userRepo,
		readRepo:    readRepo,
		articleRepo: articleRepo,
		bloomRepo:   bloomRepo,
	}
}

// MarkRead adds the article to the user's read set with the storage-level
// atomic set-add. Two concurrent calls for the same pair cannot both
// append; exactly one reports the addition.
func (s *Service) MarkRead(ctx context.Context, userID, articleID int64) (bool, error) {
	exists, err := s.bloomRepo.Exists(ctx, articleID)
	if err == nil && !exists {
		return false, domain.ErrNotFound
	}
	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		return false, err
	}

	return s.readRepo.AddReadRecord(ctx, userID, articleID)
}

// Profile aggregates the user's read progress against the catalog size.
func (s *Service) Profile(ctx context.Context, userID int64) (domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	var (
		total     int64
		readCount int64
		readIDs   []int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.articleRepo.Count(gctx)
		return
	})
	g.Go(func() (err error) {
		readCount, err = s.readRepo.CountRead(gctx, userID)
		return
	})
	g.Go(func() (err error) {
		readIDs, err = s.readRepo.FetchReadArticleIDs(gctx, userID)
		return
	})
	if err := g.Wait(); err != nil {
		return domain.Profile{}, err
	}

	// The join silently drops read-set ids with no matching article, so a
	// future delete path cannot corrupt profiles.
	readArticles, err := s.articleRepo.GetSummariesByIDs(ctx, readIDs)
	if err != nil {
		return domain.Profile{}, err
	}

	var percentage float64
	if total > 0 {
		percentage = math.Round(float64(readCount)/float64(total)*100*100) / 100
	}

	return domain.Profile{
		Username:       user.Username,
		Email:          user.Email,
		ReadCount:      readCount,
		TotalArticles:  total,
		ReadPercentage: percentage,
		ReadArticles:   readArticles,
	}, nil
}
