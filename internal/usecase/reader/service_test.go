package reader_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/lawaware/backend/domain"
	"github.com/lawaware/backend/domain/mocks"
	ucase "github.com/lawaware/backend/internal/usecase/reader"
)

func TestMarkRead(t *testing.T) {
	const (
		userID    = int64(7)
		articleID = int64(3)
	)

	t.Run("first-call-adds", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		readRepo := new(mocks.ReadRepository)
		articleRepo := new(mocks.ArticleRepository)
		bloom := new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, articleID).Return(true, nil)
		articleRepo.On("GetByID", mock.Anything, articleID).Return(domain.Article{ID: articleID}, nil)
		readRepo.On("AddReadRecord", mock.Anything, userID, articleID).Return(true, nil).Once()

		svc := ucase.NewService(userRepo, readRepo, articleRepo, bloom)
		added, err := svc.MarkRead(context.Background(), userID, articleID)
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("repeat-call-is-a-no-op", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		readRepo := new(mocks.ReadRepository)
		articleRepo := new(mocks.ArticleRepository)
		bloom := new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, articleID).Return(true, nil)
		articleRepo.On("GetByID", mock.Anything, articleID).Return(domain.Article{ID: articleID}, nil)
		readRepo.On("AddReadRecord", mock.Anything, userID, articleID).Return(true, nil).Once()
		readRepo.On("AddReadRecord", mock.Anything, userID, articleID).Return(false, nil)

		svc := ucase.NewService(userRepo, readRepo, articleRepo, bloom)

		added, err := svc.MarkRead(context.Background(), userID, articleID)
		require.NoError(t, err)
		assert.True(t, added)

		for i := 0; i < 3; i++ {
			added, err = svc.MarkRead(context.Background(), userID, articleID)
			require.NoError(t, err)
			assert.False(t, added)
		}
	})

	t.Run("missing-article", func(t *testing.T) {
		readRepo := new(mocks.ReadRepository)
		articleRepo := new(mocks.ArticleRepository)
		bloom := new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, articleID).Return(true, nil)
		articleRepo.On("GetByID", mock.Anything, articleID).Return(domain.Article{}, domain.ErrNotFound)

		svc := ucase.NewService(new(mocks.UserRepository), readRepo, articleRepo, bloom)
		_, err := svc.MarkRead(context.Background(), userID, articleID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		readRepo.AssertNotCalled(t, "AddReadRecord", mock.Anything, mock.Anything, mock.Anything)
	})
}

// readSetStore backs the read set with a mutex-guarded map so concurrent
// MarkRead calls hit real set-add semantics.
type readSetStore struct {
	mocks.ReadRepository

	mu  sync.Mutex
	set map[[2]int64]bool
}

func (s *readSetStore) AddReadRecord(_ context.Context, userID, articleID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]int64{userID, articleID}
	if s.set[key] {
		return false, nil
	}
	s.set[key] = true
	return true, nil
}

func TestMarkReadConcurrentAddsExactlyOnce(t *testing.T) {
	store := &readSetStore{set: make(map[[2]int64]bool)}
	articleRepo := new(mocks.ArticleRepository)
	bloom := new(mocks.BloomRepository)
	bloom.On("Exists", mock.Anything, mock.AnythingOfType("int64")).Return(true, nil)
	articleRepo.On("GetByID", mock.Anything, mock.AnythingOfType("int64")).Return(domain.Article{ID: 3}, nil)

	svc := ucase.NewService(new(mocks.UserRepository), store, articleRepo, bloom)

	var addedCount int64
	g := new(errgroup.Group)
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			added, err := svc.MarkRead(context.Background(), 7, 3)
			if added {
				atomic.AddInt64(&addedCount, 1)
			}
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(1), addedCount)
	assert.Len(t, store.set, 1)
}

func TestProfile(t *testing.T) {
	const userID = int64(7)
	user := domain.User{ID: userID, Username: "asha", Email: "asha@example.com"}

	t.Run("percentage-rounds-to-two-decimals", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		readRepo := new(mocks.ReadRepository)
		articleRepo := new(mocks.ArticleRepository)
		userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)
		articleRepo.On("Count", mock.Anything).Return(int64(3), nil)
		readRepo.On("CountRead", mock.Anything, userID).Return(int64(1), nil).Once()
		readRepo.On("FetchReadArticleIDs", mock.Anything, userID).Return([]int64{1}, nil)
		articleRepo.On("GetSummariesByIDs", mock.Anything, []int64{1}).Return([]domain.ArticleSummary{
			{ID: 1, Number: 1, Title: "intro"},
		}, nil)

		svc := ucase.NewService(userRepo, readRepo, articleRepo, new(mocks.BloomRepository))
		profile, err := svc.Profile(context.Background(), userID)
		require.NoError(t, err)

		// 1/3 rounds to 33.33, not 33.333...
		assert.InDelta(t, 33.33, profile.ReadPercentage, 1e-9)
		assert.Equal(t, int64(1), profile.ReadCount)
		assert.Equal(t, int64(3), profile.TotalArticles)
		assert.Equal(t, "asha", profile.Username)
	})

	t.Run("exact-percentage", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		readRepo := new(mocks.ReadRepository)
		articleRepo := new(mocks.ArticleRepository)
		userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)
		articleRepo.On("Count", mock.Anything).Return(int64(10), nil)
		readIDs := []int64{1, 2, 3}
		readRepo.On("CountRead", mock.Anything, userID).Return(int64(3), nil).Once()
		readRepo.On("FetchReadArticleIDs", mock.Anything, userID).Return(readIDs, nil)
		articleRepo.On("GetSummariesByIDs", mock.Anything, readIDs).Return([]domain.ArticleSummary{
			{ID: 1}, {ID: 2}, {ID: 3},
		}, nil)

		svc := ucase.NewService(userRepo, readRepo, articleRepo, new(mocks.BloomRepository))
		profile, err := svc.Profile(context.Background(), userID)
		require.NoError(t, err)
		assert.InDelta(t, 30.0, profile.ReadPercentage, 1e-9)
	})

	t.Run("empty-catalog-yields-zero-percentage", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		readRepo := new(mocks.ReadRepository)
		articleRepo := new(mocks.ArticleRepository)
		userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)
		articleRepo.On("Count", mock.Anything).Return(int64(0), nil)
		readRepo.On("CountRead", mock.Anything, userID).Return(int64(0), nil).Once()
		readRepo.On("FetchReadArticleIDs", mock.Anything, userID).Return([]int64{}, nil)
		articleRepo.On("GetSummariesByIDs", mock.Anything, []int64{}).Return([]domain.ArticleSummary{}, nil)

		svc := ucase.NewService(userRepo, readRepo, articleRepo, new(mocks.BloomRepository))
		profile, err := svc.Profile(context.Background(), userID)
		require.NoError(t, err)

		assert.Zero(t, profile.ReadPercentage)
		assert.Zero(t, profile.ReadCount)
		assert.Empty(t, profile.ReadArticles)
	})

	t.Run("read-ids-without-articles-are-dropped-from-summaries", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		readRepo := new(mocks.ReadRepository)
		articleRepo := new(mocks.ArticleRepository)
		userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)
		articleRepo.On("Count", mock.Anything).Return(int64(4), nil)
		readIDs := []int64{1, 99, 2}
		readRepo.On("CountRead", mock.Anything, userID).Return(int64(3), nil).Once()
		readRepo.On("FetchReadArticleIDs", mock.Anything, userID).Return(readIDs, nil)
		articleRepo.On("GetSummariesByIDs", mock.Anything, readIDs).Return([]domain.ArticleSummary{
			{ID: 1, Number: 1, Title: "intro"},
			{ID: 2, Number: 2, Title: "basics"},
		}, nil)

		svc := ucase.NewService(userRepo, readRepo, articleRepo, new(mocks.BloomRepository))
		profile, err := svc.Profile(context.Background(), userID)
		require.NoError(t, err)

		require.Len(t, profile.ReadArticles, 2)
		assert.Equal(t, int64(1), profile.ReadArticles[0].ID)
		assert.Equal(t, int64(2), profile.ReadArticles[1].ID)
		// ReadCount comes from the stored set, not from the join.
		assert.Equal(t, int64(3), profile.ReadCount)
		readRepo.AssertExpectations(t)
	})

	t.Run("unknown-user", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByID", mock.Anything, userID).Return(domain.User{}, domain.ErrNotFound)

		svc := ucase.NewService(userRepo, new(mocks.ReadRepository), new(mocks.ArticleRepository), new(mocks.BloomRepository))
		_, err := svc.Profile(context.Background(), userID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
