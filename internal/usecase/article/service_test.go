package article_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lawaware/backend/domain"
	"github.com/lawaware/backend/domain/mocks"
	ucase "github.com/lawaware/backend/internal/usecase/article"
)

const pageSize = 50

func newService(repo *mocks.ArticleRepository, cache *mocks.ArticleCache, bloom *mocks.BloomRepository) *ucase.Service {
	return ucase.NewService(repo, cache, bloom, pageSize)
}

func TestCreate(t *testing.T) {
	admin := domain.Identity{UserID: 1, IsAdmin: true}
	visitor := domain.Identity{UserID: 2}

	valid := domain.Article{Number: 21, Title: "Right to Life", Description: "Article 21", Content: "No person shall be deprived..."}

	t.Run("success", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		cache := new(mocks.ArticleCache)
		bloom := new(mocks.BloomRepository)
		repo.On("GetByNumber", mock.Anything, valid.Number).Return(domain.Article{}, domain.ErrNotFound).Once()
		repo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil).Once()
		bloom.On("Add", mock.Anything, mock.AnythingOfType("int64")).Return(nil).Once()

		ar := valid
		err := newService(repo, cache, bloom).Create(context.Background(), admin, &ar)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("forbidden-for-non-admin", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		ar := valid
		err := newService(repo, new(mocks.ArticleCache), new(mocks.BloomRepository)).Create(context.Background(), visitor, &ar)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("missing-field", func(t *testing.T) {
		ar := valid
		ar.Title = ""
		err := newService(new(mocks.ArticleRepository), new(mocks.ArticleCache), new(mocks.BloomRepository)).Create(context.Background(), admin, &ar)
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})

	t.Run("duplicate-number", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		repo.On("GetByNumber", mock.Anything, valid.Number).Return(domain.Article{ID: 7, Number: valid.Number}, nil).Once()

		ar := valid
		err := newService(repo, new(mocks.ArticleCache), new(mocks.BloomRepository)).Create(context.Background(), admin, &ar)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestGetByID(t *testing.T) {
	var mockArticle domain.Article
	require.NoError(t, faker.FakeData(&mockArticle))
	mockArticle.ID = 42
	mockArticle.Likes = 3

	t.Run("cache-hit", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		cache := new(mocks.ArticleCache)
		bloom := new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, mockArticle.ID).Return(true, nil).Once()
		cache.On("GetArticle", mock.Anything, mockArticle.ID).Return(mockArticle, nil).Once()
		cache.On("GetLikeCount", mock.Anything, mockArticle.ID).Return(int64(9), nil).Once()

		res, err := newService(repo, cache, bloom).GetByID(context.Background(), mockArticle.ID)
		assert.NoError(t, err)
		assert.Equal(t, mockArticle.Title, res.Title)
		assert.Equal(t, int64(9), res.Likes)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("cache-miss-falls-back-to-db", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		cache := new(mocks.ArticleCache)
		bloom := new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, mockArticle.ID).Return(true, nil).Once()
		cache.On("GetArticle", mock.Anything, mockArticle.ID).Return(domain.Article{}, domain.ErrCacheMiss).Once()
		repo.On("GetByID", mock.Anything, mockArticle.ID).Return(mockArticle, nil).Once()
		cache.On("SetArticle", mock.Anything, mock.AnythingOfType("*domain.Article")).Return(nil).Maybe()
		cache.On("GetLikeCount", mock.Anything, mockArticle.ID).Return(int64(0), domain.ErrCacheMiss).Once()
		cache.On("SetLikeCount", mock.Anything, mockArticle.ID, mockArticle.Likes).Return(nil).Once()

		res, err := newService(repo, cache, bloom).GetByID(context.Background(), mockArticle.ID)
		assert.NoError(t, err)
		assert.Equal(t, mockArticle.Likes, res.Likes)
		repo.AssertExpectations(t)
	})

	t.Run("bloom-negative-short-circuits", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		bloom := new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, int64(404)).Return(false, nil).Once()

		_, err := newService(repo, new(mocks.ArticleCache), bloom).GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func summaries(from, n int64) []domain.ArticleSummary {
	res := make([]domain.ArticleSummary, 0, n)
	for i := int64(0); i < n; i++ {
		res = append(res, domain.ArticleSummary{ID: from + i, Number: from + i, Title: "Article"})
	}
	return res
}

func TestListPartitionsCatalogExactlyOnce(t *testing.T) {
	// 120 articles, page size 50: pages 1..3 must cover every article
	// once with no duplicates.
	repo := new(mocks.ArticleRepository)
	repo.On("Count", mock.Anything).Return(int64(120), nil)
	repo.On("FetchPage", mock.Anything, 0, pageSize).Return(summaries(1, 50), nil).Once()
	repo.On("FetchPage", mock.Anything, 50, pageSize).Return(summaries(51, 50), nil).Once()
	repo.On("FetchPage", mock.Anything, 100, pageSize).Return(summaries(101, 20), nil).Once()

	svc := newService(repo, new(mocks.ArticleCache), new(mocks.BloomRepository))

	seen := make(map[int64]int)
	for page := 1; page <= 3; page++ {
		res, err := svc.List(context.Background(), page)
		require.NoError(t, err)
		assert.Equal(t, page, res.Page)
		assert.Equal(t, 3, res.TotalPages)
		assert.Equal(t, int64(120), res.TotalArticles)
		assert.Equal(t, page < 3, res.HasNext)
		assert.Equal(t, page > 1, res.HasPrev)
		for _, item := range res.Items {
			seen[item.ID]++
		}
	}

	assert.Len(t, seen, 120)
	for id, count := range seen {
		assert.Equalf(t, 1, count, "article %d appeared %d times", id, count)
	}
}

func TestListFirstAndLastPageMetadata(t *testing.T) {
	repo := new(mocks.ArticleRepository)
	repo.On("Count", mock.Anything).Return(int64(120), nil)
	repo.On("FetchPage", mock.Anything, 0, pageSize).Return(summaries(1, 50), nil).Once()
	repo.On("FetchPage", mock.Anything, 100, pageSize).Return(summaries(101, 20), nil).Once()

	svc := newService(repo, new(mocks.ArticleCache), new(mocks.BloomRepository))

	first, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, first.Items, 50)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)

	last, err := svc.List(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, last.Items, 20)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}

func TestListEmptyCatalog(t *testing.T) {
	repo := new(mocks.ArticleRepository)
	repo.On("Count", mock.Anything).Return(int64(0), nil).Once()

	res, err := newService(repo, new(mocks.ArticleCache), new(mocks.BloomRepository)).List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Equal(t, 0, res.TotalPages)
	assert.False(t, res.HasNext)
	assert.False(t, res.HasPrev)
	repo.AssertNotCalled(t, "FetchPage", mock.Anything, mock.Anything, mock.Anything)
}

func TestListPagePastEnd(t *testing.T) {
	repo := new(mocks.ArticleRepository)
	repo.On("Count", mock.Anything).Return(int64(120), nil).Once()

	res, err := newService(repo, new(mocks.ArticleCache), new(mocks.BloomRepository)).List(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 9, res.Page)
	assert.Equal(t, 3, res.TotalPages)
	assert.False(t, res.HasNext)
	assert.True(t, res.HasPrev)
	repo.AssertNotCalled(t, "FetchPage", mock.Anything, mock.Anything, mock.Anything)
}

func TestInitBloomFilter(t *testing.T) {
	repo := new(mocks.ArticleRepository)
	bloom := new(mocks.BloomRepository)
	repo.On("FetchIDs", mock.Anything, int64(0), int64(500)).Return([]int64{1, 2, 3}, nil).Once()
	repo.On("FetchIDs", mock.Anything, int64(3), int64(500)).Return([]int64{}, nil).Once()
	bloom.On("BulkAdd", mock.Anything, []int64{1, 2, 3}).Return(nil).Once()

	err := newService(repo, new(mocks.ArticleCache), bloom).InitBloomFilter(context.Background())
	assert.NoError(t, err)
	repo.AssertExpectations(t)
	bloom.AssertExpectations(t)
}
