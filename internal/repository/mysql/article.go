package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lawaware/backend/domain"
	"github.com/lawaware/backend/internal/repository/mysql/model"
)

type articleRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository creates the database access layer for articles.
func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

func (m *articleRepository) GetByID(ctx context.Context, id int64) (res domain.Article, err error) {
	var article model.Article
	err = m.DB.WithContext(ctx).First(&article, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = article.ToDomain()
	return
}

func (m *articleRepository) GetByNumber(ctx context.Context, number int64) (res domain.Article, err error) {
	var article model.Article
	err = m.DB.WithContext(ctx).First(&article, "number = ?", number).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = article.ToDomain()
	return
}

func (m *articleRepository) Store(ctx context.Context, a *domain.Article) (err error) {
	articleModel := model.NewArticleFromDomain(a)
	result := m.DB.WithContext(ctx).Create(&articleModel)
	if result.Error != nil {
		return result.Error
	}
	a.ID = articleModel.ID
	a.CreatedAt = articleModel.CreatedAt
	a.UpdatedAt = articleModel.UpdatedAt
	return
}

func (m *articleRepository) Update(ctx context.Context, ar *domain.Article) (err error) {
	articleModel := model.NewArticleFromDomain(ar)
	result := m.DB.WithContext(ctx).Model(&articleModel).Updates(&articleModel)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return
}

func (m *articleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := m.DB.WithContext(ctx).Model(&model.Article{}).Count(&total).Error
	return total, err
}

func (m *articleRepository) FetchPage(ctx context.Context, offset, limit int) ([]domain.ArticleSummary, error) {
	var rows []model.Article
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select("id, number, title").
		Order("number, id").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.ArticleSummary, len(rows))
	for i := range rows {
		res[i] = domain.ArticleSummary{ID: rows[i].ID, Number: rows[i].Number, Title: rows[i].Title}
	}
	return res, nil
}

func (m *articleRepository) GetSummariesByIDs(ctx context.Context, ids []int64) ([]domain.ArticleSummary, error) {
	if len(ids) == 0 {
		return []domain.ArticleSummary{}, nil
	}

	var rows []model.Article
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select("id, number, title").
		Where("id IN ?", ids).
		Order("number, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.ArticleSummary, len(rows))
	for i := range rows {
		res[i] = domain.ArticleSummary{ID: rows[i].ID, Number: rows[i].Number, Title: rows[i].Title}
	}
	return res, nil
}

// AddLikeRecord relies on the unique (article_id, user_id) index: the
// conflict clause turns a duplicate insert into a no-op, so membership
// can never double up no matter how calls interleave.
func (m *articleRepository) AddLikeRecord(ctx context.Context, articleID, userID int64) (bool, error) {
	userLike := model.NewUserLikeFromDomain(domain.UserLike{
		ArticleID: articleID,
		UserID:    userID,
		CreatedAt: time.Now(),
	})
	result := m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&userLike)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (m *articleRepository) RemoveLikeRecord(ctx context.Context, articleID, userID int64) (bool, error) {
	result := m.DB.WithContext(ctx).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&model.UserLike{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (m *articleRepository) IsLiked(ctx context.Context, articleID, userID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.UserLike{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error

	return count > 0, err
}

func (m *articleRepository) FetchLikedArticleIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.UserLike{}).
		Select("article_id").
		Where("user_id = ?", userID).
		Order("article_id").
		Find(&ids).Error

	return ids, err
}

func (m *articleRepository) CountLikes(ctx context.Context, articleID int64) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.UserLike{}).
		Where("article_id = ?", articleID).
		Count(&count).Error

	return count, err
}

func (m *articleRepository) UpdateLikeCount(ctx context.Context, articleID, likes int64) error {
	result := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Where("id = ?", articleID).
		UpdateColumn("likes", likes)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *articleRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
