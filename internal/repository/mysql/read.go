package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lawaware/backend/domain"
	"github.com/lawaware/backend/internal/repository/mysql/model"
)

type readRepository struct {
	DB *gorm.DB
}

var _ domain.ReadRepository = (*readRepository)(nil)

func NewReadRepository(db *gorm.DB) *readRepository {
	return &readRepository{
		DB: db,
	}
}

// AddReadRecord is an atomic set-add: the unique (user_id, article_id)
// index absorbs the duplicate insert, so two concurrent calls for the
// same pair cannot both append.
func (r *readRepository) AddReadRecord(ctx context.Context, userID, articleID int64) (bool, error) {
	record := &model.UserRead{
		UserID:    userID,
		ArticleID: articleID,
		CreatedAt: time.Now(),
	}
	result := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *readRepository) FetchReadArticleIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.DB.WithContext(ctx).
		Model(&model.UserRead{}).
		Select("article_id").
		Where("user_id = ?", userID).
		Order("created_at, article_id").
		Find(&ids).Error

	return ids, err
}

func (r *readRepository) CountRead(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.UserRead{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	return count, err
}
