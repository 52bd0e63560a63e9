package mysql

import (
	"context"

	"github.com/lawaware/backend/domain"
	"github.com/lawaware/backend/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}

	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

func (c *commentRepository) FetchByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}
