package engagement

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lawaware/backend/domain"
)

type Service struct {
	articleRepo   domain.ArticleRepository
	commentRepo   domain.CommentRepository
	userRepo      domain.UserRepository
	cache         domain.ArticleCache
	bloomRepo     domain.BloomRepository
	syncer        domain.LikeCountSyncer
	maxCommentLen int
}

var _ domain.EngagementUsecase = (*Service)(nil)

// NewService creates the engagement service. maxCommentLen of 0 disables
// the comment length cap.
func NewService(
	articleRepo domain.ArticleRepository,
	commentRepo domain.CommentRepository,
	userRepo domain.UserRepository,
	cache domain.ArticleCache,
	bloomRepo domain.BloomRepository,
	syncer domain.LikeCountSyncer,
	maxCommentLen int,
) *Service {
	return &Service{
		articleRepo:   articleRepo,
		commentRepo:   commentRepo,
		userRepo:      userRepo,
		cache:         cache,
		bloomRepo:     bloomRepo,
		syncer:        syncer,
		maxCommentLen: maxCommentLen,
	}
}

// mustExist resolves the article or fails with ErrNotFound. The bloom
// filter short-circuits IDs that were never stored.
func (s *Service) mustExist(ctx context.Context, articleID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, articleID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says article %d does not exist", articleID)
		return domain.ErrNotFound
	}

	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		return err
	}
	return nil
}

// ToggleLike flips set membership with the storage-level atomic add and
// remove. Both report whether they changed anything, so interleaved
// toggles each observe a consistent pre/post state and no update is lost.
func (s *Service) ToggleLike(ctx context.Context, articleID, userID int64) (bool, error) {
	if err := s.mustExist(ctx, articleID); err != nil {
		return false, err
	}

	liked := false
	added, err := s.articleRepo.AddLikeRecord(ctx, articleID, userID)
	if err != nil {
		return false, err
	}
	if added {
		liked = true
	} else {
		// Already a member: this toggle removes. A concurrent removal
		// between the two calls leaves membership absent either way.
		if _, err := s.articleRepo.RemoveLikeRecord(ctx, articleID, userID); err != nil {
			return false, err
		}
	}

	s.mirrorLike(ctx, domain.UserLike{ArticleID: articleID, UserID: userID}, liked)
	s.syncer.Notify(articleID)

	return liked, nil
}

// mirrorLike keeps the cached like set in step with storage, best effort.
func (s *Service) mirrorLike(ctx context.Context, record domain.UserLike, liked bool) {
	var err error
	if liked {
		_, err = s.cache.AddLikeRecord(ctx, record)
	} else {
		_, err = s.cache.RemoveLikeRecord(ctx, record)
	}
	if err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to mirror like record to cache: %v", err)
	}
}

func (s *Service) LikeStatus(ctx context.Context, articleID, userID int64) (bool, error) {
	if err := s.mustExist(ctx, articleID); err != nil {
		return false, err
	}

	record := domain.UserLike{ArticleID: articleID, UserID: userID}
	liked, err := s.cache.IsLiked(ctx, record)
	if err == nil {
		return liked, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("cached like status error: %v", err)
	}

	liked, err = s.articleRepo.IsLiked(ctx, articleID, userID)
	if err != nil {
		return false, err
	}

	go func(uid int64) {
		ids, err := s.articleRepo.FetchLikedArticleIDs(context.Background(), uid)
		if err != nil {
			logrus.Warnf("failed to load liked articles of user %d: %v", uid, err)
			return
		}
		if err := s.cache.SetUserLikedArticles(context.Background(), uid, ids); err != nil {
			logrus.Warnf("failed to warm liked set of user %d: %v", uid, err)
		}
	}(userID)

	return liked, nil
}

func (s *Service) AddComment(ctx context.Context, articleID, userID int64, text string) (domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Comment{}, domain.ErrBadParamInput
	}
	if s.maxCommentLen > 0 && len(text) > s.maxCommentLen {
		return domain.Comment{}, domain.ErrBadParamInput
	}

	if err := s.mustExist(ctx, articleID); err != nil {
		return domain.Comment{}, err
	}

	comment := domain.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Content:   text,
	}
	if err := s.commentRepo.Store(ctx, &comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

func (s *Service) ListComments(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	if err := s.mustExist(ctx, articleID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FetchByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []domain.Comment{}, nil
	}

	return s.fillUserDetails(ctx, comments)
}

// fillUserDetails resolves comment authors for display. Usernames are
// looked up per request and never persisted with the comment.
func (s *Service) fillUserDetails(ctx context.Context, comments []domain.Comment) ([]domain.Comment, error) {
	seen := make(map[int64]struct{}, len(comments))
	ids := make([]int64, 0, len(comments))
	for i := range comments {
		if _, ok := seen[comments[i].UserID]; !ok {
			seen[comments[i].UserID] = struct{}{}
			ids = append(ids, comments[i].UserID)
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.User, len(users))
	for i := range users {
		byID[users[i].ID] = users[i]
	}
	for i := range comments {
		if u, ok := byID[comments[i].UserID]; ok {
			user := u
			comments[i].User = &user
		}
	}
	return comments, nil
}
