package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lawaware/backend/domain"
)

const (
	KeyArticles          = "article:%d"
	KeyUserLikedArticles = "article:user:%d:likedArticles"
	KeyLikeCount         = "article:likes:%d"

	articleTTL      = 10 * time.Minute
	likedSetTTLSecs = 1800
	likeCountTTL    = 30 * time.Minute
)

type articleCache struct {
	client *redis.Client
}

var _ domain.ArticleCache = (*articleCache)(nil)

func NewArticleCache(client *redis.Client) *articleCache {
	return &articleCache{
		client,
	}
}

func (c *articleCache) GetArticle(ctx context.Context, id int64) (res domain.Article, err error) {
	key := fmt.Sprintf(KeyArticles, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Article{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Article{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Article{}, err
	}
	return
}

func (c *articleCache) SetArticle(ctx context.Context, ar *domain.Article) (err error) {
	key := fmt.Sprintf(KeyArticles, ar.ID)
	data, err := json.Marshal(ar)
	if err != nil {
		return
	}
	err = c.client.Set(ctx, key, data, articleTTL).Err()
	return
}

func (c *articleCache) DeleteArticle(ctx context.Context, id int64) (err error) {
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, fmt.Sprintf(KeyArticles, id))
	pipe.Del(ctx, fmt.Sprintf(KeyLikeCount, id))
	_, err = pipe.Exec(ctx)
	return
}

func (c *articleCache) GetLikeCount(ctx context.Context, articleID int64) (int64, error) {
	res, err := c.client.Get(ctx, fmt.Sprintf(KeyLikeCount, articleID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrCacheMiss
	}
	return res, err
}

func (c *articleCache) SetLikeCount(ctx context.Context, articleID int64, likes int64) error {
	return c.client.Set(ctx, fmt.Sprintf(KeyLikeCount, articleID), likes, likeCountTTL).Err()
}

// AddLikeRecord adds the article to the user's cached like set.
// KEYS = {user's liked set, like count}
// ARGV = {article id, set ttl}
// Returns ErrCacheMiss when the set is not cached so the caller can
// warm it from the database first.
func (c *articleCache) AddLikeRecord(ctx context.Context, likeRecord domain.UserLike) (bool, error) {
	keys := []string{
		fmt.Sprintf(KeyUserLikedArticles, likeRecord.UserID),
		fmt.Sprintf(KeyLikeCount, likeRecord.ArticleID),
	}
	args := []any{likeRecord.ArticleID, likedSetTTLSecs}
	var script = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return -1 -- not cached, load from DB first
		end

		if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 1 then
			return 0 -- already a member
		else
			redis.call('SADD', KEYS[1], ARGV[1])
			redis.call('EXPIRE', KEYS[1], ARGV[2])

			if redis.call('EXISTS', KEYS[2]) == 1 then
				redis.call('INCR', KEYS[2])
			end

			return 1 -- added
		end
	`)

	res, err := script.Run(ctx, c.client, keys, args).Int()
	if err != nil {
		return false, err
	}
	switch res {
	case -1:
		return false, domain.ErrCacheMiss
	case 0:
		return false, nil
	default:
		return true, nil
	}
}

// RemoveLikeRecord is the inverse of AddLikeRecord.
func (c *articleCache) RemoveLikeRecord(ctx context.Context, likeRecord domain.UserLike) (bool, error) {
	keys := []string{
		fmt.Sprintf(KeyUserLikedArticles, likeRecord.UserID),
		fmt.Sprintf(KeyLikeCount, likeRecord.ArticleID),
	}
	args := []any{likeRecord.ArticleID, likedSetTTLSecs}
	var script = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return -1 -- not cached, load from DB first
		end

		if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 0 then
			return 0 -- not a member
		else
			redis.call('SREM', KEYS[1], ARGV[1])
			redis.call('EXPIRE', KEYS[1], ARGV[2])

			if redis.call('EXISTS', KEYS[2]) == 1 then
				redis.call('DECR', KEYS[2])
			end

			return 1 -- removed
		end
	`)

	res, err := script.Run(ctx, c.client, keys, args).Int()
	if err != nil {
		return false, err
	}
	switch res {
	case -1:
		return false, domain.ErrCacheMiss
	case 0:
		return false, nil
	default:
		return true, nil
	}
}

func (c *articleCache) IsLiked(ctx context.Context, likeRecord domain.UserLike) (bool, error) {
	keys := []string{fmt.Sprintf(KeyUserLikedArticles, likeRecord.UserID)}
	args := []any{likeRecord.ArticleID}
	var script = redis.NewScript(`
		if redis.call('EXISTS', KEYS[1]) == 0 then
			return -1
		end
		return redis.call('SISMEMBER', KEYS[1], ARGV[1])
	`)

	res, err := script.Run(ctx, c.client, keys, args).Int()
	if err != nil {
		return false, err
	}
	if res == -1 {
		return false, domain.ErrCacheMiss
	}
	return res == 1, nil
}

func (c *articleCache) SetUserLikedArticles(ctx context.Context, userID int64, articleIDs []int64) error {
	key := fmt.Sprintf(KeyUserLikedArticles, userID)

	// member 0 keeps the key alive for users with an empty like set
	members := make([]any, 0, len(articleIDs)+1)
	members = append(members, 0)
	for _, id := range articleIDs {
		members = append(members, id)
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, likedSetTTLSecs*time.Second)
	_, err := pipe.Exec(ctx)
	return err
}
