package redis_test

import (
	"context"
	"fmt"
	"hash/crc32"
	"hash/fnv"
	"testing"

	redismock "github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/lawaware/backend/internal/repository/redis"
)

const bloomBits = 1 << 20

// bitOffsets mirrors the filter's three hash positions.
func bitOffsets(id int64) []int64 {
	data := []byte(fmt.Sprintf("%d", id))

	first := uint64(crc32.ChecksumIEEE(data)) % bloomBits
	h := fnv.New64()
	h.Write(data)
	second := h.Sum64() % bloomBits
	third := (first + second + 0xABC) % bloomBits

	return []int64{int64(first), int64(second), int64(third)}
}

func TestBloomAdd(t *testing.T) {
	client, mock := redismock.NewClientMock()
	for _, offset := range bitOffsets(12) {
		mock.ExpectSetBit(cache.KeyArticleBloom, offset, 1).SetVal(0)
	}

	repo := cache.NewRedisBloomRepo(client, bloomBits)
	require.NoError(t, repo.Add(context.Background(), 12))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomExists(t *testing.T) {
	t.Run("all-bits-set", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		for _, offset := range bitOffsets(12) {
			mock.ExpectGetBit(cache.KeyArticleBloom, offset).SetVal(1)
		}

		repo := cache.NewRedisBloomRepo(client, bloomBits)
		exists, err := repo.Exists(context.Background(), 12)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("one-bit-clear", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		offsets := bitOffsets(12)
		mock.ExpectGetBit(cache.KeyArticleBloom, offsets[0]).SetVal(1)
		mock.ExpectGetBit(cache.KeyArticleBloom, offsets[1]).SetVal(0)
		mock.ExpectGetBit(cache.KeyArticleBloom, offsets[2]).SetVal(1)

		repo := cache.NewRedisBloomRepo(client, bloomBits)
		exists, err := repo.Exists(context.Background(), 12)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestBloomBulkAdd(t *testing.T) {
	client, mock := redismock.NewClientMock()
	for _, id := range []int64{1, 2, 3} {
		for _, offset := range bitOffsets(id) {
			mock.ExpectSetBit(cache.KeyArticleBloom, offset, 1).SetVal(0)
		}
	}

	repo := cache.NewRedisBloomRepo(client, bloomBits)
	require.NoError(t, repo.BulkAdd(context.Background(), []int64{1, 2, 3}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomBulkAddEmpty(t *testing.T) {
	client, mock := redismock.NewClientMock()

	repo := cache.NewRedisBloomRepo(client, bloomBits)
	require.NoError(t, repo.BulkAdd(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
