package redis_test

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	myredis "github.com/Guyuepp/community-comments/internal/repository/redis"
)

const bitSize = 1 << 20

func TestBloomAdd(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := myredis.NewRedisBloomRepo(client, bitSize)

	for _, offset := range repo.Offsets(42) {
		mock.ExpectSetBit(myredis.KeyArticleBloom, int64(offset), 1).SetVal(0)
	}

	require.NoError(t, repo.Add(context.TODO(), 42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloomExists(t *testing.T) {
	t.Run("all bits set", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := myredis.NewRedisBloomRepo(client, bitSize)

		for _, offset := range repo.Offsets(7) {
			mock.ExpectGetBit(myredis.KeyArticleBloom, int64(offset)).SetVal(1)
		}

		ok, err := repo.Exists(context.TODO(), 7)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("one bit missing", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := myredis.NewRedisBloomRepo(client, bitSize)

		offsets := repo.Offsets(7)
		mock.ExpectGetBit(myredis.KeyArticleBloom, int64(offsets[0])).SetVal(1)
		mock.ExpectGetBit(myredis.KeyArticleBloom, int64(offsets[1])).SetVal(0)
		mock.ExpectGetBit(myredis.KeyArticleBloom, int64(offsets[2])).SetVal(1)

		ok, err := repo.Exists(context.TODO(), 7)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestBloomOffsetsAreStable(t *testing.T) {
	client, _ := redismock.NewClientMock()
	repo := myredis.NewRedisBloomRepo(client, bitSize)

	first := repo.Offsets(99)
	assert.Equal(t, first, repo.Offsets(99))
	for _, o := range first {
		assert.Less(t, o, uint64(bitSize))
	}
}

func TestBloomBulkAddEmpty(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := myredis.NewRedisBloomRepo(client, bitSize)

	require.NoError(t, repo.BulkAdd(context.TODO(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
