package redis

import (
	"context"
	"fmt"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/community-comments/domain"
)

const (
	KeyArticleBloom = "bloom:article:ids"
	bloomHashes     = 3
)

type redisBloomRepo struct {
	client  *redis.Client
	bitSize uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:  client,
		bitSize: bitSize,
	}
}

func (r *redisBloomRepo) Add(ctx context.Context, id int64) error {
	return r.BulkAdd(ctx, []int64{id})
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.offsets(id) {
			pipe.SetBit(ctx, KeyArticleBloom, int64(offset), 1)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisBloomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	pipe := r.client.Pipeline()
	cmds := make([]*redis.IntCmd, 0, bloomHashes)
	for _, offset := range r.offsets(id) {
		cmds = append(cmds, pipe.GetBit(ctx, KeyArticleBloom, int64(offset)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

// offsets derives the k bit positions of an id: crc32, fnv64 and a mix of both.
func (r *redisBloomRepo) offsets(id int64) [bloomHashes]uint64 {
	data := fmt.Appendf(nil, "%d", id)

	h := fnv.New64()
	h.Write(data)

	var res [bloomHashes]uint64
	res[0] = uint64(crc32.ChecksumIEEE(data)) % r.bitSize
	res[1] = h.Sum64() % r.bitSize
	res[2] = (res[0] + res[1] + 0xABC) % r.bitSize
	return res
}

// Offsets exposes the bit positions for tests.
func (r *redisBloomRepo) Offsets(id int64) []uint64 {
	o := r.offsets(id)
	return o[:]
}
