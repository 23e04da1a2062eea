package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/community-comments/domain"
	"github.com/Guyuepp/community-comments/internal/repository/cache"
)

const (
	KeyArticle = "article:%d"

	// physical TTL is a multiple of the logical one so stale entries stay servable
	physicalTTLFactor = 3
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

func (c *articleCache) GetArticle(ctx context.Context, id int64) (domain.Article, bool, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyArticle, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Article{}, false, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Article{}, false, err
	}

	var entry cache.Entry[domain.Article]
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.Article{}, false, err
	}
	return entry.Data, entry.Expired(), nil
}

func (c *articleCache) SetArticle(ctx context.Context, a *domain.Article, ttl time.Duration) error {
	data, err := json.Marshal(cache.NewEntry(*a, ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyArticle, a.ID), data, ttl*physicalTTLFactor).Err()
}

func (c *articleCache) DeleteArticle(ctx context.Context, id int64) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyArticle, id)).Err()
}
