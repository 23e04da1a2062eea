package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/community-comments/domain"
)

const articleCacheTTL = 10 * time.Minute

// articleRepository 协调层，协调缓存和数据库
type articleRepository struct {
	db            domain.ArticleDBRepository
	cache         domain.ArticleCache
	rebuildGroup  singleflight.Group
	mu            sync.Mutex
	rebuildingMap map[int64]bool // 正在重建的文章ID
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository 创建协调层repository
func NewArticleRepository(db domain.ArticleDBRepository, cache domain.ArticleCache) *articleRepository {
	return &articleRepository{
		db:            db,
		cache:         cache,
		rebuildingMap: make(map[int64]bool),
	}
}

// GetByID serves from cache with logical expiry. A stale entry is returned
// as is while one goroutine refreshes it; a miss loads through singleflight.
func (r *articleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	article, expired, err := r.cache.GetArticle(ctx, id)
	if err == nil {
		if expired {
			go r.rebuildArticleCache(context.Background(), id)
		}
		return article, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("article cache get error: %v", err)
	}

	result, err, _ := r.rebuildGroup.Do(articleKey(id), func() (any, error) {
		art, err := r.db.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := r.cache.SetArticle(ctx, &art, articleCacheTTL); err != nil {
			logrus.Warnf("failed to set article cache: %v", err)
		}
		return art, nil
	})
	if err != nil {
		return domain.Article{}, err
	}
	return result.(domain.Article), nil
}

func (r *articleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	return r.db.GetByIDs(ctx, ids)
}

func (r *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	return r.db.Store(ctx, a)
}

// Update drops the cached copy before returning so a publish flag change
// is visible to the next comment creation.
func (r *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	if err := r.db.Update(ctx, a); err != nil {
		return err
	}
	if err := r.cache.DeleteArticle(ctx, a.ID); err != nil {
		logrus.Errorf("failed to delete article %d from cache: %v", a.ID, err)
	}
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.cache.DeleteArticle(ctx, id); err != nil {
		logrus.Errorf("failed to delete article %d from cache: %v", id, err)
	}
	return nil
}

func (r *articleRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

// rebuildArticleCache 异步重建文章缓存
func (r *articleRepository) rebuildArticleCache(ctx context.Context, id int64) {
	r.mu.Lock()
	if r.rebuildingMap[id] {
		r.mu.Unlock()
		return
	}
	r.rebuildingMap[id] = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.rebuildingMap, id)
		r.mu.Unlock()
	}()

	_, err, _ := r.rebuildGroup.Do("rebuild:"+articleKey(id), func() (any, error) {
		article, err := r.db.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				_ = r.cache.DeleteArticle(ctx, id)
			}
			return nil, err
		}
		return nil, r.cache.SetArticle(ctx, &article, articleCacheTTL)
	})
	if err != nil {
		logrus.Errorf("rebuildArticleCache failed for id %d: %v", id, err)
	}
}

func articleKey(id int64) string {
	return "article:" + strconv.FormatInt(id, 10)
}
