package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/community-comments/domain"
	"github.com/Guyuepp/community-comments/domain/mocks"
	"github.com/Guyuepp/community-comments/internal/repository"
)

func TestArticleGetByID(t *testing.T) {
	art := domain.Article{ID: 1, Title: "hello", Published: true}

	t.Run("cache hit", func(t *testing.T) {
		db, cache := new(mocks.ArticleRepository), new(mocks.ArticleCache)
		cache.On("GetArticle", mock.Anything, int64(1)).Return(art, false, nil).Once()

		got, err := repository.NewArticleRepository(db, cache).GetByID(context.TODO(), 1)
		require.NoError(t, err)
		assert.Equal(t, art, got)
		db.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		cache.AssertExpectations(t)
	})

	t.Run("miss loads and fills the cache", func(t *testing.T) {
		db, cache := new(mocks.ArticleRepository), new(mocks.ArticleCache)
		cache.On("GetArticle", mock.Anything, int64(1)).Return(domain.Article{}, false, domain.ErrCacheMiss).Once()
		db.On("GetByID", mock.Anything, int64(1)).Return(art, nil).Once()
		cache.On("SetArticle", mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.ID == 1
		}), mock.AnythingOfType("time.Duration")).Return(nil).Once()

		got, err := repository.NewArticleRepository(db, cache).GetByID(context.TODO(), 1)
		require.NoError(t, err)
		assert.Equal(t, art, got)
		db.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache failure still reads the store", func(t *testing.T) {
		db, cache := new(mocks.ArticleRepository), new(mocks.ArticleCache)
		cache.On("GetArticle", mock.Anything, int64(1)).Return(domain.Article{}, false, errors.New("redis down")).Once()
		db.On("GetByID", mock.Anything, int64(1)).Return(art, nil).Once()
		cache.On("SetArticle", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		got, err := repository.NewArticleRepository(db, cache).GetByID(context.TODO(), 1)
		require.NoError(t, err)
		assert.Equal(t, art.ID, got.ID)
	})

	t.Run("missing article is not cached", func(t *testing.T) {
		db, cache := new(mocks.ArticleRepository), new(mocks.ArticleCache)
		cache.On("GetArticle", mock.Anything, int64(2)).Return(domain.Article{}, false, domain.ErrCacheMiss).Once()
		db.On("GetByID", mock.Anything, int64(2)).Return(domain.Article{}, domain.ErrNotFound).Once()

		_, err := repository.NewArticleRepository(db, cache).GetByID(context.TODO(), 2)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		cache.AssertNotCalled(t, "SetArticle", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stale entry is served while it is rebuilt", func(t *testing.T) {
		stale := domain.Article{ID: 1, Title: "old", Published: true}
		fresh := domain.Article{ID: 1, Title: "new"}
		db, cache := new(mocks.ArticleRepository), new(mocks.ArticleCache)
		cache.On("GetArticle", mock.Anything, int64(1)).Return(stale, true, nil).Once()
		db.On("GetByID", mock.Anything, int64(1)).Return(fresh, nil).Once()

		rebuilt := make(chan struct{})
		cache.On("SetArticle", mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.Title == "new"
		}), mock.Anything).Run(func(mock.Arguments) { close(rebuilt) }).Return(nil).Once()

		got, err := repository.NewArticleRepository(db, cache).GetByID(context.TODO(), 1)
		require.NoError(t, err)
		assert.Equal(t, "old", got.Title)

		select {
		case <-rebuilt:
		case <-time.After(time.Second):
			t.Fatal("cache was not rebuilt")
		}
		db.AssertExpectations(t)
	})

	t.Run("rebuild of a deleted article drops the entry", func(t *testing.T) {
		db, cache := new(mocks.ArticleRepository), new(mocks.ArticleCache)
		cache.On("GetArticle", mock.Anything, int64(3)).Return(domain.Article{ID: 3}, true, nil).Once()
		db.On("GetByID", mock.Anything, int64(3)).Return(domain.Article{}, domain.ErrNotFound).Once()

		dropped := make(chan struct{})
		cache.On("DeleteArticle", mock.Anything, int64(3)).Run(func(mock.Arguments) { close(dropped) }).Return(nil).Once()

		_, err := repository.NewArticleRepository(db, cache).GetByID(context.TODO(), 3)
		require.NoError(t, err)

		select {
		case <-dropped:
		case <-time.After(time.Second):
			t.Fatal("stale entry was not dropped")
		}
	})
}

func TestArticleUpdateInvalidatesCache(t *testing.T) {
	a := &domain.Article{ID: 5, Title: "t", Published: false}

	t.Run("success", func(t *testing.T) {
		db, cache := new(mocks.ArticleRepository), new(mocks.ArticleCache)
		db.On("Update", mock.Anything, a).Return(nil).Once()
		cache.On("DeleteArticle", mock.Anything, int64(5)).Return(nil).Once()

		require.NoError(t, repository.NewArticleRepository(db, cache).Update(context.TODO(), a))
		db.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("unpublish is visible on the next read", func(t *testing.T) {
		db, cache := new(mocks.ArticleRepository), new(mocks.ArticleCache)
		db.On("Update", mock.Anything, a).Return(nil).Once()
		cache.On("DeleteArticle", mock.Anything, int64(5)).Return(nil).Once()
		cache.On("GetArticle", mock.Anything, int64(5)).Return(domain.Article{}, false, domain.ErrCacheMiss).Once()
		db.On("GetByID", mock.Anything, int64(5)).Return(*a, nil).Once()
		cache.On("SetArticle", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		repo := repository.NewArticleRepository(db, cache)
		require.NoError(t, repo.Update(context.TODO(), a))
		got, err := repo.GetByID(context.TODO(), 5)
		require.NoError(t, err)
		assert.False(t, got.Published)
		cache.AssertExpectations(t)
	})

	t.Run("store failure keeps the cache", func(t *testing.T) {
		db, cache := new(mocks.ArticleRepository), new(mocks.ArticleCache)
		db.On("Update", mock.Anything, a).Return(domain.ErrNotFound).Once()

		err := repository.NewArticleRepository(db, cache).Update(context.TODO(), a)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		cache.AssertNotCalled(t, "DeleteArticle", mock.Anything, mock.Anything)
	})

	t.Run("cache failure does not fail the update", func(t *testing.T) {
		db, cache := new(mocks.ArticleRepository), new(mocks.ArticleCache)
		db.On("Update", mock.Anything, a).Return(nil).Once()
		cache.On("DeleteArticle", mock.Anything, int64(5)).Return(errors.New("redis down")).Once()

		require.NoError(t, repository.NewArticleRepository(db, cache).Update(context.TODO(), a))
	})
}

func TestArticleDeleteInvalidatesCache(t *testing.T) {
	db, cache := new(mocks.ArticleRepository), new(mocks.ArticleCache)
	db.On("Delete", mock.Anything, int64(5)).Return(nil).Once()
	cache.On("DeleteArticle", mock.Anything, int64(5)).Return(nil).Once()

	require.NoError(t, repository.NewArticleRepository(db, cache).Delete(context.TODO(), 5))
	db.AssertExpectations(t)
	cache.AssertExpectations(t)
}
