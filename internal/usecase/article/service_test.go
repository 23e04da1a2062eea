package article_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/community-comments/domain"
	"github.com/Guyuepp/community-comments/domain/mocks"
	"github.com/Guyuepp/community-comments/internal/usecase/article"
)

var admin = &domain.Caller{UserID: "admin", IsAdmin: true}

func TestGetByID(t *testing.T) {
	published := domain.Article{ID: 1, Title: faker.Sentence(), Published: true}
	draft := domain.Article{ID: 2, Title: faker.Sentence()}

	t.Run("published", func(t *testing.T) {
		repo, bloom := new(mocks.ArticleRepository), new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, int64(1)).Return(true, nil).Once()
		repo.On("GetByID", mock.Anything, int64(1)).Return(published, nil).Once()

		got, err := article.NewService(repo, bloom).GetByID(context.TODO(), nil, 1)
		require.NoError(t, err)
		assert.Equal(t, published, got)
		repo.AssertExpectations(t)
		bloom.AssertExpectations(t)
	})

	t.Run("draft is hidden from members", func(t *testing.T) {
		repo, bloom := new(mocks.ArticleRepository), new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, int64(2)).Return(true, nil)
		repo.On("GetByID", mock.Anything, int64(2)).Return(draft, nil)
		svc := article.NewService(repo, bloom)

		_, err := svc.GetByID(context.TODO(), &domain.Caller{UserID: "u"}, 2)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		got, err := svc.GetByID(context.TODO(), admin, 2)
		require.NoError(t, err)
		assert.Equal(t, draft.ID, got.ID)
	})

	t.Run("bloom filter says no", func(t *testing.T) {
		repo, bloom := new(mocks.ArticleRepository), new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, int64(3)).Return(false, nil).Once()

		_, err := article.NewService(repo, bloom).GetByID(context.TODO(), nil, 3)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("bloom filter unavailable", func(t *testing.T) {
		repo, bloom := new(mocks.ArticleRepository), new(mocks.BloomRepository)
		bloom.On("Exists", mock.Anything, int64(1)).Return(false, errors.New("conn refused")).Once()
		repo.On("GetByID", mock.Anything, int64(1)).Return(published, nil).Once()

		_, err := article.NewService(repo, bloom).GetByID(context.TODO(), nil, 1)
		require.NoError(t, err)
	})
}

func TestFetch(t *testing.T) {
	articles := []domain.Article{
		{ID: 1, Title: "one", Published: true},
		{ID: 2, Title: "draft"},
		{ID: 3, Title: "three", Published: true},
	}

	t.Run("drafts are skipped for members", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		repo.On("FetchIDs", mock.Anything, int64(0), int64(2)).Return([]int64{1, 2}, nil).Once()
		repo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return(articles[:2], nil).Once()
		repo.On("FetchIDs", mock.Anything, int64(2), int64(2)).Return([]int64{3}, nil).Once()
		repo.On("GetByIDs", mock.Anything, []int64{3}).Return(articles[2:], nil).Once()

		got, next, err := article.NewService(repo, new(mocks.BloomRepository)).
			Fetch(context.TODO(), &domain.Caller{UserID: "u"}, 0, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
		assert.Equal(t, int64(3), next)
		repo.AssertExpectations(t)
	})

	t.Run("admins see drafts", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		repo.On("FetchIDs", mock.Anything, int64(0), int64(10)).Return([]int64{1, 2, 3}, nil).Once()
		// GetByIDs 返回顺序不保证，按 id 顺序输出
		repo.On("GetByIDs", mock.Anything, []int64{1, 2, 3}).
			Return([]domain.Article{articles[2], articles[0], articles[1]}, nil).Once()

		got, next, err := article.NewService(repo, new(mocks.BloomRepository)).Fetch(context.TODO(), admin, 0, 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []int64{1, 2, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})
		assert.Zero(t, next)
	})

	t.Run("num out of range falls back to default", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		repo.On("FetchIDs", mock.Anything, int64(5), int64(article.DefaultPageNum)).Return([]int64{}, nil).Once()

		got, next, err := article.NewService(repo, new(mocks.BloomRepository)).Fetch(context.TODO(), nil, 5, 1000)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Zero(t, next)
		repo.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		repo.On("FetchIDs", mock.Anything, int64(0), int64(10)).Return(nil, errors.New("db down")).Once()

		_, _, err := article.NewService(repo, new(mocks.BloomRepository)).Fetch(context.TODO(), nil, 0, 10)
		assert.Error(t, err)
	})
}

func TestStore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, bloom := new(mocks.ArticleRepository), new(mocks.BloomRepository)
		repo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Article")).
			Run(func(args mock.Arguments) { args.Get(1).(*domain.Article).ID = 10 }).
			Return(nil).Once()
		bloom.On("Add", mock.Anything, int64(10)).Return(nil).Once()

		a := &domain.Article{Title: "  Release notes ", Content: faker.Paragraph()}
		require.NoError(t, article.NewService(repo, bloom).Store(context.TODO(), admin, a))
		assert.Equal(t, "Release notes", a.Title)
		assert.Equal(t, admin.UserID, a.AuthorID)
		assert.False(t, a.CreatedAt.IsZero())
		repo.AssertExpectations(t)
		bloom.AssertExpectations(t)
	})

	t.Run("bloom failure does not fail the store", func(t *testing.T) {
		repo, bloom := new(mocks.ArticleRepository), new(mocks.BloomRepository)
		repo.On("Store", mock.Anything, mock.Anything).Return(nil).Once()
		bloom.On("Add", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		require.NoError(t, article.NewService(repo, bloom).Store(context.TODO(), admin, &domain.Article{Title: "t"}))
	})

	t.Run("permissions", func(t *testing.T) {
		svc := article.NewService(new(mocks.ArticleRepository), new(mocks.BloomRepository))
		assert.ErrorIs(t, svc.Store(context.TODO(), nil, &domain.Article{Title: "t"}), domain.ErrUnauthenticated)
		assert.ErrorIs(t, svc.Store(context.TODO(), &domain.Caller{UserID: "u"}, &domain.Article{Title: "t"}), domain.ErrForbidden)
	})

	t.Run("empty title", func(t *testing.T) {
		svc := article.NewService(new(mocks.ArticleRepository), new(mocks.BloomRepository))
		assert.ErrorIs(t, svc.Store(context.TODO(), admin, &domain.Article{Title: " "}), domain.ErrBadParamInput)
	})
}

func TestUpdate(t *testing.T) {
	stored := domain.Article{ID: 1, Title: "draft", Content: "body"}

	t.Run("publish", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		repo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.Published && a.Title == "draft" && a.Content == "body"
		})).Return(nil).Once()

		published := true
		got, err := article.NewService(repo, new(mocks.BloomRepository)).
			Update(context.TODO(), admin, 1, domain.ArticlePatch{Published: &published})
		require.NoError(t, err)
		assert.True(t, got.Published)
		repo.AssertExpectations(t)
	})

	t.Run("member", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		_, err := article.NewService(repo, new(mocks.BloomRepository)).
			Update(context.TODO(), &domain.Caller{UserID: "u"}, 1, domain.ArticlePatch{})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(mocks.ArticleRepository)
		repo.On("GetByID", mock.Anything, int64(5)).Return(domain.Article{}, domain.ErrNotFound).Once()
		_, err := article.NewService(repo, new(mocks.BloomRepository)).
			Update(context.TODO(), admin, 5, domain.ArticlePatch{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	repo := new(mocks.ArticleRepository)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
	svc := article.NewService(repo, new(mocks.BloomRepository))

	require.NoError(t, svc.Delete(context.TODO(), admin, 1))
	assert.ErrorIs(t, svc.Delete(context.TODO(), nil, 1), domain.ErrUnauthenticated)
	repo.AssertExpectations(t)
}

func TestInitBloomFilter(t *testing.T) {
	repo, bloom := new(mocks.ArticleRepository), new(mocks.BloomRepository)

	first := make([]int64, 1000)
	for i := range first {
		first[i] = int64(i + 1)
	}
	repo.On("FetchIDs", mock.Anything, int64(0), int64(1000)).Return(first, nil).Once()
	repo.On("FetchIDs", mock.Anything, int64(1000), int64(1000)).Return([]int64{1001, 1002}, nil).Once()
	bloom.On("BulkAdd", mock.Anything, first).Return(nil).Once()
	bloom.On("BulkAdd", mock.Anything, []int64{1001, 1002}).Return(nil).Once()

	require.NoError(t, article.NewService(repo, bloom).InitBloomFilter(context.TODO()))
	repo.AssertExpectations(t)
	bloom.AssertExpectations(t)
}
