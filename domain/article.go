package domain

import (
	"context"
	"time"
)

// Article is representing the Article data struct
type Article struct {
	ID         int64     // Unique identifier for the article
	Title      string    // Article title
	Content    string    // Article body content
	AuthorID   string    // Owning user
	CategoryID *int64    // Optional category
	Published  bool      // Only published articles are public and commentable
	CreatedAt  time.Time // Creation timestamp
	UpdatedAt  time.Time // Last update timestamp
}

// Ref returns the short reference embedded in moderation listings.
func (a Article) Ref() ArticleRef {
	return ArticleRef{ID: a.ID, Title: a.Title}
}

// ArticleRef identifies an article in listings.
type ArticleRef struct {
	ID    int64
	Title string
}

// ArticlePatch carries the optional fields of an article update.
type ArticlePatch struct {
	Title      *string
	Content    *string
	CategoryID *int64
	Published  *bool
}

// ArticleDBRepository defines the contract for article rows in the relational store.
type ArticleDBRepository interface {
	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)

	// GetByIDs retrieves articles by given IDs, missing ones are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]Article, error)

	// Store creates a new article and backfills ID and timestamps.
	Store(ctx context.Context, a *Article) error

	// Update writes all mutable fields of an existing article.
	// Returns ErrNotFound if the article doesn't exist.
	Update(ctx context.Context, a *Article) error

	// Delete removes an article by its ID; its comments go with it.
	// Returns ErrNotFound if not exists
	Delete(ctx context.Context, id int64) error

	// FetchIDs pages through article ids greater than cursor.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// ArticleRepository is the cache-aware article store used by usecases.
type ArticleRepository interface {
	ArticleDBRepository
}

// ArticleCache keeps hot articles in redis with logical expiry.
type ArticleCache interface {
	// GetArticle returns the cached article and whether it is logically expired.
	// Returns ErrCacheMiss when the key is absent.
	GetArticle(ctx context.Context, id int64) (Article, bool, error)
	SetArticle(ctx context.Context, a *Article, ttl time.Duration) error
	DeleteArticle(ctx context.Context, id int64) error
}

// ArticleUsecase is the thin content CRUD the comment engine hangs off.
type ArticleUsecase interface {
	// Fetch pages articles by id after cursor. Drafts are only listed for
	// administrators. The returned cursor is 0 when there is nothing more.
	Fetch(ctx context.Context, caller *Caller, cursor int64, num int64) ([]Article, int64, error)
	GetByID(ctx context.Context, caller *Caller, id int64) (Article, error)
	Store(ctx context.Context, caller *Caller, a *Article) error
	Update(ctx context.Context, caller *Caller, id int64, p ArticlePatch) (Article, error)
	Delete(ctx context.Context, caller *Caller, id int64) error
	InitBloomFilter(ctx context.Context) error
}

// BloomRepository answers "can this article id exist" before the store is hit.
// A false answer is definitive, a true answer needs confirming.
type BloomRepository interface {
	Add(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	BulkAdd(ctx context.Context, ids []int64) error
}
