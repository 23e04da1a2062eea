package domain

import (
	"context"
	"time"
)

// CommentLike is representing a like record, one per (user, comment)
type CommentLike struct {
	UserID    string
	CommentID int64
	CreatedAt time.Time
}

// CommentLikeRepository persists likes. Like counts are always derived
// from these rows, nothing is cached.
type CommentLikeRepository interface {
	// Insert returns ErrConflict when the (user, comment) pair already exists.
	Insert(ctx context.Context, l *CommentLike) error

	// Delete reports whether a row was removed.
	Delete(ctx context.Context, userID string, commentID int64) (bool, error)

	Exists(ctx context.Context, userID string, commentID int64) (bool, error)

	// FetchLikers maps each comment id to the ids of users liking it.
	FetchLikers(ctx context.Context, commentIDs []int64) (map[int64][]string, error)
}
