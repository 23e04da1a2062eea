package domain

import (
	"context"
	"time"
)

// AuthorSummary is the public part of a comment author.
type AuthorSummary struct {
	ID      string
	Name    string
	Avatar  string
	IsAdmin bool
}

// Comment is either a top-level comment (ParentID == nil) or a reply.
// Author, LikedBy, LikeCount, ReplyCount and LikedByCaller are derived
// when the comment is read; they are never stored.
type Comment struct {
	ID         int64
	ArticleID  int64
	AuthorID   string
	ParentID   *int64
	Content    string
	IsApproved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Author        AuthorSummary
	LikedBy       []string
	LikeCount     int64
	ReplyCount    int64
	LikedByCaller bool
}

// IsReply reports whether the comment hangs under another comment.
func (c Comment) IsReply() bool {
	return c.ParentID != nil
}

// CanMutate reports whether the caller may edit or delete the comment.
func (c Comment) CanMutate(caller *Caller) bool {
	if caller == nil {
		return false
	}
	return caller.IsAdmin || caller.UserID == c.AuthorID
}

// Thread is a top-level comment with its replies.
// Replies are plain comments: nesting stops at two levels.
type Thread struct {
	Comment
	Replies []Comment
	// Article is only filled by the moderation listing
	Article *ArticleRef
}

// NewComment is the input of comment creation.
type NewComment struct {
	Content   string
	ArticleID int64
	ParentID  *int64
}

// CommentPatch carries the optional fields of a comment edit.
type CommentPatch struct {
	Content    *string
	IsApproved *bool
}

// CommentUsecase is the comment engine.
type CommentUsecase interface {
	Create(ctx context.Context, caller *Caller, in NewComment) (Comment, error)
	GetByID(ctx context.Context, caller *Caller, id int64) (Thread, error)
	FetchByArticle(ctx context.Context, caller *Caller, articleID int64, approvedOnly bool) ([]Thread, error)
	Update(ctx context.Context, caller *Caller, id int64, p CommentPatch) (Comment, error)
	Delete(ctx context.Context, caller *Caller, id int64) error
	ToggleLike(ctx context.Context, caller *Caller, id int64) (bool, error)
	IsLiked(ctx context.Context, caller *Caller, id int64) (bool, error)
	FetchForModeration(ctx context.Context, caller *Caller) ([]Thread, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// Store inserts the comment and backfills ID and timestamps.
	Store(ctx context.Context, c *Comment) error

	// GetByID returns ErrNotFound if the comment doesn't exist.
	GetByID(ctx context.Context, id int64) (Comment, error)

	// Update writes Content and IsApproved of an existing comment.
	Update(ctx context.Context, c *Comment) error

	// Delete removes the comment, its replies and every like on them.
	// Returns ErrNotFound if the comment doesn't exist.
	Delete(ctx context.Context, id int64) error

	// FetchRoots returns the top-level comments of an article, newest first.
	FetchRoots(ctx context.Context, articleID int64, approvedOnly bool) ([]Comment, error)

	// FetchReplies returns the replies of the given comments, oldest first.
	FetchReplies(ctx context.Context, parentIDs []int64, approvedOnly bool) ([]Comment, error)

	// FetchAll returns every comment, newest first.
	FetchAll(ctx context.Context) ([]Comment, error)

	// CountReplies counts direct replies regardless of approval.
	CountReplies(ctx context.Context, parentIDs []int64) (map[int64]int64, error)
}
