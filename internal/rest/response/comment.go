package response

import "github.com/Guyuepp/community-comments/domain"

type Like struct {
	UserID string `json:"userId"`
}

// Comment is a single comment or reply. Replies never carry a replies field.
type Comment struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	ArticleID  int64  `json:"articleId"`
	AuthorID   string `json:"authorId"`
	ParentID   *int64 `json:"parentId"`
	IsApproved bool   `json:"isApproved"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`

	Author     Author `json:"author"`
	Likes      []Like `json:"likes"`
	LikeCount  int64  `json:"likeCount"`
	ReplyCount int64  `json:"replyCount"`
	LikedByMe  bool   `json:"likedByMe"`
}

// Thread 顶层评论及其回复
type Thread struct {
	Comment
	Replies []Comment   `json:"replies"`
	Article *ArticleRef `json:"article,omitempty"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	likes := make([]Like, len(c.LikedBy))
	for i, uid := range c.LikedBy {
		likes[i] = Like{UserID: uid}
	}
	return Comment{
		ID:         c.ID,
		Content:    c.Content,
		ArticleID:  c.ArticleID,
		AuthorID:   c.AuthorID,
		ParentID:   c.ParentID,
		IsApproved: c.IsApproved,
		CreatedAt:  c.CreatedAt.UTC().Format(DateTimeFormat),
		UpdatedAt:  c.UpdatedAt.UTC().Format(DateTimeFormat),
		Author:     NewAuthorFromDomain(c.Author),
		Likes:      likes,
		LikeCount:  c.LikeCount,
		ReplyCount: c.ReplyCount,
		LikedByMe:  c.LikedByCaller,
	}
}

func NewThreadFromDomain(t *domain.Thread) Thread {
	replies := make([]Comment, len(t.Replies))
	for i := range t.Replies {
		replies[i] = NewCommentFromDomain(&t.Replies[i])
	}
	res := Thread{
		Comment: NewCommentFromDomain(&t.Comment),
		Replies: replies,
	}
	if t.Article != nil {
		res.Article = &ArticleRef{ID: t.Article.ID, Title: t.Article.Title}
	}
	return res
}

func NewThreadsFromDomain(list []domain.Thread) []Thread {
	res := make([]Thread, len(list))
	for i := range list {
		res[i] = NewThreadFromDomain(&list[i])
	}
	return res
}
