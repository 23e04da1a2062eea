package request

import "github.com/Guyuepp/community-comments/domain"

// Comment is the body of POST /comments
type Comment struct {
	Content   string `json:"content"`
	ArticleID int64  `json:"articleId"`
	ParentID  *int64 `json:"parentId"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.NewComment {
	return domain.NewComment{
		Content:   r.Content,
		ArticleID: r.ArticleID,
		ParentID:  r.ParentID,
	}
}

// CommentPatch is the body of PUT /comments/:id, absent fields stay untouched
type CommentPatch struct {
	Content    *string `json:"content"`
	IsApproved *bool   `json:"isApproved"`
}

func (r *CommentPatch) ToDomain() domain.CommentPatch {
	return domain.CommentPatch{
		Content:    r.Content,
		IsApproved: r.IsApproved,
	}
}
