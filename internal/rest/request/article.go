package request

import "github.com/Guyuepp/community-comments/domain"

type Article struct {
	Title      string `json:"title" binding:"required,max=255"`
	Content    string `json:"content"`
	CategoryID *int64 `json:"categoryId" binding:"omitempty,gt=0"`
	Published  bool   `json:"published"`
}

// ToDomain: Request -> Domain
func (r *Article) ToDomain() domain.Article {
	return domain.Article{
		Title:      r.Title,
		Content:    r.Content,
		CategoryID: r.CategoryID,
		Published:  r.Published,
	}
}

type ArticlePatch struct {
	Title      *string `json:"title" binding:"omitempty,max=255"`
	Content    *string `json:"content"`
	CategoryID *int64  `json:"categoryId" binding:"omitempty,gt=0"`
	Published  *bool   `json:"published"`
}

func (r *ArticlePatch) ToDomain() domain.ArticlePatch {
	return domain.ArticlePatch{
		Title:      r.Title,
		Content:    r.Content,
		CategoryID: r.CategoryID,
		Published:  r.Published,
	}
}
