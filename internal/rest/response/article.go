package response

import (
	"github.com/Guyuepp/community-comments/domain"
)

type Article struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   string `json:"authorId"`
	CategoryID *int64 `json:"categoryId"`
	Published  bool   `json:"published"`
	UpdatedAt  string `json:"updatedAt"`
	CreatedAt  string `json:"createdAt"`
}

// NewArticleFromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	return Article{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		AuthorID:   a.AuthorID,
		CategoryID: a.CategoryID,
		Published:  a.Published,
		UpdatedAt:  a.UpdatedAt.UTC().Format(DateTimeFormat),
		CreatedAt:  a.CreatedAt.UTC().Format(DateTimeFormat),
	}
}

func NewArticlesFromDomain(list []domain.Article) []Article {
	res := make([]Article, len(list))
	for i := range list {
		res[i] = NewArticleFromDomain(&list[i])
	}
	return res
}

type ArticleRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
