package model

import (
	"time"

	"github.com/Guyuepp/community-comments/domain"
)

type Article struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Content    string    `gorm:"type:longtext;not null"`
	AuthorID   string    `gorm:"column:author_id;type:varchar(64);not null"`
	CategoryID *int64    `gorm:"column:category_id"`
	Published  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"type:datetime"`
	UpdatedAt  time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "articles"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:         m.ID,
		Title:      m.Title,
		Content:    m.Content,
		AuthorID:   m.AuthorID,
		CategoryID: m.CategoryID,
		Published:  m.Published,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		AuthorID:   a.AuthorID,
		CategoryID: a.CategoryID,
		Published:  a.Published,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
