package model

import (
	"time"

	"github.com/Guyuepp/community-comments/domain"
)

type Comment struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ArticleID  int64     `gorm:"column:article_id;not null"`
	AuthorID   string    `gorm:"column:author_id;type:varchar(64);not null"`
	ParentID   *int64    `gorm:"column:parent_id"`
	Content    string    `gorm:"type:text;not null"`
	IsApproved bool      `gorm:"column:is_approved;not null;default:true"`
	CreatedAt  time.Time `gorm:"type:datetime(3)"`
	UpdatedAt  time.Time `gorm:"type:datetime(3)"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:         c.ID,
		ArticleID:  c.ArticleID,
		AuthorID:   c.AuthorID,
		ParentID:   c.ParentID,
		Content:    c.Content,
		IsApproved: c.IsApproved,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:         m.ID,
		ArticleID:  m.ArticleID,
		AuthorID:   m.AuthorID,
		ParentID:   m.ParentID,
		Content:    m.Content,
		IsApproved: m.IsApproved,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func CommentsToDomain(rows []Comment) []domain.Comment {
	res := make([]domain.Comment, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res
}
