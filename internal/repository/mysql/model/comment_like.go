package model

import (
	"time"

	"github.com/Guyuepp/community-comments/domain"
)

type CommentLike struct {
	UserID    string    `gorm:"column:user_id;type:varchar(64);primaryKey"`
	CommentID int64     `gorm:"column:comment_id;primaryKey;autoIncrement:false"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

func NewCommentLikeFromDomain(l *domain.CommentLike) *CommentLike {
	return &CommentLike{
		UserID:    l.UserID,
		CommentID: l.CommentID,
		CreatedAt: l.CreatedAt,
	}
}
