package model

import (
	"time"

	"github.com/Guyuepp/community-comments/domain"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	AvatarURL string    `gorm:"column:avatar_url;type:varchar(512)"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:false"`
	IsBanned  bool      `gorm:"column:is_banned;not null;default:false"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		AvatarURL: m.AvatarURL,
		IsAdmin:   m.IsAdmin,
		IsBanned:  m.IsBanned,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
		IsAdmin:   u.IsAdmin,
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
