package response

import "github.com/Guyuepp/community-comments/domain"

// DateTimeFormat RFC3339 with milliseconds, UTC
const DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Author 评论作者的公开信息
type Author struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	IsAdmin bool   `json:"isAdmin"`
}

func NewAuthorFromDomain(a domain.AuthorSummary) Author {
	return Author{
		ID:      a.ID,
		Name:    a.Name,
		Avatar:  a.Avatar,
		IsAdmin: a.IsAdmin,
	}
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	IsAdmin   bool   `json:"isAdmin"`
	IsBanned  bool   `json:"isBanned"`
	CreatedAt string `json:"createdAt"`
}

func NewUserFromDomain(u domain.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.AvatarURL,
		IsAdmin:   u.IsAdmin,
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt.UTC().Format(DateTimeFormat),
	}
}

func NewUsersFromDomain(list []domain.User) []User {
	res := make([]User, len(list))
	for i := range list {
		res[i] = NewUserFromDomain(list[i])
	}
	return res
}
