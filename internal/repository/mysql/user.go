package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/community-comments/domain"
	"github.com/Guyuepp/community-comments/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return domain.User{}, translateError(err)
	}

	return user.ToDomain(), nil
}

func (m *userRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	if err := m.DB.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, nil
}

func (m *userRepository) Fetch(ctx context.Context, limit int) ([]domain.User, error) {
	var users []model.User
	err := m.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, nil
}

// Upsert only refreshes the profile columns on conflict, flags stay as stored.
func (m *userRepository) Upsert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)
	err := m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "avatar_url", "updated_at"}),
		}).
		Create(userModel).Error
	if err != nil {
		return err
	}
	u.CreatedAt = userModel.CreatedAt
	u.UpdatedAt = userModel.UpdatedAt
	return nil
}

func (m *userRepository) SetBanned(ctx context.Context, id string, banned bool) error {
	return m.DB.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("is_banned", banned).Error
}

func (m *userRepository) SetAdmin(ctx context.Context, id string, admin bool) error {
	return m.DB.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("is_admin", admin).Error
}
