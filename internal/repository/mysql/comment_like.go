package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/community-comments/domain"
	"github.com/Guyuepp/community-comments/internal/repository/mysql/model"
)

type commentLikeRepository struct {
	DB *gorm.DB
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db *gorm.DB) *commentLikeRepository {
	return &commentLikeRepository{DB: db}
}

// Insert relies on the (user_id, comment_id) primary key; a second like
// for the same pair comes back as domain.ErrConflict.
func (r *commentLikeRepository) Insert(ctx context.Context, l *domain.CommentLike) error {
	row := model.NewCommentLikeFromDomain(l)
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		return translateError(err)
	}
	l.CreatedAt = row.CreatedAt
	return nil
}

func (r *commentLikeRepository) Delete(ctx context.Context, userID string, commentID int64) (bool, error) {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&model.CommentLike{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *commentLikeRepository) Exists(ctx context.Context, userID string, commentID int64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&n).Error
	return n > 0, err
}

func (r *commentLikeRepository) FetchLikers(ctx context.Context, commentIDs []int64) (map[int64][]string, error) {
	res := make(map[int64][]string, len(commentIDs))
	if len(commentIDs) == 0 {
		return res, nil
	}
	var rows []model.CommentLike
	err := r.DB.WithContext(ctx).
		Where("comment_id IN ?", commentIDs).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		res[row.CommentID] = append(res[row.CommentID], row.UserID)
	}
	return res, nil
}
