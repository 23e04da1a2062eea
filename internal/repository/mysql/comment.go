package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/community-comments/domain"
	"github.com/Guyuepp/community-comments/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	row := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(row).Error; err != nil {
		return translateError(err)
	}
	comment.ID = row.ID
	comment.CreatedAt = row.CreatedAt
	comment.UpdatedAt = row.UpdatedAt
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var row model.Comment
	if err := c.DB.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return domain.Comment{}, translateError(err)
	}
	return row.ToDomain(), nil
}

func (c *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	comment.UpdatedAt = time.Now()
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"content":     comment.Content,
			"is_approved": comment.IsApproved,
			"updated_at":  comment.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	// 读写之间被删掉了
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete walks the ownership graph explicitly: likes of replies, replies,
// likes of the comment, the comment. The foreign keys cascade as well.
func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var replyIDs []int64
		if err := tx.Model(&model.Comment{}).
			Where("parent_id = ?", id).
			Pluck("id", &replyIDs).Error; err != nil {
			return err
		}

		if len(replyIDs) > 0 {
			if err := tx.Where("comment_id IN ?", replyIDs).Delete(&model.CommentLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", replyIDs).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("comment_id = ?", id).Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (c *commentRepository) FetchRoots(ctx context.Context, articleID int64, approvedOnly bool) ([]domain.Comment, error) {
	var rows []model.Comment
	query := c.DB.WithContext(ctx).Where("article_id = ? AND parent_id IS NULL", articleID)
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}
	if err := query.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return model.CommentsToDomain(rows), nil
}

func (c *commentRepository) FetchReplies(ctx context.Context, parentIDs []int64, approvedOnly bool) ([]domain.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var rows []model.Comment
	query := c.DB.WithContext(ctx).Where("parent_id IN ?", parentIDs)
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}
	if err := query.Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return model.CommentsToDomain(rows), nil
}

func (c *commentRepository) FetchAll(ctx context.Context) ([]domain.Comment, error) {
	var rows []model.Comment
	if err := c.DB.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return model.CommentsToDomain(rows), nil
}

type replyCount struct {
	ParentID int64
	Total    int64
}

func (c *commentRepository) CountReplies(ctx context.Context, parentIDs []int64) (map[int64]int64, error) {
	res := make(map[int64]int64, len(parentIDs))
	if len(parentIDs) == 0 {
		return res, nil
	}
	var rows []replyCount
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("parent_id, COUNT(*) AS total").
		Where("parent_id IN ?", parentIDs).
		Group("parent_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		res[r.ParentID] = r.Total
	}
	return res, nil
}

var _ domain.CommentRepository = (*commentRepository)(nil)
