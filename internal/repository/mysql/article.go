package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/community-comments/domain"
	"github.com/Guyuepp/community-comments/internal/repository/mysql/model"
)

type articleRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.ArticleDBRepository = (*articleRepository)(nil)

// NewArticleDBRepository 创建数据库操作层
func NewArticleDBRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

func (m *articleRepository) GetByID(ctx context.Context, id int64) (res domain.Article, err error) {
	var article model.Article
	err = m.DB.WithContext(ctx).First(&article, "id = ?", id).Error
	if err != nil {
		return res, translateError(err)
	}
	res = article.ToDomain()
	return
}

func (m *articleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var articles []model.Article
	err := m.DB.WithContext(ctx).
		Select("id, title, author_id, category_id, published, created_at, updated_at").
		Where("id IN ?", ids).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return res, nil
}

func (m *articleRepository) Store(ctx context.Context, a *domain.Article) (err error) {
	articleModel := model.NewArticleFromDomain(a)
	result := m.DB.WithContext(ctx).Create(articleModel)
	if result.Error != nil {
		return result.Error
	}
	a.ID = articleModel.ID
	a.CreatedAt = articleModel.CreatedAt
	a.UpdatedAt = articleModel.UpdatedAt
	return
}

// Update selects every mutable column so false and nil values are written too.
func (m *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	result := m.DB.WithContext(ctx).
		Model(articleModel).
		Select("title", "content", "category_id", "published", "updated_at").
		Updates(articleModel)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *articleRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Article{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (m *articleRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Pluck("id", &ids).Error
	return
}
