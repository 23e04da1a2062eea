package article

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/community-comments/domain"
)

const (
	// bloomPageSize 初始化布隆过滤器时每批读取的文章数
	bloomPageSize = 1000

	DefaultPageNum = 10
	PageMaxNum     = 100
)

type Service struct {
	articleRepo domain.ArticleRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(a domain.ArticleRepository, b domain.BloomRepository) *Service {
	return &Service{
		articleRepo: a,
		bloomRepo:   b,
	}
}

func requireAdmin(caller *domain.Caller) error {
	if caller == nil {
		return domain.ErrUnauthenticated
	}
	if !caller.IsAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// Fetch walks article ids after cursor and keeps reading until num visible
// articles are collected or the ids run out.
func (s *Service) Fetch(ctx context.Context, caller *domain.Caller, cursor int64, num int64) ([]domain.Article, int64, error) {
	if num <= 0 || num > PageMaxNum {
		num = DefaultPageNum
	}
	showDrafts := caller != nil && caller.IsAdmin

	res := make([]domain.Article, 0, num)
	for {
		ids, err := s.articleRepo.FetchIDs(ctx, cursor, num)
		if err != nil {
			return nil, 0, err
		}
		if len(ids) == 0 {
			return res, 0, nil
		}

		list, err := s.articleRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		byID := make(map[int64]domain.Article, len(list))
		for _, a := range list {
			byID[a.ID] = a
		}

		for _, id := range ids {
			cursor = id
			a, ok := byID[id]
			if !ok || (!a.Published && !showDrafts) {
				continue
			}
			res = append(res, a)
			if int64(len(res)) == num {
				return res, cursor, nil
			}
		}
		if int64(len(ids)) < num {
			return res, 0, nil
		}
	}
}

// GetByID hides drafts from everyone but administrators.
func (s *Service) GetByID(ctx context.Context, caller *domain.Caller, id int64) (domain.Article, error) {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err != nil {
		logrus.Warnf("bloom filter check failed for article %d: %v", id, err)
	} else if !exists {
		return domain.Article{}, domain.ErrNotFound
	}

	res, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}
	if !res.Published && (caller == nil || !caller.IsAdmin) {
		return domain.Article{}, domain.ErrNotFound
	}
	return res, nil
}

func (s *Service) Store(ctx context.Context, caller *domain.Caller, a *domain.Article) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return domain.ErrBadParamInput
	}

	now := time.Now()
	a.AuthorID = caller.UserID
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := s.articleRepo.Store(ctx, a); err != nil {
		return err
	}

	if err := s.bloomRepo.Add(ctx, a.ID); err != nil {
		// 漏加会让新文章被误判为不存在，只能记日志等下次启动重建
		logrus.Errorf("failed to add article %d to bloom filter: %v", a.ID, err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, caller *domain.Caller, id int64, p domain.ArticlePatch) (domain.Article, error) {
	if err := requireAdmin(caller); err != nil {
		return domain.Article{}, err
	}
	a, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return domain.Article{}, domain.ErrBadParamInput
		}
		a.Title = title
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.CategoryID != nil {
		a.CategoryID = p.CategoryID
	}
	if p.Published != nil {
		a.Published = *p.Published
	}
	a.UpdatedAt = time.Now()

	if err := s.articleRepo.Update(ctx, &a); err != nil {
		return domain.Article{}, err
	}
	return a, nil
}

// Delete removes the article; its comments and their likes go with it
// through the foreign keys.
func (s *Service) Delete(ctx context.Context, caller *domain.Caller, id int64) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	return s.articleRepo.Delete(ctx, id)
}

// InitBloomFilter loads every article id into the bloom filter.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	var (
		cursor int64
		total  int
	)
	for {
		ids, err := s.articleRepo.FetchIDs(ctx, cursor, bloomPageSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if len(ids) < bloomPageSize {
			break
		}
	}
	logrus.Infof("bloom filter initialised with %d articles", total)
	return nil
}
