package comment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/community-comments/domain"
)

// maxToggleAttempts bounds the insert/delete loop of ToggleLike when other
// requests keep flipping the same like under us.
const maxToggleAttempts = 3

type Service struct {
	commentRepo domain.CommentRepository
	likeRepo    domain.CommentLikeRepository
	userRepo    domain.UserRepository
	articleRepo domain.ArticleRepository
	bloomRepo   domain.BloomRepository
	policy      *bluemonday.Policy
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(
	c domain.CommentRepository,
	l domain.CommentLikeRepository,
	u domain.UserRepository,
	a domain.ArticleRepository,
	b domain.BloomRepository,
) *Service {
	return &Service{
		commentRepo: c,
		likeRepo:    l,
		userRepo:    u,
		articleRepo: a,
		bloomRepo:   b,
		policy:      bluemonday.StrictPolicy(),
	}
}

// mayExist 布隆过滤器说不存在就一定不存在，出错时放行
func (s *Service) mayExist(ctx context.Context, articleID int64) bool {
	exists, err := s.bloomRepo.Exists(ctx, articleID)
	if err != nil {
		logrus.Warnf("bloom filter check failed for article %d: %v", articleID, err)
		return true
	}
	if !exists {
		logrus.Warnf("bloom filter says article %d does not exist", articleID)
	}
	return exists
}

// normalize trims the content and rejects text that is empty once markup is
// stripped. The stored content is the trimmed input, never the stripped one:
// comments are Markdown with LaTeX and "<", "&" are ordinary characters there.
func (s *Service) normalize(content string) (string, bool) {
	content = strings.TrimSpace(content)
	if content == "" || strings.TrimSpace(s.policy.Sanitize(content)) == "" {
		return "", false
	}
	return content, true
}

func (s *Service) Create(ctx context.Context, caller *domain.Caller, in domain.NewComment) (domain.Comment, error) {
	if caller == nil {
		return domain.Comment{}, domain.ErrUnauthenticated
	}
	if caller.IsBanned {
		return domain.Comment{}, domain.ErrForbidden
	}

	content, ok := s.normalize(in.Content)
	if !ok || in.ArticleID <= 0 {
		return domain.Comment{}, domain.ErrBadParamInput
	}

	if !s.mayExist(ctx, in.ArticleID) {
		return domain.Comment{}, domain.ErrNotFound
	}
	article, err := s.articleRepo.GetByID(ctx, in.ArticleID)
	if err != nil {
		return domain.Comment{}, err
	}
	if !article.Published {
		return domain.Comment{}, domain.ErrInvalidState
	}

	parentID, err := s.resolveParent(ctx, in)
	if err != nil {
		return domain.Comment{}, err
	}

	c := domain.Comment{
		ArticleID:  in.ArticleID,
		AuthorID:   caller.UserID,
		ParentID:   parentID,
		Content:    content,
		IsApproved: true, // 所有人的评论都自动通过，审核是事后隐藏
	}
	if err := s.commentRepo.Store(ctx, &c); err != nil {
		return domain.Comment{}, err
	}

	author, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		logrus.Warnf("failed to load author %s of new comment %d: %v", caller.UserID, c.ID, err)
		c.Author = domain.AuthorSummary{ID: caller.UserID, IsAdmin: caller.IsAdmin}
	} else {
		c.Author = author.Summary()
	}
	c.LikedBy = []string{}
	return c, nil
}

// resolveParent checks the parent of a reply. Replies to a reply are
// attached to the top-level comment so threads stay two levels deep.
func (s *Service) resolveParent(ctx context.Context, in domain.NewComment) (*int64, error) {
	if in.ParentID == nil {
		return nil, nil
	}
	parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
	if err != nil {
		return nil, err
	}
	if parent.ArticleID != in.ArticleID {
		return nil, domain.ErrBadParamInput
	}
	if parent.ParentID != nil {
		root := *parent.ParentID
		return &root, nil
	}
	id := parent.ID
	return &id, nil
}

func (s *Service) GetByID(ctx context.Context, caller *domain.Caller, id int64) (domain.Thread, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Thread{}, err
	}
	t := domain.Thread{Comment: c, Replies: []domain.Comment{}}
	if !c.IsReply() {
		replies, err := s.commentRepo.FetchReplies(ctx, []int64{c.ID}, true)
		if err != nil {
			return domain.Thread{}, err
		}
		if replies != nil {
			t.Replies = replies
		}
	}

	threads := []domain.Thread{t}
	if err := s.decorate(ctx, caller, threads); err != nil {
		return domain.Thread{}, err
	}
	return threads[0], nil
}

func (s *Service) FetchByArticle(ctx context.Context, caller *domain.Caller, articleID int64, approvedOnly bool) ([]domain.Thread, error) {
	if articleID <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if !s.mayExist(ctx, articleID) {
		return []domain.Thread{}, nil
	}

	roots, err := s.commentRepo.FetchRoots(ctx, articleID, approvedOnly)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return []domain.Thread{}, nil
	}

	rootIDs := make([]int64, len(roots))
	for i, r := range roots {
		rootIDs[i] = r.ID
	}
	replies, err := s.commentRepo.FetchReplies(ctx, rootIDs, approvedOnly)
	if err != nil {
		return nil, err
	}

	threads := buildThreads(roots, replies)
	if err := s.decorate(ctx, caller, threads); err != nil {
		return nil, err
	}
	return threads, nil
}

// buildThreads keeps the order of roots and of replies as fetched.
func buildThreads(roots, replies []domain.Comment) []domain.Thread {
	replyMap := make(map[int64][]domain.Comment, len(roots))
	for _, r := range replies {
		if r.ParentID == nil {
			continue
		}
		replyMap[*r.ParentID] = append(replyMap[*r.ParentID], r)
	}

	threads := make([]domain.Thread, len(roots))
	for i, root := range roots {
		list, ok := replyMap[root.ID]
		if !ok {
			list = []domain.Comment{}
		}
		threads[i] = domain.Thread{Comment: root, Replies: list}
	}
	return threads
}

func (s *Service) Update(ctx context.Context, caller *domain.Caller, id int64, p domain.CommentPatch) (domain.Comment, error) {
	if caller == nil {
		return domain.Comment{}, domain.ErrUnauthenticated
	}
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if !c.CanMutate(caller) {
		return domain.Comment{}, domain.ErrForbidden
	}

	if p.Content != nil {
		content, ok := s.normalize(*p.Content)
		if !ok {
			return domain.Comment{}, domain.ErrBadParamInput
		}
		c.Content = content
	}
	// 非管理员传 isApproved 直接忽略，不报错
	if p.IsApproved != nil && caller.IsAdmin {
		c.IsApproved = *p.IsApproved
	}
	c.UpdatedAt = time.Now()

	if err := s.commentRepo.Update(ctx, &c); err != nil {
		return domain.Comment{}, err
	}

	threads := []domain.Thread{{Comment: c}}
	if err := s.decorate(ctx, caller, threads); err != nil {
		return domain.Comment{}, err
	}
	return threads[0].Comment, nil
}

func (s *Service) Delete(ctx context.Context, caller *domain.Caller, id int64) error {
	if caller == nil {
		return domain.ErrUnauthenticated
	}
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !c.CanMutate(caller) {
		return domain.ErrForbidden
	}
	return s.commentRepo.Delete(ctx, id)
}

// ToggleLike flips the caller's like. The primary key on (user, comment)
// decides races: insert first, a duplicate means the like is there so it
// is removed, and a delete that removes nothing means someone unliked in
// between so the insert is tried again.
func (s *Service) ToggleLike(ctx context.Context, caller *domain.Caller, id int64) (bool, error) {
	if caller == nil {
		return false, domain.ErrUnauthenticated
	}
	if caller.IsBanned {
		return false, domain.ErrForbidden
	}
	if _, err := s.commentRepo.GetByID(ctx, id); err != nil {
		return false, err
	}

	for attempt := 0; attempt < maxToggleAttempts; attempt++ {
		like := domain.CommentLike{UserID: caller.UserID, CommentID: id, CreatedAt: time.Now()}
		err := s.likeRepo.Insert(ctx, &like)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return false, err
		}

		removed, err := s.likeRepo.Delete(ctx, caller.UserID, id)
		if err != nil {
			return false, err
		}
		if removed {
			return false, nil
		}
		logrus.Debugf("like of %s on comment %d changed concurrently, retrying", caller.UserID, id)
	}
	return false, domain.ErrConflict
}

func (s *Service) IsLiked(ctx context.Context, caller *domain.Caller, id int64) (bool, error) {
	if caller == nil {
		return false, nil
	}
	return s.likeRepo.Exists(ctx, caller.UserID, id)
}

// FetchForModeration lists every comment, replies included, newest first.
// Top-level items carry all of their replies whatever their approval.
func (s *Service) FetchForModeration(ctx context.Context, caller *domain.Caller) ([]domain.Thread, error) {
	if caller == nil || !caller.IsAdmin {
		return nil, domain.ErrForbidden
	}

	all, err := s.commentRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return []domain.Thread{}, nil
	}

	var rootIDs []int64
	articleIDs := make([]int64, 0, len(all))
	seen := make(map[int64]struct{})
	for _, c := range all {
		if !c.IsReply() {
			rootIDs = append(rootIDs, c.ID)
		}
		if _, ok := seen[c.ArticleID]; !ok {
			seen[c.ArticleID] = struct{}{}
			articleIDs = append(articleIDs, c.ArticleID)
		}
	}

	var replies []domain.Comment
	if len(rootIDs) > 0 {
		replies, err = s.commentRepo.FetchReplies(ctx, rootIDs, false)
		if err != nil {
			return nil, err
		}
	}

	articles, err := s.articleRepo.GetByIDs(ctx, articleIDs)
	if err != nil {
		return nil, err
	}
	refs := make(map[int64]domain.ArticleRef, len(articles))
	for _, a := range articles {
		refs[a.ID] = a.Ref()
	}

	threads := buildThreads(all, replies)
	for i := range threads {
		if threads[i].IsReply() {
			threads[i].Replies = []domain.Comment{}
		}
		ref, ok := refs[threads[i].ArticleID]
		if !ok {
			ref = domain.ArticleRef{ID: threads[i].ArticleID}
		}
		threads[i].Article = &ref
	}

	if err := s.decorate(ctx, caller, threads); err != nil {
		return nil, err
	}
	return threads, nil
}

/*
* decorate fills the derived fields of every comment in the threads.
* Authors, likers and reply counts are independent lookups, so they run
* concurrently with errgroup and are merged afterwards.
 */
func (s *Service) decorate(ctx context.Context, caller *domain.Caller, threads []domain.Thread) error {
	var items []*domain.Comment
	for i := range threads {
		items = append(items, &threads[i].Comment)
		for j := range threads[i].Replies {
			items = append(items, &threads[i].Replies[j])
		}
	}
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(items))
	authorIDs := make([]string, 0, len(items))
	seenAuthor := make(map[string]struct{})
	for _, c := range items {
		ids = append(ids, c.ID)
		if _, ok := seenAuthor[c.AuthorID]; !ok {
			seenAuthor[c.AuthorID] = struct{}{}
			authorIDs = append(authorIDs, c.AuthorID)
		}
	}

	var (
		users   []domain.User
		likers  map[int64][]string
		replies map[int64]int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = s.userRepo.GetByIDs(gctx, authorIDs)
		return
	})
	g.Go(func() (err error) {
		likers, err = s.likeRepo.FetchLikers(gctx, ids)
		return
	})
	g.Go(func() (err error) {
		replies, err = s.commentRepo.CountReplies(gctx, ids)
		return
	})
	if err := g.Wait(); err != nil {
		logrus.Errorf("failed to decorate comments: %v", err)
		return err
	}

	authors := make(map[string]domain.AuthorSummary, len(users))
	for _, u := range users {
		authors[u.ID] = u.Summary()
	}

	for _, c := range items {
		if a, ok := authors[c.AuthorID]; ok {
			c.Author = a
		} else {
			c.Author = domain.AuthorSummary{ID: c.AuthorID}
		}

		c.LikedBy = likers[c.ID]
		if c.LikedBy == nil {
			c.LikedBy = []string{}
		}
		c.LikeCount = int64(len(c.LikedBy))
		c.ReplyCount = replies[c.ID]
		c.LikedByCaller = false
		if caller != nil {
			for _, uid := range c.LikedBy {
				if uid == caller.UserID {
					c.LikedByCaller = true
					break
				}
			}
		}
	}
	return nil
}
