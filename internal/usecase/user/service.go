package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/community-comments/domain"
)

const (
	defaultFetchLimit = 50
	maxFetchLimit     = 500
)

type Service struct {
	userRepo domain.UserRepository
	issuer   domain.TokenIssuer
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(u domain.UserRepository, issuer domain.TokenIssuer) *Service {
	return &Service{
		userRepo: u,
		issuer:   issuer,
	}
}

// SignIn stores what the provider reported and mints a session token.
// Admin and ban flags of a returning user are kept as they are.
func (s *Service) SignIn(ctx context.Context, p domain.ProviderProfile) (domain.User, string, error) {
	if strings.TrimSpace(p.ID) == "" {
		return domain.User{}, "", domain.ErrBadParamInput
	}

	now := time.Now()
	u := domain.User{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		AvatarURL: p.AvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Upsert(ctx, &u); err != nil {
		return domain.User{}, "", err
	}

	stored, err := s.userRepo.GetByID(ctx, u.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.issuer.Issue(stored.ID)
	if err != nil {
		logrus.Errorf("failed to issue token for user %s: %v", stored.ID, err)
		return domain.User{}, "", domain.ErrInternalServerError
	}
	return stored, token, nil
}

func (s *Service) ResolveCaller(ctx context.Context, userID string) (*domain.Caller, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return domain.NewCaller(u), nil
}

func (s *Service) Me(ctx context.Context, caller *domain.Caller) (domain.User, error) {
	if caller == nil {
		return domain.User{}, domain.ErrUnauthenticated
	}
	return s.userRepo.GetByID(ctx, caller.UserID)
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

func (s *Service) Fetch(ctx context.Context, caller *domain.Caller, limit int) ([]domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultFetchLimit
	}
	limit = min(limit, maxFetchLimit)
	return s.userRepo.Fetch(ctx, limit)
}

// ToggleBan flips the ban flag. Administrators cannot be banned.
func (s *Service) ToggleBan(ctx context.Context, caller *domain.Caller, userID string) (domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return domain.User{}, err
	}
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if u.IsAdmin {
		return domain.User{}, domain.ErrInvalidState
	}

	u.IsBanned = !u.IsBanned
	if err := s.userRepo.SetBanned(ctx, u.ID, u.IsBanned); err != nil {
		return domain.User{}, err
	}
	logrus.Infof("user %s banned=%t by %s", u.ID, u.IsBanned, caller.UserID)
	return u, nil
}

func (s *Service) Promote(ctx context.Context, caller *domain.Caller, userID string) (domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return domain.User{}, err
	}
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if u.IsAdmin || u.IsBanned {
		return domain.User{}, domain.ErrInvalidState
	}

	if err := s.userRepo.SetAdmin(ctx, u.ID, true); err != nil {
		return domain.User{}, err
	}
	u.IsAdmin = true
	logrus.Infof("user %s promoted by %s", u.ID, caller.UserID)
	return u, nil
}

func (s *Service) Demote(ctx context.Context, caller *domain.Caller, userID string) (domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return domain.User{}, err
	}
	if userID == caller.UserID {
		return domain.User{}, domain.ErrBadParamInput
	}
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.userRepo.SetAdmin(ctx, u.ID, false); err != nil {
		return domain.User{}, err
	}
	u.IsAdmin = false
	logrus.Infof("user %s demoted by %s", u.ID, caller.UserID)
	return u, nil
}
