package domain

import (
	"context"
	"time"
)

// User represents a member of the community.
// Identity fields come from the OAuth provider; the service itself only
// flips IsAdmin and IsBanned.
type User struct {
	ID        string    // Provider issued identifier, stable across sessions
	Name      string    // Display name
	Email     string    // Contact email reported by the provider
	AvatarURL string    // Avatar image URL
	IsAdmin   bool      // Administrator flag
	IsBanned  bool      // Banned users may not post or like
	CreatedAt time.Time // First sign-in timestamp
	UpdatedAt time.Time // Last profile refresh timestamp
}

// Summary returns the public author view of the user.
func (u User) Summary() AuthorSummary {
	return AuthorSummary{
		ID:      u.ID,
		Name:    u.Name,
		Avatar:  u.AvatarURL,
		IsAdmin: u.IsAdmin,
	}
}

// Caller is the identity attached to a single request.
// It is resolved once at the request boundary from the stored user row;
// a nil *Caller stands for an anonymous request.
type Caller struct {
	UserID   string
	IsAdmin  bool
	IsBanned bool
}

// NewCaller builds the request identity from a stored user.
func NewCaller(u User) *Caller {
	return &Caller{
		UserID:   u.ID,
		IsAdmin:  u.IsAdmin,
		IsBanned: u.IsBanned,
	}
}

// ProviderProfile is what the identity provider tells us about a user at sign-in.
type ProviderProfile struct {
	ID        string
	Name      string
	Email     string
	AvatarURL string
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByIDs retrieves the users with the given IDs, missing ones are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]User, error)

	// Fetch lists users, newest first.
	Fetch(ctx context.Context, limit int) ([]User, error)

	// Upsert inserts the user or refreshes its profile fields.
	// IsAdmin and IsBanned of an existing row are never touched.
	Upsert(ctx context.Context, u *User) error

	// SetBanned sets the banned flag of an existing user.
	SetBanned(ctx context.Context, id string, banned bool) error

	// SetAdmin sets the admin flag of an existing user.
	SetAdmin(ctx context.Context, id string, admin bool) error
}

// TokenIssuer mints session tokens for signed-in users.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// IdentityProvider is the external OAuth2 sign-in.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	// Profile exchanges an authorization code for the user's profile.
	Profile(ctx context.Context, code string) (ProviderProfile, error)
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	// SignIn records the provider profile and returns the user with a session token.
	SignIn(ctx context.Context, p ProviderProfile) (User, string, error)

	// ResolveCaller loads the stored user behind a session subject.
	// Returns ErrUnauthenticated if the user no longer exists.
	ResolveCaller(ctx context.Context, userID string) (*Caller, error)

	// Me returns the stored profile of the caller.
	Me(ctx context.Context, caller *Caller) (User, error)

	// Fetch lists users for administrators.
	Fetch(ctx context.Context, caller *Caller, limit int) ([]User, error)

	// ToggleBan flips the banned flag of a non-admin user.
	ToggleBan(ctx context.Context, caller *Caller, userID string) (User, error)

	// Promote grants the admin flag. Banned users cannot be promoted.
	Promote(ctx context.Context, caller *Caller, userID string) (User, error)

	// Demote revokes the admin flag. Administrators cannot demote themselves.
	Demote(ctx context.Context, caller *Caller, userID string) (User, error)
}
