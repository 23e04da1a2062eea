package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/community-comments/domain"
)

const (
	// CallerKey 是 gin.Context 中存放 *domain.Caller 的键
	CallerKey = "caller"
	// SessionCookie carries the session token for browser clients.
	SessionCookie = "session"
)

// TokenParser returns the user id behind a session token.
type TokenParser interface {
	Parse(token string) (string, error)
}

// CallerResolver loads the current state of a user.
type CallerResolver interface {
	ResolveCaller(ctx context.Context, userID string) (*domain.Caller, error)
}

// Session attaches the caller to the request. Requests without a usable
// token go on anonymously; handlers decide whether that is enough.
// The user row is read on every request so bans and role changes apply
// immediately.
func Session(tokens TokenParser, users CallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, err := tokens.Parse(token)
		if err != nil {
			logrus.Debugf("ignoring session token: %v", err)
			c.Next()
			return
		}

		caller, err := users.ResolveCaller(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				c.Next()
				return
			}
			logrus.Errorf("failed to resolve caller %s: %v", userID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": domain.ErrInternalServerError.Error()})
			return
		}

		c.Set(CallerKey, caller)
		c.Next()
	}
}

// bearerToken prefers a Bearer Authorization header; other schemes belong to
// someone else (proxies, basic auth) and fall through to the session cookie.
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if v, err := c.Cookie(SessionCookie); err == nil {
		return v
	}
	return ""
}

// CallerFrom returns the caller set by Session, nil when anonymous.
func CallerFrom(c *gin.Context) *domain.Caller {
	v, ok := c.Get(CallerKey)
	if !ok {
		return nil
	}
	caller, _ := v.(*domain.Caller)
	return caller
}
