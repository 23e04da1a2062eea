package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/community-comments/domain"
	"github.com/Guyuepp/community-comments/internal/rest/middleware"
	"github.com/Guyuepp/community-comments/internal/rest/response"
)

const (
	stateCookie = "oauth_state"
	stateTTL    = 10 * time.Minute
)

// AuthHandler runs the OAuth2 sign-in and hands out session cookies
type AuthHandler struct {
	Users    domain.UserUsecase
	Provider domain.IdentityProvider
	// SessionTTL is the lifetime of the session cookie
	SessionTTL time.Duration
	// Secure marks cookies as HTTPS only
	Secure bool
}

func NewAuthHandler(users domain.UserUsecase, provider domain.IdentityProvider, sessionTTL time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{
		Users:      users,
		Provider:   provider,
		SessionTTL: sessionTTL,
		Secure:     secure,
	}
}

// Login GET /auth/discord
func (h *AuthHandler) Login(c *gin.Context) {
	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, int(stateTTL.Seconds()), "/auth", "", h.Secure, true)
	c.Redirect(http.StatusFound, h.Provider.AuthCodeURL(state))
}

// Callback GET /auth/discord/callback
func (h *AuthHandler) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid oauth state"})
		return
	}
	c.SetCookie(stateCookie, "", -1, "/auth", "", h.Secure, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	profile, err := h.Provider.Profile(c.Request.Context(), code)
	if err != nil {
		logrus.Warnf("discord sign-in failed: %v", err)
		c.JSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	u, token, err := h.Users.SignIn(c.Request.Context(), profile)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.SessionTTL.Seconds()), "/", "", h.Secure, true)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": response.NewUserFromDomain(u)})
}

// Logout POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.Secure, true)
	c.Status(http.StatusNoContent)
}
