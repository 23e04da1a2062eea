package rest_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/community-comments/domain"
	"github.com/Guyuepp/community-comments/domain/mocks"
	"github.com/Guyuepp/community-comments/internal/rest"
)

func userRoutes(svc domain.UserUsecase, caller *domain.Caller) *gin.Engine {
	r := newEngine(caller)
	h := rest.NewUserHandler(svc)
	r.GET("/me", h.Me)
	r.GET("/admin/users", h.Fetch)
	r.POST("/admin/users/:id/ban", h.ToggleBan)
	r.POST("/admin/users/:id/promote", h.Promote)
	r.POST("/admin/users/:id/demote", h.Demote)
	return r
}

func TestMe(t *testing.T) {
	svc := new(mocks.UserUsecase)
	svc.On("Me", mock.Anything, (*domain.Caller)(nil)).Return(domain.User{}, domain.ErrUnauthenticated).Once()
	assert.Equal(t, http.StatusUnauthorized, do(t, userRoutes(svc, nil), http.MethodGet, "/me", nil).Code)

	caller := &domain.Caller{UserID: "u1"}
	svc.On("Me", mock.Anything, caller).Return(domain.User{ID: "u1", Name: "Nelly", IsBanned: true}, nil).Once()
	rec := do(t, userRoutes(svc, caller), http.MethodGet, "/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decode(t, rec, &body)
	assert.Equal(t, "Nelly", body["name"])
	assert.Equal(t, true, body["isBanned"])
}

func TestAdminUsers(t *testing.T) {
	admin := &domain.Caller{UserID: "root", IsAdmin: true}

	t.Run("list", func(t *testing.T) {
		svc := new(mocks.UserUsecase)
		svc.On("Fetch", mock.Anything, admin, 20).Return([]domain.User{{ID: "a"}, {ID: "b"}}, nil).Once()

		rec := do(t, userRoutes(svc, admin), http.MethodGet, "/admin/users?limit=20", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var body []map[string]any
		decode(t, rec, &body)
		assert.Len(t, body, 2)
	})

	t.Run("ban admin refused", func(t *testing.T) {
		svc := new(mocks.UserUsecase)
		svc.On("ToggleBan", mock.Anything, admin, "a2").Return(domain.User{}, domain.ErrInvalidState).Once()
		assert.Equal(t, http.StatusBadRequest, do(t, userRoutes(svc, admin), http.MethodPost, "/admin/users/a2/ban", nil).Code)
	})

	t.Run("promote", func(t *testing.T) {
		svc := new(mocks.UserUsecase)
		svc.On("Promote", mock.Anything, admin, "u1").Return(domain.User{ID: "u1", IsAdmin: true}, nil).Once()

		rec := do(t, userRoutes(svc, admin), http.MethodPost, "/admin/users/u1/promote", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		decode(t, rec, &body)
		assert.Equal(t, true, body["user"].(map[string]any)["isAdmin"])
	})

	t.Run("demote by member", func(t *testing.T) {
		svc := new(mocks.UserUsecase)
		member := &domain.Caller{UserID: "u"}
		svc.On("Demote", mock.Anything, member, "root").Return(domain.User{}, domain.ErrForbidden).Once()
		assert.Equal(t, http.StatusForbidden, do(t, userRoutes(svc, member), http.MethodPost, "/admin/users/root/demote", nil).Code)
	})
}
