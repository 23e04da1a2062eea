package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/community-comments/domain"
	"github.com/Guyuepp/community-comments/internal/rest/middleware"
	"github.com/Guyuepp/community-comments/internal/rest/response"
)

// UserHandler serves /me and the admin user management endpoints
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Me GET /me
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.Service.Me(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUserFromDomain(u))
}

// Fetch GET /admin/users?limit=
func (h *UserHandler) Fetch(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	list, err := h.Service.Fetch(c.Request.Context(), middleware.CallerFrom(c), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUsersFromDomain(list))
}

type userAction func(ctx *gin.Context, caller *domain.Caller, userID string) (domain.User, error)

func (h *UserHandler) apply(c *gin.Context, action userAction, msg string) {
	u, err := action(c, middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "user": response.NewUserFromDomain(u)})
}

// ToggleBan POST /admin/users/:id/ban
func (h *UserHandler) ToggleBan(c *gin.Context) {
	h.apply(c, func(ctx *gin.Context, caller *domain.Caller, id string) (domain.User, error) {
		return h.Service.ToggleBan(ctx.Request.Context(), caller, id)
	}, "User ban status updated")
}

// Promote POST /admin/users/:id/promote
func (h *UserHandler) Promote(c *gin.Context) {
	h.apply(c, func(ctx *gin.Context, caller *domain.Caller, id string) (domain.User, error) {
		return h.Service.Promote(ctx.Request.Context(), caller, id)
	}, "User promoted to administrator")
}

// Demote POST /admin/users/:id/demote
func (h *UserHandler) Demote(c *gin.Context) {
	h.apply(c, func(ctx *gin.Context, caller *domain.Caller, id string) (domain.User, error) {
		return h.Service.Demote(ctx.Request.Context(), caller, id)
	}, "User demoted")
}
