package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/community-comments/domain"
	"github.com/Guyuepp/community-comments/internal/rest/middleware"
	"github.com/Guyuepp/community-comments/internal/rest/request"
	"github.com/Guyuepp/community-comments/internal/rest/response"
)

// CommentHandler represent the httphandler for comments
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// FetchByArticle GET /comments?articleId=&approvedOnly=
func (h *CommentHandler) FetchByArticle(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Query("articleId"), 10, 64)
	if err != nil || articleID <= 0 {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}
	approvedOnly := c.Query("approvedOnly") != "false"

	threads, err := h.Service.FetchByArticle(c.Request.Context(), middleware.CallerFrom(c), articleID, approvedOnly)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewThreadsFromDomain(threads))
}

// Create POST /comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		// 交给 service 按顺序校验：先身份，再参数
		req = request.Comment{}
	}

	created, err := h.Service.Create(c.Request.Context(), middleware.CallerFrom(c), req.ToDomain())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&created))
}

// GetByID GET /comments/:id
func (h *CommentHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	t, err := h.Service.GetByID(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewThreadFromDomain(&t))
}

// Update PUT /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req request.CommentPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), middleware.CallerFrom(c), id, req.ToDomain())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&updated))
}

// Delete DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// ToggleLike POST /comments/:id/like
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	liked, err := h.Service.ToggleLike(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	msg := "Like removed"
	if liked {
		msg = "Comment liked"
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "message": msg})
}

// IsLiked GET /comments/:id/like
func (h *CommentHandler) IsLiked(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	liked, err := h.Service.IsLiked(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// FetchForModeration GET /admin/comments
func (h *CommentHandler) FetchForModeration(c *gin.Context) {
	threads, err := h.Service.FetchForModeration(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewThreadsFromDomain(threads))
}
