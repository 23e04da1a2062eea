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

// ArticleHandler  represent the httphandler for article
type ArticleHandler struct {
	Service domain.ArticleUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{
		Service: svc,
	}
}

// Fetch will fetch the articles based on given params, the next cursor goes
// out in the X-cursor header and is empty on the last page.
func (a *ArticleHandler) Fetch(c *gin.Context) {
	num, _ := strconv.ParseInt(c.Query("num"), 10, 64)

	var cursor int64
	if v := c.Query("cursor"); v != "" {
		var err error
		cursor, err = strconv.ParseInt(v, 10, 64)
		if err != nil || cursor < 0 {
			c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid cursor"})
			return
		}
	}

	list, next, err := a.Service.Fetch(c.Request.Context(), middleware.CallerFrom(c), cursor, num)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if next > 0 {
		c.Header("X-cursor", strconv.FormatInt(next, 10))
	}
	c.JSON(http.StatusOK, response.NewArticlesFromDomain(list))
}

// GetByID will get article by given id
func (a *ArticleHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	art, err := a.Service.GetByID(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewArticleFromDomain(&art))
}

// Store will store the article by given request body
func (a *ArticleHandler) Store(c *gin.Context) {
	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	article := req.ToDomain()
	if err := a.Service.Store(c.Request.Context(), middleware.CallerFrom(c), &article); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewArticleFromDomain(&article))
}

// Update will patch the article, including its published flag
func (a *ArticleHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req request.ArticlePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	art, err := a.Service.Update(c.Request.Context(), middleware.CallerFrom(c), id, req.ToDomain())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewArticleFromDomain(&art))
}

// Delete will delete the article by given param
func (a *ArticleHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := a.Service.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
