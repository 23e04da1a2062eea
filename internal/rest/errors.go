package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/community-comments/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// getStatusCode maps domain errors to HTTP status codes
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}

// abortWithError writes the error response. Unexpected errors never leak
// their text to the client.
func abortWithError(c *gin.Context, err error) {
	code := getStatusCode(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = domain.ErrInternalServerError.Error()
	}
	c.AbortWithStatusJSON(code, ResponseError{Message: msg})
}

// paramID parses a positive int64 path parameter
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return 0, false
	}
	return id, true
}
