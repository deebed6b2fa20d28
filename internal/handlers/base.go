package handlers

import (
	"errors"
	"net/http"

	"greenshelf/internal/middleware"
	"greenshelf/internal/models"
	"greenshelf/internal/services"

	"github.com/gin-gonic/gin"
)

// CurrentUser 取中间件放进上下文的当前用户
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// Fail 领域错误 → HTTP 状态码的唯一映射点
func Fail(c *gin.Context, err error) {
	var ve *services.ValidationError
	var ae *services.AuthorizationError
	var ne *services.NotFoundError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.As(err, &ae):
		c.JSON(http.StatusForbidden, gin.H{"error": ae.Error()})
	case errors.As(err, &ne):
		c.JSON(http.StatusNotFound, gin.H{"error": ne.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
