package middleware

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/viewtube/pkg/logger"
	"github.com/d60-Lab/viewtube/pkg/response"
)

// Recovery 捕获 handler panic：上报 sentry、记日志、返回 500 信封
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if hub := sentry.CurrentHub(); hub.Client() != nil {
					hub.Recover(r)
				}
				logger.L().Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{
					StatusCode: http.StatusInternalServerError,
					Message:    "internal server error",
					Success:    false,
					Errors:     []string{},
				})
			}
		}()
		c.Next()
	}
}
