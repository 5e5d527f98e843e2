package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/d60-Lab/viewtube/pkg/errs"
	"github.com/d60-Lab/viewtube/pkg/response"
)

// CtxUserID 认证中间件写入 gin context 的 caller id 键
const CtxUserID = "userID"

// Auth 校验 Bearer token 并注入 caller id。
// 引擎的所有操作都显式接收这个 id，不读全局状态。
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			response.Error(c, errs.Unauthenticated())
			c.Abort()
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, errs.Unauthenticated())
			c.Abort()
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			response.Error(c, errs.Unauthenticated())
			c.Abort()
			return
		}

		c.Set(CtxUserID, sub)
		c.Next()
	}
}

// CallerID 取出已认证的 caller id；空串表示未经 Auth 的路由误用
func CallerID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}
