package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"school-system-backend/internal/core/auth"
	"school-system-backend/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyRole   = "role"
)

// AuthJWT 解析 Bearer token，把 uid/角色放进上下文。
// requireRole 非空时做角色闸门（学校管理员接口只放系统管理员）。
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.Unauthorized(c)
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			response.Forbidden(c)
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}

// UserID 取当前登录用户 id
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(KeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
