package middleware

import (
	"strings"

	"rentdesk/pkg/jwt"
	"rentdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 登录校验中间件
type AuthMiddleware struct {
	jwtManager    *jwt.JWTManager
	authenticated func() bool
}

// NewAuthMiddleware 创建中间件。authenticated 返回当前是否处于登录状态，
// 登出之后已签发的令牌随之失效；为空时只校验令牌
func NewAuthMiddleware(jwtManager *jwt.JWTManager, authenticated func() bool) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:    jwtManager,
		authenticated: authenticated,
	}
}

// RequireLogin 要求携带有效的 Bearer 令牌
func (m *AuthMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "认证头格式错误")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.VerifyToken(authHeader[7:])
		if err != nil {
			response.Unauthorized(c, "Token无效或已过期")
			c.Abort()
			return
		}

		if m.authenticated != nil && !m.authenticated() {
			response.Unauthorized(c, "已登出，请重新登录")
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Set("claims", claims)
		c.Next()
	}
}
