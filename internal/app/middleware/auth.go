// internal/app/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/mundo-tango/mundo-tango-app/internal/pkg/auth"
	"github.com/mundo-tango/mundo-tango-app/pkg/response"

	"github.com/gin-gonic/gin"
)

type Middleware struct {
	jwtSecret []byte
}

func NewMiddleware(jwtSecret []byte) *Middleware {
	return &Middleware{jwtSecret: jwtSecret}
}

// JWTAuth 是一个强制性的JWT认证中间件
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.parseFromHeader(c)
		if !ok {
			return
		}
		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// ModeratorOnly 在 JWT 认证之上额外要求 moderator 角色
func (m *Middleware) ModeratorOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.parseFromHeader(c)
		if !ok {
			return
		}
		if claims.Role != auth.RoleModerator {
			response.Fail(c, http.StatusForbidden, "没有审核权限")
			c.Abort()
			return
		}
		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// JWTAuthOptional 是一个可选的JWT认证中间件，没有Token时作为游客放行
func (m *Middleware) JWTAuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.Next()
			return
		}

		claims, err := auth.ParseToken(parts[1], m.jwtSecret)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "无效或过期的Token")
			c.Abort()
			return
		}

		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// parseFromHeader 从 Authorization 头解析 Bearer Token，失败时写入响应并中止
func (m *Middleware) parseFromHeader(c *gin.Context) (*auth.CustomClaims, bool) {
	authHeader := c.Request.Header.Get("Authorization")
	if authHeader == "" {
		response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
		c.Abort()
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		response.Fail(c, http.StatusUnauthorized, "Token格式不正确")
		c.Abort()
		return nil, false
	}

	claims, err := auth.ParseToken(parts[1], m.jwtSecret)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "无效或过期的Token")
		c.Abort()
		return nil, false
	}
	return claims, true
}
