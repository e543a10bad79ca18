package middleware

import (
	"strings"

	"search-srv/pkg/log"
	"search-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// OptionalAuth attaches the caller's scope when the request carries a valid token
// and lets every other request through as anonymous.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.jwtManager == nil {
			c.Next()
			return
		}

		tokenString := m.extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.OptionalAuth: ignoring invalid token: %v", err)
			c.Next()
			return
		}

		sc := scope.NewScope(payload)
		ctx := scope.SetScopeToContext(c.Request.Context(), sc)
		ctx = log.WithFields(ctx, "user_id", sc.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// extractToken reads the Authorization header first ("Bearer <token>" or a raw token), then the cookie.
func (m Middleware) extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return strings.TrimSpace(authHeader)
	}

	if m.cookieName == "" {
		return ""
	}
	token, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return token
}
