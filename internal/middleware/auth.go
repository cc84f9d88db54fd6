package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"fridge-inventory/pkg/response"
	"fridge-inventory/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth verifies the access token from the Authorization header or the session
// cookie and stores the resulting scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := m.extractToken(c)
		sc, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

func (m Middleware) extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	}
	if m.cookieConfig.Name == "" {
		return ""
	}
	token, err := c.Cookie(m.cookieConfig.Name)
	if err != nil {
		return ""
	}
	return token
}
