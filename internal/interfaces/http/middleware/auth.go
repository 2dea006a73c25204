package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"courtside/internal/infrastructure/auth"
	"courtside/internal/shared/constants"
	"courtside/internal/shared/logger"
	"courtside/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserSID, claims.UserSID)
		c.Set(constants.ContextKeyIsModerator, claims.Moderator)

		c.Next()
	}
}

// RequireModerator guards the moderation surface. It must run after
// RequireAuth.
func (m *AuthMiddleware) RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		moderator, exists := c.Get(constants.ContextKeyIsModerator)
		if !exists || !moderator.(bool) {
			utils.ErrorResponse(c, http.StatusForbidden, "moderator access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
