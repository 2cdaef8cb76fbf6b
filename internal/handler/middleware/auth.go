package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"stagenight/internal/pkg/cookie"
	"stagenight/internal/pkg/jwt"
	"stagenight/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// TokenValidator decodes a session token issued by the credential subsystem.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxHouseholdIDKey = "household_id"
	ctxVolunteerKey   = "volunteer"
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		token = cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxHouseholdIDKey, claims.HouseholdID)
		c.Set(ctxVolunteerKey, claims.Volunteer)
		c.Set("jwt_claims", map[string]any{
			"household_id": claims.HouseholdID,
			"volunteer":    claims.Volunteer,
		})
		c.Next()
	}
}

// GetActor returns the authenticated household from context. Must be used
// behind RequireAuth().
func GetActor(c *gin.Context) (commands.Actor, bool) {
	householdID, exists := c.Get(ctxHouseholdIDKey)
	if !exists {
		return commands.Actor{}, false
	}
	id, ok := householdID.(string)
	if !ok {
		return commands.Actor{}, false
	}

	volunteer := false
	if v, exists := c.Get(ctxVolunteerKey); exists {
		volunteer, _ = v.(bool)
	}

	return commands.Actor{HouseholdID: id, Volunteer: volunteer}, true
}
