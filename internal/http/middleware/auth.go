package middleware

import (
	"net/http"
	"strings"

	"travelagency/internal/domain/models"
	"travelagency/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	userKey     = "auth_user"
	userRoleKey = "userRole"
)

// Auth resolves the session cookie or a bearer JWT into a user and aborts
// with 401 when neither is valid.
func Auth(svc services.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, svc, cookieName)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(userKey, user)
		c.Set(userRoleKey, user.Role)
		c.Next()
	}
}

func resolveUser(c *gin.Context, svc services.AuthService, cookieName string) (models.User, bool) {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		if user, err := svc.Session(token); err == nil {
			return user, true
		}
	}
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if user, err := svc.VerifyJWT(raw); err == nil {
			return user, true
		}
	}
	return models.User{}, false
}

// CurrentUser extracts the resolved user from the request context.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// RequireRoles only lets requests whose resolved role is in allowedRoles
// through. Assumes Auth ran earlier in the chain.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(userRoleKey)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized: no role on context",
			})
			return
		}
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(role))]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden: role not allowed",
			})
			return
		}
		c.Next()
	}
}
