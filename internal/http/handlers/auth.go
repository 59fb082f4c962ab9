package handlers

import (
	"net/http"
	"time"

	intconfig "travelagency/internal/config"
	"travelagency/internal/http/middleware"
	"travelagency/internal/repositories"
	"travelagency/internal/services"

	"github.com/gin-gonic/gin"
)

var authEnv intconfig.Env

// InitAuth wires the auth handlers to the loaded environment. Called once by
// the router.
func InitAuth(env intconfig.Env) {
	authEnv = env
}

// AuthSvc builds the auth service for one request.
func AuthSvc(c *gin.Context) services.AuthService {
	return services.AuthService{
		UserRepo:    repositories.UserRepository{},
		SessionRepo: repositories.SessionRepository{},
		JWTSecret:   []byte(authEnv.JWTSecret),
		SessionTTL:  authEnv.SessionTTL,
		RequestID:   middleware.GetRequestID(c),
	}
}

func setSessionCookie(c *gin.Context, token string, expires time.Time) {
	maxAge := int(time.Until(expires).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authEnv.CookieName, token, maxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authEnv.CookieName, "", -1, "/", "", false, true)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	result, err := AuthSvc(c).Login(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	setSessionCookie(c, result.SessionToken, result.ExpiresAt)
	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

// POST /api/auth/logout
func Logout(c *gin.Context) {
	token, _ := c.Cookie(authEnv.CookieName)
	if err := AuthSvc(c).Logout(token); err != nil {
		RespondDomainError(c, err)
		return
	}
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GET /api/auth/session
func Session(c *gin.Context) {
	token, err := c.Cookie(authEnv.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}
	user, err := AuthSvc(c).Session(token)
	if err != nil {
		clearSessionCookie(c)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}
	user, err := AuthSvc(c).Register(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "registered",
		"user":    user,
	})
}
