package services

import (
	"fmt"
	"strings"
	"time"

	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"
	"travelagency/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService owns login/logout/session. A login creates one session row
// whose opaque token travels in an HttpOnly cookie; a JWT is issued alongside
// for header-based API clients. There is no process-global auth state.
type AuthService struct {
	UserRepo    repositories.UserRepository
	SessionRepo repositories.SessionRepository
	JWTSecret   []byte
	SessionTTL  time.Duration
	RequestID   string
}

// LoginResult is what the login endpoint returns plus the cookie material.
type LoginResult struct {
	User         models.User
	Token        string // JWT for Authorization headers
	SessionToken string // opaque cookie value
	ExpiresAt    time.Time
}

func (s AuthService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return 24 * time.Hour
}

func (s AuthService) Login(login, password string) (LoginResult, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return LoginResult{}, domain.ValidationError{Msg: "email/username and password are required"}
	}

	user, hash, err := s.UserRepo.GetByLogin(login)
	if err != nil {
		if domain.IsNotFound(err) {
			return LoginResult{}, domain.ValidationError{Msg: "wrong email/username or password"}
		}
		return LoginResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return LoginResult{}, domain.ValidationError{Msg: "wrong email/username or password"}
	}
	if user.Status != "active" {
		return LoginResult{}, domain.ConflictError{Resource: "user", Msg: "account is not active"}
	}

	// Housekeeping; stale sessions are harmless but pile up.
	_ = s.SessionRepo.DeleteExpired()

	sessionToken := uuid.NewString()
	if _, err := s.SessionRepo.Create(sessionToken, user.ID, s.ttl()); err != nil {
		return LoginResult{}, err
	}

	expires := utils.NowUTC().Add(s.ttl())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     expires.Unix(),
	})
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return LoginResult{}, domain.InternalError{Msg: "could not sign token", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", user.ID))
	return LoginResult{
		User:         user,
		Token:        signed,
		SessionToken: sessionToken,
		ExpiresAt:    expires,
	}, nil
}

func (s AuthService) Logout(sessionToken string) error {
	if strings.TrimSpace(sessionToken) == "" {
		return nil
	}
	utils.LogEvent(s.RequestID, "auth", "logout", "session cleared")
	return s.SessionRepo.Delete(sessionToken)
}

// Session resolves a cookie token to its user.
func (s AuthService) Session(sessionToken string) (models.User, error) {
	return s.SessionRepo.ResolveUser(sessionToken)
}

// VerifyJWT resolves a bearer token to its user for header-based clients.
func (s AuthService) VerifyJWT(tokenString string) (models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return models.User{}, domain.NotFoundError{Resource: "session"}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "session"}
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return models.User{}, domain.NotFoundError{Resource: "session"}
	}
	return s.UserRepo.GetByID(int64(rawID))
}

type RegisterInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (s AuthService) Register(in RegisterInput) (models.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	if in.Email == "" || in.Username == "" || in.Password == "" {
		return models.User{}, domain.ValidationError{Msg: "username, email and password are required"}
	}
	if len(in.Password) < 8 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "must be at least 8 characters"}
	}

	exists, err := s.UserRepo.ExistsByLogin(in.Email, in.Username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email or username already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "could not hash password", Err: err}
	}

	user := models.User{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
		Phone:    in.Phone,
		Role:     "user",
		Status:   "active",
	}
	id, err := s.UserRepo.Create(user, string(hash))
	if err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d", id))
	return s.UserRepo.GetByID(id)
}
