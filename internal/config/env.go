package config

import (
	"os"
	"strings"
	"time"
)

type Env struct {
	AppAddr    string
	GinMode    string
	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string
	JWTSecret  string
	SessionTTL time.Duration
	CookieName string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dbUser := strings.TrimSpace(os.Getenv("DB_USER"))
	if dbUser == "" {
		dbUser = "root"
	}
	dbHost := strings.TrimSpace(os.Getenv("DB_HOST"))
	if dbHost == "" {
		dbHost = "127.0.0.1:3306"
	}
	dbName := strings.TrimSpace(os.Getenv("DB_NAME"))
	if dbName == "" {
		dbName = "travel_agency"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	ttl := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			ttl = d
		}
	}

	cookie := strings.TrimSpace(os.Getenv("SESSION_COOKIE"))
	if cookie == "" {
		cookie = "session_token"
	}

	return Env{
		AppAddr:    appAddr,
		GinMode:    strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:     dbUser,
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     dbHost,
		DBName:     dbName,
		JWTSecret:  secret,
		SessionTTL: ttl,
		CookieName: cookie,
	}
}
