package repositories

import (
	"database/sql"
	"errors"
	"time"

	intconfig "travelagency/internal/config"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/utils"
)

type SessionRepository struct {
	DB *sql.DB
}

func (r SessionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SessionRepository) Create(token string, userID int64, ttl time.Duration) (models.Session, error) {
	expires := utils.NowUTC().Add(ttl)
	res, err := r.db().Exec(`
		INSERT INTO sessions (token, user_id, expires_at, created_at)
		VALUES (?, ?, ?, NOW())
	`, token, userID, expires.Format("2006-01-02 15:04:05"))
	if err != nil {
		return models.Session{}, err
	}
	id, _ := res.LastInsertId()
	return models.Session{
		ID:        id,
		Token:     token,
		UserID:    userID,
		ExpiresAt: expires.Format("2006-01-02 15:04:05"),
	}, nil
}

// ResolveUser maps a live session token to its user; expired tokens resolve
// to not found.
func (r SessionRepository) ResolveUser(token string) (models.User, error) {
	if token == "" {
		return models.User{}, domain.NotFoundError{Resource: "session"}
	}
	var u models.User
	err := r.db().QueryRow(`
		SELECT u.id, COALESCE(u.name,''), COALESCE(u.username,''), COALESCE(u.email,''),
		       COALESCE(u.phone,''), COALESCE(u.role,'user'), COALESCE(u.status,'active')
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = ? AND s.expires_at > UTC_TIMESTAMP()
		LIMIT 1
	`, token).Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "session"}
	}
	return u, err
}

func (r SessionRepository) Delete(token string) error {
	if token == "" {
		return nil
	}
	_, err := r.db().Exec(`DELETE FROM sessions WHERE token=?`, token)
	return err
}

// DeleteExpired clears stale rows; called opportunistically on login.
func (r SessionRepository) DeleteExpired() error {
	_, err := r.db().Exec(`DELETE FROM sessions WHERE expires_at <= UTC_TIMESTAMP()`)
	return err
}
