package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelagency/internal/config"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `id,
       COALESCE(name,''),
       COALESCE(username,''),
       COALESCE(email,''),
       COALESCE(phone,''),
       COALESCE(role,'user'),
       COALESCE(status,'active'),
       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// GetByLogin resolves email or username to the user plus password hash.
func (r UserRepository) GetByLogin(login string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(username,''), COALESCE(email,''),
		       COALESCE(phone,''), COALESCE(password_hash,''), COALESCE(role,'user'), COALESCE(status,'active')
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1
	`, login, login).Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.Phone,
		&hash,
		&u.Role,
		&u.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, "", domain.NotFoundError{Resource: "user"}
	}
	return u, hash, err
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	row := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id=? LIMIT 1`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

func (r UserRepository) ExistsByLogin(email, username string) (bool, error) {
	var count int
	err := r.db().QueryRow(`
		SELECT COUNT(*)
		FROM users
		WHERE email = ? OR username = ?
	`, email, username).Scan(&count)
	return count > 0, err
}

func (r UserRepository) Create(u models.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 'active', NOW(), NOW())
	`, u.Name, u.Username, u.Email, u.Phone, passwordHash, u.Role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
