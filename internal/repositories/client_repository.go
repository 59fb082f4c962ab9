package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelagency/internal/config"
	intdb "travelagency/internal/db"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
)

type ClientRepository struct {
	DB *sql.DB
}

func (r ClientRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const clientColumns = `id,
       COALESCE(name,''),
       COALESCE(company_name,''),
       COALESCE(email,''),
       COALESCE(phone,''),
       COALESCE(mobile,''),
       COALESCE(address,''),
       COALESCE(notes,''),
       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')`

func scanClient(row interface{ Scan(...any) error }) (models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.CompanyName,
		&c.Email,
		&c.Phone,
		&c.Mobile,
		&c.Address,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r ClientRepository) List(search string) ([]models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	args := []any{}
	if search != "" {
		query += ` WHERE name LIKE ? OR company_name LIKE ? OR phone LIKE ?`
		like := "%" + search + "%"
		args = append(args, like, like, like)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ClientRepository) GetByID(id int64) (models.Client, error) {
	if id <= 0 {
		return models.Client{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	row := r.db().QueryRow(`SELECT `+clientColumns+` FROM clients WHERE id=? LIMIT 1`, id)
	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, domain.NotFoundError{Resource: "client"}
	}
	return c, err
}

func (r ClientRepository) Create(c models.Client) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO clients (name, company_name, email, phone, mobile, address, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, c.Name, intdb.NullIfEmpty(c.CompanyName), intdb.NullIfEmpty(c.Email), c.Phone, c.Mobile, intdb.NullIfEmpty(c.Address), intdb.NullIfEmpty(c.Notes))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ClientRepository) Update(c models.Client) error {
	res, err := r.db().Exec(`
		UPDATE clients
		SET name=?, company_name=?, email=?, phone=?, mobile=?, address=?, notes=?, updated_at=NOW()
		WHERE id=?
	`, c.Name, intdb.NullIfEmpty(c.CompanyName), intdb.NullIfEmpty(c.Email), c.Phone, c.Mobile, intdb.NullIfEmpty(c.Address), intdb.NullIfEmpty(c.Notes), c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(c.ID); err != nil {
			return err
		}
	}
	return nil
}

// ReferenceCount counts trips, ticket bookings and quotations still pointing
// at the client. Deletion is refused while any exist.
func (r ClientRepository) ReferenceCount(id int64) (int64, error) {
	var total int64
	err := r.db().QueryRow(`
		SELECT (SELECT COUNT(*) FROM trips WHERE client_id=?)
		     + (SELECT COUNT(*) FROM ticket_bookings WHERE client_id=?)
		     + (SELECT COUNT(*) FROM quotations WHERE client_id=?)
	`, id, id, id).Scan(&total)
	return total, err
}

func (r ClientRepository) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	refs, err := r.ReferenceCount(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ConflictError{Resource: "client", Msg: "client is referenced by trips, bookings or quotations"}
	}
	res, err := r.db().Exec(`DELETE FROM clients WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "client"}
	}
	return nil
}
