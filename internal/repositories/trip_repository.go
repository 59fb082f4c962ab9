package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelagency/internal/config"
	intdb "travelagency/internal/db"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `id,
       COALESCE(client_id,0),
       COALESCE(vehicle_id,0),
       COALESCE(DATE_FORMAT(start_date,'%Y-%m-%d'),''),
       COALESCE(no_of_days,0),
       COALESCE(rate_per_day,0),
       COALESCE(km_out,0),
       COALESCE(km_in,0),
       COALESCE(total_amount,0),
       COALESCE(total_paid_amount,0),
       COALESCE(payment_status,'pending'),
       COALESCE(notes,''),
       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')`

func scanTrip(row interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(
		&t.ID,
		&t.ClientID,
		&t.VehicleID,
		&t.StartDate,
		&t.NoOfDays,
		&t.RatePerDay,
		&t.KmOut,
		&t.KmIn,
		&t.TotalAmount,
		&t.TotalPaidAmount,
		&t.PaymentStatus,
		&t.Notes,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err == nil {
		t.BalanceDue = t.TotalAmount - t.TotalPaidAmount
	}
	return t, err
}

type TripFilter struct {
	ClientID  int64
	VehicleID int64
	StartDate string
	EndDate   string
}

func (r TripRepository) List(f TripFilter) ([]models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE 1=1`
	args := []any{}
	if f.ClientID > 0 {
		query += ` AND client_id=?`
		args = append(args, f.ClientID)
	}
	if f.VehicleID > 0 {
		query += ` AND vehicle_id=?`
		args = append(args, f.VehicleID)
	}
	if f.StartDate != "" {
		query += ` AND start_date >= ?`
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		query += ` AND start_date <= ?`
		args = append(args, f.EndDate)
	}
	query += ` ORDER BY start_date DESC, id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	if id <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	row := r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id=? LIMIT 1`, id)
	t, err := scanTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	return t, err
}

func (r TripRepository) Create(t models.Trip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips (client_id, vehicle_id, start_date, no_of_days, rate_per_day, km_out, km_in,
		                   total_amount, total_paid_amount, payment_status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, NOW(), NOW())
	`, t.ClientID, t.VehicleID, t.StartDate, t.NoOfDays, t.RatePerDay, t.KmOut, t.KmIn,
		t.TotalAmount, domain.PaymentStatusPending, intdb.NullIfEmpty(t.Notes))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripRepository) Update(t models.Trip) error {
	res, err := r.db().Exec(`
		UPDATE trips
		SET client_id=?, vehicle_id=?, start_date=?, no_of_days=?, rate_per_day=?, km_out=?, km_in=?,
		    total_amount=?, payment_status=?, notes=?, updated_at=NOW()
		WHERE id=?
	`, t.ClientID, t.VehicleID, t.StartDate, t.NoOfDays, t.RatePerDay, t.KmOut, t.KmIn,
		t.TotalAmount, t.PaymentStatus, intdb.NullIfEmpty(t.Notes), t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(t.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r TripRepository) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	var paid int64
	if err := r.db().QueryRow(`SELECT COALESCE(total_paid_amount,0) FROM trips WHERE id=?`, id).Scan(&paid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "trip"}
		}
		return err
	}
	if paid > 0 {
		return domain.ConflictError{Resource: "trip", Msg: "trip has recorded payments"}
	}
	_, err := r.db().Exec(`DELETE FROM trips WHERE id=?`, id)
	return err
}

// Outstanding lists trips whose balance due is still positive.
func (r TripRepository) Outstanding() ([]models.Trip, error) {
	rows, err := r.db().Query(`SELECT ` + tripColumns + ` FROM trips
		WHERE COALESCE(total_amount,0) > COALESCE(total_paid_amount,0)
		ORDER BY start_date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
