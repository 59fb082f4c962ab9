package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelagency/internal/config"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vehicleColumns = `id,
       COALESCE(code,''),
       COALESCE(name,''),
       COALESCE(plate_number,''),
       COALESCE(seat_capacity,0),
       COALESCE(rate_per_day,0),
       COALESCE(status,'active'),
       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')`

func scanVehicle(row interface{ Scan(...any) error }) (models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(
		&v.ID,
		&v.Code,
		&v.Name,
		&v.PlateNumber,
		&v.SeatCapacity,
		&v.RatePerDay,
		&v.Status,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}

func (r VehicleRepository) List(status string) ([]models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	args := []any{}
	if status != "" {
		query += ` WHERE status=?`
		args = append(args, status)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VehicleRepository) GetByID(id int64) (models.Vehicle, error) {
	if id <= 0 {
		return models.Vehicle{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	row := r.db().QueryRow(`SELECT `+vehicleColumns+` FROM vehicles WHERE id=? LIMIT 1`, id)
	v, err := scanVehicle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vehicle{}, domain.NotFoundError{Resource: "vehicle"}
	}
	return v, err
}

func (r VehicleRepository) Create(v models.Vehicle) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicles (code, name, plate_number, seat_capacity, rate_per_day, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, v.Code, v.Name, v.PlateNumber, v.SeatCapacity, v.RatePerDay, v.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r VehicleRepository) Update(v models.Vehicle) error {
	res, err := r.db().Exec(`
		UPDATE vehicles
		SET code=?, name=?, plate_number=?, seat_capacity=?, rate_per_day=?, status=?, updated_at=NOW()
		WHERE id=?
	`, v.Code, v.Name, v.PlateNumber, v.SeatCapacity, v.RatePerDay, v.Status, v.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(v.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r VehicleRepository) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	var refs int64
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM trips WHERE vehicle_id=?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return domain.ConflictError{Resource: "vehicle", Msg: "vehicle has trips on record"}
	}
	res, err := r.db().Exec(`DELETE FROM vehicles WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}
