package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelagency/internal/config"
	intdb "travelagency/internal/db"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
)

type QuotationRepository struct {
	DB *sql.DB
}

func (r QuotationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const quotationColumns = `id,
       COALESCE(client_id,0),
       COALESCE(vehicle_id,0),
       COALESCE(DATE_FORMAT(quote_date,'%Y-%m-%d'),''),
       COALESCE(DATE_FORMAT(start_date,'%Y-%m-%d'),''),
       COALESCE(no_of_days,0),
       COALESCE(rate_per_day,0),
       COALESCE(total_amount,0),
       COALESCE(amount_paid,0),
       COALESCE(status,'draft'),
       COALESCE(payment_status,'pending'),
       COALESCE(trip_id,0),
       COALESCE(notes,''),
       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')`

func scanQuotation(row interface{ Scan(...any) error }) (models.Quotation, error) {
	var q models.Quotation
	err := row.Scan(
		&q.ID,
		&q.ClientID,
		&q.VehicleID,
		&q.Date,
		&q.StartDate,
		&q.NoOfDays,
		&q.RatePerDay,
		&q.TotalAmount,
		&q.AmountPaid,
		&q.Status,
		&q.PaymentStatus,
		&q.TripID,
		&q.Notes,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	return q, err
}

type QuotationFilter struct {
	ClientID int64
	Status   string
}

func (r QuotationRepository) List(f QuotationFilter) ([]models.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE 1=1`
	args := []any{}
	if f.ClientID > 0 {
		query += ` AND client_id=?`
		args = append(args, f.ClientID)
	}
	if f.Status != "" {
		query += ` AND status=?`
		args = append(args, f.Status)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Quotation{}
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r QuotationRepository) GetByID(id int64) (models.Quotation, error) {
	if id <= 0 {
		return models.Quotation{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	row := r.db().QueryRow(`SELECT `+quotationColumns+` FROM quotations WHERE id=? LIMIT 1`, id)
	q, err := scanQuotation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Quotation{}, domain.NotFoundError{Resource: "quotation"}
	}
	return q, err
}

// GetForUpdateTx locks the quotation row so lifecycle transitions are atomic.
func (r QuotationRepository) GetForUpdateTx(tx *sql.Tx, id int64) (models.Quotation, error) {
	row := tx.QueryRow(`SELECT `+quotationColumns+` FROM quotations WHERE id=? FOR UPDATE`, id)
	q, err := scanQuotation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Quotation{}, domain.NotFoundError{Resource: "quotation"}
	}
	return q, err
}

func (r QuotationRepository) Create(q models.Quotation) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO quotations (client_id, vehicle_id, quote_date, start_date, no_of_days, rate_per_day,
		                        total_amount, amount_paid, status, payment_status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?, NOW(), NOW())
	`, q.ClientID, q.VehicleID, q.Date, intdb.NullIfEmpty(q.StartDate), q.NoOfDays, q.RatePerDay,
		q.TotalAmount, domain.QuotationStatusDraft, domain.PaymentStatusPending, intdb.NullIfEmpty(q.Notes))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites the priced fields. Only draft quotations are editable; the
// service enforces that before calling here.
func (r QuotationRepository) Update(q models.Quotation) error {
	res, err := r.db().Exec(`
		UPDATE quotations
		SET client_id=?, vehicle_id=?, quote_date=?, start_date=?, no_of_days=?, rate_per_day=?,
		    total_amount=?, notes=?, updated_at=NOW()
		WHERE id=?
	`, q.ClientID, q.VehicleID, q.Date, intdb.NullIfEmpty(q.StartDate), q.NoOfDays, q.RatePerDay,
		q.TotalAmount, intdb.NullIfEmpty(q.Notes), q.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(q.ID); err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatusTx moves the lifecycle inside a transaction; tripID is written
// when an acceptance materialized a trip from the quotation.
func (r QuotationRepository) UpdateStatusTx(tx *sql.Tx, id int64, status string, tripID int64) error {
	_, err := tx.Exec(`
		UPDATE quotations
		SET status=?, trip_id=COALESCE(NULLIF(?,0), trip_id), updated_at=NOW()
		WHERE id=?
	`, status, tripID, id)
	return err
}

func (r QuotationRepository) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	q, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if q.Status != domain.QuotationStatusDraft {
		return domain.ConflictError{Resource: "quotation", Msg: "only draft quotations can be deleted"}
	}
	_, err = r.db().Exec(`DELETE FROM quotations WHERE id=?`, id)
	return err
}

// CreateTripFromTx materializes a trip record from an accepted quotation,
// inside the same transaction as the status flip.
func (r QuotationRepository) CreateTripFromTx(tx *sql.Tx, q models.Quotation) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO trips (client_id, vehicle_id, start_date, no_of_days, rate_per_day,
		                   total_amount, total_paid_amount, payment_status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, q.ClientID, q.VehicleID, intdb.NullIfEmpty(q.StartDate), q.NoOfDays, q.RatePerDay,
		q.TotalAmount, q.AmountPaid, domain.DerivePaymentStatus(q.AmountPaid, q.TotalAmount),
		intdb.NullIfEmpty(q.Notes))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
