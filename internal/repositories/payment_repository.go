package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelagency/internal/config"
	intdb "travelagency/internal/db"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const paymentColumns = `id,
       COALESCE(target_type,''),
       COALESCE(target_id,0),
       COALESCE(reference,''),
       COALESCE(amount,0),
       COALESCE(method,''),
       COALESCE(DATE_FORMAT(paid_at,'%Y-%m-%d %H:%i:%s'),''),
       COALESCE(notes,''),
       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')`

func scanPayment(row interface{ Scan(...any) error }) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.ID,
		&p.TargetType,
		&p.TargetID,
		&p.Reference,
		&p.Amount,
		&p.Method,
		&p.PaidAt,
		&p.Notes,
		&p.CreatedAt,
	)
	return p, err
}

type PaymentFilter struct {
	TargetType string
	TargetID   int64
}

func (r PaymentRepository) List(f PaymentFilter) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE 1=1`
	args := []any{}
	if f.TargetType != "" {
		query += ` AND target_type=?`
		args = append(args, f.TargetType)
	}
	if f.TargetID > 0 {
		query += ` AND target_id=?`
		args = append(args, f.TargetID)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PaymentRepository) GetByID(id int64) (models.Payment, error) {
	if id <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	row := r.db().QueryRow(`SELECT `+paymentColumns+` FROM payments WHERE id=? LIMIT 1`, id)
	p, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, domain.NotFoundError{Resource: "payment"}
	}
	return p, err
}

// InsertTx writes the immutable payment row. The unique index on reference
// turns a replayed idempotency key into a DuplicatePaymentError.
func (r PaymentRepository) InsertTx(tx *sql.Tx, p models.Payment) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO payments (target_type, target_id, reference, amount, method, paid_at, notes, created_at)
		VALUES (?, ?, ?, ?, ?, NOW(), ?, NOW())
	`, p.TargetType, p.TargetID, p.Reference, p.Amount, intdb.NullIfEmpty(p.Method), intdb.NullIfEmpty(p.Notes))
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == 1062 {
			return 0, domain.DuplicatePaymentError{Reference: p.Reference}
		}
		return 0, err
	}
	return res.LastInsertId()
}

// TargetStateTx reads and locks the reconciliation view of a payment target.
func (r PaymentRepository) TargetStateTx(tx *sql.Tx, targetType string, targetID int64) (models.PaymentState, error) {
	var query string
	switch targetType {
	case domain.PayTargetTrip:
		query = `SELECT COALESCE(total_amount,0), COALESCE(total_paid_amount,0) FROM trips WHERE id=? FOR UPDATE`
	case domain.PayTargetQuotation:
		query = `SELECT COALESCE(total_amount,0), COALESCE(amount_paid,0) FROM quotations WHERE id=? FOR UPDATE`
	case domain.PayTargetTicket:
		query = `SELECT COALESCE(total_amount,0), COALESCE(amount_paid,0) FROM ticket_bookings WHERE id=? FOR UPDATE`
	default:
		return models.PaymentState{}, domain.ValidationError{Field: "targetType", Msg: "unknown payment target"}
	}

	st := models.PaymentState{TargetType: targetType, TargetID: targetID}
	if err := tx.QueryRow(query, targetID).Scan(&st.TotalAmount, &st.AmountPaid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PaymentState{}, domain.NotFoundError{Resource: targetType}
		}
		return models.PaymentState{}, err
	}
	st.PendingAmount = st.TotalAmount - st.AmountPaid
	st.Status = domain.DerivePaymentStatus(st.AmountPaid, st.TotalAmount)
	return st, nil
}

// ApplyToTargetTx pushes the recomputed paid total and derived status back
// onto the target row.
func (r PaymentRepository) ApplyToTargetTx(tx *sql.Tx, targetType string, targetID, amountPaid int64, status string) error {
	var query string
	switch targetType {
	case domain.PayTargetTrip:
		query = `UPDATE trips SET total_paid_amount=?, payment_status=?, updated_at=NOW() WHERE id=?`
	case domain.PayTargetQuotation:
		query = `UPDATE quotations SET amount_paid=?, payment_status=?, updated_at=NOW() WHERE id=?`
	case domain.PayTargetTicket:
		query = `UPDATE ticket_bookings SET amount_paid=?, payment_status=?, updated_at=NOW() WHERE id=?`
	default:
		return domain.ValidationError{Field: "targetType", Msg: "unknown payment target"}
	}
	_, err := tx.Exec(query, amountPaid, status, targetID)
	return err
}
