package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelagency/internal/config"
	intdb "travelagency/internal/db"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
)

type FundsRepository struct {
	DB *sql.DB
}

func (r FundsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const fundColumns = `id,
       COALESCE(client_id,0),
       COALESCE(ticket_booking_id,0),
       COALESCE(funds_for,''),
       COALESCE(total_fund,0),
       COALESCE(available_fund,0),
       COALESCE(used_fund,0),
       COALESCE(status,'completed'),
       COALESCE(reversed_fund_id,0),
       COALESCE(notes,''),
       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')`

func scanFund(row interface{ Scan(...any) error }) (models.FundEntry, error) {
	var e models.FundEntry
	err := row.Scan(
		&e.ID,
		&e.ClientID,
		&e.TicketBookingID,
		&e.FundsFor,
		&e.TotalFund,
		&e.AvailableFund,
		&e.UsedFund,
		&e.Status,
		&e.ReversedFundID,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

type FundFilter struct {
	FundsFor  string
	ClientID  int64
	Status    string
	StartDate string
	EndDate   string
}

func (r FundsRepository) List(f FundFilter) ([]models.FundEntry, error) {
	query := `SELECT ` + fundColumns + ` FROM fund_entries WHERE 1=1`
	args := []any{}
	if f.FundsFor != "" {
		query += ` AND funds_for=?`
		args = append(args, f.FundsFor)
	}
	if f.ClientID > 0 {
		query += ` AND client_id=?`
		args = append(args, f.ClientID)
	}
	if f.Status != "" {
		query += ` AND status=?`
		args = append(args, f.Status)
	}
	if f.StartDate != "" {
		query += ` AND created_at >= ?`
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		query += ` AND created_at <= ?`
		args = append(args, f.EndDate+" 23:59:59")
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FundEntry{}
	for rows.Next() {
		e, err := scanFund(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r FundsRepository) GetByID(id int64) (models.FundEntry, error) {
	if id <= 0 {
		return models.FundEntry{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	row := r.db().QueryRow(`SELECT `+fundColumns+` FROM fund_entries WHERE id=? LIMIT 1`, id)
	e, err := scanFund(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FundEntry{}, domain.NotFoundError{Resource: "fund entry"}
	}
	return e, err
}

// GetForUpdateTx locks the entry row for the duration of the transaction so
// allocate/use/reverse never race on the same balances.
func (r FundsRepository) GetForUpdateTx(tx *sql.Tx, id int64) (models.FundEntry, error) {
	row := tx.QueryRow(`SELECT `+fundColumns+` FROM fund_entries WHERE id=? FOR UPDATE`, id)
	e, err := scanFund(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FundEntry{}, domain.NotFoundError{Resource: "fund entry"}
	}
	return e, err
}

func (r FundsRepository) Insert(e models.FundEntry) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO fund_entries (client_id, ticket_booking_id, funds_for, total_fund, available_fund,
		                          used_fund, status, reversed_fund_id, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, nullIfZero(e.ClientID), nullIfZero(e.TicketBookingID), e.FundsFor, e.TotalFund, e.AvailableFund,
		e.UsedFund, e.Status, nullIfZero(e.ReversedFundID), intdb.NullIfEmpty(e.Notes))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r FundsRepository) InsertTx(tx *sql.Tx, e models.FundEntry) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO fund_entries (client_id, ticket_booking_id, funds_for, total_fund, available_fund,
		                          used_fund, status, reversed_fund_id, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, nullIfZero(e.ClientID), nullIfZero(e.TicketBookingID), e.FundsFor, e.TotalFund, e.AvailableFund,
		e.UsedFund, e.Status, nullIfZero(e.ReversedFundID), intdb.NullIfEmpty(e.Notes))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateBalancesTx rewrites the balance triple of one locked entry.
func (r FundsRepository) UpdateBalancesTx(tx *sql.Tx, id, available, used int64) error {
	_, err := tx.Exec(`
		UPDATE fund_entries
		SET available_fund=?, used_fund=?, updated_at=NOW()
		WHERE id=?
	`, available, used, id)
	return err
}

// MarkReversedTx freezes the original side of a reversal pair.
func (r FundsRepository) MarkReversedTx(tx *sql.Tx, id, pairID int64) error {
	_, err := tx.Exec(`
		UPDATE fund_entries
		SET status=?, reversed_fund_id=?, updated_at=NOW()
		WHERE id=?
	`, domain.FundStatusReversedOut, pairID, id)
	return err
}

// Pools rolls up non-reversed entries per airline pool key.
func (r FundsRepository) Pools() ([]models.FundPool, error) {
	rows, err := r.db().Query(`
		SELECT funds_for,
		       COALESCE(SUM(total_fund),0),
		       COALESCE(SUM(available_fund),0),
		       COALESCE(SUM(used_fund),0),
		       COUNT(*)
		FROM fund_entries
		WHERE status <> ?
		GROUP BY funds_for
		ORDER BY funds_for ASC
	`, domain.FundStatusReversedOut)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.FundPool{}
	for rows.Next() {
		var p models.FundPool
		if err := rows.Scan(&p.FundsFor, &p.TotalAllocated, &p.AvailableFund, &p.UsedFund, &p.Entries); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func nullIfZero(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}
