package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelagency/internal/config"
	intdb "travelagency/internal/db"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
)

type TicketRepository struct {
	DB *sql.DB
}

func (r TicketRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const ticketColumns = `id,
       COALESCE(client_id,0),
       COALESCE(trip_type,''),
       COALESCE(airline,''),
       COALESCE(sector,''),
       COALESCE(DATE_FORMAT(travel_date,'%Y-%m-%d'),''),
       COALESCE(DATE_FORMAT(return_date,'%Y-%m-%d'),''),
       COALESCE(adults,0),
       COALESCE(children,0),
       COALESCE(base_fare,0),
       COALESCE(taxes_and_fees,0),
       COALESCE(total_amount,0),
       COALESCE(amount_paid,0),
       COALESCE(payment_status,'pending'),
       COALESCE(ticket_numbers,''),
       COALESCE(passenger_names,''),
       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),''),
       COALESCE(DATE_FORMAT(updated_at,'%Y-%m-%d %H:%i:%s'),'')`

func scanTicket(row interface{ Scan(...any) error }) (models.TicketBooking, error) {
	var b models.TicketBooking
	err := row.Scan(
		&b.ID,
		&b.ClientID,
		&b.TripType,
		&b.Airline,
		&b.Sector,
		&b.TravelDate,
		&b.ReturnDate,
		&b.Adults,
		&b.Children,
		&b.BaseFare,
		&b.TaxesAndFees,
		&b.TotalAmount,
		&b.AmountPaid,
		&b.PaymentStatus,
		&b.TicketNumbers,
		&b.PassengerNames,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

type TicketFilter struct {
	ClientID      int64
	Airline       string
	PaymentStatus string
}

func (r TicketRepository) List(f TicketFilter) ([]models.TicketBooking, error) {
	query := `SELECT ` + ticketColumns + ` FROM ticket_bookings WHERE 1=1`
	args := []any{}
	if f.ClientID > 0 {
		query += ` AND client_id=?`
		args = append(args, f.ClientID)
	}
	if f.Airline != "" {
		query += ` AND airline=?`
		args = append(args, f.Airline)
	}
	if f.PaymentStatus != "" {
		query += ` AND payment_status=?`
		args = append(args, f.PaymentStatus)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TicketBooking{}
	for rows.Next() {
		b, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r TicketRepository) GetByID(id int64) (models.TicketBooking, error) {
	if id <= 0 {
		return models.TicketBooking{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	row := r.db().QueryRow(`SELECT `+ticketColumns+` FROM ticket_bookings WHERE id=? LIMIT 1`, id)
	b, err := scanTicket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TicketBooking{}, domain.NotFoundError{Resource: "ticket booking"}
	}
	return b, err
}

func (r TicketRepository) Create(b models.TicketBooking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO ticket_bookings (client_id, trip_type, airline, sector, travel_date, return_date,
		                             adults, children, base_fare, taxes_and_fees, total_amount,
		                             amount_paid, payment_status, ticket_numbers, passenger_names,
		                             created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?, NOW(), NOW())
	`, b.ClientID, b.TripType, b.Airline, b.Sector, intdb.NullIfEmpty(b.TravelDate), intdb.NullIfEmpty(b.ReturnDate),
		b.Adults, b.Children, b.BaseFare, b.TaxesAndFees, b.TotalAmount,
		domain.TicketStatusPending, intdb.NullIfEmpty(b.TicketNumbers), intdb.NullIfEmpty(b.PassengerNames))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TicketRepository) Update(b models.TicketBooking) error {
	res, err := r.db().Exec(`
		UPDATE ticket_bookings
		SET client_id=?, trip_type=?, airline=?, sector=?, travel_date=?, return_date=?,
		    adults=?, children=?, base_fare=?, taxes_and_fees=?, total_amount=?,
		    ticket_numbers=?, passenger_names=?, updated_at=NOW()
		WHERE id=?
	`, b.ClientID, b.TripType, b.Airline, b.Sector, intdb.NullIfEmpty(b.TravelDate), intdb.NullIfEmpty(b.ReturnDate),
		b.Adults, b.Children, b.BaseFare, b.TaxesAndFees, b.TotalAmount,
		intdb.NullIfEmpty(b.TicketNumbers), intdb.NullIfEmpty(b.PassengerNames), b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(b.ID); err != nil {
			return err
		}
	}
	return nil
}

// UpdatePaymentStatus flips the booking lifecycle state. Used by the funds
// ledger (use -> paid) and the refund flow (paid -> refunded).
func (r TicketRepository) UpdatePaymentStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE ticket_bookings SET payment_status=?, updated_at=NOW() WHERE id=?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}

// UpdatePaymentStatusTx is the transactional variant used inside ledger and
// reconciliation writes.
func (r TicketRepository) UpdatePaymentStatusTx(tx *sql.Tx, id int64, status string) error {
	_, err := tx.Exec(`UPDATE ticket_bookings SET payment_status=?, updated_at=NOW() WHERE id=?`, status, id)
	return err
}

func (r TicketRepository) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	var status string
	if err := r.db().QueryRow(`SELECT COALESCE(payment_status,'pending') FROM ticket_bookings WHERE id=?`, id).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "ticket booking"}
		}
		return err
	}
	if status == domain.TicketStatusPaid {
		return domain.ConflictError{Resource: "ticket booking", Msg: "paid booking must be refunded before delete"}
	}
	_, err := r.db().Exec(`DELETE FROM ticket_bookings WHERE id=?`, id)
	return err
}
