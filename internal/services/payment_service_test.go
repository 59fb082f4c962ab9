package services

import (
	"testing"

	"travelagency/internal/domain"
	"travelagency/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paymentCols = []string{
	"id", "target_type", "target_id", "reference", "amount", "method",
	"paid_at", "notes", "created_at",
}

func newPaymentService(t *testing.T) (PaymentService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := PaymentService{
		PaymentRepo: repositories.PaymentRepository{DB: db},
		DB:          db,
	}
	return svc, mock, func() { db.Close() }
}

func TestRecordPaymentRejectsUnknownTarget(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	_, _, err := svc.RecordPayment(RecordPaymentInput{TargetType: "invoice", TargetID: 1, Amount: 100})
	if !domain.IsValidation(err) {
		t.Fatalf("unknown target should fail validation, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no SQL should run on validation failure: %v", err)
	}
}

func TestRecordPaymentPartialMovesStatus(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM trips WHERE id=\\? FOR UPDATE").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "paid"}).AddRow(10000, 0))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(domain.PayTargetTrip, int64(5), "PAY-123", int64(4000), nil, nil).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE trips SET total_paid_amount=\\?").
		WithArgs(int64(4000), domain.PaymentStatusPartial, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM payments WHERE id=\\? LIMIT 1").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(paymentCols).
			AddRow(7, domain.PayTargetTrip, 5, "PAY-123", 4000, "", "2025-01-01 10:00:00", "", "2025-01-01 10:00:00"))

	payment, state, err := svc.RecordPayment(RecordPaymentInput{
		TargetType: "trip",
		TargetID:   5,
		Amount:     4000,
		Reference:  "PAY-123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), payment.ID)
	assert.Equal(t, domain.PaymentStatusPartial, state.Status)
	assert.Equal(t, int64(6000), state.PendingAmount)
	assert.Equal(t, state.TotalAmount, state.AmountPaid+state.PendingAmount)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM trips WHERE id=\\? FOR UPDATE").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "paid"}).AddRow(10000, 8000))
	mock.ExpectRollback()

	_, _, err := svc.RecordPayment(RecordPaymentInput{
		TargetType: "trip",
		TargetID:   5,
		Amount:     3000,
		Reference:  "PAY-124",
	})
	if !domain.IsOverpayment(err) {
		t.Fatalf("paying past the total should fail, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordPaymentReplayedReferenceRejected(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM trips WHERE id=\\? FOR UPDATE").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "paid"}).AddRow(10000, 0))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, _, err := svc.RecordPayment(RecordPaymentInput{
		TargetType: "trip",
		TargetID:   5,
		Amount:     4000,
		Reference:  "PAY-123",
	})
	if !domain.IsDuplicatePayment(err) {
		t.Fatalf("replayed reference should fail with DuplicatePayment, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordPaymentTicketTargetUsesPaidVocabulary(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM ticket_bookings WHERE id=\\? FOR UPDATE").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "paid"}).AddRow(5000, 3000))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(domain.PayTargetTicket, int64(9), "PAY-900", int64(2000), nil, nil).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("UPDATE ticket_bookings SET amount_paid=\\?").
		WithArgs(int64(5000), domain.TicketStatusPaid, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM payments WHERE id=\\? LIMIT 1").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(paymentCols).
			AddRow(11, domain.PayTargetTicket, 9, "PAY-900", 2000, "", "2025-01-01 10:00:00", "", "2025-01-01 10:00:00"))

	_, state, err := svc.RecordPayment(RecordPaymentInput{
		TargetType: "ticket-booking",
		TargetID:   9,
		Amount:     2000,
		Reference:  "PAY-900",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, state.Status)
	assert.Equal(t, int64(0), state.PendingAmount)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
