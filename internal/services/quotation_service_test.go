package services

import (
	"testing"

	"travelagency/internal/domain"
	"travelagency/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var quotationCols = []string{
	"id", "client_id", "vehicle_id", "quote_date", "start_date", "no_of_days",
	"rate_per_day", "total_amount", "amount_paid", "status", "payment_status",
	"trip_id", "notes", "created_at", "updated_at",
}

func quotationRow(id int64, status string, tripID int64) *sqlmock.Rows {
	return sqlmock.NewRows(quotationCols).
		AddRow(id, 3, 2, "2025-02-01", "2025-02-10", 4, 5000, 20000, 0, status, "pending", tripID, "", "2025-02-01 09:00:00", "2025-02-01 09:00:00")
}

func newQuotationService(t *testing.T) (QuotationService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := QuotationService{
		QuotationRepo: repositories.QuotationRepository{DB: db},
		ClientRepo:    repositories.ClientRepository{DB: db},
		VehicleRepo:   repositories.VehicleRepository{DB: db},
		DB:            db,
	}
	return svc, mock, func() { db.Close() }
}

func TestQuotationIllegalTransitionRejected(t *testing.T) {
	svc, mock, done := newQuotationService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM quotations WHERE id=\\? FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(quotationRow(1, domain.QuotationStatusAccepted, 8))
	mock.ExpectRollback()

	_, err := svc.Cancel(1)
	if !domain.IsConflict(err) {
		t.Fatalf("accepted quotation is terminal, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQuotationAcceptMaterializesTrip(t *testing.T) {
	svc, mock, done := newQuotationService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM quotations WHERE id=\\? FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(quotationRow(1, domain.QuotationStatusSent, 0))
	mock.ExpectExec("INSERT INTO trips").
		WillReturnResult(sqlmock.NewResult(15, 1))
	mock.ExpectExec("UPDATE quotations").
		WithArgs(domain.QuotationStatusAccepted, int64(15), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM quotations WHERE id=\\? LIMIT 1").
		WithArgs(int64(1)).
		WillReturnRows(quotationRow(1, domain.QuotationStatusAccepted, 15))

	q, err := svc.Accept(1)
	if err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if q.Status != domain.QuotationStatusAccepted {
		t.Fatalf("status = %q, want accepted", q.Status)
	}
	if q.TripID != 15 {
		t.Fatalf("trip_id = %d, want 15", q.TripID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQuotationSendFromDraft(t *testing.T) {
	svc, mock, done := newQuotationService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM quotations WHERE id=\\? FOR UPDATE").
		WithArgs(int64(2)).
		WillReturnRows(quotationRow(2, domain.QuotationStatusDraft, 0))
	mock.ExpectExec("UPDATE quotations").
		WithArgs(domain.QuotationStatusSent, int64(0), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM quotations WHERE id=\\? LIMIT 1").
		WithArgs(int64(2)).
		WillReturnRows(quotationRow(2, domain.QuotationStatusSent, 0))

	q, err := svc.Send(2)
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if q.Status != domain.QuotationStatusSent {
		t.Fatalf("status = %q, want sent", q.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
