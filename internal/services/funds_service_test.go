package services

import (
	"testing"

	"travelagency/internal/domain"
	"travelagency/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fundCols = []string{
	"id", "client_id", "ticket_booking_id", "funds_for", "total_fund",
	"available_fund", "used_fund", "status", "reversed_fund_id", "notes",
	"created_at", "updated_at",
}

func fundRow(id, total, available, used int64, status string, reversedID int64) *sqlmock.Rows {
	return sqlmock.NewRows(fundCols).
		AddRow(id, 0, 0, "buddha-airline", total, available, used, status, reversedID, "", "2025-01-01 10:00:00", "2025-01-01 10:00:00")
}

func newFundsService(t *testing.T) (FundsService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := FundsService{
		FundsRepo:  repositories.FundsRepository{DB: db},
		TicketRepo: repositories.TicketRepository{DB: db},
		DB:         db,
	}
	return svc, mock, func() { db.Close() }
}

func TestAllocateRejectsBadInput(t *testing.T) {
	svc, mock, done := newFundsService(t)
	defer done()

	_, err := svc.Allocate(AllocateFundsInput{FundsFor: "  ", Amount: 1000})
	if !domain.IsValidation(err) {
		t.Fatalf("empty pool should fail validation, got %v", err)
	}

	_, err = svc.Allocate(AllocateFundsInput{FundsFor: "Buddha Airline", Amount: 0})
	if !domain.IsValidation(err) {
		t.Fatalf("zero amount should fail validation, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no SQL should run on validation failure: %v", err)
	}
}

func TestAllocateNormalizesPoolAndOpensFullAvailable(t *testing.T) {
	svc, mock, done := newFundsService(t)
	defer done()

	mock.ExpectExec("INSERT INTO fund_entries").
		WithArgs(nil, nil, "buddha-airline", int64(10000), int64(10000), int64(0), domain.FundStatusCompleted, nil, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("FROM fund_entries WHERE id=\\? LIMIT 1").
		WithArgs(int64(1)).
		WillReturnRows(fundRow(1, 10000, 10000, 0, domain.FundStatusCompleted, 0))

	entry, err := svc.Allocate(AllocateFundsInput{FundsFor: "Buddha Airline", Amount: 10000})
	require.NoError(t, err)
	assert.Equal(t, "buddha-airline", entry.FundsFor)
	assert.Equal(t, entry.TotalFund, entry.AvailableFund+entry.UsedFund, "conservation must hold after allocate")
	assert.Equal(t, int64(10000), entry.AvailableFund)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUseMovesAvailableToUsed(t *testing.T) {
	svc, mock, done := newFundsService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM fund_entries WHERE id=\\? FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(fundRow(1, 10000, 10000, 0, domain.FundStatusCompleted, 0))
	mock.ExpectExec("SET available_fund=\\?, used_fund=\\?").
		WithArgs(int64(6000), int64(4000), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM fund_entries WHERE id=\\? LIMIT 1").
		WithArgs(int64(1)).
		WillReturnRows(fundRow(1, 10000, 6000, 4000, domain.FundStatusCompleted, 0))

	entry, err := svc.Use(1, UseFundsInput{Amount: 4000})
	require.NoError(t, err)
	assert.Equal(t, entry.TotalFund, entry.AvailableFund+entry.UsedFund, "conservation must hold after use")
	assert.Equal(t, int64(6000), entry.AvailableFund)
	assert.Equal(t, int64(4000), entry.UsedFund)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUseRejectsMoreThanAvailable(t *testing.T) {
	svc, mock, done := newFundsService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM fund_entries WHERE id=\\? FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(fundRow(1, 10000, 1000, 9000, domain.FundStatusCompleted, 0))
	mock.ExpectRollback()

	_, err := svc.Use(1, UseFundsInput{Amount: 4000})
	if !domain.IsInsufficientFunds(err) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUseMarksLinkedTicketPaid(t *testing.T) {
	svc, mock, done := newFundsService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM fund_entries WHERE id=\\? FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(fundRow(1, 10000, 10000, 0, domain.FundStatusCompleted, 0))
	mock.ExpectExec("SET available_fund=\\?, used_fund=\\?").
		WithArgs(int64(4000), int64(6000), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE ticket_bookings").
		WithArgs(domain.TicketStatusPaid, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM fund_entries WHERE id=\\? LIMIT 1").
		WithArgs(int64(1)).
		WillReturnRows(fundRow(1, 10000, 4000, 6000, domain.FundStatusCompleted, 0))

	_, err := svc.Use(1, UseFundsInput{Amount: 6000, TicketBookingID: 42})
	require.NoError(t, err)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReverseCreatesLinkedPairAndFreezesOriginal(t *testing.T) {
	svc, mock, done := newFundsService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM fund_entries WHERE id=\\? FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(fundRow(1, 10000, 6000, 4000, domain.FundStatusCompleted, 0))
	mock.ExpectExec("INSERT INTO fund_entries").
		WithArgs(nil, nil, "buddha-airline", int64(10000), int64(10000), int64(0), domain.FundStatusReversalIn, int64(1), "reversal of entry 1").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("SET status=\\?, reversed_fund_id=\\?").
		WithArgs(domain.FundStatusReversedOut, int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM fund_entries WHERE id=\\? LIMIT 1").
		WithArgs(int64(1)).
		WillReturnRows(fundRow(1, 10000, 6000, 4000, domain.FundStatusReversedOut, 2))
	mock.ExpectQuery("FROM fund_entries WHERE id=\\? LIMIT 1").
		WithArgs(int64(2)).
		WillReturnRows(fundRow(2, 10000, 10000, 0, domain.FundStatusReversalIn, 1))

	pair, err := svc.Reverse(1)
	require.NoError(t, err)
	assert.Equal(t, domain.FundStatusReversedOut, pair.Original.Status)
	assert.Equal(t, domain.FundStatusReversalIn, pair.Reversal.Status)
	assert.Equal(t, pair.Original.ID, pair.Reversal.ReversedFundID, "pair must link back to the original")
	assert.Equal(t, pair.Original.TotalFund, pair.Reversal.AvailableFund, "reversal restores the full allocation as available")
	assert.Equal(t, pair.Reversal.TotalFund, pair.Reversal.AvailableFund+pair.Reversal.UsedFund)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReverseTwiceFails(t *testing.T) {
	svc, mock, done := newFundsService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM fund_entries WHERE id=\\? FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(fundRow(1, 10000, 6000, 4000, domain.FundStatusReversedOut, 2))
	mock.ExpectRollback()

	_, err := svc.Reverse(1)
	if !domain.IsAlreadyReversed(err) {
		t.Fatalf("second reverse should fail with AlreadyReversed, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUseOnReversedEntryFails(t *testing.T) {
	svc, mock, done := newFundsService(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM fund_entries WHERE id=\\? FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(fundRow(1, 10000, 6000, 4000, domain.FundStatusReversedOut, 2))
	mock.ExpectRollback()

	_, err := svc.Use(1, UseFundsInput{Amount: 1000})
	if !domain.IsAlreadyReversed(err) {
		t.Fatalf("use on reversed-out entry should fail, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
