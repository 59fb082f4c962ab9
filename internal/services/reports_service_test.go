package services

import (
	"testing"

	"travelagency/internal/domain"
	"travelagency/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFundsReportNetsOutReversedPairs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(fundCols).
		AddRow(2, 0, 0, "buddha-airline", 10000, 10000, 0, domain.FundStatusReversalIn, 1, "reversal of entry 1", "2025-01-02 10:00:00", "2025-01-02 10:00:00").
		AddRow(1, 0, 0, "buddha-airline", 10000, 6000, 4000, domain.FundStatusReversedOut, 2, "", "2025-01-01 10:00:00", "2025-01-02 10:00:00").
		AddRow(3, 0, 0, "yeti-air", 5000, 5000, 0, domain.FundStatusCompleted, 0, "", "2025-01-03 10:00:00", "2025-01-03 10:00:00")
	mock.ExpectQuery("FROM fund_entries WHERE 1=1").WillReturnRows(rows)

	svc := ReportsService{FundsRepo: repositories.FundsRepository{DB: db}}
	statements, err := svc.FundsReport(FundsReportFilter{})
	require.NoError(t, err)
	require.Len(t, statements, 2)

	buddha := statements[0]
	assert.Equal(t, "buddha-airline", buddha.Pool.FundsFor)
	assert.Len(t, buddha.Entries, 2, "statement lists both sides of the pair")
	assert.Equal(t, int64(10000), buddha.Pool.TotalAllocated, "reversed-out side must not double the allocation")
	assert.Equal(t, int64(10000), buddha.Pool.AvailableFund, "reversal restores the full pool balance")
	assert.Equal(t, int64(0), buddha.Pool.UsedFund)

	yeti := statements[1]
	assert.Equal(t, int64(5000), yeti.Pool.TotalAllocated)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
