package services

import (
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"
	"travelagency/internal/utils"
)

type FundsReportFilter struct {
	FundsFor  string
	StartDate string
	EndDate   string
}

// FundsStatement is one pool's rollup plus the entries behind it.
type FundsStatement struct {
	Pool    models.FundPool    `json:"pool"`
	Entries []models.FundEntry `json:"entries"`
}

// OutstandingReport lists everything still carrying a balance due.
type OutstandingReport struct {
	Trips   []models.Trip          `json:"trips"`
	Tickets []models.TicketBooking `json:"tickets"`
}

type ReportsService struct {
	FundsRepo  repositories.FundsRepository
	TripRepo   repositories.TripRepository
	TicketRepo repositories.TicketRepository
}

// FundsReport returns per-pool statements, optionally narrowed to one pool
// and a date range. Pool totals are recomputed from the returned entries so
// the statement always reconciles with its own rows.
func (s ReportsService) FundsReport(f FundsReportFilter) ([]FundsStatement, error) {
	entries, err := s.FundsRepo.List(repositories.FundFilter{
		FundsFor:  utils.NormalizePoolKey(f.FundsFor),
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
	})
	if err != nil {
		return nil, err
	}

	byPool := map[string]*FundsStatement{}
	order := []string{}
	for _, e := range entries {
		st, ok := byPool[e.FundsFor]
		if !ok {
			st = &FundsStatement{Pool: models.FundPool{FundsFor: e.FundsFor}}
			byPool[e.FundsFor] = st
			order = append(order, e.FundsFor)
		}
		st.Entries = append(st.Entries, e)
		st.Pool.Entries++
		if e.Status != domain.FundStatusReversedOut {
			st.Pool.TotalAllocated += e.TotalFund
			st.Pool.AvailableFund += e.AvailableFund
			st.Pool.UsedFund += e.UsedFund
		}
	}

	out := make([]FundsStatement, 0, len(order))
	for _, pool := range order {
		out = append(out, *byPool[pool])
	}
	return out, nil
}

// Outstanding returns trips and ticket bookings whose paid total has not
// reached the charged total.
func (s ReportsService) Outstanding() (OutstandingReport, error) {
	trips, err := s.TripRepo.Outstanding()
	if err != nil {
		return OutstandingReport{}, err
	}
	tickets, err := s.TicketRepo.List(repositories.TicketFilter{PaymentStatus: domain.TicketStatusPending})
	if err != nil {
		return OutstandingReport{}, err
	}
	// Pending bookings with nothing charged yet are not outstanding debt.
	filtered := tickets[:0]
	for _, t := range tickets {
		if t.TotalAmount > t.AmountPaid {
			filtered = append(filtered, t)
		}
	}
	return OutstandingReport{Trips: trips, Tickets: filtered}, nil
}
