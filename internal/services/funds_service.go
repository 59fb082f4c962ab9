package services

import (
	"database/sql"
	"fmt"

	intconfig "travelagency/internal/config"
	intdb "travelagency/internal/db"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"
	"travelagency/internal/utils"
)

// FundsService owns the airline fund ledger. Conservation holds for every
// entry: totalFund == availableFund + usedFund, and pool balances equal the
// sum of non-reversed allocations minus usages for all time. Every mutation
// runs in one transaction with the entry row locked.
type FundsService struct {
	FundsRepo  repositories.FundsRepository
	TicketRepo repositories.TicketRepository
	DB         *sql.DB
	RequestID  string
}

func (s FundsService) dbh() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

type AllocateFundsInput struct {
	FundsFor string `json:"fundsFor"`
	Amount   int64  `json:"amount"`
	ClientID int64  `json:"clientId"`
	Notes    string `json:"notes"`
}

// Allocate opens a new completed entry with the full amount available.
func (s FundsService) Allocate(in AllocateFundsInput) (models.FundEntry, error) {
	pool := utils.NormalizePoolKey(in.FundsFor)
	if pool == "" {
		return models.FundEntry{}, domain.ValidationError{Field: "fundsFor", Msg: "fund pool is required"}
	}
	if in.Amount <= 0 {
		return models.FundEntry{}, domain.ValidationError{Field: "amount", Msg: "amount must be positive"}
	}

	entry := models.FundEntry{
		ClientID:      in.ClientID,
		FundsFor:      pool,
		TotalFund:     in.Amount,
		AvailableFund: in.Amount,
		UsedFund:      0,
		Status:        domain.FundStatusCompleted,
		Notes:         in.Notes,
	}
	id, err := s.FundsRepo.Insert(entry)
	if err != nil {
		return models.FundEntry{}, err
	}
	utils.LogEvent(s.RequestID, "funds", "allocate", fmt.Sprintf("entry_id=%d pool=%s amount=%d", id, pool, in.Amount))
	return s.FundsRepo.GetByID(id)
}

type UseFundsInput struct {
	Amount          int64 `json:"amount"`
	TicketBookingID int64 `json:"ticketBookingId"`
}

// Use moves amount from available to used on one entry, optionally marking a
// linked ticket booking paid in the same transaction.
func (s FundsService) Use(entryID int64, in UseFundsInput) (models.FundEntry, error) {
	if entryID <= 0 {
		return models.FundEntry{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	if in.Amount <= 0 {
		return models.FundEntry{}, domain.ValidationError{Field: "amount", Msg: "amount must be positive"}
	}

	err := intdb.WithTx(s.dbh(), func(tx *sql.Tx) error {
		entry, err := s.FundsRepo.GetForUpdateTx(tx, entryID)
		if err != nil {
			return err
		}
		if entry.Status == domain.FundStatusReversedOut {
			return domain.AlreadyReversedError{FundID: entry.ID, Status: entry.Status}
		}
		if in.Amount > entry.AvailableFund {
			return domain.InsufficientFundsError{
				FundID:    entry.ID,
				Requested: in.Amount,
				Available: entry.AvailableFund,
			}
		}
		if err := s.FundsRepo.UpdateBalancesTx(tx, entry.ID, entry.AvailableFund-in.Amount, entry.UsedFund+in.Amount); err != nil {
			return err
		}
		if in.TicketBookingID > 0 {
			if err := s.TicketRepo.UpdatePaymentStatusTx(tx, in.TicketBookingID, domain.TicketStatusPaid); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.FundEntry{}, err
	}

	utils.LogEvent(s.RequestID, "funds", "use",
		fmt.Sprintf("entry_id=%d amount=%d ticket_booking_id=%d", entryID, in.Amount, in.TicketBookingID))
	return s.FundsRepo.GetByID(entryID)
}

// FundReversal is the pair produced by a reversal: the frozen original and
// the offsetting reversal-in entry. The pair nets to zero on the pool.
type FundReversal struct {
	Original models.FundEntry `json:"original"`
	Reversal models.FundEntry `json:"reversal"`
}

// Reverse cancels a completed entry by creating a linked counter-entry
// carrying the full total back as available, then freezing the original as
// reversed-out. Only completed entries can be reversed; a second attempt on
// either side of an existing pair fails.
func (s FundsService) Reverse(entryID int64) (FundReversal, error) {
	if entryID <= 0 {
		return FundReversal{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}

	var reversalID int64
	err := intdb.WithTx(s.dbh(), func(tx *sql.Tx) error {
		entry, err := s.FundsRepo.GetForUpdateTx(tx, entryID)
		if err != nil {
			return err
		}
		if entry.Status != domain.FundStatusCompleted {
			return domain.AlreadyReversedError{FundID: entry.ID, Status: entry.Status}
		}

		pair := models.FundEntry{
			ClientID:       entry.ClientID,
			FundsFor:       entry.FundsFor,
			TotalFund:      entry.TotalFund,
			AvailableFund:  entry.TotalFund,
			UsedFund:       0,
			Status:         domain.FundStatusReversalIn,
			ReversedFundID: entry.ID,
			Notes:          fmt.Sprintf("reversal of entry %d", entry.ID),
		}
		reversalID, err = s.FundsRepo.InsertTx(tx, pair)
		if err != nil {
			return err
		}
		return s.FundsRepo.MarkReversedTx(tx, entry.ID, reversalID)
	})
	if err != nil {
		return FundReversal{}, err
	}

	utils.LogEvent(s.RequestID, "funds", "reverse",
		fmt.Sprintf("entry_id=%d reversal_id=%d", entryID, reversalID))

	original, err := s.FundsRepo.GetByID(entryID)
	if err != nil {
		return FundReversal{}, err
	}
	reversal, err := s.FundsRepo.GetByID(reversalID)
	if err != nil {
		return FundReversal{}, err
	}
	return FundReversal{Original: original, Reversal: reversal}, nil
}

func (s FundsService) List(f repositories.FundFilter) ([]models.FundEntry, error) {
	f.FundsFor = utils.NormalizePoolKey(f.FundsFor)
	return s.FundsRepo.List(f)
}

func (s FundsService) Get(id int64) (models.FundEntry, error) {
	return s.FundsRepo.GetByID(id)
}

func (s FundsService) Pools() ([]models.FundPool, error) {
	return s.FundsRepo.Pools()
}
