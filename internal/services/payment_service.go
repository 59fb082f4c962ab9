package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "travelagency/internal/config"
	intdb "travelagency/internal/db"
	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"
	"travelagency/internal/utils"

	"github.com/google/uuid"
)

// PaymentService applies partial payments against trips, quotations and
// ticket bookings and derives the target's payment status. Payment rows are
// immutable; a replayed reference is rejected inside the same transaction
// that would have applied it.
type PaymentService struct {
	PaymentRepo repositories.PaymentRepository
	DB          *sql.DB
	RequestID   string
}

func (s PaymentService) dbh() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

type RecordPaymentInput struct {
	TargetType string `json:"targetType"`
	TargetID   int64  `json:"targetId"`
	Amount     int64  `json:"amount"`
	Reference  string `json:"reference"`
	Method     string `json:"method"`
	Notes      string `json:"notes"`
}

func validTarget(t string) bool {
	switch t {
	case domain.PayTargetTrip, domain.PayTargetQuotation, domain.PayTargetTicket:
		return true
	}
	return false
}

// RecordPayment writes the payment and pushes the recomputed totals onto the
// target, all in one transaction.
func (s PaymentService) RecordPayment(in RecordPaymentInput) (models.Payment, models.PaymentState, error) {
	in.TargetType = strings.TrimSpace(strings.ToLower(in.TargetType))
	if !validTarget(in.TargetType) {
		return models.Payment{}, models.PaymentState{}, domain.ValidationError{Field: "targetType", Msg: "unknown payment target"}
	}
	if in.TargetID <= 0 {
		return models.Payment{}, models.PaymentState{}, domain.ValidationError{Field: "targetId", Msg: "invalid id"}
	}
	if in.Amount <= 0 {
		return models.Payment{}, models.PaymentState{}, domain.ValidationError{Field: "amount", Msg: "amount must be positive"}
	}

	reference := strings.TrimSpace(in.Reference)
	if reference == "" {
		// No client key: mint one so the row still carries a dedup handle.
		reference = uuid.NewString()
	}

	var (
		paymentID int64
		state     models.PaymentState
	)
	err := intdb.WithTx(s.dbh(), func(tx *sql.Tx) error {
		st, err := s.PaymentRepo.TargetStateTx(tx, in.TargetType, in.TargetID)
		if err != nil {
			return err
		}
		if in.Amount > st.PendingAmount {
			return domain.OverpaymentError{Requested: in.Amount, Pending: st.PendingAmount}
		}

		paymentID, err = s.PaymentRepo.InsertTx(tx, models.Payment{
			TargetType: in.TargetType,
			TargetID:   in.TargetID,
			Reference:  reference,
			Amount:     in.Amount,
			Method:     in.Method,
			Notes:      in.Notes,
		})
		if err != nil {
			return err
		}

		newPaid := st.AmountPaid + in.Amount
		status := targetStatus(in.TargetType, newPaid, st.TotalAmount)
		if err := s.PaymentRepo.ApplyToTargetTx(tx, in.TargetType, in.TargetID, newPaid, status); err != nil {
			return err
		}

		state = models.PaymentState{
			TargetType:    in.TargetType,
			TargetID:      in.TargetID,
			TotalAmount:   st.TotalAmount,
			AmountPaid:    newPaid,
			PendingAmount: st.TotalAmount - newPaid,
			Status:        domain.DerivePaymentStatus(newPaid, st.TotalAmount),
		}
		return nil
	})
	if err != nil {
		return models.Payment{}, models.PaymentState{}, err
	}

	utils.LogEvent(s.RequestID, "payment", "record",
		fmt.Sprintf("payment_id=%d target=%s/%d amount=%d", paymentID, in.TargetType, in.TargetID, in.Amount))

	payment, err := s.PaymentRepo.GetByID(paymentID)
	if err != nil {
		return models.Payment{}, models.PaymentState{}, err
	}
	return payment, state, nil
}

// targetStatus maps the derived reconciliation status onto the target's own
// lifecycle vocabulary: ticket bookings only know pending/paid/refunded.
func targetStatus(targetType string, paid, total int64) string {
	if targetType == domain.PayTargetTicket {
		if total > 0 && paid >= total {
			return domain.TicketStatusPaid
		}
		return domain.TicketStatusPending
	}
	return domain.DerivePaymentStatus(paid, total)
}

func (s PaymentService) List(f repositories.PaymentFilter) ([]models.Payment, error) {
	return s.PaymentRepo.List(f)
}

func (s PaymentService) Get(id int64) (models.Payment, error) {
	return s.PaymentRepo.GetByID(id)
}
