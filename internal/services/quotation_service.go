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

// QuotationService enforces the quotation lifecycle: draft -> sent ->
// accepted | cancelled. Accepting materializes the trip record in the same
// transaction as the status flip.
type QuotationService struct {
	QuotationRepo repositories.QuotationRepository
	ClientRepo    repositories.ClientRepository
	VehicleRepo   repositories.VehicleRepository
	DB            *sql.DB
	RequestID     string
}

func (s QuotationService) dbh() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

type QuotationInput struct {
	ClientID   int64  `json:"clientId"`
	VehicleID  int64  `json:"vehicleId"`
	Date       string `json:"date"`
	StartDate  string `json:"startDate"`
	NoOfDays   int64  `json:"noOfDays"`
	RatePerDay int64  `json:"ratePerDay"`
	Notes      string `json:"notes"`
}

func (s QuotationService) validate(in QuotationInput) (models.Quotation, error) {
	if in.ClientID <= 0 {
		return models.Quotation{}, domain.ValidationError{Field: "clientId", Msg: "client is required"}
	}
	if in.VehicleID <= 0 {
		return models.Quotation{}, domain.ValidationError{Field: "vehicleId", Msg: "vehicle is required"}
	}
	if in.NoOfDays <= 0 {
		return models.Quotation{}, domain.ValidationError{Field: "noOfDays", Msg: "days must be positive"}
	}
	if in.RatePerDay <= 0 {
		return models.Quotation{}, domain.ValidationError{Field: "ratePerDay", Msg: "rate must be positive"}
	}
	date := in.Date
	if date == "" {
		date = utils.FormatDate(utils.NowUTC())
	} else if _, err := utils.ParseDate(date); err != nil {
		return models.Quotation{}, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD"}
	}
	if _, err := s.ClientRepo.GetByID(in.ClientID); err != nil {
		return models.Quotation{}, err
	}
	if _, err := s.VehicleRepo.GetByID(in.VehicleID); err != nil {
		return models.Quotation{}, err
	}

	charge := domain.ComputeTripCharge(in.RatePerDay, in.NoOfDays, 0)
	return models.Quotation{
		ClientID:    in.ClientID,
		VehicleID:   in.VehicleID,
		Date:        date,
		StartDate:   in.StartDate,
		NoOfDays:    in.NoOfDays,
		RatePerDay:  in.RatePerDay,
		TotalAmount: charge.TotalAmount,
		Notes:       in.Notes,
	}, nil
}

func (s QuotationService) Create(in QuotationInput) (models.Quotation, error) {
	q, err := s.validate(in)
	if err != nil {
		return models.Quotation{}, err
	}
	id, err := s.QuotationRepo.Create(q)
	if err != nil {
		return models.Quotation{}, err
	}
	utils.LogEvent(s.RequestID, "quotation", "create", fmt.Sprintf("quotation_id=%d total=%d", id, q.TotalAmount))
	return s.QuotationRepo.GetByID(id)
}

func (s QuotationService) Update(id int64, in QuotationInput) (models.Quotation, error) {
	existing, err := s.QuotationRepo.GetByID(id)
	if err != nil {
		return models.Quotation{}, err
	}
	if existing.Status != domain.QuotationStatusDraft {
		return models.Quotation{}, domain.ConflictError{
			Resource: "quotation",
			Msg:      fmt.Sprintf("cannot edit a quotation in %s state", existing.Status),
		}
	}
	q, err := s.validate(in)
	if err != nil {
		return models.Quotation{}, err
	}
	q.ID = id
	if err := s.QuotationRepo.Update(q); err != nil {
		return models.Quotation{}, err
	}
	return s.QuotationRepo.GetByID(id)
}

// Transition moves the lifecycle. Accepting also creates the trip and records
// its id on the quotation, atomically.
func (s QuotationService) Transition(id int64, to string) (models.Quotation, error) {
	if id <= 0 {
		return models.Quotation{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}

	err := intdb.WithTx(s.dbh(), func(tx *sql.Tx) error {
		q, err := s.QuotationRepo.GetForUpdateTx(tx, id)
		if err != nil {
			return err
		}
		if !domain.QuotationTransitionAllowed(q.Status, to) {
			return domain.ConflictError{
				Resource: "quotation",
				Msg:      fmt.Sprintf("cannot move from %s to %s", q.Status, to),
			}
		}

		var tripID int64
		if to == domain.QuotationStatusAccepted {
			tripID, err = s.QuotationRepo.CreateTripFromTx(tx, q)
			if err != nil {
				return err
			}
		}
		return s.QuotationRepo.UpdateStatusTx(tx, id, to, tripID)
	})
	if err != nil {
		return models.Quotation{}, err
	}

	utils.LogEvent(s.RequestID, "quotation", "transition", fmt.Sprintf("quotation_id=%d to=%s", id, to))
	return s.QuotationRepo.GetByID(id)
}

func (s QuotationService) Send(id int64) (models.Quotation, error) {
	return s.Transition(id, domain.QuotationStatusSent)
}

func (s QuotationService) Accept(id int64) (models.Quotation, error) {
	return s.Transition(id, domain.QuotationStatusAccepted)
}

func (s QuotationService) Cancel(id int64) (models.Quotation, error) {
	return s.Transition(id, domain.QuotationStatusCancelled)
}

func (s QuotationService) List(f repositories.QuotationFilter) ([]models.Quotation, error) {
	return s.QuotationRepo.List(f)
}

func (s QuotationService) Get(id int64) (models.Quotation, error) {
	return s.QuotationRepo.GetByID(id)
}

func (s QuotationService) Delete(id int64) error {
	return s.QuotationRepo.Delete(id)
}
