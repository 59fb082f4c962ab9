package services

import (
	"fmt"

	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"
	"travelagency/internal/utils"
)

// TripService owns vehicle trip records. Totals are recomputed from rate and
// duration on every write; the payment sub-ledger flows through
// PaymentService so the overpayment and idempotency rules apply.
type TripService struct {
	TripRepo    repositories.TripRepository
	ClientRepo  repositories.ClientRepository
	VehicleRepo repositories.VehicleRepository
	PaymentSvc  PaymentService
	RequestID   string
}

type TripInput struct {
	ClientID   int64  `json:"clientId"`
	VehicleID  int64  `json:"vehicleId"`
	StartDate  string `json:"startDate"`
	NoOfDays   int64  `json:"noOfDays"`
	RatePerDay int64  `json:"ratePerDay"`
	KmOut      int64  `json:"kmOut"`
	KmIn       int64  `json:"kmIn"`
	Notes      string `json:"notes"`
}

func (s TripService) validate(in TripInput) (models.Trip, error) {
	if in.ClientID <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "clientId", Msg: "client is required"}
	}
	if in.VehicleID <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "vehicleId", Msg: "vehicle is required"}
	}
	if in.NoOfDays <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "noOfDays", Msg: "days must be positive"}
	}
	if in.RatePerDay <= 0 {
		return models.Trip{}, domain.ValidationError{Field: "ratePerDay", Msg: "rate must be positive"}
	}
	if in.StartDate != "" {
		if _, err := utils.ParseDate(in.StartDate); err != nil {
			return models.Trip{}, domain.ValidationError{Field: "startDate", Msg: "expected YYYY-MM-DD"}
		}
	}
	if _, err := s.ClientRepo.GetByID(in.ClientID); err != nil {
		return models.Trip{}, err
	}
	if _, err := s.VehicleRepo.GetByID(in.VehicleID); err != nil {
		return models.Trip{}, err
	}

	charge := domain.ComputeTripCharge(in.RatePerDay, in.NoOfDays, 0)
	return models.Trip{
		ClientID:    in.ClientID,
		VehicleID:   in.VehicleID,
		StartDate:   in.StartDate,
		NoOfDays:    in.NoOfDays,
		RatePerDay:  in.RatePerDay,
		KmOut:       in.KmOut,
		KmIn:        in.KmIn,
		TotalAmount: charge.TotalAmount,
		Notes:       in.Notes,
	}, nil
}

func (s TripService) Create(in TripInput) (models.Trip, error) {
	t, err := s.validate(in)
	if err != nil {
		return models.Trip{}, err
	}
	id, err := s.TripRepo.Create(t)
	if err != nil {
		return models.Trip{}, err
	}
	utils.LogEvent(s.RequestID, "trip", "create", fmt.Sprintf("trip_id=%d total=%d", id, t.TotalAmount))
	return s.TripRepo.GetByID(id)
}

func (s TripService) Update(id int64, in TripInput) (models.Trip, error) {
	existing, err := s.TripRepo.GetByID(id)
	if err != nil {
		return models.Trip{}, err
	}
	t, err := s.validate(in)
	if err != nil {
		return models.Trip{}, err
	}
	// Shrinking the trip below what has already been paid would drive
	// balanceDue negative.
	if t.TotalAmount < existing.TotalPaidAmount {
		return models.Trip{}, domain.ConflictError{
			Resource: "trip",
			Msg:      fmt.Sprintf("total %d is below amount already paid %d", t.TotalAmount, existing.TotalPaidAmount),
		}
	}
	t.ID = id
	t.PaymentStatus = domain.DerivePaymentStatus(existing.TotalPaidAmount, t.TotalAmount)
	if err := s.TripRepo.Update(t); err != nil {
		return models.Trip{}, err
	}
	return s.TripRepo.GetByID(id)
}

// TripDetail is a trip plus its payment sub-ledger.
type TripDetail struct {
	models.Trip
	Payments []models.Payment `json:"payments"`
}

func (s TripService) Get(id int64) (TripDetail, error) {
	t, err := s.TripRepo.GetByID(id)
	if err != nil {
		return TripDetail{}, err
	}
	payments, err := s.PaymentSvc.List(repositories.PaymentFilter{
		TargetType: domain.PayTargetTrip,
		TargetID:   id,
	})
	if err != nil {
		return TripDetail{}, err
	}
	return TripDetail{Trip: t, Payments: payments}, nil
}

func (s TripService) List(f repositories.TripFilter) ([]models.Trip, error) {
	return s.TripRepo.List(f)
}

func (s TripService) Delete(id int64) error {
	return s.TripRepo.Delete(id)
}

// AddPayment appends to the trip's payment sub-ledger.
func (s TripService) AddPayment(tripID int64, in RecordPaymentInput) (models.Payment, models.PaymentState, error) {
	in.TargetType = domain.PayTargetTrip
	in.TargetID = tripID
	return s.PaymentSvc.RecordPayment(in)
}
