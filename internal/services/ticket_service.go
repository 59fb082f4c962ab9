package services

import (
	"fmt"
	"strings"

	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"
	"travelagency/internal/utils"
)

// TicketService owns flight reservations. The fare breakdown is the source
// of truth: totalAmount is always baseFare + taxesAndFees.
type TicketService struct {
	TicketRepo repositories.TicketRepository
	ClientRepo repositories.ClientRepository
	RequestID  string
}

type TicketInput struct {
	ClientID       int64  `json:"clientId"`
	TripType       string `json:"tripType"`
	Airline        string `json:"airline"`
	Sector         string `json:"sector"`
	TravelDate     string `json:"travelDate"`
	ReturnDate     string `json:"returnDate"`
	Adults         int64  `json:"adults"`
	Children       int64  `json:"children"`
	BaseFare       int64  `json:"baseFare"`
	TaxesAndFees   int64  `json:"taxesAndFees"`
	TicketNumbers  string `json:"ticketNumbers"`
	PassengerNames string `json:"passengerNames"`
}

func (s TicketService) validate(in TicketInput) (models.TicketBooking, error) {
	if in.ClientID <= 0 {
		return models.TicketBooking{}, domain.ValidationError{Field: "clientId", Msg: "client is required"}
	}
	if strings.TrimSpace(in.Airline) == "" {
		return models.TicketBooking{}, domain.ValidationError{Field: "airline", Msg: "airline is required"}
	}
	tripType := strings.TrimSpace(strings.ToLower(in.TripType))
	switch tripType {
	case "one-way", "round-trip":
	case "":
		tripType = "one-way"
	default:
		return models.TicketBooking{}, domain.ValidationError{Field: "tripType", Msg: "must be one-way or round-trip"}
	}
	if in.BaseFare < 0 || in.TaxesAndFees < 0 {
		return models.TicketBooking{}, domain.ValidationError{Field: "baseFare", Msg: "fares cannot be negative"}
	}
	if in.Adults <= 0 {
		in.Adults = 1
	}
	if _, err := s.ClientRepo.GetByID(in.ClientID); err != nil {
		return models.TicketBooking{}, err
	}

	return models.TicketBooking{
		ClientID:       in.ClientID,
		TripType:       tripType,
		Airline:        strings.TrimSpace(in.Airline),
		Sector:         strings.TrimSpace(in.Sector),
		TravelDate:     in.TravelDate,
		ReturnDate:     in.ReturnDate,
		Adults:         in.Adults,
		Children:       in.Children,
		BaseFare:       in.BaseFare,
		TaxesAndFees:   in.TaxesAndFees,
		TotalAmount:    domain.ComputeTicketTotal(in.BaseFare, in.TaxesAndFees),
		TicketNumbers:  in.TicketNumbers,
		PassengerNames: in.PassengerNames,
	}, nil
}

func (s TicketService) Create(in TicketInput) (models.TicketBooking, error) {
	b, err := s.validate(in)
	if err != nil {
		return models.TicketBooking{}, err
	}
	id, err := s.TicketRepo.Create(b)
	if err != nil {
		return models.TicketBooking{}, err
	}
	utils.LogEvent(s.RequestID, "ticket", "create", fmt.Sprintf("booking_id=%d total=%d", id, b.TotalAmount))
	return s.TicketRepo.GetByID(id)
}

func (s TicketService) Update(id int64, in TicketInput) (models.TicketBooking, error) {
	existing, err := s.TicketRepo.GetByID(id)
	if err != nil {
		return models.TicketBooking{}, err
	}
	if existing.PaymentStatus == domain.TicketStatusRefunded {
		return models.TicketBooking{}, domain.ConflictError{Resource: "ticket booking", Msg: "refunded booking is frozen"}
	}
	b, err := s.validate(in)
	if err != nil {
		return models.TicketBooking{}, err
	}
	if b.TotalAmount < existing.AmountPaid {
		return models.TicketBooking{}, domain.ConflictError{
			Resource: "ticket booking",
			Msg:      fmt.Sprintf("total %d is below amount already paid %d", b.TotalAmount, existing.AmountPaid),
		}
	}
	b.ID = id
	if err := s.TicketRepo.Update(b); err != nil {
		return models.TicketBooking{}, err
	}
	return s.TicketRepo.GetByID(id)
}

// Refund flips a paid booking to refunded. Only paid bookings can be
// refunded; the fund pool side is handled by reversing the backing entry.
func (s TicketService) Refund(id int64) (models.TicketBooking, error) {
	b, err := s.TicketRepo.GetByID(id)
	if err != nil {
		return models.TicketBooking{}, err
	}
	if b.PaymentStatus != domain.TicketStatusPaid {
		return models.TicketBooking{}, domain.ConflictError{
			Resource: "ticket booking",
			Msg:      fmt.Sprintf("cannot refund a booking in %s state", b.PaymentStatus),
		}
	}
	if err := s.TicketRepo.UpdatePaymentStatus(id, domain.TicketStatusRefunded); err != nil {
		return models.TicketBooking{}, err
	}
	utils.LogEvent(s.RequestID, "ticket", "refund", fmt.Sprintf("booking_id=%d", id))
	return s.TicketRepo.GetByID(id)
}

func (s TicketService) List(f repositories.TicketFilter) ([]models.TicketBooking, error) {
	return s.TicketRepo.List(f)
}

func (s TicketService) Get(id int64) (models.TicketBooking, error) {
	return s.TicketRepo.GetByID(id)
}

func (s TicketService) Delete(id int64) error {
	return s.TicketRepo.Delete(id)
}
