package domain

// TripCharge is the derived money view of a vehicle trip.
type TripCharge struct {
	TotalAmount     int64 `json:"totalAmount"`
	TotalPaidAmount int64 `json:"totalPaidAmount"`
	BalanceDue      int64 `json:"balanceDue"`
}

// ComputeTripCharge derives the trip total from rate and duration. The client
// never supplies totalAmount; it is recomputed on every write.
func ComputeTripCharge(ratePerDay, noOfDays, totalPaid int64) TripCharge {
	if ratePerDay < 0 {
		ratePerDay = 0
	}
	if noOfDays < 0 {
		noOfDays = 0
	}
	total := ratePerDay * noOfDays
	if totalPaid < 0 {
		totalPaid = 0
	}
	return TripCharge{
		TotalAmount:     total,
		TotalPaidAmount: totalPaid,
		BalanceDue:      total - totalPaid,
	}
}

// ComputeTicketTotal derives a ticket booking total from its fare breakdown.
func ComputeTicketTotal(baseFare, taxesAndFees int64) int64 {
	if baseFare < 0 {
		baseFare = 0
	}
	if taxesAndFees < 0 {
		taxesAndFees = 0
	}
	return baseFare + taxesAndFees
}

// DerivePaymentStatus maps (amountPaid, totalAmount) onto exactly one status.
// Overpayment is rejected before this point, so paid >= total collapses to
// completed.
func DerivePaymentStatus(amountPaid, totalAmount int64) string {
	switch {
	case amountPaid <= 0:
		return PaymentStatusPending
	case amountPaid < totalAmount:
		return PaymentStatusPartial
	default:
		return PaymentStatusCompleted
	}
}

// QuotationTransitionAllowed enforces the draft -> sent -> accepted|cancelled
// lifecycle. Accepted and cancelled are terminal.
func QuotationTransitionAllowed(from, to string) bool {
	switch from {
	case QuotationStatusDraft:
		return to == QuotationStatusSent || to == QuotationStatusCancelled
	case QuotationStatusSent:
		return to == QuotationStatusAccepted || to == QuotationStatusCancelled
	default:
		return false
	}
}
