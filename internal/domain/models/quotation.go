package models

// Quotation is a pre-booking price proposal for a vehicle trip.
// Lifecycle: draft -> sent -> accepted | cancelled (terminal).
type Quotation struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"clientId"`
	VehicleID   int64  `json:"vehicleId"`
	Date        string `json:"date"`
	StartDate   string `json:"startDate"`
	NoOfDays    int64  `json:"noOfDays"`
	RatePerDay  int64  `json:"ratePerDay"`
	TotalAmount int64  `json:"totalAmount"`
	AmountPaid  int64  `json:"amountPaid"`
	Status      string `json:"status"`        // lifecycle: draft / sent / accepted / cancelled
	PaymentStatus string `json:"paymentStatus"` // pending / partial / completed
	TripID      int64  `json:"tripId"` // set when accepted
	Notes       string `json:"notes"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
