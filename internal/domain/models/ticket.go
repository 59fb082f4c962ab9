package models

// TicketBooking is a flight reservation with a fare breakdown.
// TotalAmount = BaseFare + TaxesAndFees, recomputed on every write.
type TicketBooking struct {
	ID             int64  `json:"id"`
	ClientID       int64  `json:"clientId"`
	TripType       string `json:"tripType"` // one-way / round-trip
	Airline        string `json:"airline"`
	Sector         string `json:"sector"`
	TravelDate     string `json:"travelDate"`
	ReturnDate     string `json:"returnDate"`
	Adults         int64  `json:"adults"`
	Children       int64  `json:"children"`
	BaseFare       int64  `json:"baseFare"`
	TaxesAndFees   int64  `json:"taxesAndFees"`
	TotalAmount    int64  `json:"totalAmount"`
	AmountPaid     int64  `json:"amountPaid"`
	PaymentStatus  string `json:"paymentStatus"` // pending / paid / refunded
	TicketNumbers  string `json:"ticketNumbers"`
	PassengerNames string `json:"passengerNames"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}
