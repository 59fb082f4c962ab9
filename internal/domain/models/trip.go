package models

// Trip is a vehicle rental trip with a payment sub-ledger. TotalAmount and
// BalanceDue are derived server-side, never taken from the request.
type Trip struct {
	ID              int64  `json:"id"`
	ClientID        int64  `json:"clientId"`
	VehicleID       int64  `json:"vehicleId"`
	StartDate       string `json:"startDate"`
	NoOfDays        int64  `json:"noOfDays"`
	RatePerDay      int64  `json:"ratePerDay"`
	KmOut           int64  `json:"kmOut"`
	KmIn            int64  `json:"kmIn"`
	TotalAmount     int64  `json:"totalAmount"`
	TotalPaidAmount int64  `json:"totalPaidAmount"`
	BalanceDue      int64  `json:"balanceDue"`
	PaymentStatus   string `json:"paymentStatus"`
	Notes           string `json:"notes"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}
