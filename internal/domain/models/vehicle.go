package models

// Vehicle is a rentable unit in the fleet.
type Vehicle struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	PlateNumber  string `json:"plateNumber"`
	SeatCapacity int64  `json:"seatCapacity"`
	RatePerDay   int64  `json:"ratePerDay"`
	Status       string `json:"status"` // active / maintenance / retired
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}
