package models

// FundEntry is one row in the airline fund ledger. For every entry the
// conservation invariant TotalFund == AvailableFund + UsedFund holds; a
// reversed-out entry keeps its last balances frozen and is excluded from pool
// totals, with the offsetting reversal-in entry linked via ReversedFundID.
type FundEntry struct {
	ID              int64  `json:"id"`
	ClientID        int64  `json:"clientId"`
	TicketBookingID int64  `json:"ticketBookingId"`
	FundsFor        string `json:"fundsFor"` // airline pool key, e.g. "buddha-airline"
	TotalFund       int64  `json:"totalFund"`
	AvailableFund   int64  `json:"availableFund"`
	UsedFund        int64  `json:"usedFund"`
	Status          string `json:"status"` // completed / reversed-out / reversal-in
	ReversedFundID  int64  `json:"reversedFundId"`
	Notes           string `json:"notes"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// FundPool is the per-airline rollup over non-reversed entries.
type FundPool struct {
	FundsFor       string `json:"fundsFor"`
	TotalAllocated int64  `json:"totalAllocated"`
	AvailableFund  int64  `json:"availableFund"`
	UsedFund       int64  `json:"usedFund"`
	Entries        int64  `json:"entries"`
}
