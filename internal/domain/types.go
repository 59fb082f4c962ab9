package domain

// ID is used across domain entities.
type ID int64

// Payment status values derived from amountPaid vs totalAmount.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPartial   = "partial"
	PaymentStatusCompleted = "completed"
)

// Ticket booking payment lifecycle.
const (
	TicketStatusPending  = "pending"
	TicketStatusPaid     = "paid"
	TicketStatusRefunded = "refunded"
)

// Fund ledger entry states. A reversal turns one completed entry into a
// reversed-out/reversal-in pair linked by reversed_fund_id.
const (
	FundStatusCompleted   = "completed"
	FundStatusReversedOut = "reversed-out"
	FundStatusReversalIn  = "reversal-in"
)

// Quotation lifecycle: draft -> sent -> accepted | cancelled.
const (
	QuotationStatusDraft     = "draft"
	QuotationStatusSent      = "sent"
	QuotationStatusAccepted  = "accepted"
	QuotationStatusCancelled = "cancelled"
)

// Payment target kinds accepted by the reconciliation service.
const (
	PayTargetTrip      = "trip"
	PayTargetQuotation = "quotation"
	PayTargetTicket    = "ticket-booking"
)

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}
