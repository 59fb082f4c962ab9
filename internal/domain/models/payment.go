package models

// Payment is one immutable payment event against a trip, quotation or ticket
// booking. Reference is the client-supplied idempotency key; replays with the
// same reference are rejected.
type Payment struct {
	ID         int64  `json:"id"`
	TargetType string `json:"targetType"` // trip / quotation / ticket-booking
	TargetID   int64  `json:"targetId"`
	Reference  string `json:"reference"`
	Amount     int64  `json:"amount"`
	Method     string `json:"method"`
	PaidAt     string `json:"paidAt"`
	Notes      string `json:"notes"`
	CreatedAt  string `json:"createdAt"`
}

// PaymentState is the derived reconciliation view of a payment target after a
// payment has been applied.
type PaymentState struct {
	TargetType    string `json:"targetType"`
	TargetID      int64  `json:"targetId"`
	TotalAmount   int64  `json:"totalAmount"`
	AmountPaid    int64  `json:"amountPaid"`
	PendingAmount int64  `json:"pendingAmount"`
	Status        string `json:"status"` // pending / partial / completed
}
