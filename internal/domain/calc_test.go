package domain

import "testing"

func TestDerivePaymentStatusCoversEveryPair(t *testing.T) {
	cases := []struct {
		paid, total int64
		want        string
	}{
		{0, 10000, PaymentStatusPending},
		{-50, 10000, PaymentStatusPending},
		{1, 10000, PaymentStatusPartial},
		{9999, 10000, PaymentStatusPartial},
		{10000, 10000, PaymentStatusCompleted},
		{0, 0, PaymentStatusPending},
		{100, 0, PaymentStatusCompleted},
	}
	for _, c := range cases {
		got := DerivePaymentStatus(c.paid, c.total)
		if got != c.want {
			t.Fatalf("DerivePaymentStatus(%d, %d) = %q, want %q", c.paid, c.total, got, c.want)
		}
	}
}

func TestComputeTripCharge(t *testing.T) {
	charge := ComputeTripCharge(5000, 3, 4000)
	if charge.TotalAmount != 15000 {
		t.Fatalf("total = %d, want 15000", charge.TotalAmount)
	}
	if charge.BalanceDue != 11000 {
		t.Fatalf("balance due = %d, want 11000", charge.BalanceDue)
	}
}

func TestComputeTripChargeClampsNegatives(t *testing.T) {
	charge := ComputeTripCharge(-5000, 3, -100)
	if charge.TotalAmount != 0 || charge.TotalPaidAmount != 0 || charge.BalanceDue != 0 {
		t.Fatalf("negative inputs should clamp to zero, got %+v", charge)
	}
}

func TestComputeTicketTotal(t *testing.T) {
	if got := ComputeTicketTotal(20000, 3500); got != 23500 {
		t.Fatalf("ticket total = %d, want 23500", got)
	}
	if got := ComputeTicketTotal(-1, 3500); got != 3500 {
		t.Fatalf("negative base fare should clamp, got %d", got)
	}
}

func TestQuotationTransitionMatrix(t *testing.T) {
	allowed := []struct{ from, to string }{
		{QuotationStatusDraft, QuotationStatusSent},
		{QuotationStatusDraft, QuotationStatusCancelled},
		{QuotationStatusSent, QuotationStatusAccepted},
		{QuotationStatusSent, QuotationStatusCancelled},
	}
	for _, c := range allowed {
		if !QuotationTransitionAllowed(c.from, c.to) {
			t.Fatalf("%s -> %s should be allowed", c.from, c.to)
		}
	}

	blocked := []struct{ from, to string }{
		{QuotationStatusDraft, QuotationStatusAccepted},
		{QuotationStatusAccepted, QuotationStatusCancelled},
		{QuotationStatusAccepted, QuotationStatusSent},
		{QuotationStatusCancelled, QuotationStatusSent},
		{QuotationStatusSent, QuotationStatusDraft},
	}
	for _, c := range blocked {
		if QuotationTransitionAllowed(c.from, c.to) {
			t.Fatalf("%s -> %s should be blocked", c.from, c.to)
		}
	}
}
