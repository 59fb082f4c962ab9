package services

import "testing"

func TestBuildQuotationPDF(t *testing.T) {
	pdf, filename, err := buildQuotationPDF(quotationDocData{
		QuotationID: 12,
		Date:        "2025-02-01",
		Status:      "sent",
		ClientName:  "Tester",
		Company:     "Tester Pvt Ltd",
		VehicleName: "Hiace",
		PlateNumber: "BA 2 KHA 1234",
		StartDate:   "2025-02-10",
		NoOfDays:    4,
		RatePerDay:  5000,
		TotalAmount: 20000,
		BrandName:   "Sky Travels",
	})
	if err != nil {
		t.Fatalf("buildQuotationPDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("buildQuotationPDF returned empty data")
	}
	if filename != "quotation-12.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestBuildTicketInvoicePDF(t *testing.T) {
	pdf, filename, err := buildTicketInvoicePDF(ticketDocData{
		BookingID:      7,
		ClientName:     "Tester",
		Airline:        "Buddha Airline",
		Sector:         "KTM-PKR",
		TripType:       "round-trip",
		TravelDate:     "2025-03-01",
		ReturnDate:     "2025-03-05",
		PassengerNames: "Tester",
		TicketNumbers:  "BA-100",
		BaseFare:       9000,
		TaxesAndFees:   1000,
		TotalAmount:    10000,
		AmountPaid:     4000,
		PaymentStatus:  "pending",
	})
	if err != nil {
		t.Fatalf("buildTicketInvoicePDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("buildTicketInvoicePDF returned empty data")
	}
	if filename != "ticket-invoice-7.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}
