package services

import (
	"bytes"
	"fmt"
	"strings"

	"travelagency/internal/repositories"
	"travelagency/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders quotation and ticket invoice PDFs.
type DocsService struct {
	QuotationRepo repositories.QuotationRepository
	TicketRepo    repositories.TicketRepository
	ClientRepo    repositories.ClientRepository
	VehicleRepo   repositories.VehicleRepository
	ContentRepo   repositories.ContentRepository
	RequestID     string
}

type quotationDocData struct {
	QuotationID int64
	Date        string
	Status      string
	ClientName  string
	Company     string
	VehicleName string
	PlateNumber string
	StartDate   string
	NoOfDays    int64
	RatePerDay  int64
	TotalAmount int64
	Notes       string
	BrandName   string
}

type ticketDocData struct {
	BookingID      int64
	ClientName     string
	Airline        string
	Sector         string
	TripType       string
	TravelDate     string
	ReturnDate     string
	PassengerNames string
	TicketNumbers  string
	BaseFare       int64
	TaxesAndFees   int64
	TotalAmount    int64
	AmountPaid     int64
	PaymentStatus  string
	BrandName      string
}

func (s DocsService) GenerateQuotationPDF(quotationID int64) ([]byte, string, error) {
	q, err := s.QuotationRepo.GetByID(quotationID)
	if err != nil {
		return nil, "", err
	}

	data := quotationDocData{
		QuotationID: q.ID,
		Date:        q.Date,
		Status:      q.Status,
		StartDate:   q.StartDate,
		NoOfDays:    q.NoOfDays,
		RatePerDay:  q.RatePerDay,
		TotalAmount: q.TotalAmount,
		Notes:       q.Notes,
	}
	if client, err := s.ClientRepo.GetByID(q.ClientID); err == nil {
		data.ClientName = client.Name
		data.Company = client.CompanyName
	}
	if vehicle, err := s.VehicleRepo.GetByID(q.VehicleID); err == nil {
		data.VehicleName = vehicle.Name
		data.PlateNumber = vehicle.PlateNumber
	}
	if brand, err := s.ContentRepo.GetBrand(); err == nil {
		data.BrandName = brand.Name
	}

	utils.LogEvent(s.RequestID, "docs", "generate_quotation", fmt.Sprintf("quotation_id=%d", quotationID))
	return buildQuotationPDF(data)
}

func (s DocsService) GenerateTicketInvoicePDF(bookingID int64) ([]byte, string, error) {
	b, err := s.TicketRepo.GetByID(bookingID)
	if err != nil {
		return nil, "", err
	}

	data := ticketDocData{
		BookingID:      b.ID,
		Airline:        b.Airline,
		Sector:         b.Sector,
		TripType:       b.TripType,
		TravelDate:     b.TravelDate,
		ReturnDate:     b.ReturnDate,
		PassengerNames: b.PassengerNames,
		TicketNumbers:  b.TicketNumbers,
		BaseFare:       b.BaseFare,
		TaxesAndFees:   b.TaxesAndFees,
		TotalAmount:    b.TotalAmount,
		AmountPaid:     b.AmountPaid,
		PaymentStatus:  b.PaymentStatus,
	}
	if client, err := s.ClientRepo.GetByID(b.ClientID); err == nil {
		data.ClientName = client.Name
	}
	if brand, err := s.ContentRepo.GetBrand(); err == nil {
		data.BrandName = brand.Name
	}

	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildTicketInvoicePDF(data)
}

func buildQuotationPDF(d quotationDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quotation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, safe(d.BrandName, "Travel Agency"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("VEHICLE QUOTATION #%d", d.QuotationID))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Date          : %s", safe(d.Date, "-")),
		fmt.Sprintf("Client        : %s", safe(d.ClientName, "-")),
		fmt.Sprintf("Company       : %s", safe(d.Company, "-")),
		fmt.Sprintf("Vehicle       : %s (%s)", safe(d.VehicleName, "-"), safe(d.PlateNumber, "-")),
		fmt.Sprintf("Start Date    : %s", safe(d.StartDate, "-")),
		fmt.Sprintf("Days          : %d", d.NoOfDays),
		fmt.Sprintf("Rate / Day    : %s", utils.FormatAmount(d.RatePerDay)),
		fmt.Sprintf("Total         : %s", utils.FormatAmount(d.TotalAmount)),
		fmt.Sprintf("Status        : %s", strings.ToUpper(safe(d.Status, "draft"))),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if strings.TrimSpace(d.Notes) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Notes: "+d.Notes, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This quotation is valid for 14 days from the date above.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("quotation-%d.pdf", d.QuotationID)
	return buf.Bytes(), filename, nil
}

func buildTicketInvoicePDF(d ticketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, safe(d.BrandName, "Travel Agency"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("TICKET INVOICE #%d", d.BookingID))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Client        : %s", safe(d.ClientName, "-")),
		fmt.Sprintf("Airline       : %s", safe(d.Airline, "-")),
		fmt.Sprintf("Sector        : %s", safe(d.Sector, "-")),
		fmt.Sprintf("Trip Type     : %s", safe(d.TripType, "-")),
		fmt.Sprintf("Travel Date   : %s", safe(d.TravelDate, "-")),
		fmt.Sprintf("Return Date   : %s", safe(d.ReturnDate, "-")),
		fmt.Sprintf("Passengers    : %s", safe(d.PassengerNames, "-")),
		fmt.Sprintf("Ticket Nos    : %s", safe(d.TicketNumbers, "-")),
		fmt.Sprintf("Base Fare     : %s", utils.FormatAmount(d.BaseFare)),
		fmt.Sprintf("Taxes & Fees  : %s", utils.FormatAmount(d.TaxesAndFees)),
		fmt.Sprintf("Total         : %s", utils.FormatAmount(d.TotalAmount)),
		fmt.Sprintf("Paid          : %s", utils.FormatAmount(d.AmountPaid)),
		fmt.Sprintf("Status        : %s", strings.ToUpper(safe(d.PaymentStatus, "pending"))),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ticket-invoice-%d.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
