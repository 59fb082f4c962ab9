package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"travelagency/internal/http/middleware"
	"travelagency/internal/repositories"
	"travelagency/internal/services"

	"github.com/gin-gonic/gin"
)

func ticketSvc(c *gin.Context) services.TicketService {
	return services.TicketService{
		TicketRepo: repositories.TicketRepository{},
		ClientRepo: repositories.ClientRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
}

// GET /api/ticket-bookings?clientId=&airline=&status=
func GetTicketBookings(c *gin.Context) {
	bookings, err := ticketSvc(c).List(repositories.TicketFilter{
		ClientID:      queryInt64(c, "clientId"),
		Airline:       strings.TrimSpace(c.Query("airline")),
		PaymentStatus: strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticketBookings": bookings})
}

// GET /api/ticket-bookings/:id
func GetTicketBookingByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	booking, err := ticketSvc(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticketBooking": booking})
}

// POST /api/ticket-bookings
func CreateTicketBooking(c *gin.Context) {
	var req services.TicketInput
	if !BindJSONOrError(c, &req) {
		return
	}
	booking, err := ticketSvc(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ticketBooking": booking})
}

// PUT /api/ticket-bookings/:id
func UpdateTicketBooking(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req services.TicketInput
	if !BindJSONOrError(c, &req) {
		return
	}
	booking, err := ticketSvc(c).Update(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticketBooking": booking})
}

// PUT /api/ticket-bookings/:id/refund
func RefundTicketBooking(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	booking, err := ticketSvc(c).Refund(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticketBooking": booking})
}

// DELETE /api/ticket-bookings/:id
func DeleteTicketBooking(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := ticketSvc(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ticket booking deleted"})
}

// GET /api/ticket-bookings/:id/invoice
func GetTicketInvoicePDF(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	svc := services.DocsService{
		TicketRepo:  repositories.TicketRepository{},
		ClientRepo:  repositories.ClientRepository{},
		ContentRepo: repositories.ContentRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	data, filename, err := svc.GenerateTicketInvoicePDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename=%q`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
