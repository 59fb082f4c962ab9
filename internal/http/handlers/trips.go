package handlers

import (
	"net/http"
	"strings"

	"travelagency/internal/http/middleware"
	"travelagency/internal/repositories"
	"travelagency/internal/services"

	"github.com/gin-gonic/gin"
)

func tripSvc(c *gin.Context) services.TripService {
	reqID := middleware.GetRequestID(c)
	return services.TripService{
		TripRepo:    repositories.TripRepository{},
		ClientRepo:  repositories.ClientRepository{},
		VehicleRepo: repositories.VehicleRepository{},
		PaymentSvc:  services.PaymentService{PaymentRepo: repositories.PaymentRepository{}, RequestID: reqID},
		RequestID:   reqID,
	}
}

// GET /api/trips?clientId=&vehicleId=&start=&end=
func GetTrips(c *gin.Context) {
	trips, err := tripSvc(c).List(repositories.TripFilter{
		ClientID:  queryInt64(c, "clientId"),
		VehicleID: queryInt64(c, "vehicleId"),
		StartDate: strings.TrimSpace(c.Query("start")),
		EndDate:   strings.TrimSpace(c.Query("end")),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GET /api/trips/:id (includes the payment sub-ledger)
func GetTripByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	detail, err := tripSvc(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": detail})
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var req services.TripInput
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := tripSvc(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req services.TripInput
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := tripSvc(c).Update(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := tripSvc(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip deleted"})
}

// POST /api/trips/:id/payments
func AddTripPayment(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req services.RecordPaymentInput
	if !BindJSONOrError(c, &req) {
		return
	}
	payment, state, err := tripSvc(c).AddPayment(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"payment": payment,
		"state":   state,
	})
}
