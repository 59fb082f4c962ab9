package handlers

import (
	"net/http"
	"strings"

	"travelagency/internal/http/middleware"
	"travelagency/internal/repositories"
	"travelagency/internal/services"

	"github.com/gin-gonic/gin"
)

func paymentSvc(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		PaymentRepo: repositories.PaymentRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/payments?targetType=&targetId=
func GetPayments(c *gin.Context) {
	payments, err := paymentSvc(c).List(repositories.PaymentFilter{
		TargetType: strings.TrimSpace(c.Query("targetType")),
		TargetID:   queryInt64(c, "targetId"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// GET /api/payments/:id
func GetPaymentByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	payment, err := paymentSvc(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

// POST /api/payments
func CreatePayment(c *gin.Context) {
	var req services.RecordPaymentInput
	if !BindJSONOrError(c, &req) {
		return
	}
	payment, state, err := paymentSvc(c).RecordPayment(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"payment": payment,
		"state":   state,
	})
}
