package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"travelagency/internal/domain/models"
	"travelagency/internal/http/middleware"
	"travelagency/internal/repositories"
	"travelagency/internal/services"

	"github.com/gin-gonic/gin"
)

func quotationSvc(c *gin.Context) services.QuotationService {
	return services.QuotationService{
		QuotationRepo: repositories.QuotationRepository{},
		ClientRepo:    repositories.ClientRepository{},
		VehicleRepo:   repositories.VehicleRepository{},
		RequestID:     middleware.GetRequestID(c),
	}
}

// GET /api/quotations?clientId=&status=
func GetQuotations(c *gin.Context) {
	quotations, err := quotationSvc(c).List(repositories.QuotationFilter{
		ClientID: queryInt64(c, "clientId"),
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotations": quotations})
}

// GET /api/quotations/:id
func GetQuotationByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	quotation, err := quotationSvc(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": quotation})
}

// POST /api/quotations
func CreateQuotation(c *gin.Context) {
	var req services.QuotationInput
	if !BindJSONOrError(c, &req) {
		return
	}
	quotation, err := quotationSvc(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"quotation": quotation})
}

// PUT /api/quotations/:id
func UpdateQuotation(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req services.QuotationInput
	if !BindJSONOrError(c, &req) {
		return
	}
	quotation, err := quotationSvc(c).Update(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": quotation})
}

// PUT /api/quotations/:id/send
func SendQuotation(c *gin.Context) {
	transitionQuotation(c, quotationSvc(c).Send)
}

// PUT /api/quotations/:id/accept
func AcceptQuotation(c *gin.Context) {
	transitionQuotation(c, quotationSvc(c).Accept)
}

// PUT /api/quotations/:id/cancel
func CancelQuotation(c *gin.Context) {
	transitionQuotation(c, quotationSvc(c).Cancel)
}

func transitionQuotation(c *gin.Context, fn func(int64) (models.Quotation, error)) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	quotation, err := fn(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": quotation})
}

// DELETE /api/quotations/:id
func DeleteQuotation(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := quotationSvc(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quotation deleted"})
}

// GET /api/quotations/:id/pdf
func GetQuotationPDF(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	svc := services.DocsService{
		QuotationRepo: repositories.QuotationRepository{},
		ClientRepo:    repositories.ClientRepository{},
		VehicleRepo:   repositories.VehicleRepository{},
		ContentRepo:   repositories.ContentRepository{},
		RequestID:     middleware.GetRequestID(c),
	}
	data, filename, err := svc.GenerateQuotationPDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename=%q`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
