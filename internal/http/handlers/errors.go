package handlers

import (
	"net/http"

	"travelagency/internal/domain"
	"travelagency/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain errors to HTTP responses. Ledger and
// reconciliation violations get their own codes so the dashboard can tell
// them apart from plain validation failures.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsInsufficientFunds(err):
		respondError(c, http.StatusUnprocessableEntity, "insufficient_funds", err.Error(), nil)
	case domain.IsOverpayment(err):
		respondError(c, http.StatusUnprocessableEntity, "overpayment", err.Error(), nil)
	case domain.IsAlreadyReversed(err):
		respondError(c, http.StatusConflict, "already_reversed", err.Error(), nil)
	case domain.IsDuplicatePayment(err):
		respondError(c, http.StatusConflict, "duplicate_payment", err.Error(), nil)
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
