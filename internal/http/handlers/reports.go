package handlers

import (
	"net/http"

	"travelagency/internal/services"

	"github.com/gin-gonic/gin"
)

func reportsSvc() services.ReportsService {
	return services.ReportsService{}
}

// GET /api/reports/funds
func GetFundsReport(c *gin.Context) {
	filter := services.FundsReportFilter{
		FundsFor:  c.Query("fundsFor"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	statements, err := reportsSvc().FundsReport(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statements": statements})
}

// GET /api/reports/outstanding
func GetOutstandingReport(c *gin.Context) {
	report, err := reportsSvc().Outstanding()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}
