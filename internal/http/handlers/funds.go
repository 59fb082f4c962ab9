package handlers

import (
	"net/http"
	"strings"

	"travelagency/internal/http/middleware"
	"travelagency/internal/repositories"
	"travelagency/internal/services"

	"github.com/gin-gonic/gin"
)

func fundsSvc(c *gin.Context) services.FundsService {
	return services.FundsService{
		FundsRepo:  repositories.FundsRepository{},
		TicketRepo: repositories.TicketRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
}

// GET /api/funds?fundsFor=&clientId=&status=
func GetFunds(c *gin.Context) {
	entries, err := fundsSvc(c).List(repositories.FundFilter{
		FundsFor: strings.TrimSpace(c.Query("fundsFor")),
		ClientID: queryInt64(c, "clientId"),
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"funds": entries})
}

// GET /api/funds/:id
func GetFundByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	entry, err := fundsSvc(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fund": entry})
}

// GET /api/funds/pools
func GetFundPools(c *gin.Context) {
	pools, err := fundsSvc(c).Pools()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pools": pools})
}

// POST /api/funds/allocate
func AllocateFunds(c *gin.Context) {
	var req services.AllocateFundsInput
	if !BindJSONOrError(c, &req) {
		return
	}
	entry, err := fundsSvc(c).Allocate(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"fund": entry})
}

// POST /api/funds/:id/use
func UseFunds(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req services.UseFundsInput
	if !BindJSONOrError(c, &req) {
		return
	}
	entry, err := fundsSvc(c).Use(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fund": entry})
}

// POST /api/funds/:id/reverse
func ReverseFunds(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	pair, err := fundsSvc(c).Reverse(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"original": pair.Original,
		"reversal": pair.Reversal,
	})
}
