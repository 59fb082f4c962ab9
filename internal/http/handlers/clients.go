package handlers

import (
	"net/http"
	"strings"

	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"

	"github.com/gin-gonic/gin"
)

type clientPayload struct {
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Mobile      string `json:"mobile"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

func (p clientPayload) toModel() (models.Client, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return models.Client{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	// The dashboard form requires at least one reachable number.
	if strings.TrimSpace(p.Phone) == "" && strings.TrimSpace(p.Mobile) == "" {
		return models.Client{}, domain.ValidationError{Field: "phone", Msg: "phone or mobile is required"}
	}
	return models.Client{
		Name:        name,
		CompanyName: strings.TrimSpace(p.CompanyName),
		Email:       strings.TrimSpace(p.Email),
		Phone:       strings.TrimSpace(p.Phone),
		Mobile:      strings.TrimSpace(p.Mobile),
		Address:     strings.TrimSpace(p.Address),
		Notes:       p.Notes,
	}, nil
}

// GET /api/clients?q=
func GetClients(c *gin.Context) {
	repo := repositories.ClientRepository{}
	clients, err := repo.List(strings.TrimSpace(c.Query("q")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// GET /api/clients/:id
func GetClientByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	client, err := repositories.ClientRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// POST /api/clients
func CreateClient(c *gin.Context) {
	var req clientPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	m, err := req.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	repo := repositories.ClientRepository{}
	id, err := repo.Create(m)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	client, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": client})
}

// PUT /api/clients/:id
func UpdateClient(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req clientPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	m, err := req.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	m.ID = id
	repo := repositories.ClientRepository{}
	if err := repo.Update(m); err != nil {
		RespondDomainError(c, err)
		return
	}
	client, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// DELETE /api/clients/:id
func DeleteClient(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := (repositories.ClientRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}
