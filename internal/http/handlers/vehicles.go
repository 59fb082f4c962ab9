package handlers

import (
	"net/http"
	"strings"

	"travelagency/internal/domain"
	"travelagency/internal/domain/models"
	"travelagency/internal/repositories"

	"github.com/gin-gonic/gin"
)

type vehiclePayload struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	PlateNumber  string `json:"plateNumber"`
	SeatCapacity int64  `json:"seatCapacity"`
	RatePerDay   int64  `json:"ratePerDay"`
	Status       string `json:"status"`
}

func (p vehiclePayload) toModel() (models.Vehicle, error) {
	if strings.TrimSpace(p.Code) == "" {
		return models.Vehicle{}, domain.ValidationError{Field: "code", Msg: "code is required"}
	}
	if strings.TrimSpace(p.PlateNumber) == "" {
		return models.Vehicle{}, domain.ValidationError{Field: "plateNumber", Msg: "plate number is required"}
	}
	if p.RatePerDay < 0 {
		return models.Vehicle{}, domain.ValidationError{Field: "ratePerDay", Msg: "rate cannot be negative"}
	}
	status := strings.TrimSpace(strings.ToLower(p.Status))
	switch status {
	case "":
		status = "active"
	case "active", "maintenance", "retired":
	default:
		return models.Vehicle{}, domain.ValidationError{Field: "status", Msg: "must be active, maintenance or retired"}
	}
	return models.Vehicle{
		Code:         strings.ToUpper(strings.TrimSpace(p.Code)),
		Name:         strings.TrimSpace(p.Name),
		PlateNumber:  strings.ToUpper(strings.TrimSpace(p.PlateNumber)),
		SeatCapacity: p.SeatCapacity,
		RatePerDay:   p.RatePerDay,
		Status:       status,
	}, nil
}

// GET /api/vehicles?status=
func GetVehicles(c *gin.Context) {
	vehicles, err := repositories.VehicleRepository{}.List(strings.TrimSpace(c.Query("status")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// GET /api/vehicles/:id
func GetVehicleByID(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	vehicle, err := repositories.VehicleRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var req vehiclePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	m, err := req.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	repo := repositories.VehicleRepository{}
	id, err := repo.Create(m)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	vehicle, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req vehiclePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	m, err := req.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	m.ID = id
	repo := repositories.VehicleRepository{}
	if err := repo.Update(m); err != nil {
		RespondDomainError(c, err)
		return
	}
	vehicle, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// DELETE /api/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := (repositories.VehicleRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}
