package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JSambassador/barber-shop/models"
	"github.com/JSambassador/barber-shop/services"
	"github.com/JSambassador/barber-shop/utils"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Price       float64                `json:"price" binding:"required,gt=0"`
	Duration    int                    `json:"duration" binding:"required,gt=0"` // in minutes
	Photo       string                 `json:"photo"`
	Category    models.ServiceCategory `json:"category"`
}

type ServiceController struct {
	data *services.DataService
}

func NewServiceController(data *services.DataService) *ServiceController {
	return &ServiceController{data: data}
}

// List returns all services
func (sc *ServiceController) List(c *gin.Context) {
	c.JSON(http.StatusOK, sc.data.Services(c.Request.Context()))
}

// Create adds a new service
func (sc *ServiceController) Create(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.Category.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category")
		return
	}

	svc := models.Service{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Photo:       input.Photo,
		Category:    input.Category,
	}

	sc.data.AddService(c.Request.Context(), svc)
	c.JSON(http.StatusCreated, svc)
}

// Update applies a partial update to an existing service
func (sc *ServiceController) Update(c *gin.Context) {
	var patch models.ServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if patch.Category != nil && !patch.Category.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category")
		return
	}
	if patch.Price != nil && *patch.Price <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must be positive")
		return
	}
	if patch.Duration != nil && *patch.Duration <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Duration must be positive")
		return
	}

	svc, found := sc.data.GetService(c.Request.Context(), c.Param("id"))
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	patch.Apply(&svc)
	sc.data.UpdateService(c.Request.Context(), svc)
	c.JSON(http.StatusOK, svc)
}

// Delete removes a service
func (sc *ServiceController) Delete(c *gin.Context) {
	if !sc.data.DeleteService(c.Request.Context(), c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
