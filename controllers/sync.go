package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JSambassador/barber-shop/models"
	"github.com/JSambassador/barber-shop/services"
	"github.com/JSambassador/barber-shop/utils"
)

// SyncInput carries the collections a device pushes in one batch. Absent
// collections are left untouched; a present empty array clears one.
type SyncInput struct {
	Services     *[]models.Service     `json:"services"`
	Customers    *[]models.Customer    `json:"customers"`
	Appointments *[]models.Appointment `json:"appointments"`
}

type SyncController struct {
	data *services.DataService
}

func NewSyncController(data *services.DataService) *SyncController {
	return &SyncController{data: data}
}

// Sync replaces the provided server-side collections wholesale.
func (sc *SyncController) Sync(c *gin.Context) {
	var input SyncInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	if input.Services != nil {
		sc.data.SaveServices(ctx, *input.Services)
	}
	if input.Customers != nil {
		sc.data.SaveCustomers(ctx, *input.Customers)
	}
	if input.Appointments != nil {
		sc.data.SaveAppointments(ctx, *input.Appointments)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Health is the liveness probe used by the device before syncing.
func (sc *SyncController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
