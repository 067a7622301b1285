package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JSambassador/barber-shop/models"
	"github.com/JSambassador/barber-shop/services"
	"github.com/JSambassador/barber-shop/utils"
)

// CreateAppointmentInput defines the expected JSON structure for booking an appointment
type CreateAppointmentInput struct {
	CustomerID string                   `json:"customerId" binding:"required"`
	ServiceID  string                   `json:"serviceId" binding:"required"`
	Date       string                   `json:"date" binding:"required"`
	Time       string                   `json:"time" binding:"required"`
	Status     models.AppointmentStatus `json:"status"`
	Notes      string                   `json:"notes"`
}

type AppointmentController struct {
	data *services.DataService
}

func NewAppointmentController(data *services.DataService) *AppointmentController {
	return &AppointmentController{data: data}
}

// List returns appointments, optionally filtered by date and/or customerId
// query parameters.
func (ac *AppointmentController) List(c *gin.Context) {
	appointments := ac.data.Appointments(c.Request.Context())

	date := c.Query("date")
	customerID := c.Query("customerId")
	if date == "" && customerID == "" {
		c.JSON(http.StatusOK, appointments)
		return
	}

	filtered := make([]models.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if date != "" && appt.Date != date {
			continue
		}
		if customerID != "" && appt.CustomerID != customerID {
			continue
		}
		filtered = append(filtered, appt)
	}
	c.JSON(http.StatusOK, filtered)
}

// Create books a new appointment
func (ac *AppointmentController) Create(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Status == "" {
		input.Status = models.StatusPending
	}
	if !input.Status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		return
	}
	if !utils.ValidDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}
	if !utils.ValidTime(input.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Time must be HH:MM")
		return
	}

	appt := models.Appointment{
		ID:         uuid.NewString(),
		CustomerID: input.CustomerID,
		ServiceID:  input.ServiceID,
		Date:       input.Date,
		Time:       input.Time,
		Status:     input.Status,
		Notes:      input.Notes,
	}

	ac.data.AddAppointment(c.Request.Context(), appt)
	c.JSON(http.StatusCreated, appt)
}

// Update applies a partial update to an existing appointment. Completing an
// appointment here maintains the customer's visit stats just like on-device.
func (ac *AppointmentController) Update(c *gin.Context) {
	var patch models.AppointmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if patch.Status != nil && !patch.Status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		return
	}
	if patch.Date != nil && !utils.ValidDate(*patch.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}
	if patch.Time != nil && !utils.ValidTime(*patch.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Time must be HH:MM")
		return
	}

	id := c.Param("id")
	var current *models.Appointment
	for _, appt := range ac.data.Appointments(c.Request.Context()) {
		if appt.ID == id {
			a := appt
			current = &a
			break
		}
	}
	if current == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	patch.Apply(current)
	ac.data.UpdateAppointment(c.Request.Context(), *current)
	c.JSON(http.StatusOK, *current)
}

// Delete removes an appointment
func (ac *AppointmentController) Delete(c *gin.Context) {
	if !ac.data.DeleteAppointment(c.Request.Context(), c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
