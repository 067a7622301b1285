package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JSambassador/barber-shop/models"
	"github.com/JSambassador/barber-shop/services"
	"github.com/JSambassador/barber-shop/utils"
)

// AddToQueueInput defines the expected JSON structure for adding a walk-in
type AddToQueueInput struct {
	Name              string     `json:"name" binding:"required"`
	ServiceID         string     `json:"serviceId" binding:"required"`
	AddedAt           *time.Time `json:"addedAt"`
	EstimatedWaitTime int        `json:"estimatedWaitTime" binding:"min=0"`
}

type QueueController struct {
	data *services.DataService
}

func NewQueueController(data *services.DataService) *QueueController {
	return &QueueController{data: data}
}

// List returns the walk-in queue in insertion order
func (qc *QueueController) List(c *gin.Context) {
	c.JSON(http.StatusOK, qc.data.Queue(c.Request.Context()))
}

// Add puts a walk-in at the end of the queue
func (qc *QueueController) Add(c *gin.Context) {
	var input AddToQueueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	addedAt := time.Now().UTC()
	if input.AddedAt != nil {
		addedAt = *input.AddedAt
	}

	walkIn := models.QueueCustomer{
		ID:                uuid.NewString(),
		Name:              input.Name,
		ServiceID:         input.ServiceID,
		AddedAt:           addedAt,
		EstimatedWaitTime: input.EstimatedWaitTime,
	}

	qc.data.AddToQueue(c.Request.Context(), walkIn)
	c.JSON(http.StatusCreated, walkIn)
}

// Remove takes a walk-in out of the queue
func (qc *QueueController) Remove(c *gin.Context) {
	if !qc.data.RemoveFromQueue(c.Request.Context(), c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Queue entry not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from queue"})
}
