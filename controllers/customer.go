package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JSambassador/barber-shop/models"
	"github.com/JSambassador/barber-shop/services"
	"github.com/JSambassador/barber-shop/utils"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name              string   `json:"name" binding:"required"`
	Phone             string   `json:"phone" binding:"required"`
	Email             string   `json:"email"`
	Avatar            string   `json:"avatar"`
	PreferredServices []string `json:"preferredServices"`
	Notes             string   `json:"notes"`
}

type CustomerController struct {
	data *services.DataService
}

func NewCustomerController(data *services.DataService) *CustomerController {
	return &CustomerController{data: data}
}

// List returns all customers
func (cc *CustomerController) List(c *gin.Context) {
	c.JSON(http.StatusOK, cc.data.Customers(c.Request.Context()))
}

// Get returns a single customer by id
func (cc *CustomerController) Get(c *gin.Context) {
	customer, found := cc.data.GetCustomer(c.Request.Context(), c.Param("id"))
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Create adds a new customer
func (cc *CustomerController) Create(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	preferred := input.PreferredServices
	if preferred == nil {
		preferred = []string{}
	}

	customer := models.Customer{
		ID:                uuid.NewString(),
		Name:              input.Name,
		Phone:             input.Phone,
		Email:             input.Email,
		Avatar:            input.Avatar,
		PreferredServices: preferred,
		Notes:             input.Notes,
	}

	cc.data.AddCustomer(c.Request.Context(), customer)
	c.JSON(http.StatusCreated, customer)
}

// Update applies a partial update to an existing customer
func (cc *CustomerController) Update(c *gin.Context) {
	var patch models.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if patch.Phone != nil && !utils.ValidatePhone(*patch.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if patch.TotalVisits != nil && *patch.TotalVisits < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "totalVisits cannot be negative")
		return
	}
	if patch.LastVisit != nil && *patch.LastVisit != "" && !utils.ValidDate(*patch.LastVisit) {
		utils.RespondWithError(c, http.StatusBadRequest, "lastVisit must be YYYY-MM-DD")
		return
	}

	customer, found := cc.data.GetCustomer(c.Request.Context(), c.Param("id"))
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	patch.Apply(&customer)
	cc.data.UpdateCustomer(c.Request.Context(), customer)
	c.JSON(http.StatusOK, customer)
}

// Delete removes a customer
func (cc *CustomerController) Delete(c *gin.Context) {
	if !cc.data.DeleteCustomer(c.Request.Context(), c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
