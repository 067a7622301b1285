package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/JSambassador/barber-shop/models"
)

// Services

func (c *Client) GetServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := c.request(ctx, http.MethodGet, "/services", nil, &services)
	return services, err
}

func (c *Client) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	var created models.Service
	err := c.request(ctx, http.MethodPost, "/services", svc, &created)
	return created, err
}

func (c *Client) UpdateService(ctx context.Context, id string, patch models.ServicePatch) (models.Service, error) {
	var updated models.Service
	err := c.request(ctx, http.MethodPut, "/services/"+url.PathEscape(id), patch, &updated)
	return updated, err
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/services/"+url.PathEscape(id), nil, nil)
}

// Customers

func (c *Client) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := c.request(ctx, http.MethodGet, "/customers", nil, &customers)
	return customers, err
}

func (c *Client) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	var customer models.Customer
	err := c.request(ctx, http.MethodGet, "/customers/"+url.PathEscape(id), nil, &customer)
	return customer, err
}

func (c *Client) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	var created models.Customer
	err := c.request(ctx, http.MethodPost, "/customers", customer, &created)
	return created, err
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, patch models.CustomerPatch) (models.Customer, error) {
	var updated models.Customer
	err := c.request(ctx, http.MethodPut, "/customers/"+url.PathEscape(id), patch, &updated)
	return updated, err
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/customers/"+url.PathEscape(id), nil, nil)
}

// Appointments

func (c *Client) GetAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := c.request(ctx, http.MethodGet, "/appointments", nil, &appointments)
	return appointments, err
}

func (c *Client) GetAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	endpoint := "/appointments?date=" + url.QueryEscape(date)
	err := c.request(ctx, http.MethodGet, endpoint, nil, &appointments)
	return appointments, err
}

func (c *Client) GetAppointmentsByCustomer(ctx context.Context, customerID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	endpoint := "/appointments?customerId=" + url.QueryEscape(customerID)
	err := c.request(ctx, http.MethodGet, endpoint, nil, &appointments)
	return appointments, err
}

func (c *Client) CreateAppointment(ctx context.Context, appt models.Appointment) (models.Appointment, error) {
	var created models.Appointment
	err := c.request(ctx, http.MethodPost, "/appointments", appt, &created)
	return created, err
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, patch models.AppointmentPatch) (models.Appointment, error) {
	var updated models.Appointment
	err := c.request(ctx, http.MethodPut, "/appointments/"+url.PathEscape(id), patch, &updated)
	return updated, err
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/appointments/"+url.PathEscape(id), nil, nil)
}

// Queue

func (c *Client) GetQueue(ctx context.Context) ([]models.QueueCustomer, error) {
	var queue []models.QueueCustomer
	err := c.request(ctx, http.MethodGet, "/queue", nil, &queue)
	return queue, err
}

func (c *Client) AddToQueue(ctx context.Context, walkIn models.QueueCustomer) (models.QueueCustomer, error) {
	var created models.QueueCustomer
	err := c.request(ctx, http.MethodPost, "/queue", walkIn, &created)
	return created, err
}

func (c *Client) RemoveFromQueue(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/queue/"+url.PathEscape(id), nil, nil)
}

// Sync

type SyncResult struct {
	Success bool `json:"success"`
}

type syncPayload struct {
	Services     *[]models.Service     `json:"services,omitempty"`
	Customers    *[]models.Customer    `json:"customers,omitempty"`
	Appointments *[]models.Appointment `json:"appointments,omitempty"`
}

// SyncData posts the provided collections to the batch sync endpoint. A nil
// slice is omitted from the payload entirely; an empty non-nil slice is sent
// as an empty array and clears the server-side collection.
func (c *Client) SyncData(ctx context.Context, services []models.Service, customers []models.Customer, appointments []models.Appointment) (SyncResult, error) {
	var payload syncPayload
	if services != nil {
		payload.Services = &services
	}
	if customers != nil {
		payload.Customers = &customers
	}
	if appointments != nil {
		payload.Appointments = &appointments
	}

	var result SyncResult
	err := c.request(ctx, http.MethodPost, "/sync", payload, &result)
	return result, err
}

// HealthCheck probes the liveness endpoint. nil means reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.request(ctx, http.MethodGet, "/health", nil, nil)
}
