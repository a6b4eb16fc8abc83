package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dhoini/Tims-microservice/internal/domain"
	"github.com/Dhoini/Tims-microservice/internal/service"
	"github.com/Dhoini/Tims-microservice/internal/validation"
	"github.com/Dhoini/Tims-microservice/pkg/logger"
)

// CustomerHandler serves the customer endpoints
type CustomerHandler struct {
	service service.CustomerService
	paging  PagingDefaults
	dev     bool
	log     *logger.Logger
}

// NewCustomerHandler creates a customer handler
func NewCustomerHandler(svc service.CustomerService, paging PagingDefaults, dev bool, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: svc,
		paging:  paging,
		dev:     dev,
		log:     log,
	}
}

// GetCustomers returns all customers
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	customers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		serverError(c, h.log, "Error fetching customers", err, h.dev)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer returns one customer by id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id := c.Param("id")

	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Customer not found: %s", id)
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}

		serverError(c, h.log, "Error fetching customer", err, h.dev)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// CreateCustomer validates and creates a new customer
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload validation.CustomerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warn("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	customer, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": ve.Errors})
			return
		}

		serverError(c, h.log, "Error creating customer", err, h.dev)
		return
	}

	h.log.Info("Created customer with ID: %d", customer.ID)
	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer validates and updates an existing customer
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id := c.Param("id")

	var payload validation.CustomerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warn("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	customer, err := h.service.Update(c.Request.Context(), id, payload)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": ve.Errors})
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Customer not found: %s", id)
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}

		serverError(c, h.log, "Error updating customer", err, h.dev)
		return
	}

	h.log.Info("Updated customer with ID: %d", customer.ID)
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer and its orders
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Customer not found: %s", id)
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}

		serverError(c, h.log, "Error deleting customer", err, h.dev)
		return
	}

	h.log.Info("Deleted customer with ID: %s", id)
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// GetPagedCustomers returns one page of customers
func (h *CustomerHandler) GetPagedCustomers(c *gin.Context) {
	pageNumber, pageSize := pagedParams(c, h.paging)

	result, err := h.service.GetPaged(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		serverError(c, h.log, "Error fetching customers", err, h.dev)
		return
	}

	c.JSON(http.StatusOK, result)
}
