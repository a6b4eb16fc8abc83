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

// OrderHandler serves the order endpoints
type OrderHandler struct {
	service service.OrderService
	paging  PagingDefaults
	dev     bool
	log     *logger.Logger
}

// NewOrderHandler creates an order handler
func NewOrderHandler(svc service.OrderService, paging PagingDefaults, dev bool, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		paging:  paging,
		dev:     dev,
		log:     log,
	}
}

// GetOrders returns all orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		serverError(c, h.log, "Error fetching orders", err, h.dev)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder returns one order by id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")

	order, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Order not found: %s", id)
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		serverError(c, h.log, "Error fetching order", err, h.dev)
		return
	}

	c.JSON(http.StatusOK, order)
}

// CreateOrder validates the payload, verifies the referenced customer
// and creates a new order
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload validation.OrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warn("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	order, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": ve.Errors})
			return
		}
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Customer not found"})
			return
		}

		serverError(c, h.log, "Error creating order", err, h.dev)
		return
	}

	h.log.Info("Created order with ID: %d", order.ID)
	c.JSON(http.StatusCreated, order)
}

// UpdateOrder validates the payload and updates an existing order
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id := c.Param("id")

	var payload validation.OrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warn("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	order, err := h.service.Update(c.Request.Context(), id, payload)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": ve.Errors})
			return
		}
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Customer not found"})
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Order not found: %s", id)
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		serverError(c, h.log, "Error updating order", err, h.dev)
		return
	}

	h.log.Info("Updated order with ID: %d", order.ID)
	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes one order
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.log.Warn("Order not found: %s", id)
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		serverError(c, h.log, "Error deleting order", err, h.dev)
		return
	}

	h.log.Info("Deleted order with ID: %s", id)
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

// GetPagedOrders returns one page of orders
func (h *OrderHandler) GetPagedOrders(c *gin.Context) {
	pageNumber, pageSize := pagedParams(c, h.paging)

	result, err := h.service.GetPaged(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		serverError(c, h.log, "Error fetching orders", err, h.dev)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCustomerOrdersPaged returns one page of the orders belonging to
// one customer, or 404 when the customer is absent
func (h *OrderHandler) GetCustomerOrdersPaged(c *gin.Context) {
	customerID := c.Param("id")
	pageNumber, pageSize := pagedParams(c, h.paging)

	result, err := h.service.GetPagedByCustomer(c.Request.Context(), customerID, pageNumber, pageSize)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			h.log.Warn("Customer not found: %s", customerID)
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}

		serverError(c, h.log, "Error fetching customer orders", err, h.dev)
		return
	}

	c.JSON(http.StatusOK, result)
}
