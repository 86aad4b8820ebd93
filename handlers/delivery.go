package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// GetDeliveryOrders returns the orders assigned to the logged-in delivery person
func (h *Handler) GetDeliveryOrders(c *gin.Context) {
	orders, err := h.orders.ListForDeliveryPerson(c.Request.Context(), caller(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list(orders))
}

// SetAvailability toggles whether the delivery person takes new orders
func (h *Handler) SetAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if !bind(c, &req) {
		return
	}
	if err := h.accounts.SetAvailability(c.Request.Context(), caller(c), *req.IsAvailable); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "is_available": *req.IsAvailable})
}
