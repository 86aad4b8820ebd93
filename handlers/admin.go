package handlers

import (
	"net/http"
	"strconv"

	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required,order_status"`
}

type AssignDeliveryRequest struct {
	DeliveryPersonID string `json:"delivery_person_id" binding:"required"`
}

// AdminListOrders returns all orders, newest first, optionally by ?status=
func (h *Handler) AdminListOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context(), caller(c), models.OrderStatus(c.Query("status")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list(orders))
}

// UpdateOrderStatus overwrites an order's status (admin or delivery person)
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !bind(c, &req) {
		return
	}
	if err := h.orders.SetStatus(c.Request.Context(), caller(c), c.Param("id"), req.Status); err != nil {
		h.fail(c, err)
		return
	}
	success(c, "Order status updated")
}

func (h *Handler) AssignDelivery(c *gin.Context) {
	var req AssignDeliveryRequest
	if !bind(c, &req) {
		return
	}
	if err := h.orders.AssignDelivery(c.Request.Context(), caller(c), c.Param("id"), req.DeliveryPersonID); err != nil {
		h.fail(c, err)
		return
	}
	success(c, "Delivery person assigned")
}

// ListDeliveryPersons returns delivery people, optionally by ?available=
func (h *Handler) ListDeliveryPersons(c *gin.Context) {
	var available *bool
	if raw := c.Query("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available must be true or false"})
			return
		}
		available = &v
	}
	users, err := h.admin.DeliveryPersons(c.Request.Context(), caller(c), available)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list(users))
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context(), caller(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
