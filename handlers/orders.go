package handlers

import (
	"net/http"

	"food-ordering-api/service"

	"github.com/gin-gonic/gin"
)

type CartItemRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Image    string  `json:"image"`
}

type CreateOrderRequest struct {
	Items           []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	Total           float64           `json:"total" binding:"gte=0"`
	PaymentMethod   string            `json:"payment_method"`
	DeliveryAddress string            `json:"delivery_address"`
	CouponCode      *string           `json:"coupon_code"`
	DiscountAmount  float64           `json:"discount_amount" binding:"gte=0"`
}

type ReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// CreateOrder places a new order (customer only)
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if !bind(c, &req) {
		return
	}
	in := service.CreateOrderInput{
		Items:           make([]service.CartItem, len(req.Items)),
		Total:           req.Total,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
		DiscountAmount:  req.DiscountAmount,
	}
	for i, it := range req.Items {
		in.Items[i] = service.CartItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Image:    it.Image,
		}
	}
	if req.CouponCode != nil {
		in.CouponCode = *req.CouponCode
	}

	order, err := h.orders.Create(c.Request.Context(), caller(c), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetMyOrders returns all orders for the logged-in customer
func (h *Handler) GetMyOrders(c *gin.Context) {
	orders, err := h.orders.ListMine(c.Request.Context(), caller(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list(orders))
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), caller(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrderHistory returns the status audit trail of an order
func (h *Handler) GetOrderHistory(c *gin.Context) {
	history, err := h.orders.History(c.Request.Context(), caller(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list(history))
}

func (h *Handler) AddReview(c *gin.Context) {
	var req ReviewRequest
	if !bind(c, &req) {
		return
	}
	if err := h.orders.AddReview(c.Request.Context(), caller(c), c.Param("id"), req.Rating, req.Review); err != nil {
		h.fail(c, err)
		return
	}
	success(c, "Review added successfully")
}
