package handlers

import (
	"net/http"

	"food-ordering-api/models"
	"food-ordering-api/service"

	"github.com/gin-gonic/gin"
)

type ValidateCouponRequest struct {
	Code       string  `json:"code" binding:"required"`
	OrderTotal float64 `json:"order_total" binding:"gte=0"`
}

type CreateCouponRequest struct {
	Code          string              `json:"code" binding:"required"`
	DiscountType  models.DiscountType `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue float64             `json:"discount_value" binding:"required,gt=0"`
	MinOrderValue float64             `json:"min_order_value" binding:"gte=0"`
	MaxDiscount   *float64            `json:"max_discount" binding:"omitempty,gte=0"`
	ValidUntil    string              `json:"valid_until" binding:"required"`
}

func (h *Handler) ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
	if !bind(c, &req) {
		return
	}
	res, err := h.coupons.Validate(c.Request.Context(), req.Code, req.OrderTotal)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":           true,
		"discount_amount": res.DiscountAmount,
		"coupon":          res.Coupon,
	})
}

// ListCoupons returns the active coupons
func (h *Handler) ListCoupons(c *gin.Context) {
	coupons, err := h.coupons.ListActive(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list(coupons))
}

// CreateCoupon adds a coupon (admin only)
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req CreateCouponRequest
	if !bind(c, &req) {
		return
	}
	coupon, err := h.coupons.Create(c.Request.Context(), caller(c), service.NewCouponInput{
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MinOrderValue: req.MinOrderValue,
		MaxDiscount:   req.MaxDiscount,
		ValidUntil:    req.ValidUntil,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, coupon)
}
