package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"food-ordering-api/apperr"
	"food-ordering-api/coupon"
	"food-ordering-api/models"
	"food-ordering-api/telemetry"
)

// CouponResult is a successful validation.
type CouponResult struct {
	DiscountAmount float64
	Coupon         models.Coupon
}

// NewCouponInput describes a coupon to create.
type NewCouponInput struct {
	Code          string
	DiscountType  models.DiscountType
	DiscountValue float64
	MinOrderValue float64
	MaxDiscount   *float64
	ValidUntil    string
}

type Coupons struct {
	store   CouponStore
	metrics *telemetry.Metrics
	log     *slog.Logger
}

func NewCoupons(s CouponStore, metrics *telemetry.Metrics, log *slog.Logger) *Coupons {
	return &Coupons{store: s, metrics: metrics, log: log}
}

// Validate looks up an active coupon by code (case-insensitively) and
// computes the discount it grants on orderTotal.
func (s *Coupons) Validate(ctx context.Context, code string, orderTotal float64) (*CouponResult, error) {
	c, err := s.store.ActiveCouponByCode(ctx, coupon.NormalizeCode(code))
	if err != nil {
		err = storeErr(err, "Coupon")
		if apperr.Is(err, apperr.KindNotFound) {
			s.observe("not_found")
			return nil, apperr.New(apperr.KindNotFound, "Invalid coupon code")
		}
		return nil, err
	}

	discount, err := coupon.Discount(*c, orderTotal)
	if err != nil {
		var below *coupon.BelowMinimumError
		if errors.As(err, &below) {
			s.observe("below_minimum")
			return nil, apperr.Wrap(apperr.KindValidation, below.Error(), err)
		}
		return nil, apperr.Internal("coupon misconfigured", err)
	}
	s.observe("valid")
	return &CouponResult{DiscountAmount: discount, Coupon: *c}, nil
}

func (s *Coupons) observe(result string) {
	if s.metrics != nil {
		s.metrics.CouponValidations.WithLabelValues(result).Inc()
	}
}

// ListActive returns every active coupon.
func (s *Coupons) ListActive(ctx context.Context) ([]models.Coupon, error) {
	coupons, err := s.store.ListActiveCoupons(ctx)
	return coupons, storeErr(err, "Coupons")
}

// Create stores a new active coupon with its code normalized.
func (s *Coupons) Create(ctx context.Context, caller Caller, in NewCouponInput) (*models.Coupon, error) {
	if err := Authorize(caller, OpCreateCoupon); err != nil {
		return nil, err
	}
	c := &models.Coupon{
		Code:          coupon.NormalizeCode(in.Code),
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		MinOrderValue: in.MinOrderValue,
		MaxDiscount:   in.MaxDiscount,
		ValidUntil:    in.ValidUntil,
		Active:        true,
	}
	if err := validateCoupon(c); err != nil {
		return nil, err
	}
	if err := s.store.CreateCoupons(ctx, c); err != nil {
		if isDuplicate(err) {
			return nil, apperr.Conflict("Coupon code already exists")
		}
		return nil, storeErr(err, "Coupon")
	}
	s.log.Info("coupon created", slog.String("code", c.Code), slog.String("by", caller.UserID))
	return c, nil
}

func validateCoupon(c *models.Coupon) error {
	switch {
	case c.Code == "":
		return apperr.Validation("code is required")
	case !c.DiscountType.Valid():
		return apperr.Validation("discount_type must be percentage or fixed")
	case c.DiscountValue <= 0:
		return apperr.Validation("discount_value must be greater than 0")
	case c.DiscountType == models.DiscountPercentage && c.DiscountValue > 100:
		return apperr.Validation("percentage discount_value must be between 0 and 100")
	case c.MinOrderValue < 0:
		return apperr.Validation("min_order_value must not be negative")
	case c.MaxDiscount != nil && *c.MaxDiscount < 0:
		return apperr.Validation("max_discount must not be negative")
	}
	if _, err := time.Parse(time.DateOnly, c.ValidUntil); err != nil {
		return apperr.Validation("valid_until must be a YYYY-MM-DD date")
	}
	return nil
}
