// Package service implements the catalog, coupon, order lifecycle, account
// and admin operations on top of the store.
package service

import (
	"context"
	"errors"

	"food-ordering-api/apperr"
	"food-ordering-api/models"
	"food-ordering-api/store"
	"food-ordering-api/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// UserStore is the user persistence the services need.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByIDAndRole(ctx context.Context, id string, role models.UserRole) (*models.User, error)
	ListUsersByRole(ctx context.Context, role models.UserRole, available *bool) ([]models.User, error)
	CountUsersByRole(ctx context.Context, role models.UserRole) (int64, error)
	UpdateUser(ctx context.Context, id string, fields map[string]any) error
}

// CatalogStore is the read side of the food catalog.
type CatalogStore interface {
	ListAvailableFoodItems(ctx context.Context, category string) ([]models.FoodItem, error)
	FoodCategories(ctx context.Context) ([]string, error)
	FoodItemsByIDs(ctx context.Context, ids []string) (map[string]models.FoodItem, error)
	CountAvailableFoodItems(ctx context.Context) (int64, error)
}

// CouponStore persists coupons.
type CouponStore interface {
	ActiveCouponByCode(ctx context.Context, code string) (*models.Coupon, error)
	ListActiveCoupons(ctx context.Context) ([]models.Coupon, error)
	CreateCoupons(ctx context.Context, coupons ...*models.Coupon) error
}

// OrderStore persists orders and their status history.
type OrderStore interface {
	CreateOrder(ctx context.Context, o *models.Order) error
	OrderByID(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, f store.OrderFilter) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id string, fields map[string]any) error
	CountOrders(ctx context.Context) (int64, error)
	OrderTotals(ctx context.Context) ([]float64, error)
	AppendHistory(ctx context.Context, h *models.OrderStatusHistory) error
	OrderHistory(ctx context.Context, orderID string) ([]models.OrderStatusHistory, error)
}

// storeErr classifies a store error; what names the missing entity.
func storeErr(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound(what)
	}
	return apperr.Internal("storage failure", err)
}

func startSpan(ctx context.Context, name string, c Caller) (context.Context, trace.Span) {
	return telemetry.Tracer().Start(ctx, name, trace.WithAttributes(
		attribute.String("caller.id", c.UserID),
		attribute.String("caller.role", string(c.Role)),
	))
}

// endSpan records err on span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
