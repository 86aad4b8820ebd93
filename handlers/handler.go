// Package handlers adapts HTTP requests onto the service layer.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"food-ordering-api/apperr"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/service"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	accounts *service.Accounts
	catalog  *service.Catalog
	coupons  *service.Coupons
	orders   *service.Orders
	admin    *service.Admin
	db       Pinger
	log      *slog.Logger
}

func New(accounts *service.Accounts, catalog *service.Catalog, coupons *service.Coupons,
	orders *service.Orders, admin *service.Admin, db Pinger, log *slog.Logger) *Handler {
	return &Handler{
		accounts: accounts,
		catalog:  catalog,
		coupons:  coupons,
		orders:   orders,
		admin:    admin,
		db:       db,
		log:      log,
	}
}

// fail renders err as {"error": message} with the status of its kind.
// Internal errors are logged and never echoed to the client.
func (h *Handler) fail(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		h.log.ErrorContext(c.Request.Context(), "request failed",
			slog.String("route", c.FullPath()),
			slog.Any("error", err))
	}
	c.JSON(kind.HTTPStatus(), gin.H{"error": apperr.Message(err)})
}

// caller returns the authenticated identity set by middleware.AuthRequired.
func caller(c *gin.Context) service.Caller {
	cl, _ := middleware.GetCaller(c)
	return cl
}

// bind decodes the JSON body into req and answers 400 on failure.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindError(err)})
		return false
	}
	return true
}

func bindError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body: " + err.Error()
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "order_status":
		return field + " must be one of: " + joinStatuses(statemachine.Statuses())
	case "user_role":
		return field + " must be one of: customer, admin, delivery_person"
	default:
		return field + " is invalid"
	}
}

func joinStatuses(statuses []models.OrderStatus) string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// RegisterValidators installs the domain validation tags on gin's validator
// and reports fields by their JSON names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return statemachine.IsKnown(models.OrderStatus(fl.Field().String()))
	}); err != nil {
		return fmt.Errorf("register order_status: %w", err)
	}
	if err := v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	}); err != nil {
		return fmt.Errorf("register user_role: %w", err)
	}
	return nil
}

// list keeps empty results encoded as [] rather than null.
func list[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
