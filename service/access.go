package service

import (
	"fmt"
	"slices"
	"strings"

	"food-ordering-api/apperr"
	"food-ordering-api/models"
)

// Caller is the authenticated identity a request acts as.
type Caller struct {
	UserID string
	Email  string
	Role   models.UserRole
}

// Operation names a role-gated action.
type Operation string

const (
	OpCreateOrder         Operation = "order.create"
	OpListMyOrders        Operation = "order.list_mine"
	OpGetOrder            Operation = "order.get"
	OpOrderHistory        Operation = "order.history"
	OpSetOrderStatus      Operation = "order.set_status"
	OpAssignDelivery      Operation = "order.assign_delivery"
	OpAddReview           Operation = "order.add_review"
	OpListAllOrders       Operation = "order.list_all"
	OpListDeliveryOrders  Operation = "order.list_for_delivery"
	OpAdminStats          Operation = "admin.stats"
	OpListDeliveryPersons Operation = "admin.list_delivery_persons"
	OpCreateCoupon        Operation = "coupon.create"
	OpSetAvailability     Operation = "user.set_availability"
	OpProfile             Operation = "user.profile"
)

// anyRole marks operations open to every authenticated caller.
var anyRole = []models.UserRole{models.RoleCustomer, models.RoleAdmin, models.RoleDeliveryPerson}

// permissions is the role table for every gated operation.
var permissions = map[Operation][]models.UserRole{
	OpCreateOrder:         {models.RoleCustomer},
	OpListMyOrders:        {models.RoleCustomer},
	OpGetOrder:            anyRole,
	OpOrderHistory:        anyRole,
	OpSetOrderStatus:      {models.RoleAdmin, models.RoleDeliveryPerson},
	OpAssignDelivery:      {models.RoleAdmin},
	OpAddReview:           anyRole,
	OpListAllOrders:       {models.RoleAdmin},
	OpListDeliveryOrders:  {models.RoleDeliveryPerson},
	OpAdminStats:          {models.RoleAdmin},
	OpListDeliveryPersons: {models.RoleAdmin},
	OpCreateCoupon:        {models.RoleAdmin},
	OpSetAvailability:     {models.RoleDeliveryPerson},
	OpProfile:             anyRole,
}

// RolesFor returns the roles allowed to perform op.
func RolesFor(op Operation) []models.UserRole {
	return slices.Clone(permissions[op])
}

// Authorize fails with Forbidden unless the caller's role may perform op.
// Unknown operations are denied.
func Authorize(c Caller, op Operation) error {
	allowed, ok := permissions[op]
	if !ok {
		return apperr.Forbidden(fmt.Sprintf("operation %s is not permitted", op))
	}
	if slices.Contains(allowed, c.Role) {
		return nil
	}
	return apperr.Forbidden("Access denied. Required role(s): " + rolesString(allowed))
}

func rolesString(roles []models.UserRole) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
