package service

import (
	"context"

	"food-ordering-api/coupon"
	"food-ordering-api/models"

	"github.com/shopspring/decimal"
)

// Stats is the admin dashboard rollup.
type Stats struct {
	TotalOrders    int64   `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalCustomers int64   `json:"total_customers"`
	TotalItems     int64   `json:"total_items"`
}

type Admin struct {
	orders  OrderStore
	users   UserStore
	catalog CatalogStore
}

func NewAdmin(orders OrderStore, users UserStore, catalog CatalogStore) *Admin {
	return &Admin{orders: orders, users: users, catalog: catalog}
}

// Stats counts orders, customers and available items and sums the stored
// order totals.
func (a *Admin) Stats(ctx context.Context, caller Caller) (*Stats, error) {
	if err := Authorize(caller, OpAdminStats); err != nil {
		return nil, err
	}
	orders, err := a.orders.CountOrders(ctx)
	if err != nil {
		return nil, storeErr(err, "Orders")
	}
	totals, err := a.orders.OrderTotals(ctx)
	if err != nil {
		return nil, storeErr(err, "Orders")
	}
	revenue := decimal.Zero
	for _, t := range totals {
		revenue = revenue.Add(decimal.NewFromFloat(t))
	}
	customers, err := a.users.CountUsersByRole(ctx, models.RoleCustomer)
	if err != nil {
		return nil, storeErr(err, "Users")
	}
	items, err := a.catalog.CountAvailableFoodItems(ctx)
	if err != nil {
		return nil, storeErr(err, "Food items")
	}
	return &Stats{
		TotalOrders:    orders,
		TotalRevenue:   coupon.RoundCents(revenue),
		TotalCustomers: customers,
		TotalItems:     items,
	}, nil
}

// DeliveryPersons lists delivery people, optionally by availability.
func (a *Admin) DeliveryPersons(ctx context.Context, caller Caller, available *bool) ([]models.User, error) {
	if err := Authorize(caller, OpListDeliveryPersons); err != nil {
		return nil, err
	}
	users, err := a.users.ListUsersByRole(ctx, models.RoleDeliveryPerson, available)
	return users, storeErr(err, "Users")
}
