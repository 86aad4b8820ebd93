package service

import (
	"context"
	"testing"
	"time"

	"food-ordering-api/auth"
	"food-ordering-api/config"
	"food-ordering-api/logging"
	"food-ordering-api/models"
	"food-ordering-api/store"
	"food-ordering-api/telemetry"
	"food-ordering-api/testutil"
)

type fixture struct {
	store    *store.Store
	accounts *Accounts
	catalog  *Catalog
	coupons  *Coupons
	orders   *Orders
	admin    *Admin
	metrics  *telemetry.Metrics
	clock    time.Time
}

func newFixture(t *testing.T, cfg config.OrderConfig) *fixture {
	t.Helper()
	s := testutil.SeededStore(t)
	log := logging.Discard()
	metrics := telemetry.NewMetrics()

	f := &fixture{
		store:    s,
		accounts: NewAccounts(s, auth.NewTokens("test-secret", 0), log),
		catalog:  NewCatalog(s),
		coupons:  NewCoupons(s, metrics, log),
		admin:    NewAdmin(s, s, s),
		metrics:  metrics,
		clock:    time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC),
	}
	f.orders = NewOrders(s, s, s, f.coupons, cfg, metrics, log)
	// Each order gets a distinct, increasing timestamp.
	f.orders.now = func() time.Time {
		f.clock = f.clock.Add(time.Second)
		return f.clock
	}
	return f
}

func (f *fixture) register(t *testing.T, name string, role models.UserRole) Caller {
	t.Helper()
	u, err := f.accounts.Register(context.Background(), RegisterInput{
		Name:     name,
		Email:    name + "@example.com",
		Password: "password1",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %s: %v", name, err)
	}
	return Caller{UserID: u.ID, Email: u.Email, Role: u.Role}
}

func (f *fixture) placeOrder(t *testing.T, c Caller, total float64) *models.Order {
	t.Helper()
	o, err := f.orders.Create(context.Background(), c, CreateOrderInput{
		Items:           []CartItem{{ID: "food-1", Name: "Pad Thai", Price: total, Quantity: 1, Image: "img"}},
		Total:           total,
		PaymentMethod:   "cash",
		DeliveryAddress: "1 Main St",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}
