package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"food-ordering-api/models"
	"food-ordering-api/store"
	"food-ordering-api/testutil"
)

func TestSeed_IsIdempotent(t *testing.T) {
	s := testutil.OpenStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := s.Seed(ctx); err != nil {
			t.Fatalf("Seed #%d: %v", i+1, err)
		}
	}
	items, err := s.CountFoodItems(ctx)
	if err != nil {
		t.Fatalf("CountFoodItems: %v", err)
	}
	if items != 12 {
		t.Fatalf("food items = %d, want 12", items)
	}
	coupons, err := s.CountCoupons(ctx)
	if err != nil {
		t.Fatalf("CountCoupons: %v", err)
	}
	if coupons != 3 {
		t.Fatalf("coupons = %d, want 3", coupons)
	}
}

func TestFoodCategories_SortedAndDistinct(t *testing.T) {
	s := testutil.SeededStore(t)
	got, err := s.FoodCategories(context.Background())
	if err != nil {
		t.Fatalf("FoodCategories: %v", err)
	}
	want := []string{"Asian", "BBQ", "Burgers", "Italian", "Pizza", "Salads"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
}

func TestListAvailableFoodItems_SkipsUnavailable(t *testing.T) {
	s := testutil.OpenStore(t)
	ctx := context.Background()
	err := s.CreateFoodItems(ctx, []models.FoodItem{
		{Name: "Soup", Category: "Soups", Price: 4, Available: true},
		{Name: "Stew", Category: "Soups", Price: 6, Available: false},
	})
	if err != nil {
		t.Fatalf("CreateFoodItems: %v", err)
	}
	items, err := s.ListAvailableFoodItems(ctx, "Soups")
	if err != nil {
		t.Fatalf("ListAvailableFoodItems: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Soup" {
		t.Fatalf("items = %+v", items)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := testutil.OpenStore(t)
	ctx := context.Background()
	if err := s.CreateUser(ctx, &models.User{Name: "A", Email: "a@example.com", PasswordHash: "x", Role: models.RoleCustomer}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	err := s.CreateUser(ctx, &models.User{Name: "B", Email: "a@example.com", PasswordHash: "y", Role: models.RoleCustomer})
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestOrders_NewestFirstAndItemOrder(t *testing.T) {
	s := testutil.OpenStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, name := range []string{"first", "second", "third"} {
		o := &models.Order{
			CustomerID:   "c-1",
			CustomerName: name,
			Status:       models.StatusPlaced,
			Timestamp:    base.Add(time.Duration(i) * time.Minute),
			Items: []models.OrderItem{
				{FoodItemID: "f-b", Name: "B", Price: 2, Quantity: 1},
				{FoodItemID: "f-a", Name: "A", Price: 1, Quantity: 3},
			},
		}
		if err := s.CreateOrder(ctx, o); err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
	}

	orders, err := s.ListOrders(ctx, store.OrderFilter{CustomerID: "c-1"})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("len = %d, want 3", len(orders))
	}
	for i, want := range []string{"third", "second", "first"} {
		if orders[i].CustomerName != want {
			t.Fatalf("orders[%d] = %s, want %s", i, orders[i].CustomerName, want)
		}
	}
	if items := orders[0].Items; len(items) != 2 || items[0].FoodItemID != "f-b" || items[1].FoodItemID != "f-a" {
		t.Fatalf("line items out of order: %+v", items)
	}
}

func TestUpdateOrder_MissingIsNotFound(t *testing.T) {
	s := testutil.OpenStore(t)
	err := s.UpdateOrder(context.Background(), "nope", map[string]any{"status": models.StatusPreparing})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateOrder_SameValueStillMatches(t *testing.T) {
	s := testutil.OpenStore(t)
	ctx := context.Background()
	o := &models.Order{CustomerID: "c-1", Status: models.StatusPlaced, Timestamp: time.Now().UTC()}
	if err := s.CreateOrder(ctx, o); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if err := s.UpdateOrder(ctx, o.ID, map[string]any{"status": models.StatusPlaced}); err != nil {
		t.Fatalf("rewriting the same status should not be NotFound: %v", err)
	}
}

func TestOrderByID_Missing(t *testing.T) {
	s := testutil.OpenStore(t)
	if _, err := s.OrderByID(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
