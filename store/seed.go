package store

import (
	"context"
	"fmt"
	"log/slog"

	"food-ordering-api/models"
)

const unsplash = "https://images.unsplash.com/"

func seedFoodItems() []models.FoodItem {
	item := func(name, category string, price float64, photo, description, restaurant string) models.FoodItem {
		return models.FoodItem{
			Name:        name,
			Category:    category,
			Price:       price,
			Image:       unsplash + photo + "?w=400&h=300&fit=crop",
			Description: description,
			Restaurant:  restaurant,
			Available:   true,
		}
	}
	return []models.FoodItem{
		item("Margherita Pizza", "Pizza", 12.99, "photo-1604068549290-dea0e4a305ca", "Classic tomato and mozzarella", "Italian Corner"),
		item("Chicken Burger", "Burgers", 9.99, "photo-1586190848861-99aa4a171e90", "Grilled chicken with lettuce", "Burger Palace"),
		item("Caesar Salad", "Salads", 7.99, "photo-1550304943-4f24f54ddde9", "Fresh romaine with parmesan", "Green Bowl"),
		item("Pepperoni Pizza", "Pizza", 14.99, "photo-1628840042765-356cda07504e", "Loaded with pepperoni", "Italian Corner"),
		item("Veggie Burger", "Burgers", 8.99, "photo-1525059696034-4967a729002a", "Plant-based patty", "Burger Palace"),
		item("Greek Salad", "Salads", 8.99, "photo-1540189549336-e6e99c3679fe", "Feta, olives, and cucumbers", "Green Bowl"),
		item("Pad Thai", "Asian", 11.99, "photo-1559314809-0d155014e29e", "Traditional Thai noodles", "Thai Express"),
		item("Sushi Platter", "Asian", 16.99, "photo-1579584425555-c3ce17fd4351", "Assorted sushi rolls", "Sushi Master"),
		item("BBQ Ribs", "BBQ", 15.99, "photo-1544025162-d76694265947", "Tender ribs with BBQ sauce", "Grill House"),
		item("Chicken Tikka", "Asian", 13.99, "photo-1599487488170-d11ec9c172f0", "Spicy Indian chicken", "Curry House"),
		item("Pasta Carbonara", "Italian", 11.99, "photo-1612874742237-6526221588e3", "Creamy pasta with bacon", "Italian Corner"),
		item("Fresh Fruit Bowl", "Salads", 6.99, "photo-1564093497595-593b96d80180", "Mixed seasonal fruits", "Green Bowl"),
	}
}

func seedCoupons() []*models.Coupon {
	maxDiscount := func(v float64) *float64 { return &v }
	return []*models.Coupon{
		{Code: "WELCOME10", DiscountType: models.DiscountPercentage, DiscountValue: 10, MinOrderValue: 15, MaxDiscount: maxDiscount(5), ValidUntil: "2026-12-31", Active: true},
		{Code: "SAVE5", DiscountType: models.DiscountFixed, DiscountValue: 5, MinOrderValue: 20, ValidUntil: "2026-12-31", Active: true},
		{Code: "FIRSTORDER", DiscountType: models.DiscountPercentage, DiscountValue: 15, MinOrderValue: 25, MaxDiscount: maxDiscount(10), ValidUntil: "2026-12-31", Active: true},
	}
}

// Seed fills the catalog and coupon tables when they are empty. Running it
// against a populated database is a no-op.
func (s *Store) Seed(ctx context.Context) error {
	items, err := s.CountFoodItems(ctx)
	if err != nil {
		return fmt.Errorf("count food items: %w", err)
	}
	if items == 0 {
		seed := seedFoodItems()
		if err := s.CreateFoodItems(ctx, seed); err != nil {
			return fmt.Errorf("seed food items: %w", err)
		}
		s.log.Info("seeded food items", slog.Int("count", len(seed)))
	}

	coupons, err := s.CountCoupons(ctx)
	if err != nil {
		return fmt.Errorf("count coupons: %w", err)
	}
	if coupons == 0 {
		seed := seedCoupons()
		if err := s.CreateCoupons(ctx, seed...); err != nil {
			return fmt.Errorf("seed coupons: %w", err)
		}
		s.log.Info("seeded coupons", slog.Int("count", len(seed)))
	}
	return nil
}
