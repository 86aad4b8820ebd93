package service

import (
	"context"

	"food-ordering-api/models"
)

type Catalog struct {
	store CatalogStore
}

func NewCatalog(s CatalogStore) *Catalog {
	return &Catalog{store: s}
}

// ListAvailable returns available food items. An empty category or "All"
// disables the category filter.
func (c *Catalog) ListAvailable(ctx context.Context, category string) ([]models.FoodItem, error) {
	if category == models.CategoryAll {
		category = ""
	}
	items, err := c.store.ListAvailableFoodItems(ctx, category)
	return items, storeErr(err, "Food items")
}

// Categories returns the sorted distinct categories with "All" first.
func (c *Catalog) Categories(ctx context.Context) ([]string, error) {
	categories, err := c.store.FoodCategories(ctx)
	if err != nil {
		return nil, storeErr(err, "Categories")
	}
	return append([]string{models.CategoryAll}, categories...), nil
}
