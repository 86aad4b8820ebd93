package store

import (
	"context"
	"slices"

	"food-ordering-api/models"
)

// ListAvailableFoodItems returns available items, filtered by exact category
// when one is given.
func (s *Store) ListAvailableFoodItems(ctx context.Context, category string) ([]models.FoodItem, error) {
	items := []models.FoodItem{}
	query := s.db.WithContext(ctx).Where("available = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FoodCategories returns the distinct categories over all items, sorted.
func (s *Store) FoodCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.db.WithContext(ctx).Model(&models.FoodItem{}).Distinct().Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	slices.Sort(categories)
	return categories, nil
}

func (s *Store) FoodItemsByIDs(ctx context.Context, ids []string) (map[string]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.FoodItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return byID, nil
}

func (s *Store) CountAvailableFoodItems(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.FoodItem{}).Where("available = ?", true).Count(&n).Error
	return n, err
}

func (s *Store) CountFoodItems(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.FoodItem{}).Count(&n).Error
	return n, err
}

func (s *Store) CreateFoodItems(ctx context.Context, items []models.FoodItem) error {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = newID()
		}
	}
	return translate(s.db.WithContext(ctx).Create(&items).Error)
}
