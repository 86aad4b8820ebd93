package store

import (
	"context"

	"food-ordering-api/models"

	"gorm.io/gorm"
)

// OrderFilter narrows an order listing. Empty fields do not filter.
type OrderFilter struct {
	CustomerID       string
	DeliveryPersonID string
	Status           models.OrderStatus
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}

// CreateOrder inserts the order together with its line-item snapshot.
func (s *Store) CreateOrder(ctx context.Context, o *models.Order) error {
	if o.ID == "" {
		o.ID = newID()
	}
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		o.Items[i].Position = i
	}
	return translate(s.db.WithContext(ctx).Create(o).Error)
}

func (s *Store) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := s.db.WithContext(ctx).Preload("Items", orderedItems).Where("id = ?", id).First(&o).Error
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

// ListOrders returns matching orders, newest first.
func (s *Store) ListOrders(ctx context.Context, f OrderFilter) ([]models.Order, error) {
	orders := []models.Order{}
	query := s.db.WithContext(ctx).Preload("Items", orderedItems)
	if f.CustomerID != "" {
		query = query.Where("customer_id = ?", f.CustomerID)
	}
	if f.DeliveryPersonID != "" {
		query = query.Where("delivery_person_id = ?", f.DeliveryPersonID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if err := query.Order("timestamp desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrder applies fields to one order as a single conditional update.
// It returns ErrNotFound when no order has the id.
func (s *Store) UpdateOrder(ctx context.Context, id string, fields map[string]any) error {
	res := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(fields)
	return affected(res)
}

func (s *Store) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Order{}).Count(&n).Error
	return n, err
}

// OrderTotals returns the stored total of every order.
func (s *Store) OrderTotals(ctx context.Context) ([]float64, error) {
	var totals []float64
	if err := s.db.WithContext(ctx).Model(&models.Order{}).Pluck("total", &totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}

func (s *Store) AppendHistory(ctx context.Context, h *models.OrderStatusHistory) error {
	return translate(s.db.WithContext(ctx).Create(h).Error)
}

// OrderHistory returns the status history of an order, oldest first.
func (s *Store) OrderHistory(ctx context.Context, orderID string) ([]models.OrderStatusHistory, error) {
	history := []models.OrderStatusHistory{}
	err := s.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}
