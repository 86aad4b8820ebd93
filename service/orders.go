package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"food-ordering-api/apperr"
	"food-ordering-api/config"
	"food-ordering-api/coupon"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"
	"food-ordering-api/store"
	"food-ordering-api/telemetry"

	"github.com/shopspring/decimal"
)

// CartItem is one line of the cart submitted with a new order.
type CartItem struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
	Image    string
}

// CreateOrderInput is the payload of a new order. Total is the pre-discount
// sum as computed by the client.
type CreateOrderInput struct {
	Items           []CartItem
	Total           float64
	PaymentMethod   string
	DeliveryAddress string
	CouponCode      string
	DiscountAmount  float64
}

// Orders owns the order lifecycle: creation, status changes, delivery
// assignment and reviews.
type Orders struct {
	orders  OrderStore
	users   UserStore
	catalog CatalogStore
	coupons *Coupons
	cfg     config.OrderConfig
	metrics *telemetry.Metrics
	log     *slog.Logger
	now     func() time.Time
}

func NewOrders(orders OrderStore, users UserStore, catalog CatalogStore, coupons *Coupons,
	cfg config.OrderConfig, metrics *telemetry.Metrics, log *slog.Logger) *Orders {
	return &Orders{
		orders:  orders,
		users:   users,
		catalog: catalog,
		coupons: coupons,
		cfg:     cfg,
		metrics: metrics,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create places a new order for the calling customer. The cart is copied
// into line-item snapshots and the order starts in Placed.
func (s *Orders) Create(ctx context.Context, caller Caller, in CreateOrderInput) (order *models.Order, err error) {
	ctx, span := startSpan(ctx, "orders.Create", caller)
	defer func() { endSpan(span, err) }()

	if err := Authorize(caller, OpCreateOrder); err != nil {
		return nil, err
	}
	if err := validateCart(in); err != nil {
		return nil, err
	}

	customer, err := s.users.UserByID(ctx, caller.UserID)
	if err != nil {
		return nil, storeErr(err, "User")
	}

	items := make([]models.OrderItem, len(in.Items))
	for i, it := range in.Items {
		items[i] = models.OrderItem{
			FoodItemID: it.ID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
			Image:      it.Image,
		}
	}
	total, discount := in.Total, in.DiscountAmount
	code := strings.TrimSpace(in.CouponCode)

	if s.cfg.VerifyPricing {
		items, total, discount, err = s.price(ctx, items, code)
		if err != nil {
			return nil, err
		}
		code = coupon.NormalizeCode(code)
	}

	order = &models.Order{
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		Items:           items,
		Total:           total,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: in.DeliveryAddress,
		DiscountAmount:  discount,
		Status:          models.StatusPlaced,
		Timestamp:       s.now(),
	}
	if code != "" {
		order.CouponCode = &code
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, apperr.Internal("Failed to place order", err)
	}
	s.recordHistory(ctx, order.ID, "", models.StatusPlaced, caller.UserID, "Order placed by customer")
	if s.metrics != nil {
		s.metrics.OrdersCreated.Inc()
	}
	s.log.Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("customer_id", order.CustomerID),
		slog.Float64("total", order.Total),
		slog.Float64("discount", order.DiscountAmount))
	return order, nil
}

func validateCart(in CreateOrderInput) error {
	if len(in.Items) == 0 {
		return apperr.Validation("cart items must not be empty")
	}
	for _, it := range in.Items {
		if it.ID == "" {
			return apperr.Validation("every cart item needs an id")
		}
		if it.Quantity < 1 {
			return apperr.Validation("quantity of %q must be at least 1", it.Name)
		}
		if it.Price < 0 {
			return apperr.Validation("price of %q must not be negative", it.Name)
		}
	}
	if in.Total < 0 || in.DiscountAmount < 0 {
		return apperr.Validation("total and discount_amount must not be negative")
	}
	return nil
}

// price replaces the client's figures with catalog prices and the coupon
// rule. Line items keep their cart order.
func (s *Orders) price(ctx context.Context, items []models.OrderItem, code string) ([]models.OrderItem, float64, float64, error) {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.FoodItemID
	}
	catalog, err := s.catalog.FoodItemsByIDs(ctx, ids)
	if err != nil {
		return nil, 0, 0, storeErr(err, "Food items")
	}

	sum := decimal.Zero
	for i, it := range items {
		food, ok := catalog[it.FoodItemID]
		if !ok || !food.Available {
			return nil, 0, 0, apperr.Validation("food item %s is not available", it.FoodItemID)
		}
		items[i].Name = food.Name
		items[i].Price = food.Price
		items[i].Image = food.Image
		sum = sum.Add(decimal.NewFromFloat(food.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	total := coupon.RoundCents(sum)

	if code == "" {
		return items, total, 0, nil
	}
	res, err := s.coupons.Validate(ctx, code, total)
	if err != nil {
		return nil, 0, 0, err
	}
	return items, total, res.DiscountAmount, nil
}

// ListMine returns the calling customer's orders, newest first.
func (s *Orders) ListMine(ctx context.Context, caller Caller) ([]models.Order, error) {
	if err := Authorize(caller, OpListMyOrders); err != nil {
		return nil, err
	}
	orders, err := s.orders.ListOrders(ctx, store.OrderFilter{CustomerID: caller.UserID})
	return orders, storeErr(err, "Orders")
}

// Get returns one order.
func (s *Orders) Get(ctx context.Context, caller Caller, id string) (*models.Order, error) {
	if err := Authorize(caller, OpGetOrder); err != nil {
		return nil, err
	}
	order, err := s.orders.OrderByID(ctx, id)
	return order, storeErr(err, "Order")
}

// History returns the recorded status changes of an order.
func (s *Orders) History(ctx context.Context, caller Caller, id string) ([]models.OrderStatusHistory, error) {
	if err := Authorize(caller, OpOrderHistory); err != nil {
		return nil, err
	}
	if _, err := s.orders.OrderByID(ctx, id); err != nil {
		return nil, storeErr(err, "Order")
	}
	history, err := s.orders.OrderHistory(ctx, id)
	return history, storeErr(err, "Order history")
}

// SetStatus overwrites the order status. The status must be part of the
// vocabulary; the transition graph is only enforced in strict mode.
func (s *Orders) SetStatus(ctx context.Context, caller Caller, id string, status models.OrderStatus) (err error) {
	ctx, span := startSpan(ctx, "orders.SetStatus", caller)
	defer func() { endSpan(span, err) }()

	if err := Authorize(caller, OpSetOrderStatus); err != nil {
		return err
	}
	if !statemachine.IsKnown(status) {
		return apperr.Validation("unknown order status %q", status)
	}

	current, err := s.orders.OrderByID(ctx, id)
	if err != nil {
		return storeErr(err, "Order")
	}
	if s.cfg.StrictTransitions {
		if err := statemachine.CanTransition(current.Status, status, caller.Role); err != nil {
			return apperr.Wrap(apperr.KindValidation, err.Error(), err)
		}
	}

	if err := s.orders.UpdateOrder(ctx, id, map[string]any{"status": status}); err != nil {
		return storeErr(err, "Order")
	}
	s.recordHistory(ctx, id, current.Status, status, caller.UserID, "Status updated by "+string(caller.Role))
	if s.metrics != nil {
		s.metrics.StatusChanges.WithLabelValues(string(status)).Inc()
	}
	s.log.Info("order status updated",
		slog.String("order_id", id),
		slog.String("from", string(current.Status)),
		slog.String("to", string(status)),
		slog.String("by", caller.UserID))
	return nil
}

// AssignDelivery hands the order to a delivery person and moves it to
// Assigned in the same update, whatever its previous status.
func (s *Orders) AssignDelivery(ctx context.Context, caller Caller, id, personID string) (err error) {
	ctx, span := startSpan(ctx, "orders.AssignDelivery", caller)
	defer func() { endSpan(span, err) }()

	if err := Authorize(caller, OpAssignDelivery); err != nil {
		return err
	}
	person, err := s.users.UserByIDAndRole(ctx, personID, models.RoleDeliveryPerson)
	if err != nil {
		return storeErr(err, "Delivery person")
	}

	current, err := s.orders.OrderByID(ctx, id)
	if err != nil {
		return storeErr(err, "Order")
	}
	if s.cfg.StrictTransitions {
		if err := statemachine.CanTransition(current.Status, models.StatusAssigned, caller.Role); err != nil {
			return apperr.Wrap(apperr.KindValidation, err.Error(), err)
		}
	}

	err = s.orders.UpdateOrder(ctx, id, map[string]any{
		"delivery_person_id":   person.ID,
		"delivery_person_name": person.Name,
		"status":               models.StatusAssigned,
	})
	if err != nil {
		return storeErr(err, "Order")
	}
	s.recordHistory(ctx, id, current.Status, models.StatusAssigned, caller.UserID, "Assigned to "+person.Name)
	if s.metrics != nil {
		s.metrics.StatusChanges.WithLabelValues(string(models.StatusAssigned)).Inc()
	}
	s.log.Info("delivery person assigned",
		slog.String("order_id", id),
		slog.String("delivery_person_id", person.ID))
	return nil
}

// AddReview attaches a rating and review text to an order. Any
// authenticated caller may review any order, and a later review replaces an
// earlier one.
func (s *Orders) AddReview(ctx context.Context, caller Caller, id string, rating int, review string) error {
	if err := Authorize(caller, OpAddReview); err != nil {
		return err
	}
	if rating < 1 || rating > 5 {
		return apperr.Validation("rating must be between 1 and 5")
	}
	if err := s.orders.UpdateOrder(ctx, id, map[string]any{"rating": rating, "review": review}); err != nil {
		return storeErr(err, "Order")
	}
	return nil
}

// ListAll returns every order, optionally only those in status.
func (s *Orders) ListAll(ctx context.Context, caller Caller, status models.OrderStatus) ([]models.Order, error) {
	if err := Authorize(caller, OpListAllOrders); err != nil {
		return nil, err
	}
	orders, err := s.orders.ListOrders(ctx, store.OrderFilter{Status: status})
	return orders, storeErr(err, "Orders")
}

// ListForDeliveryPerson returns the orders assigned to the calling delivery
// person.
func (s *Orders) ListForDeliveryPerson(ctx context.Context, caller Caller) ([]models.Order, error) {
	if err := Authorize(caller, OpListDeliveryOrders); err != nil {
		return nil, err
	}
	orders, err := s.orders.ListOrders(ctx, store.OrderFilter{DeliveryPersonID: caller.UserID})
	return orders, storeErr(err, "Orders")
}

// recordHistory appends an audit entry. Failures are logged, never returned:
// the order update has already happened.
func (s *Orders) recordHistory(ctx context.Context, orderID string, from, to models.OrderStatus, by, note string) {
	err := s.orders.AppendHistory(ctx, &models.OrderStatusHistory{
		OrderID:    orderID,
		FromStatus: from,
		ToStatus:   to,
		ChangedBy:  by,
		Note:       note,
	})
	if err != nil {
		s.log.Warn("failed to record order history", slog.String("order_id", orderID), slog.Any("error", err))
	}
}
