package models

import "time"

// OrderStatus represents all possible states of a food delivery order
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Placed"
	StatusAssigned       OrderStatus = "Assigned"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

type Order struct {
	ID                 string      `json:"id" gorm:"primaryKey;size:36"`
	CustomerID         string      `json:"customer_id" gorm:"index;not null"`
	CustomerName       string      `json:"customer_name"`
	Items              []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Total              float64     `json:"total"`
	PaymentMethod      string      `json:"payment_method"`
	DeliveryAddress    string      `json:"delivery_address"`
	CouponCode         *string     `json:"coupon_code"`
	DiscountAmount     float64     `json:"discount_amount"`
	Status             OrderStatus `json:"status" gorm:"index;not null"`
	DeliveryPersonID   *string     `json:"delivery_person_id" gorm:"index"`
	DeliveryPersonName *string     `json:"delivery_person_name"`
	Timestamp          time.Time   `json:"timestamp" gorm:"index;not null"`
	Rating             *int        `json:"rating"`
	Review             *string     `json:"review"`
	UpdatedAt          time.Time   `json:"-"`
}

// OrderItem is a line-item snapshot copied from the cart when the order is
// placed. It never references the live catalog row.
type OrderItem struct {
	RowID      uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID    string  `json:"-" gorm:"index;not null;size:36"`
	Position   int     `json:"-" gorm:"not null"`
	FoodItemID string  `json:"id" gorm:"not null"`
	Name       string  `json:"name"`
	Price      float64 `json:"price" gorm:"not null"` // snapshot price at time of order
	Quantity   int     `json:"quantity" gorm:"not null"`
	Image      string  `json:"image"`
}

// OrderStatusHistory tracks every status change of an order
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    string      `json:"order_id" gorm:"index;not null;size:36"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  string      `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
