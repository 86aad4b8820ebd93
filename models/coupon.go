package models

// DiscountType selects how a coupon's discount_value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage" // discount_value in 0–100
	DiscountFixed      DiscountType = "fixed"      // discount_value is a currency amount
)

func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

type Coupon struct {
	ID            string       `json:"id" gorm:"primaryKey;size:36"`
	Code          string       `json:"code" gorm:"uniqueIndex;not null"` // always uppercase
	DiscountType  DiscountType `json:"discount_type" gorm:"not null"`
	DiscountValue float64      `json:"discount_value" gorm:"not null"`
	MinOrderValue float64      `json:"min_order_value"`
	MaxDiscount   *float64     `json:"max_discount"` // caps percentage discounts only
	ValidUntil    string       `json:"valid_until"`  // YYYY-MM-DD
	Active        bool         `json:"active" gorm:"index"`
}
