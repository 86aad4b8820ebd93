// Package coupon holds the discount rule applied to an order total.
//
// The rule is pure: the same coupon and total always yield the same amount,
// so it can be re-run when an order is priced server-side.
package coupon

import (
	"fmt"
	"strings"

	"food-ordering-api/models"

	"github.com/shopspring/decimal"
)

// BelowMinimumError reports an order total under the coupon's minimum.
type BelowMinimumError struct {
	Minimum float64
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("Minimum order value of $%s required", decimal.NewFromFloat(e.Minimum).StringFixed(2))
}

// NormalizeCode returns the canonical (uppercase) form of a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Discount computes the discount c grants on orderTotal, rounded to cents.
// Fixed discounts are not capped by the total.
func Discount(c models.Coupon, orderTotal float64) (float64, error) {
	total := decimal.NewFromFloat(orderTotal)
	if total.LessThan(decimal.NewFromFloat(c.MinOrderValue)) {
		return 0, &BelowMinimumError{Minimum: c.MinOrderValue}
	}

	var discount decimal.Decimal
	switch c.DiscountType {
	case models.DiscountPercentage:
		discount = total.Mul(decimal.NewFromFloat(c.DiscountValue)).Div(decimal.NewFromInt(100))
		if c.MaxDiscount != nil && *c.MaxDiscount > 0 {
			discount = decimal.Min(discount, decimal.NewFromFloat(*c.MaxDiscount))
		}
	case models.DiscountFixed:
		discount = decimal.NewFromFloat(c.DiscountValue)
	default:
		return 0, fmt.Errorf("unknown discount type %q", c.DiscountType)
	}
	return RoundCents(discount), nil
}

// RoundCents rounds d half away from zero to two decimals.
func RoundCents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
