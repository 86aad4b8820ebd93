package store

import (
	"context"

	"food-ordering-api/models"
)

// ActiveCouponByCode looks up an active coupon by its normalized code.
func (s *Store) ActiveCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var c models.Coupon
	err := s.db.WithContext(ctx).Where("code = ? AND active = ?", code, true).First(&c).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *Store) ListActiveCoupons(ctx context.Context) ([]models.Coupon, error) {
	coupons := []models.Coupon{}
	if err := s.db.WithContext(ctx).Where("active = ?", true).Order("code asc").Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

func (s *Store) CreateCoupons(ctx context.Context, coupons ...*models.Coupon) error {
	for _, c := range coupons {
		if c.ID == "" {
			c.ID = newID()
		}
	}
	return translate(s.db.WithContext(ctx).Create(coupons).Error)
}

func (s *Store) CountCoupons(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Coupon{}).Count(&n).Error
	return n, err
}
