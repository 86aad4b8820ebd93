package store

import (
	"context"

	"food-ordering-api/models"
)

// CreateUser inserts u, assigning an id when it has none.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = newID()
	}
	return translate(s.db.WithContext(ctx).Create(u).Error)
}

func (s *Store) UserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// UserByIDAndRole returns the user only if it carries the given role.
func (s *Store) UserByIDAndRole(ctx context.Context, id string, role models.UserRole) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("id = ? AND role = ?", id, role).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// ListUsersByRole lists users with role, optionally filtered by availability.
func (s *Store) ListUsersByRole(ctx context.Context, role models.UserRole, available *bool) ([]models.User, error) {
	users := []models.User{}
	query := s.db.WithContext(ctx).Where("role = ?", role)
	if available != nil {
		query = query.Where("is_available = ?", *available)
	}
	if err := query.Order("name asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) CountUsersByRole(ctx context.Context, role models.UserRole) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&n).Error
	return n, err
}

// UpdateUser applies the given column updates to one user.
func (s *Store) UpdateUser(ctx context.Context, id string, fields map[string]any) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	return affected(res)
}
