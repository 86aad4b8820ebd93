package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"food-ordering-api/apperr"
	"food-ordering-api/auth"
	"food-ordering-api/models"
	"food-ordering-api/store"
)

// RegisterInput is a sign-up request. An empty role registers a customer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.UserRole
	Phone    string
}

// ProfileUpdate carries the optional profile fields a user may change.
type ProfileUpdate struct {
	Name    *string
	Phone   *string
	Address *string
}

type Accounts struct {
	users  UserStore
	tokens *auth.Tokens
	log    *slog.Logger
}

func NewAccounts(users UserStore, tokens *auth.Tokens, log *slog.Logger) *Accounts {
	return &Accounts{users: users, tokens: tokens, log: log}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isDuplicate(err error) bool {
	return errors.Is(err, store.ErrDuplicate)
}

// Register creates a user account. The email must not be registered yet.
func (a *Accounts) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Role == "" {
		in.Role = models.RoleCustomer
	}
	if !in.Role.Valid() {
		return nil, apperr.Validation("Invalid role. Must be: customer, admin, or delivery_person")
	}
	email := normalizeEmail(in.Email)

	_, err := a.users.UserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperr.Conflict("Email already registered")
	case !errors.Is(err, store.ErrNotFound):
		return nil, storeErr(err, "User")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal("Failed to hash password", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		IsAvailable:  true,
	}
	if in.Phone != "" {
		user.Phone = &in.Phone
	}
	if err := a.users.CreateUser(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, storeErr(err, "User")
	}
	a.log.Info("user registered", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
	return user, nil
}

// Login checks the password and issues a credential.
func (a *Accounts) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	invalid := apperr.Unauthorized("Invalid credentials")

	user, err := a.users.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, invalid
		}
		return "", nil, storeErr(err, "User")
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, invalid
	}

	token, err := a.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, apperr.Internal("Failed to generate token", err)
	}
	return token, user, nil
}

// Profile returns the caller's own user record.
func (a *Accounts) Profile(ctx context.Context, caller Caller) (*models.User, error) {
	user, err := a.users.UserByID(ctx, caller.UserID)
	return user, storeErr(err, "User")
}

// UpdateProfile changes the caller's name, phone or address.
func (a *Accounts) UpdateProfile(ctx context.Context, caller Caller, in ProfileUpdate) (*models.User, error) {
	fields := map[string]any{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Validation("name must not be empty")
		}
		fields["name"] = name
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("nothing to update")
	}
	if err := a.users.UpdateUser(ctx, caller.UserID, fields); err != nil {
		return nil, storeErr(err, "User")
	}
	return a.Profile(ctx, caller)
}

// SetAvailability toggles whether a delivery person takes new orders.
func (a *Accounts) SetAvailability(ctx context.Context, caller Caller, available bool) error {
	if err := Authorize(caller, OpSetAvailability); err != nil {
		return err
	}
	if err := a.users.UpdateUser(ctx, caller.UserID, map[string]any{"is_available": available}); err != nil {
		return storeErr(err, "User")
	}
	return nil
}
