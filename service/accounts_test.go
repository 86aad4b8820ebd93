package service

import (
	"context"
	"testing"

	"food-ordering-api/apperr"
	"food-ordering-api/config"
	"food-ordering-api/models"
)

func TestAccountsRegister(t *testing.T) {
	f := newFixture(t, config.OrderConfig{})
	ctx := context.Background()

	u, err := f.accounts.Register(ctx, RegisterInput{Name: " Carol ", Email: "Carol@Example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Role != models.RoleCustomer {
		t.Errorf("role = %s, want customer", u.Role)
	}
	if u.Email != "carol@example.com" || u.Name != "Carol" {
		t.Errorf("user = %q <%s>", u.Name, u.Email)
	}
	if u.PasswordHash == "secret" || u.PasswordHash == "" {
		t.Errorf("password not hashed")
	}

	_, err = f.accounts.Register(ctx, RegisterInput{Name: "Other", Email: "carol@example.com", Password: "x"})
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("duplicate email: got %v, want Conflict", err)
	}
	if got := apperr.KindOf(err).HTTPStatus(); got != 400 {
		t.Fatalf("duplicate email status = %d, want 400", got)
	}

	_, err = f.accounts.Register(ctx, RegisterInput{Name: "X", Email: "x@example.com", Password: "x", Role: "chef"})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("unknown role: got %v, want Validation", err)
	}
}

func TestAccountsLogin(t *testing.T) {
	f := newFixture(t, config.OrderConfig{})
	ctx := context.Background()
	carol := f.register(t, "carol", models.RoleCustomer)

	token, user, err := f.accounts.Login(ctx, "CAROL@example.com", "password1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != carol.UserID || token == "" {
		t.Fatalf("Login returned %q for %s", token, user.ID)
	}
	claims, err := f.accounts.tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != carol.UserID || claims.Role != models.RoleCustomer {
		t.Fatalf("claims = %+v", claims)
	}

	for _, tc := range []struct{ email, password string }{
		{"carol@example.com", "wrong"},
		{"nobody@example.com", "password1"},
	} {
		if _, _, err := f.accounts.Login(ctx, tc.email, tc.password); !apperr.Is(err, apperr.KindUnauthorized) {
			t.Errorf("Login(%s, %s): got %v, want Unauthorized", tc.email, tc.password, err)
		}
	}
}

func TestAccountsProfile(t *testing.T) {
	f := newFixture(t, config.OrderConfig{})
	ctx := context.Background()
	carol := f.register(t, "carol", models.RoleCustomer)

	address := "42 Elm St"
	u, err := f.accounts.UpdateProfile(ctx, carol, ProfileUpdate{Address: &address})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if u.Address == nil || *u.Address != address || u.Name != "carol" {
		t.Fatalf("profile = %+v", u)
	}

	blank := "  "
	if _, err := f.accounts.UpdateProfile(ctx, carol, ProfileUpdate{Name: &blank}); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("blank name: got %v, want Validation", err)
	}
	if _, err := f.accounts.UpdateProfile(ctx, carol, ProfileUpdate{}); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("empty update: got %v, want Validation", err)
	}
	if err := f.accounts.SetAvailability(ctx, carol, false); !apperr.Is(err, apperr.KindForbidden) {
		t.Errorf("customer availability: got %v, want Forbidden", err)
	}
	ghost := Caller{UserID: "ghost", Role: models.RoleCustomer}
	if _, err := f.accounts.Profile(ctx, ghost); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("ghost profile: got %v, want NotFound", err)
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		op      Operation
		role    models.UserRole
		allowed bool
	}{
		{OpCreateOrder, models.RoleCustomer, true},
		{OpCreateOrder, models.RoleAdmin, false},
		{OpSetOrderStatus, models.RoleDeliveryPerson, true},
		{OpSetOrderStatus, models.RoleCustomer, false},
		{OpAssignDelivery, models.RoleDeliveryPerson, false},
		{OpAddReview, models.RoleDeliveryPerson, true},
		{OpCreateCoupon, models.RoleAdmin, true},
		{OpCreateCoupon, models.RoleCustomer, false},
		{OpListDeliveryOrders, models.RoleDeliveryPerson, true},
		{Operation("unknown"), models.RoleAdmin, false},
	}
	for _, tt := range tests {
		err := Authorize(Caller{UserID: "u", Role: tt.role}, tt.op)
		if (err == nil) != tt.allowed {
			t.Errorf("Authorize(%s, %s) = %v, want allowed=%t", tt.op, tt.role, err, tt.allowed)
		}
		if err != nil && !apperr.Is(err, apperr.KindForbidden) {
			t.Errorf("Authorize(%s, %s) kind = %s", tt.op, tt.role, apperr.KindOf(err))
		}
	}
}
