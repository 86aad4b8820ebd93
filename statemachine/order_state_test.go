package statemachine

import (
	"testing"

	"food-ordering-api/models"
)

func TestIsKnown(t *testing.T) {
	for _, s := range Statuses() {
		if !IsKnown(s) {
			t.Errorf("%q should be known", s)
		}
	}
	for _, s := range []models.OrderStatus{"", "PLACED", "Shipped", "out for delivery"} {
		if IsKnown(s) {
			t.Errorf("%q should not be known", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		actor    models.UserRole
		ok       bool
	}{
		{models.StatusPlaced, models.StatusAssigned, models.RoleAdmin, true},
		{models.StatusPlaced, models.StatusAssigned, models.RoleDeliveryPerson, false},
		{models.StatusAssigned, models.StatusPreparing, models.RoleDeliveryPerson, true},
		{models.StatusOutForDelivery, models.StatusDelivered, models.RoleDeliveryPerson, true},
		{models.StatusPlaced, models.StatusDelivered, models.RoleAdmin, false},
		{models.StatusPreparing, models.StatusCancelled, models.RoleAdmin, true},
		{models.StatusPreparing, models.StatusCancelled, models.RoleDeliveryPerson, false},
		{models.StatusDelivered, models.StatusCancelled, models.RoleAdmin, false},
		{models.StatusCancelled, models.StatusPlaced, models.RoleAdmin, false},
		{models.StatusPlaced, models.StatusPreparing, models.RoleCustomer, false},
	}
	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to, tt.actor)
		if (err == nil) != tt.ok {
			t.Errorf("CanTransition(%s, %s, %s) = %v, want ok=%v", tt.from, tt.to, tt.actor, err, tt.ok)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, s := range Statuses() {
		exits := ValidTransitionsFrom(s)
		if IsTerminal(s) && len(exits) != 0 {
			t.Errorf("terminal %q has exits %v", s, exits)
		}
		if !IsTerminal(s) && len(exits) == 0 {
			t.Errorf("non-terminal %q has no exits", s)
		}
	}
}

func TestCancelledReachableFromEveryNonTerminalState(t *testing.T) {
	for _, s := range Statuses() {
		if IsTerminal(s) {
			continue
		}
		if err := CanTransition(s, models.StatusCancelled, models.RoleAdmin); err != nil {
			t.Errorf("admin cannot cancel from %q: %v", s, err)
		}
	}
}

func TestCanTransition_ErrorListsNextStates(t *testing.T) {
	err := CanTransition(models.StatusDelivered, models.StatusPlaced, models.RoleAdmin)
	if err == nil {
		t.Fatalf("expected error")
	}
	want := "none (terminal state)"
	if got := err.Error(); len(got) < len(want) || got[len(got)-len(want):] != want {
		t.Fatalf("error %q should end with %q", got, want)
	}
}
