package statemachine

import (
	"fmt"
	"strings"

	"food-ordering-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Actor models.UserRole    `json:"actor"`
}

// statuses is the order status vocabulary in lifecycle order.
var statuses = []models.OrderStatus{
	models.StatusPlaced,
	models.StatusAssigned,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
	models.StatusCancelled,
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Admin hands the order to a delivery person
	{From: models.StatusPlaced, To: models.StatusAssigned, Actor: models.RoleAdmin},
	// Re-assignment keeps the order in Assigned
	{From: models.StatusAssigned, To: models.StatusAssigned, Actor: models.RoleAdmin},
	{From: models.StatusAssigned, To: models.StatusPreparing, Actor: models.RoleAdmin},
	{From: models.StatusAssigned, To: models.StatusPreparing, Actor: models.RoleDeliveryPerson},
	{From: models.StatusPreparing, To: models.StatusOutForDelivery, Actor: models.RoleAdmin},
	{From: models.StatusPreparing, To: models.StatusOutForDelivery, Actor: models.RoleDeliveryPerson},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered, Actor: models.RoleAdmin},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered, Actor: models.RoleDeliveryPerson},
	// Cancellation from any non-terminal state
	{From: models.StatusPlaced, To: models.StatusCancelled, Actor: models.RoleAdmin},
	{From: models.StatusAssigned, To: models.StatusCancelled, Actor: models.RoleAdmin},
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: models.RoleAdmin},
	{From: models.StatusOutForDelivery, To: models.StatusCancelled, Actor: models.RoleAdmin},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor models.UserRole
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// Statuses returns the status vocabulary in lifecycle order.
func Statuses() []models.OrderStatus {
	return append([]models.OrderStatus(nil), statuses...)
}

// IsKnown reports whether s belongs to the status vocabulary.
func IsKnown(s models.OrderStatus) bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor models.UserRole) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return fmt.Errorf("invalid transition: %s → %s is not allowed for %s. Valid transitions from %s are: %s",
		from, to, actor, from, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return append([]Transition(nil), validTransitions...)
}
