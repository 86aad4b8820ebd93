// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"food-ordering-api/logging"
	"food-ordering-api/store"
)

// OpenStore opens a migrated sqlite store in a per-test temp directory.
// The store is closed through t.Cleanup.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := store.Open(context.Background(), path, logging.Discard())
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// SeededStore is OpenStore plus the default catalog and coupons.
func SeededStore(t *testing.T) *store.Store {
	t.Helper()
	s := OpenStore(t)
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("seed test store: %v", err)
	}
	return s
}
