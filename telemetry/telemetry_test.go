package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSetupTracing_NoopWithoutEndpoint(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), "test-service", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupTracing_WithEndpoint(t *testing.T) {
	// Non-routable address so nothing is exported.
	shutdown, err := SetupTracing(context.Background(), "test-service", "http://192.0.2.1:4318")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestMetrics_CountAndExpose(t *testing.T) {
	m := NewMetrics()
	m.OrdersCreated.Inc()
	m.CouponValidations.WithLabelValues("valid").Inc()
	m.CouponValidations.WithLabelValues("valid").Inc()

	if got := testutil.ToFloat64(m.OrdersCreated); got != 1 {
		t.Fatalf("orders created = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.CouponValidations.WithLabelValues("valid")); got != 2 {
		t.Fatalf("coupon validations = %v, want 2", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "food_ordering_orders_created_total 1") {
		t.Fatalf("exposition missing counter:\n%s", rec.Body.String())
	}
}
