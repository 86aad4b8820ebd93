package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNew_WritesServiceAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New("orders-test", "debug", &buf)
	log.Info("order placed", slog.String("order_id", "o-1"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line: %v (%s)", err, buf.String())
	}
	if rec["service"] != "orders-test" {
		t.Errorf("service = %v", rec["service"])
	}
	if rec["order_id"] != "o-1" {
		t.Errorf("order_id = %v", rec["order_id"])
	}
	if rec["msg"] != "order placed" {
		t.Errorf("msg = %v", rec["msg"])
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("svc", "error", &buf)
	log.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info record should be filtered at error level: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
