package config

import (
	"os"
	"testing"
	"time"
)

func TestConfigLoad_Defaults(t *testing.T) {
	_ = os.Unsetenv("BREWNOTE_HTTP_PORT")
	_ = os.Unsetenv("BREWNOTE_TICK_INTERVAL_MS")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8077 || cfg.TickIntervalMs != 100 || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.GetHTTPAddr() != "127.0.0.1:8077" {
		t.Fatalf("unexpected addr: %s", cfg.GetHTTPAddr())
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("BREWNOTE_HTTP_PORT", "9123")
	defer func() { _ = os.Unsetenv("BREWNOTE_HTTP_PORT") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 9123 {
		t.Fatalf("port env override failed, got %d", cfg.HTTPPort)
	}
}

func TestTickInterval_EnvDriven(t *testing.T) {
	_ = os.Setenv("BREWNOTE_TICK_INTERVAL_MS", "250")
	defer func() { _ = os.Unsetenv("BREWNOTE_TICK_INTERVAL_MS") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.TickInterval() != 250*time.Millisecond {
		t.Fatalf("expected 250ms tick, got %v", cfg.TickInterval())
	}
}

func TestConfigLoad_RejectsBadTick(t *testing.T) {
	_ = os.Setenv("BREWNOTE_TICK_INTERVAL_MS", "0")
	defer func() { _ = os.Unsetenv("BREWNOTE_TICK_INTERVAL_MS") }()

	if _, err := New(); err == nil {
		t.Fatal("expected error for zero tick interval")
	}
}
