package main

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func newIntervalCmd(t *testing.T) (*cobra.Command, *int) {
	t.Helper()
	var interval int
	cmd := &cobra.Command{Use: "brew"}
	cmd.Flags().IntVar(&interval, "interval", 100, "")
	return cmd, &interval
}

func TestTickInterval_EnvDefault(t *testing.T) {
	_ = os.Setenv("BREWNOTE_TICK_INTERVAL_MS", "250")
	defer func() { _ = os.Unsetenv("BREWNOTE_TICK_INTERVAL_MS") }()

	cmd, interval := newIntervalCmd(t)
	got, err := tickInterval(cmd, *interval)
	if err != nil {
		t.Fatalf("tickInterval: %v", err)
	}
	if got != 250*time.Millisecond {
		t.Fatalf("expected env-driven 250ms, got %v", got)
	}
}

func TestTickInterval_FlagWinsOverEnv(t *testing.T) {
	_ = os.Setenv("BREWNOTE_TICK_INTERVAL_MS", "250")
	defer func() { _ = os.Unsetenv("BREWNOTE_TICK_INTERVAL_MS") }()

	cmd, interval := newIntervalCmd(t)
	if err := cmd.Flags().Set("interval", "50"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	got, err := tickInterval(cmd, *interval)
	if err != nil {
		t.Fatalf("tickInterval: %v", err)
	}
	if got != 50*time.Millisecond {
		t.Fatalf("expected flag-driven 50ms, got %v", got)
	}
}

func TestTickInterval_RejectsNonPositiveFlag(t *testing.T) {
	cmd, interval := newIntervalCmd(t)
	if err := cmd.Flags().Set("interval", "0"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if _, err := tickInterval(cmd, *interval); err == nil {
		t.Fatal("expected error for zero interval")
	}
}
