package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}
	if c != Default() {
		t.Errorf("expected defaults, got %+v", c)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liftsim.yaml")
	body := "PhaseHoldTicks: 10\nTickPeriod: 1000000\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.PhaseHoldTicks != 10 {
		t.Errorf("expected PhaseHoldTicks 10, got %d", c.PhaseHoldTicks)
	}
	if c.TickPeriod != time.Millisecond {
		t.Errorf("expected TickPeriod 1ms, got %v", c.TickPeriod)
	}
	// Everything else keeps its default.
	if c.FastStepTicks != Default().FastStepTicks {
		t.Errorf("unset field lost its default: %+v", c)
	}
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liftsim.yaml")
	if err := os.WriteFile(path, []byte("{unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}
