package app

import (
	"testing"
	"time"
)

func TestWatchCommand(t *testing.T) {
	// Test that watch command is properly configured
	if watchCmd.Use != "watch" {
		t.Errorf("expected Use to be 'watch', got '%s'", watchCmd.Use)
	}

	if watchCmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if watchCmd.Long == "" {
		t.Error("expected Long description to be set")
	}

	if watchCmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
}

func TestWatchCommandFlags(t *testing.T) {
	flag := watchCmd.Flags().Lookup("interval")
	if flag == nil {
		t.Fatal("expected --interval flag to be registered")
	}

	if flag.Usage == "" {
		t.Error("expected --interval flag to have usage text")
	}

	if flag.DefValue != (15 * time.Minute).String() {
		t.Errorf("interval default = %q, want %q", flag.DefValue, (15 * time.Minute).String())
	}
}
