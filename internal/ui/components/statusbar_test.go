// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/logdiff/internal/ui/styles"
)

func TestStatusBar_ShowsStatistics(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(120)
	sb.SetResult(computeResult(t,
		[]string{"alpha", "beta"},
		[]string{"alpha", "gamma"},
	))

	out := sb.View()

	if !strings.Contains(out, "+1") {
		t.Errorf("Expected addition count in %q", out)
	}
	if !strings.Contains(out, "-1") {
		t.Errorf("Expected deletion count in %q", out)
	}
	if !strings.Contains(out, "Ready") {
		t.Errorf("Expected ready status in %q", out)
	}
}

func TestStatusBar_ErrorState(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(120)

	sb.SetError("invalid timestamp pattern")
	if sb.Status != StatusError {
		t.Error("SetError should switch status to error")
	}
	if out := sb.View(); !strings.Contains(out, "invalid timestamp pattern") {
		t.Errorf("Expected error message in %q", out)
	}

	sb.SetError("")
	if sb.Status != StatusReady {
		t.Error("Clearing the error should return to ready")
	}
}

func TestStatusBar_WatchIndicator(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(120)

	if out := sb.View(); !strings.Contains(out, "watch off") {
		t.Errorf("Expected watch off indicator in %q", out)
	}

	sb.Watching = true
	out := sb.View()
	if !strings.Contains(out, "watch") || strings.Contains(out, "watch off") {
		t.Errorf("Expected live watch indicator in %q", out)
	}
}

func TestStatusBar_NarrowShortcuts(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme())
	sb.SetWidth(60)

	out := sb.View()
	if !strings.Contains(out, "help") {
		t.Errorf("Expected condensed help hint in %q", out)
	}
}

func TestStatus_Strings(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusReady, "Ready"},
		{StatusComputing, "Comparing..."},
		{StatusWatching, "Watching"},
		{StatusError, "Error"},
		{Status(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
		if tc.status.Icon() == "" {
			t.Errorf("Status(%d).Icon() should not be empty", tc.status)
		}
	}
}
