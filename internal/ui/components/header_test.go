// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/logdiff/internal/ui/styles"
)

func TestHeader_Defaults(t *testing.T) {
	h := NewHeader(styles.NewTheme())

	if out := h.View(); !strings.Contains(out, "logdiff") {
		t.Errorf("Expected title in header, got %q", out)
	}
}

func TestHeader_ShowsBasenamesWhenNarrow(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(80)
	h.SetPaths("/var/log/app/server-old.log", "/var/log/app/server-new.log")

	out := h.View()
	if !strings.Contains(out, "server-old.log") {
		t.Errorf("Expected left basename in %q", out)
	}
	if strings.Contains(out, "/var/log/app") {
		t.Errorf("Narrow header should not show directories: %q", out)
	}
}

func TestHeader_ShowsFullPathsWhenWide(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(160)
	h.SetPaths("/var/log/app/server-old.log", "/var/log/app/server-new.log")

	out := h.View()
	if !strings.Contains(out, "/var/log/app/server-old.log") {
		t.Errorf("Expected full left path in %q", out)
	}
}
