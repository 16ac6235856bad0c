package ui

import (
	"strings"
	"testing"
)

func TestRenderResults(t *testing.T) {
	d := NewDisplayContextWithWidth(80)
	rows := []ResultRow{
		{Num: 1, ID: "f_alien_gasper", Type: "furniture"},
		{Num: 2, ID: "rock", Type: "GENERIC", Category: "spare_parts"},
	}

	out := RenderResults(d, rows)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "f_alien_gasper") {
		t.Errorf("line 0 missing id: %q", lines[0])
	}
	if !strings.Contains(lines[1], "spare_parts") {
		t.Errorf("line 1 missing category: %q", lines[1])
	}
}

func TestRenderResultsEmpty(t *testing.T) {
	if out := RenderResults(NewDisplayContextWithWidth(80), nil); out != "" {
		t.Errorf("RenderResults(nil) = %q, want empty", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  string
	}{
		{"short line untouched", "abc", 10, "abc"},
		{"clipped at width", "abcdefgh", 4, "abcd"},
		{"zero width disables", "abcdef", 0, "abcdef"},
		{"escape sequences not counted", "\x1b[1mabcdef\x1b[0m", 4, "\x1b[1mabcd\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.line, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.line, tt.width, got, tt.want)
			}
		})
	}
}
