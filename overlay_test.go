package chartview

import (
	"strings"
	"testing"
)

func TestCompositeAtPlacesOverlay(t *testing.T) {
	base := "..........\n..........\n.........."
	got := compositeAt(base, "XX", 3, 1, 10)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if lines[1] != "...XX....." {
		t.Errorf("overlaid line = %q, want %q", lines[1], "...XX.....")
	}
	if lines[0] != ".........." || lines[2] != ".........." {
		t.Error("rows outside the overlay should be untouched")
	}
}

func TestCompositeAtDropsOutOfRangeRows(t *testing.T) {
	base := "aaaa"
	got := compositeAt(base, "X\nY\nZ", 0, -1, 4)
	lines := strings.Split(got, "\n")
	if len(lines) != 1 {
		t.Fatalf("line count = %d, want 1", len(lines))
	}
	// only the middle overlay row lands on the single base row
	if lines[0] != "Yaaa" {
		t.Errorf("line = %q, want %q", lines[0], "Yaaa")
	}
}

func TestCompositeAtPadsShortBaseRow(t *testing.T) {
	got := compositeAt("ab", "XX", 5, 0, 10)
	if got != "ab   XX   " {
		t.Errorf("line = %q, want %q", got, "ab   XX   ")
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "pads", in: "ab", width: 4, want: "ab  "},
		{name: "exact", in: "abcd", width: 4, want: "abcd"},
		{name: "longer untouched", in: "abcdef", width: 4, want: "abcdef"},
		{name: "zero width untouched", in: "ab", width: 0, want: "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.in, tt.width); got != tt.want {
				t.Fatalf("padRight = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 5); got != "hell…" {
		t.Errorf("truncate = %q, want %q", got, "hell…")
	}
	if got := truncate("hi", 5); got != "hi" {
		t.Errorf("truncate = %q, want %q", got, "hi")
	}
}

func TestSplitLinesNeverEmpty(t *testing.T) {
	if got := splitLines(""); len(got) != 1 {
		t.Fatalf("splitLines(\"\") length = %d, want 1", len(got))
	}
	if got := splitLines("a\nb"); len(got) != 2 {
		t.Fatalf("length = %d, want 2", len(got))
	}
}
