package layout

import "testing"

func TestCalculateListHeight(t *testing.T) {
	cfg := DefaultConfig().List

	tests := []struct {
		name       string
		height     int
		filterLine bool
		want       int
	}{
		{"standard terminal", 24, false, 13},
		{"filter line takes a row", 24, true, 12},
		{"tall terminal", 50, false, 39},
		{"short terminal clamps", 10, false, 3},
		{"zero height clamps", 0, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateListHeight(tt.height, tt.filterLine, cfg)
			if got != tt.want {
				t.Errorf("CalculateListHeight(%d, %v) = %d, want %d", tt.height, tt.filterLine, got, tt.want)
			}
		})
	}
}

func TestCalculateRowWidth(t *testing.T) {
	cfg := DefaultConfig().List

	if got := CalculateRowWidth(80, cfg); got != 72 {
		t.Errorf("CalculateRowWidth(80) = %d, want 72", got)
	}
	if got := CalculateRowWidth(4, cfg); got != 1 {
		t.Errorf("CalculateRowWidth(4) = %d, want 1", got)
	}
}

func TestCalculateViewportOffset(t *testing.T) {
	tests := []struct {
		name                     string
		selected, total, visible int
		want                     int
	}{
		{"all fit", 3, 5, 10, 0},
		{"top of long list", 0, 50, 10, 0},
		{"middle keeps selection centered", 20, 50, 10, 15},
		{"bottom clamps to max offset", 49, 50, 10, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateViewportOffset(tt.selected, tt.total, tt.visible)
			if got != tt.want {
				t.Errorf("CalculateViewportOffset(%d, %d, %d) = %d, want %d",
					tt.selected, tt.total, tt.visible, got, tt.want)
			}
		})
	}
}

func TestClampCursor(t *testing.T) {
	tests := []struct {
		cursor, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{-1, 3, 0},
		{2, 3, 2},
		{3, 3, 2},
		{9, 3, 2},
	}

	for _, tt := range tests {
		if got := ClampCursor(tt.cursor, tt.total); got != tt.want {
			t.Errorf("ClampCursor(%d, %d) = %d, want %d", tt.cursor, tt.total, got, tt.want)
		}
	}
}

func TestCalculateModalWidth(t *testing.T) {
	cfg := DefaultConfig().Modal

	tests := []struct {
		name          string
		terminalWidth int
		want          int
	}{
		{"wide terminal clamps to max", 200, 72},
		{"standard terminal uses percent", 100, 50},
		{"narrow terminal uses min", 60, 40},
		{"very narrow leaves margin", 30, 26},
		{"tiny terminal clamps to 1", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateModalWidth(tt.terminalWidth, cfg)
			if got != tt.want {
				t.Errorf("CalculateModalWidth(%d) = %d, want %d", tt.terminalWidth, got, tt.want)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ANSI", "hello", "hello"},
		{"bold", "\x1b[1mhello\x1b[0m", "hello"},
		{"mixed", "normal \x1b[1;4mbold underline\x1b[0m normal", "normal bold underline normal"},
		{"only ANSI", "\x1b[1m\x1b[0m", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleLength(t *testing.T) {
	if got := VisibleLength("\x1b[1mこんにちは\x1b[0m"); got != 5 {
		t.Errorf("VisibleLength = %d, want 5", got)
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name      string
		text      string
		maxWidth  int
		want      string
		truncated bool
	}{
		{"fits", "golang", 10, "golang", false},
		{"exact fit", "golang", 6, "golang", false},
		{"truncated", "breaking news", 8, "break...", true},
		{"unicode", "crème brûlée", 7, "crèm...", true},
		{"width smaller than ellipsis", "golang", 2, "..", true},
		{"zero width", "golang", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateText(tt.text, tt.maxWidth, cfg)
			if got != tt.want || truncated != tt.truncated {
				t.Errorf("TruncateText(%q, %d) = (%q, %v), want (%q, %v)",
					tt.text, tt.maxWidth, got, truncated, tt.want, tt.truncated)
			}
		})
	}
}

func TestSingleLine(t *testing.T) {
	if got := SingleLine("a\nb\tc  d"); got != "a b c d" {
		t.Errorf("SingleLine = %q", got)
	}
}
