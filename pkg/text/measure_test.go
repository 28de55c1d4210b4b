package text

import (
	"math"
	"testing"

	"shrinkfit/pkg/style"
)

// estimateMeasurer returns a Measurer whose fonts cannot be loaded, so
// every character measures fontSize*0.6 wide. That makes widths exact and
// independent of any installed fonts.
func estimateMeasurer() *Measurer {
	return &Measurer{Fonts: FontConfig{
		Regular: "/nonexistent/regular.ttf",
		Bold:    "/nonexistent/bold.ttf",
	}}
}

func charStyle() *style.Style {
	st := style.New()
	st.Set("font-size", "10px") // 6.0 per character in estimate mode
	return st
}

func TestMeasureLines_MinContent(t *testing.T) {
	m := estimateMeasurer()
	lines := m.MeasureLines("ab cd", charStyle(), 0)

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != 12 || lines[1] != 12 {
		t.Errorf("Expected [12 12], got %v", lines)
	}
}

func TestMeasureLines_Unbounded(t *testing.T) {
	m := estimateMeasurer()
	lines := m.MeasureLines("ab cd", charStyle(), math.Inf(1))

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d: %v", len(lines), lines)
	}
	if lines[0] != 30 {
		t.Errorf("Expected width 30, got %g", lines[0])
	}
}

func TestMeasureLines_ForcedBreaks(t *testing.T) {
	m := estimateMeasurer()
	lines := m.MeasureLines("ab cd\nef", charStyle(), math.Inf(1))

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != 30 || lines[1] != 12 {
		t.Errorf("Expected [30 12], got %v", lines)
	}
}

func TestMeasureLines_BlankForcedLines(t *testing.T) {
	m := estimateMeasurer()
	lines := m.MeasureLines("a\n\nb", charStyle(), math.Inf(1))

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != 6 || lines[1] != 0 || lines[2] != 6 {
		t.Errorf("Expected [6 0 6], got %v", lines)
	}
}

func TestMeasureLines_GreedyWrap(t *testing.T) {
	m := estimateMeasurer()
	// "aa bb" measures 30, adding " cc" would be 48.
	lines := m.MeasureLines("aa bb cc", charStyle(), 30)

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != 30 || lines[1] != 12 {
		t.Errorf("Expected [30 12], got %v", lines)
	}
}

func TestMeasureLines_OverlongWordKeepsOwnLine(t *testing.T) {
	m := estimateMeasurer()
	// Soft breaks never split words; a word wider than the bound
	// overflows on a line of its own.
	lines := m.MeasureLines("abcdef", charStyle(), 6)

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d: %v", len(lines), lines)
	}
	if lines[0] != 36 {
		t.Errorf("Expected width 36, got %g", lines[0])
	}
}

func TestMeasureLines_EmptyText(t *testing.T) {
	m := estimateMeasurer()
	for _, wrapWidth := range []float64{0, 30, math.Inf(1)} {
		lines := m.MeasureLines("", charStyle(), wrapWidth)
		if len(lines) != 1 || lines[0] != 0 {
			t.Errorf("wrap %g: expected [0] for empty text, got %v", wrapWidth, lines)
		}
	}
}

func TestMeasureLines_WhitespaceOnly(t *testing.T) {
	m := estimateMeasurer()
	lines := m.MeasureLines("   ", charStyle(), 0)
	if len(lines) != 1 || lines[0] != 0 {
		t.Errorf("Expected [0] for whitespace-only text, got %v", lines)
	}
}

func TestMeasureLines_AlwaysAtLeastOneNonNegativeEntry(t *testing.T) {
	m := estimateMeasurer()
	inputs := []string{"", "\n", "a", "a b", "a\nb", " \n ", "word"}
	bounds := []float64{0, 1, 18, math.Inf(1)}

	for _, input := range inputs {
		for _, bound := range bounds {
			lines := m.MeasureLines(input, charStyle(), bound)
			if len(lines) < 1 {
				t.Errorf("MeasureLines(%q, %g) returned no lines", input, bound)
			}
			for _, w := range lines {
				if w < 0 {
					t.Errorf("MeasureLines(%q, %g) returned negative width %g", input, bound, w)
				}
			}
		}
	}
}

func TestMeasureLines_NilStyleUsesDefaults(t *testing.T) {
	m := estimateMeasurer()
	lines := m.MeasureLines("ab", nil, math.Inf(1))
	want := 2 * style.DefaultFontSize * 0.6
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("Expected [%g], got %v", want, lines)
	}
}

func TestFontPath_Selection(t *testing.T) {
	fc := FontConfig{
		Regular:    "r",
		Bold:       "b",
		Italic:     "i",
		BoldItalic: "bi",
		Monospace:  "m",
		MonoBold:   "mb",
		Ahem:       "a",
	}

	cases := []struct {
		bold, italic, mono, ahem bool
		want                     string
	}{
		{want: "r"},
		{bold: true, want: "b"},
		{italic: true, want: "i"},
		{bold: true, italic: true, want: "bi"},
		{mono: true, want: "m"},
		{mono: true, bold: true, want: "mb"},
		// Ahem wins over everything
		{ahem: true, bold: true, mono: true, want: "a"},
	}
	for _, c := range cases {
		if got := fc.FontPath(c.bold, c.italic, c.mono, c.ahem); got != c.want {
			t.Errorf("FontPath(%v, %v, %v, %v) = %q, want %q",
				c.bold, c.italic, c.mono, c.ahem, got, c.want)
		}
	}
}

func TestFontPath_MonoFallsBackToProportional(t *testing.T) {
	fc := FontConfig{Regular: "r", Bold: "b"}
	if got := fc.FontPath(false, false, true, false); got != "r" {
		t.Errorf("Expected proportional fallback %q, got %q", "r", got)
	}
	if got := fc.FontPath(true, false, true, false); got != "b" {
		t.Errorf("Expected bold fallback %q, got %q", "b", got)
	}
}
