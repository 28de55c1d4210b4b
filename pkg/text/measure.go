// Package text measures text runs for the width-resolution pass. Each
// measurement uses a transient drawing context; nothing is shared between
// calls.
package text

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"shrinkfit/pkg/style"
)

// Measurer produces the line widths of a text run at a given wrap width.
type Measurer struct {
	Fonts FontConfig
}

func NewMeasurer() *Measurer {
	return &Measurer{Fonts: DefaultFontConfig()}
}

// MeasureLines returns the ordered line widths of textRun when broken at
// wrapWidth. A wrap width of 0 breaks at every soft break opportunity;
// +Inf breaks only at forced breaks; any positive finite value wraps
// greedily at the widest fit. The result always has at least one entry,
// and every entry is >= 0. Forced breaks are newline characters; soft
// break opportunities sit between words.
func (m *Measurer) MeasureLines(textRun string, st *style.Style, wrapWidth float64) []float64 {
	advance := m.advanceFunc(st)

	var lines []float64
	for _, segment := range splitForced(textRun) {
		switch {
		case wrapWidth == 0:
			lines = appendMinContent(lines, segment, advance)
		case math.IsInf(wrapWidth, 1):
			lines = append(lines, advance(segment))
		default:
			lines = appendWrapped(lines, segment, wrapWidth, advance)
		}
	}
	return lines
}

// appendMinContent emits one line per word of segment.
func appendMinContent(lines []float64, segment string, advance func(string) float64) []float64 {
	words := splitIntoWords(segment)
	if len(words) == 0 {
		return append(lines, 0)
	}
	for _, word := range words {
		lines = append(lines, advance(word))
	}
	return lines
}

// appendWrapped emits greedily wrapped lines of segment. A word wider than
// maxWidth still gets a line of its own; soft breaks never split words.
func appendWrapped(lines []float64, segment string, maxWidth float64, advance func(string) float64) []float64 {
	words := splitIntoWords(segment)
	if len(words) == 0 {
		return append(lines, 0)
	}

	currentLine := ""
	for _, word := range words {
		testLine := currentLine
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		if advance(testLine) <= maxWidth || currentLine == "" {
			currentLine = testLine
		} else {
			lines = append(lines, advance(currentLine))
			currentLine = word
		}
	}
	return append(lines, advance(currentLine))
}

// advanceFunc returns the string-width function for one measurement call.
// It loads the configured face into a throwaway drawing context; when no
// face can be loaded it falls back to a rough per-character estimate so
// measurement degrades instead of failing.
func (m *Measurer) advanceFunc(st *style.Style) func(string) float64 {
	fontSize := style.DefaultFontSize
	bold := false
	italic := false
	mono := false
	ahem := false
	if st != nil {
		fontSize = st.GetFontSize()
		bold = st.GetFontWeight() == style.FontWeightBold
		italic = st.IsItalic()
		mono = st.IsMonospace()
		ahem = st.IsAhem()
	}

	face, err := loadFace(m.Fonts.FontPath(bold, italic, mono, ahem), fontSize)
	if err != nil {
		// Rough estimate when the font is unavailable
		return func(s string) float64 {
			return float64(len(s)) * fontSize * 0.6
		}
	}

	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	return func(s string) float64 {
		w, _ := dc.MeasureString(s)
		return w
	}
}

func loadFace(path string, points float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

// splitForced splits a run at forced breaks. The newlines themselves are
// consumed; empty segments survive, so "a\n\nb" yields three segments.
func splitForced(textRun string) []string {
	segments := []string{""}
	for _, ch := range textRun {
		if ch == '\n' {
			segments = append(segments, "")
		} else {
			segments[len(segments)-1] += string(ch)
		}
	}
	return segments
}

// splitIntoWords splits a segment at soft break opportunities, consuming
// the whitespace between words.
func splitIntoWords(segment string) []string {
	words := make([]string, 0)
	currentWord := ""
	for _, ch := range segment {
		if ch == ' ' || ch == '\t' {
			if currentWord != "" {
				words = append(words, currentWord)
				currentWord = ""
			}
		} else {
			currentWord += string(ch)
		}
	}
	if currentWord != "" {
		words = append(words, currentWord)
	}
	return words
}
