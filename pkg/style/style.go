package style

import (
	"strconv"
	"strings"
)

// Style is the opaque styling data attached to a box. The width core does
// not interpret it; it is forwarded to text measurement and replaced
// sizing, which read the font and geometry properties below.
type Style struct {
	Properties map[string]string
}

func New() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

// GetLength returns the property parsed as an absolute length.
func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// GetPercentage returns the property parsed as a percentage fraction,
// e.g. "50%" yields 0.5.
func (s *Style) GetPercentage(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParsePercentage(val)
}

// ParseLength parses a length value (e.g., "100px" or "100")
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	if strings.HasSuffix(val, "%") {
		return 0, false
	}
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// ParsePercentage parses a percentage value (e.g., "50%") into a fraction.
func ParsePercentage(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	if !strings.HasSuffix(val, "%") {
		return 0, false
	}
	num, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
	if err != nil {
		return 0, false
	}
	return num / 100, true
}

// Font properties consumed by text measurement.

type FontWeight int

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

const DefaultFontSize = 16.0

func (s *Style) GetFontSize() float64 {
	if size, ok := s.GetLength("font-size"); ok && size > 0 {
		return size
	}
	return DefaultFontSize
}

func (s *Style) GetFontWeight() FontWeight {
	val, _ := s.Get("font-weight")
	switch strings.TrimSpace(val) {
	case "bold", "bolder", "600", "700", "800", "900":
		return FontWeightBold
	}
	return FontWeightNormal
}

func (s *Style) IsItalic() bool {
	val, _ := s.Get("font-style")
	val = strings.TrimSpace(val)
	return val == "italic" || val == "oblique"
}

// IsMonospace reports whether the font-family list requests a monospace face.
func (s *Style) IsMonospace() bool {
	return s.hasFamily("monospace")
}

// IsAhem reports whether the font-family list requests the Ahem test font,
// where every glyph is a 1em square.
func (s *Style) IsAhem() bool {
	return s.hasFamily("ahem")
}

func (s *Style) hasFamily(name string) bool {
	val, ok := s.Get("font-family")
	if !ok {
		return false
	}
	for _, family := range strings.Split(val, ",") {
		family = strings.Trim(strings.TrimSpace(family), `"'`)
		if strings.EqualFold(family, name) {
			return true
		}
	}
	return false
}
