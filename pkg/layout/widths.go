// Package layout computes shrink-to-fit widths: the (max-content,
// min-content) width pair used to size auto-width boxes (floats,
// inline-blocks, absolutely positioned boxes with auto width,
// intrinsically sized table cells) to their content. A later layout
// stage clamps the used width into [min-content, max-content] against
// available space; that stage is not part of this package.
package layout

import (
	"fmt"
	"math"

	"shrinkfit/pkg/boxes"
	"shrinkfit/pkg/style"
)

// Unbounded is the wrap-width bound meaning "no bound": text breaks only
// at forced breaks.
var Unbounded = math.Inf(1)

// TextMeasurer produces the ordered line widths of a text run broken at
// wrapWidth. Implementations must return at least one entry (0 for empty
// text), every entry >= 0. A wrap width of 0 breaks at every opportunity;
// Unbounded breaks only at forced breaks.
type TextMeasurer interface {
	MeasureLines(textRun string, st *style.Style, wrapWidth float64) []float64
}

// WidthPair is a shrink-to-fit result. PreferredMinimum never exceeds
// Preferred for the same content.
type WidthPair struct {
	Preferred        float64
	PreferredMinimum float64
}

// Resolver computes shrink-to-fit widths over a formatting tree. It keeps
// no state across calls; distinct subtrees may be resolved concurrently as
// long as Sizer.MutateBox is off or the subtrees share no boxes.
type Resolver struct {
	Measurer TextMeasurer
	Sizer    ReplacedSizer
}

func NewResolver(m TextMeasurer) *Resolver {
	return &Resolver{Measurer: m}
}

// ShrinkToFit returns the preferred (max-content) and preferred minimum
// (min-content) widths for box. maxWidth bounds the wrap width used when
// measuring text for the max-content computation; pass Unbounded for no
// bound.
func (r *Resolver) ShrinkToFit(box *boxes.Box, maxWidth float64) (WidthPair, error) {
	preferred, err := r.Preferred(box, maxWidth)
	if err != nil {
		return WidthPair{}, err
	}
	minimum, err := r.PreferredMinimum(box)
	if err != nil {
		return WidthPair{}, err
	}
	return WidthPair{Preferred: preferred, PreferredMinimum: minimum}, nil
}

// Preferred returns the max-content width for box: the width reached when
// only forced line breaks occur, optionally bounded by maxWidth.
func (r *Resolver) Preferred(box *boxes.Box, maxWidth float64) (float64, error) {
	switch box.Kind {
	case boxes.BlockContainer:
		return r.blockPreferred(box, maxWidth)
	case boxes.Inline, boxes.Line:
		return r.inlinePreferred(box, maxWidth)
	default:
		return 0, fmt.Errorf("%w: preferred width of %s", ErrUnsupportedBoxKind, box.Kind)
	}
}

// PreferredMinimum returns the min-content width for box: the width
// reached when every break opportunity is taken.
func (r *Resolver) PreferredMinimum(box *boxes.Box) (float64, error) {
	switch box.Kind {
	case boxes.BlockContainer:
		return r.blockPreferredMinimum(box)
	case boxes.Inline, boxes.Line:
		return r.inlinePreferredMinimum(box)
	default:
		return 0, fmt.Errorf("%w: preferred minimum width of %s", ErrUnsupportedBoxKind, box.Kind)
	}
}

// blockPreferred resolves a block container. Its children stack
// vertically, so the result is the widest child, not the sum.
func (r *Resolver) blockPreferred(box *boxes.Box, maxWidth float64) (float64, error) {
	if !box.HasAutoWidth() {
		return 0, fmt.Errorf("%w: block container width %g", ErrUnsupportedWidthMode, box.Width)
	}
	widest := 0.0
	for _, child := range box.Children {
		w, err := r.Preferred(child, maxWidth)
		if err != nil {
			return 0, err
		}
		if w > widest {
			widest = w
		}
	}
	return widest, nil
}

func (r *Resolver) blockPreferredMinimum(box *boxes.Box) (float64, error) {
	if !box.HasAutoWidth() {
		return 0, fmt.Errorf("%w: block container width %g", ErrUnsupportedWidthMode, box.Width)
	}
	widest := 0.0
	for _, child := range box.Children {
		w, err := r.PreferredMinimum(child)
		if err != nil {
			return 0, err
		}
		if w > widest {
			widest = w
		}
	}
	return widest, nil
}

// inlinePreferred accumulates an inline context's children onto running
// lines, breaking only where a text run carries a forced break. Atomic
// replaced children join the current line; there is no break opportunity
// around them here.
//
// Only text runs and atomic replaced boxes are supported as children.
// Nested inline boxes are a known limitation of this pass.
func (r *Resolver) inlinePreferred(box *boxes.Box, maxWidth float64) (float64, error) {
	widestLine := 0.0
	currentLine := 0.0
	for _, child := range box.Children {
		switch child.Kind {
		case boxes.AtomicInline:
			currentLine += r.Sizer.PreferredWidth(child)
		case boxes.Text:
			lines := r.Measurer.MeasureLines(child.Text, child.Style, maxWidth)
			if len(lines) == 0 {
				return 0, fmt.Errorf("text measurer returned no lines for %q", child.Text)
			}
			// The first text line continues the current line.
			currentLine += lines[0]
			if len(lines) > 1 {
				// Forced break inside the run: close the current line,
				// account for the interior lines, and continue on the last.
				widestLine = math.Max(widestLine, currentLine)
				for _, w := range lines[1 : len(lines)-1] {
					widestLine = math.Max(widestLine, w)
				}
				currentLine = lines[len(lines)-1]
			}
		default:
			return 0, fmt.Errorf("%w: %s in inline context", ErrInvalidInlineChild, child.Kind)
		}
	}
	return math.Max(widestLine, currentLine), nil
}

// inlinePreferredMinimum takes every break opportunity, including the ones
// before and after atomic replaced children, so each child contributes a
// line of its own and the widest wins.
func (r *Resolver) inlinePreferredMinimum(box *boxes.Box) (float64, error) {
	widestLine := 0.0
	for _, child := range box.Children {
		var currentLine float64
		switch child.Kind {
		case boxes.AtomicInline:
			currentLine = r.Sizer.PreferredWidth(child)
		case boxes.Text:
			lines := r.Measurer.MeasureLines(child.Text, child.Style, 0)
			if len(lines) == 0 {
				return 0, fmt.Errorf("text measurer returned no lines for %q", child.Text)
			}
			for _, w := range lines {
				if w > currentLine {
					currentLine = w
				}
			}
		default:
			return 0, fmt.Errorf("%w: %s in inline context", ErrInvalidInlineChild, child.Kind)
		}
		if currentLine > widestLine {
			widestLine = currentLine
		}
	}
	return widestLine, nil
}
