// Package boxes holds the formatting-tree data model consumed by the
// width-resolution pass. Boxes are built upstream (box construction from
// markup is not part of this module) and are read-only during measurement,
// with the single documented exception of replaced-width resolution in
// compatibility mode.
package boxes

import (
	"shrinkfit/pkg/style"
)

// Kind tags a box with its formatting role.
type Kind int

const (
	// BlockContainer establishes a block formatting context; its children
	// stack vertically.
	BlockContainer Kind = iota
	// Inline is an inline box whose children flow horizontally.
	Inline
	// Line is a line box: an anonymous inline formatting context generated
	// by a block container around its inline-level content.
	Line
	// Text is a leaf holding a run of characters.
	Text
	// AtomicInline is inline-level content that cannot be split across
	// lines: inline-replaced boxes (images) and inline-blocks.
	AtomicInline
)

func (k Kind) String() string {
	switch k {
	case BlockContainer:
		return "block container"
	case Inline:
		return "inline box"
	case Line:
		return "line box"
	case Text:
		return "text box"
	case AtomicInline:
		return "atomic inline-level box"
	}
	return "unknown box kind"
}

// Auto marks a width or height that has not been resolved to a length.
// Real lengths are never negative, so any negative value reads as Auto;
// comparisons go through Box.HasAutoWidth rather than == Auto.
const Auto float64 = -1

// Size is a containing-block size against which percentages resolve.
type Size struct {
	Width  float64
	Height float64
}

// Box is a node in the formatting tree.
type Box struct {
	Kind  Kind
	Style *style.Style

	// Width is Auto until a layout pass resolves it. The width core only
	// handles Auto; replaced-width resolution may write a resolved value
	// here in compatibility mode.
	Width  float64
	Height float64

	// Children is ordered; empty is valid and means a leaf container.
	Children []*Box

	// Text is present only on Text boxes.
	Text string

	// Natural geometry of replaced content, present only on AtomicInline
	// boxes. Zero IntrinsicRatio means no usable aspect ratio.
	IntrinsicWidth  float64
	IntrinsicHeight float64
	IntrinsicRatio  float64
}

func (b *Box) HasAutoWidth() bool  { return b.Width < 0 }
func (b *Box) HasAutoHeight() bool { return b.Height < 0 }

// NewBlockContainer returns an auto-width block container with the given
// children.
func NewBlockContainer(st *style.Style, children ...*Box) *Box {
	return newContainer(BlockContainer, st, children)
}

// NewInline returns an auto-width inline box with the given children.
func NewInline(st *style.Style, children ...*Box) *Box {
	return newContainer(Inline, st, children)
}

// NewLine returns a line box with the given children.
func NewLine(st *style.Style, children ...*Box) *Box {
	return newContainer(Line, st, children)
}

func newContainer(kind Kind, st *style.Style, children []*Box) *Box {
	if st == nil {
		st = style.New()
	}
	return &Box{Kind: kind, Style: st, Width: Auto, Height: Auto, Children: children}
}

// NewText returns a text box for the given run of characters.
func NewText(st *style.Style, text string) *Box {
	if st == nil {
		st = style.New()
	}
	return &Box{Kind: Text, Style: st, Width: Auto, Height: Auto, Text: text}
}

// NewAtomic returns an atomic inline-level box with the given natural
// geometry. A zero height leaves the ratio unset.
func NewAtomic(st *style.Style, naturalWidth, naturalHeight float64) *Box {
	if st == nil {
		st = style.New()
	}
	b := &Box{
		Kind:            AtomicInline,
		Style:           st,
		Width:           Auto,
		Height:          Auto,
		IntrinsicWidth:  naturalWidth,
		IntrinsicHeight: naturalHeight,
	}
	if naturalHeight > 0 {
		b.IntrinsicRatio = naturalWidth / naturalHeight
	}
	return b
}
