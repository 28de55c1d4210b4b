package layout

import (
	"shrinkfit/pkg/boxes"
	"shrinkfit/pkg/style"
)

// ReplacedSizer computes the preferred width of atomic replaced boxes.
// During shrink-to-fit the true containing block is not known yet, so
// percentage geometry resolves against a zero-sized placeholder; the
// resulting width is therefore approximate for percentage-sized content,
// a known limitation of shrink-to-fit computation in general.
type ReplacedSizer struct {
	// MutateBox restores the behavior of a real layout pass: the resolved
	// width is written back onto the box. Off by default, which keeps the
	// tree read-only and concurrent measurement of shared subtrees safe.
	MutateBox bool
}

// PreferredWidth resolves box's percentage geometry against the
// placeholder containing block, then picks a used width from the styled
// and natural geometry.
func (rs ReplacedSizer) PreferredWidth(box *boxes.Box) float64 {
	width, height := rs.ResolvePercentages(box, boxes.Size{})
	width = rs.usedWidth(box, width, height)
	if rs.MutateBox {
		box.Width = width
	}
	return width
}

// ResolvePercentages resolves the box's styled width and height against a
// containing block. Absent or unparseable properties come back as
// boxes.Auto.
func (rs ReplacedSizer) ResolvePercentages(box *boxes.Box, containingBlock boxes.Size) (width, height float64) {
	width = resolveDimension(box.Style, "width", containingBlock.Width)
	height = resolveDimension(box.Style, "height", containingBlock.Height)
	return width, height
}

func resolveDimension(st *style.Style, property string, base float64) float64 {
	if st == nil {
		return boxes.Auto
	}
	if length, ok := st.GetLength(property); ok {
		return length
	}
	if fraction, ok := st.GetPercentage(property); ok {
		return fraction * base
	}
	return boxes.Auto
}

// usedWidth applies the replaced-element width rules (CSS 2.1 §10.3.2):
// a styled width wins; an auto width with a styled height and a usable
// aspect ratio derives from the ratio; otherwise the natural width stands.
func (rs ReplacedSizer) usedWidth(box *boxes.Box, width, height float64) float64 {
	if width >= 0 {
		return width
	}
	if height >= 0 && box.IntrinsicRatio > 0 {
		return height * box.IntrinsicRatio
	}
	return box.IntrinsicWidth
}
