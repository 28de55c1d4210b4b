package layout

import "errors"

// The width core fails fast: it never returns a best-effort width when a
// precondition is violated, because a wrong-but-plausible width would
// silently corrupt downstream layout decisions.
var (
	// ErrUnsupportedBoxKind reports a box kind this core cannot resolve,
	// which indicates a tree-construction defect upstream.
	ErrUnsupportedBoxKind = errors.New("unsupported box kind")

	// ErrUnsupportedWidthMode reports a block container whose width is not
	// auto. Fixed and percentage block widths are not computed here.
	ErrUnsupportedWidthMode = errors.New("unsupported width mode")

	// ErrInvalidInlineChild reports an inline context containing something
	// other than a text run or an atomic replaced box. Nested inline boxes
	// are a known limitation, not handled.
	ErrInvalidInlineChild = errors.New("invalid inline child")
)
