package boxes

import (
	"fmt"

	"shrinkfit/pkg/images"
	"shrinkfit/pkg/style"
)

// NewImageBox returns an atomic inline-level box whose natural geometry
// comes from the image file at path.
func NewImageBox(st *style.Style, path string) (*Box, error) {
	w, h, err := images.NaturalSize(path)
	if err != nil {
		return nil, fmt.Errorf("probing image %q: %w", path, err)
	}
	return NewAtomic(st, float64(w), float64(h)), nil
}
