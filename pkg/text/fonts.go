package text

import (
	"os"
	"path/filepath"
	"runtime"
)

// FontConfig holds paths to the font files used for text measurement.
type FontConfig struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
	Monospace  string
	MonoBold   string
	Ahem       string // Test font where all glyphs are 1em x 1em squares
}

// defaultFontsDir returns the fonts directory relative to this source file.
func defaultFontsDir() string {
	// Try relative to executable first
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "..", "fonts")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	// Fall back to compile-time source location
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "fonts")
}

// DefaultFontConfig returns a FontConfig using the bundled fonts, if any
// are installed alongside the binary or the source tree.
func DefaultFontConfig() FontConfig {
	dir := defaultFontsDir()
	return FontConfig{
		Regular:    filepath.Join(dir, "Regular.ttf"),
		Bold:       filepath.Join(dir, "Bold.ttf"),
		Italic:     filepath.Join(dir, "Italic.ttf"),
		BoldItalic: filepath.Join(dir, "BoldItalic.ttf"),
		Monospace:  filepath.Join(dir, "Mono-Regular.ttf"),
		MonoBold:   filepath.Join(dir, "Mono-Bold.ttf"),
		Ahem:       filepath.Join(dir, "Ahem.ttf"),
	}
}

// FontPath returns the font path for the given style combination.
func (fc FontConfig) FontPath(bold, italic, mono, ahem bool) string {
	// Ahem takes precedence over all other fonts
	if ahem && fc.Ahem != "" {
		return fc.Ahem
	}
	if mono {
		if bold && fc.MonoBold != "" {
			return fc.MonoBold
		}
		if fc.Monospace != "" {
			return fc.Monospace
		}
		// fall through to proportional if no mono font configured
	}
	if bold && italic && fc.BoldItalic != "" {
		return fc.BoldItalic
	}
	if bold {
		return fc.Bold
	}
	if italic && fc.Italic != "" {
		return fc.Italic
	}
	return fc.Regular
}
