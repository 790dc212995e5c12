package render

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
	"github.com/matzehuels/vonneumann/pkg/ordinal"
)

// ParseColor resolves a CSS color name or a "#rgb"/"#rrggbb" hex string.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return color.RGBA{}, vnerrors.New(vnerrors.ErrCodeInvalidColor, "color cannot be empty")
	}
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return color.RGBA{}, vnerrors.Wrap(vnerrors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return color.RGBA{}, vnerrors.New(vnerrors.ErrCodeInvalidColor, "unknown color %q (use a CSS color name or #rrggbb)", s)
}

// MustParseColor is like ParseColor but falls back to black on error.
// It is meant for palettes that were already checked with ValidatePalette.
func MustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

// Hex returns the "#rrggbb" form of a color accepted by ParseColor.
func Hex(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex(), nil
}

// IsDark reports whether text drawn on c should be light. The threshold is
// the midpoint of CIE L*.
func IsDark(c color.Color) bool {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return false
	}
	l, _, _ := cf.Lab()
	return l < 0.5
}

// ValidatePalette checks that every palette entry parses.
func ValidatePalette(p ordinal.Palette) error {
	for _, entry := range []struct{ role, value string }{
		{"dark", p.Dark},
		{"light", p.Light},
		{"unshaded", p.Unshaded},
	} {
		if _, err := ParseColor(entry.value); err != nil {
			return vnerrors.Wrap(vnerrors.ErrCodeInvalidColor, err, "%s color", entry.role)
		}
	}
	return nil
}
