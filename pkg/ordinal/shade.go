package ordinal

import "fmt"

// ColorState is the shading tone of one circle.
type ColorState uint8

// Circle tones. A shaded member alternates between Dark and Light relative
// to its parent; see [Resolve].
const (
	Unshaded ColorState = iota // predicate false for this member
	Dark                       // shaded under an Unshaded or Light parent
	Light                      // shaded under a Dark parent
)

var colorStateNames = [...]string{Unshaded: "unshaded", Dark: "dark", Light: "light"}

func (s ColorState) String() string {
	if int(s) < len(colorStateNames) {
		return colorStateNames[s]
	}
	return fmt.Sprintf("ColorState(%d)", uint8(s))
}

// shadedAfter maps a parent state to the tone of a child that satisfies the
// predicate. Light never returns to Unshaded.
var shadedAfter = [...]ColorState{
	Unshaded: Dark,
	Dark:     Light,
	Light:    Dark,
}

// Resolve returns the state of a circle whose predicate evaluated to shade and
// whose parent is in state parent.
func Resolve(shade bool, parent ColorState) ColorState {
	if !shade {
		return Unshaded
	}
	if int(parent) >= len(shadedAfter) {
		return Dark
	}
	return shadedAfter[parent]
}

// Palette assigns a concrete color to each state. Colors are opaque to this
// package; the canvas decides what strings it accepts.
type Palette struct {
	Dark     string `json:"dark"`
	Light    string `json:"light"`
	Unshaded string `json:"unshaded"`
}

// DefaultPalette is a neutral gray scheme.
var DefaultPalette = Palette{Dark: "darkgray", Light: "lightgray", Unshaded: "white"}

// Color returns the palette entry for s.
func (p Palette) Color(s ColorState) string {
	switch s {
	case Dark:
		return p.Dark
	case Light:
		return p.Light
	default:
		return p.Unshaded
	}
}
