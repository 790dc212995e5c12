package sink

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/vonneumann/pkg/ordinal"
)

type jsonOutput struct {
	Name     string       `json:"name"`
	Palette  *jsonPalette `json:"palette,omitempty"`
	Viewport jsonBounds   `json:"viewport"`
	Circles  []jsonCircle `json:"circles"`
}

type jsonPalette struct {
	Dark     string `json:"dark"`
	Light    string `json:"light"`
	Unshaded string `json:"unshaded"`
}

type jsonBounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

type jsonCircle struct {
	Value  int     `json:"value"`
	Depth  int     `json:"depth"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
	State  string  `json:"state"`
	Fill   string  `json:"fill"`
	Border string  `json:"border"`
}

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonOutput)

// WithJSONPalette records the palette the scene was drawn with.
func WithJSONPalette(p ordinal.Palette) JSONOption {
	return func(o *jsonOutput) {
		o.Palette = &jsonPalette{Dark: p.Dark, Light: p.Light, Unshaded: p.Unshaded}
	}
}

// RenderJSON exports the scene as indented JSON. Circles keep their pre-order
// so that depth alone is enough to rebuild the membership tree.
func RenderJSON(s *Scene, opts ...JSONOption) ([]byte, error) {
	b := s.Bounds()
	out := jsonOutput{
		Name:     s.Name,
		Viewport: jsonBounds{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY},
		Circles:  make([]jsonCircle, len(s.Circles)),
	}
	if s.Palette != (ordinal.Palette{}) {
		WithJSONPalette(s.Palette)(&out)
	}
	for _, opt := range opts {
		opt(&out)
	}
	for i, c := range s.Circles {
		out.Circles[i] = jsonCircle{
			Value:  c.Value,
			Depth:  c.Depth,
			X:      c.Center.X,
			Y:      c.Center.Y,
			Radius: c.Radius,
			State:  c.State.String(),
			Fill:   c.Fill,
			Border: c.Border,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// ReadJSON decodes a scene written by RenderJSON, including its palette when
// one was recorded. The result is checked with [Scene.Validate].
func ReadJSON(r io.Reader) (*Scene, error) {
	var in jsonOutput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, err
	}
	s := &Scene{
		Name:     in.Name,
		Viewport: ordinal.Bounds{MinX: in.Viewport.MinX, MinY: in.Viewport.MinY, MaxX: in.Viewport.MaxX, MaxY: in.Viewport.MaxY},
		Circles:  make([]ordinal.Circle, len(in.Circles)),
	}
	if in.Palette != nil {
		s.Palette = ordinal.Palette{Dark: in.Palette.Dark, Light: in.Palette.Light, Unshaded: in.Palette.Unshaded}
	}
	for i, c := range in.Circles {
		s.Circles[i] = ordinal.Circle{
			Center: ordinal.Point{X: c.X, Y: c.Y},
			Radius: c.Radius,
			Fill:   c.Fill,
			Border: c.Border,
			Value:  c.Value,
			Depth:  c.Depth,
			State:  parseState(c.State),
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseState(s string) ordinal.ColorState {
	switch s {
	case ordinal.Dark.String():
		return ordinal.Dark
	case ordinal.Light.String():
		return ordinal.Light
	default:
		return ordinal.Unshaded
	}
}
