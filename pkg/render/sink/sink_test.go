package sink

import (
	"bytes"
	"errors"
	"image/png"
	"reflect"
	"strings"
	"testing"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
	"github.com/matzehuels/vonneumann/pkg/ordinal"
	"github.com/matzehuels/vonneumann/pkg/render"
)

var testPalette = ordinal.Palette{Dark: "darkblue", Light: "lightblue", Unshaded: "white"}

var isEven = ordinal.PredicateFunc(func(n int) bool { return n%2 == 0 })

func drawScene(t *testing.T, n int) *Scene {
	t.Helper()
	s := NewScene()
	if _, err := ordinal.Draw(n, isEven, testPalette, s); err != nil {
		t.Fatalf("Draw(%d) error: %v", n, err)
	}
	return s
}

func TestSceneRecordsDraw(t *testing.T) {
	s := drawScene(t, 3)
	if len(s.Circles) != 8 {
		t.Errorf("circles = %d, want 8", len(s.Circles))
	}
	if s.Name != "von_neumann_n3" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.MaxDepth() != 3 {
		t.Errorf("MaxDepth = %d, want 3", s.MaxDepth())
	}
	if s.Viewport.Width() != 2.4 {
		t.Errorf("viewport width = %v, want 2.4", s.Viewport.Width())
	}
}

func TestSceneExportFunc(t *testing.T) {
	var got string
	s := NewScene(WithExportFunc(func(name string, s *Scene) error {
		got = name
		if len(s.Circles) != 2 {
			t.Errorf("export saw %d circles, want 2", len(s.Circles))
		}
		return nil
	}))
	if _, err := ordinal.Draw(1, nil, testPalette, s); err != nil {
		t.Fatal(err)
	}
	if got != "von_neumann_n1" {
		t.Errorf("export name = %q", got)
	}

	failing := NewScene(WithExportFunc(func(string, *Scene) error { return errors.New("disk full") }))
	_, err := ordinal.Draw(1, nil, testPalette, failing)
	if !vnerrors.Is(err, vnerrors.ErrCodeExportFailure) {
		t.Errorf("Draw error = %v, want EXPORT_FAILURE", err)
	}
}

func TestSceneRejectsBadInput(t *testing.T) {
	s := NewScene()
	if err := s.DrawCircle(ordinal.Circle{Radius: 0}); !vnerrors.Is(err, vnerrors.ErrCodeCanvasFailure) {
		t.Errorf("DrawCircle(r=0) error = %v", err)
	}
	if err := s.SetViewport(ordinal.Bounds{}); !vnerrors.Is(err, vnerrors.ErrCodeCanvasFailure) {
		t.Errorf("SetViewport(empty) error = %v", err)
	}
}

func TestSceneBoundsWithoutViewport(t *testing.T) {
	s := NewScene()
	_ = s.DrawCircle(ordinal.Circle{Center: ordinal.Point{X: 1, Y: 2}, Radius: 0.5})
	want := ordinal.Bounds{MinX: 0.5, MinY: 1.5, MaxX: 1.5, MaxY: 2.5}
	if got := s.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestRenderSVG(t *testing.T) {
	s := drawScene(t, 2)
	svg := string(RenderSVG(s, WithSize(400), WithTitles()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 2.4 2.4" width="400" height="400">`) {
		t.Errorf("unexpected header: %.120s", svg)
	}
	if got := strings.Count(svg, "<circle "); got != 4 {
		t.Errorf("circle elements = %d, want 4", got)
	}
	// pre-order: root (dark), member 0 (light), member 1 (white), its member 0 (dark)
	order := []string{`id="c-0" class="ordinal dark"`, `id="c-1" class="ordinal light"`, `id="c-2" class="ordinal unshaded"`, `id="c-3" class="ordinal dark"`}
	last := -1
	for _, frag := range order {
		idx := strings.Index(svg, frag)
		if idx <= last {
			t.Fatalf("fragment %q out of order", frag)
		}
		last = idx
	}
	if !strings.Contains(svg, `cx="1.2" cy="1.2" r="1" fill="#00008b" stroke="#000000"`) {
		t.Error("root circle should be centred in the viewBox with normalized colors")
	}
	if !strings.Contains(svg, "<title>von_neumann_n2</title>") {
		t.Error("missing document title")
	}
}

func TestRenderSVGTransparent(t *testing.T) {
	svg := string(RenderSVG(drawScene(t, 0), WithBackground("")))
	if strings.Contains(svg, "<rect") {
		t.Error("transparent render should not paint a background")
	}
}

func TestRenderPNG(t *testing.T) {
	s := drawScene(t, 3)
	data, err := RenderPNG(s, WithPNGSize(240))
	if err != nil {
		t.Fatalf("RenderPNG error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 240 {
		t.Errorf("size = %dx%d, want 240x240", b.Dx(), b.Dy())
	}

	// corners are background; the root of 3 is odd so its fill is white too,
	// but member 0 (even, dark) sits right of center on the x axis.
	r, g, b, _ := img.At(2, 2).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("corner pixel = (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
	p, _ := ordinal.Pack(1, 3)
	x := int((p.Offsets[0].X + 1.2) * 100)
	r, g, b, _ = img.At(x, 120).RGBA()
	want := render.MustParseColor("darkblue")
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("member 0 center pixel = (%d,%d,%d), want darkblue", r>>8, g>>8, b>>8)
	}
}

func TestRenderPNGInvalid(t *testing.T) {
	s := drawScene(t, 1)
	if _, err := RenderPNG(s, WithPNGSize(0)); !vnerrors.Is(err, vnerrors.ErrCodeInvalidArgument) {
		t.Errorf("size 0 error = %v", err)
	}
	if _, err := RenderPNG(s, WithPNGSize(MaxSize+1)); !vnerrors.Is(err, vnerrors.ErrCodeInvalidArgument) {
		t.Errorf("size %d error = %v", MaxSize+1, err)
	}

	flat := &Scene{Name: "flat", Circles: []ordinal.Circle{{Radius: 0}}}
	if _, err := RenderPNG(flat); !vnerrors.Is(err, vnerrors.ErrCodeInvalidArgument) {
		t.Errorf("flat viewport error = %v", err)
	}
	tall := &Scene{Name: "tall", Viewport: ordinal.Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1000}}
	if _, err := RenderPNG(tall, WithPNGSize(100)); !vnerrors.Is(err, vnerrors.ErrCodeInvalidArgument) {
		t.Errorf("oversize height error = %v", err)
	}

	s.Circles[0].Fill = "not-a-color"
	if _, err := RenderPNG(s); !vnerrors.Is(err, vnerrors.ErrCodeCanvasFailure) {
		t.Errorf("bad fill error = %v", err)
	}
}

func TestRenderPDF(t *testing.T) {
	if !render.HasConverter() {
		t.Skip("rsvg-convert not installed")
	}
	data, err := RenderPDF(drawScene(t, 2))
	if err != nil {
		t.Fatalf("RenderPDF error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output is not a PDF: %q", data[:min(8, len(data))])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	s := drawScene(t, 3)
	data, err := RenderJSON(s, WithJSONPalette(testPalette))
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}
	if !strings.Contains(string(data), `"palette"`) {
		t.Error("palette missing from JSON")
	}

	back, err := ReadJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	if back.Name != s.Name || back.Viewport != s.Viewport {
		t.Errorf("header mismatch: %q %+v", back.Name, back.Viewport)
	}
	if !reflect.DeepEqual(back.Circles, s.Circles) {
		t.Error("circles changed across JSON round trip")
	}
	if back.Palette != testPalette {
		t.Errorf("Palette = %+v, want %+v", back.Palette, testPalette)
	}

	again, err := RenderJSON(back)
	if err != nil {
		t.Fatalf("RenderJSON(back) error: %v", err)
	}
	if !strings.Contains(string(again), `"darkblue"`) {
		t.Error("palette dropped when re-exporting a decoded scene")
	}
}

func TestReadJSONRejectsDegenerateScene(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero radius", `{"name":"x","viewport":{"min_x":-1,"min_y":-1,"max_x":1,"max_y":1},"circles":[{"x":0,"y":0,"r":0}]}`},
		{"negative radius", `{"name":"x","viewport":{"min_x":-1,"min_y":-1,"max_x":1,"max_y":1},"circles":[{"x":0,"y":0,"r":-2}]}`},
		{"zero viewport", `{"name":"x","viewport":{"min_x":0,"min_y":0,"max_x":0,"max_y":0},"circles":[{"x":0,"y":0,"r":0}]}`},
		{"flat viewport", `{"name":"x","viewport":{"min_x":-1,"min_y":0,"max_x":1,"max_y":0},"circles":[{"x":0,"y":0,"r":1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.doc))
			if !vnerrors.Is(err, vnerrors.ErrCodeInvalidArgument) {
				t.Errorf("ReadJSON error = %v, want INVALID_ARGUMENT", err)
			}
		})
	}
}
