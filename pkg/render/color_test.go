package render

import (
	"image/color"
	"testing"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
	"github.com/matzehuels/vonneumann/pkg/ordinal"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"white", color.RGBA{255, 255, 255, 255}, false},
		{"DarkBlue", color.RGBA{0, 0, 139, 255}, false},
		{" lightblue ", color.RGBA{173, 216, 230, 255}, false},
		{"#ff0000", color.RGBA{255, 0, 0, 255}, false},
		{"#0f0", color.RGBA{0, 255, 0, 255}, false},
		{"#zzzzzz", color.RGBA{}, true},
		{"blurple", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if !vnerrors.Is(err, vnerrors.ErrCodeInvalidColor) {
					t.Fatalf("ParseColor(%q) error = %v, want INVALID_COLOR", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := map[string]string{
		"white":    "#ffffff",
		"darkgray": "#a9a9a9",
		"#ABC":     "#aabbcc",
	}
	for in, want := range tests {
		got, err := Hex(in)
		if err != nil {
			t.Fatalf("Hex(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("Hex(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsDark(t *testing.T) {
	if !IsDark(MustParseColor("darkblue")) {
		t.Error("darkblue should be dark")
	}
	if IsDark(MustParseColor("lightblue")) {
		t.Error("lightblue should not be dark")
	}
}

func TestValidatePalette(t *testing.T) {
	if err := ValidatePalette(ordinal.DefaultPalette); err != nil {
		t.Errorf("default palette invalid: %v", err)
	}
	bad := ordinal.Palette{Dark: "darkblue", Light: "not-a-color", Unshaded: "white"}
	if err := ValidatePalette(bad); !vnerrors.Is(err, vnerrors.ErrCodeInvalidColor) {
		t.Errorf("ValidatePalette(bad) error = %v, want INVALID_COLOR", err)
	}
}
