package cvi

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#E6E6E6", "#e6e6e6"},
		{"afafaf", "#afafaf"},
		{"#fff", "#ffffff"},
		{"#f008", "#ff000088"},
		{"#345AA380", "#345aa380"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in).HexString(); got != tt.want {
				t.Errorf("Hex(%q).HexString() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "blue"} {
		if got := Hex(in); got != Black {
			t.Errorf("Hex(%q) = %v, want Black", in, got)
		}
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) = nil error, want error", in)
		}
	}
}

func TestRGBA_Color(t *testing.T) {
	got := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}.Color()
	want := color.NRGBA{R: 255, G: 127, B: 0, A: 127}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
	// Out-of-range components clamp.
	if got := (RGBA{R: 2, G: -1, B: 0, A: 1}).Color(); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("Color() = %v, want clamped red", got)
	}
}

func TestRGBA_Lerp(t *testing.T) {
	got := Black.Lerp(White, 0.25)
	if got != (RGBA{R: 0.25, G: 0.25, B: 0.25, A: 1}) {
		t.Errorf("Lerp = %v", got)
	}
	if Black.Lerp(White, 0) != Black || Black.Lerp(White, 1) != White {
		t.Error("Lerp endpoints must return the inputs")
	}
}
