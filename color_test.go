package easel

import (
	"image/color"
	"testing"
)

func TestColorRoundTrip(t *testing.T) {
	c := RGBA{R: 0.5, G: 0.25, B: 1, A: 1}
	got := FromColor(c.Color())

	const tolerance = 0.01
	if diff := got.R - c.R; diff > tolerance || diff < -tolerance {
		t.Errorf("R = %v, want about %v", got.R, c.R)
	}
	if diff := got.B - c.B; diff > tolerance || diff < -tolerance {
		t.Errorf("B = %v, want about %v", got.B, c.B)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	if got != Red {
		t.Errorf("FromColor = %+v, want Red", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#ff0000", Red},
		{"00ff00", Green},
		{"#f00", Red},
		{"#0000ffff", Blue},
		{"#00000000", Transparent},
		{"bogus", Black},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := Hex(tc.in); got != tc.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}
