package render

import (
	"image/color"
	"testing"
)

func TestHSLPrimaries(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    color.RGBA
	}{
		{0, 1, 0.5, color.RGBA{255, 0, 0, 255}},
		{120, 1, 0.5, color.RGBA{0, 255, 0, 255}},
		{240, 1, 0.5, color.RGBA{0, 0, 255, 255}},
		{0, 0, 1, color.RGBA{255, 255, 255, 255}},
		{360, 1, 0.5, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := HSL(tt.h, tt.s, tt.l); got != tt.want {
			t.Errorf("HSL(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}

func TestHSLWrapsNegativeHue(t *testing.T) {
	if got, want := HSL(-120, 0.7, 0.6), HSL(240, 0.7, 0.6); got != want {
		t.Errorf("HSL(-120) = %v, want %v", got, want)
	}
}

func TestHSLParticleBandIsBluePurple(t *testing.T) {
	for h := 200.0; h < 260; h += 5 {
		c := HSL(h, 0.7, 0.6)
		if c.B <= c.R || c.B <= c.G {
			t.Errorf("hue %v: expected blue-dominant color, got %v", h, c)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#3776AB")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if c != (color.RGBA{0x37, 0x76, 0xAB, 255}) {
		t.Errorf("unexpected color %v", c)
	}

	short, err := ParseHex("#fff")
	if err != nil {
		t.Fatalf("ParseHex short: %v", err)
	}
	if short != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("unexpected short color %v", short)
	}

	bare, err := ParseHex(" 3776ab ")
	if err != nil || bare != c {
		t.Errorf("ParseHex without # = %v, %v; want %v", bare, err, c)
	}

	for _, bad := range []string{"", "#12", "#zzzzzz", "#1234567"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) expected error", bad)
		}
	}
}

func TestWithAlphaClamps(t *testing.T) {
	base := color.RGBA{10, 20, 30, 255}
	if got := WithAlpha(base, 2).A; got != 255 {
		t.Errorf("alpha above 1 should clamp to 255, got %d", got)
	}
	if got := WithAlpha(base, -1).A; got != 0 {
		t.Errorf("alpha below 0 should clamp to 0, got %d", got)
	}
	if got := WithAlpha(base, 0.5).A; got != 128 {
		t.Errorf("WithAlpha(0.5) = %d, want 128", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	if !r.Contains(15, 15) {
		t.Error("point inside rect not contained")
	}
	if r.Contains(30, 15) {
		t.Error("right edge should be exclusive")
	}
	cx, cy := r.Center()
	if cx != 20 || cy != 20 {
		t.Errorf("Center() = (%v, %v), want (20, 20)", cx, cy)
	}
}
