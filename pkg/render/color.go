// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// PageColors holds the colors shared by the page background and its widgets.
type PageColors struct {
	BackgroundColor color.RGBA
	CoreColor       color.RGBA
	RingGuideColor  color.RGBA
	TextLightColor  color.RGBA
	TextDarkColor   color.RGBA
	PanelColor      color.RGBA
	NetworkColor    color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced by a (0..1, clamped).
// Канал альфа хранится не премультиплицированным, бэкенды сами приводят цвет.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(math.Round(a * 255))
	return c
}

// HSL converts hue (degrees), saturation and lightness (0..1) to an opaque RGBA.
func HSL(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return toRGBA(colorful.Hsl(h, s, l))
}

// ParseHex parses "#RRGGBB" or "#RGB" into an opaque RGBA. The leading # is optional.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return toRGBA(c), nil
}

// MustParseHex is ParseHex for compiled-in palettes.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
