// internal/backend/ebiten/canvas.go
package ebiten

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-portfolio-fx/pkg/render"
)

const (
	fontSize   = 14
	glowSprite = 64
)

var _ render.Canvas = (*Canvas)(nil)

// Canvas рисует на кадре ebiten. target меняется каждый Draw.
type Canvas struct {
	target *ebiten.Image
	face   font.Face
	glow   *ebiten.Image
}

func NewCanvas() *Canvas {
	return &Canvas{
		face: loadFace(),
		glow: ebiten.NewImageFromImage(radialGradient(glowSprite)),
	}
}

// loadFace грузит Go Regular; если не вышло, берёт встроенный битмап-шрифт.
func loadFace() font.Face {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("ebiten: parse font: %v", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("ebiten: font face: %v", err)
		return basicfont.Face7x13
	}
	return face
}

func (c *Canvas) setTarget(img *ebiten.Image) { c.target = img }

func (c *Canvas) Size() (int, int) {
	if c.target == nil {
		return 0, 0
	}
	b := c.target.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillCircle(x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(c.target, x, y, radius, toNRGBA(clr), true)
}

func (c *Canvas) StrokeCircle(x, y, radius, width float32, clr color.Color) {
	vector.StrokeCircle(c.target, x, y, radius, width, toNRGBA(clr), true)
}

func (c *Canvas) FillRect(x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(c.target, x, y, width, height, toNRGBA(clr), false)
}

func (c *Canvas) StrokeRect(x, y, width, height, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(c.target, x, y, width, height, strokeWidth, toNRGBA(clr), false)
}

func (c *Canvas) Line(x1, y1, x2, y2, width float32, clr color.Color) {
	vector.StrokeLine(c.target, x1, y1, x2, y2, width, toNRGBA(clr), true)
}

// Glow растягивает заранее посчитанный радиальный градиент и складывает его с кадром.
func (c *Canvas) Glow(x, y, radius float32, clr color.RGBA) {
	if radius <= 0 || clr.A == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := float64(radius*2) / glowSprite
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x-radius), float64(y-radius))
	op.ColorScale.ScaleWithColor(toNRGBA(clr))
	op.Blend = ebiten.BlendLighter
	op.Filter = ebiten.FilterLinear
	c.target.DrawImage(c.glow, op)
}

// Text рисует строку; y - верхний край строки.
func (c *Canvas) Text(s string, x, y int, clr color.Color) {
	ascent := c.face.Metrics().Ascent.Ceil()
	text.Draw(c.target, s, c.face, x, y+ascent, toNRGBA(clr))
}

func (c *Canvas) TextWidth(s string) int {
	return font.MeasureString(c.face, s).Ceil()
}

// toNRGBA трактует color.RGBA как цвет с непремультиплицированной альфой.
func toNRGBA(c color.Color) color.NRGBA {
	switch v := c.(type) {
	case color.RGBA:
		return color.NRGBA{R: v.R, G: v.G, B: v.B, A: v.A}
	case color.NRGBA:
		return v
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// radialGradient - белый круг, альфа спадает квадратично от центра к краю.
func radialGradient(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dx := (float64(px) + 0.5 - half) / half
			dy := (float64(py) + 0.5 - half) / half
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= 1 {
				continue
			}
			a := uint8(math.Round((1 - d) * (1 - d) * 255))
			// image.RGBA хранит премультиплицированные каналы
			img.SetRGBA(px, py, color.RGBA{a, a, a, a})
		}
	}
	return img
}
