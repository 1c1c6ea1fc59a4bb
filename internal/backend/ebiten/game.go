// internal/backend/ebiten/game.go
package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/interfaces"
	"go-portfolio-fx/internal/utils"
)

var keyNames = map[ebiten.Key]string{
	ebiten.KeyEscape: "Escape",
	ebiten.KeyM:      "M",
	ebiten.KeySpace:  "Space",
	ebiten.KeyEnter:  "Enter",
}

// Game связывает цикл ebiten со страницей.
type Game struct {
	host           interfaces.Host
	window         config.WindowConfig
	canvas         *Canvas
	lastUpdateTime time.Time
	lastX, lastY   int
	closed         bool
}

func NewGame(host interfaces.Host, window config.WindowConfig) *Game {
	return &Game{
		host:           host,
		window:         window,
		lastUpdateTime: time.Now(),
		lastX:          -1,
		lastY:          -1,
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.close()
		return ebiten.Termination
	}

	now := time.Now()
	deltaTime := g.clampDelta(now.Sub(g.lastUpdateTime).Seconds())
	g.lastUpdateTime = now

	g.pollInput()
	g.host.Update(deltaTime)
	return nil
}

func (g *Game) clampDelta(dt float64) float64 {
	return utils.Clamp(dt, 0, g.window.MaxDeltaTime)
}

func (g *Game) pollInput() {
	x, y := ebiten.CursorPosition()
	if x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		g.host.PointerMoved(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.host.Click(float64(x), float64(y))
	}
	for key, name := range keyNames {
		if inpututil.IsKeyJustPressed(key) {
			g.host.KeyPressed(name)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = NewCanvas()
	}
	screen.Fill(config.BackgroundColor)
	g.canvas.setTarget(screen)
	g.host.Draw(g.canvas)
}

// Layout отдаёт странице реальный размер окна.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.host.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) close() {
	if g.closed {
		return
	}
	g.closed = true
	g.host.Close()
}

// Run открывает окно и крутит игру до закрытия.
func Run(host interfaces.Host, window config.WindowConfig) error {
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(window.TargetFPS)

	game := NewGame(host, window)
	defer game.close()
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		return err
	}
	log.Println("ebiten: window closed")
	return nil
}
