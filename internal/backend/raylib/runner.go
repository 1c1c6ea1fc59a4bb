// internal/backend/raylib/runner.go
package raylib

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-portfolio-fx/internal/assets"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/interfaces"
	"go-portfolio-fx/internal/ui"
	"go-portfolio-fx/internal/utils"
)

// keyNames - клавиши, которые страница понимает.
var keyNames = map[int32]string{
	rl.KeyEscape: "Escape",
	rl.KeyM:      "M",
	rl.KeySpace:  "Space",
	rl.KeyEnter:  "Enter",
}

// Runner держит окно raylib и общие 3D-ресурсы.
type Runner struct {
	settings config.Settings
	models   *assets.ModelManager
	lastX    float32
	lastY    float32
}

func NewRunner(settings config.Settings) *Runner {
	return &Runner{
		settings: settings,
		models:   assets.NewModelManager(),
		lastX:    -1,
		lastY:    -1,
	}
}

// NewScene - фабрика 3D-раскладки для приложения. Работает после открытия окна.
func (r *Runner) NewScene() (ui.Presentation, error) {
	scene, err := NewScene3D(r.settings.Orbit, r.models)
	if err != nil {
		return nil, err
	}
	return scene, nil
}

// Run открывает окно, собирает страницу через build и крутит цикл до закрытия окна.
func (r *Runner) Run(build func() interfaces.Host) error {
	w := r.settings.Window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()
	defer r.models.Cleanup()

	rl.SetTargetFPS(int32(w.TargetFPS))
	rl.SetExitKey(0) // Escape снимает выбор, а не закрывает окно

	host := build()
	defer host.Close()
	canvas := NewCanvas()

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		deltaTime := utils.Clamp(float64(rl.GetFrameTime()), 0, w.MaxDeltaTime)

		if rl.IsWindowResized() {
			host.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		r.pollInput(host)
		host.Update(deltaTime)

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(colorToRL(config.BackgroundColor))
		host.Draw(canvas)
		rl.EndDrawing()
	}
	log.Println("raylib: window closed")
	return nil
}

// pollInput переводит ввод кадра в события страницы.
func (r *Runner) pollInput(host interfaces.Host) {
	pos := rl.GetMousePosition()
	if pos.X != r.lastX || pos.Y != r.lastY {
		r.lastX, r.lastY = pos.X, pos.Y
		host.PointerMoved(float64(pos.X), float64(pos.Y))
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		host.Click(float64(pos.X), float64(pos.Y))
	}
	for key, name := range keyNames {
		if rl.IsKeyPressed(key) {
			host.KeyPressed(name)
		}
	}
}
