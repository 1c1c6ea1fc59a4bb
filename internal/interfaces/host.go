// internal/interfaces/host.go
package interfaces

import "go-portfolio-fx/pkg/render"

// Host - то, что бэкенд крутит в своём цикле. Ввод бэкенд опрашивает сам
// и передаёт сюда до Update, поэтому события кадра применяются раньше физики.
type Host interface {
	PointerMoved(x, y float64)
	Click(x, y float64)
	KeyPressed(key string)
	Resize(width, height int)

	Update(deltaTime float64)
	Draw(canvas render.Canvas)
	Close()
}
