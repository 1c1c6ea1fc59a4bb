// internal/event/types.go
package event

const (
	PointerMoved  EventType = "PointerMoved"  // Курсор сдвинулся, Data: Point
	Clicked       EventType = "Clicked"       // Клик левой кнопкой, Data: Point
	Resized       EventType = "Resized"       // Размер окна изменился, Data: Size
	KeyPressed    EventType = "KeyPressed"    // Нажата клавиша, Data: string
	SkillSelected EventType = "SkillSelected" // Выбор навыка изменился, Data: Selection
	SoundToggled  EventType = "SoundToggled"  // Звук включён/выключен, Data: bool
)

// Point - координата курсора в пикселях окна.
type Point struct {
	X, Y float64
}

// Size - размер окна в пикселях.
type Size struct {
	Width, Height int
}

// Selection - текущее состояние выбора в движке орбит.
// Index < 0 означает, что ничего не выбрано.
type Selection struct {
	Index int
	Name  string
}
