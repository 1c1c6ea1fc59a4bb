// component/movement.go
package component

// Position - компонент позиции в пикселях окна
type Position struct {
	X, Y float64
}

// Velocity - компонент скорости, пикселей за кадр
type Velocity struct {
	X, Y float64
}

// Pointer - последнее известное положение курсора.
// Valid=false до первого движения мыши.
type Pointer struct {
	X, Y  float64
	Valid bool
}
