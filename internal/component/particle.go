package component

import "image/color"

// SpawnKind - откуда появилась частица.
type SpawnKind uint8

const (
	SpawnTrail SpawnKind = iota // след за курсором
	SpawnBurst                  // взрыв по клику
)

// Particle - короткоживущая точка поля частиц.
// Life начинается с 1 и только убывает на Decay каждый кадр;
// при Life <= 0 частица удаляется и больше не используется.
type Particle struct {
	Pos     Position
	Vel     Velocity
	Size    float64    // радиус в пикселях
	Color   color.RGBA // выбирается один раз при рождении
	Opacity float64    // (0, 1]
	Life    float64    // [0, 1]
	Decay   float64    // потеря Life за кадр
	Kind    SpawnKind
}

// Alpha возвращает итоговую прозрачность: opacity * life.
func (p *Particle) Alpha() float64 {
	if p.Life <= 0 {
		return 0
	}
	return p.Opacity * p.Life
}

// Alive сообщает, нужно ли ещё рисовать частицу.
func (p *Particle) Alive() bool {
	return p.Life > 0
}
