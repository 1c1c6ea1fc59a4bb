// internal/utils/math.go
package utils

import "math"

// Float - типы с плавающей точкой, с которыми работают хелперы ниже.
type Float interface {
	~float32 | ~float64
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp[T Float](from, to, t T) T {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle[T Float](angle T) T {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance возвращает расстояние между двумя точками.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
