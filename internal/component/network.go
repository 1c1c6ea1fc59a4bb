package component

// NetworkNode - узел фоновой сети. Возвращается к Origin, если курсор далеко.
type NetworkNode struct {
	Pos     Position
	Origin  Position
	Drift   Velocity
	Radius  float64
	Opacity float64
}

// Spring - сглаженная координата курсора (аналог пружины с затуханием).
type Spring struct {
	X, Y   float64
	VX, VY float64
}
