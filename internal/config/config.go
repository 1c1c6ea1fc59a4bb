// internal/config/config.go
package config

import (
	"image/color"

	"go-portfolio-fx/pkg/render"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	TargetFPS    = 60

	// Поле частиц
	ParticlesPerMove    = 2
	ParticlesPerClick   = 15
	MaxParticles        = 200
	MoveJitter          = 10.0 // ±px вокруг курсора
	MoveSpeed           = 1.0  // ±px/кадр по каждой оси
	ClickSpeed          = 5.0
	MoveSizeMin         = 1.0
	MoveSizeMax         = 4.0
	ClickSizeMin        = 2.0
	ClickSizeMax        = 7.0
	OpacityMin          = 0.2
	OpacityMax          = 0.7
	DecayMin            = 0.005
	DecayMax            = 0.025
	AttractionRadius    = 100.0
	AttractionStrength  = 0.0001
	ParticleDrag        = 0.99
	ParticleHueMin      = 200.0 // синий
	ParticleHueMax      = 260.0 // фиолетовый
	ParticleSaturation  = 0.7
	ParticleLightness   = 0.6
	ParticleGlowFactor  = 2.5 // радиус ореола относительно размера
	ParticleGlowOpacity = 0.35

	// Орбиты навыков
	OrbitRotationSpeed = 0.004 // рад за кадр при 60 FPS
	OrbitFloatAmp      = 0.3
	OrbitFloatSpeed    = 1.5
	OrbitSpinSpeedX    = 0.008
	OrbitSpinSpeedY    = 0.012
	OrbitPulseSpeed    = 4.0
	OrbitHoverScale    = 1.4
	OrbitSelectScale   = 1.2
	OrbitScaleLerp     = 0.1
	OrbitOrbRadius     = 0.7 // радиус сферы в 3D-единицах
	OrbitScreenScale   = 26.0
	OrbitGlowBase      = 0.1
	OrbitGlowSelected  = 0.3
	OrbitGlowHover     = 0.5

	// Нейросеть на фоне
	NetworkNodeCount       = 50
	NetworkPointerRadius   = 150.0
	NetworkPointerPull     = 0.02
	NetworkReturnRate      = 0.02
	NetworkDriftSpeed      = 0.5
	NetworkLinkDistance    = 100.0
	NetworkLinkOpacity     = 0.3
	NetworkSpringStiffness = 50.0
	NetworkSpringDamping   = 20.0

	// Кнопка звука и инфо-панель
	SoundButtonOffset = 36
	SoundButtonRadius = 16.0
	InfoPanelHeight   = 70
)

var (
	BackgroundColor = color.RGBA{5, 8, 22, 255}
	CoreColor       = color.RGBA{254, 215, 170, 255}
	RingGuideColor  = color.RGBA{255, 255, 255, 40}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	PanelColor      = color.RGBA{0, 0, 0, 220}
	NetworkColor    = color.RGBA{100, 150, 255, 255}
	SoundOnColor    = color.RGBA{70, 130, 180, 220}
	SoundOffColor   = color.RGBA{90, 90, 100, 220}
	StrokeWidth     = float32(2.0)

	// Радиусы колец в пикселях для плоской раскладки (внутреннее, среднее, внешнее).
	RingScreenRadii = []float64{80, 140, 200}
)

// Colors собирает палитру страницы для виджетов.
func Colors() render.PageColors {
	return render.PageColors{
		BackgroundColor: BackgroundColor,
		CoreColor:       CoreColor,
		RingGuideColor:  RingGuideColor,
		TextLightColor:  TextLightColor,
		TextDarkColor:   TextDarkColor,
		PanelColor:      PanelColor,
		NetworkColor:    NetworkColor,
	}
}
