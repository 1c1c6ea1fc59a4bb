package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings - настройки, которые можно переопределить файлом или окружением.
// Значения по умолчанию берутся из констант этого пакета.
type Settings struct {
	Window   WindowConfig   `mapstructure:"window"`
	Particle ParticleConfig `mapstructure:"particle"`
	Orbit    OrbitConfig    `mapstructure:"orbit"`
	Network  NetworkConfig  `mapstructure:"network"`
	Audio    AudioConfig    `mapstructure:"audio"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
}

// WindowConfig - параметры окна и цикла кадров.
type WindowConfig struct {
	Width        int     `mapstructure:"width"`
	Height       int     `mapstructure:"height"`
	Title        string  `mapstructure:"title"`
	Backend      string  `mapstructure:"backend"` // "ebiten" или "raylib"
	TargetFPS    int     `mapstructure:"target_fps"`
	MaxDeltaTime float64 `mapstructure:"max_delta_time"`
	Seed         int64   `mapstructure:"seed"` // 0 - от текущего времени
}

// ParticleConfig - параметры поля частиц.
type ParticleConfig struct {
	Enabled            bool    `mapstructure:"enabled"`
	PerMove            int     `mapstructure:"per_move"`
	PerClick           int     `mapstructure:"per_click"`
	Max                int     `mapstructure:"max"`
	MoveJitter         float64 `mapstructure:"move_jitter"`
	MoveSpeed          float64 `mapstructure:"move_speed"`
	ClickSpeed         float64 `mapstructure:"click_speed"`
	MoveSizeMin        float64 `mapstructure:"move_size_min"`
	MoveSizeMax        float64 `mapstructure:"move_size_max"`
	ClickSizeMin       float64 `mapstructure:"click_size_min"`
	ClickSizeMax       float64 `mapstructure:"click_size_max"`
	OpacityMin         float64 `mapstructure:"opacity_min"`
	OpacityMax         float64 `mapstructure:"opacity_max"`
	DecayMin           float64 `mapstructure:"decay_min"`
	DecayMax           float64 `mapstructure:"decay_max"`
	AttractionRadius   float64 `mapstructure:"attraction_radius"`
	AttractionStrength float64 `mapstructure:"attraction_strength"`
	Drag               float64 `mapstructure:"drag"`
	HueMin             float64 `mapstructure:"hue_min"`
	HueMax             float64 `mapstructure:"hue_max"`
	Saturation         float64 `mapstructure:"saturation"`
	Lightness          float64 `mapstructure:"lightness"`
	GlowFactor         float64 `mapstructure:"glow_factor"`
	GlowOpacity        float64 `mapstructure:"glow_opacity"`
}

// OrbitConfig - параметры орбит навыков.
type OrbitConfig struct {
	Mode            string  `mapstructure:"mode"` // "3d", "2d" или "grid"
	RotationEnabled bool    `mapstructure:"rotation_enabled"`
	RotationSpeed   float64 `mapstructure:"rotation_speed"`
	FloatAmplitude  float64 `mapstructure:"float_amplitude"`
	FloatSpeed      float64 `mapstructure:"float_speed"`
	SpinSpeedX      float64 `mapstructure:"spin_speed_x"`
	SpinSpeedY      float64 `mapstructure:"spin_speed_y"`
	PulseSpeed      float64 `mapstructure:"pulse_speed"`
	HoverScale      float64 `mapstructure:"hover_scale"`
	SelectedScale   float64 `mapstructure:"selected_scale"`
	ScaleLerp       float64 `mapstructure:"scale_lerp"`
	OrbRadius       float64 `mapstructure:"orb_radius"`
	ScreenScale     float64 `mapstructure:"screen_scale"`
	GlowBase        float64 `mapstructure:"glow_base"`
	GlowSelected    float64 `mapstructure:"glow_selected"`
	GlowHover       float64 `mapstructure:"glow_hover"`
}

// NetworkConfig - параметры фоновой сети узлов.
type NetworkConfig struct {
	Enabled         bool    `mapstructure:"enabled"`
	Nodes           int     `mapstructure:"nodes"`
	PointerRadius   float64 `mapstructure:"pointer_radius"`
	PointerPull     float64 `mapstructure:"pointer_pull"`
	ReturnRate      float64 `mapstructure:"return_rate"`
	DriftSpeed      float64 `mapstructure:"drift_speed"`
	LinkDistance    float64 `mapstructure:"link_distance"`
	LinkOpacity     float64 `mapstructure:"link_opacity"`
	SpringStiffness float64 `mapstructure:"spring_stiffness"`
	SpringDamping   float64 `mapstructure:"spring_damping"`
}

// AudioConfig - параметры звука.
type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	SampleRate int     `mapstructure:"sample_rate"`
	Volume     float64 `mapstructure:"volume"` // общая громкость, 0..1
}

// CatalogConfig - откуда брать каталог навыков. Пустой путь - встроенный каталог.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// EnvPrefix - префикс переменных окружения, например PORTFOLIO_WINDOW_BACKEND.
const EnvPrefix = "PORTFOLIO"

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", ScreenWidth)
	v.SetDefault("window.height", ScreenHeight)
	v.SetDefault("window.title", "Portfolio")
	v.SetDefault("window.backend", "ebiten")
	v.SetDefault("window.target_fps", TargetFPS)
	v.SetDefault("window.max_delta_time", MaxDeltaTime)
	v.SetDefault("window.seed", 0)

	v.SetDefault("particle.enabled", true)
	v.SetDefault("particle.per_move", ParticlesPerMove)
	v.SetDefault("particle.per_click", ParticlesPerClick)
	v.SetDefault("particle.max", MaxParticles)
	v.SetDefault("particle.move_jitter", MoveJitter)
	v.SetDefault("particle.move_speed", MoveSpeed)
	v.SetDefault("particle.click_speed", ClickSpeed)
	v.SetDefault("particle.move_size_min", MoveSizeMin)
	v.SetDefault("particle.move_size_max", MoveSizeMax)
	v.SetDefault("particle.click_size_min", ClickSizeMin)
	v.SetDefault("particle.click_size_max", ClickSizeMax)
	v.SetDefault("particle.opacity_min", OpacityMin)
	v.SetDefault("particle.opacity_max", OpacityMax)
	v.SetDefault("particle.decay_min", DecayMin)
	v.SetDefault("particle.decay_max", DecayMax)
	v.SetDefault("particle.attraction_radius", AttractionRadius)
	v.SetDefault("particle.attraction_strength", AttractionStrength)
	v.SetDefault("particle.drag", ParticleDrag)
	v.SetDefault("particle.hue_min", ParticleHueMin)
	v.SetDefault("particle.hue_max", ParticleHueMax)
	v.SetDefault("particle.saturation", ParticleSaturation)
	v.SetDefault("particle.lightness", ParticleLightness)
	v.SetDefault("particle.glow_factor", ParticleGlowFactor)
	v.SetDefault("particle.glow_opacity", ParticleGlowOpacity)

	v.SetDefault("orbit.mode", "3d")
	v.SetDefault("orbit.rotation_enabled", true)
	v.SetDefault("orbit.rotation_speed", OrbitRotationSpeed)
	v.SetDefault("orbit.float_amplitude", OrbitFloatAmp)
	v.SetDefault("orbit.float_speed", OrbitFloatSpeed)
	v.SetDefault("orbit.spin_speed_x", OrbitSpinSpeedX)
	v.SetDefault("orbit.spin_speed_y", OrbitSpinSpeedY)
	v.SetDefault("orbit.pulse_speed", OrbitPulseSpeed)
	v.SetDefault("orbit.hover_scale", OrbitHoverScale)
	v.SetDefault("orbit.selected_scale", OrbitSelectScale)
	v.SetDefault("orbit.scale_lerp", OrbitScaleLerp)
	v.SetDefault("orbit.orb_radius", OrbitOrbRadius)
	v.SetDefault("orbit.screen_scale", OrbitScreenScale)
	v.SetDefault("orbit.glow_base", OrbitGlowBase)
	v.SetDefault("orbit.glow_selected", OrbitGlowSelected)
	v.SetDefault("orbit.glow_hover", OrbitGlowHover)

	v.SetDefault("network.enabled", true)
	v.SetDefault("network.nodes", NetworkNodeCount)
	v.SetDefault("network.pointer_radius", NetworkPointerRadius)
	v.SetDefault("network.pointer_pull", NetworkPointerPull)
	v.SetDefault("network.return_rate", NetworkReturnRate)
	v.SetDefault("network.drift_speed", NetworkDriftSpeed)
	v.SetDefault("network.link_distance", NetworkLinkDistance)
	v.SetDefault("network.link_opacity", NetworkLinkOpacity)
	v.SetDefault("network.spring_stiffness", NetworkSpringStiffness)
	v.SetDefault("network.spring_damping", NetworkSpringDamping)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sample_rate", 44100)
	v.SetDefault("audio.volume", 1.0)

	v.SetDefault("catalog.path", "")
}

// Defaults возвращает настройки без файла и окружения.
func Defaults() Settings {
	v := viper.New()
	setDefaults(v)
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		// Значения по умолчанию задаются в коде, ошибка здесь - баг.
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return s
}

// Load читает .env (если есть), файл настроек (если путь задан) и переменные
// окружения с префиксом PORTFOLIO_. Отсутствующий .env не считается ошибкой,
// отсутствующий явно указанный файл - считается.
func Load(path string) (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: .env ignored: %v", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		log.Printf("config: loaded %s", v.ConfigFileUsed())
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate проверяет значения, которые ломают движки.
func (s Settings) Validate() error {
	switch s.Window.Backend {
	case "ebiten", "raylib":
	default:
		return fmt.Errorf("config: unknown backend %q", s.Window.Backend)
	}
	switch s.Orbit.Mode {
	case "3d", "2d", "grid":
	default:
		return fmt.Errorf("config: unknown orbit mode %q", s.Orbit.Mode)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Particle.Max < 0 || s.Particle.PerMove < 0 || s.Particle.PerClick < 0 {
		return errors.New("config: particle counts must not be negative")
	}
	if s.Particle.DecayMin <= 0 || s.Particle.DecayMax < s.Particle.DecayMin {
		return fmt.Errorf("config: invalid decay range [%v, %v)", s.Particle.DecayMin, s.Particle.DecayMax)
	}
	if s.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: invalid audio sample rate %d", s.Audio.SampleRate)
	}
	if s.Window.MaxDeltaTime <= 0 {
		return errors.New("config: max_delta_time must be positive")
	}
	return nil
}
