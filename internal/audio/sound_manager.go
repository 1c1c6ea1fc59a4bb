package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-portfolio-fx/internal/config"
)

const bufferDuration = 100 * time.Millisecond

// Output - устройство вывода. По умолчанию это beep/speaker,
// в тестах подменяется записью потоков.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }

func (speakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}

// SoundManager проигрывает короткие тоны интерфейса.
// До Init и после Dispose все Play* ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	out         Output
	sampleRate  beep.SampleRate
	volume      float64
	enabled     bool
	initialized bool
}

// NewSoundManager создаёт менеджер поверх динамика.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return NewSoundManagerWithOutput(cfg, speakerOutput{})
}

// NewSoundManagerWithOutput создаёт менеджер поверх заданного вывода.
func NewSoundManagerWithOutput(cfg config.AudioConfig, out Output) *SoundManager {
	sr := cfg.SampleRate
	if sr <= 0 {
		sr = 44100
	}
	return &SoundManager{
		out:        out,
		sampleRate: beep.SampleRate(sr),
		volume:     cfg.Volume,
		enabled:    cfg.Enabled,
	}
}

// Init открывает устройство вывода. Вызывается по первому действию пользователя;
// повторный вызов ничего не делает. При ошибке менеджер остаётся немым.
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := sm.out.Init(sm.sampleRate, sm.sampleRate.N(bufferDuration)); err != nil {
		sm.enabled = false
		return fmt.Errorf("audio: failed to init output: %w", err)
	}
	sm.initialized = true
	log.Printf("audio: initialized at %d Hz, enabled=%v", sm.sampleRate, sm.enabled)
	return nil
}

// Dispose останавливает звуки и закрывает вывод.
func (sm *SoundManager) Dispose() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.out.Close()
	sm.initialized = false
	log.Println("audio: disposed")
}

// Initialized сообщает, открыт ли вывод.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) play(name string, notes []note) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}
	s, err := chord(sm.sampleRate, notes)
	if err != nil {
		log.Printf("audio: %s: %v", name, err)
		return
	}
	sm.out.Play(withVolume(s, sm.volume))
}

func (sm *SoundManager) PlayHover()        { sm.play("hover", hoverNotes) }
func (sm *SoundManager) PlayClick()        { sm.play("click", clickNotes) }
func (sm *SoundManager) PlaySuccess()      { sm.play("success", successNotes) }
func (sm *SoundManager) PlayNotification() { sm.play("notification", notificationNotes) }
func (sm *SoundManager) PlayScroll()       { sm.play("scroll", scrollNotes) }

func (sm *SoundManager) Enable() {
	sm.mu.Lock()
	sm.enabled = true
	sm.mu.Unlock()
}

func (sm *SoundManager) Disable() {
	sm.mu.Lock()
	sm.enabled = false
	sm.mu.Unlock()
}

// Toggle переключает звук и возвращает новое состояние.
func (sm *SoundManager) Toggle() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = !sm.enabled
	return sm.enabled
}

func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}
