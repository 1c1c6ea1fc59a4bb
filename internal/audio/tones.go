package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	toneAttack = 10 * time.Millisecond
	toneFloor  = 0.001 // уровень, до которого гаснет тон к концу
)

// note - один тон в составе эффекта.
type note struct {
	freq     float64
	duration time.Duration
	volume   float64
	delay    time.Duration
}

var (
	hoverNotes = []note{{freq: 800, duration: 100 * time.Millisecond, volume: 0.05}}
	clickNotes = []note{
		{freq: 1000, duration: 150 * time.Millisecond, volume: 0.08},
		{freq: 1200, duration: 100 * time.Millisecond, volume: 0.04, delay: 50 * time.Millisecond},
	}
	// C5, E5, G5
	successNotes = []note{
		{freq: 523, duration: 200 * time.Millisecond, volume: 0.06},
		{freq: 659, duration: 200 * time.Millisecond, volume: 0.06, delay: 100 * time.Millisecond},
		{freq: 784, duration: 300 * time.Millisecond, volume: 0.06, delay: 200 * time.Millisecond},
	}
	notificationNotes = []note{
		{freq: 880, duration: 150 * time.Millisecond, volume: 0.07},
		{freq: 660, duration: 150 * time.Millisecond, volume: 0.05, delay: 200 * time.Millisecond},
	}
	scrollNotes = []note{{freq: 400, duration: 50 * time.Millisecond, volume: 0.03}}
)

// envelope - быстрая атака и экспоненциальное затухание до toneFloor.
type envelope struct {
	streamer beep.Streamer
	peak     float64
	attack   int
	total    int
	pos      int
}

func newEnvelope(s beep.Streamer, peak float64, attack, total int) *envelope {
	if attack > total {
		attack = total
	}
	return &envelope{streamer: s, peak: peak, attack: attack, total: total}
}

func (e *envelope) gain() float64 {
	if e.pos < e.attack {
		return e.peak * float64(e.pos) / float64(e.attack)
	}
	release := e.total - e.attack
	if release <= 0 {
		return e.peak
	}
	t := float64(e.pos-e.attack) / float64(release)
	return e.peak * math.Pow(toneFloor/e.peak, t)
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tone собирает один синусоидальный тон с огибающей.
func tone(sr beep.SampleRate, n note) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, n.freq)
	if err != nil {
		return nil, err
	}
	total := sr.N(n.duration)
	shaped := newEnvelope(beep.Take(total, sine), n.volume, sr.N(toneAttack), total)
	if n.delay <= 0 {
		return shaped, nil
	}
	return beep.Seq(beep.Silence(sr.N(n.delay)), shaped), nil
}

// chord смешивает тоны эффекта в один поток.
func chord(sr beep.SampleRate, notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := tone(sr, n)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return beep.Mix(parts...), nil
}

// withVolume применяет общую громкость. Ноль глушит поток, log2(0) не считаем.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol >= 1 {
		return s
	}
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
