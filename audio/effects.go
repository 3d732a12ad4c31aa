package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Chime timing
const (
	noteAttack     = 5 * time.Millisecond
	firstNote      = 90 * time.Millisecond
	firstRelease   = 60 * time.Millisecond
	secondNote     = 700 * time.Millisecond
	secondRelease  = 620 * time.Millisecond
	overtoneLength = 250 * time.Millisecond
)

// Chime pitches, a rising fourth
const (
	pitchLow  = 659.25  // E5
	pitchHigh = 987.77  // B5
	overtone  = 1975.53 // B6
)

// envelope applies a linear attack and release to a fixed-length stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s to duration with the given attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if rest := e.total - e.position; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly, treating zero as silence
// effects.Volume is logarithmic and log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped sine note
func tone(rate beep.SampleRate, freq float64, duration, release time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return NewEnvelope(sine, duration, noteAttack, release, rate), nil
}

// CreateChime builds the completion chime: a short low note, then a ringing high note with an overtone
func CreateChime(cfg *Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	low, err := tone(rate, pitchLow, firstNote, firstRelease)
	if err != nil {
		return nil, err
	}
	high, err := tone(rate, pitchHigh, secondNote, secondRelease)
	if err != nil {
		return nil, err
	}
	ring, err := tone(rate, overtone, overtoneLength, overtoneLength-noteAttack)
	if err != nil {
		return nil, err
	}

	second := beep.Mix(newVolume(high, 0.75), newVolume(ring, 0.25))
	return newVolume(beep.Seq(low, second), cfg.Volume), nil
}
