package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// tone is a fixed-length oscillator.
type tone struct {
	freq   float64
	phase  float64
	wave   Wave
	pos    int
	length int
	rate   beep.SampleRate
}

// Tone returns a streamer producing freq Hz for d.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, wave: wave, length: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// decay fades a streamer linearly to silence over length samples after a
// short attack ramp.
type decay struct {
	s      beep.Streamer
	pos    int
	attack int
	length int
}

// Decay shapes s with an attack ramp and a linear fade that reaches zero at d.
func Decay(s beep.Streamer, d, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{s: s, attack: rate.N(attack), length: rate.N(d)}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := range n {
		if e.pos >= e.length {
			return i, i > 0
		}

		vol := float64(e.length-e.pos) / float64(e.length)
		if e.pos < e.attack {
			vol = math.Min(vol, float64(e.pos)/float64(e.attack))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *decay) Err() error { return e.s.Err() }

// withVolume scales s by a linear gain. Zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// note is one step of a jingle.
type note struct {
	freq float64
	dur  time.Duration
}

// jingle plays notes one after another, each with its own fade.
func jingle(notes []note, wave Wave, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = Decay(Tone(n.freq, n.dur, wave, rate), n.dur, 5*time.Millisecond, rate)
	}
	return beep.Seq(parts...)
}

var (
	gameOverNotes = []note{{392.00, 160 * time.Millisecond}, {311.13, 160 * time.Millisecond}, {196.00, 400 * time.Millisecond}}
	clearedNotes  = []note{{523.25, 90 * time.Millisecond}, {659.25, 90 * time.Millisecond}, {783.99, 180 * time.Millisecond}}
)

// gameOverSound is a falling square-wave phrase.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	return withVolume(jingle(gameOverNotes, WaveSquare, rate), 0.3)
}

// clearedSound is a rising major arpeggio.
func clearedSound(rate beep.SampleRate) beep.Streamer {
	return jingle(clearedNotes, WaveSine, rate)
}

// recordSound is a bell: a fundamental with a quieter octave.
func recordSound(rate beep.SampleRate) beep.Streamer {
	const d = 600 * time.Millisecond
	return beep.Mix(
		withVolume(Decay(Tone(1046.50, d, WaveSine, rate), d, 2*time.Millisecond, rate), 0.7),
		withVolume(Decay(Tone(2093.00, d, WaveSine, rate), d/2, 2*time.Millisecond, rate), 0.3),
	)
}
