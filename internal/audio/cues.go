// Package audio plays short procedural sound cues for game events.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dodge-arena/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Cues turns session events into sounds. The speaker is opened once by
// Init; until then every cue is dropped.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	logger      *log.Logger
	initialized bool
}

// NewCues creates cues at the given master volume in [0, 1].
func NewCues(volume float64, logger *log.Logger) *Cues {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Cues{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
		logger: logger,
	}
}

// Init opens the audio device.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences pending cues.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// HandleEvents implements game.EventHandler. A new record replaces the
// plain clear or game over cue raised in the same tick.
func (c *Cues) HandleEvents(events []game.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	if s := soundFor(events, sampleRate); s != nil {
		speaker.Lock()
		c.mixer.Add(withVolume(s, c.volume))
		speaker.Unlock()
	}
}

// soundFor picks the cue for one tick worth of events, or nil.
func soundFor(events []game.Event, rate beep.SampleRate) beep.Streamer {
	var best game.EventKind = -1
	for _, ev := range events {
		switch ev.Kind {
		case game.EventNewRecord:
			best = game.EventNewRecord
		case game.EventGameOver, game.EventCleared:
			if best != game.EventNewRecord {
				best = ev.Kind
			}
		}
	}

	switch best {
	case game.EventNewRecord:
		return recordSound(rate)
	case game.EventGameOver:
		return gameOverSound(rate)
	case game.EventCleared:
		return clearedSound(rate)
	}
	return nil
}
