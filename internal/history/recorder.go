// Package history turns finished game sessions into run records.
package history

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-arena/internal/game"
	"github.com/vovakirdan/dodge-arena/internal/storage"
)

// RunSaver persists a finished run. *storage.Store implements it.
type RunSaver interface {
	SaveRun(run storage.RunRecord) (int64, error)
}

// Recorder watches session events and saves one record per game over.
// A run starts when level 1 is built, either at session start or on reset.
type Recorder struct {
	saver      RunSaver
	seed       int64
	difficulty string
	logger     *log.Logger
	start      time.Time

	// Now is the clock used for run durations.
	Now func() time.Time
}

// NewRecorder creates a recorder. A nil saver only logs finished runs.
func NewRecorder(saver RunSaver, seed int64, difficulty string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		saver:      saver,
		seed:       seed,
		difficulty: difficulty,
		logger:     logger,
		Now:        time.Now,
	}
}

// HandleEvents implements game.EventHandler.
func (r *Recorder) HandleEvents(events []game.Event) {
	for _, ev := range events {
		switch {
		case ev.Kind == game.EventLevelStarted && ev.Level == 1:
			r.start = r.Now()
		case ev.Kind == game.EventGameOver:
			r.finish(ev)
		}
	}
}

func (r *Recorder) finish(ev game.Event) {
	var elapsed time.Duration
	if !r.start.IsZero() {
		elapsed = r.Now().Sub(r.start)
	}
	r.logger.Info("run finished",
		"level", ev.Level,
		"cleared", ev.LevelsCleared,
		"best", ev.HighScore,
		"duration", elapsed.Round(time.Second),
	)

	if r.saver == nil {
		return
	}
	_, err := r.saver.SaveRun(storage.RunRecord{
		LevelsCleared: ev.LevelsCleared,
		LevelReached:  ev.Level,
		Seed:          r.seed,
		Difficulty:    r.difficulty,
		Duration:      elapsed,
	})
	if err != nil {
		r.logger.Warn("run not saved", "error", err)
	}
}
