package history

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/dodge-arena/internal/game"
	"github.com/vovakirdan/dodge-arena/internal/storage"
)

type fakeSaver struct {
	runs []storage.RunRecord
	err  error
}

func (f *fakeSaver) SaveRun(run storage.RunRecord) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.runs = append(f.runs, run)
	return int64(len(f.runs)), nil
}

func TestRecorderSavesGameOver(t *testing.T) {
	saver := &fakeSaver{}
	r := NewRecorder(saver, 42, "hard", nil)

	clock := time.Unix(1_700_000_000, 0)
	r.Now = func() time.Time { return clock }

	r.HandleEvents([]game.Event{{Kind: game.EventLevelStarted, Level: 1}})
	clock = clock.Add(30 * time.Second)
	r.HandleEvents([]game.Event{
		{Kind: game.EventCleared, Level: 1, LevelsCleared: 1},
		{Kind: game.EventNewRecord, Level: 1, LevelsCleared: 1},
	})
	r.HandleEvents([]game.Event{{Kind: game.EventLevelStarted, Level: 2}})
	clock = clock.Add(15 * time.Second)
	r.HandleEvents([]game.Event{{Kind: game.EventGameOver, Level: 2, LevelsCleared: 1, HighScore: 1}})

	if len(saver.runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(saver.runs))
	}
	want := storage.RunRecord{LevelsCleared: 1, LevelReached: 2, Seed: 42, Difficulty: "hard", Duration: 45 * time.Second}
	if saver.runs[0] != want {
		t.Errorf("run = %+v, expected %+v", saver.runs[0], want)
	}
}

func TestRecorderRestartsOnLevelOne(t *testing.T) {
	saver := &fakeSaver{}
	r := NewRecorder(saver, 1, "normal", nil)

	clock := time.Unix(1_700_000_000, 0)
	r.Now = func() time.Time { return clock }

	r.HandleEvents([]game.Event{{Kind: game.EventLevelStarted, Level: 1}})
	clock = clock.Add(time.Minute)
	// Reset mid-run: the abandoned run is not recorded.
	r.HandleEvents([]game.Event{{Kind: game.EventLevelStarted, Level: 1}})
	clock = clock.Add(5 * time.Second)
	r.HandleEvents([]game.Event{{Kind: game.EventGameOver, Level: 1}})

	if len(saver.runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(saver.runs))
	}
	if saver.runs[0].Duration != 5*time.Second {
		t.Errorf("duration = %v, expected 5s", saver.runs[0].Duration)
	}
}

func TestRecorderWithoutSaver(t *testing.T) {
	r := NewRecorder(nil, 1, "normal", nil)
	// Must not panic.
	r.HandleEvents([]game.Event{{Kind: game.EventGameOver, Level: 3, LevelsCleared: 2}})
}

func TestRecorderSaveFailureIsNotFatal(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	r := NewRecorder(saver, 1, "normal", nil)
	r.HandleEvents([]game.Event{{Kind: game.EventGameOver, Level: 2, LevelsCleared: 1}})

	if len(saver.runs) != 0 {
		t.Error("failed save should not be recorded")
	}
}
