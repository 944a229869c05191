package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/dodge-arena/internal/config"
	"github.com/vovakirdan/dodge-arena/internal/storage"
)

func TestSurvey(t *testing.T) {
	cfg := config.Default()
	results := survey(cfg, 1, 40, 4)

	if len(results) != 4 {
		t.Fatalf("expected 4 levels, got %d", len(results))
	}
	for i, s := range results {
		if s.Level != i+1 || s.Layouts != 40 {
			t.Errorf("level %d: %+v", i+1, s)
		}
		if s.Moving > s.Layouts*s.Level {
			t.Errorf("level %d: %d moving enemies in %d layouts", s.Level, s.Moving, s.Layouts)
		}
		if s.Degraded == 0 && s.MinGoalDist < cfg.Goal.MinStartDistance {
			t.Errorf("level %d: goal at %.1f without degraded placements", s.Level, s.MinGoalDist)
		}
		if s.AvgGoalDist() < s.MinGoalDist {
			t.Errorf("level %d: average %.1f below minimum %.1f", s.Level, s.AvgGoalDist(), s.MinGoalDist)
		}
	}
}

func TestSurveyIsDeterministic(t *testing.T) {
	cfg := config.Default()
	a := survey(cfg, 7, 20, 3)
	b := survey(cfg, 7, 20, 3)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("level %d differs: %+v vs %+v", i+1, a[i], b[i])
		}
	}
}

func TestRenderScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "dodge.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	const key = "dodge.highscore"
	out, err := renderScores(store, key, 10, false)
	if err != nil {
		t.Fatalf("renderScores() failed: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet") {
		t.Errorf("empty history output:\n%s", out)
	}

	for _, cleared := range []int{2, 5} {
		if _, err := store.SaveRun(storage.RunRecord{LevelsCleared: cleared, LevelReached: cleared + 1, Seed: 99, Duration: time.Minute}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if err := store.Set(key, "5"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	out, err = renderScores(store, key, 10, false)
	if err != nil {
		t.Fatalf("renderScores() failed: %v", err)
	}
	for _, want := range []string{"Best Runs", "High score: 5", "2 runs", "99"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if err := resetScores(store, key); err != nil {
		t.Fatalf("resetScores() failed: %v", err)
	}
	if _, ok, _ := store.Get(key); ok {
		t.Error("high score should be deleted")
	}
	if runs, _ := store.TopRuns(10); len(runs) != 0 {
		t.Errorf("expected no runs after reset, got %d", len(runs))
	}
}
