package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-arena/internal/config"
	"github.com/vovakirdan/dodge-arena/internal/core"
	"github.com/vovakirdan/dodge-arena/internal/game"
	"github.com/vovakirdan/dodge-arena/internal/storage"
)

type recordingCues struct{ events []game.Event }

func (r *recordingCues) HandleEvents(events []game.Event) {
	r.events = append(r.events, events...)
}

func newTestModel(t *testing.T, store *storage.Store, cues game.EventHandler) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Enemy.MovingProbability = 0
	return NewModel(Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Store:   store,
		Cues:    cues,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey('w'), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey('r'), core.ActionReset},
		{runeKey('p'), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKey(tc.msg); got != tc.expected {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestModelMovesPlayerOnHeldKey(t *testing.T) {
	m := newTestModel(t, nil, nil)
	now := time.Now()

	m, _ = update(t, m, TickMsg(now))
	start := m.session.Player()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, TickMsg(now.Add(16*time.Millisecond)))

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.session.Player().X; got != start.X+5 {
		t.Errorf("player x = %v, expected %v", got, start.X+5)
	}
}

func TestModelResetAndPause(t *testing.T) {
	m := newTestModel(t, nil, nil)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Now()))
	if !m.State().Paused {
		t.Error("p should pause the session")
	}

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg(time.Now()))
	st := m.State()
	if st.Paused || st.Level != 1 || st.Phase != game.PhasePlaying {
		t.Errorf("state after reset = %+v", st)
	}
}

func TestModelScoreboardRoundTrip(t *testing.T) {
	m := newTestModel(t, nil, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "RUN HISTORY") {
		t.Error("scoreboard view should be shown")
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("ticks should keep flowing while the scoreboard is open")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("esc should close the scoreboard")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil, nil)
	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelRecordsFinishedRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cues := &recordingCues{}
	m := newTestModel(t, store, cues)

	m.handleEvents([]game.Event{
		{Kind: game.EventCleared, Level: 2, LevelsCleared: 2},
		{Kind: game.EventGameOver, Level: 3, LevelsCleared: 2, HighScore: 2},
	})

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one run, got %d", len(runs))
	}
	r := runs[0]
	if r.LevelsCleared != 2 || r.LevelReached != 3 || r.Seed != 1 || r.Difficulty != "normal" {
		t.Errorf("run = %+v", r)
	}
	if len(cues.events) != 2 {
		t.Errorf("cues received %d events, expected 2", len(cues.events))
	}
}
