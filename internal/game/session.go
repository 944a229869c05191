package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-arena/internal/config"
	"github.com/vovakirdan/dodge-arena/internal/core"
)

// Phase is the lifecycle stage of the current level.
type Phase int

const (
	// PhasePlaying accepts input and runs collisions.
	PhasePlaying Phase = iota
	// PhaseGameOver is terminal until Reset.
	PhaseGameOver
	// PhaseCleared waits before announcing the clear.
	PhaseCleared
	// PhaseAdvancing shows the clear message and then builds the next level.
	PhaseAdvancing
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	case PhaseCleared:
		return "cleared"
	case PhaseAdvancing:
		return "advancing"
	default:
		return "unknown"
	}
}

// GameState is the externally visible state after a step.
type GameState struct {
	IsGameOver bool
	IsCleared  bool // True from the clear until the next level starts
	Level      int
	Phase      Phase
	HighScore  int
	Paused     bool
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventLevelStarted EventKind = iota
	EventGameOver
	EventCleared
	EventAdvanced
	EventNewRecord
)

func (k EventKind) String() string {
	switch k {
	case EventLevelStarted:
		return "level-started"
	case EventGameOver:
		return "game-over"
	case EventCleared:
		return "cleared"
	case EventAdvanced:
		return "advanced"
	case EventNewRecord:
		return "new-record"
	default:
		return "unknown"
	}
}

// Event is raised by the session for frontends (sound, run history).
type Event struct {
	Kind          EventKind
	Level         int // Level the event refers to
	LevelsCleared int // Levels fully cleared in this run so far
	HighScore     int // High score after the event
}

// StepResult is returned by Session.Step.
type StepResult struct {
	State  GameState
	Events []Event
}

// Option configures a Session.
type Option func(*Session)

// WithDisplay sets the display the session reports to.
func WithDisplay(d Display) Option {
	return func(s *Session) {
		if d != nil {
			s.display = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHighScores attaches a shared high score tracker.
func WithHighScores(h *HighScores) Option {
	return func(s *Session) {
		if h != nil {
			s.scores = h
		}
	}
}

// Session owns one game: the level, its entities and the clear/advance
// state machine. It is not safe for concurrent use; a single frame loop
// drives it through Step.
type Session struct {
	cfg     config.Config
	arena   Arena
	seed    int64
	rng     *rand.Rand
	builder *Builder

	display Display
	logger  *log.Logger
	scores  *HighScores

	level   int
	phase   Phase
	paused  bool
	player  core.Vec
	enemies []*Enemy
	goal    core.Vec
	built   Level

	// Transition clock, only advanced while Cleared or Advancing.
	elapsed   time.Duration
	pendingAt time.Duration
	newRecord bool

	status     string
	statusKind StatusKind
	highScore  int
	events     []Event
}

// NewSession creates a session and builds level 1. The same seed always
// produces the same sequence of levels.
func NewSession(cfg config.Config, seed int64, opts ...Option) *Session {
	rng := rand.New(rand.NewSource(seed))
	arena := NewArena(cfg)

	s := &Session{
		cfg:     cfg,
		arena:   arena,
		seed:    seed,
		rng:     rng,
		builder: NewBuilder(cfg, arena, rng),
		display: nopDisplay{},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.scores == nil {
		s.scores = NewHighScores(nil, cfg.Storage.HighScoreKey, s.logger)
	}

	s.highScore = s.scores.Load()
	s.display.SetHighScore(s.highScore)
	s.Reset()
	return s
}

// Reset rebuilds level 1 and cancels any pending transition.
func (s *Session) Reset() {
	s.level = 1
	s.paused = false
	s.startLevel()
}

// Step advances the session by one tick. Input is ignored outside the
// Playing phase; dt only drives the clear/advance pacing. While paused
// nothing moves and the transition clock stands still.
func (s *Session) Step(in core.Directions, dt time.Duration) StepResult {
	if !s.paused {
		switch s.phase {
		case PhasePlaying:
			s.tick(in)
		case PhaseCleared, PhaseAdvancing:
			s.elapsed += dt
			s.runTransitions()
		}
	}

	res := StepResult{State: s.State()}
	if len(s.events) > 0 {
		res.Events = s.events
		s.events = nil
	}
	return res
}

// TogglePause pauses or resumes the session. A finished game cannot be
// paused. It returns the new paused flag.
func (s *Session) TogglePause() bool {
	if s.phase == PhaseGameOver {
		return false
	}
	s.paused = !s.paused
	if s.paused {
		s.display.SetStatus("Paused - press p to resume", StatusPaused)
	} else {
		s.display.SetStatus(s.status, s.statusKind)
	}
	return s.paused
}

// State returns the current game state.
func (s *Session) State() GameState {
	return GameState{
		IsGameOver: s.phase == PhaseGameOver,
		IsCleared:  s.phase == PhaseCleared || s.phase == PhaseAdvancing,
		Level:      s.level,
		Phase:      s.phase,
		HighScore:  s.highScore,
		Paused:     s.paused,
	}
}

// Seed returns the seed the session was created with.
func (s *Session) Seed() int64 { return s.seed }

// Arena returns the playfield.
func (s *Session) Arena() Arena { return s.arena }

// Level returns the layout the current level was built from.
func (s *Session) Level() Level { return s.built }

// Player returns the player's top-left corner.
func (s *Session) Player() core.Vec { return s.player }

// startLevel builds s.level and resets phase, clock and status.
func (s *Session) startLevel() {
	lv := s.builder.Build(s.level)
	if lv.Degraded > 0 {
		s.logger.Debug("placement constraints not met", "level", s.level, "degraded", lv.Degraded)
	}

	s.built = lv
	s.player = lv.Player
	s.enemies = lv.Enemies
	s.goal = lv.Goal
	s.phase = PhasePlaying
	s.elapsed = 0
	s.pendingAt = 0
	s.newRecord = false

	s.display.ClearEnemies()
	s.display.SetPosition(playerID, s.player.X, s.player.Y)
	for i, e := range s.enemies {
		s.display.SetPosition(enemyID(i, e), e.Pos.X, e.Pos.Y)
	}
	s.display.SetPosition(goalID, s.goal.X, s.goal.Y)
	s.display.SetLevel(s.level)
	s.setStatus(fmt.Sprintf("Level %d - use the arrow keys to move", s.level), StatusPlaying)

	s.emit(EventLevelStarted, s.level-1)
}

// tick runs one Playing frame: move, advance enemies, collide.
func (s *Session) tick(in core.Directions) {
	size := s.cfg.Player.Size
	d := in.Delta()
	next := core.Vec{
		X: s.player.X + d.X*s.cfg.Player.Speed,
		Y: s.player.Y + d.Y*s.cfg.Player.Speed,
	}
	s.player = s.arena.ClampSquare(next, size)
	s.display.SetPosition(playerID, s.player.X, s.player.Y)

	AdvanceEnemies(s.enemies, s.arena)
	for i, e := range s.enemies {
		if e.Moving {
			s.display.SetPosition(enemyID(i, e), e.Pos.X, e.Pos.Y)
		}
	}

	pr := core.RectAt(s.player.X, s.player.Y, size)
	for _, e := range s.enemies {
		if pr.Overlaps(e.Rect) {
			s.gameOver()
			return
		}
	}

	if pr.Overlaps(core.RectAt(s.goal.X, s.goal.Y, s.cfg.Goal.Size)) {
		s.clear()
	}
}

// gameOver ends the run. Only levels before the current one count.
func (s *Session) gameOver() {
	s.phase = PhaseGameOver
	cleared := s.level - 1
	improved := s.offer(cleared)

	text := "GAME OVER"
	if improved && cleared > 0 {
		text += fmt.Sprintf(" - new high score! %d levels cleared", cleared)
	}
	s.setStatus(text, StatusGameOver)
	s.emit(EventGameOver, cleared)
}

// clear starts the transition to the next level. The high-score candidate is
// s.level, not s.level-1: the level just finished counts as cleared. Game over
// offers s.level-1 because the level in progress was not.
func (s *Session) clear() {
	s.phase = PhaseCleared
	s.elapsed = 0
	s.pendingAt = s.cfg.Transition.MessageDelay
	s.newRecord = s.offer(s.level)
	s.emit(EventCleared, s.level)
}

// runTransitions fires every deadline the clock has passed.
func (s *Session) runTransitions() {
	for {
		switch {
		case s.phase == PhaseCleared && s.elapsed >= s.pendingAt:
			s.phase = PhaseAdvancing
			s.pendingAt += s.cfg.Transition.AdvanceDelay

			text := fmt.Sprintf("Level %d cleared!", s.level)
			if s.newRecord {
				text += " New high score!"
			}
			s.setStatus(text+" Next level...", StatusCleared)

		case s.phase == PhaseAdvancing && s.elapsed >= s.pendingAt:
			s.level++
			s.startLevel()
			s.emit(EventAdvanced, s.level-1)
			return

		default:
			return
		}
	}
}

// offer submits a cleared-level count to the high score tracker.
func (s *Session) offer(cleared int) bool {
	improved, err := s.scores.Offer(cleared)
	if err != nil {
		s.logger.Warn("high score not persisted", "score", cleared, "error", err)
	}
	if improved {
		s.highScore = cleared
		s.display.SetHighScore(cleared)
		s.emit(EventNewRecord, cleared)
	}
	return improved
}

func (s *Session) setStatus(text string, kind StatusKind) {
	s.status = text
	s.statusKind = kind
	s.display.SetStatus(text, kind)
}

func (s *Session) emit(kind EventKind, cleared int) {
	s.events = append(s.events, Event{
		Kind:          kind,
		Level:         s.level,
		LevelsCleared: cleared,
		HighScore:     s.highScore,
	})
}

func enemyID(i int, e *Enemy) EntityID {
	if e.Moving {
		return EntityID{Kind: EntityMovingEnemy, Index: i}
	}
	return EntityID{Kind: EntityEnemy, Index: i}
}
