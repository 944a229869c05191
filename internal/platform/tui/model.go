package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-arena/internal/config"
	"github.com/vovakirdan/dodge-arena/internal/core"
	"github.com/vovakirdan/dodge-arena/internal/game"
	"github.com/vovakirdan/dodge-arena/internal/history"
	"github.com/vovakirdan/dodge-arena/internal/storage"
)

// Options configures a terminal game.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig
	Difficulty config.DifficultyPreset
	Store      *storage.Store    // Run history; nil disables it
	HighScores *game.HighScores  // Shared tracker; nil keeps scores in memory
	Cues       game.EventHandler // Optional sound cues
	Logger     *log.Logger
}

// Model is the Bubble Tea model for the dodge game.
type Model struct {
	loop    *game.Loop
	session *game.Session
	scene   *game.Scene
	latches *Latches
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	store   *storage.Store
	events  game.Handlers
	logger  *log.Logger
	config  core.RuntimeConfig

	lastTick   time.Time
	state      game.GameState
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel creates a new Bubble Tea model with a fresh session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}

	gc := opts.Config
	scene := game.NewScene(game.NewArena(gc), gc.Player.Size, gc.Enemy.Size, gc.Goal.Size)
	session := game.NewSession(gc, cfg.Seed,
		game.WithDisplay(scene),
		game.WithLogger(logger),
		game.WithHighScores(opts.HighScores),
	)
	latches := NewLatches(DefaultInitialHold, DefaultRepeatHold, nil)

	var saver history.RunSaver
	if opts.Store != nil {
		saver = opts.Store
	}
	events := game.Handlers{history.NewRecorder(saver, session.Seed(), string(difficulty), logger)}
	if opts.Cues != nil {
		events = append(events, opts.Cues)
	}

	return Model{
		loop:    &game.Loop{Session: session, Input: latches},
		session: session,
		scene:   scene,
		latches: latches,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   opts.Store,
		events:  events,
		logger:  logger,
		config:  cfg,
		state:   session.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action.IsDirection():
		m.latches.Press(action)
	case action == core.ActionReset:
		m.latches.Release()
		m.session.Reset()
		m.logger.Debug("session reset")
	case action == core.ActionPause:
		m.latches.Release()
		m.session.TogglePause()
	case action == core.ActionScoreboard:
		m.latches.Release()
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
	case action == core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	}

	return m, nil
}

// updateScoreboard forwards messages to the scoreboard while it is open.
// Game ticks keep being scheduled but do not step the session.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t, ok := msg.(TickMsg); ok {
		m.lastTick = time.Time(t)
		return m, tickCmd(m.config.TickRate)
	}
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
	}

	next, cmd := m.scoreboard.Update(msg)
	sb := next.(ScoreboardModel)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
	default:
		m.scoreboard = &sb
	}
	return m, cmd
}

// handleTick steps the session by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	res := m.loop.Tick(dt)
	m.state = res.State
	m.handleEvents(res.Events)

	return m, tickCmd(m.config.TickRate)
}

// handleEvents hands session events to the run recorder and the cues.
func (m *Model) handleEvents(events []game.Event) {
	if len(events) > 0 {
		m.events.HandleEvents(events)
	}
}

// render draws the current scene into the screen buffer.
func (m Model) render() {
	RenderScene(m.screen, m.scene, m.help.ShortHelpView(m.keys.ShortHelp()))
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".dodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("dodge_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.render()
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m Model) State() game.GameState {
	return m.state
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
