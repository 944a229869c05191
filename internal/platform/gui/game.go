// Package gui runs the dodge game in a desktop window using Ebitengine.
package gui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dodge-arena/internal/config"
	"github.com/vovakirdan/dodge-arena/internal/core"
	"github.com/vovakirdan/dodge-arena/internal/game"
	"github.com/vovakirdan/dodge-arena/internal/history"
	"github.com/vovakirdan/dodge-arena/internal/storage"
)

const windowTitle = "Dodge Arena"

// Options configures a windowed game.
type Options struct {
	Config     config.Config
	Seed       int64
	TickRate   int     // Updates per second; 0 keeps the Ebitengine default
	Scale      float64 // Window size multiplier; 0 means 1
	Difficulty config.DifficultyPreset
	Store      *storage.Store
	HighScores *game.HighScores
	Cues       game.EventHandler
	Logger     *log.Logger
	Keyboard   Keyboard // nil reads the real keyboard
}

// Game implements ebiten.Game on top of a dodge session.
type Game struct {
	loop    *game.Loop
	session *game.Session
	scene   *game.Scene
	keys    Keyboard
	frame   core.InputFrame
	events  game.Handlers
	logger  *log.Logger
	state   game.GameState
}

// NewGame creates a game with a fresh session.
func NewGame(opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	kb := opts.Keyboard
	if kb == nil {
		kb = ebitenKeyboard{}
	}

	gc := opts.Config
	scene := game.NewScene(game.NewArena(gc), gc.Player.Size, gc.Enemy.Size, gc.Goal.Size)
	session := game.NewSession(gc, opts.Seed,
		game.WithDisplay(scene),
		game.WithLogger(logger),
		game.WithHighScores(opts.HighScores),
	)

	var saver history.RunSaver
	if opts.Store != nil {
		saver = opts.Store
	}
	events := game.Handlers{history.NewRecorder(saver, session.Seed(), string(opts.Difficulty), logger)}
	if opts.Cues != nil {
		events = append(events, opts.Cues)
	}

	return &Game{
		loop:    &game.Loop{Session: session, Input: heldInput{kb: kb}},
		session: session,
		scene:   scene,
		keys:    kb,
		frame:   core.NewInputFrame(),
		events:  events,
		logger:  logger,
		state:   session.State(),
	}
}

// Update handles the edge-triggered actions and steps the session by one
// fixed tick.
func (g *Game) Update() error {
	readActions(g.keys, &g.frame)
	switch {
	case g.frame.Has(core.ActionQuit):
		return ebiten.Termination
	case g.frame.Has(core.ActionReset):
		g.session.Reset()
		g.logger.Debug("session reset")
	case g.frame.Has(core.ActionPause):
		g.session.TogglePause()
	}

	res := g.loop.Tick(tickDuration())
	g.state = res.State
	if len(res.Events) > 0 {
		g.events.HandleEvents(res.Events)
	}
	return nil
}

// State returns the game state after the last update.
func (g *Game) State() game.GameState {
	return g.state
}

// tickDuration is the fixed step Ebitengine calls Update at.
func tickDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	g := NewGame(opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle(windowTitle)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
