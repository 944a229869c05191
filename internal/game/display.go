package game

import (
	"fmt"

	"github.com/vovakirdan/dodge-arena/internal/core"
)

// EntityKind identifies what an entity on the display represents.
type EntityKind int

const (
	EntityPlayer EntityKind = iota
	EntityEnemy
	EntityMovingEnemy
	EntityGoal
)

// String returns a short name for the kind.
func (k EntityKind) String() string {
	switch k {
	case EntityPlayer:
		return "player"
	case EntityEnemy:
		return "enemy"
	case EntityMovingEnemy:
		return "moving-enemy"
	case EntityGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// EntityID addresses one entity on the display. Index distinguishes enemies
// and is zero for the player and the goal.
type EntityID struct {
	Kind  EntityKind
	Index int
}

func (id EntityID) String() string {
	if id.Kind == EntityEnemy || id.Kind == EntityMovingEnemy {
		return fmt.Sprintf("%s#%d", id.Kind, id.Index)
	}
	return id.Kind.String()
}

var (
	playerID = EntityID{Kind: EntityPlayer}
	goalID   = EntityID{Kind: EntityGoal}
)

// StatusKind is the style class of the status line.
type StatusKind int

const (
	StatusPlaying StatusKind = iota
	StatusGameOver
	StatusCleared
	StatusPaused
)

// Display receives everything a frontend needs to draw the game.
// The session never reads back from it.
type Display interface {
	SetPosition(id EntityID, x, y float64)
	ClearEnemies()
	SetStatus(text string, kind StatusKind)
	SetLevel(level int)
	SetHighScore(score int)
}

// InputSource reports which directions are currently held.
// It is polled once per tick.
type InputSource interface {
	PollDirectionalInput() core.Directions
}

// nopDisplay discards every update.
type nopDisplay struct{}

func (nopDisplay) SetPosition(EntityID, float64, float64) {}
func (nopDisplay) ClearEnemies()                          {}
func (nopDisplay) SetStatus(string, StatusKind)           {}
func (nopDisplay) SetLevel(int)                           {}
func (nopDisplay) SetHighScore(int)                       {}

// NoInput is an InputSource with no key held.
type NoInput struct{}

// PollDirectionalInput always returns no directions.
func (NoInput) PollDirectionalInput() core.Directions { return core.Directions{} }

// EventHandler consumes the events raised by a step, e.g. to play sounds.
type EventHandler interface {
	HandleEvents(events []Event)
}

// Handlers fans events out to several handlers in order.
type Handlers []EventHandler

// HandleEvents implements EventHandler.
func (hs Handlers) HandleEvents(events []Event) {
	for _, h := range hs {
		h.HandleEvents(events)
	}
}
