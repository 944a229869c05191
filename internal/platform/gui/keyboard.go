package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dodge-arena/internal/core"
)

// Keyboard reports key state for the current frame.
type Keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeyboard reads the real keyboard.
type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var directionKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// Edge-triggered actions.
var actionKeys = map[core.Action][]ebiten.Key{
	core.ActionReset: {ebiten.KeyR},
	core.ActionPause: {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionQuit:  {ebiten.KeyQ},
}

// heldInput reports a direction for exactly as long as one of its keys
// is down. Window systems deliver releases, so no latching is needed.
type heldInput struct {
	kb Keyboard
}

// PollDirectionalInput implements game.InputSource.
func (h heldInput) PollDirectionalInput() core.Directions {
	return core.Directions{
		Up:    h.held(core.ActionUp),
		Down:  h.held(core.ActionDown),
		Left:  h.held(core.ActionLeft),
		Right: h.held(core.ActionRight),
	}
}

func (h heldInput) held(a core.Action) bool {
	for _, k := range directionKeys[a] {
		if h.kb.Pressed(k) {
			return true
		}
	}
	return false
}

// readActions fills frame with the actions whose keys went down this frame.
func readActions(kb Keyboard, frame *core.InputFrame) {
	frame.Clear()
	for action, keys := range actionKeys {
		for _, k := range keys {
			if kb.JustPressed(k) {
				frame.Set(action)
			}
		}
	}
}
