package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dodge-arena/internal/core"
	"github.com/vovakirdan/dodge-arena/internal/game"
)

// Heights of the text bands above and below the arena, in pixels.
const (
	hudHeight    = 20
	footerHeight = 20
)

var (
	background = color.RGBA{0x10, 0x10, 0x14, 0xff}
	zoneFill   = color.RGBA{0x22, 0x26, 0x2e, 0xff}
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorRed:         {0xc0, 0x30, 0x30, 0xff},
	core.ColorGreen:       {0x30, 0xa0, 0x40, 0xff},
	core.ColorYellow:      {0xe8, 0xc8, 0x30, 0xff},
	core.ColorBlue:        {0x30, 0x60, 0xd0, 0xff},
	core.ColorMagenta:     {0xb0, 0x40, 0xb0, 0xff},
	core.ColorCyan:        {0x40, 0xc0, 0xd0, 0xff},
	core.ColorBrightRed:   {0xff, 0x50, 0x50, 0xff},
	core.ColorBrightGreen: {0x60, 0xff, 0x70, 0xff},
	core.ColorOrange:      {0xff, 0x90, 0x20, 0xff},
	core.ColorGray:        {0x60, 0x60, 0x60, 0xff},
}

var entityColors = map[game.EntityKind]core.Color{
	game.EntityPlayer:      core.ColorBrightGreen,
	game.EntityEnemy:       core.ColorRed,
	game.EntityMovingEnemy: core.ColorOrange,
	game.EntityGoal:        core.ColorYellow,
}

var statusColors = map[game.StatusKind]core.Color{
	game.StatusPlaying:  core.ColorDefault,
	game.StatusGameOver: core.ColorBrightRed,
	game.StatusCleared:  core.ColorBrightGreen,
	game.StatusPaused:   core.ColorCyan,
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// Draw renders the HUD, the arena and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	s := g.scene
	top := float32(hudHeight)

	zone := s.Arena.SafeZone
	vector.DrawFilledRect(screen,
		float32(zone.Left), top+float32(zone.Top),
		float32(zone.Width()), float32(zone.Height()),
		zoneFill, false)

	for _, e := range s.Entities() {
		vector.DrawFilledRect(screen,
			float32(e.Pos.X), top+float32(e.Pos.Y),
			float32(e.Size), float32(e.Size),
			rgba(entityColors[e.ID.Kind]), false)
	}

	vector.StrokeRect(screen, 0, top, float32(s.Arena.Width), float32(s.Arena.Height), 1, rgba(core.ColorGray), false)

	face := basicfont.Face7x13
	hud := fmt.Sprintf("Level %d   High score %d", s.Level, s.HighScore)
	text.Draw(screen, hud, face, 8, 14, rgba(core.ColorCyan))
	text.Draw(screen, s.Status, face, 8, hudHeight+int(s.Arena.Height)+14, rgba(statusColors[s.StatusKind]))
}

// Layout keeps the logical screen at arena size plus the text bands.
func (g *Game) Layout(_, _ int) (int, int) {
	a := g.scene.Arena
	return int(a.Width), int(a.Height) + hudHeight + footerHeight
}
