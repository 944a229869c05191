package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-arena/internal/core"
	"github.com/vovakirdan/dodge-arena/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// Glyphs and colors per entity kind.
var entityLook = map[game.EntityKind]core.Cell{
	game.EntityPlayer:      {Rune: '█', Color: core.ColorBrightGreen},
	game.EntityEnemy:       {Rune: '█', Color: core.ColorRed},
	game.EntityMovingEnemy: {Rune: '▓', Color: core.ColorOrange},
	game.EntityGoal:        {Rune: '▒', Color: core.ColorYellow},
}

var statusColors = map[game.StatusKind]core.Color{
	game.StatusPlaying:  core.ColorDefault,
	game.StatusGameOver: core.ColorBrightRed,
	game.StatusCleared:  core.ColorBrightGreen,
	game.StatusPaused:   core.ColorCyan,
}

// Rows taken by the HUD above the arena and the status and help lines below.
const (
	hudRows    = 1
	footerRows = 2
)

// RenderScene draws the scene onto dst, scaling the arena to fit the screen.
// The help line is drawn verbatim on the last row.
func RenderScene(dst *core.Screen, scene *game.Scene, helpLine string) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < 4 || h < hudRows+footerRows+3 {
		dst.DrawTextCentered(h/2, "terminal too small", core.ColorGray)
		return
	}

	hud := fmt.Sprintf(" Level %d   High score %d ", scene.Level, scene.HighScore)
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)

	boxH := h - hudRows - footerRows
	dst.DrawBox(0, hudRows, w, boxH, core.ColorGray)

	v := viewport{
		x0: 1, y0: hudRows + 1,
		sx: float64(w-2) / scene.Arena.Width,
		sy: float64(boxH-2) / scene.Arena.Height,
	}

	zone := scene.Arena.SafeZone
	v.fill(dst, zone.Left, zone.Top, zone.Width(), zone.Height(), core.Cell{Rune: '·', Color: core.ColorGray})

	for _, e := range scene.Entities() {
		v.fill(dst, e.Pos.X, e.Pos.Y, e.Size, e.Size, entityLook[e.ID.Kind])
	}

	dst.DrawTextColored(1, h-2, scene.Status, statusColors[scene.StatusKind])
	dst.DrawTextColored(1, h-1, helpLine, core.ColorGray)
}

// viewport maps arena units to screen cells inside the arena box.
type viewport struct {
	x0, y0 int
	sx, sy float64
}

// fill paints the cells covered by an arena rectangle. Every entity
// covers at least one cell so nothing vanishes on small terminals.
func (v viewport) fill(dst *core.Screen, x, y, w, h float64, look core.Cell) {
	left := int(math.Floor(x * v.sx))
	top := int(math.Floor(y * v.sy))
	right := max(int(math.Ceil((x+w)*v.sx)), left+1)
	bottom := max(int(math.Ceil((y+h)*v.sy)), top+1)

	dst.FillRect(v.x0+left, v.y0+top, right-left, bottom-top, look.Rune, look.Color)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a color are rendered as one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				sb.WriteString(styleFor(current).Render(run.String()))
				run.Reset()
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(styleFor(current).Render(run.String()))
		run.Reset()
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
