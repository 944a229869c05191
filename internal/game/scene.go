package game

import "github.com/vovakirdan/dodge-arena/internal/core"

// SceneEntity is one drawable square.
type SceneEntity struct {
	ID   EntityID
	Pos  core.Vec
	Size float64
}

// Scene is a Display that records the latest state so that a frontend can
// draw it in its own frame callback. Sizes are taken from the configured
// entity sizes.
type Scene struct {
	Arena      Arena
	Player     SceneEntity
	Goal       SceneEntity
	Enemies    []SceneEntity
	Status     string
	StatusKind StatusKind
	Level      int
	HighScore  int

	enemySize float64
}

// NewScene creates an empty scene for the arena with the given entity sizes.
func NewScene(arena Arena, playerSize, enemySize, goalSize float64) *Scene {
	return &Scene{
		Arena:     arena,
		Player:    SceneEntity{ID: playerID, Size: playerSize},
		Goal:      SceneEntity{ID: goalID, Size: goalSize},
		enemySize: enemySize,
	}
}

// SetPosition implements Display. Enemies are created on first sight.
func (s *Scene) SetPosition(id EntityID, x, y float64) {
	pos := core.Vec{X: x, Y: y}
	switch id.Kind {
	case EntityPlayer:
		s.Player.Pos = pos
	case EntityGoal:
		s.Goal.Pos = pos
	default:
		for i := range s.Enemies {
			if s.Enemies[i].ID == id {
				s.Enemies[i].Pos = pos
				return
			}
		}
		s.Enemies = append(s.Enemies, SceneEntity{ID: id, Pos: pos, Size: s.enemySize})
	}
}

// ClearEnemies implements Display.
func (s *Scene) ClearEnemies() {
	s.Enemies = s.Enemies[:0]
}

// SetStatus implements Display.
func (s *Scene) SetStatus(text string, kind StatusKind) {
	s.Status = text
	s.StatusKind = kind
}

// SetLevel implements Display.
func (s *Scene) SetLevel(level int) {
	s.Level = level
}

// SetHighScore implements Display.
func (s *Scene) SetHighScore(score int) {
	s.HighScore = score
}

// Entities returns every square in draw order: goal, enemies, player.
func (s *Scene) Entities() []SceneEntity {
	out := make([]SceneEntity, 0, len(s.Enemies)+2)
	out = append(out, s.Goal)
	out = append(out, s.Enemies...)
	out = append(out, s.Player)
	return out
}
