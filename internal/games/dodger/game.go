// Package dodger implements Circle Dodger: steer a small circle along the
// bottom of the screen away from big circles that wobble as they fall.
// There is no end screen; a hit ends the run.
package dodger

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/sky-arcade/internal/config"
	"github.com/vovakirdan/sky-arcade/internal/core"
	"github.com/vovakirdan/sky-arcade/internal/engine"
	"github.com/vovakirdan/sky-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar = '●'
	HazardChar = '○'
)

// Hazard is a falling circle, anchored at its center.
type Hazard struct {
	X, Y float64
}

// Game implements the Circle Dodger game logic.
type Game struct {
	cfg     config.DodgerConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	clock   *core.Clock
	ramp    *engine.Ramp

	playerX float64
	hazards []Hazard
	speed   float64

	score    engine.Score
	gameOver bool
	paused   bool
}

// New creates a Circle Dodger game from default configuration.
func New() *Game {
	return &Game{cfg: config.DefaultDodgerConfig()}
}

// NewWithOptions loads configuration and applies a difficulty preset.
func NewWithOptions(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadDodger(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("dodger: %w", err)
	}
	if opts.Difficulty != "" {
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("dodger: %w", err)
		}
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, fmt.Errorf("dodger: %w", err)
		}
	}
	return &Game{cfg: cfg}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Circle Dodger"
}

// ExitOnGameOver reports that a hit ends the session instead of showing an
// end screen.
func (g *Game) ExitOnGameOver() bool {
	return true
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.clock = core.NewClock(runtime.TickDuration())
	g.ramp = engine.NewRamp(g.cfg.Difficulty)

	g.playerX = g.cfg.Player.X
	g.hazards = nil
	g.speed = g.cfg.Hazards.Speed

	g.score.Reset()
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	now := g.clock.Tick()
	k := g.runtime.TickScale()
	g.movePlayer(in, k)

	if g.ramp.Tick(now) {
		g.speed = g.ramp.Speed(g.speed)
	}

	h := g.cfg.Hazards
	w := g.cfg.World
	if h.Chance.Roll(g.rng) {
		x := engine.RandInt(g.rng, int(h.Radius), int(w.Width-h.Radius))
		g.hazards = append(g.hazards, Hazard{X: float64(x), Y: -h.Radius})
	}

	// Fall, wobble and stay between the walls; drop once fully below the screen
	g.hazards = engine.Filter(g.hazards, func(c *Hazard) bool {
		engine.Advance(&c.Y, g.speed, k)
		engine.Advance(&c.X, engine.Jitter(g.rng, h.Jitter), k)
		engine.ClampAxis(&c.X, nil, h.Radius, w.Width-h.Radius)
		return c.Y-h.Radius < w.Height
	})

	player := g.PlayerCircle()
	for _, c := range g.hazards {
		if player.Intersects(g.hazardCircle(c)) {
			g.gameOver = true
			break
		}
	}

	// Every tick survived scores, including the one that ends the run
	g.score.Add(1)

	return core.StepResult{State: g.State()}
}

// movePlayer moves the player while it is inside the side walls. Left is
// applied first, so the right-wall check sees the position after any left
// move.
func (g *Game) movePlayer(in core.InputFrame, k float64) {
	p := g.cfg.Player
	if in.Has(core.ActionLeft) && g.playerX-p.Radius > 0 {
		engine.Advance(&g.playerX, -p.Speed, k)
	}
	if in.Has(core.ActionRight) && g.playerX+p.Radius < g.cfg.World.Width {
		engine.Advance(&g.playerX, p.Speed, k)
	}
}

// PlayerCircle returns the player's collision circle.
func (g *Game) PlayerCircle() core.Circle {
	return core.NewCircle(g.playerX, g.cfg.Player.Y, g.cfg.Player.Radius)
}

func (g *Game) hazardCircle(c Hazard) core.Circle {
	return core.NewCircle(c.X, c.Y, g.cfg.Hazards.Radius)
}

// Hazards returns the live falling circles.
func (g *Game) Hazards() []Hazard {
	return g.hazards
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.ViewportFor(g.cfg.World.Width, g.cfg.World.Height, dst)

	for _, c := range g.hazards {
		vp.FillCircle(dst, g.hazardCircle(c), HazardChar, core.ColorBlue)
	}
	vp.FillCircle(dst, g.PlayerCircle(), PlayerChar, core.ColorRed)

	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", g.score.Value()), core.ColorGreen)

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("dodger", func(opts registry.Options) (registry.Game, error) {
		g, err := NewWithOptions(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
