// Package skyjumper implements Sky Jumper: the player runs along the ground
// dodging clouds that fall ever faster, and catches falling stars for points.
package skyjumper

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
	PlayerChar = '█'
	CloudChar  = '▒'
	StarChar   = '*'
)

// Player is the jumping square, anchored at its top-left corner.
type Player struct {
	X, Y float64
	VY   float64
}

// Cloud is a falling hazard.
type Cloud struct {
	X, Y float64
}

// Star is a falling collectible.
type Star struct {
	X, Y float64
}

// Game implements the Sky Jumper game logic.
type Game struct {
	cfg     config.SkyJumperConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	clock   *core.Clock
	ramp    *engine.Ramp

	player Player
	clouds []Cloud
	stars  []Star
	speed  float64 // shared fall speed of clouds and stars

	score    engine.Score
	gameOver bool
	paused   bool
}

// New creates a Sky Jumper game from default configuration.
func New() *Game {
	return &Game{cfg: config.DefaultSkyJumperConfig()}
}

// NewWithOptions loads configuration and applies a difficulty preset.
func NewWithOptions(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadSkyJumper(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("skyjumper: %w", err)
	}
	if opts.Difficulty != "" {
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("skyjumper: %w", err)
		}
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, fmt.Errorf("skyjumper: %w", err)
		}
	}
	return &Game{cfg: cfg}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyjumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Jumper"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.SkyJumperConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.clock = core.NewClock(runtime.TickDuration())
	g.ramp = engine.NewRamp(g.cfg.Difficulty)

	p := g.cfg.Player
	g.player = Player{
		X: g.cfg.World.Width/2 - p.Width/2,
		Y: g.floor() - p.StartOffset,
	}

	bounds := g.cfg.World.Bounds()
	g.clouds = make([]Cloud, 0, g.cfg.Clouds.Count)
	for range g.cfg.Clouds.Count {
		pos := engine.RandomInside(g.rng, g.cfg.Clouds.Width, g.cfg.Clouds.Height, bounds)
		g.clouds = append(g.clouds, Cloud{X: pos.X, Y: pos.Y})
	}
	g.stars = nil
	g.speed = g.cfg.Clouds.Speed

	g.score.Reset()
	g.gameOver = false
	g.paused = false
}

// floor is the resting Y of the player.
func (g *Game) floor() float64 {
	return g.cfg.World.Height - g.cfg.Player.Height
}

// Grounded reports whether the player stands on the floor and may jump.
func (g *Game) Grounded() bool {
	return g.player.Y == g.floor()
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
	p := g.cfg.Player

	// Horizontal movement, kept inside the world
	engine.Advance(&g.player.X, float64(in.Horizontal())*p.Speed, k)
	engine.ClampAxis(&g.player.X, nil, 0, g.cfg.World.Width-p.Width)

	if in.Has(core.ActionJump) && g.Grounded() {
		g.player.VY = p.JumpImpulse
	}

	// Gravity, landing on the floor
	engine.Integrate(&g.player.Y, &g.player.VY, p.Gravity, k)
	if g.player.Y > g.floor() {
		g.player.Y = g.floor()
		g.player.VY = 0
	}

	g.moveClouds(k)
	if g.ramp.Tick(now) {
		g.speed = g.ramp.Speed(g.speed)
	}

	playerRect := g.PlayerRect()
	for _, c := range g.clouds {
		if playerRect.Intersects(g.cloudRect(c)) {
			g.gameOver = true
			break
		}
	}

	if g.cfg.Stars.Chance.Roll(g.rng) {
		pos := engine.RandomAbove(g.rng, g.cfg.Stars.Size, g.cfg.World.Bounds())
		g.stars = append(g.stars, Star{X: pos.X, Y: pos.Y})
	}
	g.moveStars(k)
	g.collectStars(playerRect)

	return core.StepResult{State: g.State()}
}

func (g *Game) moveClouds(k float64) {
	bounds := g.cfg.World.Bounds()
	for i := range g.clouds {
		c := &g.clouds[i]
		engine.Advance(&c.Y, g.speed, k)
		pos := core.Vec{X: c.X, Y: c.Y}
		if engine.WrapBelow(g.rng, &pos, g.cfg.Clouds.Width, bounds) {
			c.X, c.Y = pos.X, pos.Y
		}
	}
}

func (g *Game) moveStars(k float64) {
	bounds := g.cfg.World.Bounds()
	for i := range g.stars {
		s := &g.stars[i]
		engine.Advance(&s.Y, g.speed, k)
		pos := core.Vec{X: s.X, Y: s.Y}
		if engine.WrapBelow(g.rng, &pos, g.cfg.Stars.Size, bounds) {
			s.X, s.Y = pos.X, pos.Y
		}
	}
}

func (g *Game) collectStars(playerRect core.RectF) {
	g.stars = engine.Filter(g.stars, func(s *Star) bool {
		if playerRect.Intersects(g.starRect(*s)) {
			g.score.Add(g.cfg.Stars.Points)
			return false
		}
		return true
	})
}

// PlayerRect returns the player's collision rectangle.
func (g *Game) PlayerRect() core.RectF {
	return core.NewRectF(g.player.X, g.player.Y, g.cfg.Player.Width, g.cfg.Player.Height)
}

func (g *Game) cloudRect(c Cloud) core.RectF {
	return core.NewRectF(c.X, c.Y, g.cfg.Clouds.Width, g.cfg.Clouds.Height)
}

func (g *Game) starRect(s Star) core.RectF {
	return core.NewRectF(s.X, s.Y, g.cfg.Stars.Size, g.cfg.Stars.Size)
}

// Player returns the current player state.
func (g *Game) Player() Player {
	return g.player
}

// Clouds returns the live clouds.
func (g *Game) Clouds() []Cloud {
	return g.clouds
}

// Stars returns the live stars.
func (g *Game) Stars() []Star {
	return g.stars
}

// Speed returns the current fall speed of clouds and stars.
func (g *Game) Speed() float64 {
	return g.speed
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.ViewportFor(g.cfg.World.Width, g.cfg.World.Height, dst)

	for _, c := range g.clouds {
		vp.FillRect(dst, g.cloudRect(c), CloudChar, core.ColorGray)
	}
	for _, s := range g.stars {
		vp.FillRect(dst, g.starRect(s), StarChar, core.ColorBrightYellow)
	}
	vp.FillRect(dst, g.PlayerRect(), PlayerChar, core.ColorYellow)

	// Draw HUD
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", g.score.Value()), core.ColorWhite)

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}

	if g.gameOver {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Value()))
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
	registry.Register("skyjumper", func(opts registry.Options) (registry.Game, error) {
		g, err := NewWithOptions(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
