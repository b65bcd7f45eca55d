// Package walls implements Ball Through Walls: a ball under gravity hops
// through holes in walls that scroll in from the right, picking up bonus
// collectibles between them.
package walls

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/sky-arcade/internal/config"
	"github.com/vovakirdan/sky-arcade/internal/core"
	"github.com/vovakirdan/sky-arcade/internal/engine"
	"github.com/vovakirdan/sky-arcade/internal/registry"
)

// Visual characters for rendering
const (
	BallChar        = '●'
	WallChar        = '█'
	CollectibleChar = '◆'
)

// Ball is the player, anchored at its center.
type Ball struct {
	X, Y float64
	VY   float64
}

// Wall is a full-height wall with one hole centered on HoleY.
type Wall struct {
	X        float64
	HoleY    int
	HoleSize int
	Speed    float64
	Passed   bool // pass bonus already awarded
}

// Collectible is a bonus square, anchored at its center.
type Collectible struct {
	X, Y  float64
	Speed float64
}

// Game implements the Ball Through Walls game logic.
type Game struct {
	cfg     config.WallsConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	clock   *core.Clock
	ramp    *engine.Ramp

	wallTimer    engine.Interval
	collectTimer engine.Interval

	ball         Ball
	walls        []Wall
	collectibles []Collectible
	speed        float64
	holeSize     int

	score    engine.Score
	passed   int
	fallback int
	rejected int
	gameOver bool
	paused   bool
}

// New creates a Ball Through Walls game from default configuration.
func New() *Game {
	return &Game{cfg: config.DefaultWallsConfig()}
}

// NewWithOptions loads configuration and applies a difficulty preset.
func NewWithOptions(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadWalls(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("walls: %w", err)
	}
	if opts.Difficulty != "" {
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("walls: %w", err)
		}
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, fmt.Errorf("walls: %w", err)
		}
	}
	return &Game{cfg: cfg}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "walls"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ball Through Walls"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.clock = core.NewClock(runtime.TickDuration())
	g.ramp = engine.NewRamp(g.cfg.Difficulty)
	g.wallTimer = engine.NewInterval(time.Duration(g.cfg.Walls.IntervalMS) * time.Millisecond)
	g.collectTimer = engine.NewInterval(time.Duration(g.cfg.Collectibles.IntervalMS) * time.Millisecond)

	g.ball = Ball{X: g.cfg.Ball.X, Y: g.cfg.Ball.Y}
	g.walls = nil
	g.collectibles = nil
	g.speed = g.cfg.Walls.Speed
	g.holeSize = g.cfg.Walls.HoleSize

	g.score.Reset()
	g.passed = 0
	g.fallback = 0
	g.rejected = 0
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

	if in.Has(core.ActionJump) {
		g.ball.VY = g.cfg.Ball.JumpImpulse
	}

	if g.wallTimer.Due(now) {
		g.spawnWall()
	}
	if g.collectTimer.Due(now) {
		g.spawnCollectible()
	}

	// Faster and tighter; speed applies to everything already on screen
	if g.ramp.Tick(now) {
		g.speed = g.ramp.Speed(g.speed)
		g.holeSize = g.ramp.Gap(g.holeSize)
		for i := range g.walls {
			g.walls[i].Speed = g.speed
		}
		for i := range g.collectibles {
			g.collectibles[i].Speed = g.speed
		}
	}

	g.moveWalls(k)
	g.moveCollectibles(k)

	// Gravity, bounded by ceiling and floor
	r := g.cfg.Ball.Radius
	engine.Integrate(&g.ball.Y, &g.ball.VY, g.cfg.Ball.Gravity, k)
	engine.ClampAxis(&g.ball.Y, &g.ball.VY, r, g.cfg.World.Height-r)

	ballRect := g.BallRect()
	for _, w := range g.walls {
		top, bottom := g.WallRects(w)
		if ballRect.Intersects(top) || ballRect.Intersects(bottom) {
			g.gameOver = true
			break
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) spawnWall() {
	h := int(g.cfg.World.Height)
	g.walls = append(g.walls, Wall{
		X:        g.cfg.World.Width,
		HoleY:    engine.RandInt(g.rng, g.holeSize, h-g.holeSize),
		HoleSize: g.holeSize,
		Speed:    g.speed,
	})
}

// spawnCollectible places a collectible at the right edge, away from every
// live wall. When the edge is blocked it is pushed further right so it
// scrolls in behind the walls.
func (g *Game) spawnCollectible() {
	c := g.cfg.Collectibles
	randomY := func() float64 {
		return float64(engine.RandInt(g.rng, int(c.Size), int(g.cfg.World.Height-c.Size)))
	}

	placement := engine.Placement{
		MaxAttempts: c.MaxAttempts,
		Candidate: func() core.Vec {
			return core.Vec{X: g.cfg.World.Width, Y: randomY()}
		},
		Valid: g.clearOfWalls,
		Fallback: func() core.Vec {
			x := g.cfg.World.Width
			for _, w := range g.walls {
				x = max(x, w.X+c.MinDistance)
			}
			return core.Vec{X: x, Y: randomY()}
		},
	}

	pos, status := placement.Place()
	switch status {
	case engine.PlacedFallback:
		g.fallback++
	case engine.Rejected:
		g.rejected++
		return
	}
	g.collectibles = append(g.collectibles, Collectible{X: pos.X, Y: pos.Y, Speed: g.speed})
}

// clearOfWalls reports whether a collectible at p keeps the minimum
// horizontal distance from every live wall.
func (g *Game) clearOfWalls(p core.Vec) bool {
	for _, w := range g.walls {
		if math.Abs(p.X-w.X) < g.cfg.Collectibles.MinDistance {
			return false
		}
	}
	return true
}

func (g *Game) moveWalls(k float64) {
	width := g.cfg.Walls.Width
	ballLeft := g.ball.X - g.cfg.Ball.Radius

	g.walls = engine.Filter(g.walls, func(w *Wall) bool {
		engine.Advance(&w.X, -w.Speed, k)
		if !w.Passed && w.X+width < ballLeft {
			w.Passed = true
			g.passed++
			g.score.Add(g.cfg.Walls.PassPoints)
		}
		return w.X+width >= 0
	})
}

func (g *Game) moveCollectibles(k float64) {
	size := g.cfg.Collectibles.Size
	ballRect := g.BallRect()

	g.collectibles = engine.Filter(g.collectibles, func(c *Collectible) bool {
		engine.Advance(&c.X, -c.Speed, k)
		if ballRect.Intersects(g.collectibleRect(*c)) {
			g.score.Add(g.cfg.Collectibles.Points)
			return false
		}
		return c.X+size >= 0
	})
}

// BallRect returns the ball's collision box.
func (g *Game) BallRect() core.RectF {
	r := g.cfg.Ball.Radius
	return core.NewRectF(g.ball.X-r, g.ball.Y-r, 2*r, 2*r)
}

// WallRects returns the solid parts of a wall above and below its hole.
func (g *Game) WallRects(w Wall) (top, bottom core.RectF) {
	h := g.cfg.World.Height
	half := w.HoleSize / 2
	holeTop := float64(w.HoleY - half)
	holeBottom := float64(w.HoleY + half)

	top = core.NewRectF(w.X, 0, g.cfg.Walls.Width, holeTop)
	bottom = core.NewRectF(w.X, holeBottom, g.cfg.Walls.Width, h-holeBottom)
	return top, bottom
}

func (g *Game) collectibleRect(c Collectible) core.RectF {
	s := g.cfg.Collectibles.Size
	half := float64(int(s) / 2)
	return core.NewRectF(c.X-half, c.Y-half, s, s)
}

// Ball returns the current ball state.
func (g *Game) Ball() Ball {
	return g.ball
}

// Walls returns the live walls.
func (g *Game) Walls() []Wall {
	return g.walls
}

// Collectibles returns the live collectibles.
func (g *Game) Collectibles() []Collectible {
	return g.collectibles
}

// RunStats returns key/value pairs describing the current run for logging.
func (g *Game) RunStats() []any {
	return []any{
		"walls_passed", g.passed,
		"speed", g.speed,
		"hole_size", g.holeSize,
		"placement_fallbacks", g.fallback,
		"placement_rejections", g.rejected,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.ViewportFor(g.cfg.World.Width, g.cfg.World.Height, dst)

	for _, w := range g.walls {
		top, bottom := g.WallRects(w)
		vp.FillRect(dst, top, WallChar, core.ColorRed)
		vp.FillRect(dst, bottom, WallChar, core.ColorRed)
	}
	for _, c := range g.collectibles {
		circle := core.NewCircle(c.X, c.Y, g.cfg.Collectibles.Size/2)
		vp.FillCircle(dst, circle, CollectibleChar, core.ColorYellow)
	}
	b := g.cfg.Ball
	vp.FillCircle(dst, core.NewCircle(g.ball.X, g.ball.Y, b.Radius), BallChar, core.ColorGreen)

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
	registry.Register("walls", func(opts registry.Options) (registry.Game, error) {
		g, err := NewWithOptions(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
