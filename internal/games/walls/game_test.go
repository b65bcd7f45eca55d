package walls

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/sky-arcade/internal/config"
	"github.com/vovakirdan/sky-arcade/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func newGame(seed int64) *Game {
	g := New()
	g.Reset(testConfig(seed))
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestBallSettlesOnFloor(t *testing.T) {
	g := newGame(1)

	step(g, core.ActionJump)
	if g.ball.VY != -6.5 || g.ball.Y != 293.5 {
		t.Fatalf("after jump: y=%v vy=%v, expected 293.5 and -6.5", g.ball.Y, g.ball.VY)
	}

	for i := 1; i < 200; i++ {
		if step(g).State.GameOver {
			t.Fatalf("tick %d: game over before any wall reached the ball", i)
		}
	}

	if g.ball.Y != 580 || g.ball.VY != 0 {
		t.Errorf("ball should rest at y=580 with no velocity, got y=%v vy=%v", g.ball.Y, g.ball.VY)
	}
	if g.score.Value() != 0 {
		t.Errorf("score = %d, expected 0", g.score.Value())
	}
}

func TestFirstWallHitsRestingBall(t *testing.T) {
	g := newGame(7)

	for range 400 {
		if step(g).State.GameOver {
			break
		}
		if g.clock.Ticks() == 120 && len(g.walls) != 0 {
			t.Fatal("no wall should spawn before 2 seconds have passed")
		}
	}

	if !g.gameOver {
		t.Fatal("the first wall should hit a ball resting on the floor")
	}
	if g.clock.Ticks() != 237 {
		t.Errorf("collision at tick %d, expected 237", g.clock.Ticks())
	}
	if g.score.Value() != 0 {
		t.Errorf("score = %d, the blocking wall must not count as passed", g.score.Value())
	}
}

func TestWallRects(t *testing.T) {
	g := newGame(1)
	top, bottom := g.WallRects(Wall{X: 400, HoleY: 300, HoleSize: 150})

	if top != core.NewRectF(400, 0, 100, 225) {
		t.Errorf("top rect = %+v", top)
	}
	if bottom != core.NewRectF(400, 375, 100, 225) {
		t.Errorf("bottom rect = %+v", bottom)
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name     string
		ballY    float64
		wantOver bool
	}{
		{"through the hole", 300, false},
		{"into the top part", 240, true},
		{"into the bottom part", 360, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(1)
			g.ball.Y = tc.ballY
			// The wall moves 5 before the check and still covers the ball's column.
			g.walls = []Wall{{X: 155, HoleY: 300, HoleSize: 150, Speed: 5}}

			if res := step(g); res.State.GameOver != tc.wantOver {
				t.Errorf("GameOver = %v, expected %v", res.State.GameOver, tc.wantOver)
			}
		})
	}
}

func TestPassedFlagPreventsDoubleCount(t *testing.T) {
	g := newGame(1)
	g.walls = []Wall{{X: 79, HoleY: 300, HoleSize: 150, Speed: 5}}

	step(g)
	if g.score.Value() != 1 || !g.walls[0].Passed {
		t.Fatalf("passing a wall should score once: score=%d passed=%v", g.score.Value(), g.walls[0].Passed)
	}

	for range 10 {
		step(g)
	}
	if g.score.Value() != 1 {
		t.Errorf("score = %d, a passed wall must not score again", g.score.Value())
	}
}

func TestCollectibleCollection(t *testing.T) {
	g := newGame(1)
	g.collectibles = []Collectible{{X: g.ball.X + 5, Y: g.ball.Y, Speed: 5}}

	res := step(g)
	if res.State.Score != 5 {
		t.Errorf("score = %d, expected 5", res.State.Score)
	}
	if len(g.collectibles) != 0 {
		t.Error("collected item should be removed")
	}
}

func TestOffScreenRemoval(t *testing.T) {
	g := newGame(1)
	g.walls = []Wall{{X: -98, HoleY: 300, HoleSize: 150, Speed: 5, Passed: true}, {X: -94, HoleY: 300, HoleSize: 150, Speed: 5, Passed: true}}
	g.collectibles = []Collectible{{X: -26, Y: 50, Speed: 5}, {X: -24, Y: 50, Speed: 5}}

	step(g)

	if len(g.walls) != 1 || g.walls[0].X != -99 {
		t.Errorf("walls after step = %+v, expected only the one at x=-99", g.walls)
	}
	if len(g.collectibles) != 1 || g.collectibles[0].X != -29 {
		t.Errorf("collectibles after step = %+v, expected only the one at x=-29", g.collectibles)
	}
}

func TestCeilingClamp(t *testing.T) {
	g := newGame(1)
	g.ball.Y = 30
	g.ball.VY = -50

	step(g)
	if g.ball.Y != 20 || g.ball.VY != 0 {
		t.Errorf("ball should stop at the ceiling: y=%v vy=%v", g.ball.Y, g.ball.VY)
	}
}

func TestClearOfWalls(t *testing.T) {
	tests := []struct {
		name  string
		wallX float64
		want  bool
	}{
		{"wall far left", 300, true},
		{"wall just left", 700, false},
		{"wall just right", 900, false},
		{"exactly the minimum to the left", 650, true},
		{"exactly the minimum to the right", 950, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(3)
			g.walls = []Wall{{X: tc.wallX}}
			if got := g.clearOfWalls(core.Vec{X: 800, Y: 300}); got != tc.want {
				t.Errorf("clearOfWalls(x=800) with wall at %v = %v, expected %v", tc.wallX, got, tc.want)
			}
		})
	}
}

func TestCollectiblePlacement(t *testing.T) {
	t.Run("clear edge", func(t *testing.T) {
		g := newGame(3)
		g.walls = []Wall{{X: 300}, {X: 500}}
		g.spawnCollectible()

		if len(g.collectibles) != 1 {
			t.Fatal("expected a collectible")
		}
		c := g.collectibles[0]
		if c.X != 800 || c.Y < 30 || c.Y > 570 {
			t.Errorf("collectible = %+v, expected x=800 and y in [30, 570]", c)
		}
		if g.fallback != 0 {
			t.Error("fallback should not be used when the edge is clear")
		}
	})

	t.Run("wall at the edge", func(t *testing.T) {
		g := newGame(3)
		g.walls = []Wall{{X: 600}, {X: 800}}
		g.spawnCollectible()

		if len(g.collectibles) != 1 {
			t.Fatal("a blocked edge must still produce a collectible")
		}
		if c := g.collectibles[0]; c.X != 950 {
			t.Errorf("fallback x = %v, expected 950", c.X)
		}
		if g.fallback != 1 {
			t.Errorf("fallback count = %d, expected 1", g.fallback)
		}
	})

	t.Run("never near a wall", func(t *testing.T) {
		g := newGame(3)
		rng := rand.New(rand.NewSource(99))

		for range 500 {
			g.walls = g.walls[:0]
			for range rng.Intn(5) {
				g.walls = append(g.walls, Wall{X: float64(rng.Intn(1000) - 100)})
			}
			g.collectibles = nil
			g.spawnCollectible()

			for _, c := range g.collectibles {
				for _, w := range g.walls {
					if d := math.Abs(c.X - w.X); d < 150 {
						t.Fatalf("collectible at x=%v is %v from wall at x=%v", c.X, d, w.X)
					}
				}
			}
		}
	})
}

func TestDifficultyRamp(t *testing.T) {
	g := newGame(5)

	for range 600 {
		step(g)
		g.walls = nil
		g.collectibles = nil
		g.gameOver = false
	}
	if g.speed != 5 || g.holeSize != 150 {
		t.Fatalf("no ramp expected before 10s: speed=%v hole=%d", g.speed, g.holeSize)
	}

	g.walls = []Wall{{X: 700, HoleY: 300, HoleSize: 150, Speed: 5}}
	g.collectibles = []Collectible{{X: 650, Y: 50, Speed: 5}}
	step(g)

	if g.speed != 6 || g.holeSize != 140 {
		t.Errorf("after 10s: speed=%v hole=%d, expected 6 and 140", g.speed, g.holeSize)
	}
	for _, w := range g.walls {
		if w.Speed != 6 {
			t.Errorf("live wall speed = %v, expected 6", w.Speed)
		}
	}
	if g.walls[0].X != 694 {
		t.Errorf("wall should move at the new speed, x = %v", g.walls[0].X)
	}
	if g.collectibles[0].Speed != 6 {
		t.Errorf("live collectible speed = %v, expected 6", g.collectibles[0].Speed)
	}
	if g.walls[0].HoleSize != 150 {
		t.Error("holes of walls already on screen keep their size")
	}
}

func TestFixedPresetKeepsSpeed(t *testing.T) {
	cfg := config.DefaultWallsConfig()
	if err := cfg.ApplyPreset(config.DifficultyFixed); err != nil {
		t.Fatal(err)
	}
	g := &Game{cfg: cfg}
	g.Reset(testConfig(5))

	for range 1300 {
		step(g)
		g.walls = nil
		g.gameOver = false
	}
	if g.speed != 5 || g.holeSize != 150 {
		t.Errorf("fixed difficulty changed: speed=%v hole=%d", g.speed, g.holeSize)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() *Game {
		g := newGame(31337)
		for i := range 1200 {
			var actions []core.Action
			if i%18 == 0 {
				actions = append(actions, core.ActionJump)
			}
			if step(g, actions...).State.GameOver {
				break
			}
		}
		return g
	}

	g1, g2 := run(), run()
	if g1.State() != g2.State() || g1.ball != g2.ball || g1.clock.Ticks() != g2.clock.Ticks() {
		t.Errorf("Determinism failed: %+v vs %+v", g1.State(), g2.State())
	}
	if len(g1.walls) != len(g2.walls) {
		t.Fatal("Determinism failed: wall counts differ")
	}
	for i := range g1.walls {
		if g1.walls[i] != g2.walls[i] {
			t.Errorf("Determinism failed: wall %d differs", i)
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newGame(1)
	g.walls = []Wall{{X: 1}}
	g.collectibles = []Collectible{{X: 1}}
	g.score.Add(9)
	g.speed = 12
	g.holeSize = 100
	g.gameOver = true

	g.Reset(testConfig(1))

	if len(g.walls) != 0 || len(g.collectibles) != 0 {
		t.Error("Reset should clear entities")
	}
	if g.score.Value() != 0 || g.gameOver || g.paused {
		t.Error("Reset should clear score and flags")
	}
	if g.speed != 5 || g.holeSize != 150 {
		t.Error("Reset should restore the starting difficulty")
	}
	if g.ball != (Ball{X: 200, Y: 300}) {
		t.Errorf("ball = %+v, expected at rest at (200, 300)", g.ball)
	}
}

func TestGamePause(t *testing.T) {
	g := newGame(1)

	step(g, core.ActionPause)
	before := g.ball
	step(g, core.ActionJump)
	if g.ball != before {
		t.Error("ball should not move while paused")
	}

	if step(g, core.ActionPause).State.Paused {
		t.Error("Game should be unpaused")
	}
}

func TestRender(t *testing.T) {
	g := newGame(1)
	g.walls = []Wall{{X: 400, HoleY: 300, HoleSize: 150, Speed: 5}}
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing: %q", screen.Row(0))
	}
	if !strings.ContainsRune(out, WallChar) || !strings.ContainsRune(out, BallChar) {
		t.Error("wall or ball not drawn")
	}

	g.gameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over message not drawn")
	}
}

func TestRunStats(t *testing.T) {
	g := newGame(1)
	stats := g.RunStats()
	if len(stats)%2 != 0 {
		t.Fatal("RunStats must be key/value pairs")
	}
	if stats[0] != "walls_passed" || stats[1] != 0 {
		t.Errorf("unexpected first stat: %v=%v", stats[0], stats[1])
	}
}
