package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/sky-arcade/internal/core"
	"github.com/vovakirdan/sky-arcade/internal/registry"
	"github.com/vovakirdan/sky-arcade/internal/storage"
)

// Env carries the collaborators shared by every model of one terminal session.
type Env struct {
	Store   *storage.Store // nil runs without persistence
	Logger  *log.Logger    // nil discards logs
	Player  string         // recorded with each run
	Palette *Palette       // nil uses the default renderer
	Options registry.Options
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

func (e Env) palette() *Palette {
	if e.Palette == nil {
		return defaultPalette
	}
	return e.Palette
}

// runStatser is implemented by games that report extra per-run numbers.
type runStatser interface {
	RunStats() []any
}

// GameModel drives one game: it maps keys to input frames, steps the
// simulation on every tick and records the run when it ends.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	env        Env
	logger     *log.Logger
	palette    *Palette
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	hold       *HoldTracker
	gameState  core.GameState
	keyMapper  *KeyMapper
	now        func() time.Time

	runID      uuid.UUID
	elapsed    time.Duration // simulated time of the current run
	standalone bool          // quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for a game inside a menu session.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, env Env) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		env:        env,
		logger:     env.logger().With("game", game.ID()),
		palette:    env.palette(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		hold:       NewHoldTracker(DefaultHoldWindow),
		keyMapper:  NewKeyMapper(),
		now:        time.Now,
		runID:      uuid.New(),
	}
}

// NewStandaloneModel creates a model that quits the program when the
// player leaves the game.
func NewStandaloneModel(game registry.Game, cfg core.RuntimeConfig, env Env) GameModel {
	m := NewGameModel(game, cfg, env)
	m.standalone = true
	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("run started", "run", m.runID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles incoming messages and returns the updated model.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The simulation lives in world units, only the view follows the terminal.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.IsBackKey(msg) && (m.gameState.GameOver || m.gameState.Paused) {
		return m.leave()
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, m.now())
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	m.hold.Apply(&m.inputFrame, now)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !wasOver && !m.gameState.Paused {
		m.elapsed += m.config.TickDuration()
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true

		if registry.ExitsOnGameOver(m.game) {
			return m.leave()
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// leave ends the game view: back to the menu, or out of the program.
func (m GameModel) leave() (tea.Model, tea.Cmd) {
	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	m.backToMenu = true
	return m, nil
}

func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.hold.Release()
	m.runID = uuid.New()
	m.elapsed = 0
	m.scoreSaved = false
	m.logger.Debug("run restarted", "run", m.runID, "seed", m.config.Seed)
}

// saveRun records the finished run. Storage errors never stop the game.
func (m *GameModel) saveRun() {
	fields := []any{
		"run", m.runID,
		"score", m.gameState.Score,
		"duration", m.elapsed,
	}
	if rs, ok := m.game.(runStatser); ok {
		fields = append(fields, rs.RunStats()...)
	}

	if m.env.Store == nil {
		m.logger.Info("run finished", fields...)
		return
	}

	_, err := m.env.Store.RecordRun(storage.Run{
		RunID:    m.runID,
		GameID:   m.game.ID(),
		Player:   m.env.Player,
		Score:    m.gameState.Score,
		Duration: m.elapsed,
	})
	if err != nil {
		m.logger.Warn("could not save score", append(fields, "error", err)...)
		return
	}
	m.logger.Info("score saved", fields...)
}

// saveScreenshot writes the current screen as plain text under
// ~/.sky-arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".sky-arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// State returns the last known game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Elapsed returns the simulated duration of the current run.
func (m GameModel) Elapsed() time.Duration {
	return m.elapsed
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Result summarizes a finished standalone run.
type Result struct {
	Score    int
	GameOver bool
	Elapsed  time.Duration
}

// Run starts a standalone game in the alternate screen and blocks until
// the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, env Env) (Result, error) {
	model := NewStandaloneModel(game, cfg, env)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return Result{}, nil
	}
	return Result{
		Score:    m.gameState.Score,
		GameOver: m.gameState.GameOver,
		Elapsed:  m.elapsed,
	}, nil
}
