package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-arcade/internal/core"
	"github.com/vovakirdan/sky-arcade/internal/registry"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenScores
	screenGame
)

// SessionModel manages the full arcade session flow: menu -> game -> menu,
// with the scoreboard reachable from the menu. It is the top-level model
// for SSH sessions.
type SessionModel struct {
	env        Env
	config     core.RuntimeConfig
	current    screenKind
	menu       MenuModel
	scoreboard ScoreboardModel
	gameModel  *GameModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env Env, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		env:    env,
		config: cfg,
		menu:   NewMenuModel(env, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode. The menu ends its own
// program with tea.Quit when used standalone, so those commands are
// dropped here.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.env, m.config.ScreenW, m.config.ScreenH)
		m.current = screenScores
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		opts := m.env.Options
		opts.Difficulty = string(m.menu.Difficulty())

		game, err := registry.Create(m.menu.Selected().GameID, opts)
		if err != nil {
			m.env.logger().Warn("could not start game", "game", m.menu.Selected().GameID, "error", err)
			m.menu = NewMenuModel(m.withDifficulty(), m.config)
			return m, nil
		}

		gameModel := NewGameModel(game, m.config, m.env)
		m.gameModel = &gameModel
		m.current = screenGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.returnToMenu()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		return m.returnToMenu()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// returnToMenu rebuilds the menu so best scores are fresh, keeping the
// chosen difficulty.
func (m SessionModel) returnToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.withDifficulty(), m.config)
	m.gameModel = nil
	m.current = screenMenu
	return m, m.menu.Init()
}

func (m SessionModel) withDifficulty() Env {
	env := m.env
	env.Options.Difficulty = string(m.menu.Difficulty())
	return env
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
