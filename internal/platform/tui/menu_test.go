package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-arcade/internal/config"
	"github.com/vovakirdan/sky-arcade/internal/core"
	"github.com/vovakirdan/sky-arcade/internal/registry"
)

// lastOptions records what the session passed to the fake factory.
var lastOptions registry.Options

func init() {
	registry.Register("fake", func(opts registry.Options) (registry.Game, error) {
		lastOptions = opts
		return &fakeGame{}, nil
	})
}

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return mm
}

func TestMenuListsRegisteredGames(t *testing.T) {
	m := NewMenuModel(Env{}, core.DefaultConfig())
	if !strings.Contains(m.View(), "Fake") {
		t.Errorf("menu view does not list the fake game:\n%s", m.View())
	}
}

func TestMenuDifficulty(t *testing.T) {
	m := NewMenuModel(Env{Options: registry.Options{Difficulty: "hard"}}, core.DefaultConfig())
	if m.Difficulty() != config.DifficultyHard {
		t.Fatalf("Difficulty() = %q, want hard", m.Difficulty())
	}

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("after right: %q, want fixed", m.Difficulty())
	}
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("right should wrap to easy, got %q", m.Difficulty())
	}
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("left should wrap back to fixed, got %q", m.Difficulty())
	}
}

func TestMenuUnknownDifficultyFallsBack(t *testing.T) {
	m := NewMenuModel(Env{Options: registry.Options{Difficulty: "brutal"}}, core.DefaultConfig())
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("Difficulty() = %q, want the first preset", m.Difficulty())
	}
}

func TestSessionStartsGameWithDifficulty(t *testing.T) {
	s := NewSessionModel(Env{}, core.DefaultConfig())

	// Move the cursor onto the fake game.
	for i, item := range s.menu.items {
		if item.GameID == "fake" {
			s.menu.cursor = i
		}
	}
	s.menu.preset = 2 // hard

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)

	if s.current != screenGame || s.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}
	if lastOptions.Difficulty != "hard" {
		t.Errorf("factory got difficulty %q, want hard", lastOptions.Difficulty)
	}

	// Pause, then leave with esc.
	next, _ = s.Update(runeKey("p"))
	s = next.(SessionModel)
	next, _ = s.Update(TickMsg(testStart))
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEscape})
	s = next.(SessionModel)

	if s.current != screenMenu {
		t.Errorf("esc on a paused game should return to the menu, current = %v", s.current)
	}
	if s.menu.Difficulty() != config.DifficultyHard {
		t.Errorf("menu difficulty = %q after returning, want hard", s.menu.Difficulty())
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	s := NewSessionModel(Env{}, core.DefaultConfig())
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.current != screenScores {
		t.Fatal("tab should open the scoreboard")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEscape})
	s = next.(SessionModel)
	if s.current != screenMenu || s.quitting {
		t.Error("esc on the scoreboard should return to the menu")
	}
}
