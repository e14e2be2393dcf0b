package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/florian-runner/internal/storage"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sm, cmd
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, fakeGameID, "Fake Runner", testConfig())

	next, _ := m.Update(keyDown)
	m = next.(MenuModel)
	next, cmd := m.Update(keyEnter)
	m = next.(MenuModel)

	if m.Selected() != ChoiceScores {
		t.Errorf("Selected() = %v, expected scores", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting an entry should end the menu program")
	}
}

func TestMenuThemeToggle(t *testing.T) {
	m := NewMenuModel(nil, fakeGameID, "Fake Runner", testConfig())
	if !strings.Contains(m.View(), "Theme: light") {
		t.Fatal("menu should start with the light theme")
	}

	for i := 0; i < 2; i++ {
		next, _ := m.Update(keyDown)
		m = next.(MenuModel)
	}
	next, cmd := m.Update(keyEnter)
	m = next.(MenuModel)

	if !m.Config().Dark {
		t.Error("selecting the theme entry should switch to dark")
	}
	if cmd != nil || m.Selected() != ChoiceNone {
		t.Error("toggling the theme should stay in the menu")
	}
	if !strings.Contains(m.View(), "Theme: dark") {
		t.Error("menu label should follow the theme")
	}

	next, _ = m.Update(runeKey('t'))
	m = next.(MenuModel)
	if m.Config().Dark {
		t.Error("t should toggle the theme back")
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.Run{RunID: "x", GameID: fakeGameID, Score: 321}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(store, fakeGameID, "Fake Runner", testConfig())

	if !strings.Contains(m.View(), "Best: 321") {
		t.Errorf("menu should show the high score:\n%s", m.View())
	}
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), SessionOptions{GameID: fakeGameID, Player: "ana"})

	m, cmd := sendSession(t, m, keyEnter)
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatal("Play should start the game")
	}
	if cmd == nil {
		t.Error("starting the game should start its tick loop")
	}
	if m.gameModel.opts.Player != "ana" {
		t.Errorf("player = %q, expected the session user", m.gameModel.opts.Player)
	}

	m, _ = sendSession(t, m, runeKey('t'))
	m, _ = sendSession(t, m, keyEsc)
	if m.screen != screenMenu {
		t.Fatal("esc in game should return to the menu")
	}
	if !m.menu.Config().Dark {
		t.Error("theme chosen in game should carry back to the menu")
	}

	m, _ = sendSession(t, m, keyDown)
	m, _ = sendSession(t, m, keyEnter)
	if m.screen != screenScores || m.scoreboard == nil {
		t.Fatal("High Scores should open the scoreboard")
	}
	if !strings.Contains(m.View(), "no database") {
		t.Error("scoreboard without a store should say so")
	}

	m, _ = sendSession(t, m, keyEsc)
	if m.screen != screenMenu {
		t.Fatal("esc in scoreboard should return to the menu")
	}

	m, cmd = sendSession(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestSessionRemotePlayDisablesScreenshots(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0
	m := NewSessionModel(nil, cfg, SessionOptions{GameID: fakeGameID, Player: "ana", NoScreenshots: true})

	m, _ = sendSession(t, m, keyEnter)
	if m.gameModel == nil {
		t.Fatal("Play should start the game")
	}
	if !m.gameModel.opts.NoScreenshots {
		t.Error("remote sessions should not allow screenshots")
	}
	if m.gameModel.fixedSeed {
		t.Error("an unset seed should stay unfixed for the game")
	}
}

func TestSessionUnknownGame(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), SessionOptions{GameID: "missing"})

	m, _ = sendSession(t, m, keyEnter)

	if m.screen != screenMenu {
		t.Error("an unknown game should keep the session in the menu")
	}
	if !strings.Contains(m.View(), "Error:") {
		t.Error("the error should be shown under the menu")
	}
}

func TestScoreboardShowsRuns(t *testing.T) {
	store := openStore(t)
	for i, score := range []int{10, 40, 25} {
		run := storage.Run{RunID: string(rune('a' + i)), GameID: fakeGameID, Player: "bo", Score: score, ElapsedMs: 1500}
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, fakeGameID, "Fake Runner", 100, 30)
	view := m.View()

	if len(m.runs) != 3 || m.runs[0].Score != 40 {
		t.Fatalf("runs = %+v, expected best first", m.runs)
	}
	for _, want := range []string{"HIGH SCORES - Fake Runner", "Player", "bo", "1.5s", "Runs: 3", "Best: 40"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard view missing %q", want)
		}
	}

	narrow := NewScoreboardModel(store, fakeGameID, "Fake Runner", 40, 20)
	if strings.Contains(narrow.View(), "Player") {
		t.Error("narrow scoreboard should drop the player column")
	}
}
