package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/florian-runner/internal/core"
	"github.com/vovakirdan/florian-runner/internal/storage"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceTheme
	ChoiceQuit
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	gameID    string
	title     string
	choices   []MenuChoice
	cursor    int
	width     int
	height    int
	highScore int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  MenuChoice
}

// NewMenuModel creates a new menu model for one game. The high score is
// read once from store when it is available.
func NewMenuModel(store *storage.Store, gameID, title string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		gameID:    gameID,
		title:     title,
		choices:   []MenuChoice{ChoicePlay, ChoiceScores, ChoiceTheme, ChoiceQuit},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if high, err := store.HighScore(gameID); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "t" {
		m.config.Dark = !m.config.Dark
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch choice := m.choices[m.cursor]; choice {
		case ChoiceTheme:
			m.config.Dark = !m.config.Dark
		case ChoiceQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.selected = choice
			return m, tea.Quit
		}
	}

	return m, nil
}

// label returns the display text of a menu entry.
func (m MenuModel) label(c MenuChoice) string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceScores:
		return "High Scores"
	case ChoiceTheme:
		if m.config.Dark {
			return "Theme: dark"
		}
		return "Theme: light"
	case ChoiceQuit:
		return "Quit"
	}
	return ""
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#16a34a"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, spaced(m.title), m.width))
	b.WriteString("\n\n")

	best := "No runs yet"
	if m.highScore > 0 {
		best = fmt.Sprintf("Best: %d", m.highScore)
	}
	b.WriteString(centerStyled(dimStyle, best, m.width))
	b.WriteString("\n\n")

	for i, c := range m.choices {
		if i == m.cursor {
			b.WriteString(centerStyled(activeStyle, "> "+m.label(c)+"  ", m.width))
		} else {
			b.WriteString(centerText("  "+m.label(c)+"  ", m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  T: Theme  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle, controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (resize and theme changes).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// spaced puts a space between letters of an upper-cased title.
func spaced(title string) string {
	return strings.Join(strings.Split(strings.ToUpper(title), ""), " ")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

func centerStyled(style lipgloss.Style, text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return style.Render(text)
	}
	return strings.Repeat(" ", (width-w)/2) + style.Render(text)
}
