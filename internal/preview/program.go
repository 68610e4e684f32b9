package preview

import (
	"capsection/internal/manufacturing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap holds the bindings of the interactive preview.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Up       key.Binding
	Down     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the bindings used by the interactive preview.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next card"),
		),
		Previous: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous card"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Down, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Previous}, {k.Up, k.Down, k.Quit}}
}

// Model is the bubbletea model of the interactive preview.
type Model struct {
	view     manufacturing.View
	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	focus    int
	width    int
}

// NewModel builds a preview model for v. The initial width is used until the
// terminal reports its size.
func NewModel(v manufacturing.View, width int) Model {
	if width <= 0 {
		width = DefaultWidth
	}
	focus := -1
	if len(v.Cards) > 0 {
		focus = 0
	}
	m := Model{
		view:     v,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(width, 24),
		focus:    focus,
		width:    width,
	}
	m.refresh()
	return m
}

// Focus returns the index of the highlighted card, or -1.
func (m Model) Focus() int { return m.focus }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-lipgloss.Height(m.helpView()), 1)
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Previous):
			m.cycle(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.helpView())
}

func (m *Model) cycle(delta int) {
	n := len(m.view.Cards)
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(Render(m.view, Options{Width: m.width, Focus: m.focus}))
}

func (m Model) helpView() string {
	return helpStyle.Render(m.help.View(m.keys))
}

// NewProgram wraps the model in a full-screen bubbletea program.
func NewProgram(v manufacturing.View, width int) *tea.Program {
	return tea.NewProgram(NewModel(v, width), tea.WithAltScreen())
}
