package preview

import (
	"testing"

	"capsection/internal/manufacturing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModel_FocusCycles(t *testing.T) {
	m := NewModel(defaultView(), 0)
	assert.Equal(t, 0, m.Focus())

	tab := tea.KeyMsg{Type: tea.KeyTab}
	m, _ = update(t, m, tab)
	assert.Equal(t, 1, m.Focus())
	m, _ = update(t, m, tab)
	m, _ = update(t, m, tab)
	assert.Equal(t, 0, m.Focus())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.Focus())
}

func TestModel_EmptyHasNoFocus(t *testing.T) {
	v := manufacturing.BuildView(manufacturing.Props{Capabilities: []manufacturing.Capability{}}, fixedNow)
	m := NewModel(v, 80)
	assert.Equal(t, -1, m.Focus())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, -1, m.Focus())
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(defaultView(), 80)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowResize(t *testing.T) {
	m := NewModel(defaultView(), 0)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.Nil(t, cmd)
	assert.Equal(t, 60, m.viewport.Width)
	assert.Less(t, m.viewport.Height, 30)

	out := m.View()
	assert.Contains(t, out, "TECHNICAL EXPERTISE")
	assert.Contains(t, out, "next card")
}

func TestModel_Init(t *testing.T) {
	assert.Nil(t, NewModel(defaultView(), 0).Init())
}

func TestKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()
	assert.Len(t, k.ShortHelp(), 4)
	assert.Len(t, k.FullHelp(), 2)
}
