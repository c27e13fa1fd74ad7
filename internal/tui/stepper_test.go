package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/bsearch-viz/internal/model"
	"github.com/rcliao/bsearch-viz/internal/search"
)

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func newStepper() Model {
	return New(search.Run(model.Sequence{1, 3, 5, 7, 9, 11, 13, 15}, 2))
}

func TestStepper_Navigation(t *testing.T) {
	m := newStepper()
	assert.Equal(t, 0, m.Pos())
	assert.Contains(t, m.View(), "Step 1 of 3")

	m, _ = press(t, m, "right")
	assert.Equal(t, 1, m.Pos())
	m, _ = press(t, m, "l")
	assert.Equal(t, 2, m.Pos())
	assert.Contains(t, m.View(), "Too small → search right")

	m, _ = press(t, m, "n")
	assert.True(t, m.AtEnd())
	assert.Contains(t, m.View(), "Final state")
	assert.Contains(t, m.View(), "Target 2 not found in the list.")

	// Clamped at the final state.
	m, _ = press(t, m, "right")
	assert.Equal(t, 3, m.Pos())

	m, _ = press(t, m, "left")
	assert.Equal(t, 2, m.Pos())
	m, _ = press(t, m, "g")
	assert.Equal(t, 0, m.Pos())
	m, _ = press(t, m, "h")
	assert.Equal(t, 0, m.Pos())
	m, _ = press(t, m, "G")
	assert.True(t, m.AtEnd())
}

func TestStepper_Quit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		_, cmd := press(t, newStepper(), k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestStepper_WindowSize(t *testing.T) {
	next, _ := newStepper().Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m := next.(Model)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 20, m.trace.Height)
}

func TestStepper_TraceListMarksCurrent(t *testing.T) {
	m := newStepper()
	assert.Contains(t, m.traceList(), "▶ 1.")
	m, _ = press(t, m, "G")
	assert.Contains(t, m.traceList(), "▶ Target 2 not found")
}
