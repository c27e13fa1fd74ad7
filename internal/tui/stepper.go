// Package tui provides an interactive step-through of a search trace.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/bsearch-viz/internal/model"
	"github.com/rcliao/bsearch-viz/internal/render"
)

const helpText = "←/h prev • →/l next • g first • G final • q quit"

// Model walks a precomputed Result one step at a time. Positions 0..len(Trace)-1
// show a step; position len(Trace) shows the final state.
type Model struct {
	result *model.Result
	term   *render.Terminal
	pos    int
	trace  viewport.Model
	width  int
}

// New returns a stepper positioned on the first step.
func New(r *model.Result) Model {
	m := Model{
		result: r,
		term:   render.NewTerminal(),
		trace:  viewport.New(80, 8),
	}
	m.trace.SetContent(m.traceList())
	return m
}

// Pos is the current position; Pos() == len(Trace) means the final state.
func (m Model) Pos() int { return m.pos }

// AtEnd reports whether the final state is showing.
func (m Model) AtEnd() bool { return m.pos >= len(m.result.Trace) }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "right", "l", "n", " ":
			m.move(m.pos + 1)
		case "left", "h", "p":
			m.move(m.pos - 1)
		case "home", "g":
			m.move(0)
		case "end", "G":
			m.move(len(m.result.Trace))
		default:
			var cmd tea.Cmd
			m.trace, cmd = m.trace.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.trace.Width = msg.Width
		h := msg.Height - 10
		if h < 3 {
			h = 3
		}
		m.trace.Height = h
		m.trace.SetContent(m.traceList())
		return m, nil
	}

	return m, nil
}

func (m *Model) move(pos int) {
	if pos < 0 {
		pos = 0
	}
	if last := len(m.result.Trace); pos > last {
		pos = last
	}
	m.pos = pos
	m.trace.SetContent(m.traceList())
	if pos < len(m.result.Trace) {
		m.trace.SetYOffset(pos - m.trace.Height/2)
	} else {
		m.trace.GotoBottom()
	}
}

func (m Model) View() string {
	r := m.result
	st := m.term.Styles

	var sb strings.Builder
	sb.WriteString(st.Header.Render("Binary Search Visualizer"))
	sb.WriteString(st.Muted.Render(fmt.Sprintf("  target %d, %d elements", r.Target, len(r.Sequence))))
	sb.WriteString("\n\n")

	if m.AtEnd() {
		sb.WriteString(st.Header.Render("Final state"))
		sb.WriteString("\n")
		sb.WriteString(m.term.Final(r))
		sb.WriteString("\n")
		sb.WriteString(st.Muted.Render(render.Comparisons(r)))
	} else {
		s := r.Trace[m.pos]
		sb.WriteString(st.Header.Render(fmt.Sprintf("Step %d of %d", s.Number, len(r.Trace))))
		sb.WriteString("\n")
		sb.WriteString(render.Explain(s, r.Target))
		sb.WriteString("\n")
		sb.WriteString(m.term.Strip(r.Sequence, render.StepCells(len(r.Sequence), s.Window)))
	}
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).Render(m.trace.View()))
	sb.WriteString("\n")
	sb.WriteString(st.Muted.Render(helpText))
	return sb.String()
}

// traceList is the viewport content: every step with the current one marked.
func (m Model) traceList() string {
	r := m.result
	lines := make([]string, 0, len(r.Trace)+1)
	for i, s := range r.Trace {
		marker := "  "
		if i == m.pos {
			marker = "▶ "
		}
		lines = append(lines, fmt.Sprintf("%s%d. [%d..%d] %s",
			marker, s.Number, s.Window.Low, s.Window.High, render.Explain(s, r.Target)))
	}
	marker := "  "
	if m.AtEnd() {
		marker = "▶ "
	}
	lines = append(lines, marker+render.Summary(r))
	return strings.Join(lines, "\n")
}

// Run starts the interactive program and blocks until the user quits.
func Run(r *model.Result) error {
	p := tea.NewProgram(New(r), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
