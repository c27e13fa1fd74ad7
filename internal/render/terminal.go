package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/bsearch-viz/internal/model"
)

// Colors of the cell strip.
var (
	MidColor      = lipgloss.Color("#FFA500")
	ActiveColor   = lipgloss.Color("#ADD8E6")
	ExcludedColor = lipgloss.Color("#E0E0E0")
	MutedText     = lipgloss.Color("#888888")
	AccentColor   = lipgloss.Color("#4CAF50")
)

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Mid      lipgloss.Style
	Active   lipgloss.Style
	Excluded lipgloss.Style
	Header   lipgloss.Style
	Step     lipgloss.Style
	Muted    lipgloss.Style
	Found    lipgloss.Style
	Missing  lipgloss.Style
}

// DefaultStyles mirrors the legend: orange middle, blue active range, grey
// excluded elements.
func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().Padding(0, 1).MarginRight(1).Align(lipgloss.Center)
	return Styles{
		Mid:      cell.Background(MidColor).Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
		Active:   cell.Background(ActiveColor).Foreground(lipgloss.Color("#000000")),
		Excluded: cell.Background(ExcludedColor).Foreground(MutedText),
		Header:   lipgloss.NewStyle().Bold(true),
		Step: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(AccentColor).
			PaddingLeft(1).
			MarginBottom(1),
		Muted:   lipgloss.NewStyle().Foreground(MutedText),
		Found:   lipgloss.NewStyle().Bold(true).Foreground(AccentColor),
		Missing: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E53935")),
	}
}

// Terminal renders results as styled text.
type Terminal struct {
	Styles Styles
}

// NewTerminal returns a Terminal with the default styles.
func NewTerminal() *Terminal {
	return &Terminal{Styles: DefaultStyles()}
}

// Strip renders one row of cells. All cells share the width of the widest value.
func (t *Terminal) Strip(seq model.Sequence, cells []Cell) string {
	width := 0
	for _, v := range seq {
		if w := len(strconv.Itoa(v)); w > width {
			width = w
		}
	}

	parts := make([]string, len(seq))
	for i, v := range seq {
		st := t.Styles.Excluded
		switch cells[i] {
		case Mid:
			st = t.Styles.Mid
		case Active:
			st = t.Styles.Active
		}
		parts[i] = st.Width(width + 2).Render(strconv.Itoa(v))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Step renders a single trace step with its narration.
func (t *Terminal) Step(r *model.Result, s model.Step) string {
	var sb strings.Builder
	sb.WriteString(t.Styles.Header.Render(fmt.Sprintf("Step %d:", s.Number)))
	sb.WriteString(" ")
	sb.WriteString(Explain(s, r.Target))
	sb.WriteString("\n")
	sb.WriteString(t.Styles.Muted.Render(fmt.Sprintf("window [%d..%d]", s.Window.Low, s.Window.High)))
	sb.WriteString("\n")
	sb.WriteString(t.Strip(r.Sequence, StepCells(len(r.Sequence), s.Window)))
	return t.Styles.Step.Render(sb.String())
}

// Final renders the final state strip and the summary line.
func (t *Terminal) Final(r *model.Result) string {
	msg := t.Styles.Missing.Render("✗ " + Summary(r))
	if r.Found {
		msg = t.Styles.Found.Render("✓ " + Summary(r))
	}
	return msg + "\n" + t.Strip(r.Sequence, FinalCells(r))
}

// Result renders the whole trace followed by the final state.
func (t *Terminal) Result(r *model.Result) string {
	var sb strings.Builder
	for _, s := range r.Trace {
		sb.WriteString(t.Step(r, s))
		sb.WriteString("\n")
	}
	sb.WriteString(t.Final(r))
	sb.WriteString("\n")
	sb.WriteString(t.Styles.Muted.Render(Comparisons(r)))
	sb.WriteString("\n")
	return sb.String()
}

// Legend explains the cell colors.
func (t *Terminal) Legend() string {
	return strings.Join([]string{
		t.Styles.Mid.Render(" ") + " Middle element",
		t.Styles.Active.Render(" ") + " Active search range",
		t.Styles.Excluded.Render(" ") + " Excluded",
	}, "\n")
}
