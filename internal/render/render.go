// Package render projects search results into displayable forms: per-cell
// states, explanation text, a colored terminal strip and an HTML page.
package render

import (
	"fmt"

	"github.com/rcliao/bsearch-viz/internal/model"
	"github.com/rcliao/bsearch-viz/internal/search"
)

// Cell is the display state of one sequence element.
type Cell int

const (
	Excluded Cell = iota
	Active
	Mid
)

func (c Cell) String() string {
	switch c {
	case Active:
		return "active"
	case Mid:
		return "mid"
	}
	return "excluded"
}

// StepCells marks the inspected index Mid, the rest of [Low, High] Active
// and everything outside the window Excluded.
func StepCells(n int, w model.Window) []Cell {
	cells := make([]Cell, n)
	for i := range cells {
		switch {
		case i == w.Mid:
			cells[i] = Mid
		case w.Contains(i):
			cells[i] = Active
		}
	}
	return cells
}

// FinalCells highlights only the found index, or excludes every cell when
// the target is absent.
func FinalCells(r *model.Result) []Cell {
	cells := make([]Cell, len(r.Sequence))
	if f := r.Final(); !f.Excluded {
		cells[f.Highlight] = Mid
	}
	return cells
}

// Verdict describes an outcome in words.
func Verdict(o model.Outcome) string {
	switch o {
	case model.Found:
		return "Found!"
	case model.SearchRight:
		return "Too small → search right"
	case model.SearchLeft:
		return "Too large → search left"
	}
	return string(o)
}

// Explain is the one-line narration of a step.
func Explain(s model.Step, target int) string {
	return fmt.Sprintf("Checking index %d → value %d | Target = %d → %s",
		s.Window.Mid, s.Value, target, Verdict(s.Outcome))
}

// Summary is the final result message.
func Summary(r *model.Result) string {
	if r.Found {
		return fmt.Sprintf("Target %d found at index %d.", r.Target, r.Index)
	}
	return fmt.Sprintf("Target %d not found in the list.", r.Target)
}

// Comparisons reports the comparison count against the worst case.
func Comparisons(r *model.Result) string {
	return fmt.Sprintf("%d comparison(s), at most %d for %d elements",
		r.Comparisons, search.MaxComparisons(len(r.Sequence)), len(r.Sequence))
}
