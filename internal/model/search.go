// Package model defines the core binary search data types.
package model

// NotFound is the Index of a Result whose target is absent.
const NotFound = -1

// Sequence is an ordered list of integers. Validated sequences are non-decreasing.
type Sequence []int

// Outcome is the decision taken after inspecting the middle element.
type Outcome string

const (
	Found       Outcome = "found"
	SearchRight Outcome = "search_right"
	SearchLeft  Outcome = "search_left"
)

// Window is the active index range [Low, High] and the inspected index Mid.
type Window struct {
	Low  int `json:"low"`
	High int `json:"high"`
	Mid  int `json:"mid"`
}

// Contains reports whether index i lies inside [Low, High].
func (w Window) Contains(i int) bool {
	return w.Low <= i && i <= w.High
}

// Step is a snapshot of one loop iteration. Window holds the bounds as they
// were when the iteration started.
type Step struct {
	Number  int     `json:"step"`
	Window  Window  `json:"window"`
	Value   int     `json:"value"`
	Outcome Outcome `json:"outcome"`
}

// Result is the outcome of one search run together with its full trace.
type Result struct {
	Sequence    Sequence `json:"sequence"`
	Target      int      `json:"target"`
	Found       bool     `json:"found"`
	Index       int      `json:"index"`
	Comparisons int      `json:"comparisons"`
	Trace       []Step   `json:"trace"`
	Low         int      `json:"low"`
	High        int      `json:"high"`
}

// FinalState is what a renderer needs to draw the end of a search: the single
// highlighted index when found, or the whole sequence excluded when not.
type FinalState struct {
	Highlight int  `json:"highlight"`
	Excluded  bool `json:"excluded"`
}

// Final derives the final highlight state.
func (r *Result) Final() FinalState {
	if r.Found {
		return FinalState{Highlight: r.Index}
	}
	return FinalState{Highlight: NotFound, Excluded: true}
}
