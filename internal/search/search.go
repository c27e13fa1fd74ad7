// Package search runs binary search and records every decision it makes.
package search

import (
	"math/bits"

	"github.com/rcliao/bsearch-viz/internal/model"
)

// Run searches seq for target. seq must be non-empty and non-decreasing;
// the caller validates it (see package parse). The returned Result owns a
// copy of seq, so later changes to seq do not affect it.
func Run(seq model.Sequence, target int) *model.Result {
	r := &model.Result{
		Sequence: append(model.Sequence(nil), seq...),
		Target:   target,
		Index:    model.NotFound,
		Trace:    []model.Step{},
	}

	low, high := 0, len(seq)-1
	for low <= high {
		mid := low + (high-low)/2
		r.Comparisons++

		step := model.Step{
			Number: len(r.Trace) + 1,
			Window: model.Window{Low: low, High: high, Mid: mid},
			Value:  seq[mid],
		}

		switch v := seq[mid]; {
		case v == target:
			step.Outcome = model.Found
		case v < target:
			step.Outcome = model.SearchRight
			low = mid + 1
		default:
			step.Outcome = model.SearchLeft
			high = mid - 1
		}
		r.Trace = append(r.Trace, step)

		if step.Outcome == model.Found {
			r.Found = true
			r.Index = mid
			break
		}
	}

	r.Low, r.High = low, high
	return r
}

// MaxComparisons is the most comparisons a search over n elements can take:
// ceil(log2(n+1)).
func MaxComparisons(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}
