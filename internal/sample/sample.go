// Package sample generates random sorted sequences for practice runs.
package sample

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/rcliao/bsearch-viz/internal/model"
)

const (
	Min         = 1
	Max         = 99
	DefaultSize = 10
)

// Sorted returns size distinct integers drawn from [Min, Max], ascending.
func Sorted(r *rand.Rand, size int) (model.Sequence, error) {
	if size < 1 || size > Max-Min+1 {
		return nil, fmt.Errorf("size must be between 1 and %d, got %d", Max-Min+1, size)
	}
	perm := r.Perm(Max - Min + 1)[:size]
	seq := make(model.Sequence, size)
	for i, p := range perm {
		seq[i] = p + Min
	}
	sort.Ints(seq)
	return seq, nil
}
