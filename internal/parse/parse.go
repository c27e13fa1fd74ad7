// Package parse turns raw text into a validated sorted sequence and a target.
package parse

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rcliao/bsearch-viz/internal/model"
)

// DefaultDelimiter separates list elements unless configured otherwise.
const DefaultDelimiter = ","

// Options configures parsing behavior.
type Options struct {
	Delimiter string
}

// DefaultOptions returns default parsing options.
func DefaultOptions() Options {
	return Options{Delimiter: DefaultDelimiter}
}

// Input validates a sequence and a target. Checks run in a fixed order:
// blank list, blank target, integer parsing, empty list, sort order.
func Input(sequenceText, targetText string, opts Options) (model.Sequence, int, error) {
	if strings.TrimSpace(sequenceText) == "" {
		return nil, 0, newError(EmptyInput, "", -1)
	}
	if strings.TrimSpace(targetText) == "" {
		return nil, 0, newError(MissingTarget, "", -1)
	}

	seq, err := integers(sequenceText, opts)
	if err != nil {
		return nil, 0, err
	}
	target, err := Target(targetText)
	if err != nil {
		return nil, 0, err
	}

	if err := check(seq); err != nil {
		return nil, 0, err
	}
	return seq, target, nil
}

// Sequence validates a list on its own, for callers that have no target.
func Sequence(text string, opts Options) (model.Sequence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newError(EmptyInput, "", -1)
	}
	seq, err := integers(text, opts)
	if err != nil {
		return nil, err
	}
	if err := check(seq); err != nil {
		return nil, err
	}
	return seq, nil
}

// Target parses a single integer.
func Target(text string) (int, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0, newError(MissingTarget, "", -1)
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, intError(err, t, -1)
	}
	return n, nil
}

// Format joins a sequence with the configured delimiter.
func Format(seq model.Sequence, opts Options) string {
	delim := opts.Delimiter
	if delim == "" {
		delim = DefaultDelimiter
	}
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, delim)
}

func integers(text string, opts Options) (model.Sequence, error) {
	delim := opts.Delimiter
	if delim == "" {
		delim = DefaultDelimiter
	}

	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	tokens := strings.Split(text, delim)
	blank := 0
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			blank++
		}
	}
	if blank == len(tokens) {
		return model.Sequence{}, nil
	}

	seq := make(model.Sequence, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, intError(err, tok, i)
		}
		seq = append(seq, n)
	}
	return seq, nil
}

// intError classifies a strconv failure; values too large for an int keep
// the NotAnInteger kind but say so.
func intError(err error, value string, pos int) *ValidationError {
	e := newError(NotAnInteger, value, pos)
	e.OutOfRange = errors.Is(err, strconv.ErrRange)
	return e
}

// check enforces the non-empty and non-decreasing invariants.
func check(seq model.Sequence) error {
	if len(seq) == 0 {
		return newError(EmptyList, "", -1)
	}
	for i := 0; i+1 < len(seq); i++ {
		if seq[i] > seq[i+1] {
			return newError(NotSorted, strconv.Itoa(seq[i+1]), i+1)
		}
	}
	return nil
}
