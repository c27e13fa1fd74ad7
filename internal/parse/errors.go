package parse

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure.
type Kind string

const (
	EmptyInput    Kind = "empty_input"
	MissingTarget Kind = "missing_target"
	NotAnInteger  Kind = "not_an_integer"
	EmptyList     Kind = "empty_list"
	NotSorted     Kind = "not_sorted"
)

// Sentinels for errors.Is, one per Kind.
var (
	ErrEmptyInput    = errors.New("please enter a list of integers")
	ErrMissingTarget = errors.New("please enter a target value")
	ErrNotAnInteger  = errors.New("please make sure all values are integers")
	ErrEmptyList     = errors.New("the list cannot be empty")
	ErrNotSorted     = errors.New("the list must already be sorted from smallest to biggest")
)

var sentinels = map[Kind]error{
	EmptyInput:    ErrEmptyInput,
	MissingTarget: ErrMissingTarget,
	NotAnInteger:  ErrNotAnInteger,
	EmptyList:     ErrEmptyList,
	NotSorted:     ErrNotSorted,
}

// ValidationError is a user-facing input failure. Position is the 0-based
// index of the offending list element, or -1 when it refers to the target
// or to the input as a whole.
type ValidationError struct {
	Kind       Kind   `json:"kind"`
	Value      string `json:"value,omitempty"`
	Position   int    `json:"position"`
	OutOfRange bool   `json:"out_of_range,omitempty"`
}

func newError(kind Kind, value string, pos int) *ValidationError {
	return &ValidationError{Kind: kind, Value: value, Position: pos}
}

func (e *ValidationError) Error() string {
	base := sentinels[e.Kind].Error()
	switch e.Kind {
	case NotAnInteger:
		if e.OutOfRange {
			if e.Position >= 0 {
				return fmt.Sprintf("%s (%s at position %d is out of range)", base, e.Value, e.Position+1)
			}
			return fmt.Sprintf("%s (target %s is out of range)", base, e.Value)
		}
		if e.Position >= 0 {
			return fmt.Sprintf("%s (%q at position %d is not an integer)", base, e.Value, e.Position+1)
		}
		return fmt.Sprintf("%s (target %q is not an integer)", base, e.Value)
	case NotSorted:
		return fmt.Sprintf("%s (%s at position %d is smaller than the value before it)", base, e.Value, e.Position+1)
	}
	return base
}

// Unwrap exposes the per-kind sentinel.
func (e *ValidationError) Unwrap() error {
	return sentinels[e.Kind]
}

// KindOf returns the Kind of a validation error, or "" for anything else.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}
