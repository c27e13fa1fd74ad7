// Package store provides the lesson deck interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/bsearch-viz/internal/model"
)

// PutParams holds parameters for saving a lesson.
type PutParams struct {
	Name   string
	Values model.Sequence
	Note   string
}

// GetParams holds parameters for retrieving a lesson.
type GetParams struct {
	Name    string
	History bool
	Version int // 0 means latest
}

// ListParams holds parameters for listing lessons.
type ListParams struct {
	Limit int
}

// RmParams holds parameters for deleting a lesson.
type RmParams struct {
	Name        string
	AllVersions bool
	Hard        bool
}

// Store defines the lesson storage interface.
type Store interface {
	// Put saves a lesson, creating a new version when the name exists.
	Put(ctx context.Context, p PutParams) (*model.Lesson, error)

	// Get retrieves a lesson by name.
	// Returns a slice (single element normally, multiple with History=true).
	Get(ctx context.Context, p GetParams) ([]model.Lesson, error)

	// List lists the latest version of every lesson.
	List(ctx context.Context, p ListParams) ([]model.Lesson, error)

	// Rm soft-deletes (or hard-deletes) a lesson.
	Rm(ctx context.Context, p RmParams) error

	// Touch records that the lesson version with the given id was loaded
	// for a search run.
	Touch(ctx context.Context, id string) error

	// Close closes the store.
	Close() error
}
