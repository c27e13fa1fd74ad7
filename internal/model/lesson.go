package model

import "time"

// Lesson is a named, validated sequence saved in the lesson deck.
type Lesson struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Values     Sequence   `json:"values"`
	Note       string     `json:"note,omitempty"`
	Version    int        `json:"version"`
	Supersedes string     `json:"supersedes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	UseCount   int        `json:"use_count"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}
