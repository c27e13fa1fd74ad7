package store

import (
	"context"

	"github.com/rcliao/bsearch-viz/internal/model"
)

// ExportAll returns every live lesson version, oldest first within a name.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.Lesson, error) {
	return s.query(ctx, `SELECT `+lessonColumns+` FROM lessons
		WHERE deleted_at IS NULL ORDER BY name, version`)
}

// Import stores lessons from an export. Each entry becomes a new version of
// its name, so re-importing preserves order but not the original ids.
func (s *SQLiteStore) Import(ctx context.Context, lessons []model.Lesson) (int, error) {
	imported := 0
	for _, l := range lessons {
		_, err := s.Put(ctx, PutParams{
			Name:   l.Name,
			Values: l.Values,
			Note:   l.Note,
		})
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
