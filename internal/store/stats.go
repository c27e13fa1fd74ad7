package store

import (
	"context"
	"fmt"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string        `json:"db_path"`
	DBSizeBytes   int64         `json:"db_size_bytes"`
	TotalVersions int           `json:"total_versions"`
	ActiveLessons int           `json:"active_lessons"`
	TotalUses     int           `json:"total_uses"`
	Lessons       []LessonStats `json:"lessons"`
}

// LessonStats holds per-lesson counts.
type LessonStats struct {
	Name     string `json:"name"`
	Versions int    `json:"versions"`
	Uses     int    `json:"uses"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM lessons`, &st.TotalVersions},
		{`SELECT COUNT(DISTINCT name) FROM lessons WHERE deleted_at IS NULL`, &st.ActiveLessons},
		{`SELECT COALESCE(SUM(use_count), 0) FROM lessons WHERE deleted_at IS NULL`, &st.TotalUses},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return st, fmt.Errorf("stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, COUNT(*) AS versions, COALESCE(SUM(use_count), 0) AS uses
		FROM lessons WHERE deleted_at IS NULL
		GROUP BY name ORDER BY uses DESC, name`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ls LessonStats
		if err := rows.Scan(&ls.Name, &ls.Versions, &ls.Uses); err != nil {
			return st, err
		}
		st.Lessons = append(st.Lessons, ls)
	}

	return st, rows.Err()
}
