package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/bsearch-viz/internal/model"
)

// ErrNotFound is returned when no live lesson matches a name.
var ErrNotFound = errors.New("lesson not found")

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS lessons (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		vals         TEXT NOT NULL,
		note         TEXT,
		version      INTEGER NOT NULL DEFAULT 1,
		supersedes   TEXT,
		created_at   TEXT NOT NULL,
		deleted_at   TEXT,
		use_count    INTEGER NOT NULL DEFAULT 0,
		last_used_at TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_lessons_name ON lessons(name);
	CREATE INDEX IF NOT EXISTS idx_lessons_created ON lessons(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_lessons_deleted ON lessons(deleted_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

const lessonColumns = `id, name, vals, note, version, supersedes, created_at, deleted_at, use_count, last_used_at`

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*model.Lesson, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("lesson name is required")
	}
	if len(p.Values) == 0 {
		return nil, fmt.Errorf("lesson %q has no values", p.Name)
	}

	now := time.Now().UTC()
	id := s.newID()

	vals, err := json.Marshal(p.Values)
	if err != nil {
		return nil, fmt.Errorf("encode values: %w", err)
	}

	var notePtr *string
	if p.Note != "" {
		notePtr = &p.Note
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Check for existing latest version
	var prevID string
	var prevVersion int
	err = tx.QueryRowContext(ctx,
		`SELECT id, version FROM lessons
		 WHERE name = ? AND deleted_at IS NULL
		 ORDER BY version DESC LIMIT 1`, p.Name).Scan(&prevID, &prevVersion)

	version := 1
	var supersedes *string
	switch {
	case err == nil:
		version = prevVersion + 1
		supersedes = &prevID
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("lookup lesson: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO lessons (id, name, vals, note, version, supersedes, created_at, use_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 0)`,
		id, p.Name, string(vals), notePtr, version, supersedes, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert lesson: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	l := &model.Lesson{
		ID:        id,
		Name:      p.Name,
		Values:    append(model.Sequence(nil), p.Values...),
		Note:      p.Note,
		Version:   version,
		CreatedAt: now,
	}
	if supersedes != nil {
		l.Supersedes = *supersedes
	}
	return l, nil
}

func (s *SQLiteStore) Get(ctx context.Context, p GetParams) ([]model.Lesson, error) {
	var query string
	var args []interface{}

	switch {
	case p.History:
		query = `SELECT ` + lessonColumns + ` FROM lessons
				 WHERE name = ? AND deleted_at IS NULL ORDER BY version DESC`
		args = []interface{}{p.Name}
	case p.Version > 0:
		query = `SELECT ` + lessonColumns + ` FROM lessons
				 WHERE name = ? AND version = ? AND deleted_at IS NULL LIMIT 1`
		args = []interface{}{p.Name, p.Version}
	default:
		query = `SELECT ` + lessonColumns + ` FROM lessons
				 WHERE name = ? AND deleted_at IS NULL ORDER BY version DESC LIMIT 1`
		args = []interface{}{p.Name}
	}

	lessons, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p.Name)
	}

	return lessons, nil
}

// Touch records that a lesson was loaded for a search run.
func (s *SQLiteStore) Touch(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`UPDATE lessons SET use_count = use_count + 1, last_used_at = ? WHERE id = ?`, now, id)
	return err
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Lesson, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	// Only the latest live version of each name
	query := `
		SELECT l.id, l.name, l.vals, l.note, l.version, l.supersedes,
		       l.created_at, l.deleted_at, l.use_count, l.last_used_at
		FROM lessons l
		INNER JOIN (
			SELECT name, MAX(version) AS max_ver
			FROM lessons WHERE deleted_at IS NULL
			GROUP BY name
		) latest ON l.name = latest.name AND l.version = latest.max_ver
		WHERE l.deleted_at IS NULL
		ORDER BY l.created_at DESC, l.name
		LIMIT ?`

	return s.query(ctx, query, limit)
}

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	if p.Hard {
		if p.AllVersions {
			res, err := s.db.ExecContext(ctx, `DELETE FROM lessons WHERE name = ?`, p.Name)
			if err != nil {
				return err
			}
			return requireAffected(res, p.Name)
		}
		id, err := s.latestID(ctx, p.Name)
		if err != nil {
			return err
		}
		_, err = s.db.ExecContext(ctx, `DELETE FROM lessons WHERE id = ?`, id)
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if p.AllVersions {
		res, err := s.db.ExecContext(ctx,
			`UPDATE lessons SET deleted_at = ? WHERE name = ? AND deleted_at IS NULL`, now, p.Name)
		if err != nil {
			return err
		}
		return requireAffected(res, p.Name)
	}

	// Soft-delete latest version only
	id, err := s.latestID(ctx, p.Name)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `UPDATE lessons SET deleted_at = ? WHERE id = ?`, now, id)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) latestID(ctx context.Context, name string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM lessons WHERE name = ? AND deleted_at IS NULL ORDER BY version DESC LIMIT 1`,
		name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return id, err
}

func requireAffected(res sql.Result, name string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

func (s *SQLiteStore) query(ctx context.Context, query string, args ...interface{}) ([]model.Lesson, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []model.Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanLesson(row scanner) (model.Lesson, error) {
	var l model.Lesson
	var vals, createdAt string
	var note, supersedes, deletedAt, lastUsed sql.NullString

	err := row.Scan(
		&l.ID, &l.Name, &vals, &note, &l.Version, &supersedes,
		&createdAt, &deletedAt, &l.UseCount, &lastUsed,
	)
	if err != nil {
		return l, err
	}

	if err := json.Unmarshal([]byte(vals), &l.Values); err != nil {
		return l, fmt.Errorf("decode values of %s: %w", l.ID, err)
	}
	l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if note.Valid {
		l.Note = note.String
	}
	if supersedes.Valid {
		l.Supersedes = supersedes.String
	}
	if deletedAt.Valid {
		t, _ := time.Parse(time.RFC3339, deletedAt.String)
		l.DeletedAt = &t
	}
	if lastUsed.Valid {
		t, _ := time.Parse(time.RFC3339, lastUsed.String)
		l.LastUsedAt = &t
	}

	return l, nil
}
