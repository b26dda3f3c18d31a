package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

// ErrNotFound is returned when no interview has the requested id.
var ErrNotFound = errors.New("interview not found")

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

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

	s := &SQLiteStore{db: db, now: time.Now}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS interviews (
		id             TEXT PRIMARY KEY,
		candidate_name TEXT NOT NULL,
		job_title      TEXT NOT NULL,
		scheduled_at   TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'scheduled',
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_interviews_status ON interviews(status);
	CREATE INDEX IF NOT EXISTS idx_interviews_scheduled ON interviews(scheduled_at);
	CREATE INDEX IF NOT EXISTS idx_interviews_created ON interviews(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLiteStore) insert(ctx context.Context, db execer, iv model.Interview) error {
	if iv.ID == "" {
		return errors.New("insert interview: empty id")
	}
	status := iv.Status
	if status == "" {
		status = model.StatusScheduled
	}
	now := formatTime(s.now())

	_, err := db.ExecContext(ctx,
		`INSERT INTO interviews (id, candidate_name, job_title, scheduled_at, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		iv.ID, iv.CandidateName, iv.JobTitle, formatTime(iv.ScheduledAt), string(status), iv.Notes, now, now)
	if err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Insert(ctx context.Context, iv model.Interview) error {
	return s.insert(ctx, s.db, iv)
}

func (s *SQLiteStore) All(ctx context.Context) ([]model.Interview, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, candidate_name, job_title, scheduled_at, status, notes
		 FROM interviews ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []model.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Interview, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, candidate_name, job_title, scheduled_at, status, notes
		 FROM interviews WHERE id = ?`, id)
	iv, err := scanInterview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (s *SQLiteStore) UpdateNotes(ctx context.Context, id, notes string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE interviews SET notes = ?, updated_at = ? WHERE id = ?`,
		notes, formatTime(s.now()), id)
	if err != nil {
		return fmt.Errorf("update notes: %w", err)
	}
	return expectRow(res, id)
}

func (s *SQLiteStore) UpdateSchedule(ctx context.Context, p ScheduleParams) error {
	if !model.ValidStatuses[p.Status] {
		return fmt.Errorf("update schedule: invalid status %q", p.Status)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE interviews SET scheduled_at = ?, status = ?, updated_at = ? WHERE id = ?`,
		formatTime(p.ScheduledAt), string(p.Status), formatTime(s.now()), p.ID)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	return expectRow(res, p.ID)
}

func (s *SQLiteStore) Delete(ctx context.Context, ids ...string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM interviews WHERE id IN (%s)`, placeholders), args...)
	if err != nil {
		return 0, fmt.Errorf("delete interviews: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func expectRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInterview(row scanner) (model.Interview, error) {
	var iv model.Interview
	var scheduledAt, status string

	err := row.Scan(&iv.ID, &iv.CandidateName, &iv.JobTitle, &scheduledAt, &status, &iv.Notes)
	if err != nil {
		return iv, err
	}

	iv.ScheduledAt, err = time.Parse(timeLayout, scheduledAt)
	if err != nil {
		return iv, fmt.Errorf("interview %s: bad scheduled_at %q: %w", iv.ID, scheduledAt, err)
	}
	iv.Status = model.Status(status)
	return iv, nil
}

// timeLayout is fixed width so stored times sort and compare as strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
