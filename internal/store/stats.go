package store

import (
	"context"
	"os"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string        `json:"db_path"`
	DBSizeBytes int64         `json:"db_size_bytes"`
	Total       int           `json:"total"`
	Upcoming    int           `json:"upcoming"`
	ByStatus    []StatusCount `json:"by_status"`
}

// StatusCount holds the number of interviews in one status.
type StatusCount struct {
	Status model.Status `json:"status"`
	Count  int          `json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interviews`).Scan(&st.Total); err != nil {
		return st, err
	}
	now := formatTime(s.now())
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM interviews WHERE status = ? AND scheduled_at > ?`,
		string(model.StatusScheduled), now).Scan(&st.Upcoming); err != nil {
		return st, err
	}

	counts := make(map[model.Status]int, len(model.Statuses))
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM interviews GROUP BY status`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return st, err
		}
		counts[model.Status(status)] = n
	}
	if err := rows.Err(); err != nil {
		return st, err
	}

	for _, status := range model.Statuses {
		st.ByStatus = append(st.ByStatus, StatusCount{Status: status, Count: counts[status]})
	}
	return st, nil
}
