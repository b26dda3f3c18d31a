package store

import (
	"context"
	"fmt"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

// InsertAll stores interviews from an import. Either all rows are stored or none.
func (s *SQLiteStore) InsertAll(ctx context.Context, ivs []model.Interview) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	for i, iv := range ivs {
		if err := s.insert(ctx, tx, iv); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(ivs), nil
}
