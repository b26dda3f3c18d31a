// Package store provides the interview storage interface and SQLite implementation.
package store

import (
	"context"
	"time"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

// ScheduleParams holds parameters for updating when and whether an interview happens.
type ScheduleParams struct {
	ID          string
	ScheduledAt time.Time
	Status      model.Status
}

// Store defines the interview storage interface.
type Store interface {
	// Insert stores a new interview. The id is assigned by the caller.
	Insert(ctx context.Context, iv model.Interview) error

	// InsertAll stores interviews in a single transaction.
	InsertAll(ctx context.Context, ivs []model.Interview) (int, error)

	// All returns every interview, newest first.
	All(ctx context.Context) ([]model.Interview, error)

	// Get retrieves an interview by id.
	Get(ctx context.Context, id string) (*model.Interview, error)

	// UpdateNotes replaces the notes of an interview.
	UpdateNotes(ctx context.Context, id, notes string) error

	// UpdateSchedule sets the scheduled time and status of an interview.
	UpdateSchedule(ctx context.Context, p ScheduleParams) error

	// Delete removes interviews by id and returns how many were removed.
	// Unknown ids are ignored.
	Delete(ctx context.Context, ids ...string) (int, error)

	// Close closes the store.
	Close() error
}
