// Package model defines the core interview data types.
package model

import "time"

// Status is the lifecycle state of an interview.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// StatusAll is the filter value that matches every status.
const StatusAll = "all"

// Interview represents a scheduled interview with a candidate.
type Interview struct {
	ID            string    `json:"id"`
	CandidateName string    `json:"candidate_name"`
	JobTitle      string    `json:"job_title"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Status        Status    `json:"status"`
	Notes         string    `json:"notes"`
}

// ValidStatuses are the allowed interview statuses.
var ValidStatuses = map[Status]bool{
	StatusScheduled: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// Statuses lists the statuses in display order.
var Statuses = []Status{StatusScheduled, StatusCompleted, StatusCancelled}
