package listctl

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when an operation targets an id that is not in the collection.
	ErrNotFound = errors.New("interview not found")

	// ErrDeleteInProgress is returned when a delete is staged for a record that is already exiting.
	ErrDeleteInProgress = errors.New("delete already in progress")

	// ErrDuplicateID is returned when the initial record set contains the same id twice.
	ErrDuplicateID = errors.New("duplicate interview id")
)

// ValidationError carries per-field messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}
