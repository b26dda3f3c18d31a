// Package listctl manages an in-memory interview list: filtering, sorting,
// pagination, bulk selection, mutations and CSV export.
//
// A Controller is owned by a single caller and is not safe for concurrent use.
// Every operation validates and returns synchronously; persisting a change is
// left to the caller.
package listctl

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

// ConfirmFunc is asked before a destructive change takes effect.
// It receives the ids about to be removed.
type ConfirmFunc func(ids []string) bool

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used for validation and transition windows.
func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithPageSize sets the number of rows per page. Values below 1 are ignored.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n >= 1 {
			c.pageSize = n
		}
	}
}

// WithEnterDuration sets how long a newly added row stays tagged as entering.
func WithEnterDuration(d time.Duration) Option {
	return func(c *Controller) { c.enterDuration = d }
}

// WithExitDuration sets the advisory exit animation window for staged deletes.
func WithExitDuration(d time.Duration) Option {
	return func(c *Controller) { c.exitDuration = d }
}

// WithLogger sets the logger for mutation events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller owns the interview collection and its list view state.
type Controller struct {
	records     []model.Interview
	selected    map[string]struct{}
	transitions map[string]transition

	search       string
	statusFilter string
	ascending    bool
	page         int
	pageSize     int

	enterDuration time.Duration
	exitDuration  time.Duration

	clock   Clock
	entropy *ulid.MonotonicEntropy
	log     zerolog.Logger
}

// New creates a controller over records, which are kept in the given order.
// Every record must have a unique id and a non-zero ScheduledAt.
func New(records []model.Interview, opts ...Option) (*Controller, error) {
	c := &Controller{
		selected:      map[string]struct{}{},
		transitions:   map[string]transition{},
		statusFilter:  model.StatusAll,
		ascending:     true,
		page:          1,
		pageSize:      DefaultPageSize,
		enterDuration: DefaultEnterDuration,
		exitDuration:  DefaultExitDuration,
		clock:         SystemClock,
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.entropy = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)

	seen := make(map[string]bool, len(records))
	c.records = make([]model.Interview, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("load interview: empty id")
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("load interview: %w: %s", ErrDuplicateID, r.ID)
		}
		if r.ScheduledAt.IsZero() {
			return nil, fmt.Errorf("load interview %s: missing scheduled time", r.ID)
		}
		if r.Status == "" {
			r.Status = model.StatusScheduled
		}
		seen[r.ID] = true
		c.records = append(c.records, r)
	}

	return c, nil
}

func (c *Controller) newID() string {
	for {
		id := ulid.MustNew(ulid.Timestamp(c.clock.Now()), c.entropy).String()
		if c.indexOf(id) < 0 {
			return id
		}
	}
}

func (c *Controller) indexOf(id string) int {
	for i, r := range c.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Records returns a copy of the collection in insertion order (newest first).
func (c *Controller) Records() []model.Interview {
	out := make([]model.Interview, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records in the collection.
func (c *Controller) Len() int {
	return len(c.records)
}

// Get returns the record with the given id.
func (c *Controller) Get(id string) (model.Interview, error) {
	i := c.indexOf(id)
	if i < 0 {
		return model.Interview{}, notFound(id)
	}
	return c.records[i], nil
}

// Counts returns the number of records per status.
func (c *Controller) Counts() map[model.Status]int {
	counts := make(map[model.Status]int, len(model.Statuses))
	for _, s := range model.Statuses {
		counts[s] = 0
	}
	for _, r := range c.records {
		counts[r.Status]++
	}
	return counts
}

// Add validates d and prepends the new interview to the collection.
// The scheduled time must be in the future. A validation failure returns a
// *ValidationError and leaves the collection unchanged.
func (c *Controller) Add(d Draft) (model.Interview, error) {
	return c.insert(d, true)
}

// Restore is Add without the future-time requirement, for records that
// already happened (imports).
func (c *Controller) Restore(d Draft) (model.Interview, error) {
	return c.insert(d, false)
}

func (c *Controller) insert(d Draft, requireFuture bool) (model.Interview, error) {
	d = d.clean()
	at, verr := validateDraft(d, c.clock.Now(), requireFuture)
	if verr != nil {
		return model.Interview{}, verr
	}

	status := d.Status
	if status == "" {
		status = model.StatusScheduled
	}

	rec := model.Interview{
		ID:            c.newID(),
		CandidateName: d.CandidateName,
		JobTitle:      d.JobTitle,
		ScheduledAt:   at,
		Status:        status,
		Notes:         d.Notes,
	}

	c.records = append([]model.Interview{rec}, c.records...)
	c.mark(rec.ID, PhaseEntering, c.enterDuration)

	c.log.Debug().Str("id", rec.ID).Str("candidate", rec.CandidateName).Msg("interview added")
	return rec, nil
}

// EditNote replaces the notes of the record with the given id.
func (c *Controller) EditNote(id, note string) error {
	i := c.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	c.records[i].Notes = note
	c.log.Debug().Str("id", id).Msg("interview notes updated")
	return nil
}

// SetStatus changes the status of the record with the given id.
func (c *Controller) SetStatus(id string, status model.Status) error {
	if verr := validateStatus(status); verr != nil {
		return verr
	}
	i := c.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	c.records[i].Status = status
	c.clampPage()
	c.log.Debug().Str("id", id).Str("status", string(status)).Msg("interview status updated")
	return nil
}

// Reschedule moves the record to a new future time and marks it scheduled.
func (c *Controller) Reschedule(id, when string) error {
	i := c.indexOf(id)
	if i < 0 {
		return notFound(id)
	}

	now := c.clock.Now()
	at, err := ParseTime(when, now.Location())
	switch {
	case err != nil:
		return &ValidationError{Fields: map[string]string{"scheduled_at": invalidTimeText}}
	case !at.After(now):
		return &ValidationError{Fields: map[string]string{"scheduled_at": pastTimeText}}
	}

	c.records[i].ScheduledAt = at
	c.records[i].Status = model.StatusScheduled
	c.clampPage()
	c.log.Debug().Str("id", id).Time("scheduled_at", at).Msg("interview rescheduled")
	return nil
}

// Deletion is a staged single-record delete awaiting Commit or Discard.
type Deletion struct {
	ID       string
	resolved bool
}

// StageDelete tags the record as exiting and returns a pending deletion.
// The record stays in the collection until the deletion is committed.
func (c *Controller) StageDelete(id string) (*Deletion, error) {
	if c.indexOf(id) < 0 {
		return nil, notFound(id)
	}
	if tr, ok := c.transitions[id]; ok && tr.phase == PhaseExiting {
		return nil, fmt.Errorf("%w: %s", ErrDeleteInProgress, id)
	}
	c.mark(id, PhaseExiting, c.exitDuration)
	return &Deletion{ID: id}, nil
}

// Commit removes the staged record from the collection and the selection.
// It does not wait for the exit window.
func (c *Controller) Commit(d *Deletion) error {
	if d == nil || d.resolved {
		return fmt.Errorf("commit delete: deletion already resolved")
	}
	d.resolved = true
	delete(c.transitions, d.ID)

	if c.indexOf(d.ID) < 0 {
		return notFound(d.ID)
	}
	c.remove(map[string]bool{d.ID: true})
	c.log.Debug().Str("id", d.ID).Msg("interview deleted")
	return nil
}

// Discard cancels a staged deletion and leaves the record untouched.
func (c *Controller) Discard(d *Deletion) {
	if d == nil || d.resolved {
		return
	}
	d.resolved = true
	if tr, ok := c.transitions[d.ID]; ok && tr.phase == PhaseExiting {
		delete(c.transitions, d.ID)
	}
}

// DeleteOne stages, confirms and commits a single delete.
// It reports whether the record was removed; a declined confirmation is not an error.
// A nil confirm declines.
func (c *Controller) DeleteOne(id string, confirm ConfirmFunc) (bool, error) {
	d, err := c.StageDelete(id)
	if err != nil {
		return false, err
	}
	if confirm == nil || !confirm([]string{id}) {
		c.Discard(d)
		return false, nil
	}
	if err := c.Commit(d); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteMany removes every listed record in one step after confirmation.
// Ids not in the collection are ignored. It returns the number removed.
// A nil confirm declines.
func (c *Controller) DeleteMany(ids []string, confirm ConfirmFunc) (int, error) {
	targets := make(map[string]bool, len(ids))
	present := make([]string, 0, len(ids))
	for _, id := range ids {
		if targets[id] || c.indexOf(id) < 0 {
			continue
		}
		targets[id] = true
		present = append(present, id)
	}
	if len(present) == 0 {
		return 0, nil
	}
	if confirm == nil || !confirm(present) {
		return 0, nil
	}

	n := c.remove(targets)
	c.log.Debug().Int("count", n).Msg("interviews deleted")
	return n, nil
}

// remove drops targets from the collection, selection and transition tags.
func (c *Controller) remove(targets map[string]bool) int {
	kept := make([]model.Interview, 0, len(c.records))
	for _, r := range c.records {
		if targets[r.ID] {
			continue
		}
		kept = append(kept, r)
	}
	removed := len(c.records) - len(kept)
	c.records = kept

	for id := range targets {
		delete(c.selected, id)
		delete(c.transitions, id)
	}
	c.clampPage()
	return removed
}
