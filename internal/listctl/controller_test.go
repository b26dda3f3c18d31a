package listctl

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

func TestNew_RejectsBadRecords(t *testing.T) {
	recs := sampleRecords(2)
	recs[1].ID = recs[0].ID
	_, err := New(recs)
	require.ErrorIs(t, err, ErrDuplicateID)

	recs = sampleRecords(1)
	recs[0].ScheduledAt = time.Time{}
	_, err = New(recs)
	require.Error(t, err)

	recs = sampleRecords(1)
	recs[0].ID = ""
	_, err = New(recs)
	require.Error(t, err)
}

func TestAdd_ThenFind(t *testing.T) {
	c, clock := newTestController(t, sampleRecords(3))

	rec, err := c.Add(Draft{
		CandidateName: "Jane Doe",
		JobTitle:      "Frontend Developer",
		ScheduledAt:   clock.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, model.StatusScheduled, rec.Status)
	assert.Equal(t, "", rec.Notes)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, rec.ID, c.Records()[0].ID, "new records are prepended")

	found := Filter(c.Records(), "jane", "all")
	require.Len(t, found, 1)
	assert.Equal(t, rec.ID, found[0].ID)
}

func TestAdd_RejectsPastDate(t *testing.T) {
	c, clock := newTestController(t, sampleRecords(3))

	_, err := c.Add(Draft{
		CandidateName: "Jane Doe",
		JobTitle:      "Frontend Developer",
		ScheduledAt:   clock.Now().Add(-time.Hour).Format(time.RFC3339),
	})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "scheduled_at")
	assert.Equal(t, pastTimeText, verr.Fields["scheduled_at"])
	assert.Equal(t, 3, c.Len())
	assert.Empty(t, c.Transitions())
}

func TestAdd_FieldErrors(t *testing.T) {
	c, _ := newTestController(t, nil)

	_, err := c.Add(Draft{CandidateName: "   ", ScheduledAt: "not a date", Status: "pending"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, requiredText, verr.Fields["candidate_name"])
	assert.Equal(t, requiredText, verr.Fields["job_title"])
	assert.Equal(t, invalidTimeText, verr.Fields["scheduled_at"])
	assert.Contains(t, verr.Fields["status"], "must be one of")
	assert.Equal(t, 0, c.Len())

	_, err = c.Add(Draft{CandidateName: "A", JobTitle: "B"})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, requiredText, verr.Fields["scheduled_at"])
}

func TestAdd_AcceptsLocalLayoutsAndStatus(t *testing.T) {
	c, _ := newTestController(t, nil)

	rec, err := c.Add(Draft{
		CandidateName: "Ada",
		JobTitle:      "Data Engineer",
		ScheduledAt:   "2026-10-15T10:30",
		Status:        "Completed",
		Notes:         "bring laptop",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 15, 10, 30, 0, 0, time.UTC), rec.ScheduledAt)
	assert.Equal(t, model.StatusCompleted, rec.Status)
	assert.Equal(t, "bring laptop", rec.Notes)
}

func TestAdd_UniqueIDs(t *testing.T) {
	c, clock := newTestController(t, nil)
	when := clock.Now().Add(time.Hour).Format(time.RFC3339)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		rec, err := c.Add(Draft{CandidateName: "X", JobTitle: "Y", ScheduledAt: when})
		require.NoError(t, err)
		require.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
}

func TestRestore_AllowsPastDate(t *testing.T) {
	c, clock := newTestController(t, nil)
	rec, err := c.Restore(Draft{
		CandidateName: "Old",
		JobTitle:      "Role",
		ScheduledAt:   clock.Now().Add(-48 * time.Hour).Format(time.RFC3339),
		Status:        model.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, rec.Status)
}

func TestEditNote(t *testing.T) {
	c, _ := newTestController(t, sampleRecords(2))

	require.NoError(t, c.EditNote("id-01", "strong systems design"))
	rec, err := c.Get("id-01")
	require.NoError(t, err)
	assert.Equal(t, "strong systems design", rec.Notes)
	assert.Equal(t, "Candidate 1", rec.CandidateName)

	err = c.EditNote("missing", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatus(t *testing.T) {
	c, _ := newTestController(t, sampleRecords(2))

	require.NoError(t, c.SetStatus("id-00", model.StatusCancelled))
	rec, _ := c.Get("id-00")
	assert.Equal(t, model.StatusCancelled, rec.Status)

	var verr *ValidationError
	require.True(t, errors.As(c.SetStatus("id-00", "archived"), &verr))
	assert.Contains(t, verr.Fields, "status")

	assert.ErrorIs(t, c.SetStatus("missing", model.StatusCompleted), ErrNotFound)
}

func TestReschedule(t *testing.T) {
	recs := sampleRecords(1)
	recs[0].Status = model.StatusCancelled
	c, clock := newTestController(t, recs)

	when := clock.Now().Add(72 * time.Hour)
	require.NoError(t, c.Reschedule("id-00", when.Format(time.RFC3339)))
	rec, _ := c.Get("id-00")
	assert.True(t, when.Equal(rec.ScheduledAt))
	assert.Equal(t, model.StatusScheduled, rec.Status)

	var verr *ValidationError
	require.True(t, errors.As(c.Reschedule("id-00", clock.Now().Add(-time.Minute).Format(time.RFC3339)), &verr))
	assert.Equal(t, pastTimeText, verr.Fields["scheduled_at"])

	require.True(t, errors.As(c.Reschedule("id-00", "tomorrow"), &verr))
	assert.Equal(t, invalidTimeText, verr.Fields["scheduled_at"])

	assert.ErrorIs(t, c.Reschedule("missing", when.Format(time.RFC3339)), ErrNotFound)
}

func TestDeleteOne_PrunesSelection(t *testing.T) {
	c, _ := newTestController(t, sampleRecords(3))
	c.ToggleOne("id-01")
	require.True(t, c.IsSelected("id-01"))

	removed, err := c.DeleteOne("id-01", yes)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = c.Get("id-01")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, c.IsSelected("id-01"))
	assert.Empty(t, c.Selected())
	assert.Equal(t, PhaseIdle, c.Phase("id-01"))
}

func TestDeleteOne_Declined(t *testing.T) {
	c, _ := newTestController(t, sampleRecords(3))
	c.ToggleOne("id-02")

	removed, err := c.DeleteOne("id-02", no)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 3, c.Len())
	assert.True(t, c.IsSelected("id-02"))
	assert.Equal(t, PhaseIdle, c.Phase("id-02"))
}

func TestDeleteOne_Idempotent(t *testing.T) {
	c, _ := newTestController(t, sampleRecords(2))

	removed, err := c.DeleteOne("id-00", yes)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = c.DeleteOne("id-00", yes)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, removed)
	assert.Equal(t, 1, c.Len())
}

func TestStageDelete_TwoPhase(t *testing.T) {
	c, clock := newTestController(t, sampleRecords(2), WithExitDuration(300*time.Millisecond))
	c.ToggleOne("id-00")

	d, err := c.StageDelete("id-00")
	require.NoError(t, err)
	assert.Equal(t, PhaseExiting, c.Phase("id-00"))
	assert.False(t, c.AnimationDone("id-00"))
	assert.Equal(t, 2, c.Len(), "staged record stays until commit")

	_, err = c.StageDelete("id-00")
	assert.ErrorIs(t, err, ErrDeleteInProgress)

	// The window elapsing does not remove anything by itself.
	clock.Advance(time.Second)
	assert.True(t, c.AnimationDone("id-00"))
	assert.Equal(t, PhaseExiting, c.Phase("id-00"))
	assert.Equal(t, 2, c.Len())

	require.NoError(t, c.Commit(d))
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.IsSelected("id-00"))
	assert.Error(t, c.Commit(d), "a deletion resolves once")
}

func TestStageDelete_CommitWithoutWaiting(t *testing.T) {
	c, _ := newTestController(t, sampleRecords(2), WithExitDuration(time.Hour))

	d, err := c.StageDelete("id-01")
	require.NoError(t, err)
	require.NoError(t, c.Commit(d))
	assert.Equal(t, []string{"id-00"}, ids(c.Records()))
}

func TestStageDelete_DoubleStagedCommit(t *testing.T) {
	c, _ := newTestController(t, sampleRecords(2))

	d, err := c.StageDelete("id-00")
	require.NoError(t, err)
	removed, err := c.DeleteMany([]string{"id-00"}, yes)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	assert.ErrorIs(t, c.Commit(d), ErrNotFound)
}

func TestDiscard(t *testing.T) {
	c, _ := newTestController(t, sampleRecords(2))

	d, err := c.StageDelete("id-00")
	require.NoError(t, err)
	c.Discard(d)
	assert.Equal(t, PhaseIdle, c.Phase("id-00"))
	assert.Equal(t, 2, c.Len())

	// Staging again after a discard is allowed.
	_, err = c.StageDelete("id-00")
	assert.NoError(t, err)
}

func TestDeleteMany_ClearsSelection(t *testing.T) {
	c, _ := newTestController(t, sampleRecords(5))
	for _, id := range []string{"id-00", "id-02", "id-04"} {
		c.ToggleOne(id)
	}

	var asked []string
	removed, err := c.DeleteMany(c.Selected(), func(ids []string) bool {
		asked = ids
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.Equal(t, []string{"id-00", "id-02", "id-04"}, asked)
	assert.Equal(t, 2, c.Len())
	assert.Empty(t, c.Selected())
}

func TestDeleteMany_IgnoresAbsentAndDeclines(t *testing.T) {
	c, _ := newTestController(t, sampleRecords(3))
	c.ToggleOne("id-00")

	removed, err := c.DeleteMany([]string{"id-00", "id-00", "gone"}, no)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 3, c.Len())
	assert.True(t, c.IsSelected("id-00"))

	called := false
	removed, err = c.DeleteMany([]string{"gone", "also-gone"}, func([]string) bool {
		called = true
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.False(t, called, "nothing to delete, nothing to confirm")

	removed, err = c.DeleteMany([]string{"gone", "id-01"}, yes)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestTransitions_EnterExpires(t *testing.T) {
	c, clock := newTestController(t, nil, WithEnterDuration(time.Second))

	rec, err := c.Add(Draft{CandidateName: "A", JobTitle: "B", ScheduledAt: clock.Now().Add(time.Hour).Format(time.RFC3339)})
	require.NoError(t, err)
	assert.Equal(t, PhaseEntering, c.Phase(rec.ID))
	assert.Equal(t, map[string]Phase{rec.ID: PhaseEntering}, c.Transitions())

	clock.Advance(999 * time.Millisecond)
	assert.Equal(t, PhaseEntering, c.Phase(rec.ID))

	clock.Advance(time.Millisecond)
	assert.Equal(t, PhaseIdle, c.Phase(rec.ID))
	assert.Empty(t, c.Transitions())

	c.Sweep()
	assert.Empty(t, c.transitions)
}

func TestTransitions_DeleteWhileEntering(t *testing.T) {
	c, clock := newTestController(t, nil)

	rec, err := c.Add(Draft{CandidateName: "A", JobTitle: "B", ScheduledAt: clock.Now().Add(time.Hour).Format(time.RFC3339)})
	require.NoError(t, err)

	d, err := c.StageDelete(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, PhaseExiting, c.Phase(rec.ID))
	require.NoError(t, c.Commit(d))
	assert.Empty(t, c.Transitions())
}

func TestCounts(t *testing.T) {
	recs := sampleRecords(4)
	recs[1].Status = model.StatusCompleted
	recs[2].Status = model.StatusCancelled
	c, _ := newTestController(t, recs)

	assert.Equal(t, map[model.Status]int{
		model.StatusScheduled: 2,
		model.StatusCompleted: 1,
		model.StatusCancelled: 1,
	}, c.Counts())
}

func TestDelete_NilConfirmDeclines(t *testing.T) {
	c, _ := newTestController(t, sampleRecords(3))
	c.ToggleOne("id-01")

	ok, err := c.DeleteOne("id-00", nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, PhaseIdle, c.Phase("id-00"))

	removed, err := c.DeleteMany([]string{"id-01", "id-02"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 3, c.Len())
	assert.True(t, c.IsSelected("id-01"))
}

func TestNew_SameClockDistinctIDs(t *testing.T) {
	first, _ := newTestController(t, nil)
	second, _ := newTestController(t, nil)

	d := Draft{CandidateName: "Jane", JobTitle: "Engineer", ScheduledAt: "2026-10-15T10:00"}
	a, err := first.Add(d)
	require.NoError(t, err)
	b, err := second.Add(d)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
