package listctl

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/TechEdu-Solution-Limited/TechEdu-Solution-sub002/internal/model"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

var baseTime = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func newClock() *fakeClock {
	return &fakeClock{now: baseTime}
}

// sampleRecords returns n records scheduled one hour apart, i-th in position i.
func sampleRecords(n int) []model.Interview {
	recs := make([]model.Interview, n)
	for i := range recs {
		recs[i] = model.Interview{
			ID:            fmt.Sprintf("id-%02d", i),
			CandidateName: fmt.Sprintf("Candidate %d", i),
			JobTitle:      "Engineer",
			ScheduledAt:   baseTime.Add(time.Duration(i+1) * time.Hour),
			Status:        model.StatusScheduled,
		}
	}
	return recs
}

func newTestController(t *testing.T, recs []model.Interview, opts ...Option) (*Controller, *fakeClock) {
	t.Helper()
	clock := newClock()
	opts = append([]Option{WithClock(clock)}, opts...)
	c, err := New(recs, opts...)
	require.NoError(t, err)
	return c, clock
}

func ids(recs []model.Interview) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func yes([]string) bool { return true }

func no([]string) bool { return false }
