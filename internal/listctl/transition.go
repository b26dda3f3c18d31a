package listctl

import "time"

// Phase is the transient rendering state of a row.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseEntering Phase = "entering"
	PhaseExiting  Phase = "exiting"
)

// Default transition windows.
const (
	DefaultEnterDuration = time.Second
	DefaultExitDuration  = 300 * time.Millisecond
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// transition is a tag on a row with the time the animation is expected to finish.
// Expiry only matters for entering rows; exiting rows stay tagged until the delete resolves.
type transition struct {
	phase Phase
	until time.Time
}

// Phase returns the transition phase of id at the current time.
func (c *Controller) Phase(id string) Phase {
	tr, ok := c.transitions[id]
	if !ok {
		return PhaseIdle
	}
	if tr.phase == PhaseEntering && !c.clock.Now().Before(tr.until) {
		return PhaseIdle
	}
	return tr.phase
}

// Transitions returns the non-idle rows and their phases.
func (c *Controller) Transitions() map[string]Phase {
	out := make(map[string]Phase, len(c.transitions))
	for id := range c.transitions {
		if p := c.Phase(id); p != PhaseIdle {
			out[id] = p
		}
	}
	return out
}

// AnimationDone reports whether the transition window for id has elapsed.
func (c *Controller) AnimationDone(id string) bool {
	tr, ok := c.transitions[id]
	if !ok {
		return true
	}
	return !c.clock.Now().Before(tr.until)
}

// Sweep drops entering tags whose window has elapsed.
func (c *Controller) Sweep() {
	now := c.clock.Now()
	for id, tr := range c.transitions {
		if tr.phase == PhaseEntering && !now.Before(tr.until) {
			delete(c.transitions, id)
		}
	}
}

func (c *Controller) mark(id string, phase Phase, d time.Duration) {
	c.transitions[id] = transition{phase: phase, until: c.clock.Now().Add(d)}
}
