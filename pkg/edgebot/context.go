package edgebot

import "github.com/robotalks/edgebot/pkg/hal"

// Context is the mutable state of one controller instance.
// It is owned by the caller and passed into every tick.
type Context struct {
	// State is the current phase.
	State RobotState
	// PhaseStart is when the current phase (or debounce window) began.
	PhaseStart hal.Millis
	// PendingTurn is the pivot duration in ms of the current
	// ChangeAngle episode, 0 outside of an episode.
	PendingTurn int
	// TurnSide is the side whose wheel runs backward during the
	// current episode.
	TurnSide hal.Side
}

// NewContext creates a Context in Start.
func NewContext(now hal.Millis) *Context {
	return &Context{State: Start, PhaseStart: now}
}

// Elapsed returns ms since the phase started.
func (rc *Context) Elapsed(now hal.Millis) hal.Millis {
	return now.Since(rc.PhaseStart)
}

// Valid checks the invariants of the context.
func (rc *Context) Valid() bool {
	if !rc.State.IsValid() {
		return false
	}
	if rc.PendingTurn < 0 {
		return false
	}
	return rc.PendingTurn == 0 || rc.State == ChangeAngle
}

func (rc *Context) resetPhase(now hal.Millis) {
	rc.PhaseStart = now
}
