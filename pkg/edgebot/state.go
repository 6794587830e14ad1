package edgebot

import "fmt"

// RobotState is the phase of the edge-avoidance behavior.
type RobotState int

// Robot states.
const (
	// Start waits with motors off until the surface has been
	// seen by both sensors for the settle time.
	Start RobotState = iota
	// Moving drives forward until an edge is detected.
	Moving
	// ChangeAngle pivots in place for a random duration.
	ChangeAngle
	// Braking is never entered. The hardware has brakes but
	// no transition uses them.
	Braking
	// Backstep drives backward away from a detected edge.
	Backstep
)

var stateNames = [...]string{
	Start:       "Start",
	Moving:      "Moving",
	ChangeAngle: "ChangeAngle",
	Braking:     "Braking",
	Backstep:    "Backstep",
}

// States lists all states, including the unreachable Braking.
var States = [...]RobotState{Start, Moving, ChangeAngle, Braking, Backstep}

// String implements fmt.Stringer.
func (s RobotState) String() string {
	if s.IsValid() {
		return stateNames[s]
	}
	return fmt.Sprintf("RobotState(%d)", int(s))
}

// IsValid checks s is one of the defined states.
func (s RobotState) IsValid() bool {
	return s >= Start && s <= Backstep
}

// ParseState parses the name of a state.
func ParseState(name string) (RobotState, error) {
	for _, s := range States {
		if stateNames[s] == name {
			return s, nil
		}
	}
	return Start, fmt.Errorf("unknown robot state %q", name)
}
