// Package edgebot implements the behavior of a two-wheeled robot which
// wanders on a raised surface without falling off.
//
// The Controller is a non-blocking state machine: every Tick reads both
// edge sensors, compares the clock against the start of the current
// phase and writes wheel directions and motor power accordingly.
//
//	Start --(no edge for >500ms)--> Moving
//	Moving --(edge for >10ms)--> Backstep
//	Backstep --(>100ms and no edge)--> ChangeAngle
//	ChangeAngle --(random pivot elapsed)--> Moving
//
// The pivot duration converts a random angle in [π/2, 3π/2) into time
// at MsPerRadian, as there is no wheel feedback.
package edgebot

import (
	"github.com/golang/glog"

	"github.com/robotalks/edgebot/pkg/hal"
)

// Timing thresholds, in milliseconds.
const (
	SettleTime   hal.Millis = 500
	EdgeDebounce hal.Millis = 10
	BackstepTime hal.Millis = 100
)

// Pivot parameters. The turn angle is sampled as an integer in
// [TurnAngleMin, TurnAngleMax) and divided by TurnAngleScale to
// get radians.
const (
	MsPerRadian    = 150
	TurnAngleMin   = 15707
	TurnAngleMax   = 47123
	TurnAngleScale = 10000.0
)

// Transition describes a state change.
type Transition struct {
	From RobotState
	To   RobotState
	At   hal.Millis
	// PendingTurn and TurnSide are the sampled pivot of
	// the episode when To is ChangeAngle.
	PendingTurn int
	TurnSide    hal.Side
}

// TransitionListener receives transitions synchronously from Tick.
type TransitionListener interface {
	Transitioned(Transition)
}

// TransitionFunc is the func form of TransitionListener.
type TransitionFunc func(Transition)

// Transitioned implements TransitionListener.
func (f TransitionFunc) Transitioned(t Transition) {
	f(t)
}

// Controller drives the robot through a HAL.
type Controller struct {
	HAL      hal.HAL
	Listener TransitionListener
}

// NewController creates a Controller.
func NewController(h hal.HAL) *Controller {
	return &Controller{HAL: h}
}

// TurnDuration converts a sampled angle into pivot time in ms.
func TurnDuration(sample int) int {
	return int(float64(sample) / TurnAngleScale * MsPerRadian)
}

// Setup prepares the hardware and the context before the first tick.
// It must be called once.
func (c *Controller) Setup(rc *Context, seed int64) {
	c.HAL.SetWheelDirection(hal.Left, hal.Forward)
	c.HAL.SetWheelDirection(hal.Right, hal.Forward)
	c.HAL.SeedRandom(seed)
	rc.resetPhase(c.HAL.Now())
}

// Tick evaluates the state machine once.
func (c *Controller) Tick(rc *Context) {
	now := c.HAL.Now()
	switch rc.State {
	case Start:
		c.start(rc, now)
	case Moving:
		c.moving(rc, now)
	case Backstep:
		c.backstep(rc, now)
	case ChangeAngle:
		c.changeAngle(rc, now)
	}
}

func (c *Controller) start(rc *Context, now hal.Millis) {
	if c.edgeDetected() {
		rc.resetPhase(now)
	} else if rc.Elapsed(now) > SettleTime {
		c.transit(rc, Moving, now)
	}
	c.setMotors(hal.Off)
}

func (c *Controller) moving(rc *Context, now hal.Millis) {
	if c.edgeDetected() {
		if rc.Elapsed(now) > EdgeDebounce {
			c.transit(rc, Backstep, now)
			return
		}
	} else {
		rc.resetPhase(now)
	}
	c.drive(hal.Forward, hal.Forward)
}

func (c *Controller) backstep(rc *Context, now hal.Millis) {
	if rc.Elapsed(now) > BackstepTime && !c.edgeDetected() {
		c.transit(rc, ChangeAngle, now)
		return
	}
	c.drive(hal.Backward, hal.Backward)
}

func (c *Controller) changeAngle(rc *Context, now hal.Millis) {
	if rc.PendingTurn == 0 {
		c.sampleTurn(rc)
	}
	if rc.Elapsed(now) > hal.Millis(rc.PendingTurn) {
		rc.PendingTurn = 0
		c.transit(rc, Moving, now)
		return
	}
	if rc.TurnSide == hal.Left {
		c.drive(hal.Backward, hal.Forward)
	} else {
		c.drive(hal.Forward, hal.Backward)
	}
}

func (c *Controller) sampleTurn(rc *Context) {
	rc.PendingTurn = TurnDuration(c.HAL.RandomInt(TurnAngleMin, TurnAngleMax))
	rc.TurnSide = hal.Left
	if c.HAL.RandomInt(0, 2) != 0 {
		rc.TurnSide = hal.Right
	}
}

func (c *Controller) transit(rc *Context, to RobotState, now hal.Millis) {
	t := Transition{From: rc.State, To: to, At: now}
	rc.State = to
	rc.resetPhase(now)
	if to == ChangeAngle {
		// the episode is sampled on entry so the context is
		// complete as soon as the transition is observed.
		c.sampleTurn(rc)
		t.PendingTurn, t.TurnSide = rc.PendingTurn, rc.TurnSide
		glog.V(1).Infof("%s -> %s at %dms, pivot %dms %s wheel back", t.From, t.To, now, t.PendingTurn, t.TurnSide)
	} else {
		glog.V(1).Infof("%s -> %s at %dms", t.From, t.To, now)
	}
	if ln := c.Listener; ln != nil {
		ln.Transitioned(t)
	}
}

func (c *Controller) edgeDetected() bool {
	return c.HAL.EdgeDetected(hal.Left) || c.HAL.EdgeDetected(hal.Right)
}

func (c *Controller) setMotors(power hal.Power) {
	c.HAL.SetMotor(hal.Left, power)
	c.HAL.SetMotor(hal.Right, power)
}

func (c *Controller) drive(left, right hal.Direction) {
	c.HAL.SetWheelDirection(hal.Left, left)
	c.HAL.SetWheelDirection(hal.Right, right)
	c.setMotors(hal.On)
}
