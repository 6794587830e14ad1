// Package diffbot simulates the edge-avoidance robot on a table:
// a differential drive with two downward looking sensors at the
// front corners.
package diffbot

import (
	"math/rand"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/edgebot/pkg/framework"
	"github.com/robotalks/edgebot/pkg/hal"
	"github.com/robotalks/edgebot/pkg/sim"
	"github.com/robotalks/edgebot/pkg/sim/physics/diffdrive"
)

// EdgeMode overrides what a sensor reports.
type EdgeMode int

// Edge modes.
const (
	// EdgeAuto reports the simulated surface.
	EdgeAuto EdgeMode = iota
	// EdgeOn always reports an edge.
	EdgeOn
	// EdgeOff never reports an edge.
	EdgeOff
)

// String implements fmt.Stringer.
func (m EdgeMode) String() string {
	switch m {
	case EdgeOn:
		return "on"
	case EdgeOff:
		return "off"
	}
	return "auto"
}

// Bot is a simulated robot implementing hal.HAL.
// It must only be used from the loop goroutine.
type Bot struct {
	Clock sim.Clock
	Table sim.Rect
	// Outline is the body in the local frame, X forward.
	Outline sim.Rect
	// SensorOffset locates the left sensor in the local frame,
	// the right one is mirrored on the X axis.
	SensorOffset sim.Pos2D
	Drive        *diffdrive.Engine

	sim.ObjectsChangeCaster

	name       string
	start      time.Time
	pose       sim.Pose2D
	directions [2]hal.Direction
	motors     [2]hal.Power
	overrides  [2]EdgeMode
	fallen     bool
	changes    int
	rnd        *rand.Rand
}

// New creates a Bot at the origin of the clock.
func New(name string, clock sim.Clock, caps diffdrive.Caps) *Bot {
	now := clock.Now()
	return &Bot{
		Clock:   clock,
		Drive:   diffdrive.New(caps, sim.Pose2D{}, now),
		name:    name,
		start:   now,
		changes: 1, // send initial object change.
		rnd:     rand.New(rand.NewSource(now.UnixNano())),
	}
}

// Name implements Named.
func (b *Bot) Name() string {
	return b.name
}

// AddToLoop implements LoopAdder.
func (b *Bot) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvAcuate, fx.ControlFunc(b.Actuate))
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(b.NotifyChanges))
}

// OutlineRect implements Rectangular.
func (b *Bot) OutlineRect() sim.Rect {
	return b.Outline
}

// Position2D implements Positionable2D.
func (b *Bot) Position2D() sim.Pose2D {
	return b.pose
}

// SetPose2D implements Placeable2D. Placing the robot back on
// the table clears Fallen.
func (b *Bot) SetPose2D(pose sim.Pose2D) sim.Pose2D {
	now := b.Clock.Now()
	b.Drive.Place(pose, now)
	b.pose = pose
	b.fallen = !b.Table.Contains(pose.Pos2D)
	if !b.fallen {
		b.Drive.SetWheels(now, b.wheel(hal.Left), b.wheel(hal.Right))
	}
	b.changes++
	return b.pose
}

// Fallen reports whether the robot left the table.
func (b *Bot) Fallen() bool {
	return b.fallen
}

// ForceEdge overrides a sensor.
func (b *Bot) ForceEdge(side hal.Side, mode EdgeMode) {
	b.overrides[side] = mode
}

// Sensor returns the world position of a sensor at the current pose.
func (b *Bot) Sensor(side hal.Side) sim.Pos2D {
	offset := b.SensorOffset
	if side == hal.Right {
		offset.Y = -offset.Y
	}
	return b.pose.Local(offset)
}

// Motors returns the last motor and direction commands.
func (b *Bot) Motors() ([2]hal.Power, [2]hal.Direction) {
	return b.motors, b.directions
}

// EdgeDetected implements hal.HAL.
func (b *Bot) EdgeDetected(side hal.Side) bool {
	switch b.overrides[side] {
	case EdgeOn:
		return true
	case EdgeOff:
		return false
	}
	if b.fallen {
		return true
	}
	b.update(b.Clock.Now())
	return !b.Table.Contains(b.Sensor(side))
}

// SetWheelDirection implements hal.HAL.
func (b *Bot) SetWheelDirection(side hal.Side, dir hal.Direction) {
	b.directions[side] = dir
}

// SetMotor implements hal.HAL.
func (b *Bot) SetMotor(side hal.Side, power hal.Power) {
	b.motors[side] = power
}

// Now implements hal.HAL.
func (b *Bot) Now() hal.Millis {
	return hal.Millis(b.Clock.Now().Sub(b.start) / time.Millisecond)
}

// RandomInt implements hal.HAL.
func (b *Bot) RandomInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + b.rnd.Intn(max-min)
}

// SeedRandom implements hal.HAL.
func (b *Bot) SeedRandom(seed int64) {
	b.rnd.Seed(seed)
}

// Actuate applies the wheel commands to the drive.
func (b *Bot) Actuate(cc fx.ControlContext) error {
	now := b.Clock.Now()
	b.update(now)
	if !b.fallen {
		b.Drive.SetWheels(now, b.wheel(hal.Left), b.wheel(hal.Right))
	}
	return nil
}

// NotifyChanges notifies object changes.
func (b *Bot) NotifyChanges(cc fx.ControlContext) error {
	changes := b.changes
	b.changes = 0
	if changes > 0 {
		b.ObjectsChanged(cc, b)
	}
	return nil
}

func (b *Bot) update(now time.Time) {
	if b.fallen {
		return
	}
	pose := b.Drive.Estimate(now)
	if pose != b.pose {
		b.pose = pose
		b.changes++
	}
	if !b.Table.Contains(pose.Pos2D) {
		b.fallen = true
		b.Drive.SetWheels(now, 0, 0)
		glog.Warningf("%s: %v at (%.1f, %.1f)", b.name, sim.ErrOffTable, pose.X, pose.Y)
	}
}

func (b *Bot) wheel(side hal.Side) float64 {
	if b.motors[side] == hal.Off {
		return 0
	}
	if b.directions[side] == hal.Backward {
		return -1
	}
	return 1
}
