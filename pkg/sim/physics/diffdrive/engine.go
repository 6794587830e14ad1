// Package diffdrive estimates the pose of a differential drive robot
// from its wheel commands, assuming wheels reach their speed instantly.
package diffdrive

import (
	"math"
	"time"

	"github.com/robotalks/edgebot/pkg/sim"
)

// Caps are the physical capabilities of the drive.
type Caps struct {
	// WheelSpeed is the ground speed of a wheel running at full
	// power, in mm/s.
	WheelSpeed float64
	// TrackWidth is the distance between both wheels, in mm.
	TrackWidth float64
}

// Wheels holds the normalized velocity of each wheel, indexed by
// hal.Side: 1 full forward, -1 full backward, 0 stopped.
type Wheels [2]float64

// Engine integrates the pose between wheel commands.
type Engine struct {
	Caps Caps

	startPose sim.Pose2D
	startTime time.Time
	wheels    Wheels
}

const straightEpsilon = 1e-9

// New creates an engine at pose with stopped wheels.
func New(caps Caps, pose sim.Pose2D, now time.Time) *Engine {
	return &Engine{Caps: caps, startPose: pose, startTime: now}
}

// Wheels returns the current wheel command.
func (e *Engine) Wheels() Wheels {
	return e.wheels
}

// Velocity returns linear (mm/s) and angular (rad/s, counter-clockwise
// positive) velocity of the current command.
func (e *Engine) Velocity() (linear, angular float64) {
	left, right := e.wheels[0]*e.Caps.WheelSpeed, e.wheels[1]*e.Caps.WheelSpeed
	linear = (left + right) / 2
	if e.Caps.TrackWidth > 0 {
		angular = (right - left) / e.Caps.TrackWidth
	}
	return
}

// Place resets the pose at now, keeping the wheel command.
func (e *Engine) Place(pose sim.Pose2D, now time.Time) {
	e.startPose, e.startTime = pose, now
}

// SetWheels applies a new wheel command from now on, and returns
// the pose at now.
func (e *Engine) SetWheels(now time.Time, left, right float64) sim.Pose2D {
	pose := e.Estimate(now)
	wheels := Wheels{left, right}
	if wheels != e.wheels {
		e.startPose, e.startTime, e.wheels = pose, now, wheels
	}
	return pose
}

// Estimate returns the pose at now.
func (e *Engine) Estimate(now time.Time) sim.Pose2D {
	pose := e.startPose
	secs := now.Sub(e.startTime).Seconds()
	if secs <= 0 {
		return pose
	}
	linear, angular := e.Velocity()
	if math.Abs(angular) < straightEpsilon {
		pose.Pos2D.OffsetBy(pose.Orientation.Project(linear * secs))
		return pose
	}
	turn := angular * secs
	heading := pose.Orientation.Radians()
	radius := linear / angular
	pose.X += radius * (math.Sin(heading+turn) - math.Sin(heading))
	pose.Y -= radius * (math.Cos(heading+turn) - math.Cos(heading))
	pose.Orientation = pose.Orientation.AddRadians(turn)
	return pose
}
