package sim

import "errors"

// ErrOffTable indicates an object left the supporting surface.
var ErrOffTable = errors.New("off the table")

// Size2D defines the rectangular size in 2D.
type Size2D struct {
	CX, CY float64
}

// Pos2D defines the position in 2D, in mm.
type Pos2D struct {
	X, Y float64
}

// Rect defines a rectangle in 2D.
type Rect struct {
	Pos2D
	Size2D
}

// Pose2D defines the pose in 2D.
type Pose2D struct {
	Pos2D
	Orientation Angle
}

// Rectangular object provides a rectangular outline dimension.
type Rectangular interface {
	OutlineRect() Rect
}

// Positionable2D object maintains a 2D position.
type Positionable2D interface {
	Position2D() Pose2D
}

// Placeable2D object can be moved with a new pose on a 2D plane.
type Placeable2D interface {
	Positionable2D
	SetPose2D(Pose2D) Pose2D
}

// Add is a helper to add Pos2D.
func (p Pos2D) Add(p1 Pos2D) Pos2D {
	return Pos2D{X: p.X + p1.X, Y: p.Y + p1.Y}
}

// OffsetBy performs Add in-place.
func (p *Pos2D) OffsetBy(p1 Pos2D) *Pos2D {
	p.X += p1.X
	p.Y += p1.Y
	return p
}

// Contains checks p is inside the rectangle, borders included.
func (r Rect) Contains(p Pos2D) bool {
	return p.X >= r.X && p.X <= r.X+r.CX &&
		p.Y >= r.Y && p.Y <= r.Y+r.CY
}

// Centered creates a rectangle of size centered at the origin.
func Centered(size Size2D) Rect {
	return Rect{Pos2D: Pos2D{X: -size.CX / 2, Y: -size.CY / 2}, Size2D: size}
}

// Local converts a point in the pose's local frame (X forward,
// Y to the left) into world coordinates.
func (p Pose2D) Local(local Pos2D) Pos2D {
	cos, sin := p.Orientation.Cos(), p.Orientation.Sin()
	return Pos2D{
		X: p.X + local.X*cos - local.Y*sin,
		Y: p.Y + local.X*sin + local.Y*cos,
	}
}
