package sim

import "math"

// Angle is a heading in radians, normalized into (-π, π].
// Zero points to +X, positive angles turn counter-clockwise.
type Angle float64

// AngleFromDegrees creates Angle from degrees.
func AngleFromDegrees(d float64) Angle {
	return AngleFromRadians(d * math.Pi / 180)
}

// AngleFromRadians creates Angle from radians.
func AngleFromRadians(r float64) Angle {
	r = math.Remainder(r, 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return Angle(r)
}

// Radians gets angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees gets angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Add turns by another Angle.
func (a Angle) Add(a1 Angle) Angle {
	return a.AddRadians(float64(a1))
}

// AddRadians turns by r radians.
func (a Angle) AddRadians(r float64) Angle {
	return AngleFromRadians(float64(a) + r)
}

// AddDegrees turns by d degrees.
func (a Angle) AddDegrees(d float64) Angle {
	return a.Add(AngleFromDegrees(d))
}

// Sub returns the shortest signed turn from a1 to a.
func (a Angle) Sub(a1 Angle) Angle {
	return AngleFromRadians(float64(a) - float64(a1))
}

// Cos wraps math.Cos.
func (a Angle) Cos() float64 {
	return math.Cos(float64(a))
}

// Sin wraps math.Sin.
func (a Angle) Sin() float64 {
	return math.Sin(float64(a))
}

// Project returns the offset of moving dist along the heading.
func (a Angle) Project(dist float64) Pos2D {
	return Pos2D{X: dist * a.Cos(), Y: dist * a.Sin()}
}
