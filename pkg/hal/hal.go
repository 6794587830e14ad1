// Package hal defines the hardware boundary of the edge-avoidance robot:
// two binary edge sensors, two wheels with a direction and an on/off
// motor each, a millisecond clock and a random number source.
package hal

// Side identifies a wheel or sensor.
type Side int

// Sides.
const (
	Left Side = iota
	Right
)

// Sides lists both sides in index order.
var Sides = [...]Side{Left, Right}

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Direction is the rotating direction of a wheel.
type Direction int

// Directions.
const (
	Forward Direction = iota
	Backward
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Power is the on/off state of a motor.
type Power int

// Power states.
const (
	Off Power = iota
	On
)

// String implements fmt.Stringer.
func (p Power) String() string {
	if p == On {
		return "on"
	}
	return "off"
}

// Millis is a wrapping millisecond counter. Elapsed time is
// computed with unsigned subtraction so it is correct across
// wrap-around.
type Millis uint32

// Since returns milliseconds elapsed from start to m.
func (m Millis) Since(start Millis) Millis {
	return m - start
}

// HAL is the hardware abstraction consumed by the controller.
// All calls must return immediately; failures are not reported
// to the caller.
type HAL interface {
	// EdgeDetected reports whether the sensor on side sees no
	// surface underneath.
	EdgeDetected(side Side) bool
	// SetWheelDirection sets the rotating direction of a wheel.
	SetWheelDirection(side Side, dir Direction)
	// SetMotor switches a motor on or off.
	SetMotor(side Side, power Power)
	// Now returns the monotonic clock.
	Now() Millis
	// RandomInt returns a uniform random integer in [min, max).
	RandomInt(min, max int) int
	// SeedRandom seeds the random number source.
	SeedRandom(seed int64)
}
