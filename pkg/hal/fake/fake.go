// Package fake provides an in-memory HAL with a settable clock,
// settable sensors, recorded outputs and scripted random numbers.
package fake

import (
	"math/rand"

	"github.com/robotalks/edgebot/pkg/hal"
)

// HAL implements hal.HAL in memory.
type HAL struct {
	Clock      hal.Millis
	Edges      [2]bool
	Directions [2]hal.Direction
	Motors     [2]hal.Power

	// Changes counts output writes which changed a value.
	Changes int
	// Seeds records all SeedRandom calls.
	Seeds []int64

	randoms []int
	rnd     *rand.Rand
}

// New creates a HAL at time zero.
func New() *HAL {
	return &HAL{rnd: rand.New(rand.NewSource(1))}
}

// Set sets the clock.
func (h *HAL) Set(now hal.Millis) *HAL {
	h.Clock = now
	return h
}

// Advance moves the clock forward.
func (h *HAL) Advance(ms hal.Millis) *HAL {
	h.Clock += ms
	return h
}

// SetEdge sets the state of a sensor.
func (h *HAL) SetEdge(side hal.Side, detected bool) *HAL {
	h.Edges[side] = detected
	return h
}

// Script queues values returned by RandomInt before falling
// back to the seeded source.
func (h *HAL) Script(vals ...int) *HAL {
	h.randoms = append(h.randoms, vals...)
	return h
}

// EdgeDetected implements hal.HAL.
func (h *HAL) EdgeDetected(side hal.Side) bool {
	return h.Edges[side]
}

// SetWheelDirection implements hal.HAL.
func (h *HAL) SetWheelDirection(side hal.Side, dir hal.Direction) {
	if h.Directions[side] != dir {
		h.Changes++
	}
	h.Directions[side] = dir
}

// SetMotor implements hal.HAL.
func (h *HAL) SetMotor(side hal.Side, power hal.Power) {
	if h.Motors[side] != power {
		h.Changes++
	}
	h.Motors[side] = power
}

// Now implements hal.HAL.
func (h *HAL) Now() hal.Millis {
	return h.Clock
}

// RandomInt implements hal.HAL.
func (h *HAL) RandomInt(min, max int) int {
	if len(h.randoms) > 0 {
		val := h.randoms[0]
		h.randoms = h.randoms[1:]
		return val
	}
	if max <= min {
		return min
	}
	return min + h.rnd.Intn(max-min)
}

// SeedRandom implements hal.HAL.
func (h *HAL) SeedRandom(seed int64) {
	h.Seeds = append(h.Seeds, seed)
	h.rnd.Seed(seed)
}

// Pivoting reports whether the wheels turn in opposite directions with
// both motors on, returning the side whose wheel runs backward.
func (h *HAL) Pivoting() (hal.Side, bool) {
	if h.Motors[hal.Left] != hal.On || h.Motors[hal.Right] != hal.On {
		return hal.Left, false
	}
	switch {
	case h.Directions[hal.Left] == hal.Backward && h.Directions[hal.Right] == hal.Forward:
		return hal.Left, true
	case h.Directions[hal.Left] == hal.Forward && h.Directions[hal.Right] == hal.Backward:
		return hal.Right, true
	}
	return hal.Left, false
}
