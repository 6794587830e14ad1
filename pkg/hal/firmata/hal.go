// Package firmata implements the HAL on a microcontroller running
// StandardFirmata, connected over a serial port.
package firmata

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/edgebot/pkg/framework"
	"github.com/robotalks/edgebot/pkg/hal"
)

// Board is the subset of the gobot Firmata adaptor used by the HAL.
type Board interface {
	DigitalRead(pin string) (int, error)
	DigitalWrite(pin string, level byte) error
	Finalize() error
}

// Pin levels.
const (
	Low  byte = 0
	High byte = 1
)

type pinOp struct {
	op  string
	pin int
}

// HAL implements hal.HAL on a Board.
type HAL struct {
	Board Board
	Pins  Pins

	invertRight bool
	start       time.Time
	rnd         *rand.Rand

	lock    sync.Mutex
	failing map[pinOp]bool
	closed  bool
}

// New creates a HAL on a connected board.
func New(board Board, conf *Config) *HAL {
	return &HAL{
		Board:       board,
		Pins:        conf.Pins,
		invertRight: conf.InvertRight,
		start:       time.Now(),
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
		failing:     make(map[pinOp]bool),
	}
}

// DirectionLevel returns the pin level for a wheel direction.
func DirectionLevel(side hal.Side, dir hal.Direction, invertRight bool) byte {
	level := High
	if dir == hal.Backward {
		level = Low
	}
	if side == hal.Right && invertRight {
		level ^= 1
	}
	return level
}

// SensorActivated converts a raw, active-low sensor level.
func SensorActivated(level int) bool {
	return level == 0
}

func (h *HAL) init() error {
	var errs fx.AggregatedError
	for _, side := range hal.Sides {
		errs.Add(h.write(h.Pins.Brake[side], Low))
		errs.Add(h.write(h.Pins.Motor[side], Low))
		errs.Add(h.write(h.Pins.Direction[side], DirectionLevel(side, hal.Forward, h.invertRight)))
		// the first read switches the pin to input and enables reporting.
		_, err := h.Board.DigitalRead(strconv.Itoa(h.Pins.Sensor[side]))
		errs.Add(err)
	}
	if err := errs.Aggregate(); err != nil {
		return fmt.Errorf("init pins: %w", err)
	}
	return nil
}

// EdgeDetected implements hal.HAL. A failed read counts as an edge.
func (h *HAL) EdgeDetected(side hal.Side) bool {
	pin := h.Pins.Sensor[side]
	val, err := h.Board.DigitalRead(strconv.Itoa(pin))
	h.report("read", pin, err)
	if err != nil {
		return true
	}
	return SensorActivated(val)
}

// SetWheelDirection implements hal.HAL.
func (h *HAL) SetWheelDirection(side hal.Side, dir hal.Direction) {
	pin := h.Pins.Direction[side]
	h.report("write", pin, h.write(pin, DirectionLevel(side, dir, h.invertRight)))
}

// SetMotor implements hal.HAL.
func (h *HAL) SetMotor(side hal.Side, power hal.Power) {
	level := Low
	if power == hal.On {
		level = High
	}
	pin := h.Pins.Motor[side]
	h.report("write", pin, h.write(pin, level))
}

// Now implements hal.HAL.
func (h *HAL) Now() hal.Millis {
	return hal.Millis(time.Since(h.start).Milliseconds())
}

// RandomInt implements hal.HAL.
func (h *HAL) RandomInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + h.rnd.Intn(max-min)
}

// SeedRandom implements hal.HAL.
func (h *HAL) SeedRandom(seed int64) {
	h.rnd.Seed(seed)
}

// AddToLoop implements LoopAdder.
func (h *HAL) AddToLoop(l *fx.Loop) {
	l.AddRunnable(fx.NamedRun("firmata", h))
}

// Run keeps the board until ctx is done, then stops both
// motors and releases the board.
func (h *HAL) Run(ctx context.Context) error {
	<-ctx.Done()
	return h.Close()
}

// Close stops both motors and releases the board. Writes after
// Close are ignored.
func (h *HAL) Close() error {
	var errs fx.AggregatedError
	for _, side := range hal.Sides {
		errs.Add(h.write(h.Pins.Motor[side], Low))
	}
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	errs.Add(h.Board.Finalize())
	glog.Info("board released")
	return errs.Aggregate()
}

func (h *HAL) write(pin int, level byte) error {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.closed {
		return nil
	}
	return h.Board.DigitalWrite(strconv.Itoa(pin), level)
}

func (h *HAL) report(op string, pin int, err error) {
	key := pinOp{op: op, pin: pin}
	h.lock.Lock()
	defer h.lock.Unlock()
	if err != nil {
		if !h.failing[key] {
			h.failing[key] = true
			glog.Errorf("%s pin %d: %v", op, pin, err)
		}
	} else if h.failing[key] {
		delete(h.failing, key)
		glog.Infof("%s pin %d recovered", op, pin)
	}
}
