package firmata

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/edgebot/pkg/hal"
)

type fakeBoard struct {
	levels    map[int]byte
	inputs    map[int]int
	readErr   error
	writeErr  error
	finalized bool
}

func newFakeBoard() *fakeBoard {
	return &fakeBoard{levels: make(map[int]byte), inputs: make(map[int]int)}
}

func (b *fakeBoard) DigitalRead(pin string) (int, error) {
	if b.readErr != nil {
		return 0, b.readErr
	}
	n, _ := strconv.Atoi(pin)
	return b.inputs[n], nil
}

func (b *fakeBoard) DigitalWrite(pin string, level byte) error {
	if b.writeErr != nil {
		return b.writeErr
	}
	n, _ := strconv.Atoi(pin)
	b.levels[n] = level
	return nil
}

func (b *fakeBoard) Finalize() error {
	b.finalized = true
	return nil
}

func newTestHAL(t *testing.T) (*HAL, *fakeBoard) {
	board := newFakeBoard()
	// sensors idle high: surface present.
	board.inputs[DefaultPins.Sensor[hal.Left]] = 1
	board.inputs[DefaultPins.Sensor[hal.Right]] = 1
	h := New(board, NewConfig())
	require.NoError(t, h.init())
	return h, board
}

func TestInitPins(t *testing.T) {
	_, board := newTestHAL(t)
	require.Equal(t, Low, board.levels[8])
	require.Equal(t, Low, board.levels[9])
	require.Equal(t, Low, board.levels[11])
	require.Equal(t, Low, board.levels[3])
	require.Equal(t, High, board.levels[12])
	// right wheel is inverted.
	require.Equal(t, Low, board.levels[13])
}

func TestDirectionLevel(t *testing.T) {
	testCases := []struct {
		side   hal.Side
		dir    hal.Direction
		invert bool
		expect byte
	}{
		{hal.Left, hal.Forward, true, High},
		{hal.Left, hal.Backward, true, Low},
		{hal.Right, hal.Forward, true, Low},
		{hal.Right, hal.Backward, true, High},
		{hal.Right, hal.Forward, false, High},
		{hal.Right, hal.Backward, false, Low},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expect, DirectionLevel(tc.side, tc.dir, tc.invert), "%s %s invert=%v", tc.side, tc.dir, tc.invert)
	}
}

func TestOutputs(t *testing.T) {
	h, board := newTestHAL(t)
	h.SetWheelDirection(hal.Left, hal.Backward)
	h.SetWheelDirection(hal.Right, hal.Backward)
	h.SetMotor(hal.Left, hal.On)
	h.SetMotor(hal.Right, hal.On)
	require.Equal(t, Low, board.levels[12])
	require.Equal(t, High, board.levels[13])
	require.Equal(t, High, board.levels[11])
	require.Equal(t, High, board.levels[3])
}

func TestEdgeDetectedActiveLow(t *testing.T) {
	h, board := newTestHAL(t)
	require.False(t, h.EdgeDetected(hal.Left))
	require.False(t, h.EdgeDetected(hal.Right))
	board.inputs[DefaultPins.Sensor[hal.Right]] = 0
	require.False(t, h.EdgeDetected(hal.Left))
	require.True(t, h.EdgeDetected(hal.Right))
}

func TestReadFailureIsEdge(t *testing.T) {
	h, board := newTestHAL(t)
	board.readErr = errors.New("serial gone")
	require.True(t, h.EdgeDetected(hal.Left))
	require.True(t, h.failing[pinOp{op: "read", pin: DefaultPins.Sensor[hal.Left]}])
	board.readErr = nil
	require.False(t, h.EdgeDetected(hal.Left))
	require.Empty(t, h.failing)
}

func TestCloseStopsMotors(t *testing.T) {
	h, board := newTestHAL(t)
	h.SetMotor(hal.Left, hal.On)
	h.SetMotor(hal.Right, hal.On)
	require.NoError(t, h.Close())
	require.Equal(t, Low, board.levels[11])
	require.Equal(t, Low, board.levels[3])
	require.True(t, board.finalized)

	h.SetMotor(hal.Left, hal.On)
	require.Equal(t, Low, board.levels[11])
	require.NoError(t, h.Close())
}

func TestRandomInt(t *testing.T) {
	h, _ := newTestHAL(t)
	h.SeedRandom(3)
	for i := 0; i < 100; i++ {
		v := h.RandomInt(0, 2)
		require.True(t, v == 0 || v == 1)
	}
	require.Equal(t, 5, h.RandomInt(5, 5))
}
