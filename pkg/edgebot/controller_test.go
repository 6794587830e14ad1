package edgebot

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/edgebot/pkg/hal"
	"github.com/robotalks/edgebot/pkg/hal/fake"
)

type countingHAL struct {
	*fake.HAL
	randomCalls int
}

func (h *countingHAL) RandomInt(min, max int) int {
	h.randomCalls++
	return h.HAL.RandomInt(min, max)
}

type testEnv struct {
	t           *testing.T
	hal         *countingHAL
	ctl         *Controller
	rc          *Context
	transitions []Transition
}

func newTestEnv(t *testing.T) *testEnv {
	e := &testEnv{t: t, hal: &countingHAL{HAL: fake.New()}}
	e.ctl = NewController(e.hal)
	e.ctl.Listener = TransitionFunc(func(tr Transition) {
		e.transitions = append(e.transitions, tr)
	})
	e.rc = NewContext(0)
	e.ctl.Setup(e.rc, 1)
	return e
}

// enter puts the controller into state as if it transitioned at now.
func (e *testEnv) enter(state RobotState, now hal.Millis) *testEnv {
	e.hal.Set(now)
	e.rc.State, e.rc.PhaseStart = state, now
	return e
}

func (e *testEnv) tickAt(now hal.Millis) *testEnv {
	e.hal.Set(now)
	e.ctl.Tick(e.rc)
	require.True(e.t, e.rc.Valid(), "invalid context at %dms: %+v", now, *e.rc)
	return e
}

// tickRange ticks once every ms in [from, to].
func (e *testEnv) tickRange(from, to hal.Millis) *testEnv {
	for now := from; now <= to; now++ {
		e.tickAt(now)
	}
	return e
}

func (e *testEnv) edge(side hal.Side, detected bool) *testEnv {
	e.hal.SetEdge(side, detected)
	return e
}

func (e *testEnv) requireState(state RobotState) {
	require.Equal(e.t, state, e.rc.State, "state at %dms", e.hal.Clock)
}

func (e *testEnv) requireOutputs(left, right hal.Direction, power hal.Power) {
	require.Equal(e.t, [2]hal.Direction{left, right}, e.hal.Directions, "directions at %dms", e.hal.Clock)
	require.Equal(e.t, [2]hal.Power{power, power}, e.hal.Motors, "motors at %dms", e.hal.Clock)
}

func TestSetup(t *testing.T) {
	e := newTestEnv(t)
	require.Equal(t, []int64{1}, e.hal.Seeds)
	require.Equal(t, Start, e.rc.State)
	e.requireOutputs(hal.Forward, hal.Forward, hal.Off)
}

func TestStartSettle(t *testing.T) {
	// Scenario A
	e := newTestEnv(t)
	e.tickRange(0, 500)
	e.requireState(Start)
	e.requireOutputs(hal.Forward, hal.Forward, hal.Off)
	require.Empty(t, e.transitions)

	e.tickAt(501)
	e.requireState(Moving)
	require.Len(t, e.transitions, 1)
	require.Equal(t, Transition{From: Start, To: Moving, At: 501}, e.transitions[0])
	// the transition tick still belongs to Start.
	e.requireOutputs(hal.Forward, hal.Forward, hal.Off)

	e.tickAt(501)
	e.requireState(Moving)
	e.requireOutputs(hal.Forward, hal.Forward, hal.On)
	require.Len(t, e.transitions, 1, "no double transition")
}

func TestStartEdgeResetsSettle(t *testing.T) {
	e := newTestEnv(t)
	e.tickRange(0, 300)
	e.edge(hal.Right, true).tickRange(301, 350)
	e.requireOutputs(hal.Forward, hal.Forward, hal.Off)
	e.edge(hal.Right, false).tickRange(351, 850)
	e.requireState(Start)
	e.tickAt(851)
	e.requireState(Moving)
}

func TestMovingDebounce(t *testing.T) {
	// Scenario B
	e := newTestEnv(t).enter(Moving, 0)
	e.tickAt(0)
	e.requireOutputs(hal.Forward, hal.Forward, hal.On)

	e.edge(hal.Left, true).tickRange(0, 10)
	e.requireState(Moving)
	e.requireOutputs(hal.Forward, hal.Forward, hal.On)

	e.tickAt(11)
	e.requireState(Backstep)
	require.Equal(t, []Transition{{From: Moving, To: Backstep, At: 11}}, e.transitions)

	e.tickAt(11)
	e.requireOutputs(hal.Backward, hal.Backward, hal.On)
}

func TestMovingShortEdgeIgnored(t *testing.T) {
	e := newTestEnv(t).enter(Moving, 0)
	for round := 0; round < 5; round++ {
		base := hal.Millis(round * 20)
		e.edge(hal.Right, false).tickAt(base)
		e.edge(hal.Right, true).tickRange(base, base+10)
		e.requireState(Moving)
	}
	require.Empty(t, e.transitions)
}

func TestBackstep(t *testing.T) {
	// Scenario C
	e := newTestEnv(t).enter(Backstep, 0)
	e.hal.Script(30000, 1)
	e.tickRange(0, 100)
	e.requireState(Backstep)
	e.requireOutputs(hal.Backward, hal.Backward, hal.On)
	require.Zero(t, e.rc.PendingTurn)

	e.tickAt(101)
	e.requireState(ChangeAngle)
	require.Equal(t, 450, e.rc.PendingTurn)
	require.Equal(t, hal.Right, e.rc.TurnSide)
	require.Equal(t, []Transition{{
		From: Backstep, To: ChangeAngle, At: 101,
		PendingTurn: 450, TurnSide: hal.Right,
	}}, e.transitions)
}

func TestBackstepWaitsForClearSensors(t *testing.T) {
	e := newTestEnv(t).enter(Backstep, 0)
	e.edge(hal.Left, true).edge(hal.Right, true).tickRange(0, 400)
	e.requireState(Backstep)
	e.edge(hal.Left, false).tickAt(401)
	e.requireState(Backstep)
	e.edge(hal.Right, false).tickAt(402)
	e.requireState(ChangeAngle)
}

func TestChangeAngle(t *testing.T) {
	// Scenario D
	e := newTestEnv(t).enter(Backstep, 0)
	e.hal.Script(26667, 0)
	e.tickAt(101)
	e.requireState(ChangeAngle)
	require.Equal(t, 400, e.rc.PendingTurn)
	require.Equal(t, hal.Left, e.rc.TurnSide)

	e.tickRange(101, 101+399)
	e.requireState(ChangeAngle)
	e.requireOutputs(hal.Backward, hal.Forward, hal.On)

	e.tickAt(101 + 400)
	e.requireState(ChangeAngle)
	e.tickAt(101 + 401)
	e.requireState(Moving)
	require.Zero(t, e.rc.PendingTurn)
	require.Equal(t, Transition{From: ChangeAngle, To: Moving, At: 502}, e.transitions[len(e.transitions)-1])
}

func TestChangeAngleRightPivot(t *testing.T) {
	e := newTestEnv(t).enter(Backstep, 0)
	e.hal.Script(TurnAngleMin, 1)
	e.tickAt(101).tickAt(102)
	e.requireOutputs(hal.Forward, hal.Backward, hal.On)
}

// The tick taking a transition leaves the outputs of the old state,
// the next tick writes the new ones.
func TestOutputsChangeOnNextTick(t *testing.T) {
	testCases := []struct {
		name          string
		from, to      RobotState
		setup         func(e *testEnv)
		at            hal.Millis
		before, after [2]hal.Direction
	}{
		{
			name: "moving to backstep", from: Moving, to: Backstep,
			setup:  func(e *testEnv) { e.edge(hal.Left, true) },
			at:     11,
			before: [2]hal.Direction{hal.Forward, hal.Forward},
			after:  [2]hal.Direction{hal.Backward, hal.Backward},
		},
		{
			name: "backstep to change angle", from: Backstep, to: ChangeAngle,
			setup:  func(e *testEnv) { e.hal.Script(TurnAngleMin, 0) },
			at:     101,
			before: [2]hal.Direction{hal.Backward, hal.Backward},
			after:  [2]hal.Direction{hal.Backward, hal.Forward},
		},
		{
			name: "change angle to moving", from: ChangeAngle, to: Moving,
			setup: func(e *testEnv) {
				e.rc.PendingTurn, e.rc.TurnSide = 300, hal.Right
			},
			at:     301,
			before: [2]hal.Direction{hal.Forward, hal.Backward},
			after:  [2]hal.Direction{hal.Forward, hal.Forward},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEnv(t).enter(tc.from, 0)
			tc.setup(e)
			e.tickAt(0)
			e.requireOutputs(tc.before[0], tc.before[1], hal.On)

			e.tickAt(tc.at)
			e.requireState(tc.to)
			e.requireOutputs(tc.before[0], tc.before[1], hal.On)

			e.tickAt(tc.at)
			e.requireOutputs(tc.after[0], tc.after[1], hal.On)
		})
	}
}

func TestChangeAngleSampledOncePerEpisode(t *testing.T) {
	e := newTestEnv(t).enter(Backstep, 0)
	e.tickAt(101)
	require.Equal(t, 2, e.hal.randomCalls)
	turn, side := e.rc.PendingTurn, e.rc.TurnSide
	for now := hal.Millis(101); e.rc.State == ChangeAngle; now++ {
		e.tickAt(now)
		if e.rc.State == ChangeAngle {
			require.Equal(t, turn, e.rc.PendingTurn)
			require.Equal(t, side, e.rc.TurnSide)
		}
	}
	require.Equal(t, 2, e.hal.randomCalls)
}

func TestChangeAngleSamplesWhenUnset(t *testing.T) {
	e := newTestEnv(t).enter(ChangeAngle, 0)
	e.hal.Script(20000, 0)
	e.tickAt(0)
	require.Equal(t, 300, e.rc.PendingTurn)
	require.Equal(t, 2, e.hal.randomCalls)
	e.requireOutputs(hal.Backward, hal.Forward, hal.On)
}

func TestTurnDuration(t *testing.T) {
	testCases := []struct {
		sample int
		expect int
	}{
		{TurnAngleMin, 235},
		{TurnAngleMax - 1, 706},
		{26667, 400},
		{31415, 471},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expect, TurnDuration(tc.sample), "sample %d", tc.sample)
	}
}

func TestTurnDurationRange(t *testing.T) {
	e := newTestEnv(t)
	e.hal.SeedRandom(42)
	for i := 0; i < 1000; i++ {
		e.rc.PendingTurn = 0
		e.enter(Backstep, 0).tickAt(101)
		require.True(t, e.rc.PendingTurn >= 235 && e.rc.PendingTurn <= 706, "pivot %dms", e.rc.PendingTurn)
	}
}

func TestIdempotentOutputs(t *testing.T) {
	testCases := []struct {
		name  string
		state RobotState
		edge  bool
	}{
		{"start", Start, false},
		{"start with edge", Start, true},
		{"moving", Moving, false},
		{"backstep", Backstep, true},
		{"change angle", ChangeAngle, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEnv(t).enter(tc.state, 0)
			e.edge(hal.Left, tc.edge)
			e.tickAt(1)
			changes := e.hal.Changes
			e.tickAt(1).tickAt(1).tickAt(1)
			require.Equal(t, changes, e.hal.Changes)
			require.Equal(t, tc.state, e.rc.State)
		})
	}
}

func TestBrakingIsInert(t *testing.T) {
	e := newTestEnv(t).enter(Braking, 0)
	changes := e.hal.Changes
	e.edge(hal.Left, true).tickRange(0, 1000)
	e.requireState(Braking)
	require.Equal(t, changes, e.hal.Changes)
	require.Empty(t, e.transitions)
}

func TestClockWrap(t *testing.T) {
	e := newTestEnv(t)
	start := hal.Millis(math.MaxUint32 - 199)
	e.enter(Start, start)
	e.tickAt(start).tickAt(start + 500)
	e.requireState(Start)
	e.tickAt(start + 501)
	e.requireState(Moving)
}

func TestRandomWalkInvariants(t *testing.T) {
	e := newTestEnv(t)
	rnd := rand.New(rand.NewSource(7))
	visited := make(map[RobotState]bool)
	for now := hal.Millis(0); now < 60000; now++ {
		if now%25 == 0 {
			e.edge(hal.Left, rnd.Intn(20) == 0)
			e.edge(hal.Right, rnd.Intn(20) == 0)
		}
		e.tickAt(now)
		visited[e.rc.State] = true
		require.Equal(t, e.rc.State == ChangeAngle, e.rc.PendingTurn != 0)
	}
	require.False(t, visited[Braking])
	for _, s := range []RobotState{Start, Moving, Backstep, ChangeAngle} {
		require.True(t, visited[s], "state %s never visited", s)
	}
	for i := 1; i < len(e.transitions); i++ {
		require.Equal(t, e.transitions[i-1].To, e.transitions[i].From)
	}
}
