package bench

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/edgebot/pkg/edgebot"
	"github.com/robotalks/edgebot/pkg/hal"
	"github.com/robotalks/edgebot/pkg/sim"
	"github.com/robotalks/edgebot/pkg/sim/bots/diffbot"
)

func newBench(t *testing.T) *Bench {
	simConf := diffbot.NewConfig()
	simConf.Seed = 3
	return New(simConf, edgebot.NewConfig())
}

func states(transitions []edgebot.Transition) (res []edgebot.RobotState) {
	for _, tr := range transitions {
		res = append(res, tr.To)
	}
	return
}

func TestTickAndStatus(t *testing.T) {
	b := newBench(t)
	require.Empty(t, b.Tick(500))
	st := b.Status()
	require.Equal(t, "Start", st.State)
	require.Equal(t, uint64(500), st.Ticks)
	require.Equal(t, uint32(500), st.NowMs)
	require.Equal(t, [2]string{"off", "off"}, st.Motors)

	// setup resets the phase at 1ms, the settle time ends after 501ms.
	require.Empty(t, b.Tick(1))
	require.Equal(t, []edgebot.RobotState{edgebot.Moving}, states(b.Tick(1)))
	b.Tick(1)
	st = b.Status()
	require.Equal(t, "Moving", st.State)
	require.Equal(t, [2]string{"forward", "forward"}, st.Motors)
}

func TestForcedEdgeEpisode(t *testing.T) {
	b := newBench(t)
	b.RunFor(time.Second)
	require.Equal(t, edgebot.Moving, b.Bot.State())

	b.Sim.ForceEdge(hal.Right, diffbot.EdgeOn)
	require.Equal(t, []edgebot.RobotState{edgebot.Backstep}, states(b.Tick(11)))
	b.Sim.ForceEdge(hal.Right, diffbot.EdgeAuto)

	transitions := b.RunFor(200 * time.Millisecond)
	require.Equal(t, []edgebot.RobotState{edgebot.ChangeAngle}, states(transitions))
	turn := transitions[0]
	require.GreaterOrEqual(t, turn.PendingTurn, 235)
	require.LessOrEqual(t, turn.PendingTurn, 706)

	st := b.Status()
	require.NotNil(t, st.Turn)
	require.Equal(t, turn.PendingTurn, st.Turn.DurationMs)

	transitions = b.RunFor(time.Duration(turn.PendingTurn+2) * time.Millisecond)
	require.Equal(t, []edgebot.RobotState{edgebot.Moving}, states(transitions))
	require.False(t, b.Sim.Fallen())
}

func TestPlace(t *testing.T) {
	b := newBench(t)
	require.NoError(t, b.Place(100, -50, 90))
	st := b.Status()
	require.InDelta(t, 100, st.X, 1e-9)
	require.InDelta(t, -50, st.Y, 1e-9)
	require.InDelta(t, 90, st.Heading, 1e-9)
	require.ErrorIs(t, b.Place(5000, 0, 0), sim.ErrOffTable)
}

func TestFormat(t *testing.T) {
	require.Equal(t, "     700ms Backstep -> ChangeAngle (300ms, left wheel back)",
		FormatTransition(edgebot.Transition{From: edgebot.Backstep, To: edgebot.ChangeAngle, At: 700, PendingTurn: 300}))
	require.Equal(t, "      10ms Start -> Moving",
		FormatTransition(edgebot.Transition{From: edgebot.Start, To: edgebot.Moving, At: 10}))

	st := Status{State: "ChangeAngle", Ticks: 2, NowMs: 3, Motors: [2]string{"backward", "forward"},
		Turn: &TurnState{DurationMs: 300, Side: "left"}, Fallen: true}
	require.Equal(t, "ChangeAngle tick=2 t=3ms pose=(0.0, 0.0, 0.0°) edges=false/false motors=backward/forward turn=300ms left FALLEN",
		FormatStatus(st))

	out, err := json.Marshal(Status{State: "Start"})
	require.NoError(t, err)
	require.NotContains(t, string(out), "turn")
}

func TestParse(t *testing.T) {
	side, err := ParseSide("right")
	require.NoError(t, err)
	require.Equal(t, hal.Right, side)
	_, err = ParseSide("up")
	require.Error(t, err)

	mode, err := ParseEdgeMode("off")
	require.NoError(t, err)
	require.Equal(t, diffbot.EdgeOff, mode)
	_, err = ParseEdgeMode("maybe")
	require.Error(t, err)

	require.Equal(t, [][]string{{"run", "1000"}, {"status"}},
		SplitCommands([]string{"run", "1000", "--", "--", "status"}))
	require.Empty(t, SplitCommands(nil))
}

func TestEvalOnlyShell(t *testing.T) {
	saved := evalOnly
	defer func() { evalOnly = saved }()

	evalOnly = true
	s := NewShell(newBench(t))
	require.False(t, s.Interactive)
	s.Run("tick", "5", "--", "tick", "2")
	require.Equal(t, uint64(7), s.Bench.Status().Ticks)

	evalOnly = false
	require.True(t, NewShell(newBench(t)).Interactive)
}
