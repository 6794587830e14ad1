// Package bench drives a simulated robot on a manual clock,
// one tick at a time, from an interactive shell.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/robotalks/edgebot/pkg/edgebot"
	fx "github.com/robotalks/edgebot/pkg/framework"
	"github.com/robotalks/edgebot/pkg/hal"
	"github.com/robotalks/edgebot/pkg/sim"
	"github.com/robotalks/edgebot/pkg/sim/bots/diffbot"
)

// Bench hosts a Bot on a simulated robot. The loop is never
// started, each tick advances the clock by Step and runs one
// iteration.
type Bench struct {
	Clock *sim.ManualClock
	Sim   *diffbot.Bot
	Bot   *edgebot.Bot
	Loop  *fx.Loop
	Step  time.Duration

	transitions []edgebot.Transition
}

// Status is a snapshot of the robot.
type Status struct {
	State   string     `json:"state"`
	Ticks   uint64     `json:"ticks"`
	NowMs   uint32     `json:"now_ms"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
	Heading float64    `json:"heading"`
	Fallen  bool       `json:"fallen"`
	Edges   [2]bool    `json:"edges"`
	Motors  [2]string  `json:"motors"`
	Turn    *TurnState `json:"turn,omitempty"`
}

// TurnState is the pivot in progress.
type TurnState struct {
	DurationMs int    `json:"duration_ms"`
	Side       string `json:"side"`
}

// New creates a Bench.
func New(simConf *diffbot.Config, botConf *edgebot.Config) *Bench {
	clock := sim.NewManualClock(time.Unix(0, 0))
	b := &Bench{
		Clock: clock,
		Sim:   simConf.NewBot(clock),
		Loop:  fx.NewLoop(),
		Step:  time.Millisecond,
	}
	seed := simConf.Seed
	if seed == 0 {
		seed = botConf.RandomSeed()
	}
	b.Bot = edgebot.NewBot(simConf.Name, b.Sim, seed)
	b.Loop.Add(b.Bot, b.Sim)
	b.Loop.AddController(fx.PrLvPostProc, fx.ControlFunc(b.record))
	return b
}

// Tick runs n iterations and returns the transitions which happened.
func (b *Bench) Tick(n int) []edgebot.Transition {
	b.transitions = nil
	ctx := context.Background()
	for i := 0; i < n; i++ {
		b.Clock.Advance(b.Step)
		b.Loop.Iterate(ctx)
	}
	return b.transitions
}

// RunFor ticks through d of simulated time.
func (b *Bench) RunFor(d time.Duration) []edgebot.Transition {
	return b.Tick(int(d / b.Step))
}

// Place moves the robot.
func (b *Bench) Place(x, y, deg float64) error {
	pose := sim.Pose2D{Pos2D: sim.Pos2D{X: x, Y: y}, Orientation: sim.AngleFromDegrees(deg)}
	if !b.Sim.Table.Contains(pose.Pos2D) {
		return fmt.Errorf("(%v, %v): %w", x, y, sim.ErrOffTable)
	}
	b.Sim.SetPose2D(pose)
	return nil
}

// Status takes a snapshot.
func (b *Bench) Status() Status {
	pose := b.Sim.Position2D()
	motors, dirs := b.Sim.Motors()
	st := Status{
		State:   b.Bot.State().String(),
		Ticks:   b.Bot.Ticks(),
		NowMs:   uint32(b.Sim.Now()),
		X:       pose.X,
		Y:       pose.Y,
		Heading: pose.Orientation.Degrees(),
		Fallen:  b.Sim.Fallen(),
	}
	for _, side := range hal.Sides {
		st.Edges[side] = b.Sim.EdgeDetected(side)
		st.Motors[side] = motors[side].String()
		if motors[side] == hal.On {
			st.Motors[side] = dirs[side].String()
		}
	}
	if rc := b.Bot.Context; rc.State == edgebot.ChangeAngle {
		st.Turn = &TurnState{DurationMs: rc.PendingTurn, Side: rc.TurnSide.String()}
	}
	return st
}

func (b *Bench) record(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		if msg, ok := mctx.CurrentMessage().(*edgebot.TransitionMsg); ok {
			b.transitions = append(b.transitions, msg.Transition)
		}
	}))
	return nil
}

// FormatTransition prints a Transition into friendly string for display.
func FormatTransition(t edgebot.Transition) string {
	s := fmt.Sprintf("%8dms %s -> %s", t.At, t.From, t.To)
	if t.To == edgebot.ChangeAngle {
		s += fmt.Sprintf(" (%dms, %s wheel back)", t.PendingTurn, t.TurnSide)
	}
	return s
}

// FormatStatus prints Status into friendly string for display.
func FormatStatus(st Status) string {
	s := fmt.Sprintf("%s tick=%d t=%dms pose=(%.1f, %.1f, %.1f°) edges=%v/%v motors=%s/%s",
		st.State, st.Ticks, st.NowMs, st.X, st.Y, st.Heading,
		st.Edges[0], st.Edges[1], st.Motors[0], st.Motors[1])
	if st.Turn != nil {
		s += fmt.Sprintf(" turn=%dms %s", st.Turn.DurationMs, st.Turn.Side)
	}
	if st.Fallen {
		s += " FALLEN"
	}
	return s
}
