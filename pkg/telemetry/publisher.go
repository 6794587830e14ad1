package telemetry

import (
	"context"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/edgebot/pkg/edgebot"
	fx "github.com/robotalks/edgebot/pkg/framework"
	"github.com/robotalks/edgebot/pkg/hal"
	"github.com/robotalks/edgebot/pkg/telemetry/msgs"
)

// StatusSource provides the periodic status.
type StatusSource interface {
	State() edgebot.RobotState
	Ticks() uint64
	Now() hal.Millis
}

// Publisher turns transitions into events in the loop and sends
// them to sinks from its own goroutine. When the queue is full,
// events are dropped and counted.
type Publisher struct {
	Robot          string
	Source         StatusSource
	Sinks          []Sink
	StatusInterval time.Duration

	queue      chan msgs.SerializableMessage
	dropped    uint64
	lastStatus time.Time
	seq        uint32
	failing    map[int]bool
}

// NewPublisher creates a Publisher.
func NewPublisher(robot string, src StatusSource, queueSize int, sinks ...Sink) *Publisher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Publisher{
		Robot:   robot,
		Source:  src,
		Sinks:   sinks,
		queue:   make(chan msgs.SerializableMessage, queueSize),
		failing: make(map[int]bool),
	}
}

// StateChangedFrom converts a Transition into its event.
func StateChangedFrom(robot string, t edgebot.Transition) *msgs.StateChanged {
	ev := &msgs.StateChanged{}
	ev.Robot = robot
	ev.From, ev.To = t.From.String(), t.To.String()
	ev.AtMs = uint32(t.At)
	if t.To == edgebot.ChangeAngle {
		ev.TurnMs = int32(t.PendingTurn)
		ev.TurnSide = t.TurnSide.String()
	}
	return ev
}

// Name implements Named.
func (p *Publisher) Name() string {
	return "telemetry"
}

// AddToLoop implements LoopAdder.
func (p *Publisher) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvPostProc, p)
	l.AddRunnable(p)
}

// Dropped returns the number of events dropped so far.
// Must be called from the loop goroutine.
func (p *Publisher) Dropped() uint64 {
	return p.dropped
}

// Control implements Controller.
func (p *Publisher) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		if m, ok := mctx.CurrentMessage().(*edgebot.TransitionMsg); ok {
			p.post(StateChangedFrom(p.Robot, m.Transition))
		}
	}))
	if p.Source != nil && p.StatusInterval > 0 {
		if now := cc.Time(); p.lastStatus.IsZero() || now.Sub(p.lastStatus) >= p.StatusInterval {
			p.lastStatus = now
			st := &msgs.Status{}
			st.Robot = p.Robot
			st.State = p.Source.State().String()
			st.Ticks = p.Source.Ticks()
			st.UptimeMs = uint32(p.Source.Now())
			st.Dropped = p.dropped
			p.post(st)
		}
	}
	return nil
}

func (p *Publisher) post(msg msgs.SerializableMessage) {
	select {
	case p.queue <- msg:
	default:
		p.dropped++
		glog.V(2).Infof("telemetry queue full, dropped %d", p.dropped)
	}
}

// Run implements Runnable. It runs the sinks and feeds them
// until ctx is done.
func (p *Publisher) Run(ctx context.Context) error {
	runner := fx.NewRunnerWith(ctx)
	for _, sink := range p.Sinks {
		runner.Go(sink)
	}
	for {
		select {
		case <-ctx.Done():
			return runner.Wait()
		case msg := <-p.queue:
			p.Send(msg)
		}
	}
}

// Send encodes msg and writes it to all sinks.
func (p *Publisher) Send(msg msgs.SerializableMessage) error {
	typed, err := msgs.TypedFrom(msg)
	if err != nil {
		return err
	}
	typed.Sequence = p.seq
	p.seq++
	data, err := typed.Encode()
	if err != nil {
		return err
	}
	var errs fx.AggregatedError
	for n, sink := range p.Sinks {
		err := sink.WritePacket(data)
		switch {
		case err != nil && !p.failing[n]:
			glog.Warningf("telemetry sink %d: %v", n, err)
		case err == nil && p.failing[n]:
			glog.Infof("telemetry sink %d recovered", n)
		}
		p.failing[n] = err != nil
		errs.Add(err)
	}
	return errs.Aggregate()
}
