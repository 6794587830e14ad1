package edgebot

import (
	fx "github.com/robotalks/edgebot/pkg/framework"
	"github.com/robotalks/edgebot/pkg/hal"
)

// TransitionMsg carries a Transition through the loop so that
// reporting controllers running later in the same iteration see it.
type TransitionMsg struct {
	Robot string
	Transition
}

// NewMessage implements Message.
func (m *TransitionMsg) NewMessage() fx.Message { return &TransitionMsg{} }

// Bot runs a Controller in a framework.Loop, one tick per iteration.
// Its accessors must only be used from the loop goroutine, or while
// the loop is stopped.
type Bot struct {
	Controller *Controller
	Context    *Context
	Seed       int64

	name    string
	ticks   uint64
	ready   bool
	pending []Transition
}

// NewBot creates a Bot named name driving h.
func NewBot(name string, h hal.HAL, seed int64) *Bot {
	b := &Bot{
		Controller: NewController(h),
		Context:    NewContext(h.Now()),
		Seed:       seed,
		name:       name,
	}
	b.Controller.Listener = TransitionFunc(b.record)
	return b
}

// Name implements Named.
func (b *Bot) Name() string {
	return b.name
}

// State returns the current state.
func (b *Bot) State() RobotState {
	return b.Context.State
}

// Now returns the HAL clock.
func (b *Bot) Now() hal.Millis {
	return b.Controller.HAL.Now()
}

// Ticks returns the number of ticks evaluated.
func (b *Bot) Ticks() uint64 {
	return b.ticks
}

// AddToLoop implements LoopAdder.
func (b *Bot) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvControl, b)
}

// Control implements Controller.
func (b *Bot) Control(cc fx.ControlContext) error {
	b.Step()
	for _, t := range b.pending {
		cc.Messages().AddMessages(&TransitionMsg{Robot: b.name, Transition: t})
	}
	b.pending = b.pending[:0]
	return nil
}

// Step runs Setup on first use and then a single tick. Transitions
// are kept until the next Control.
func (b *Bot) Step() {
	if !b.ready {
		b.Controller.Setup(b.Context, b.Seed)
		b.ready = true
	}
	b.Controller.Tick(b.Context)
	b.ticks++
}

func (b *Bot) record(t Transition) {
	b.pending = append(b.pending, t)
}
