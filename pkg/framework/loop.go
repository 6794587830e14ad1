package framework

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/golang/glog"
)

// DefaultInterval is the iteration interval of a new Loop.
const DefaultInterval = time.Millisecond

// Loop evaluates controllers by priority level once per iteration
// and hosts the Runnables which serve them.
type Loop struct {
	// Interval between iterations. Zero or negative runs
	// iterations back-to-back.
	Interval time.Duration

	levels    [PriorityLevels]level
	runnables []Runnable

	lock       sync.Mutex
	posted     []Message
	iterations uint64
	wakeUp     chan struct{}
}

// LoopAdder adds components to a loop.
type LoopAdder interface {
	AddToLoop(*Loop)
}

// level holds the controllers of one priority level. Hooks are
// one-shot and may be injected from other goroutines.
type level struct {
	controllers []Controller

	lock      sync.Mutex
	preHooks  []Controller
	postHooks []Controller
}

type loopCtxKeyType struct{}

var loopCtxKey loopCtxKeyType

// LoopCtlFrom gets LoopControl from the context passed to Runnables.
func LoopCtlFrom(ctx context.Context) LoopControl {
	return ctx.Value(loopCtxKey).(LoopControl)
}

// NewLoop creates a Loop.
func NewLoop() *Loop {
	return &Loop{Interval: DefaultInterval}
}

// Add adds LoopAdders.
func (l *Loop) Add(adders ...LoopAdder) *Loop {
	for _, adder := range adders {
		adder.AddToLoop(l)
	}
	return l
}

// AddController registers controllers at a priority level.
// Controllers which are also Runnable are hosted by the loop.
func (l *Loop) AddController(priorityLevel int, ctls ...Controller) *Loop {
	lv := &l.levels[priorityLevel]
	lv.controllers = append(lv.controllers, ctls...)
	for _, ctl := range ctls {
		if r, ok := ctl.(Runnable); ok {
			l.runnables = append(l.runnables, r)
		}
	}
	return l
}

// AddRunnable adds Runnables.
func (l *Loop) AddRunnable(runnables ...Runnable) *Loop {
	l.runnables = append(l.runnables, runnables...)
	return l
}

// Run implements Runnable.
func (l *Loop) Run(ctx context.Context) error {
	wakeUp := l.wakeUpCh()

	runner := NewRunnerWith(context.WithValue(ctx, loopCtxKey, LoopControl(l)))
	runner.Go(l.runnables...)
	defer runner.Wait()

	var tick <-chan time.Time
	if l.Interval > 0 {
		ticker := time.NewTicker(l.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			l.Iterate(ctx)
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		case <-wakeUp:
		}
		l.Iterate(ctx)
	}
}

// RunOrFail is intended to be used in main to simply run the loop.
func (l *Loop) RunOrFail() {
	if err := NewRunner().HandleSignals().Go(l).Wait(); err != nil {
		log.Fatalln(err)
	}
}

// PreRunAt implements LoopControl.
func (l *Loop) PreRunAt(priorityLevel int, hooks ...Controller) {
	lv := &l.levels[priorityLevel]
	lv.lock.Lock()
	lv.preHooks = append(lv.preHooks, hooks...)
	lv.lock.Unlock()
}

// PostRunAt implements LoopControl.
func (l *Loop) PostRunAt(priorityLevel int, hooks ...Controller) {
	lv := &l.levels[priorityLevel]
	lv.lock.Lock()
	lv.postHooks = append(lv.postHooks, hooks...)
	lv.lock.Unlock()
}

// PostMessage implements LoopControl.
func (l *Loop) PostMessage(msg Message) {
	l.lock.Lock()
	l.posted = append(l.posted, msg)
	l.lock.Unlock()
}

// TriggerNext implements LoopControl.
func (l *Loop) TriggerNext() {
	select {
	case l.wakeUpCh() <- struct{}{}:
	default:
	}
}

// Iterate runs a single iteration synchronously. It is used by Run
// and by callers stepping the loop themselves against a manual clock.
func (l *Loop) Iterate(ctx context.Context) {
	l.lock.Lock()
	l.iterations++
	iter := &iteration{
		Loop:     l,
		time:     time.Now(),
		seq:      l.iterations,
		messages: l.posted,
	}
	l.posted = nil
	l.lock.Unlock()

	iter.ctx = context.WithValue(ctx, loopCtxKey, LoopControl(iter))
	for n := range l.levels {
		iter.priorityLevel = n
		l.levels[n].run(iter)
	}
}

func (l *Loop) wakeUpCh() chan struct{} {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.wakeUp == nil {
		l.wakeUp = make(chan struct{}, 1)
	}
	return l.wakeUp
}

func (lv *level) run(iter *iteration) {
	lv.lock.Lock()
	hooks := lv.preHooks
	lv.preHooks = nil
	lv.lock.Unlock()
	runControllers(iter, hooks)

	runControllers(iter, lv.controllers)

	lv.lock.Lock()
	hooks = lv.postHooks
	lv.postHooks = nil
	lv.lock.Unlock()
	runControllers(iter, hooks)
}

func runControllers(cc ControlContext, ctls []Controller) {
	for _, ctl := range ctls {
		if err := ctl.Control(cc); err != nil {
			glog.Errorf("controller error: %v", err)
		}
	}
}
