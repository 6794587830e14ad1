package framework

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
)

// ErrForcedExit is returned by Runner.Wait when a second stop
// signal arrives before all Runnables return.
var ErrForcedExit = errors.New("forced exit")

// NamedRun wraps a Runnable with a name used in logs.
func NamedRun(name string, runnable Runnable) Runnable {
	return &namedRunnable{Runnable: runnable, name: name}
}

type namedRunnable struct {
	Runnable
	name string
}

func (r *namedRunnable) Name() string {
	return r.name
}

type runResult struct {
	name string
	err  error
}

// Runner runs Runnables in goroutines and collects their errors.
type Runner struct {
	Context context.Context

	started int
	results chan runResult
	forced  chan struct{}
}

// NewRunner creates a runner with a background context.
func NewRunner() *Runner {
	return NewRunnerWith(context.Background())
}

// NewRunnerWith creates a runner with a specified context.
func NewRunnerWith(ctx context.Context) *Runner {
	return &Runner{
		Context: ctx,
		results: make(chan runResult),
		forced:  make(chan struct{}),
	}
}

// HandleSignals cancels the context on SIGINT or SIGTERM.
// A second signal forces Wait to return.
func (r *Runner) HandleSignals() *Runner {
	ctx, cancel := context.WithCancel(r.Context)
	r.Context = ctx
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		glog.Infof("%v: stopping", sig)
		cancel()
		sig = <-sigCh
		glog.Errorf("%v: forced exit", sig)
		close(r.forced)
	}()
	return r
}

// Go spawns Runnables with the runner's context.
func (r *Runner) Go(runnables ...Runnable) *Runner {
	return r.GoWith(r.Context, runnables...)
}

// GoWith spawns Runnables with a specified context.
func (r *Runner) GoWith(ctx context.Context, runnables ...Runnable) *Runner {
	for _, runnable := range runnables {
		name := fmt.Sprintf("#%d", r.started)
		if named, ok := runnable.(Named); ok {
			name = named.Name()
		}
		r.started++
		go r.run(ctx, name, runnable)
	}
	return r
}

func (r *Runner) run(ctx context.Context, name string, runnable Runnable) {
	glog.V(4).Infof("runner %s: start", name)
	err := runnable.Run(ctx)
	glog.V(4).Infof("runner %s: exit %v", name, err)
	select {
	case r.results <- runResult{name: name, err: err}:
	case <-r.forced:
	}
}

// Wait waits until all Runnables stop and aggregates their errors.
// context.Canceled is not considered an error.
func (r *Runner) Wait() error {
	var errs AggregatedError
	for ; r.started > 0; r.started-- {
		select {
		case <-r.forced:
			return ErrForcedExit
		case res := <-r.results:
			if res.err != nil && !errors.Is(res.err, context.Canceled) {
				glog.Errorf("runner %s: %v", res.name, res.err)
				errs.Add(res.err)
			}
		}
	}
	return errs.Aggregate()
}
