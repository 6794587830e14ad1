// Package metrics exports the robot state to Prometheus.
package metrics

import (
	"context"
	"net"
	"net/http"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robotalks/edgebot/pkg/edgebot"
	fx "github.com/robotalks/edgebot/pkg/framework"
)

// StateSource provides the state and tick count.
type StateSource interface {
	State() edgebot.RobotState
	Ticks() uint64
}

// Metrics holds Prometheus metrics of a robot.
//
// Metrics:
//   - edgebot_ticks_total - Count of control ticks
//   - edgebot_transitions_total{from,to} - Count of state transitions
//   - edgebot_state{state} - 1 for the active state, 0 otherwise
//   - edgebot_turn_duration_ms - Histogram of sampled pivot durations
type Metrics struct {
	Registry *prometheus.Registry
	Source   StateSource

	Ticks        prometheus.Counter
	Transitions  *prometheus.CounterVec
	State        *prometheus.GaugeVec
	TurnDuration prometheus.Histogram

	lastTicks uint64
}

// New creates and registers metrics on a new registry.
func New(src StateSource) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		Source:   src,
		Ticks: factory.NewCounter(prometheus.CounterOpts{
			Name: "edgebot_ticks_total",
			Help: "Total number of control ticks",
		}),
		Transitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edgebot_transitions_total",
				Help: "Total number of state transitions",
			},
			[]string{"from", "to"},
		),
		State: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "edgebot_state",
				Help: "Active state of the robot",
			},
			[]string{"state"},
		),
		TurnDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "edgebot_turn_duration_ms",
			Help:    "Sampled pivot durations in milliseconds",
			Buckets: prometheus.LinearBuckets(250, 50, 10),
		}),
	}
}

// AddToLoop implements LoopAdder.
func (m *Metrics) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvPostProc, m)
}

// Control implements Controller.
func (m *Metrics) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		if msg, ok := mctx.CurrentMessage().(*edgebot.TransitionMsg); ok {
			m.Observe(msg.Transition)
		}
	}))
	if m.Source != nil {
		m.Update(m.Source.State(), m.Source.Ticks())
	}
	return nil
}

// Observe records a transition.
func (m *Metrics) Observe(t edgebot.Transition) {
	m.Transitions.WithLabelValues(t.From.String(), t.To.String()).Inc()
	if t.To == edgebot.ChangeAngle {
		m.TurnDuration.Observe(float64(t.PendingTurn))
	}
}

// Update sets the state gauge and advances the tick counter.
func (m *Metrics) Update(state edgebot.RobotState, ticks uint64) {
	for _, s := range edgebot.States {
		val := 0.0
		if s == state {
			val = 1
		}
		m.State.WithLabelValues(s.String()).Set(val)
	}
	if ticks > m.lastTicks {
		m.Ticks.Add(float64(ticks - m.lastTicks))
	}
	m.lastTicks = ticks
}

// Handler serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Server serves /metrics.
type Server struct {
	Addr    string
	Metrics *Metrics
}

// Name implements Named.
func (s *Server) Name() string {
	return "metrics"
}

// AddToLoop implements LoopAdder.
func (s *Server) AddToLoop(l *fx.Loop) {
	l.Add(s.Metrics)
	l.AddRunnable(s)
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.Metrics.Handler())
	srv := &http.Server{Handler: mux}
	glog.Infof("metrics on %s", ln.Addr())
	return fx.RunWithContextCloser(ctx, srv, func() error {
		return srv.Serve(ln)
	})
}
