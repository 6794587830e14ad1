package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/edgebot/pkg/telemetry/comm"
	"github.com/robotalks/edgebot/pkg/telemetry/comm/mqtt"
)

func TestSinkURLs(t *testing.T) {
	conf := NewConfig()
	conf.URLs = " mqtt://localhost:1883/robo/, ,tcp://localhost:9000,"
	require.Equal(t, []string{"mqtt://localhost:1883/robo/", "tcp://localhost:9000"}, conf.SinkURLs())
	conf.URLs = ""
	require.Empty(t, conf.SinkURLs())
}

func TestOpenSink(t *testing.T) {
	ref := RobotRef{Type: "edgebot", ID: "1"}
	testCases := []struct {
		url  string
		kind interface{}
	}{
		{"mqtt://localhost:1883/robo/", &mqtt.Sink{}},
		{"ws://localhost:8080/telemetry", &comm.Redialer{}},
		{"wss://localhost:8443/telemetry", &comm.Redialer{}},
		{"tcp://localhost:9000", &comm.Redialer{}},
	}
	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			sink, err := OpenSink(tc.url, ref, Meta{})
			require.NoError(t, err)
			require.IsType(t, tc.kind, sink)
		})
	}

	_, err := OpenSink("udp://localhost:9000", ref, Meta{})
	require.ErrorIs(t, err, ErrUnknownScheme)
}

func TestConfigNewPublisher(t *testing.T) {
	conf := NewConfig()
	conf.Ref = RobotRef{Type: "edgebot", ID: "bench"}
	conf.URLs = "tcp://localhost:9000,ws://localhost:8080/"
	conf.StatusInterval = 5 * time.Second
	p, err := conf.NewPublisher(staticSource{})
	require.NoError(t, err)
	require.Equal(t, "edgebot/bench", p.Robot)
	require.Len(t, p.Sinks, 2)
	require.Equal(t, 5*time.Second, p.StatusInterval)

	conf.URLs = "bogus://x"
	_, err = conf.NewPublisher(staticSource{})
	require.ErrorIs(t, err, ErrUnknownScheme)

	conf.Ref.ID = ""
	_, err = conf.NewPublisher(staticSource{})
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	conf := NewConfig()
	require.Equal(t, "edgebot", conf.Ref.Type)
	require.NotEmpty(t, conf.Ref.ID)
	require.Equal(t, []string{"Start", "Moving", "ChangeAngle", "Braking", "Backstep"}, conf.Meta.States)
	require.True(t, RobotRef{Type: "a", ID: "b"}.IsValid())
	require.Equal(t, "a/b", RobotRef{Type: "a", ID: "b"}.Name())
}
