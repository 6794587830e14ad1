package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	fx "github.com/robotalks/edgebot/pkg/framework"
	"github.com/robotalks/edgebot/pkg/telemetry/comm"
	"github.com/robotalks/edgebot/pkg/telemetry/comm/mqtt"
	"github.com/robotalks/edgebot/pkg/telemetry/comm/stream"
	"github.com/robotalks/edgebot/pkg/telemetry/comm/websocket"
)

// Sink delivers encoded telemetry packets. Run owns the connection.
type Sink interface {
	comm.PacketWriter
	fx.Runnable
}

// ErrUnknownScheme indicates a sink URL with an unsupported scheme.
var ErrUnknownScheme = errors.New("unknown telemetry scheme")

// OpenSink creates a Sink from a URL:
//
//	mqtt://host:port/topic-prefix/
//	ws://host:port/path, wss://host:port/path
//	tcp://host:port
func OpenSink(sinkURL string, ref RobotRef, meta Meta) (Sink, error) {
	u, err := url.Parse(sinkURL)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "mqtt", "ssl":
		data, err := json.Marshal(&meta)
		if err != nil {
			return nil, err
		}
		return mqtt.NewSink(sinkURL, ref.Name(), data)
	case "ws", "wss":
		return comm.NewRedialer(sinkURL, websocket.Dialer(sinkURL)), nil
	case "tcp":
		return comm.NewRedialer(sinkURL, stream.Dialer(u.Host)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, u.Scheme)
}
