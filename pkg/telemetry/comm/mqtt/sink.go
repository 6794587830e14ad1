package mqtt

import (
	"context"
	"errors"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"
)

// Topic suffixes below <type>/<id>.
const (
	MetaTopic  = "meta"
	EventTopic = "event"
)

// PublishTimeout bounds the wait for a publish acknowledgment.
const PublishTimeout = 2 * time.Second

// ErrTimeout indicates a publish was not acknowledged in time.
var ErrTimeout = errors.New("mqtt publish timeout")

// Sink publishes telemetry events of one robot. Its meta is
// retained on <robot>/meta while connected, and cleared by the
// last will when the robot goes away.
type Sink struct {
	Queue *Queue
	Robot string

	meta []byte
}

// NewSink creates a Sink for robot, named <type>/<id>.
func NewSink(brokerURL, robot string, meta []byte) (*Sink, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+robot+"/"+MetaTopic, nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("edgebot:" + robot)
	}
	return newSink(NewQueue(opts, topicPrefix), robot, meta), nil
}

func newSink(q *Queue, robot string, meta []byte) *Sink {
	s := &Sink{Queue: q, Robot: robot, meta: meta}
	q.OnConnect = func(q *Queue) {
		q.PubWith(robot+"/"+MetaTopic, s.meta, 1, true)
	}
	return s
}

// WritePacket implements PacketWriter.
func (s *Sink) WritePacket(pkt []byte) error {
	return wait(s.Queue.Pub(s.Robot+"/"+EventTopic, pkt))
}

// Run implements Runnable. The first connection is retried by
// the client until it succeeds or ctx is done.
func (s *Sink) Run(ctx context.Context) error {
	token := s.Queue.Connect()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			glog.Warningf("mqtt sink %s: connect: %v", s.Robot, err)
		}
	case <-ctx.Done():
	}
	<-ctx.Done()
	if s.Queue.Client.IsConnected() {
		wait(s.Queue.PubWith(s.Robot+"/"+MetaTopic, nil, 1, true))
	}
	return s.Queue.Close()
}

func wait(token paho.Token) error {
	if !token.WaitTimeout(PublishTimeout) {
		return ErrTimeout
	}
	return token.Error()
}
