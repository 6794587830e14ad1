// Package mqtt publishes telemetry to an MQTT broker and lets
// monitors subscribe to it.
package mqtt

import (
	"strings"
	"sync"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"
)

// Handler receives a message. topic has TopicPrefix stripped.
type Handler func(topic string, payload []byte)

// ConnectHandler is notified on connect and on connection loss.
type ConnectHandler func(*Queue)

// Queue wraps a paho client. Topics given to and received from
// a Queue are relative to TopicPrefix.
type Queue struct {
	Client       paho.Client
	TopicPrefix  string
	OnConnect    ConnectHandler
	OnDisconnect ConnectHandler

	lock sync.RWMutex
	subs []*Subscription
}

// Subscription is a handler registered for a topic pattern.
type Subscription struct {
	// Token is set only for the first subscription of a pattern.
	Token paho.Token

	queue   *Queue
	pattern string
	handler Handler
}

// NewQueue creates Queue and installs its connection handlers.
func NewQueue(options *paho.ClientOptions, topicPrefix string) *Queue {
	q := &Queue{TopicPrefix: topicPrefix}
	options.SetOnConnectHandler(q.OnConnectHandler)
	options.SetConnectionLostHandler(q.ConnectionLostHandler)
	q.Client = paho.NewClient(options)
	return q
}

// NewQueueFromURL creates Queue from a broker URL.
func NewQueueFromURL(brokerURL string) (*Queue, error) {
	opts, prefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	return NewQueue(opts, prefix), nil
}

// Connect starts connecting; the client reconnects by itself.
func (q *Queue) Connect() paho.Token {
	return q.Client.Connect()
}

// Close implements io.Closer.
func (q *Queue) Close() error {
	q.Client.Disconnect(250)
	return nil
}

// Pub publishes with QoS 0 without retaining.
func (q *Queue) Pub(topic string, payload []byte) paho.Token {
	return q.PubWith(topic, payload, 0, false)
}

// PubWith publishes with QoS and retain settings.
func (q *Queue) PubWith(topic string, payload []byte, qos byte, retain bool) paho.Token {
	glog.V(2).Infof("mqtt PUB %q %d bytes", q.TopicPrefix+topic, len(payload))
	return q.Client.Publish(q.TopicPrefix+topic, qos, retain, payload)
}

// Sub registers handler for a pattern. The broker subscription is
// shared by all handlers of the same pattern.
func (q *Queue) Sub(pattern string, handler Handler) *Subscription {
	sub := &Subscription{queue: q, pattern: pattern, handler: handler}
	q.lock.Lock()
	first := q.countLocked(pattern) == 0
	q.subs = append(q.subs, sub)
	q.lock.Unlock()
	if first {
		glog.V(2).Infof("mqtt SUB %q", q.TopicPrefix+pattern)
		sub.Token = q.Client.Subscribe(q.TopicPrefix+pattern, 0, q.dispatch)
	}
	return sub
}

// Resubscribe subscribes every registered pattern again,
// as a clean session loses them on reconnect.
func (q *Queue) Resubscribe() paho.Token {
	filters := make(map[string]byte)
	q.lock.RLock()
	for _, sub := range q.subs {
		filters[q.TopicPrefix+sub.pattern] = 0
	}
	q.lock.RUnlock()
	if len(filters) == 0 {
		return &paho.DummyToken{}
	}
	glog.V(2).Infof("mqtt SUB %d patterns", len(filters))
	return q.Client.SubscribeMultiple(filters, q.dispatch)
}

// OnConnectHandler implements paho.OnConnectHandler.
func (q *Queue) OnConnectHandler(paho.Client) {
	glog.Info("mqtt connected")
	q.Resubscribe()
	if q.OnConnect != nil {
		q.OnConnect(q)
	}
}

// ConnectionLostHandler implements paho.ConnectionLostHandler.
func (q *Queue) ConnectionLostHandler(_ paho.Client, err error) {
	glog.Warningf("mqtt connection lost: %v", err)
	if q.OnDisconnect != nil {
		q.OnDisconnect(q)
	}
}

func (q *Queue) countLocked(pattern string) (n int) {
	for _, sub := range q.subs {
		if sub.pattern == pattern {
			n++
		}
	}
	return
}

func (q *Queue) dispatch(_ paho.Client, msg paho.Message) {
	topic, ok := strings.CutPrefix(msg.Topic(), q.TopicPrefix)
	if !ok {
		return
	}
	glog.V(2).Infof("mqtt RCV %q", msg.Topic())
	q.lock.RLock()
	var matched []Handler
	for _, sub := range q.subs {
		if MatchTopic(topic, sub.pattern) {
			matched = append(matched, sub.handler)
		}
	}
	q.lock.RUnlock()
	payload := msg.Payload()
	for _, h := range matched {
		h(topic, payload)
	}
}

// Close removes the handler. The broker subscription is dropped
// with the last handler of the pattern.
func (s *Subscription) Close() error {
	q := s.queue
	q.lock.Lock()
	for n, sub := range q.subs {
		if sub == s {
			q.subs = append(q.subs[:n:n], q.subs[n+1:]...)
			break
		}
	}
	last := q.countLocked(s.pattern) == 0
	q.lock.Unlock()
	if !last {
		return nil
	}
	glog.V(2).Infof("mqtt UNSUB %q", q.TopicPrefix+s.pattern)
	token := q.Client.Unsubscribe(q.TopicPrefix + s.pattern)
	token.Wait()
	return token.Error()
}
