package mqtt

import (
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

type published struct {
	topic   string
	qos     byte
	retain  bool
	payload []byte
}

type fakeClient struct {
	paho.Client

	lock       sync.Mutex
	connected  bool
	published  []published
	subscribed []string
	unsubs     []string
	handler    paho.MessageHandler
	connectErr error
}

type doneToken struct {
	err error
}

func (t *doneToken) Wait() bool                     { return true }
func (t *doneToken) WaitTimeout(time.Duration) bool { return true }
func (t *doneToken) Error() error                   { return t.err }

func (t *doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func (c *fakeClient) IsConnected() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.connected
}

func (c *fakeClient) Connect() paho.Token {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.connectErr != nil {
		return &doneToken{err: c.connectErr}
	}
	c.connected = true
	return &doneToken{}
}

func (c *fakeClient) Disconnect(uint) {
	c.lock.Lock()
	c.connected = false
	c.lock.Unlock()
}

func (c *fakeClient) Publish(topic string, qos byte, retain bool, payload interface{}) paho.Token {
	c.lock.Lock()
	defer c.lock.Unlock()
	data, _ := payload.([]byte)
	c.published = append(c.published, published{topic: topic, qos: qos, retain: retain, payload: data})
	return &paho.DummyToken{}
}

func (c *fakeClient) Subscribe(topic string, qos byte, cb paho.MessageHandler) paho.Token {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.subscribed = append(c.subscribed, topic)
	c.handler = cb
	return &paho.DummyToken{}
}

func (c *fakeClient) SubscribeMultiple(filters map[string]byte, cb paho.MessageHandler) paho.Token {
	for topic := range filters {
		c.Subscribe(topic, 0, cb)
	}
	return &paho.DummyToken{}
}

func (c *fakeClient) Unsubscribe(topics ...string) paho.Token {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.unsubs = append(c.unsubs, topics...)
	return &paho.DummyToken{}
}

func (c *fakeClient) deliver(topic string, payload []byte) {
	c.handler(c, &fakeMessage{topic: topic, payload: payload})
}

type fakeMessage struct {
	paho.Message
	topic   string
	payload []byte
}

func (m *fakeMessage) Topic() string   { return m.topic }
func (m *fakeMessage) Payload() []byte { return m.payload }

func newFakeQueue(prefix string) (*Queue, *fakeClient) {
	client := &fakeClient{}
	return &Queue{Client: client, TopicPrefix: prefix}, client
}
