package sim

import (
	"sync"

	fx "github.com/robotalks/edgebot/pkg/framework"
)

// Object represents an object in the world.
type Object interface {
	fx.Named
}

// ObjectsChangeListener listens for object changes.
type ObjectsChangeListener interface {
	ObjectsChanged(fx.ControlContext, ...Object)
	ObjectsRemoved(fx.ControlContext, ...Object)
}

// ObjectsChangeSubscriber subscribes objects change notifications.
type ObjectsChangeSubscriber interface {
	SubscribeObjectsChange(ObjectsChangeListener)
}

// ObjectsChangeCaster fans notifications out to its subscribers.
// Embed it to implement ObjectsChangeSubscriber.
type ObjectsChangeCaster struct {
	lock      sync.RWMutex
	listeners []ObjectsChangeListener
}

// SubscribeObjectsChange implements ObjectsChangeSubscriber.
func (c *ObjectsChangeCaster) SubscribeObjectsChange(ln ObjectsChangeListener) {
	c.lock.Lock()
	c.listeners = append(c.listeners, ln)
	c.lock.Unlock()
}

// ObjectsChanged implements ObjectsChangeListener.
func (c *ObjectsChangeCaster) ObjectsChanged(cc fx.ControlContext, objs ...Object) {
	for _, ln := range c.snapshot() {
		ln.ObjectsChanged(cc, objs...)
	}
}

// ObjectsRemoved implements ObjectsChangeListener.
func (c *ObjectsChangeCaster) ObjectsRemoved(cc fx.ControlContext, objs ...Object) {
	for _, ln := range c.snapshot() {
		ln.ObjectsRemoved(cc, objs...)
	}
}

func (c *ObjectsChangeCaster) snapshot() []ObjectsChangeListener {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.listeners
}
