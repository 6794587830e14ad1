package comm

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"
)

// DialFunc opens a connection.
type DialFunc func() (PacketWriteCloser, error)

// Redialer is a PacketWriter which dials on demand and drops the
// connection on the first write failure, so the next write redials.
type Redialer struct {
	Name string
	Dial DialFunc
	// Backoff is the minimum delay between dials.
	Backoff time.Duration

	lock     sync.Mutex
	conn     PacketWriteCloser
	lastDial time.Time
	closed   bool
}

// DefaultBackoff is the default delay between dials.
const DefaultBackoff = time.Second

// NewRedialer creates a Redialer.
func NewRedialer(name string, dial DialFunc) *Redialer {
	return &Redialer{Name: name, Dial: dial, Backoff: DefaultBackoff}
}

// WritePacket implements PacketWriter.
func (r *Redialer) WritePacket(pkt []byte) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.closed {
		return ErrClosed
	}
	if r.conn == nil {
		if !r.lastDial.IsZero() && time.Since(r.lastDial) < r.Backoff {
			return ErrNotConnected
		}
		r.lastDial = time.Now()
		conn, err := r.Dial()
		if err != nil {
			return err
		}
		glog.V(2).Infof("%s: connected", r.Name)
		r.conn = conn
	}
	if err := r.conn.WritePacket(pkt); err != nil {
		r.conn.Close()
		r.conn = nil
		return err
	}
	return nil
}

// Run implements Runnable, closing the connection when ctx is done.
func (r *Redialer) Run(ctx context.Context) error {
	<-ctx.Done()
	return r.Close()
}

// Close implements io.Closer.
func (r *Redialer) Close() (err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.closed = true
	if r.conn != nil {
		err = r.conn.Close()
		r.conn = nil
	}
	return
}
