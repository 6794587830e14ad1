package framework

import (
	"context"
	"time"
)

// iteration is the ControlContext of a single pass over all
// priority levels. Messages live only within the pass.
type iteration struct {
	*Loop

	ctx           context.Context
	time          time.Time
	seq           uint64
	priorityLevel int
	messages      []Message
}

func (t *iteration) Context() context.Context {
	return t.ctx
}

func (t *iteration) Time() time.Time {
	return t.time
}

func (t *iteration) Iteration() uint64 {
	return t.seq
}

func (t *iteration) PriorityLevel() int {
	return t.priorityLevel
}

func (t *iteration) Messages() MessageStore {
	return t
}

func (t *iteration) PostRun(hooks ...Controller) {
	t.PostRunAt(t.priorityLevel, hooks...)
}

func (t *iteration) AddMessages(msgs ...Message) {
	t.messages = append(t.messages, msgs...)
}

// ProcessMessages visits the messages present when it is called.
// Messages added during the visit are kept after the remaining ones.
func (t *iteration) ProcessMessages(proc MessageProcessor) {
	pending := t.messages
	t.messages = nil
	kept := make([]Message, 0, len(pending))
	for n, msg := range pending {
		v := &visit{iter: t, msg: msg}
		proc.ProcessMessage(v)
		if !v.taken {
			kept = append(kept, msg)
		}
		if v.stop {
			kept = append(kept, pending[n+1:]...)
			break
		}
	}
	t.messages = append(kept, t.messages...)
}

type visit struct {
	iter  *iteration
	msg   Message
	taken bool
	stop  bool
}

func (v *visit) CurrentMessage() Message     { return v.msg }
func (v *visit) MessageTaken()               { v.taken = true }
func (v *visit) StopProcessing()             { v.stop = true }
func (v *visit) AddMessages(msgs ...Message) { v.iter.AddMessages(msgs...) }
