package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable is a background task hosted next to the loop,
// typically for I/O which must never run inside an iteration.
type Runnable interface {
	Run(context.Context) error
}

// Message is passed between controllers within a single
// iteration, or posted into the loop from outside.
type Message interface {
	// NewMessage creates an empty message of the same type.
	NewMessage() Message
}

// Controller is evaluated once per loop iteration.
// Implementations must not block.
type Controller interface {
	Control(ControlContext) error
}

// ControlFunc is the func form of Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(cc ControlContext) error {
	return f(cc)
}

// TimeSource provides the time of the current iteration.
type TimeSource interface {
	Time() time.Time
}

// ControlContext is the view of the current iteration given
// to each Controller.
type ControlContext interface {
	TimeSource
	// Context retrieves context.Context.
	Context() context.Context
	// Iteration is the 1-based sequence number of the iteration.
	Iteration() uint64
	// PriorityLevel gets the current priority level.
	PriorityLevel() int
	// Messages retrieves the messages of this iteration.
	Messages() MessageStore
	// PostRun injects one-shot hooks at the current priority level.
	// If called from a post-run hook, the new hooks run in the
	// next iteration.
	PostRun(hooks ...Controller)

	LoopControl
}

// PriorityLevels is the total number of priority levels.
const PriorityLevels int = 16

// Predefined priority levels.
const (
	PrLvTop    int = 0
	PrLvHigh   int = 4
	PrLvNormal int = 8
	PrLvLow    int = 12
	PrLvIdle   int = PriorityLevels - 1

	// PrLvSense is the level for sensors.
	PrLvSense = PrLvHigh
	// PrLvControl is the level for control logic.
	PrLvControl = PrLvNormal
	// PrLvAcuate is the level for actuators.
	PrLvAcuate = PrLvLow
	// PrLvPostProc is the level for reporting.
	PrLvPostProc = PrLvIdle - 1
)

// LoopControl exposes access to the loop.
type LoopControl interface {
	// PreRunAt injects one-shot pre-run hooks at the
	// specified priority level.
	PreRunAt(priorityLevel int, controllers ...Controller)
	// PostRunAt injects one-shot post-run hooks at the
	// specified priority level.
	PostRunAt(priorityLevel int, controllers ...Controller)
	// PostMessage enqueues a message for the next iteration.
	PostMessage(Message)
	// TriggerNext schedules the next iteration immediately
	// after the current one.
	TriggerNext()
}

// MessageStore provides read/write access to the messages of an iteration.
type MessageStore interface {
	// ProcessMessages uses a processor to visit all messages.
	ProcessMessages(MessageProcessor)

	MessageAppender
}

// MessageAppender appends messages to a store.
type MessageAppender interface {
	// AddMessages appends messages visible to controllers running
	// later in the same iteration.
	AddMessages(msgs ...Message)
}

// MessageProcessor visits messages in a MessageStore.
type MessageProcessor interface {
	ProcessMessage(MessageProcessingContext)
}

// ProcessMessageFunc is the func form of MessageProcessor.
type ProcessMessageFunc func(MessageProcessingContext)

// ProcessMessage implements MessageProcessor.
func (f ProcessMessageFunc) ProcessMessage(mc MessageProcessingContext) {
	f(mc)
}

// MessageProcessingContext provides context for the visited message.
type MessageProcessingContext interface {
	// CurrentMessage gets the message being visited.
	CurrentMessage() Message
	// MessageTaken removes the message from the store.
	MessageTaken()
	// StopProcessing skips the remaining messages.
	StopProcessing()

	MessageAppender
}
