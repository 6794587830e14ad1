package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/edgebot/pkg/framework"
	pb "github.com/robotalks/edgebot/pkg/proto/edgebot/telemetry/v1"
)

// StateChanged is emitted for every state transition. AtMs is the
// robot clock at the transition, TurnMs and TurnSide describe the
// pivot when entering ChangeAngle.
type StateChanged struct {
	pb.StateChanged
}

// NewMessage implements Message.
func (m *StateChanged) NewMessage() fx.Message { return &StateChanged{} }

// TypeID implements SerializableMessage.
func (m *StateChanged) TypeID() uint32 { return StateChangedTypeID }

// Serializable implements SerializableMessage.
func (m *StateChanged) Serializable() proto.Message { return &m.StateChanged }

// Status is emitted periodically. Dropped counts events not
// delivered because the queue was full.
type Status struct {
	pb.Status
}

// NewMessage implements Message.
func (m *Status) NewMessage() fx.Message { return &Status{} }

// TypeID implements SerializableMessage.
func (m *Status) TypeID() uint32 { return StatusTypeID }

// Serializable implements SerializableMessage.
func (m *Status) Serializable() proto.Message { return &m.Status }

// TypeID Groups
const (
	GroupRobot uint32 = 0x00010000
)

// TypeIDs
const (
	StateChangedTypeID uint32 = GroupRobot | TypeIDKindEvent | 0x0000
	StatusTypeID       uint32 = GroupRobot | TypeIDKindEvent | 0x0001
)
