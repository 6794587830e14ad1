package msgs

import (
	"errors"
	"fmt"

	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/edgebot/pkg/framework"
	pb "github.com/robotalks/edgebot/pkg/proto/edgebot/telemetry/v1"
)

// A type ID packs a kind bit, a 15-bit group and a 16-bit ID.
const (
	TypeIDMaskKind  uint32 = 0x80000000
	TypeIDMaskGroup uint32 = 0x7fff0000
	TypeIDMaskID    uint32 = 0x0000ffff

	TypeIDKindCommand uint32 = 0
	TypeIDKindEvent   uint32 = TypeIDMaskKind
)

// ErrNotSerializable indicates the message has no wire form.
var ErrNotSerializable = errors.New("not serializable message")

// ErrUnknownType indicates a type ID missing from MessageTypes.
type ErrUnknownType struct {
	TypeID uint32
}

func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown type: %x", e.TypeID)
}

// SerializableMessage is a loop message with a wire form.
type SerializableMessage interface {
	fx.Message
	TypeID() uint32
	Serializable() proto.Message
}

// MessageTypes lists the messages a receiver can decode, by type ID.
var MessageTypes = map[uint32]SerializableMessage{
	StateChangedTypeID: (*StateChanged)(nil),
	StatusTypeID:       (*Status)(nil),
}

// Typed is the envelope written to sinks: the encoded message
// tagged with its type ID and the publisher's sequence number.
type Typed struct {
	pb.Typed
}

// TypedFrom wraps msg into an envelope with a zero sequence.
func TypedFrom(msg fx.Message) (*Typed, error) {
	s, ok := msg.(SerializableMessage)
	if !ok {
		return nil, ErrNotSerializable
	}
	data, err := proto.Marshal(s.Serializable())
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", msg, err)
	}
	typed := &Typed{}
	typed.TypeId, typed.Message = s.TypeID(), data
	return typed, nil
}

// DecodeTyped parses an envelope from a packet.
func DecodeTyped(data []byte) (*Typed, error) {
	typed := &Typed{}
	if err := proto.Unmarshal(data, &typed.Typed); err != nil {
		return nil, err
	}
	return typed, nil
}

// Encode serializes the envelope into a packet.
func (p *Typed) Encode() ([]byte, error) {
	return proto.Marshal(&p.Typed)
}

// Decode parses the carried message.
func (p *Typed) Decode() (fx.Message, error) {
	sample, ok := MessageTypes[p.TypeId]
	if !ok {
		return nil, &ErrUnknownType{TypeID: p.TypeId}
	}
	msg := sample.NewMessage().(SerializableMessage)
	if err := proto.Unmarshal(p.Message, msg.Serializable()); err != nil {
		return nil, err
	}
	return msg, nil
}

// Kind is the kind bit of the type ID.
func (p *Typed) Kind() uint32 {
	return p.TypeId & TypeIDMaskKind
}

// IsEvent reports whether the envelope carries an event.
func (p *Typed) IsEvent() bool {
	return p.Kind() == TypeIDKindEvent
}
