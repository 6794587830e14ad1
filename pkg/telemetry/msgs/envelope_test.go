package msgs

import (
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/edgebot/pkg/framework"
)

type plainMessage struct{}

func (m *plainMessage) NewMessage() fx.Message { return &plainMessage{} }

func newStateChanged(robot, from, to string, atMs uint32) *StateChanged {
	m := &StateChanged{}
	m.Robot, m.From, m.To, m.AtMs = robot, from, to, atMs
	return m
}

func newStatus(robot, state string, ticks uint64) *Status {
	m := &Status{}
	m.Robot, m.State, m.Ticks = robot, state, ticks
	return m
}

func TestTypedRoundTrip(t *testing.T) {
	turning := newStateChanged("edgebot/1", "Moving", "ChangeAngle", 4294967000)
	turning.TurnMs, turning.TurnSide = 300, "left"
	withDrops := newStatus("edgebot/1", "Start", 1<<40)
	withDrops.UptimeMs, withDrops.Dropped = 12, 3

	testCases := []struct {
		name string
		msg  SerializableMessage
	}{
		{name: "state changed", msg: turning},
		{name: "status", msg: newStatus("edgebot/1", "Moving", 42)},
		{name: "status with drops", msg: withDrops},
		{name: "empty", msg: &Status{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			typed, err := TypedFrom(tc.msg)
			require.NoError(t, err)
			require.True(t, typed.IsEvent())
			typed.Sequence = 9
			data, err := typed.Encode()
			require.NoError(t, err)

			decoded, err := DecodeTyped(data)
			require.NoError(t, err)
			require.Equal(t, tc.msg.TypeID(), decoded.TypeId)
			require.Equal(t, uint32(9), decoded.Sequence)
			msg, err := decoded.Decode()
			require.NoError(t, err)
			require.IsType(t, tc.msg, msg)
			require.True(t, proto.Equal(tc.msg.Serializable(), msg.(SerializableMessage).Serializable()),
				"want %v, got %v", tc.msg.Serializable(), msg)
		})
	}
}

func TestTypedErrors(t *testing.T) {
	_, err := TypedFrom(&plainMessage{})
	require.ErrorIs(t, err, ErrNotSerializable)

	unknownTyped := &Typed{}
	unknownTyped.TypeId = 0x7f
	_, err = unknownTyped.Decode()
	var unknown *ErrUnknownType
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, uint32(0x7f), unknown.TypeID)
	require.Equal(t, "unknown type: 7f", err.Error())

	_, err = DecodeTyped([]byte{0xff})
	require.Error(t, err)
}

func TestTypeIDs(t *testing.T) {
	for id, msg := range MessageTypes {
		require.Equal(t, id, msg.TypeID())
		require.Equal(t, TypeIDKindEvent, id&TypeIDMaskKind)
		require.Equal(t, GroupRobot, id&TypeIDMaskGroup)
	}
}

func TestMessageDescriptors(t *testing.T) {
	testCases := []struct {
		msg      proto.Message
		fullName string
	}{
		{&(&Typed{}).Typed, "edgebot.telemetry.v1.Typed"},
		{(&StateChanged{}).Serializable(), "edgebot.telemetry.v1.StateChanged"},
		{(&Status{}).Serializable(), "edgebot.telemetry.v1.Status"},
	}
	for _, tc := range testCases {
		t.Run(tc.fullName, func(t *testing.T) {
			require.Equal(t, tc.fullName, string(proto.MessageReflect(tc.msg).Descriptor().FullName()))
		})
	}
}
