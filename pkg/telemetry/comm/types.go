// Package comm carries telemetry packets over stream, WebSocket
// and MQTT transports.
package comm

import (
	"errors"
	"io"
)

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes packets in bytes.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}

// PacketWriteCloser is a PacketWriter owning a connection.
type PacketWriteCloser interface {
	PacketWriter
	io.Closer
}

var (
	// ErrClosed indicates a write after Close.
	ErrClosed = errors.New("closed")
	// ErrNotConnected indicates a write while waiting to redial.
	ErrNotConnected = errors.New("not connected")
)
