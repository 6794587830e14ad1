// Package websocket carries packets as binary WebSocket messages.
package websocket

import (
	"net/url"

	"golang.org/x/net/websocket"

	"github.com/robotalks/edgebot/pkg/telemetry/comm"
)

// ReadWriter implements PacketReadWriter.
type ReadWriter websocket.Conn

// New wraps websocket.Conn.
func New(conn *websocket.Conn) *ReadWriter {
	return (*ReadWriter)(conn)
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() (pkt []byte, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(p), &pkt)
	return
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send((*websocket.Conn)(p), pkt)
}

// Close implements io.Closer.
func (p *ReadWriter) Close() error {
	return (*websocket.Conn)(p).Close()
}

// Dialer dials a ws:// or wss:// URL.
func Dialer(wsURL string) comm.DialFunc {
	return func() (comm.PacketWriteCloser, error) {
		u, err := url.Parse(wsURL)
		if err != nil {
			return nil, err
		}
		origin := "http://" + u.Host
		if u.Scheme == "wss" {
			origin = "https://" + u.Host
		}
		conn, err := websocket.Dial(wsURL, "", origin)
		if err != nil {
			return nil, err
		}
		return New(conn), nil
	}
}
