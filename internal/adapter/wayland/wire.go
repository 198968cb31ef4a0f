// Package wayland implements the minimal client side of the Wayland
// wire protocol needed to discover output geometry from the compositor:
// registry binding, wl_output and zxdg_output_v1 events, and sync
// roundtrips. It is a one-shot bootstrap, not a general client library.
package wayland

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxMessageSize is the protocol's per-message ceiling: the size field
// is 16 bits and includes the 8-byte header.
const MaxMessageSize = 1<<16 - 1

// The wire uses host byte order. Every platform this launcher targets is
// little-endian, so the codec is fixed to it.
var wireOrder = binary.LittleEndian

// message is one protocol message: [object:4][size:16|opcode:16] header
// followed by the argument payload.
type message struct {
	Object uint32
	Opcode uint16
	Data   []byte
}

// writeMessage writes a single message to w.
func writeMessage(w io.Writer, m message) error {
	size := 8 + len(m.Data)
	if size > MaxMessageSize {
		return fmt.Errorf("message size %d exceeds protocol limit", size)
	}
	header := make([]byte, 8)
	wireOrder.PutUint32(header[0:4], m.Object)
	wireOrder.PutUint32(header[4:8], uint32(size)<<16|uint32(m.Opcode))
	if _, err := w.Write(append(header, m.Data...)); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// readMessage reads a single message from r.
func readMessage(r io.Reader) (message, error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return message{}, err
	}
	word := wireOrder.Uint32(header[4:8])
	size := int(word >> 16)
	if size < 8 {
		return message{}, fmt.Errorf("invalid message size %d", size)
	}
	m := message{
		Object: wireOrder.Uint32(header[0:4]),
		Opcode: uint16(word & 0xffff),
	}
	if size > 8 {
		m.Data = make([]byte, size-8)
		if _, err := io.ReadFull(r, m.Data); err != nil {
			return message{}, fmt.Errorf("read message body: %w", err)
		}
	}
	return m, nil
}

// argWriter accumulates request arguments.
type argWriter struct {
	buf []byte
}

func (a *argWriter) putUint32(v uint32) {
	a.buf = wireOrder.AppendUint32(a.buf, v)
}

// putString writes a string argument: length including the NUL
// terminator, the bytes, the NUL, padded to a 4-byte boundary.
func (a *argWriter) putString(s string) {
	a.putUint32(uint32(len(s) + 1))
	a.buf = append(a.buf, s...)
	a.buf = append(a.buf, 0)
	for len(a.buf)%4 != 0 {
		a.buf = append(a.buf, 0)
	}
}

// argReader decodes event arguments. The first decode error sticks and
// zero values are returned from then on, so callers can decode a full
// signature and check err once.
type argReader struct {
	data []byte
	err  error
}

func (a *argReader) uint32() uint32 {
	if a.err != nil {
		return 0
	}
	if len(a.data) < 4 {
		a.err = fmt.Errorf("argument truncated")
		return 0
	}
	v := wireOrder.Uint32(a.data[:4])
	a.data = a.data[4:]
	return v
}

func (a *argReader) int32() int32 { return int32(a.uint32()) }

func (a *argReader) string() string {
	length := int(a.uint32())
	if a.err != nil {
		return ""
	}
	if length == 0 {
		return ""
	}
	padded := (length + 3) &^ 3
	if len(a.data) < padded {
		a.err = fmt.Errorf("string argument truncated")
		return ""
	}
	s := string(a.data[:length-1]) // drop the NUL terminator
	a.data = a.data[padded:]
	return s
}
