// Package isotptest provides an in-memory Transport for scripting exact
// UDS byte sequences in tests, without a real ISO-TP socket or CAN bus.
package isotptest

import (
	"context"
	"fmt"
)

// Pipe is a Transport backed by two buffered channels: Outbound carries
// whatever the client under test writes, Inbound carries whatever it
// should read back. Tests drive the Inbound side directly to script
// request/response sequences.
type Pipe struct {
	Outbound chan []byte
	Inbound  chan []byte
}

// NewPipe returns a ready-to-use Pipe. capacity bounds how many pending
// messages may queue on each direction before WriteMessage/PushResponse blocks.
func NewPipe(capacity int) *Pipe {
	return &Pipe{
		Outbound: make(chan []byte, capacity),
		Inbound:  make(chan []byte, capacity),
	}
}

// ReadMessage returns the next scripted inbound message, copying it into
// buf. It blocks until one is queued or ctx is done.
func (p *Pipe) ReadMessage(ctx context.Context, buf []byte) (int, error) {
	select {
	case msg, ok := <-p.Inbound:
		if !ok {
			return 0, fmt.Errorf("isotptest: pipe closed")
		}
		if len(msg) > len(buf) {
			return 0, fmt.Errorf("isotptest: message of %d bytes does not fit in %d byte buffer", len(msg), len(buf))
		}
		n := copy(buf, msg)
		return n, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// WriteMessage queues data on Outbound for the test to inspect.
func (p *Pipe) WriteMessage(ctx context.Context, data []byte) error {
	msg := make([]byte, len(data))
	copy(msg, data)
	select {
	case p.Outbound <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PushResponse scripts the next inbound message a client Read will see.
func (p *Pipe) PushResponse(data []byte) {
	p.Inbound <- data
}

// PopRequest blocks until the client under test has written its next
// outbound message, returning it.
func (p *Pipe) PopRequest() []byte {
	return <-p.Outbound
}

// Close releases both channels. Pending readers unblock with "pipe closed".
func (p *Pipe) Close() error {
	close(p.Inbound)
	close(p.Outbound)
	return nil
}
