package uds

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samsamfire/go-uds/pkg/isotp"
)

// maxResponseLen is large enough for every response defined by the
// supported services, including a seed response carrying an arbitrary
// amount of seed data.
const maxResponseLen = 4096

// Client owns one ISO-TP transport exclusively. It is stateless with
// respect to the ECU's diagnostic session: it does not track the active
// session, security level, or block sequence counter beyond the scope of
// a single call. It is not safe for concurrent use; requests and
// responses on a transport are strictly serialized one at a time.
type Client struct {
	transport isotp.Transport
	log       *logrus.Entry
	buf       []byte
}

// NewClient wraps transport in a Client. transport is exclusively owned
// by the returned Client for its lifetime.
func NewClient(transport isotp.Transport) *Client {
	return &Client{
		transport: transport,
		log:       logrus.WithField("component", "uds"),
		buf:       make([]byte, maxResponseLen),
	}
}

// Query sends req and waits for its matching response, as described by
// resp. It is the sole transaction primitive every service orchestrator
// builds on: write the request once, then loop reading responses until
// a positive response, a terminal negative response, or a transport
// error ends the loop.
func Query[T any](ctx context.Context, c *Client, req Request, resp Response[T]) (T, error) {
	var zero T

	reqBytes := req.Serialize()
	c.log.WithField("sid", fmt.Sprintf("0x%02X", req.SID())).Debug("[TX] sending request")
	if err := c.transport.WriteMessage(ctx, reqBytes); err != nil {
		return zero, &TransportError{Op: "write", Err: err}
	}

	for {
		n, err := c.transport.ReadMessage(ctx, c.buf)
		if err != nil {
			return zero, &TransportError{Op: "read", Err: err}
		}
		body := c.buf[:n]
		if len(body) == 0 {
			return zero, invalidResponsef("received zero-length message")
		}

		if body[0] == 0x7F {
			if len(body) != 3 {
				return zero, invalidResponsef("negative response length %d, want 3", len(body))
			}
			if body[1] != req.SID() {
				return zero, invalidResponsef("negative response echoes SID 0x%02X, want 0x%02X", body[1], req.SID())
			}
			nrc := NrcFromByte(body[2])
			if nrc.IsWaitPending() {
				c.log.Debug("[RX] response pending, continuing to wait")
				continue
			}
			c.log.WithField("nrc", nrc.String()).Warn("[RX] negative response")
			return zero, &NegativeResponseError{Nrc: nrc}
		}

		if body[0] != resp.SID {
			return zero, invalidResponsef("response SID 0x%02X, want 0x%02X", body[0], resp.SID)
		}
		if !resp.lengthInBounds(len(body)) {
			return zero, invalidResponsef("response length %d out of bounds [%d,%d]", len(body), resp.MinLen, resp.MaxLen)
		}
		c.log.WithField("sid", fmt.Sprintf("0x%02X", body[0])).Debug("[RX] positive response")
		return resp.Parse(body)
	}
}
