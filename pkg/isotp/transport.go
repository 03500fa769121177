package isotp

import "context"

// Transport is the contract the UDS client needs from whatever moves PDUs
// between it and an ECU: a real Conn over CAN_ISOTP, or an in-memory
// isotptest.Pipe in tests. Implementations hand back one complete PDU per
// ReadMessage call and accept one complete PDU per WriteMessage call;
// segmentation, if any, happens below this boundary.
type Transport interface {
	ReadMessage(ctx context.Context, buf []byte) (int, error)
	WriteMessage(ctx context.Context, data []byte) error
}

var (
	_ Transport = (*Conn)(nil)
)
