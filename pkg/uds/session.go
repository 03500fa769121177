package uds

import (
	"context"
	"time"
)

const sidSessionRequest = 0x10
const sidSessionResponse = 0x50

// SessionRequest is the Diagnostic Session Control request: `10 ST`.
type SessionRequest struct {
	Type SessionType
}

func (r SessionRequest) SID() uint8 { return sidSessionRequest }

func (r SessionRequest) Serialize() []byte {
	return []byte{sidSessionRequest, r.Type.Byte()}
}

// SessionResult is the parsed Diagnostic Session Control response:
// `50 ST P2_hi P2_lo P2*_hi P2*_lo`.
type SessionResult struct {
	Type   SessionType
	P2     time.Duration
	P2Star time.Duration
}

func parseSessionResponse(body []byte) (SessionResult, error) {
	p2 := uint16(body[2])<<8 | uint16(body[3])
	p2star := uint16(body[4])<<8 | uint16(body[5])
	return SessionResult{
		Type:   SessionTypeFromByte(body[1]),
		P2:     time.Duration(p2) * time.Millisecond,
		P2Star: time.Duration(p2star) * 10 * time.Millisecond,
	}, nil
}

var sessionResponse = Response[SessionResult]{
	SID:    sidSessionResponse,
	MinLen: 6,
	MaxLen: 6,
	Parse:  parseSessionResponse,
}

// StartSession issues Diagnostic Session Control for session and
// validates that the response echoes the requested session type,
// returning the negotiated P2/P2* timing as durations so a higher layer
// can enforce its own timeout; the engine itself does not.
func StartSession(ctx context.Context, c *Client, session SessionType) (SessionResult, error) {
	c.log.WithField("session", session.String()).Debug("[SESSION] requesting")
	result, err := Query(ctx, c, SessionRequest{Type: session}, sessionResponse)
	if err != nil {
		return SessionResult{}, err
	}
	if result.Type.Byte() != session.Byte() {
		return SessionResult{}, otherf("session response echoes type %s, requested %s", result.Type, session)
	}
	return result, nil
}
