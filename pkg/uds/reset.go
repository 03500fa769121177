package uds

import "context"

const sidResetRequest = 0x11
const sidResetResponse = 0x51

// ResetRequest is the ECU Reset request: `11 RT`.
type ResetRequest struct {
	Type ResetType
}

func (r ResetRequest) SID() uint8 { return sidResetRequest }

func (r ResetRequest) Serialize() []byte {
	return []byte{sidResetRequest, r.Type.Byte()}
}

func parseResetResponse(body []byte) (ResetType, error) {
	return ResetTypeFromByte(body[1]), nil
}

var resetResponse = Response[ResetType]{
	SID:    sidResetResponse,
	MinLen: 2,
	MaxLen: 2,
	Parse:  parseResetResponse,
}

// Reset issues ECU Reset for resetType and verifies the response echoes
// the requested type.
func Reset(ctx context.Context, c *Client, resetType ResetType) error {
	c.log.WithField("reset", resetType.String()).Debug("[RESET] requesting")
	echoed, err := Query(ctx, c, ResetRequest{Type: resetType}, resetResponse)
	if err != nil {
		return err
	}
	if echoed.Byte() != resetType.Byte() {
		return invalidResponsef("reset response echoes type %s, requested %s", echoed, resetType)
	}
	return nil
}
