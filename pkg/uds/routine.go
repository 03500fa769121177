package uds

import (
	"context"
	"fmt"
)

const sidRoutineRequest = 0x31
const sidRoutineResponse = 0x71

// RoutineRequest is the Routine Control request:
// `31 CT RID_hi RID_lo [params...]`.
type RoutineRequest struct {
	Action    Action
	RoutineID uint16
	Params    []byte
}

func (r RoutineRequest) SID() uint8 { return sidRoutineRequest }

func (r RoutineRequest) Serialize() []byte {
	out := make([]byte, 0, 4+len(r.Params))
	out = append(out, sidRoutineRequest, r.Action.Byte(), byte(r.RoutineID>>8), byte(r.RoutineID))
	return append(out, r.Params...)
}

// RoutineResult is the parsed Routine Control response:
// `71 CT RID_hi RID_lo INFO [params...]`.
type RoutineResult struct {
	Action    Action
	RoutineID uint16
	Params    []byte
}

var routineResponse = Response[RoutineResult]{
	SID:    sidRoutineResponse,
	MinLen: 5,
	MaxLen: 0,
	Parse: func(body []byte) (RoutineResult, error) {
		params := make([]byte, len(body)-5)
		copy(params, body[5:])
		return RoutineResult{
			Action:    ActionFromByte(body[1]),
			RoutineID: uint16(body[2])<<8 | uint16(body[3]),
			Params:    params,
		}, nil
	},
}

// ControlRoutine issues Routine Control for action/routineID and
// verifies the response echoes both the control byte and the routine
// identifier, returning the response's trailing parameter bytes (the
// info byte at offset 4 is validated only by the parser's length bound).
func ControlRoutine(ctx context.Context, c *Client, action Action, routineID uint16, params []byte) ([]byte, error) {
	c.log.WithField("routine", fmt.Sprintf("0x%04X", routineID)).Debug("[ROUTINE] " + action.String())
	result, err := Query(ctx, c, RoutineRequest{Action: action, RoutineID: routineID, Params: params}, routineResponse)
	if err != nil {
		return nil, err
	}
	if result.Action.Byte() != action.Byte() {
		return nil, invalidResponsef("routine response echoes action %s, requested %s", result.Action, action)
	}
	if result.RoutineID != routineID {
		return nil, invalidResponsef("routine response echoes routine id 0x%04X, requested 0x%04X", result.RoutineID, routineID)
	}
	return result.Params, nil
}
