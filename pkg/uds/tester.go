package uds

import "context"

const sidTesterRequest = 0x3E
const sidTesterResponse = 0x7E

// TesterPresentRequest is the Tester Present request: `3E 00`.
type TesterPresentRequest struct{}

func (r TesterPresentRequest) SID() uint8 { return sidTesterRequest }

func (r TesterPresentRequest) Serialize() []byte {
	return []byte{sidTesterRequest, 0x00}
}

var testerPresentResponse = Response[struct{}]{
	SID:    sidTesterResponse,
	MinLen: 2,
	MaxLen: 2,
	Parse: func(body []byte) (struct{}, error) {
		return struct{}{}, nil
	},
}

// TesterPresent issues Tester Present and discards the response; only
// its SID and length are validated by the transaction engine.
func TesterPresent(ctx context.Context, c *Client) error {
	c.log.Debug("[TESTER] present")
	_, err := Query(ctx, c, TesterPresentRequest{}, testerPresentResponse)
	return err
}
