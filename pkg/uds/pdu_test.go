package uds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRequestSerialize(t *testing.T) {
	req := SessionRequest{Type: NewSessionType(ExtendedDiagnosticSession)}
	assert.Equal(t, []byte{0x10, 0x03}, req.Serialize())
}

func TestSessionResponseParse(t *testing.T) {
	result, err := sessionResponse.Parse([]byte{0x50, 0x03, 0x00, 0x32, 0x01, 0xF4})
	require.NoError(t, err)
	assert.Equal(t, uint8(0x03), result.Type.Byte())
}

func TestResetRequestSerialize(t *testing.T) {
	req := ResetRequest{Type: NewResetType(SoftReset)}
	assert.Equal(t, []byte{0x11, 0x03}, req.Serialize())
}

func TestSeedRequestSerialize(t *testing.T) {
	req := SeedRequest{Level: 1, Data: []byte{0xAA}}
	assert.Equal(t, []byte{0x27, 0x01, 0xAA}, req.Serialize())
}

func TestSeedResponseParse(t *testing.T) {
	result, err := seedResponse.Parse([]byte{0x67, 0x01, 0xDE, 0xAD})
	require.NoError(t, err)
	assert.Equal(t, uint8(1), result.Level)
	assert.Equal(t, []byte{0xDE, 0xAD}, result.Seed)
}

func TestRoutineRequestSerialize(t *testing.T) {
	req := RoutineRequest{Action: NewAction(StopRoutine), RoutineID: 0x1234, Params: []byte{0x01}}
	assert.Equal(t, []byte{0x31, 0x02, 0x12, 0x34, 0x01}, req.Serialize())
}

func TestRoutineResponseParse(t *testing.T) {
	result, err := routineResponse.Parse([]byte{0x71, 0x01, 0x02, 0x02, 0x00, 0xAA, 0xBB})
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0202), result.RoutineID)
	assert.Equal(t, []byte{0xAA, 0xBB}, result.Params)
}

func TestRequestDownloadRequestSerialize(t *testing.T) {
	req := RequestDownloadRequest{DataFormat: 0x00, StartAddr: 0x1000, MemorySize: 0x20}
	assert.Equal(t, []byte{0x34, 0x00, 0x44, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x20}, req.Serialize())
}

func TestRequestDownloadResponseParse(t *testing.T) {
	blockLen, err := downloadResponse.Parse([]byte{0x74, 0x20, 0x00, 0x20})
	require.NoError(t, err)
	assert.Equal(t, uint16(0x20), blockLen)
}

func TestRequestDownloadResponseRejectsWrongLengthFormatID(t *testing.T) {
	_, err := downloadResponse.Parse([]byte{0x74, 0x10, 0x00, 0x20})
	require.Error(t, err)
}

func TestTransferDataRequestSerialize(t *testing.T) {
	req := TransferDataRequest{BSC: 1, Payload: []byte{1, 2, 3}}
	assert.Equal(t, []byte{0x36, 0x01, 1, 2, 3}, req.Serialize())
}

func TestTransferExitRequestSerialize(t *testing.T) {
	req := TransferExitRequest{}
	assert.Equal(t, []byte{0x37}, req.Serialize())
}

func TestTesterPresentRequestSerialize(t *testing.T) {
	req := TesterPresentRequest{}
	assert.Equal(t, []byte{0x3E, 0x00}, req.Serialize())
}
