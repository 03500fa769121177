package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogHasEngineAndGateway(t *testing.T) {
	cat := Default()
	engine, err := cat.Lookup("engine")
	require.NoError(t, err)
	assert.Equal(t, "can0", engine.Channel)
	assert.False(t, engine.RxID.IsExtended())

	gateway, err := cat.Lookup("gateway")
	require.NoError(t, err)
	assert.True(t, gateway.RxID.IsExtended())
}

func TestLookupUnknownProfile(t *testing.T) {
	cat := Default()
	_, err := cat.Lookup("nonexistent")
	require.Error(t, err)
}

func TestParseCustomProfile(t *testing.T) {
	raw := []byte(`
[test_ecu]
Channel = vcan0
RxId = 0x123
TxId = 0x456
Extended = false
DefaultSession = 0x03
P2OverrideMs = 100
`)
	cat, err := Parse(raw)
	require.NoError(t, err)
	profile, err := cat.Lookup("test_ecu")
	require.NoError(t, err)
	assert.Equal(t, "vcan0", profile.Channel)
	assert.EqualValues(t, 0x123, profile.RxID.Raw())
	assert.Equal(t, uint8(0x03), profile.DefaultSession.Byte())
}
