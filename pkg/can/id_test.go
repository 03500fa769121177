package can

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardIdMasksHighBits(t *testing.T) {
	id := StandardId(0xFFFF)
	assert.False(t, id.IsExtended())
	assert.Equal(t, StandardMask, id.Raw())
}

func TestExtendedIdMasksHighBits(t *testing.T) {
	id := ExtendedId(0xFFFFFFFF)
	assert.True(t, id.IsExtended())
	assert.Equal(t, ExtendedMask, id.Raw())
}

func TestCanIdString(t *testing.T) {
	assert.Equal(t, "Standard(0x7E8)", StandardId(0x7E8).String())
	assert.Equal(t, "Extended(0x18DAF100)", ExtendedId(0x18DAF100).String())
}

func TestFrameFlagBits(t *testing.T) {
	eff := NewFrame(0x18DAF100|CanEffFlag, 0, 8)
	assert.True(t, eff.IsExtended())
	assert.False(t, eff.IsRemote())
	assert.Equal(t, uint32(0x18DAF100), eff.Identifier())

	rtr := NewFrame(0x7E8|CanRtrFlag, 0, 0)
	assert.False(t, rtr.IsExtended())
	assert.True(t, rtr.IsRemote())
	assert.Equal(t, uint32(0x7E8), rtr.Identifier())
}
