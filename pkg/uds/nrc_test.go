package uds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNrcRoundTripsOverAllBytes(t *testing.T) {
	for b := 0; b < 256; b++ {
		nrc := NrcFromByte(uint8(b))
		assert.Equal(t, uint8(b), nrc.Byte())
	}
}

func TestNrcWaitPendingOnlyFor0x78(t *testing.T) {
	assert.True(t, NrcFromByte(0x78).IsWaitPending())
	for b := 0; b < 256; b++ {
		if b == 0x78 {
			continue
		}
		assert.False(t, NrcFromByte(uint8(b)).IsWaitPending())
	}
}

func TestNrcKnownValuesAreNotUnknown(t *testing.T) {
	for named := range nrcNames {
		assert.False(t, NrcFromByte(uint8(named)).IsUnknown())
	}
}
