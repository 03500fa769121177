package uds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTypeRoundTripsOverAllBytes(t *testing.T) {
	for b := 0; b < 256; b++ {
		assert.Equal(t, uint8(b), SessionTypeFromByte(uint8(b)).Byte())
	}
}

func TestResetTypeRoundTripsOverAllBytes(t *testing.T) {
	for b := 0; b < 256; b++ {
		assert.Equal(t, uint8(b), ResetTypeFromByte(uint8(b)).Byte())
	}
}

func TestActionRoundTripsOverAllBytes(t *testing.T) {
	for b := 0; b < 256; b++ {
		assert.Equal(t, uint8(b), ActionFromByte(uint8(b)).Byte())
	}
}
