package uds

import "context"

const sidSecurityRequest = 0x27
const sidSecurityResponse = 0x67

// SeedRequest is the Security Access seed request: `27 SL [data...]`.
type SeedRequest struct {
	Level uint8
	Data  []byte
}

func (r SeedRequest) SID() uint8 { return sidSecurityRequest }

func (r SeedRequest) Serialize() []byte {
	out := make([]byte, 0, 2+len(r.Data))
	out = append(out, sidSecurityRequest, r.Level)
	return append(out, r.Data...)
}

// KeyRequest is the Security Access key request: `27 SL+1 [key...]`.
type KeyRequest struct {
	Level uint8
	Key   []byte
}

func (r KeyRequest) SID() uint8 { return sidSecurityRequest }

func (r KeyRequest) Serialize() []byte {
	out := make([]byte, 0, 2+len(r.Key))
	out = append(out, sidSecurityRequest, r.Level)
	return append(out, r.Key...)
}

// SeedResult is the parsed seed response: `67 SL [seed...]`.
type SeedResult struct {
	Level uint8
	Seed  []byte
}

var seedResponse = Response[SeedResult]{
	SID:    sidSecurityResponse,
	MinLen: 2,
	MaxLen: 0,
	Parse: func(body []byte) (SeedResult, error) {
		seed := make([]byte, len(body)-2)
		copy(seed, body[2:])
		return SeedResult{Level: body[1], Seed: seed}, nil
	},
}

var keyResponse = Response[uint8]{
	SID:    sidSecurityResponse,
	MinLen: 2,
	MaxLen: 2,
	Parse: func(body []byte) (uint8, error) {
		return body[1], nil
	},
}

// KeyAlgo derives a key from a seed handed back by the ECU. Key
// derivation itself is supplied by the caller; the client never
// implements one.
type KeyAlgo func(seed []byte) ([]byte, error)

// Unlock drives the seed/key Security Access exchange at secLevel, which
// must be odd: even levels are reserved for key responses, and the
// request/key pair is (secLevel, secLevel+1). seedData is optional
// request data sent alongside the seed request. keyAlgo computes the key
// from the returned seed.
func Unlock(ctx context.Context, c *Client, secLevel uint8, seedData []byte, keyAlgo KeyAlgo) error {
	if secLevel%2 == 0 {
		return invalidRequestf("security level %d must be odd", secLevel)
	}

	c.log.WithField("level", secLevel).Debug("[UNLOCK] requesting seed")
	seedResult, err := Query(ctx, c, SeedRequest{Level: secLevel, Data: seedData}, seedResponse)
	if err != nil {
		c.log.WithField("level", secLevel).Warn("[UNLOCK] seed request failed")
		return err
	}
	if seedResult.Level != secLevel {
		return invalidResponsef("seed response echoes level %d, requested %d", seedResult.Level, secLevel)
	}

	key, err := keyAlgo(seedResult.Seed)
	if err != nil {
		c.log.WithField("level", secLevel).Warn("[UNLOCK] key algorithm failed")
		return otherf("key algorithm failed: %v", err)
	}

	keyLevel := secLevel + 1
	c.log.WithField("level", keyLevel).Debug("[UNLOCK] sending key")
	echoedLevel, err := Query(ctx, c, KeyRequest{Level: keyLevel, Key: key}, keyResponse)
	if err != nil {
		c.log.WithField("level", keyLevel).Warn("[UNLOCK] key request failed")
		return err
	}
	if echoedLevel != keyLevel {
		return invalidResponsef("key response echoes level %d, requested %d", echoedLevel, keyLevel)
	}
	c.log.WithField("level", keyLevel).Debug("[UNLOCK] unlocked")
	return nil
}
