// Package catalog holds named ECU profiles: the CAN channel and
// identifier pair, addressing mode, and default session to use when
// opening a connection to a given ECU, so callers can refer to "engine"
// or "gateway" instead of repeating raw CAN ids everywhere.
package catalog

import (
	"embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/ini.v1"

	can "github.com/samsamfire/go-uds/pkg/can"
	"github.com/samsamfire/go-uds/pkg/uds"
)

//go:embed default.ini
var embedded embed.FS

// Profile names the transport parameters and default diagnostic session
// for one ECU.
type Profile struct {
	Name           string
	Channel        string
	RxID           can.CanId
	TxID           can.CanId
	DefaultSession uds.SessionType
	P2Override     time.Duration
}

// Catalog is a set of profiles keyed by name.
type Catalog struct {
	profiles map[string]Profile
}

// Default returns the catalog embedded in this module.
func Default() *Catalog {
	raw, err := embedded.ReadFile("default.ini")
	if err != nil {
		panic(err)
	}
	cat, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return cat
}

// Load reads a catalog from an ini file on disk, one section per
// profile.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return Parse(raw)
}

// Parse reads a catalog from ini-formatted bytes, one section per
// profile.
func Parse(raw []byte) (*Catalog, error) {
	file, err := ini.Load(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	cat := &Catalog{profiles: make(map[string]Profile)}
	for _, section := range file.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		profile, err := profileFromSection(name, section)
		if err != nil {
			return nil, fmt.Errorf("catalog: profile %q: %w", name, err)
		}
		cat.profiles[name] = profile
	}
	return cat, nil
}

func profileFromSection(name string, section *ini.Section) (Profile, error) {
	extended, err := section.Key("Extended").Bool()
	if err != nil {
		return Profile{}, err
	}
	rxRaw, err := strconv.ParseUint(section.Key("RxId").String(), 0, 32)
	if err != nil {
		return Profile{}, err
	}
	txRaw, err := strconv.ParseUint(section.Key("TxId").String(), 0, 32)
	if err != nil {
		return Profile{}, err
	}
	sessionRaw, err := parseHexOrDec(section.Key("DefaultSession").String())
	if err != nil {
		return Profile{}, err
	}
	p2ms, err := section.Key("P2OverrideMs").Int64()
	if err != nil {
		return Profile{}, err
	}

	var rxID, txID can.CanId
	if extended {
		rxID = can.ExtendedId(uint32(rxRaw))
		txID = can.ExtendedId(uint32(txRaw))
	} else {
		rxID = can.StandardId(uint16(rxRaw))
		txID = can.StandardId(uint16(txRaw))
	}

	return Profile{
		Name:           name,
		Channel:        section.Key("Channel").String(),
		RxID:           rxID,
		TxID:           txID,
		DefaultSession: uds.SessionTypeFromByte(uint8(sessionRaw)),
		P2Override:     time.Duration(p2ms) * time.Millisecond,
	}, nil
}

func parseHexOrDec(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 8)
}

// Lookup returns the profile registered under name.
func (c *Catalog) Lookup(name string) (Profile, error) {
	profile, ok := c.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("catalog: no profile named %q", name)
	}
	return profile, nil
}

// Names returns every profile name in the catalog.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		names = append(names, name)
	}
	return names
}
