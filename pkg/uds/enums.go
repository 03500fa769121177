package uds

import "fmt"

// SessionType names the common Diagnostic Session Control sub-functions,
// with Other as an escape hatch so the conversion to and from byte stays
// total over every possible value.
type SessionType struct {
	named sessionNamed
	known bool
	raw   uint8
}

type sessionNamed uint8

const (
	DefaultSession                sessionNamed = 0x01
	ProgrammingSession            sessionNamed = 0x02
	ExtendedDiagnosticSession     sessionNamed = 0x03
	SafetySystemDiagnosticSession sessionNamed = 0x04
)

var sessionNames = map[sessionNamed]string{
	DefaultSession:                "DefaultSession",
	ProgrammingSession:            "ProgrammingSession",
	ExtendedDiagnosticSession:     "ExtendedDiagnosticSession",
	SafetySystemDiagnosticSession: "SafetySystemDiagnosticSession",
}

// SessionTypeFromByte converts a wire byte into a SessionType. Any value
// not in the named table round-trips through Other.
func SessionTypeFromByte(b uint8) SessionType {
	if _, ok := sessionNames[sessionNamed(b)]; ok {
		return SessionType{named: sessionNamed(b), known: true, raw: b}
	}
	return SessionType{raw: b}
}

func NewSessionType(named sessionNamed) SessionType {
	return SessionType{named: named, known: true, raw: uint8(named)}
}

// Byte returns the wire byte for this session type.
func (s SessionType) Byte() uint8 {
	return s.raw
}

func (s SessionType) String() string {
	if s.known {
		return sessionNames[s.named]
	}
	return otherString(s.raw)
}

// ResetType names the common ECU Reset sub-functions.
type ResetType struct {
	named resetNamed
	known bool
	raw   uint8
}

type resetNamed uint8

const (
	HardReset                 resetNamed = 0x01
	KeyOffOnReset             resetNamed = 0x02
	SoftReset                 resetNamed = 0x03
	EnableRapidPowerShutDown  resetNamed = 0x04
	DisableRapidPowerShutDown resetNamed = 0x05
)

var resetNames = map[resetNamed]string{
	HardReset:                 "HardReset",
	KeyOffOnReset:             "KeyOffOnReset",
	SoftReset:                 "SoftReset",
	EnableRapidPowerShutDown:  "EnableRapidPowerShutDown",
	DisableRapidPowerShutDown: "DisableRapidPowerShutDown",
}

// ResetTypeFromByte converts a wire byte into a ResetType.
func ResetTypeFromByte(b uint8) ResetType {
	if _, ok := resetNames[resetNamed(b)]; ok {
		return ResetType{named: resetNamed(b), known: true, raw: b}
	}
	return ResetType{raw: b}
}

func NewResetType(named resetNamed) ResetType {
	return ResetType{named: named, known: true, raw: uint8(named)}
}

// Byte returns the wire byte for this reset type.
func (r ResetType) Byte() uint8 {
	return r.raw
}

func (r ResetType) String() string {
	if r.known {
		return resetNames[r.named]
	}
	return otherString(r.raw)
}

// Action names a Routine Control sub-function.
type Action struct {
	named actionNamed
	known bool
	raw   uint8
}

type actionNamed uint8

const (
	StartRoutine         actionNamed = 0x01
	StopRoutine          actionNamed = 0x02
	RequestRoutineResult actionNamed = 0x03
)

var actionNames = map[actionNamed]string{
	StartRoutine:         "Start",
	StopRoutine:          "Stop",
	RequestRoutineResult: "Result",
}

// ActionFromByte converts a wire byte into an Action.
func ActionFromByte(b uint8) Action {
	if _, ok := actionNames[actionNamed(b)]; ok {
		return Action{named: actionNamed(b), known: true, raw: b}
	}
	return Action{raw: b}
}

func NewAction(named actionNamed) Action {
	return Action{named: named, known: true, raw: uint8(named)}
}

// Byte returns the wire byte for this action.
func (a Action) Byte() uint8 {
	return a.raw
}

func (a Action) String() string {
	if a.known {
		return actionNames[a.named]
	}
	return otherString(a.raw)
}

func otherString(raw uint8) string {
	return fmt.Sprintf("Other(0x%02X)", raw)
}
