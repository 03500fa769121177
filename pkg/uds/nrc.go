package uds

import "fmt"

// Nrc is a negative-response code: either one of the named values below,
// or Unknown for any byte value not in the named table. The mapping to
// and from byte is total in both directions.
type Nrc struct {
	named namedNrc
	known bool
	raw   uint8
}

type namedNrc uint8

const (
	PositiveResponse                        namedNrc = 0x00
	GeneralReject                           namedNrc = 0x10
	ServiceNotSupported                     namedNrc = 0x11
	SubFunctionNotSupported                 namedNrc = 0x12
	IncorrectMessageLengthOrInvalidFormat   namedNrc = 0x13
	ResponseTooLong                         namedNrc = 0x14
	BusyRepeatRequest                       namedNrc = 0x21
	ConditionsNotCorrect                    namedNrc = 0x22
	RequestSequenceError                    namedNrc = 0x24
	RequestOutOfRange                       namedNrc = 0x31
	SecurityAccessDenied                    namedNrc = 0x33
	InvalidKey                              namedNrc = 0x35
	ExceedNumberOfAttempts                  namedNrc = 0x36
	RequiredTimeDelayNotExpired             namedNrc = 0x37
	UploadDownloadNotAccepted               namedNrc = 0x70
	TransferDataSuspended                   namedNrc = 0x71
	GeneralProgrammingFailure               namedNrc = 0x72
	WrongBlockSequenceCounter               namedNrc = 0x73
	RequestCorrectlyReceivedResponsePending namedNrc = 0x78
	SubFunctionNotSupportedInActiveSession  namedNrc = 0x7E
	ServiceNotSupportedInActiveSession      namedNrc = 0x7F
)

var nrcNames = map[namedNrc]string{
	PositiveResponse:                        "PositiveResponse",
	GeneralReject:                           "GeneralReject",
	ServiceNotSupported:                     "ServiceNotSupported",
	SubFunctionNotSupported:                 "SubFunctionNotSupported",
	IncorrectMessageLengthOrInvalidFormat:   "IncorrectMessageLengthOrInvalidFormat",
	ResponseTooLong:                         "ResponseTooLong",
	BusyRepeatRequest:                       "BusyRepeatRequest",
	ConditionsNotCorrect:                    "ConditionsNotCorrect",
	RequestSequenceError:                    "RequestSequenceError",
	RequestOutOfRange:                       "RequestOutOfRange",
	SecurityAccessDenied:                    "SecurityAccessDenied",
	InvalidKey:                              "InvalidKey",
	ExceedNumberOfAttempts:                  "ExceedNumberOfAttempts",
	RequiredTimeDelayNotExpired:             "RequiredTimeDelayNotExpired",
	UploadDownloadNotAccepted:               "UploadDownloadNotAccepted",
	TransferDataSuspended:                   "TransferDataSuspended",
	GeneralProgrammingFailure:               "GeneralProgrammingFailure",
	WrongBlockSequenceCounter:               "WrongBlockSequenceCounter",
	RequestCorrectlyReceivedResponsePending: "RequestCorrectlyReceivedResponsePending",
	SubFunctionNotSupportedInActiveSession:  "SubFunctionNotSupportedInActiveSession",
	ServiceNotSupportedInActiveSession:      "ServiceNotSupportedInActiveSession",
}

// NrcFromByte maps a wire byte to an Nrc. Every byte value maps to
// something: named values to their tag, everything else to Unknown.
func NrcFromByte(b uint8) Nrc {
	if _, ok := nrcNames[namedNrc(b)]; ok {
		return Nrc{named: namedNrc(b), known: true, raw: b}
	}
	return Nrc{raw: b}
}

// Byte returns the wire byte for this Nrc, inverse of NrcFromByte.
func (n Nrc) Byte() uint8 {
	return n.raw
}

// IsUnknown reports whether this NRC falls outside the named table.
func (n Nrc) IsUnknown() bool {
	return !n.known
}

// IsWaitPending reports whether this is 0x78, the only NRC the
// transaction engine treats as non-terminal.
func (n Nrc) IsWaitPending() bool {
	return n.known && n.named == RequestCorrectlyReceivedResponsePending
}

func (n Nrc) String() string {
	if n.known {
		return nrcNames[n.named]
	}
	return fmt.Sprintf("Unknown(0x%02X)", n.raw)
}
