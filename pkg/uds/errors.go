package uds

import "fmt"

// TransportError wraps an I/O failure from the underlying transport.
// It is returned as-is; callers decide whether the transport is worth
// reopening.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("uds: transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NegativeResponseError is returned when the ECU replies with a
// well-formed negative response carrying an NRC other than
// RequestCorrectlyReceivedResponsePending.
type NegativeResponseError struct {
	Nrc Nrc
}

func (e *NegativeResponseError) Error() string {
	return fmt.Sprintf("uds: negative response: %s", e.Nrc)
}

// InvalidResponseError marks a malformed ECU reply: wrong length, wrong
// SID echo, or a length outside the declared bounds for the service.
type InvalidResponseError struct {
	Message string
}

func (e *InvalidResponseError) Error() string {
	return "uds: invalid response: " + e.Message
}

// InvalidRequestError marks an argument an orchestrator rejected without
// sending anything to the transport.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return "uds: invalid request: " + e.Message
}

// OtherError covers service-specific invariant violations: session-id
// echo mismatches, key-algorithm failures, and similar.
type OtherError struct {
	Message string
}

func (e *OtherError) Error() string {
	return "uds: " + e.Message
}

func invalidResponsef(format string, args ...any) error {
	return &InvalidResponseError{Message: fmt.Sprintf(format, args...)}
}

func invalidRequestf(format string, args ...any) error {
	return &InvalidRequestError{Message: fmt.Sprintf(format, args...)}
}

func otherf(format string, args ...any) error {
	return &OtherError{Message: fmt.Sprintf(format, args...)}
}
