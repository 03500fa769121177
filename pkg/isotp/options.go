package isotp

// OptionFlag is one bit of the Linux CAN_ISOTP socket option set
// (struct can_isotp_options.flags, see linux/can/isotp.h). They are
// combined with bitwise-or before Open.
type OptionFlag uint32

const (
	// ListenMode disables sending flow-control frames; the socket only
	// observes traffic.
	ListenMode OptionFlag = 0x0001
	// ExtendedAddr enables ISO-TP extended addressing on the TX path.
	ExtendedAddr OptionFlag = 0x0002
	// TxPadding pads TX CAN frames to 8 bytes.
	TxPadding OptionFlag = 0x0004
	// RxPadding pads RX CAN frames to 8 bytes.
	RxPadding OptionFlag = 0x0008
	// CheckPadLen verifies the RX padding length.
	CheckPadLen OptionFlag = 0x0010
	// CheckPadData verifies the RX padding bytes.
	CheckPadData OptionFlag = 0x0020
	// HalfDuplex enables half-duplex error handling.
	HalfDuplex OptionFlag = 0x0040
	// ForceTxStMin ignores the STmin advertised by the peer's flow control.
	ForceTxStMin OptionFlag = 0x0080
	// ForceRxStMin ignores consecutive frames arriving faster than our own
	// advertised RX STmin.
	ForceRxStMin OptionFlag = 0x0100
	// RxExtAddr uses a distinct RX extended address.
	RxExtAddr OptionFlag = 0x0200
	// WaitTxDone makes write(2) block until the last CAN frame of the
	// message has actually left the controller. Enabled by default.
	WaitTxDone OptionFlag = 0x0400
	// SfBroadcast enables 1-to-N functional addressing for single frames.
	SfBroadcast OptionFlag = 0x0800
	// CfBroadcast enables 1-to-N transmission of consecutive frames
	// without a flow-control handshake.
	CfBroadcast OptionFlag = 0x1000
)

// DefaultPadByte is the padding byte used on both TX and RX unless
// overridden.
const DefaultPadByte byte = 0xCC

// Options configures a Conn before it is opened. The zero value has no
// flags set and zero padding bytes; DefaultOptions returns the host
// defaults (WaitTxDone set, 0xCC padding bytes).
type Options struct {
	Flags      OptionFlag
	FrameTxGap uint32 // frame_txtime, nanoseconds; 0 leaves kernel default
	TxPadByte  byte
	RxPadByte  byte
	ExtAddr    byte
	RxExtAddr  byte
}

// DefaultOptions returns the host-mandated defaults: WaitTxDone set, 0xCC
// padding, everything else off.
func DefaultOptions() Options {
	return Options{
		Flags:     WaitTxDone,
		TxPadByte: DefaultPadByte,
		RxPadByte: DefaultPadByte,
	}
}

// canIsotpOptions mirrors struct can_isotp_options from linux/can/isotp.h,
// field for field, so it can be handed to setsockopt(2) via unsafe.Pointer.
type canIsotpOptions struct {
	flags        uint32
	frameTxtime  uint32
	extAddress   uint8
	txpadContent uint8
	rxpadContent uint8
	rxExtAddress uint8
}

func (o Options) toWire() canIsotpOptions {
	return canIsotpOptions{
		flags:        uint32(o.Flags),
		frameTxtime:  o.FrameTxGap,
		extAddress:   o.ExtAddr,
		txpadContent: o.TxPadByte,
		rxpadContent: o.RxPadByte,
		rxExtAddress: o.RxExtAddr,
	}
}
