// Package isotp implements the Transport Adapter contract on top of the
// Linux CAN_ISOTP socket family. Segmentation and flow control are
// entirely handled by the kernel driver; this package only deals with
// opening the socket with the right address and options and moving
// whole PDUs across it.
package isotp

import (
	"context"
	"fmt"
	"net"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	can "github.com/samsamfire/go-uds/pkg/can"
)

// Constants not exposed by the vendored golang.org/x/sys/unix, taken
// from linux/can.h and linux/can/isotp.h.
const (
	canIsotpProto   = 6   // CAN_ISOTP
	solCanBase      = 100 // SOL_CAN_BASE
	solCanIsotp     = solCanBase + canIsotpProto
	optCanIsotpOpts = 1 // CAN_ISOTP_OPTS
)

// sockaddrCanIsotp mirrors struct sockaddr_can with its tp address union
// member, field for field, for use with a raw bind(2) syscall. unix.SockaddrCAN
// only models the tp union as zero, so ISO-TP's rx_id/tx_id pair has to be
// bound by hand.
type sockaddrCanIsotp struct {
	family  uint16
	ifindex int32
	rxID    uint32
	txID    uint32
}

// Conn is an open ISO-TP socket bound to one CAN interface and one
// rx/tx identifier pair. It implements the host Transport contract:
// ReadMessage/WriteMessage move a complete UDS PDU at a time, with the
// kernel doing segmentation, flow control and timing underneath.
type Conn struct {
	fd        int
	ifaceName string
	rxID      can.CanId
	txID      can.CanId
}

// Open creates and binds an ISO-TP socket on ifaceName, listening for
// PDUs addressed to rxID and sending with txID. opts configures the
// kernel ISO-TP options (padding, addressing mode, timing overrides);
// pass DefaultOptions() for the host defaults.
func Open(ifaceName string, rxID, txID can.CanId, opts Options) (*Conn, error) {
	if rxID.IsExtended() != txID.IsExtended() {
		return nil, fmt.Errorf("isotp: rx and tx identifiers must share addressing mode")
	}

	fd, err := unix.Socket(unix.AF_CAN, unix.SOCK_DGRAM, canIsotpProto)
	if err != nil {
		return nil, fmt.Errorf("isotp: socket: %w", err)
	}

	wire := opts.toWire()
	_, _, errno := unix.Syscall6(
		unix.SYS_SETSOCKOPT,
		uintptr(fd),
		uintptr(solCanIsotp),
		uintptr(optCanIsotpOpts),
		uintptr(unsafe.Pointer(&wire)),
		unsafe.Sizeof(wire),
		0,
	)
	if errno != 0 {
		unix.Close(fd)
		return nil, fmt.Errorf("isotp: setsockopt CAN_ISOTP_OPTS: %w", errno)
	}

	ifindex, err := interfaceIndex(ifaceName)
	if err != nil {
		unix.Close(fd)
		return nil, err
	}

	addr := sockaddrCanIsotp{
		family:  unix.AF_CAN,
		ifindex: int32(ifindex),
		txID:    idWithFlag(txID),
		rxID:    idWithFlag(rxID),
	}
	_, _, errno = unix.Syscall(
		unix.SYS_BIND,
		uintptr(fd),
		uintptr(unsafe.Pointer(&addr)),
		unsafe.Sizeof(addr),
	)
	if errno != 0 {
		unix.Close(fd)
		return nil, fmt.Errorf("isotp: bind: %w", errno)
	}

	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("isotp: set nonblocking: %w", err)
	}

	return &Conn{fd: fd, ifaceName: ifaceName, rxID: rxID, txID: txID}, nil
}

// idWithFlag sets the EFF bit expected by the kernel when the identifier
// is a 29-bit extended one.
func idWithFlag(id can.CanId) uint32 {
	if id.IsExtended() {
		return id.Raw() | unix.CAN_EFF_FLAG
	}
	return id.Raw()
}

func interfaceIndex(name string) (int, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return 0, fmt.Errorf("isotp: resolve interface index: %w", err)
	}
	return iface.Index, nil
}

// ReadMessage blocks until a full ISO-TP PDU has been reassembled by the
// kernel and copies it into buf, or ctx is done. It returns the number of
// bytes written into buf.
func (c *Conn) ReadMessage(ctx context.Context, buf []byte) (int, error) {
	for {
		n, err := unix.Read(c.fd, buf)
		if err == nil {
			return n, nil
		}
		if err != unix.EAGAIN && err != unix.EWOULDBLOCK {
			return 0, fmt.Errorf("isotp: read: %w", err)
		}
		if err := c.waitReadable(ctx); err != nil {
			return 0, err
		}
	}
}

// WriteMessage hands a whole PDU to the kernel for ISO-TP segmentation
// and transmission. With the host-mandated WaitTxDone option set, this
// call does not return until the last CAN frame has left the controller.
func (c *Conn) WriteMessage(ctx context.Context, data []byte) error {
	for {
		_, err := unix.Write(c.fd, data)
		if err == nil {
			return nil
		}
		if err != unix.EAGAIN && err != unix.EWOULDBLOCK {
			return fmt.Errorf("isotp: write: %w", err)
		}
		if err := c.waitWritable(ctx); err != nil {
			return err
		}
	}
}

// Close releases the underlying socket.
func (c *Conn) Close() error {
	return unix.Close(c.fd)
}

const pollSlice = 50 * time.Millisecond

func (c *Conn) waitReadable(ctx context.Context) error {
	return c.poll(ctx, unix.POLLIN)
}

func (c *Conn) waitWritable(ctx context.Context) error {
	return c.poll(ctx, unix.POLLOUT)
}

// poll cooperatively waits for the fd to become ready, slicing the wait
// into short timeouts so ctx cancellation is observed promptly without
// needing the host's own reactor integration.
func (c *Conn) poll(ctx context.Context, events int16) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		fds := []unix.PollFd{{Fd: int32(c.fd), Events: events}}
		n, err := unix.Poll(fds, int(pollSlice.Milliseconds()))
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return fmt.Errorf("isotp: poll: %w", err)
		}
		if n > 0 && fds[0].Revents&events != 0 {
			return nil
		}
	}
}
