package uds

import (
	"context"
	"encoding/binary"
	"fmt"
)

const sidDownloadRequest = 0x34
const sidDownloadResponse = 0x74
const sidTransferDataRequest = 0x36
const sidTransferDataResponse = 0x76
const sidTransferExitRequest = 0x37
const sidTransferExitResponse = 0x77

// fixedAddressLengthFormat is the only address-length format this
// client supports: 4-byte address, 4-byte size.
const fixedAddressLengthFormat = 0x44

// downloadHeaderOverhead is the usable-payload deduction this client
// applies to the block length the ECU returns from Request Download.
// ISO 14229 prescribes the Transfer Data header size (2 bytes) as the
// deduction; this client instead subtracts 15, preserved as observed
// behavior rather than corrected.
const downloadHeaderOverhead = 15

// RequestDownloadRequest is the Request Download request:
// `34 DF 44 A3 A2 A1 A0 S3 S2 S1 S0`.
type RequestDownloadRequest struct {
	DataFormat uint8
	StartAddr  uint32
	MemorySize uint32
}

func (r RequestDownloadRequest) SID() uint8 { return sidDownloadRequest }

func (r RequestDownloadRequest) Serialize() []byte {
	out := make([]byte, 11)
	out[0] = sidDownloadRequest
	out[1] = r.DataFormat
	out[2] = fixedAddressLengthFormat
	binary.BigEndian.PutUint32(out[3:7], r.StartAddr)
	binary.BigEndian.PutUint32(out[7:11], r.MemorySize)
	return out
}

var downloadResponse = Response[uint16]{
	SID:    sidDownloadResponse,
	MinLen: 4,
	MaxLen: 4,
	Parse: func(body []byte) (uint16, error) {
		if body[1] != 0x20 {
			return 0, invalidResponsef("request download length-format-id 0x%02X, want 0x20", body[1])
		}
		return uint16(body[2])<<8 | uint16(body[3]), nil
	},
}

// TransferDataRequest is the Transfer Data request: `36 BSC [payload...]`.
type TransferDataRequest struct {
	BSC     uint8
	Payload []byte
}

func (r TransferDataRequest) SID() uint8 { return sidTransferDataRequest }

func (r TransferDataRequest) Serialize() []byte {
	out := make([]byte, 0, 2+len(r.Payload))
	out = append(out, sidTransferDataRequest, r.BSC)
	return append(out, r.Payload...)
}

var transferDataResponse = Response[uint8]{
	SID:    sidTransferDataResponse,
	MinLen: 2,
	MaxLen: 0,
	Parse: func(body []byte) (uint8, error) {
		return body[1], nil
	},
}

// TransferExitRequest is the Request Transfer Exit request:
// `37 [payload...]`.
type TransferExitRequest struct {
	Payload []byte
}

func (r TransferExitRequest) SID() uint8 { return sidTransferExitRequest }

func (r TransferExitRequest) Serialize() []byte {
	out := make([]byte, 0, 1+len(r.Payload))
	out = append(out, sidTransferExitRequest)
	return append(out, r.Payload...)
}

var transferExitResponse = Response[[]byte]{
	SID:    sidTransferExitResponse,
	MinLen: 1,
	MaxLen: 0,
	Parse: func(body []byte) ([]byte, error) {
		out := make([]byte, len(body)-1)
		copy(out, body[1:])
		return out, nil
	},
}

// Download orchestrates the three-phase memory write: Request Download,
// a Transfer Data message per chunk, Request Transfer Exit. The block
// sequence counter is an 8-bit wrapping value starting at 1; the server's
// echo of it in each Transfer Data response is read but not checked
// against what was sent, preserved as observed behavior. Any transaction
// error aborts the sequence immediately; the caller is responsible for
// any cleanup on the ECU side.
func Download(ctx context.Context, c *Client, startAddr uint32, data []byte) error {
	c.log.WithField("addr", fmt.Sprintf("0x%08X", startAddr)).WithField("size", len(data)).Debug("[DOWNLOAD] requesting")
	blockLen, err := Query(ctx, c, RequestDownloadRequest{
		DataFormat: 0x00,
		StartAddr:  startAddr,
		MemorySize: uint32(len(data)),
	}, downloadResponse)
	if err != nil {
		c.log.Warn("[DOWNLOAD] request download failed")
		return err
	}

	chunkSize := int(blockLen) - downloadHeaderOverhead
	if chunkSize <= 0 && len(data) > 0 {
		return otherf("block length %d leaves no room for payload", blockLen)
	}
	c.log.WithField("blockLen", blockLen).WithField("chunkSize", chunkSize).Debug("[DOWNLOAD] block length negotiated")

	bsc := uint8(1)
	for offset := 0; offset < len(data); offset += chunkSize {
		end := offset + chunkSize
		if end > len(data) {
			end = len(data)
		}
		c.log.WithField("bsc", bsc).WithField("len", end-offset).Debug("[DOWNLOAD] transfer data")
		_, err := Query(ctx, c, TransferDataRequest{BSC: bsc, Payload: data[offset:end]}, transferDataResponse)
		if err != nil {
			c.log.WithField("bsc", bsc).Warn("[DOWNLOAD] transfer data failed")
			return err
		}
		bsc++
	}

	_, err = Query(ctx, c, TransferExitRequest{}, transferExitResponse)
	if err != nil {
		c.log.Warn("[DOWNLOAD] transfer exit failed")
		return err
	}
	c.log.Debug("[DOWNLOAD] complete")
	return nil
}
