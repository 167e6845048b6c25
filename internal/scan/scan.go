// Package scan walks files of concatenated VRT packets, decoding each
// one and accumulating a stream summary.
package scan

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	vita49 "github.com/voyager-tech-inc/vita49-go"
	"github.com/voyager-tech-inc/vita49-go/internal/common"
)

// Record describes one packet position in the scanned stream. Err is set
// when the packet failed to decode; the scanner then skips the declared
// packet length and continues.
type Record struct {
	Offset    int64
	SizeBytes int
	Type      vita49.PacketType
	StreamID  uint32
	HasStream bool
	Err       error
}

// Summary aggregates a whole scan.
type Summary struct {
	Packets      int
	DecodeErrors int
	Bytes        int64
	ByType       map[vita49.PacketType]int
	StreamIDs    map[uint32]int
	FieldUse     map[string]int
}

func newSummary() Summary {
	return Summary{
		ByType:    make(map[vita49.PacketType]int),
		StreamIDs: make(map[uint32]int),
		FieldUse:  make(map[string]int),
	}
}

// File scans the file at path. The visit callback, when non-nil, runs
// for every packet slot; pkt is nil for slots that failed to decode.
func File(path string, m *common.Metrics, visit func(pkt *vita49.Packet, rec Record)) (Summary, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, err
	}
	if m != nil {
		m.SetTotalBytes(int64(len(buf)))
	}
	return Buffer(buf, m, visit)
}

// Buffer scans a memory buffer of concatenated packets.
func Buffer(buf []byte, m *common.Metrics, visit func(pkt *vita49.Packet, rec Record)) (Summary, error) {
	sum := newSummary()
	offset := int64(0)
	for len(buf) >= 4 {
		word := binary.BigEndian.Uint32(buf)
		size := int(uint16(word)) * 4
		if size < 4 {
			return sum, fmt.Errorf("packet at offset %d declares %d bytes", offset, size)
		}
		if size > len(buf) {
			return sum, fmt.Errorf("packet at offset %d: %w", offset, vita49.ErrTruncated)
		}
		rec := Record{Offset: offset, SizeBytes: size}
		pkt, err := vita49.Decode(buf[:size])
		if err != nil {
			rec.Err = err
			sum.DecodeErrors++
			if m != nil {
				m.IncDecodeError()
			}
			common.Logf("packet at offset %d failed to decode: %v", offset, err)
		} else {
			rec.Type = pkt.Header().Type
			if sid, ok := pkt.StreamID(); ok {
				rec.StreamID = sid
				rec.HasStream = true
				sum.StreamIDs[sid]++
			}
			sum.ByType[rec.Type]++
			recordFieldUse(&sum, pkt)
		}
		sum.Packets++
		sum.Bytes += int64(size)
		if m != nil {
			m.AddPacket(int64(size))
		}
		if visit != nil {
			visit(pkt, rec)
		}
		buf = buf[size:]
		offset += int64(size)
	}
	if len(buf) != 0 {
		return sum, fmt.Errorf("trailing %d bytes at offset %d: %w", len(buf), offset, vita49.ErrTruncated)
	}
	return sum, nil
}

func recordFieldUse(sum *Summary, pkt *vita49.Packet) {
	ctx := contextOf(pkt)
	if ctx == nil {
		return
	}
	for _, f := range vita49.Fields() {
		if ctx.FieldPresent(f) {
			sum.FieldUse[f.Name()]++
		}
	}
}

func contextOf(pkt *vita49.Packet) *vita49.Context {
	if ctx, err := pkt.Context(); err == nil {
		return ctx
	}
	if ext, err := pkt.ExtensionContext(); err == nil {
		return &ext.Context
	}
	if cmd, err := pkt.Command(); err == nil {
		if ctl, err := cmd.Control(); err == nil {
			return &ctl.Context
		}
	}
	return nil
}

// IsTruncated reports whether a scan error was a short final packet.
func IsTruncated(err error) bool {
	return errors.Is(err, vita49.ErrTruncated)
}
