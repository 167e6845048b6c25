package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	vita49 "github.com/voyager-tech-inc/vita49-go"
)

func encodePacket(t *testing.T, p *vita49.Packet) []byte {
	t.Helper()
	buf, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	return buf
}

func sampleStream(t *testing.T) []byte {
	t.Helper()
	var stream []byte

	sig := vita49.NewSignalDataPacket()
	if err := sig.SetStreamID(0x10); err != nil {
		t.Fatalf("SetStreamID returned error: %v", err)
	}
	if err := sig.SetSignalPayload([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("SetSignalPayload returned error: %v", err)
	}
	stream = append(stream, encodePacket(t, sig)...)

	ctx := vita49.NewContextPacket()
	if err := ctx.SetStreamID(0x10); err != nil {
		t.Fatalf("SetStreamID returned error: %v", err)
	}
	body, err := ctx.Context()
	if err != nil {
		t.Fatalf("Context returned error: %v", err)
	}
	if err := body.SetBandwidthHz(5e6); err != nil {
		t.Fatalf("SetBandwidthHz returned error: %v", err)
	}
	if err := body.SetSampleRateSps(10e6); err != nil {
		t.Fatalf("SetSampleRateSps returned error: %v", err)
	}
	stream = append(stream, encodePacket(t, ctx)...)
	return stream
}

func TestBufferSummary(t *testing.T) {
	stream := sampleStream(t)
	var visited int
	sum, err := Buffer(stream, nil, func(pkt *vita49.Packet, rec Record) {
		visited++
		if pkt == nil {
			t.Fatalf("unexpected decode failure at offset %d: %v", rec.Offset, rec.Err)
		}
	})
	if err != nil {
		t.Fatalf("Buffer returned error: %v", err)
	}
	if visited != 2 || sum.Packets != 2 {
		t.Fatalf("packets = %d (visited %d), want 2", sum.Packets, visited)
	}
	if sum.DecodeErrors != 0 {
		t.Fatalf("decode errors = %d, want 0", sum.DecodeErrors)
	}
	if sum.ByType[vita49.TypeContext] != 1 || sum.ByType[vita49.TypeSignalDataStreamID] != 1 {
		t.Fatalf("by-type counts wrong: %v", sum.ByType)
	}
	if sum.StreamIDs[0x10] != 2 {
		t.Fatalf("stream id count = %d, want 2", sum.StreamIDs[0x10])
	}
	if sum.FieldUse["bandwidth_hz"] != 1 || sum.FieldUse["sample_rate_sps"] != 1 {
		t.Fatalf("field use wrong: %v", sum.FieldUse)
	}
}

func TestBufferSkipsBadPacket(t *testing.T) {
	stream := sampleStream(t)
	// Corrupt the first packet's type nibble without touching its size.
	stream[0] = 0xF0
	sum, err := Buffer(stream, nil, nil)
	if err != nil {
		t.Fatalf("Buffer returned error: %v", err)
	}
	if sum.Packets != 2 || sum.DecodeErrors != 1 {
		t.Fatalf("packets=%d errors=%d, want 2/1", sum.Packets, sum.DecodeErrors)
	}
}

func TestBufferTruncatedTail(t *testing.T) {
	stream := sampleStream(t)
	if _, err := Buffer(stream[:len(stream)-2], nil, nil); !errors.Is(err, vita49.ErrTruncated) {
		t.Fatalf("expected truncated error, got %v", err)
	}
}

func TestFile(t *testing.T) {
	stream := sampleStream(t)
	path := filepath.Join(t.TempDir(), "capture.vrt")
	if err := os.WriteFile(path, stream, 0644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	sum, err := File(path, nil, nil)
	if err != nil {
		t.Fatalf("File returned error: %v", err)
	}
	if sum.Packets != 2 {
		t.Fatalf("packets = %d, want 2", sum.Packets)
	}
	if sum.Bytes != int64(len(stream)) {
		t.Fatalf("bytes = %d, want %d", sum.Bytes, len(stream))
	}
}
