package vita49

import (
	"bytes"
	"errors"
	"testing"
)

func TestSignalDataConstruct(t *testing.T) {
	p := NewSignalDataPacket()
	if err := p.SetStreamID(0xDEADBEEF); err != nil {
		t.Fatalf("SetStreamID returned error: %v", err)
	}
	if err := p.SetSignalPayload([]byte{1, 2, 3, 4, 5, 6, 7, 8}); err != nil {
		t.Fatalf("SetSignalPayload returned error: %v", err)
	}
	buf, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if len(buf) != 16 {
		t.Fatalf("encoded length = %d, want 16", len(buf))
	}
	if p.Header().PacketSize != 4 {
		t.Fatalf("packet size = %d words, want 4", p.Header().PacketSize)
	}

	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	payload, err := decoded.SignalPayload()
	if err != nil {
		t.Fatalf("SignalPayload returned error: %v", err)
	}
	if !bytes.Equal(payload, []byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Fatalf("payload = %v", payload)
	}
}

func TestSignalDataZeroLengthPayload(t *testing.T) {
	p := NewSignalDataPacket()
	buf, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if len(buf) != 8 {
		t.Fatalf("encoded length = %d, want 8", len(buf))
	}
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	payload, err := decoded.SignalPayload()
	if err != nil {
		t.Fatalf("SignalPayload returned error: %v", err)
	}
	if len(payload) != 0 {
		t.Fatalf("payload length = %d, want 0", len(payload))
	}
	reencoded, err := decoded.Encode()
	if err != nil {
		t.Fatalf("re-Encode returned error: %v", err)
	}
	if !bytes.Equal(reencoded, buf) {
		t.Fatalf("round trip mismatch:\n  %x\n  %x", buf, reencoded)
	}
}

func TestSignalDataNoStreamID(t *testing.T) {
	p := NewSignalDataPacketNoStreamID()
	if err := p.SetSignalPayload([]byte{9, 9, 9, 9}); err != nil {
		t.Fatalf("SetSignalPayload returned error: %v", err)
	}
	if err := p.SetStreamID(1); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState setting stream id, got %v", err)
	}
	buf, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if len(buf) != 8 {
		t.Fatalf("encoded length = %d, want 8 (no stream id word)", len(buf))
	}
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if _, ok := decoded.StreamID(); ok {
		t.Fatalf("legacy packet should have no stream id")
	}
}

func TestSignalDataUnevenPayload(t *testing.T) {
	p := NewSignalDataPacket()
	if err := p.SetSignalPayload([]byte{1, 2, 3}); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange for uneven payload, got %v", err)
	}
}

func TestSignalDataTrailer(t *testing.T) {
	p := NewSignalDataPacket()
	if err := p.SetSignalPayload([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("SetSignalPayload returned error: %v", err)
	}
	var trailer Trailer
	trailer.SetValidData(true)
	trailer.SetOverRange(false)
	trailer.SetSampleFrame(2)
	trailer.SetAssociatedContextPacketCount(3)
	if err := p.SetTrailer(trailer); err != nil {
		t.Fatalf("SetTrailer returned error: %v", err)
	}

	buf, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if len(buf) != 16 {
		t.Fatalf("encoded length = %d, want 16", len(buf))
	}
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	dt := decoded.Trailer()
	if dt == nil {
		t.Fatalf("decoded packet missing trailer")
	}
	if v, ok := dt.ValidData(); !ok || !v {
		t.Fatalf("valid data = %v (enabled=%v), want true", v, ok)
	}
	if v, ok := dt.OverRange(); !ok || v {
		t.Fatalf("over range = %v (enabled=%v), want false/enabled", v, ok)
	}
	if _, ok := dt.CalibratedTime(); ok {
		t.Fatalf("calibrated time should not be enabled")
	}
	if sf, ok := dt.SampleFrame(); !ok || sf != 2 {
		t.Fatalf("sample frame = %d (enabled=%v), want 2", sf, ok)
	}
	if n, ok := dt.AssociatedContextPacketCount(); !ok || n != 3 {
		t.Fatalf("associated context count = %d (enabled=%v), want 3", n, ok)
	}

	decoded.ClearTrailer()
	shorter, err := decoded.Encode()
	if err != nil {
		t.Fatalf("Encode after ClearTrailer returned error: %v", err)
	}
	if len(buf)-len(shorter) != 4 {
		t.Fatalf("trailer removal should shrink packet by 4 bytes, delta=%d", len(buf)-len(shorter))
	}
	if decoded.Header().TrailerPresent() {
		t.Fatalf("trailer flag still set after ClearTrailer")
	}
}
