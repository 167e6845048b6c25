package vita49

import (
	"encoding/json"
	"testing"
)

func TestNamedProjection(t *testing.T) {
	p := NewContextPacket()
	if err := p.SetStreamID(0xDEADBEEF); err != nil {
		t.Fatalf("SetStreamID returned error: %v", err)
	}
	ctx, err := p.Context()
	if err != nil {
		t.Fatalf("Context returned error: %v", err)
	}
	if err := ctx.SetBandwidthHz(8e6); err != nil {
		t.Fatalf("SetBandwidthHz returned error: %v", err)
	}
	p.RefreshSize()

	m := p.Named()
	if m["stream_id"] != uint32(0xDEADBEEF) {
		t.Fatalf("stream_id = %v", m["stream_id"])
	}
	hdr, ok := m["header"].(map[string]any)
	if !ok {
		t.Fatalf("header missing from projection")
	}
	if hdr["packet_type"] != "context" {
		t.Fatalf("packet_type = %v", hdr["packet_type"])
	}
	payload := m["payload"].(map[string]any)
	cm, ok := payload["context"].(map[string]any)
	if !ok {
		t.Fatalf("context missing from projection")
	}
	if cm["bandwidth_hz"] != 8e6 {
		t.Fatalf("bandwidth_hz = %v", cm["bandwidth_hz"])
	}
	if _, present := cm["rf_ref_freq_hz"]; present {
		t.Fatalf("absent field leaked into projection")
	}

	// The projection must serialize cleanly; the NDJSON surface depends
	// on it.
	if _, err := json.Marshal(m); err != nil {
		t.Fatalf("projection not JSON-serializable: %v", err)
	}
}

func TestNamedSignalData(t *testing.T) {
	p := NewSignalDataPacket()
	if err := p.SetSignalPayload([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("SetSignalPayload returned error: %v", err)
	}
	var tr Trailer
	tr.SetSampleLoss(true)
	if err := p.SetTrailer(tr); err != nil {
		t.Fatalf("SetTrailer returned error: %v", err)
	}
	p.RefreshSize()

	m := p.Named()
	payload := m["payload"].(map[string]any)
	sd, ok := payload["signal_data"].(map[string]any)
	if !ok {
		t.Fatalf("signal_data missing from projection")
	}
	if sd["payload_size_bytes"] != 4 {
		t.Fatalf("payload_size_bytes = %v", sd["payload_size_bytes"])
	}
	trailer, ok := m["trailer"].(map[string]any)
	if !ok {
		t.Fatalf("trailer missing from projection")
	}
	if trailer["sample_loss"] != true {
		t.Fatalf("sample_loss = %v", trailer["sample_loss"])
	}
}
