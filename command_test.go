package vita49

import (
	"bytes"
	"errors"
	"testing"
)

func buildControlPacket(t *testing.T) *Packet {
	t.Helper()
	p := NewCommandPacket()
	if err := p.SetStreamID(0xDEADBEEF); err != nil {
		t.Fatalf("SetStreamID returned error: %v", err)
	}
	cmd, err := p.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	cmd.SetMessageID(123)
	if err := cmd.SetControlleeID(0x00000001); err != nil {
		t.Fatalf("SetControlleeID returned error: %v", err)
	}
	if err := cmd.SetControllerID(0x00000456); err != nil {
		t.Fatalf("SetControllerID returned error: %v", err)
	}
	var cam CAM
	cam.SetActionMode(ActionExecute)
	cam.SetWarningsPermitted(true)
	cam.SetExecution(true)
	cmd.SetCAM(cam)

	ctl, err := cmd.Control()
	if err != nil {
		t.Fatalf("Control returned error: %v", err)
	}
	if err := ctl.SetBandwidthHz(40_000); err != nil {
		t.Fatalf("SetBandwidthHz returned error: %v", err)
	}
	if err := ctl.SetRFRefFreqHz(100_000_000); err != nil {
		t.Fatalf("SetRFRefFreqHz returned error: %v", err)
	}
	p.RefreshSize()
	return p
}

func TestControlPacketRoundTrip(t *testing.T) {
	p := buildControlPacket(t)
	buf, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	cmd, err := decoded.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	if cmd.MessageID() != 123 {
		t.Fatalf("message id = %d, want 123", cmd.MessageID())
	}
	if id, ok := cmd.ControlleeID(); !ok || id != 1 {
		t.Fatalf("controllee id = 0x%X (present=%v), want 1", id, ok)
	}
	if cmd.CAM().ActionMode() != ActionExecute {
		t.Fatalf("action mode = %s, want execute", cmd.CAM().ActionMode())
	}
	ctl, err := cmd.Control()
	if err != nil {
		t.Fatalf("Control returned error: %v", err)
	}
	if bw, ok := ctl.BandwidthHz(); !ok || bw != 40_000 {
		t.Fatalf("bandwidth = %v (present=%v), want 40000", bw, ok)
	}

	reencoded, err := decoded.Encode()
	if err != nil {
		t.Fatalf("re-Encode returned error: %v", err)
	}
	if !bytes.Equal(reencoded, buf) {
		t.Fatalf("round trip mismatch:\n  %x\n  %x", buf, reencoded)
	}
}

func TestCommandIDCoherence(t *testing.T) {
	p := NewCommandPacket()
	cmd, err := p.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	if err := cmd.SetControlleeID(7); err != nil {
		t.Fatalf("SetControlleeID returned error: %v", err)
	}
	if err := cmd.SetControlleeUUID(UUID{1}); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState setting uuid over id, got %v", err)
	}
	if cmd.CAM().ControlleeIDFormat() != IDFormat32 {
		t.Fatalf("controllee format = %v, want 32-bit", cmd.CAM().ControlleeIDFormat())
	}

	// SetCAM must not disturb the identity bits.
	var cam CAM
	cam.SetActionMode(ActionDryRun)
	cmd.SetCAM(cam)
	if !cmd.CAM().ControlleeEnabled() {
		t.Fatalf("SetCAM cleared the controllee enable bit")
	}

	cmd.ClearControlleeID()
	if cmd.CAM().ControlleeEnabled() {
		t.Fatalf("controllee enable bit still set after clear")
	}
	if err := cmd.SetControlleeUUID(UUID{0xAA, 0xBB}); err != nil {
		t.Fatalf("SetControlleeUUID returned error: %v", err)
	}
	if cmd.CAM().ControlleeIDFormat() != IDFormat128 {
		t.Fatalf("controllee format = %v, want 128-bit", cmd.CAM().ControlleeIDFormat())
	}
}

func TestCommandUUIDRoundTrip(t *testing.T) {
	p := NewCommandPacket()
	cmd, err := p.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	uuid := UUID{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	if err := cmd.SetControllerUUID(uuid); err != nil {
		t.Fatalf("SetControllerUUID returned error: %v", err)
	}
	buf, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	dcmd, err := decoded.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	got, ok := dcmd.ControllerUUID()
	if !ok || got != uuid {
		t.Fatalf("controller uuid = %v (present=%v)", got, ok)
	}
}

func TestGenerateXAck(t *testing.T) {
	p := buildControlPacket(t)
	buf, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	request, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	ackPkt, err := request.GenerateXAck()
	if err != nil {
		t.Fatalf("GenerateXAck returned error: %v", err)
	}
	ackBuf, err := ackPkt.Encode()
	if err != nil {
		t.Fatalf("ack Encode returned error: %v", err)
	}
	decoded, err := Decode(ackBuf)
	if err != nil {
		t.Fatalf("ack Decode returned error: %v", err)
	}
	if decoded.Header().Type != TypeCommand {
		t.Fatalf("ack type = %s, want command", decoded.Header().Type)
	}
	if !decoded.Header().AckPacket() {
		t.Fatalf("ack packet indicator not set")
	}
	cmd, err := decoded.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	if !cmd.CAM().Execution() || cmd.CAM().Validation() || cmd.CAM().State() {
		t.Fatalf("ack CAM = 0x%08X, want execution only", uint32(cmd.CAM()))
	}
	if cmd.MessageID() != 123 {
		t.Fatalf("ack message id = %d, want 123", cmd.MessageID())
	}
	if id, ok := cmd.ControlleeID(); !ok || id != 1 {
		t.Fatalf("ack controllee id = 0x%X (present=%v), want 1", id, ok)
	}
	if id, ok := cmd.ControllerID(); !ok || id != 0x456 {
		t.Fatalf("ack controller id = 0x%X (present=%v), want 0x456", id, ok)
	}
	ack, err := cmd.ExecAck()
	if err != nil {
		t.Fatalf("ExecAck returned error: %v", err)
	}
	reqCmd, _ := request.Command()
	reqCtl, _ := reqCmd.Control()
	if ack.Wif0() != reqCtl.Cif0() {
		t.Fatalf("echoed bitmap = 0x%08X, want 0x%08X", ack.Wif0(), reqCtl.Cif0())
	}
}

func TestGenerateVAckMirror(t *testing.T) {
	p := buildControlPacket(t)
	ackPkt, err := p.GenerateVAck()
	if err != nil {
		t.Fatalf("GenerateVAck returned error: %v", err)
	}
	reqCmd, _ := p.Command()
	ackCmd, err := ackPkt.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	if !ackCmd.CAM().Validation() {
		t.Fatalf("validation bit not set on V ack")
	}
	reqID, _ := reqCmd.ControlleeID()
	ackID, ok := ackCmd.ControlleeID()
	if !ok || ackID != reqID {
		t.Fatalf("controllee id = 0x%X, want 0x%X", ackID, reqID)
	}
	reqCtrl, _ := reqCmd.ControllerID()
	ackCtrl, ok := ackCmd.ControllerID()
	if !ok || ackCtrl != reqCtrl {
		t.Fatalf("controller id = 0x%X, want 0x%X", ackCtrl, reqCtrl)
	}
	if ackCmd.MessageID() != reqCmd.MessageID() {
		t.Fatalf("message id = %d, want %d", ackCmd.MessageID(), reqCmd.MessageID())
	}
	ack, err := ackCmd.ValidationAck()
	if err != nil {
		t.Fatalf("ValidationAck returned error: %v", err)
	}
	ctl, _ := reqCmd.Control()
	if ack.Wif0() != ctl.Cif0() {
		t.Fatalf("echoed bitmap = 0x%08X, want 0x%08X", ack.Wif0(), ctl.Cif0())
	}
	sid, _ := p.StreamID()
	ackSid, ok := ackPkt.StreamID()
	if !ok || ackSid != sid {
		t.Fatalf("ack stream id = 0x%X, want 0x%X", ackSid, sid)
	}
}

func TestGenerateSAck(t *testing.T) {
	p := buildControlPacket(t)
	ackPkt, err := p.GenerateSAck()
	if err != nil {
		t.Fatalf("GenerateSAck returned error: %v", err)
	}
	buf, err := ackPkt.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	cmd, err := decoded.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	qa, err := cmd.QueryAck()
	if err != nil {
		t.Fatalf("QueryAck returned error: %v", err)
	}
	if bw, ok := qa.BandwidthHz(); !ok || bw != 40_000 {
		t.Fatalf("query ack bandwidth = %v (present=%v), want 40000", bw, ok)
	}
	if freq, ok := qa.RFRefFreqHz(); !ok || freq != 100_000_000 {
		t.Fatalf("query ack rf ref freq = %v (present=%v), want 1e8", freq, ok)
	}
}

func TestAckWithStatusRoundTrip(t *testing.T) {
	p := NewValidationAckPacket()
	cmd, err := p.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	cmd.SetMessageID(99)
	ack, err := cmd.ValidationAck()
	if err != nil {
		t.Fatalf("ValidationAck returned error: %v", err)
	}
	ack.SetWarning(FieldBandwidth, AckParamOutOfRange)
	ack.SetError(FieldSampleRate, AckDeviceFailure|AckErroneousField)

	buf, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	dcmd, err := decoded.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	dack, err := dcmd.ValidationAck()
	if err != nil {
		t.Fatalf("ValidationAck returned error: %v", err)
	}
	if resp, ok := dack.Warning(FieldBandwidth); !ok || resp != AckParamOutOfRange {
		t.Fatalf("warning = 0x%08X (present=%v)", uint32(resp), ok)
	}
	if resp, ok := dack.Error(FieldSampleRate); !ok || resp != AckDeviceFailure|AckErroneousField {
		t.Fatalf("error = 0x%08X (present=%v)", uint32(resp), ok)
	}
	if _, ok := dack.Warning(FieldGain); ok {
		t.Fatalf("unexpected gain warning present")
	}
}

func TestExecAckConstructRoundTrip(t *testing.T) {
	p := NewExecAckPacket()
	if !p.Header().AckPacket() {
		t.Fatalf("exec ack header missing ack indicator")
	}
	buf, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	cmd, err := decoded.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	if _, err := cmd.ExecAck(); err != nil {
		t.Fatalf("ExecAck returned error: %v", err)
	}
	if _, err := cmd.ValidationAck(); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState from ValidationAck, got %v", err)
	}
}

func TestCancellationRoundTrip(t *testing.T) {
	p := NewCancellationPacket()
	cmd, err := p.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	cancel, err := cmd.Cancellation()
	if err != nil {
		t.Fatalf("Cancellation returned error: %v", err)
	}
	cancel.Cancel(FieldBandwidth)
	cancel.Cancel(FieldTrackID)

	buf, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	dcmd, err := decoded.Command()
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	dcancel, err := dcmd.Cancellation()
	if err != nil {
		t.Fatalf("Cancellation returned error: %v", err)
	}
	if !dcancel.Cancelled(FieldBandwidth) || !dcancel.Cancelled(FieldTrackID) {
		t.Fatalf("cancelled fields lost in round trip")
	}
	if dcancel.Cancelled(FieldGain) {
		t.Fatalf("gain unexpectedly cancelled")
	}
}

func TestAckCAMExclusivity(t *testing.T) {
	// An ack packet whose CAM selects both validation and execution must
	// be rejected.
	var cam CAM
	cam.SetValidation(true)
	cam.SetExecution(true)
	var w writer
	w.u32(Header{Type: TypeCommand, Indicators: indAcknowledge, PacketSize: 4}.word())
	w.u32(0) // stream id
	w.u32(uint32(cam))
	w.u32(0) // message id
	if _, err := Decode(w.buf); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}
