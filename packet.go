package vita49

import "fmt"

// Payload is the packet-type-specific body of a packet.
type Payload interface {
	sizeWords() int
	encode(w *writer) error
	named() map[string]any
}

// Packet is the top-level VRT entity: the header prefix, a typed body
// and the optional trailer. Build one with a constructor or Decode, then
// mutate it through the accessors; Encode reconciles the header flags
// and packet size before serializing.
type Packet struct {
	header        Header
	streamID      *uint32
	classID       *ClassID
	intTimestamp  *uint32
	fracTimestamp *uint64
	payload       Payload
	trailer       *Trailer
}

func newPacket(t PacketType, payload Payload) *Packet {
	p := &Packet{header: Header{Type: t}, payload: payload}
	if t.HasStreamID() {
		p.streamID = new(uint32)
	}
	p.RefreshSize()
	return p
}

// NewSignalDataPacket creates an empty signal data packet with a stream
// identifier.
func NewSignalDataPacket() *Packet {
	return newPacket(TypeSignalDataStreamID, &SignalData{})
}

// NewSignalDataPacketNoStreamID creates the legacy signal data variant
// without a stream identifier.
func NewSignalDataPacketNoStreamID() *Packet {
	return newPacket(TypeSignalData, &SignalData{})
}

func NewContextPacket() *Packet {
	return newPacket(TypeContext, &Context{})
}

func NewExtensionContextPacket() *Packet {
	return newPacket(TypeExtensionContext, &ExtensionContext{})
}

// NewCommandPacket creates a control packet.
func NewCommandPacket() *Packet {
	return newPacket(TypeCommand, &Command{payload: &Control{}})
}

func NewCancellationPacket() *Packet {
	p := newPacket(TypeCommand, &Command{payload: &Cancellation{}})
	p.header.setIndicator(indCancellation, true)
	return p
}

func NewValidationAckPacket() *Packet {
	cmd := &Command{payload: &Ack{execution: false}}
	cmd.cam.SetValidation(true)
	p := newPacket(TypeCommand, cmd)
	p.header.setIndicator(indAcknowledge, true)
	p.RefreshSize()
	return p
}

func NewExecAckPacket() *Packet {
	cmd := &Command{payload: &Ack{execution: true}}
	cmd.cam.SetExecution(true)
	p := newPacket(TypeCommand, cmd)
	p.header.setIndicator(indAcknowledge, true)
	p.RefreshSize()
	return p
}

func NewQueryAckPacket() *Packet {
	cmd := &Command{payload: &QueryAck{}}
	cmd.cam.SetState(true)
	p := newPacket(TypeCommand, cmd)
	p.header.setIndicator(indAcknowledge, true)
	p.RefreshSize()
	return p
}

// Decode parses exactly one packet from buf. Decoding is all-or-nothing:
// on any error no packet is returned. The buffer length must equal the
// header's declared packet size.
func Decode(buf []byte) (*Packet, error) {
	r := &reader{buf: buf}
	word, err := r.u32()
	if err != nil {
		return nil, err
	}
	hdr, err := parseHeader(word)
	if err != nil {
		return nil, err
	}
	declared := int(hdr.PacketSize) * 4
	if len(buf) < declared {
		return nil, fmt.Errorf("%w: have %d bytes, header declares %d", ErrTruncated, len(buf), declared)
	}
	if len(buf) > declared {
		return nil, fmt.Errorf("%w: have %d bytes, header declares %d", ErrMisalignedBuffer, len(buf), declared)
	}

	p := &Packet{header: hdr}
	if hdr.Type.HasStreamID() {
		v, err := r.u32()
		if err != nil {
			return nil, err
		}
		p.streamID = &v
	}
	if hdr.ClassIDPresent {
		cid, err := decodeClassID(r)
		if err != nil {
			return nil, err
		}
		p.classID = &cid
	}
	if hdr.TSI != TSINone {
		v, err := r.u32()
		if err != nil {
			return nil, err
		}
		p.intTimestamp = &v
	}
	if hdr.TSF != TSFNone {
		v, err := r.u64()
		if err != nil {
			return nil, err
		}
		p.fracTimestamp = &v
	}

	switch {
	case hdr.Type.isDataClass():
		payloadWords := (declared - r.off) / 4
		if hdr.TrailerPresent() {
			payloadWords--
		}
		if payloadWords < 0 {
			return nil, fmt.Errorf("%w: prefix exceeds declared packet size", ErrMisalignedBuffer)
		}
		sd, err := decodeSignalData(r, payloadWords)
		if err != nil {
			return nil, err
		}
		p.payload = sd
	case hdr.Type == TypeContext:
		ctx := &Context{}
		if err := ctx.decode(r); err != nil {
			return nil, err
		}
		p.payload = ctx
	case hdr.Type == TypeExtensionContext:
		ctx := &ExtensionContext{}
		if err := ctx.decode(r); err != nil {
			return nil, err
		}
		p.payload = ctx
	default:
		cmd, err := decodeCommand(hdr, r)
		if err != nil {
			return nil, err
		}
		p.payload = cmd
	}

	if hdr.TrailerPresent() {
		w, err := r.u32()
		if err != nil {
			return nil, err
		}
		t := TrailerFromWord(w)
		p.trailer = &t
	}

	if r.off != declared {
		return nil, fmt.Errorf("%w: parsed %d bytes, header declares %d", ErrMisalignedBuffer, r.off, declared)
	}
	return p, nil
}

// Header returns a copy of the packet header.
func (p *Packet) Header() Header {
	return p.header
}

// SetPacketCount sets the modulo-16 packet counter.
func (p *Packet) SetPacketCount(n uint8) {
	p.header.PacketCount = n & 0xF
}

func (p *Packet) StreamID() (uint32, bool) {
	return getU32(p.streamID)
}

func (p *Packet) SetStreamID(id uint32) error {
	if !p.header.Type.HasStreamID() {
		return fmt.Errorf("%w: packet type %s carries no stream id", ErrInvalidState, p.header.Type)
	}
	p.streamID = &id
	return nil
}

func (p *Packet) ClassID() (ClassID, bool) {
	if p.classID == nil {
		return ClassID{}, false
	}
	return *p.classID, true
}

func (p *Packet) SetClassID(c ClassID) {
	p.classID = &c
	p.header.ClassIDPresent = true
}

func (p *Packet) ClearClassID() {
	p.classID = nil
	p.header.ClassIDPresent = false
}

func (p *Packet) TSI() TSI {
	return p.header.TSI
}

func (p *Packet) IntegerTimestamp() (uint32, bool) {
	return getU32(p.intTimestamp)
}

// SetIntegerTimestamp installs the integer timestamp; the header TSI
// bits change only through here.
func (p *Packet) SetIntegerTimestamp(mode TSI, seconds uint32) error {
	if mode == TSINone {
		return fmt.Errorf("%w: integer timestamp requires a TSI mode", ErrInvalidState)
	}
	p.header.TSI = mode
	p.intTimestamp = &seconds
	return nil
}

func (p *Packet) ClearIntegerTimestamp() {
	p.header.TSI = TSINone
	p.intTimestamp = nil
}

func (p *Packet) TSF() TSF {
	return p.header.TSF
}

func (p *Packet) FractionalTimestamp() (uint64, bool) {
	return getU64(p.fracTimestamp)
}

func (p *Packet) SetFractionalTimestamp(mode TSF, value uint64) error {
	if mode == TSFNone {
		return fmt.Errorf("%w: fractional timestamp requires a TSF mode", ErrInvalidState)
	}
	p.header.TSF = mode
	p.fracTimestamp = &value
	return nil
}

func (p *Packet) ClearFractionalTimestamp() {
	p.header.TSF = TSFNone
	p.fracTimestamp = nil
}

// Context returns the body of a context packet.
func (p *Packet) Context() (*Context, error) {
	if ctx, ok := p.payload.(*Context); ok {
		return ctx, nil
	}
	return nil, fmt.Errorf("%w: %s packet has no context body", ErrInvalidState, p.header.Type)
}

// ExtensionContext returns the body of an extension context packet.
func (p *Packet) ExtensionContext() (*ExtensionContext, error) {
	if ctx, ok := p.payload.(*ExtensionContext); ok {
		return ctx, nil
	}
	return nil, fmt.Errorf("%w: %s packet has no extension context body", ErrInvalidState, p.header.Type)
}

// Command returns the body of a command packet.
func (p *Packet) Command() (*Command, error) {
	if cmd, ok := p.payload.(*Command); ok {
		return cmd, nil
	}
	return nil, fmt.Errorf("%w: %s packet has no command body", ErrInvalidState, p.header.Type)
}

// SignalData returns the body of a signal data packet.
func (p *Packet) SignalData() (*SignalData, error) {
	if sd, ok := p.payload.(*SignalData); ok {
		return sd, nil
	}
	return nil, fmt.Errorf("%w: %s packet has no signal payload", ErrInvalidState, p.header.Type)
}

func (p *Packet) SignalPayload() ([]byte, error) {
	sd, err := p.SignalData()
	if err != nil {
		return nil, err
	}
	return sd.Payload(), nil
}

func (p *Packet) SetSignalPayload(b []byte) error {
	sd, err := p.SignalData()
	if err != nil {
		return err
	}
	return sd.SetPayload(b)
}

// Trailer returns the mutable trailer, or nil when absent.
func (p *Packet) Trailer() *Trailer {
	return p.trailer
}

func (p *Packet) SetTrailer(t Trailer) error {
	if !p.header.Type.isDataClass() {
		return fmt.Errorf("%w: only signal data packets carry a trailer", ErrInvalidState)
	}
	p.trailer = &t
	p.header.setIndicator(indTrailer, true)
	return nil
}

func (p *Packet) ClearTrailer() {
	p.trailer = nil
	if p.header.Type.isDataClass() {
		p.header.setIndicator(indTrailer, false)
	}
}

// SetSpectralData flags a data packet as carrying spectral rather than
// time-domain samples.
func (p *Packet) SetSpectralData(on bool) error {
	if !p.header.Type.isDataClass() {
		return fmt.Errorf("%w: spectral indicator is data-class only", ErrInvalidState)
	}
	p.header.setIndicator(indSpectral, on)
	return nil
}

// SetTSM sets the coarse-timestamp mode of a context packet.
func (p *Packet) SetTSM(coarse bool) error {
	if !p.header.Type.isContextClass() {
		return fmt.Errorf("%w: TSM is context-class only", ErrInvalidState)
	}
	p.header.setIndicator(indTSM, coarse)
	return nil
}

func (p *Packet) sizeWords() int {
	n := 1
	if p.header.Type.HasStreamID() {
		n++
	}
	if p.classID != nil {
		n += 2
	}
	if p.intTimestamp != nil {
		n++
	}
	if p.fracTimestamp != nil {
		n += 2
	}
	n += p.payload.sizeWords()
	if p.trailer != nil && p.header.Type.isDataClass() {
		n++
	}
	return n
}

// RefreshSize reconciles the header with the optionals actually present:
// class-id flag, trailer flag, timestamp modes and the packet size. It
// is idempotent and Encode runs it implicitly.
func (p *Packet) RefreshSize() {
	p.header.ClassIDPresent = p.classID != nil
	if p.intTimestamp == nil {
		p.header.TSI = TSINone
	}
	if p.fracTimestamp == nil {
		p.header.TSF = TSFNone
	}
	if p.header.Type.isDataClass() {
		p.header.setIndicator(indTrailer, p.trailer != nil)
	}
	p.header.PacketSize = uint16(p.sizeWords())
}

// Encode serializes the packet. The returned buffer length always equals
// the header packet size times four.
func (p *Packet) Encode() ([]byte, error) {
	if n := p.sizeWords(); n > 0xFFFF {
		return nil, fmt.Errorf("%w: packet size %d words exceeds the 16-bit size field", ErrRange, n)
	}
	p.RefreshSize()
	w := &writer{buf: make([]byte, 0, int(p.header.PacketSize)*4)}
	w.u32(p.header.word())
	if p.header.Type.HasStreamID() {
		var sid uint32
		if p.streamID != nil {
			sid = *p.streamID
		}
		w.u32(sid)
	}
	if p.classID != nil {
		p.classID.encode(w)
	}
	if p.intTimestamp != nil {
		w.u32(*p.intTimestamp)
	}
	if p.fracTimestamp != nil {
		w.u64(*p.fracTimestamp)
	}
	if err := p.payload.encode(w); err != nil {
		return nil, err
	}
	if p.trailer != nil && p.header.Type.isDataClass() {
		w.u32(p.trailer.word)
	}
	if len(w.buf) != int(p.header.PacketSize)*4 {
		return nil, fmt.Errorf("%w: encoded %d bytes, header declares %d",
			ErrMisalignedBuffer, len(w.buf), int(p.header.PacketSize)*4)
	}
	return w.buf, nil
}

// GenerateVAck builds the validation acknowledge for a control packet.
// The message id is copied, the controllee and controller identifiers
// are mirrored, and the control's CIF bitmap is echoed with all-clear
// status words.
func (p *Packet) GenerateVAck() (*Packet, error) {
	return p.generateAck(NewValidationAckPacket())
}

// GenerateXAck builds the execution acknowledge for a control packet.
func (p *Packet) GenerateXAck() (*Packet, error) {
	return p.generateAck(NewExecAckPacket())
}

// GenerateSAck builds the query-state acknowledge for a control packet,
// echoing the control's field values.
func (p *Packet) GenerateSAck() (*Packet, error) {
	out := NewQueryAckPacket()
	cmd, ctrl, err := p.controlParts()
	if err != nil {
		return nil, err
	}
	if err := p.mirrorInto(out, cmd); err != nil {
		return nil, err
	}
	ocmd, _ := out.Command()
	qa, _ := ocmd.QueryAck()
	cloned, err := ctrl.f.clone()
	if err != nil {
		return nil, err
	}
	qa.f = cloned
	out.RefreshSize()
	return out, nil
}

func (p *Packet) generateAck(out *Packet) (*Packet, error) {
	cmd, ctrl, err := p.controlParts()
	if err != nil {
		return nil, err
	}
	if err := p.mirrorInto(out, cmd); err != nil {
		return nil, err
	}
	ocmd, _ := out.Command()
	ack := ocmd.payload.(*Ack)
	for _, f := range Fields() {
		if ctrl.FieldPresent(f) {
			ack.SetWarning(f, 0)
		}
	}
	out.RefreshSize()
	return out, nil
}

func (p *Packet) controlParts() (*Command, *Control, error) {
	cmd, err := p.Command()
	if err != nil {
		return nil, nil, err
	}
	ctrl, err := cmd.Control()
	if err != nil {
		return nil, nil, err
	}
	return cmd, ctrl, nil
}

// mirrorInto copies the request's prefix and identifiers onto a freshly
// constructed acknowledge packet.
func (p *Packet) mirrorInto(out *Packet, cmd *Command) error {
	out.header.Type = p.header.Type
	if sid, ok := p.StreamID(); ok {
		if err := out.SetStreamID(sid); err != nil {
			return err
		}
	}
	if cid, ok := p.ClassID(); ok {
		out.SetClassID(cid)
	}
	if ts, ok := p.IntegerTimestamp(); ok {
		if err := out.SetIntegerTimestamp(p.TSI(), ts); err != nil {
			return err
		}
	}
	if ts, ok := p.FractionalTimestamp(); ok {
		if err := out.SetFractionalTimestamp(p.TSF(), ts); err != nil {
			return err
		}
	}
	ocmd, err := out.Command()
	if err != nil {
		return err
	}
	ocmd.SetMessageID(cmd.MessageID())
	if id, ok := cmd.ControlleeID(); ok {
		if err := ocmd.SetControlleeID(id); err != nil {
			return err
		}
	}
	if u, ok := cmd.ControlleeUUID(); ok {
		if err := ocmd.SetControlleeUUID(u); err != nil {
			return err
		}
	}
	if id, ok := cmd.ControllerID(); ok {
		if err := ocmd.SetControllerID(id); err != nil {
			return err
		}
	}
	if u, ok := cmd.ControllerUUID(); ok {
		if err := ocmd.SetControllerUUID(u); err != nil {
			return err
		}
	}
	return nil
}
