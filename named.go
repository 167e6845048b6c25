package vita49

import (
	"fmt"
	"strings"
)

// Named projects the packet onto a tree of spec field names. The
// projection is a pure function of the in-memory model and is not the
// wire form; NDJSON emitters and diagnostics consume it.
func (p *Packet) Named() map[string]any {
	h := map[string]any{
		"packet_type":  p.header.Type.String(),
		"packet_count": p.header.PacketCount,
		"packet_size":  p.header.PacketSize,
		"tsi":          p.header.TSI.String(),
		"tsf":          p.header.TSF.String(),
	}
	if p.header.Type.isDataClass() {
		h["trailer_included"] = p.header.TrailerPresent()
		h["spectral_data"] = p.header.SpectralData()
	}
	if p.header.Type.isCommandClass() {
		h["acknowledge"] = p.header.AckPacket()
		h["cancellation"] = p.header.CancellationPacket()
	}
	if p.header.Type.isContextClass() {
		h["tsm"] = p.header.TSM()
	}

	m := map[string]any{"header": h}
	if sid, ok := p.StreamID(); ok {
		m["stream_id"] = sid
	}
	if cid, ok := p.ClassID(); ok {
		m["class_id"] = map[string]any{
			"oui":               cid.OUI,
			"information_class": cid.InformationClass,
			"packet_class":      cid.PacketClass,
		}
	}
	if ts, ok := p.IntegerTimestamp(); ok {
		m["integer_timestamp"] = ts
	}
	if ts, ok := p.FractionalTimestamp(); ok {
		m["fractional_timestamp"] = ts
	}

	payload := map[string]any{}
	switch body := p.payload.(type) {
	case *SignalData:
		payload["signal_data"] = body.named()
	case *Context:
		payload["context"] = body.named()
	case *ExtensionContext:
		payload["extension_context"] = body.named()
	case *Command:
		payload["command"] = body.named()
	}
	m["payload"] = payload

	if p.trailer != nil {
		m["trailer"] = p.trailer.named()
	}
	return m
}

func (p *Packet) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "VRT %s packet, %d words", p.header.Type, p.header.PacketSize)
	if sid, ok := p.StreamID(); ok {
		fmt.Fprintf(&sb, ", stream 0x%08X", sid)
	}
	if cid, ok := p.ClassID(); ok {
		fmt.Fprintf(&sb, ", class %s", cid)
	}
	sb.WriteString("\n")
	switch body := p.payload.(type) {
	case *SignalData:
		fmt.Fprintf(&sb, "Signal payload: %d bytes\n", body.sizeWords()*4)
	case *Context:
		sb.WriteString(body.String())
	case *ExtensionContext:
		sb.WriteString(body.String())
	case *Command:
		sb.WriteString(body.String())
	}
	if p.trailer != nil {
		sb.WriteString(p.trailer.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
