package vita49

import "fmt"

// ClassID identifies the stream's information and packet classes
// (ANSI/VITA-49.2-2017 5.1.3). Two 32-bit words on the wire.
type ClassID struct {
	// PadBitCount is the number of padding bits trailing the data
	// payload, 0-31.
	PadBitCount uint8
	// OUI is the 24-bit organizationally unique identifier of the class
	// issuer.
	OUI              uint32
	InformationClass uint16
	PacketClass      uint16
}

func decodeClassID(r *reader) (ClassID, error) {
	hi, err := r.u32()
	if err != nil {
		return ClassID{}, err
	}
	lo, err := r.u32()
	if err != nil {
		return ClassID{}, err
	}
	return ClassID{
		PadBitCount:      uint8(hi >> 27),
		OUI:              hi & 0x00FFFFFF,
		InformationClass: uint16(lo >> 16),
		PacketClass:      uint16(lo),
	}, nil
}

func (c ClassID) encode(w *writer) {
	w.u32(uint32(c.PadBitCount&0x1F)<<27 | c.OUI&0x00FFFFFF)
	w.u32(uint32(c.InformationClass)<<16 | uint32(c.PacketClass))
}

func (c ClassID) String() string {
	return fmt.Sprintf("OUI %06X, information class 0x%04X, packet class 0x%04X",
		c.OUI, c.InformationClass, c.PacketClass)
}
