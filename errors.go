package vita49

import "errors"

var (
	// ErrTruncated is returned when a buffer runs out before a required
	// field completes.
	ErrTruncated = errors.New("buffer truncated")
	// ErrUnsupportedPacketType is returned when the header packet-type
	// nibble is not in the supported set.
	ErrUnsupportedPacketType = errors.New("unsupported packet type")
	// ErrUnsupportedField is returned when an indicator bit names a field
	// this codec does not implement. The packet is rejected rather than
	// mis-parsed, since field sizes past the unknown one cannot be known.
	ErrUnsupportedField = errors.New("unsupported field")
	// ErrMisalignedBuffer is returned when the parsed length does not
	// match the packet size declared in the header.
	ErrMisalignedBuffer = errors.New("misaligned buffer")
	// ErrRange is returned when a value does not fit the wire encoding of
	// its field.
	ErrRange = errors.New("value out of range")
	// ErrInvalidState is returned when an operation would violate a packet
	// invariant, such as reading a context body from a command packet.
	ErrInvalidState = errors.New("invalid packet state")
)
