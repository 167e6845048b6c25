// Package vita49 encodes and decodes ANSI/VITA-49.2-2017 (VRT) packets:
// signal data, context, extension context and command packets, including
// the CIF indicator cascade, the command CAM/identifier layout with its
// acknowledge sub-payloads, and the optional CIF7 attribute multiplier.
//
// A Packet is built either by Decode or by one of the constructors, and
// mutated through typed accessors that keep the indicator bits, header
// flags and packet size consistent with the fields actually present.
// Encode re-derives the header packet size, so encode(decode(b)) equals
// b for canonical inputs.
//
// All multi-byte values are big-endian and every field occupies a whole
// number of 32-bit words. Fractional quantities use the standard's
// Q-format fixed-point encodings; the per-field formats live in a single
// declarative table alongside each field's indicator bit and width.
package vita49
