package vita49

import (
	"fmt"
	"strings"
)

// Gain holds the two cascaded gain stages of the CIF0 gain field. Each
// stage is a signed Q9.7 dB value; stage 2 rides the high half-word.
type Gain struct {
	Stage1Db float64
	Stage2Db float64
}

func gainWord(g Gain) (uint32, error) {
	s1, err := encDB7(g.Stage1Db)
	if err != nil {
		return 0, err
	}
	s2, err := encDB7(g.Stage2Db)
	if err != nil {
		return 0, err
	}
	return uint32(s2)<<16 | uint32(s1), nil
}

func gainFromWord(w uint32) Gain {
	return Gain{
		Stage1Db: decDB7(uint16(w)),
		Stage2Db: decDB7(uint16(w >> 16)),
	}
}

func (g Gain) String() string {
	return fmt.Sprintf("stage1 %.4f dB, stage2 %.4f dB", g.Stage1Db, g.Stage2Db)
}

// DeviceID names the device emitting a context stream: manufacturer OUI
// plus a 16-bit device code. Two words on the wire.
type DeviceID struct {
	OUI        uint32
	DeviceCode uint16
}

func decodeDeviceID(r *reader) (DeviceID, error) {
	hi, err := r.u32()
	if err != nil {
		return DeviceID{}, err
	}
	lo, err := r.u32()
	if err != nil {
		return DeviceID{}, err
	}
	return DeviceID{OUI: hi & 0x00FFFFFF, DeviceCode: uint16(lo)}, nil
}

func (d DeviceID) encode(w *writer) {
	w.u32(d.OUI & 0x00FFFFFF)
	w.u32(uint32(d.DeviceCode))
}

func (d DeviceID) String() string {
	return fmt.Sprintf("OUI %06X, device 0x%04X", d.OUI, d.DeviceCode)
}

// Geolocation is the formatted GPS/INS record (11 words). Angle and
// speed subfields are stored as raw wire words so that the "field not
// specified" sentinel (0x7FFFFFFF) survives a round trip; the accessor
// methods apply the Q-format conversions.
type Geolocation struct {
	// TSI/TSF of the embedded timestamps plus the GPS manufacturer OUI.
	TSI                 TSI
	TSF                 TSF
	OUI                 uint32
	IntegerTimestamp    uint32
	FractionalTimestamp uint64
	LatitudeRaw         uint32
	LongitudeRaw        uint32
	AltitudeRaw         uint32
	SpeedOverGroundRaw  uint32
	HeadingAngleRaw     uint32
	TrackAngleRaw       uint32
	MagneticVariationRaw uint32
}

const geolocationWords = 11

func decodeGeolocation(r *reader) (Geolocation, error) {
	ws, err := r.words(geolocationWords)
	if err != nil {
		return Geolocation{}, err
	}
	return Geolocation{
		TSI:                 TSI(ws[0] >> 26 & 0x3),
		TSF:                 TSF(ws[0] >> 24 & 0x3),
		OUI:                 ws[0] & 0x00FFFFFF,
		IntegerTimestamp:    ws[1],
		FractionalTimestamp: uint64(ws[2])<<32 | uint64(ws[3]),
		LatitudeRaw:         ws[4],
		LongitudeRaw:        ws[5],
		AltitudeRaw:         ws[6],
		SpeedOverGroundRaw:  ws[7],
		HeadingAngleRaw:     ws[8],
		TrackAngleRaw:       ws[9],
		MagneticVariationRaw: ws[10],
	}, nil
}

func (g Geolocation) encode(w *writer) {
	w.u32(uint32(g.TSI&0x3)<<26 | uint32(g.TSF&0x3)<<24 | g.OUI&0x00FFFFFF)
	w.u32(g.IntegerTimestamp)
	w.u64(g.FractionalTimestamp)
	w.u32(g.LatitudeRaw)
	w.u32(g.LongitudeRaw)
	w.u32(g.AltitudeRaw)
	w.u32(g.SpeedOverGroundRaw)
	w.u32(g.HeadingAngleRaw)
	w.u32(g.TrackAngleRaw)
	w.u32(g.MagneticVariationRaw)
}

// Angles are signed Q10.22 degrees; altitude Q27.5 meters; speed Q16.16
// meters per second.

func (g Geolocation) LatitudeDeg() float64 {
	return fromFixedI(uint64(g.LatitudeRaw), 32, 22)
}

func (g *Geolocation) SetLatitudeDeg(v float64) error {
	raw, err := toFixed(v, 22, 32, true)
	if err != nil {
		return err
	}
	g.LatitudeRaw = uint32(raw)
	return nil
}

func (g Geolocation) LongitudeDeg() float64 {
	return fromFixedI(uint64(g.LongitudeRaw), 32, 22)
}

func (g *Geolocation) SetLongitudeDeg(v float64) error {
	raw, err := toFixed(v, 22, 32, true)
	if err != nil {
		return err
	}
	g.LongitudeRaw = uint32(raw)
	return nil
}

func (g Geolocation) AltitudeM() float64 {
	return fromFixedI(uint64(g.AltitudeRaw), 32, 5)
}

func (g *Geolocation) SetAltitudeM(v float64) error {
	raw, err := toFixed(v, 5, 32, true)
	if err != nil {
		return err
	}
	g.AltitudeRaw = uint32(raw)
	return nil
}

func (g Geolocation) SpeedOverGroundMps() float64 {
	return fromFixedI(uint64(g.SpeedOverGroundRaw), 32, 16)
}

func (g *Geolocation) SetSpeedOverGroundMps(v float64) error {
	raw, err := toFixed(v, 16, 32, true)
	if err != nil {
		return err
	}
	g.SpeedOverGroundRaw = uint32(raw)
	return nil
}

func (g Geolocation) HeadingAngleDeg() float64 {
	return fromFixedI(uint64(g.HeadingAngleRaw), 32, 22)
}

func (g Geolocation) TrackAngleDeg() float64 {
	return fromFixedI(uint64(g.TrackAngleRaw), 32, 22)
}

func (g Geolocation) MagneticVariationDeg() float64 {
	return fromFixedI(uint64(g.MagneticVariationRaw), 32, 22)
}

// Ephemeris is the ECEF or relative ephemeris record (13 words). As with
// Geolocation, subfields are raw wire words; position is Q27.5 meters,
// attitude Q10.22 degrees, velocity Q16.16 meters per second.
type Ephemeris struct {
	TSI                 TSI
	TSF                 TSF
	OUI                 uint32
	IntegerTimestamp    uint32
	FractionalTimestamp uint64
	PositionXRaw        uint32
	PositionYRaw        uint32
	PositionZRaw        uint32
	AttitudeAlphaRaw    uint32
	AttitudeBetaRaw     uint32
	AttitudePhiRaw      uint32
	VelocityXRaw        uint32
	VelocityYRaw        uint32
	VelocityZRaw        uint32
}

const ephemerisWords = 13

func decodeEphemeris(r *reader) (Ephemeris, error) {
	ws, err := r.words(ephemerisWords)
	if err != nil {
		return Ephemeris{}, err
	}
	return Ephemeris{
		TSI:                 TSI(ws[0] >> 26 & 0x3),
		TSF:                 TSF(ws[0] >> 24 & 0x3),
		OUI:                 ws[0] & 0x00FFFFFF,
		IntegerTimestamp:    ws[1],
		FractionalTimestamp: uint64(ws[2])<<32 | uint64(ws[3]),
		PositionXRaw:        ws[4],
		PositionYRaw:        ws[5],
		PositionZRaw:        ws[6],
		AttitudeAlphaRaw:    ws[7],
		AttitudeBetaRaw:     ws[8],
		AttitudePhiRaw:      ws[9],
		VelocityXRaw:        ws[10],
		VelocityYRaw:        ws[11],
		VelocityZRaw:        ws[12],
	}, nil
}

func (e Ephemeris) encode(w *writer) {
	w.u32(uint32(e.TSI&0x3)<<26 | uint32(e.TSF&0x3)<<24 | e.OUI&0x00FFFFFF)
	w.u32(e.IntegerTimestamp)
	w.u64(e.FractionalTimestamp)
	w.u32(e.PositionXRaw)
	w.u32(e.PositionYRaw)
	w.u32(e.PositionZRaw)
	w.u32(e.AttitudeAlphaRaw)
	w.u32(e.AttitudeBetaRaw)
	w.u32(e.AttitudePhiRaw)
	w.u32(e.VelocityXRaw)
	w.u32(e.VelocityYRaw)
	w.u32(e.VelocityZRaw)
}

func (e Ephemeris) PositionM() (x, y, z float64) {
	return fromFixedI(uint64(e.PositionXRaw), 32, 5),
		fromFixedI(uint64(e.PositionYRaw), 32, 5),
		fromFixedI(uint64(e.PositionZRaw), 32, 5)
}

func (e *Ephemeris) SetPositionM(x, y, z float64) error {
	xs, err := toFixed(x, 5, 32, true)
	if err != nil {
		return err
	}
	ys, err := toFixed(y, 5, 32, true)
	if err != nil {
		return err
	}
	zs, err := toFixed(z, 5, 32, true)
	if err != nil {
		return err
	}
	e.PositionXRaw, e.PositionYRaw, e.PositionZRaw = uint32(xs), uint32(ys), uint32(zs)
	return nil
}

func (e Ephemeris) VelocityMps() (x, y, z float64) {
	return fromFixedI(uint64(e.VelocityXRaw), 32, 16),
		fromFixedI(uint64(e.VelocityYRaw), 32, 16),
		fromFixedI(uint64(e.VelocityZRaw), 32, 16)
}

// GPSASCII is the free-form GPS sentence record: manufacturer OUI plus a
// word-count-prefixed ASCII blob, zero-padded to a word boundary.
type GPSASCII struct {
	OUI  uint32
	Text string
}

func decodeGPSASCII(r *reader) (GPSASCII, error) {
	oui, err := r.u32()
	if err != nil {
		return GPSASCII{}, err
	}
	n, err := r.u32()
	if err != nil {
		return GPSASCII{}, err
	}
	raw, err := r.bytes(int(n) * 4)
	if err != nil {
		return GPSASCII{}, err
	}
	return GPSASCII{
		OUI:  oui & 0x00FFFFFF,
		Text: strings.TrimRight(string(raw), "\x00"),
	}, nil
}

func (g GPSASCII) encode(w *writer) {
	n := (len(g.Text) + 3) / 4
	w.u32(g.OUI & 0x00FFFFFF)
	w.u32(uint32(n))
	w.bytes([]byte(g.Text))
	for pad := n*4 - len(g.Text); pad > 0; pad-- {
		w.bytes([]byte{0})
	}
}

func (g GPSASCII) sizeWords() int {
	return 2 + (len(g.Text)+3)/4
}

// AssociationLists names the streams associated with a context stream
// (source, system, vector-component, and asynchronous-channel lists,
// the last optionally tagged). Two count words followed by the lists.
type AssociationLists struct {
	Sources []uint32
	Systems []uint32
	Vectors []uint32
	Async   []uint32
	// AsyncTags, when non-nil, must be the same length as Async.
	AsyncTags []uint32
}

func decodeAssociationLists(r *reader) (AssociationLists, error) {
	w0, err := r.u32()
	if err != nil {
		return AssociationLists{}, err
	}
	w1, err := r.u32()
	if err != nil {
		return AssociationLists{}, err
	}
	var al AssociationLists
	sourceCount := int(w0 >> 16 & 0x1FF)
	systemCount := int(w0 & 0x1FF)
	vectorCount := int(w1 >> 16)
	asyncCount := int(w1 & 0x7FFF)
	tagged := w1&(1<<15) != 0
	if al.Sources, err = r.words(sourceCount); err != nil {
		return al, err
	}
	if al.Systems, err = r.words(systemCount); err != nil {
		return al, err
	}
	if al.Vectors, err = r.words(vectorCount); err != nil {
		return al, err
	}
	if al.Async, err = r.words(asyncCount); err != nil {
		return al, err
	}
	if tagged {
		if al.AsyncTags, err = r.words(asyncCount); err != nil {
			return al, err
		}
	}
	return al, nil
}

func (a AssociationLists) encode(w *writer) {
	w.u32(uint32(len(a.Sources)&0x1FF)<<16 | uint32(len(a.Systems)&0x1FF))
	w1 := uint32(len(a.Vectors)&0xFFFF)<<16 | uint32(len(a.Async)&0x7FFF)
	if a.AsyncTags != nil {
		w1 |= 1 << 15
	}
	w.u32(w1)
	w.words(a.Sources)
	w.words(a.Systems)
	w.words(a.Vectors)
	w.words(a.Async)
	w.words(a.AsyncTags)
}

func (a AssociationLists) sizeWords() int {
	return 2 + len(a.Sources) + len(a.Systems) + len(a.Vectors) + len(a.Async) + len(a.AsyncTags)
}

// Spectrum is the CIF1 spectrum description record (13 words).
type Spectrum struct {
	SpectrumType       uint32
	WindowType         uint32
	NumTransformPoints uint32
	NumWindowPoints    uint32
	resolutionRaw      uint64
	spanRaw            uint64
	NumAverages        uint32
	WeightingFactor    int32
	F1Index            int32
	F2Index            int32
	WindowTimeDelta    uint32
}

const spectrumWords = 13

func decodeSpectrum(r *reader) (Spectrum, error) {
	ws, err := r.words(spectrumWords)
	if err != nil {
		return Spectrum{}, err
	}
	return Spectrum{
		SpectrumType:       ws[0],
		WindowType:         ws[1],
		NumTransformPoints: ws[2],
		NumWindowPoints:    ws[3],
		resolutionRaw:      uint64(ws[4])<<32 | uint64(ws[5]),
		spanRaw:            uint64(ws[6])<<32 | uint64(ws[7]),
		NumAverages:        ws[8],
		WeightingFactor:    int32(ws[9]),
		F1Index:            int32(ws[10]),
		F2Index:            int32(ws[11]),
		WindowTimeDelta:    ws[12],
	}, nil
}

func (s Spectrum) encode(w *writer) {
	w.u32(s.SpectrumType)
	w.u32(s.WindowType)
	w.u32(s.NumTransformPoints)
	w.u32(s.NumWindowPoints)
	w.u64(s.resolutionRaw)
	w.u64(s.spanRaw)
	w.u32(s.NumAverages)
	w.u32(uint32(s.WeightingFactor))
	w.u32(uint32(s.F1Index))
	w.u32(uint32(s.F2Index))
	w.u32(s.WindowTimeDelta)
}

func (s Spectrum) ResolutionHz() float64 {
	return decHzU(s.resolutionRaw)
}

func (s *Spectrum) SetResolutionHz(hz float64) error {
	raw, err := encHz(hz, false)
	if err != nil {
		return err
	}
	s.resolutionRaw = raw
	return nil
}

func (s Spectrum) SpanHz() float64 {
	return decHzU(s.spanRaw)
}

func (s *Spectrum) SetSpanHz(hz float64) error {
	raw, err := encHz(hz, false)
	if err != nil {
		return err
	}
	s.spanRaw = raw
	return nil
}

// UUID is a 128-bit identifier as used by the CIF2 controllee and
// controller UUID fields. Four words, big-endian.
type UUID [16]byte

func decodeUUID(r *reader) (UUID, error) {
	var u UUID
	b, err := r.bytes(16)
	if err != nil {
		return u, err
	}
	copy(u[:], b)
	return u, nil
}

func (u UUID) encode(w *writer) {
	w.bytes(u[:])
}

func (u UUID) String() string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}
