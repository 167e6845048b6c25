package vita49

import "strings"

// Context is the body of a context packet: the CIF indicator cascade and
// one nullable value slot per supported field. Setters keep the
// indicator bits in lockstep with the slots; the cascade enable bits are
// re-derived whenever a dependent word changes.
type Context struct {
	f cifFields
}

func (c *Context) decode(r *reader) error {
	return c.f.decode(r)
}

func (c *Context) encode(w *writer) error {
	return c.f.encode(w)
}

func (c *Context) sizeWords() int {
	return c.f.sizeWords()
}

func (c *Context) named() map[string]any {
	return c.f.named()
}

func (c *Context) String() string {
	var sb strings.Builder
	sb.WriteString("Context:\n")
	c.f.render(&sb)
	return sb.String()
}

// Indicator word views. Enable bits are synced before reading.

func (c *Context) Cif0() uint32 {
	c.f.syncEnables()
	return uint32(c.f.cif0)
}

func (c *Context) Cif1() uint32 { return uint32(c.f.cif1) }
func (c *Context) Cif2() uint32 { return uint32(c.f.cif2) }
func (c *Context) Cif3() uint32 { return uint32(c.f.cif3) }
func (c *Context) Cif7() uint32 { return uint32(c.f.cif7) }

// SetCif7 installs the attribute bitmap. Any previously stored attribute
// replicas are dropped since their widths depend on the bitmap.
func (c *Context) SetCif7(word uint32) {
	c.f.cif7 = CIF(word)
	c.f.attrs = nil
	c.f.syncEnables()
}

// Attributes returns the raw CIF7 replica words stored for a field.
func (c *Context) Attributes(f Field) []uint32 {
	return c.f.attributes(f)
}

// SetAttributes installs raw CIF7 replica words for a present field.
func (c *Context) SetAttributes(f Field, words []uint32) error {
	return c.f.setAttributes(f, words)
}

// ContextChanged reports the CIF0 change indicator.
func (c *Context) ContextChanged() bool {
	return c.f.cif0.bit(cif0ChangeIndicator)
}

func (c *Context) SetContextChanged(on bool) {
	c.f.cif0.setBit(cif0ChangeIndicator, on)
}

// FieldPresent reports whether the indicator bit for f is set.
func (c *Context) FieldPresent(f Field) bool {
	return c.f.fieldPresent(f)
}

// ClearField removes a field and its indicator bit.
func (c *Context) ClearField(f Field) {
	c.f.clearField(f)
}

func getU32(p *uint32) (uint32, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

func getU64(p *uint64) (uint64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// CIF0 field accessors.

func (c *Context) ReferencePointID() (uint32, bool) { return getU32(c.f.referencePointID) }

func (c *Context) SetReferencePointID(v uint32) {
	c.f.referencePointID = &v
	c.f.markPresent(FieldReferencePointID)
}

func (c *Context) ClearReferencePointID() { c.f.clearField(FieldReferencePointID) }

func (c *Context) BandwidthHz() (float64, bool) {
	if c.f.bandwidth == nil {
		return 0, false
	}
	return decHzU(*c.f.bandwidth), true
}

func (c *Context) SetBandwidthHz(hz float64) error {
	raw, err := encHz(hz, false)
	if err != nil {
		return err
	}
	c.f.bandwidth = &raw
	c.f.markPresent(FieldBandwidth)
	return nil
}

func (c *Context) ClearBandwidthHz() { c.f.clearField(FieldBandwidth) }

func (c *Context) IFRefFreqHz() (float64, bool) {
	if c.f.ifRefFreq == nil {
		return 0, false
	}
	return decHzI(*c.f.ifRefFreq), true
}

func (c *Context) SetIFRefFreqHz(hz float64) error {
	raw, err := encHz(hz, true)
	if err != nil {
		return err
	}
	c.f.ifRefFreq = &raw
	c.f.markPresent(FieldIFRefFreq)
	return nil
}

func (c *Context) ClearIFRefFreqHz() { c.f.clearField(FieldIFRefFreq) }

func (c *Context) RFRefFreqHz() (float64, bool) {
	if c.f.rfRefFreq == nil {
		return 0, false
	}
	return decHzU(*c.f.rfRefFreq), true
}

func (c *Context) SetRFRefFreqHz(hz float64) error {
	raw, err := encHz(hz, false)
	if err != nil {
		return err
	}
	c.f.rfRefFreq = &raw
	c.f.markPresent(FieldRFRefFreq)
	return nil
}

func (c *Context) ClearRFRefFreqHz() { c.f.clearField(FieldRFRefFreq) }

func (c *Context) RFRefFreqOffsetHz() (float64, bool) {
	if c.f.rfRefFreqOffset == nil {
		return 0, false
	}
	return decHzI(*c.f.rfRefFreqOffset), true
}

func (c *Context) SetRFRefFreqOffsetHz(hz float64) error {
	raw, err := encHz(hz, true)
	if err != nil {
		return err
	}
	c.f.rfRefFreqOffset = &raw
	c.f.markPresent(FieldRFRefFreqOffset)
	return nil
}

func (c *Context) ClearRFRefFreqOffsetHz() { c.f.clearField(FieldRFRefFreqOffset) }

func (c *Context) IFBandOffsetHz() (float64, bool) {
	if c.f.ifBandOffset == nil {
		return 0, false
	}
	return decHzI(*c.f.ifBandOffset), true
}

func (c *Context) SetIFBandOffsetHz(hz float64) error {
	raw, err := encHz(hz, true)
	if err != nil {
		return err
	}
	c.f.ifBandOffset = &raw
	c.f.markPresent(FieldIFBandOffset)
	return nil
}

func (c *Context) ClearIFBandOffsetHz() { c.f.clearField(FieldIFBandOffset) }

func (c *Context) ReferenceLevelDbm() (float64, bool) {
	if c.f.referenceLevel == nil {
		return 0, false
	}
	return decDB7(uint16(*c.f.referenceLevel)), true
}

func (c *Context) SetReferenceLevelDbm(dbm float64) error {
	raw, err := encDB7(dbm)
	if err != nil {
		return err
	}
	word := uint32(raw)
	c.f.referenceLevel = &word
	c.f.markPresent(FieldReferenceLevel)
	return nil
}

func (c *Context) ClearReferenceLevelDbm() { c.f.clearField(FieldReferenceLevel) }

func (c *Context) Gain() (Gain, bool) {
	if c.f.gain == nil {
		return Gain{}, false
	}
	return gainFromWord(*c.f.gain), true
}

func (c *Context) SetGain(g Gain) error {
	word, err := gainWord(g)
	if err != nil {
		return err
	}
	c.f.gain = &word
	c.f.markPresent(FieldGain)
	return nil
}

func (c *Context) ClearGain() { c.f.clearField(FieldGain) }

func (c *Context) OverRangeCount() (uint32, bool) { return getU32(c.f.overRangeCount) }

func (c *Context) SetOverRangeCount(v uint32) {
	c.f.overRangeCount = &v
	c.f.markPresent(FieldOverRangeCount)
}

func (c *Context) ClearOverRangeCount() { c.f.clearField(FieldOverRangeCount) }

func (c *Context) SampleRateSps() (float64, bool) {
	if c.f.sampleRate == nil {
		return 0, false
	}
	return decHzU(*c.f.sampleRate), true
}

func (c *Context) SetSampleRateSps(sps float64) error {
	raw, err := encHz(sps, false)
	if err != nil {
		return err
	}
	c.f.sampleRate = &raw
	c.f.markPresent(FieldSampleRate)
	return nil
}

func (c *Context) ClearSampleRateSps() { c.f.clearField(FieldSampleRate) }

// TimestampAdjustment is the fractional-time adjustment in femtoseconds.
func (c *Context) TimestampAdjustment() (uint64, bool) { return getU64(c.f.timestampAdjustment) }

func (c *Context) SetTimestampAdjustment(v uint64) {
	c.f.timestampAdjustment = &v
	c.f.markPresent(FieldTimestampAdjustment)
}

func (c *Context) ClearTimestampAdjustment() { c.f.clearField(FieldTimestampAdjustment) }

func (c *Context) TimestampCalTime() (uint32, bool) { return getU32(c.f.timestampCalTime) }

func (c *Context) SetTimestampCalTime(v uint32) {
	c.f.timestampCalTime = &v
	c.f.markPresent(FieldTimestampCalTime)
}

func (c *Context) ClearTimestampCalTime() { c.f.clearField(FieldTimestampCalTime) }

func (c *Context) TemperatureC() (float64, bool) {
	if c.f.temperature == nil {
		return 0, false
	}
	return decTemp6(uint16(*c.f.temperature)), true
}

func (c *Context) SetTemperatureC(v float64) error {
	raw, err := encTemp6(v)
	if err != nil {
		return err
	}
	word := uint32(raw)
	c.f.temperature = &word
	c.f.markPresent(FieldTemperature)
	return nil
}

func (c *Context) ClearTemperatureC() { c.f.clearField(FieldTemperature) }

func (c *Context) DeviceID() (DeviceID, bool) {
	if c.f.deviceID == nil {
		return DeviceID{}, false
	}
	return *c.f.deviceID, true
}

func (c *Context) SetDeviceID(d DeviceID) {
	c.f.deviceID = &d
	c.f.markPresent(FieldDeviceID)
}

func (c *Context) ClearDeviceID() { c.f.clearField(FieldDeviceID) }

func (c *Context) StateIndicators() (uint32, bool) { return getU32(c.f.stateIndicators) }

func (c *Context) SetStateIndicators(v uint32) {
	c.f.stateIndicators = &v
	c.f.markPresent(FieldStateIndicators)
}

func (c *Context) ClearStateIndicators() { c.f.clearField(FieldStateIndicators) }

func (c *Context) PayloadFormat() (uint64, bool) { return getU64(c.f.payloadFormat) }

func (c *Context) SetPayloadFormat(v uint64) {
	c.f.payloadFormat = &v
	c.f.markPresent(FieldPayloadFormat)
}

func (c *Context) ClearPayloadFormat() { c.f.clearField(FieldPayloadFormat) }

func (c *Context) FormattedGPS() (Geolocation, bool) {
	if c.f.formattedGPS == nil {
		return Geolocation{}, false
	}
	return *c.f.formattedGPS, true
}

func (c *Context) SetFormattedGPS(g Geolocation) {
	c.f.formattedGPS = &g
	c.f.markPresent(FieldFormattedGPS)
}

func (c *Context) ClearFormattedGPS() { c.f.clearField(FieldFormattedGPS) }

func (c *Context) FormattedINS() (Geolocation, bool) {
	if c.f.formattedINS == nil {
		return Geolocation{}, false
	}
	return *c.f.formattedINS, true
}

func (c *Context) SetFormattedINS(g Geolocation) {
	c.f.formattedINS = &g
	c.f.markPresent(FieldFormattedINS)
}

func (c *Context) ClearFormattedINS() { c.f.clearField(FieldFormattedINS) }

func (c *Context) ECEFEphemeris() (Ephemeris, bool) {
	if c.f.ecefEphemeris == nil {
		return Ephemeris{}, false
	}
	return *c.f.ecefEphemeris, true
}

func (c *Context) SetECEFEphemeris(e Ephemeris) {
	c.f.ecefEphemeris = &e
	c.f.markPresent(FieldECEFEphemeris)
}

func (c *Context) ClearECEFEphemeris() { c.f.clearField(FieldECEFEphemeris) }

func (c *Context) RelativeEphemeris() (Ephemeris, bool) {
	if c.f.relativeEphemeris == nil {
		return Ephemeris{}, false
	}
	return *c.f.relativeEphemeris, true
}

func (c *Context) SetRelativeEphemeris(e Ephemeris) {
	c.f.relativeEphemeris = &e
	c.f.markPresent(FieldRelativeEphemeris)
}

func (c *Context) ClearRelativeEphemeris() { c.f.clearField(FieldRelativeEphemeris) }

func (c *Context) EphemerisRefID() (uint32, bool) { return getU32(c.f.ephemerisRefID) }

func (c *Context) SetEphemerisRefID(v uint32) {
	c.f.ephemerisRefID = &v
	c.f.markPresent(FieldEphemerisRefID)
}

func (c *Context) ClearEphemerisRefID() { c.f.clearField(FieldEphemerisRefID) }

func (c *Context) GPSASCII() (GPSASCII, bool) {
	if c.f.gpsASCII == nil {
		return GPSASCII{}, false
	}
	return *c.f.gpsASCII, true
}

func (c *Context) SetGPSASCII(g GPSASCII) {
	c.f.gpsASCII = &g
	c.f.markPresent(FieldGPSASCII)
}

func (c *Context) ClearGPSASCII() { c.f.clearField(FieldGPSASCII) }

func (c *Context) AssociationLists() (AssociationLists, bool) {
	if c.f.associationLists == nil {
		return AssociationLists{}, false
	}
	return *c.f.associationLists, true
}

func (c *Context) SetAssociationLists(a AssociationLists) {
	c.f.associationLists = &a
	c.f.markPresent(FieldAssociationLists)
}

func (c *Context) ClearAssociationLists() { c.f.clearField(FieldAssociationLists) }

// ExtensionContext shares the context body layout; its field semantics
// are application defined.
type ExtensionContext struct {
	Context
}
