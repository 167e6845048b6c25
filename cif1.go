package vita49

// CIF1 field accessors. Two-part fields pack their halves into one word,
// high half first, except Threshold, whose stage 1 is the low half.

func pairWord(hi, lo uint16) uint32 {
	return uint32(hi)<<16 | uint32(lo)
}

func (c *Context) PhaseOffset() (float64, bool) {
	if c.f.phaseOffset == nil {
		return 0, false
	}
	return decDB7(uint16(*c.f.phaseOffset)), true
}

func (c *Context) SetPhaseOffset(v float64) error {
	raw, err := encDB7(v)
	if err != nil {
		return err
	}
	word := uint32(raw)
	c.f.phaseOffset = &word
	c.f.markPresent(FieldPhaseOffset)
	return nil
}

func (c *Context) ClearPhaseOffset() { c.f.clearField(FieldPhaseOffset) }

// Polarization returns the tilt and ellipticity angles in degrees.
func (c *Context) Polarization() (tilt, ellipticity float64, ok bool) {
	if c.f.polarization == nil {
		return 0, 0, false
	}
	w := *c.f.polarization
	return decAngle13(uint16(w >> 16)), decAngle13(uint16(w)), true
}

func (c *Context) SetPolarization(tilt, ellipticity float64) error {
	hi, err := encAngle13(tilt)
	if err != nil {
		return err
	}
	lo, err := encAngle13(ellipticity)
	if err != nil {
		return err
	}
	word := pairWord(hi, lo)
	c.f.polarization = &word
	c.f.markPresent(FieldPolarization)
	return nil
}

func (c *Context) ClearPolarization() { c.f.clearField(FieldPolarization) }

// PointingVector returns the beam elevation and azimuth in degrees.
func (c *Context) PointingVector() (elevation, azimuth float64, ok bool) {
	if c.f.pointingVector == nil {
		return 0, 0, false
	}
	w := *c.f.pointingVector
	return decDB7(uint16(w >> 16)), decDB7(uint16(w)), true
}

func (c *Context) SetPointingVector(elevation, azimuth float64) error {
	hi, err := encDB7(elevation)
	if err != nil {
		return err
	}
	lo, err := encDB7(azimuth)
	if err != nil {
		return err
	}
	word := pairWord(hi, lo)
	c.f.pointingVector = &word
	c.f.markPresent(FieldPointingVector)
	return nil
}

func (c *Context) ClearPointingVector() { c.f.clearField(FieldPointingVector) }

func (c *Context) BeamWidths() (horizontal, vertical float64, ok bool) {
	if c.f.beamWidths == nil {
		return 0, 0, false
	}
	w := *c.f.beamWidths
	return decDB7(uint16(w >> 16)), decDB7(uint16(w)), true
}

func (c *Context) SetBeamWidths(horizontal, vertical float64) error {
	hi, err := encDB7(horizontal)
	if err != nil {
		return err
	}
	lo, err := encDB7(vertical)
	if err != nil {
		return err
	}
	word := pairWord(hi, lo)
	c.f.beamWidths = &word
	c.f.markPresent(FieldBeamWidths)
	return nil
}

func (c *Context) ClearBeamWidths() { c.f.clearField(FieldBeamWidths) }

// RangeM is the distance to the signal source in meters (Q26.6).
func (c *Context) RangeM() (float64, bool) {
	if c.f.rangeDistance == nil {
		return 0, false
	}
	return fromFixedU(uint64(*c.f.rangeDistance), 6), true
}

func (c *Context) SetRangeM(v float64) error {
	raw, err := toFixed(v, 6, 32, false)
	if err != nil {
		return err
	}
	word := uint32(raw)
	c.f.rangeDistance = &word
	c.f.markPresent(FieldRange)
	return nil
}

func (c *Context) ClearRangeM() { c.f.clearField(FieldRange) }

func (c *Context) EbN0BER() (ebN0, ber float64, ok bool) {
	if c.f.ebN0BER == nil {
		return 0, 0, false
	}
	w := *c.f.ebN0BER
	return decDB7(uint16(w >> 16)), decDB7(uint16(w)), true
}

func (c *Context) SetEbN0BER(ebN0, ber float64) error {
	hi, err := encDB7(ebN0)
	if err != nil {
		return err
	}
	lo, err := encDB7(ber)
	if err != nil {
		return err
	}
	word := pairWord(hi, lo)
	c.f.ebN0BER = &word
	c.f.markPresent(FieldEbN0BER)
	return nil
}

func (c *Context) ClearEbN0BER() { c.f.clearField(FieldEbN0BER) }

func (c *Context) Threshold() (stage1, stage2 float64, ok bool) {
	if c.f.threshold == nil {
		return 0, 0, false
	}
	w := *c.f.threshold
	return decDB7(uint16(w)), decDB7(uint16(w >> 16)), true
}

func (c *Context) SetThreshold(stage1, stage2 float64) error {
	lo, err := encDB7(stage1)
	if err != nil {
		return err
	}
	hi, err := encDB7(stage2)
	if err != nil {
		return err
	}
	word := pairWord(hi, lo)
	c.f.threshold = &word
	c.f.markPresent(FieldThreshold)
	return nil
}

func (c *Context) ClearThreshold() { c.f.clearField(FieldThreshold) }

func (c *Context) CompressionPointDbm() (float64, bool) {
	if c.f.compressionPoint == nil {
		return 0, false
	}
	return decDB7(uint16(*c.f.compressionPoint)), true
}

func (c *Context) SetCompressionPointDbm(v float64) error {
	raw, err := encDB7(v)
	if err != nil {
		return err
	}
	word := uint32(raw)
	c.f.compressionPoint = &word
	c.f.markPresent(FieldCompressionPoint)
	return nil
}

func (c *Context) ClearCompressionPointDbm() { c.f.clearField(FieldCompressionPoint) }

func (c *Context) InterceptPoints() (secondOrder, thirdOrder float64, ok bool) {
	if c.f.interceptPoints == nil {
		return 0, 0, false
	}
	w := *c.f.interceptPoints
	return decDB7(uint16(w >> 16)), decDB7(uint16(w)), true
}

func (c *Context) SetInterceptPoints(secondOrder, thirdOrder float64) error {
	hi, err := encDB7(secondOrder)
	if err != nil {
		return err
	}
	lo, err := encDB7(thirdOrder)
	if err != nil {
		return err
	}
	word := pairWord(hi, lo)
	c.f.interceptPoints = &word
	c.f.markPresent(FieldInterceptPoints)
	return nil
}

func (c *Context) ClearInterceptPoints() { c.f.clearField(FieldInterceptPoints) }

func (c *Context) SNRNoiseFigure() (snr, noiseFigure float64, ok bool) {
	if c.f.snrNoiseFigure == nil {
		return 0, 0, false
	}
	w := *c.f.snrNoiseFigure
	return decDB7(uint16(w >> 16)), decDB7(uint16(w)), true
}

func (c *Context) SetSNRNoiseFigure(snr, noiseFigure float64) error {
	hi, err := encDB7(snr)
	if err != nil {
		return err
	}
	lo, err := encDB7(noiseFigure)
	if err != nil {
		return err
	}
	word := pairWord(hi, lo)
	c.f.snrNoiseFigure = &word
	c.f.markPresent(FieldSNRNoiseFigure)
	return nil
}

func (c *Context) ClearSNRNoiseFigure() { c.f.clearField(FieldSNRNoiseFigure) }

func (c *Context) AuxFrequencyHz() (float64, bool) {
	if c.f.auxFrequency == nil {
		return 0, false
	}
	return decHzU(*c.f.auxFrequency), true
}

func (c *Context) SetAuxFrequencyHz(hz float64) error {
	raw, err := encHz(hz, false)
	if err != nil {
		return err
	}
	c.f.auxFrequency = &raw
	c.f.markPresent(FieldAuxFrequency)
	return nil
}

func (c *Context) ClearAuxFrequencyHz() { c.f.clearField(FieldAuxFrequency) }

func (c *Context) AuxGain() (Gain, bool) {
	if c.f.auxGain == nil {
		return Gain{}, false
	}
	return gainFromWord(*c.f.auxGain), true
}

func (c *Context) SetAuxGain(g Gain) error {
	word, err := gainWord(g)
	if err != nil {
		return err
	}
	c.f.auxGain = &word
	c.f.markPresent(FieldAuxGain)
	return nil
}

func (c *Context) ClearAuxGain() { c.f.clearField(FieldAuxGain) }

func (c *Context) AuxBandwidthHz() (float64, bool) {
	if c.f.auxBandwidth == nil {
		return 0, false
	}
	return decHzU(*c.f.auxBandwidth), true
}

func (c *Context) SetAuxBandwidthHz(hz float64) error {
	raw, err := encHz(hz, false)
	if err != nil {
		return err
	}
	c.f.auxBandwidth = &raw
	c.f.markPresent(FieldAuxBandwidth)
	return nil
}

func (c *Context) ClearAuxBandwidthHz() { c.f.clearField(FieldAuxBandwidth) }

func (c *Context) Spectrum() (Spectrum, bool) {
	if c.f.spectrum == nil {
		return Spectrum{}, false
	}
	return *c.f.spectrum, true
}

func (c *Context) SetSpectrum(s Spectrum) {
	c.f.spectrum = &s
	c.f.markPresent(FieldSpectrum)
}

func (c *Context) ClearSpectrum() { c.f.clearField(FieldSpectrum) }

func (c *Context) DiscreteIO32() (uint32, bool) { return getU32(c.f.discreteIO32) }

func (c *Context) SetDiscreteIO32(v uint32) {
	c.f.discreteIO32 = &v
	c.f.markPresent(FieldDiscreteIO32)
}

func (c *Context) ClearDiscreteIO32() { c.f.clearField(FieldDiscreteIO32) }

func (c *Context) DiscreteIO64() (uint64, bool) { return getU64(c.f.discreteIO64) }

func (c *Context) SetDiscreteIO64(v uint64) {
	c.f.discreteIO64 = &v
	c.f.markPresent(FieldDiscreteIO64)
}

func (c *Context) ClearDiscreteIO64() { c.f.clearField(FieldDiscreteIO64) }

func (c *Context) HealthStatus() (uint32, bool) { return getU32(c.f.healthStatus) }

func (c *Context) SetHealthStatus(v uint32) {
	c.f.healthStatus = &v
	c.f.markPresent(FieldHealthStatus)
}

func (c *Context) ClearHealthStatus() { c.f.clearField(FieldHealthStatus) }

func (c *Context) VersionInformation() (uint32, bool) { return getU32(c.f.versionInformation) }

func (c *Context) SetVersionInformation(v uint32) {
	c.f.versionInformation = &v
	c.f.markPresent(FieldVersionInformation)
}

func (c *Context) ClearVersionInformation() { c.f.clearField(FieldVersionInformation) }

func (c *Context) BufferSize() (uint64, bool) { return getU64(c.f.bufferSize) }

func (c *Context) SetBufferSize(v uint64) {
	c.f.bufferSize = &v
	c.f.markPresent(FieldBufferSize)
}

func (c *Context) ClearBufferSize() { c.f.clearField(FieldBufferSize) }
