package vita49

// CIF3 carries temporal and environmental context. The 64-bit time
// fields use the fractional-time picosecond encoding and are exposed as
// raw counters.

func (c *Context) TimestampDetails() (uint64, bool) { return getU64(c.f.timestampDetails) }
func (c *Context) SetTimestampDetails(v uint64) {
	c.f.timestampDetails = &v
	c.f.markPresent(FieldTimestampDetails)
}
func (c *Context) ClearTimestampDetails() { c.f.clearField(FieldTimestampDetails) }

func (c *Context) TimestampSkew() (uint64, bool) { return getU64(c.f.timestampSkew) }
func (c *Context) SetTimestampSkew(v uint64) {
	c.f.timestampSkew = &v
	c.f.markPresent(FieldTimestampSkew)
}
func (c *Context) ClearTimestampSkew() { c.f.clearField(FieldTimestampSkew) }

func (c *Context) RiseTime() (uint64, bool) { return getU64(c.f.riseTime) }
func (c *Context) SetRiseTime(v uint64)     { c.f.riseTime = &v; c.f.markPresent(FieldRiseTime) }
func (c *Context) ClearRiseTime()           { c.f.clearField(FieldRiseTime) }

func (c *Context) FallTime() (uint64, bool) { return getU64(c.f.fallTime) }
func (c *Context) SetFallTime(v uint64)     { c.f.fallTime = &v; c.f.markPresent(FieldFallTime) }
func (c *Context) ClearFallTime()           { c.f.clearField(FieldFallTime) }

func (c *Context) OffsetTime() (uint64, bool) { return getU64(c.f.offsetTime) }
func (c *Context) SetOffsetTime(v uint64)     { c.f.offsetTime = &v; c.f.markPresent(FieldOffsetTime) }
func (c *Context) ClearOffsetTime()           { c.f.clearField(FieldOffsetTime) }

func (c *Context) PulseWidth() (uint64, bool) { return getU64(c.f.pulseWidth) }
func (c *Context) SetPulseWidth(v uint64)     { c.f.pulseWidth = &v; c.f.markPresent(FieldPulseWidth) }
func (c *Context) ClearPulseWidth()           { c.f.clearField(FieldPulseWidth) }

func (c *Context) Period() (uint64, bool) { return getU64(c.f.period) }
func (c *Context) SetPeriod(v uint64)     { c.f.period = &v; c.f.markPresent(FieldPeriod) }
func (c *Context) ClearPeriod()           { c.f.clearField(FieldPeriod) }

func (c *Context) Duration() (uint64, bool) { return getU64(c.f.duration) }
func (c *Context) SetDuration(v uint64)     { c.f.duration = &v; c.f.markPresent(FieldDuration) }
func (c *Context) ClearDuration()           { c.f.clearField(FieldDuration) }

func (c *Context) Dwell() (uint64, bool) { return getU64(c.f.dwell) }
func (c *Context) SetDwell(v uint64)     { c.f.dwell = &v; c.f.markPresent(FieldDwell) }
func (c *Context) ClearDwell()           { c.f.clearField(FieldDwell) }

func (c *Context) Jitter() (uint64, bool) { return getU64(c.f.jitter) }
func (c *Context) SetJitter(v uint64)     { c.f.jitter = &v; c.f.markPresent(FieldJitter) }
func (c *Context) ClearJitter()           { c.f.clearField(FieldJitter) }

func (c *Context) Age() (uint64, bool) { return getU64(c.f.age) }
func (c *Context) SetAge(v uint64)     { c.f.age = &v; c.f.markPresent(FieldAge) }
func (c *Context) ClearAge()           { c.f.clearField(FieldAge) }

func (c *Context) ShelfLife() (uint64, bool) { return getU64(c.f.shelfLife) }
func (c *Context) SetShelfLife(v uint64)     { c.f.shelfLife = &v; c.f.markPresent(FieldShelfLife) }
func (c *Context) ClearShelfLife()           { c.f.clearField(FieldShelfLife) }

func (c *Context) AirTemperatureC() (float64, bool) {
	if c.f.airTemperature == nil {
		return 0, false
	}
	return decTemp6(uint16(*c.f.airTemperature)), true
}

func (c *Context) SetAirTemperatureC(v float64) error {
	raw, err := encTemp6(v)
	if err != nil {
		return err
	}
	word := uint32(raw)
	c.f.airTemperature = &word
	c.f.markPresent(FieldAirTemperature)
	return nil
}

func (c *Context) ClearAirTemperatureC() { c.f.clearField(FieldAirTemperature) }

func (c *Context) SeaGroundTemperatureC() (float64, bool) {
	if c.f.seaGroundTemperature == nil {
		return 0, false
	}
	return decTemp6(uint16(*c.f.seaGroundTemperature)), true
}

func (c *Context) SetSeaGroundTemperatureC(v float64) error {
	raw, err := encTemp6(v)
	if err != nil {
		return err
	}
	word := uint32(raw)
	c.f.seaGroundTemperature = &word
	c.f.markPresent(FieldSeaGroundTemperature)
	return nil
}

func (c *Context) ClearSeaGroundTemperatureC() { c.f.clearField(FieldSeaGroundTemperature) }

func (c *Context) Humidity() (uint32, bool) { return getU32(c.f.humidity) }
func (c *Context) SetHumidity(v uint32)     { c.f.humidity = &v; c.f.markPresent(FieldHumidity) }
func (c *Context) ClearHumidity()           { c.f.clearField(FieldHumidity) }

func (c *Context) BarometricPressure() (uint32, bool) { return getU32(c.f.barometricPressure) }
func (c *Context) SetBarometricPressure(v uint32) {
	c.f.barometricPressure = &v
	c.f.markPresent(FieldBarometricPressure)
}
func (c *Context) ClearBarometricPressure() { c.f.clearField(FieldBarometricPressure) }

func (c *Context) NetworkID() (uint32, bool) { return getU32(c.f.networkID) }
func (c *Context) SetNetworkID(v uint32)     { c.f.networkID = &v; c.f.markPresent(FieldNetworkID) }
func (c *Context) ClearNetworkID()           { c.f.clearField(FieldNetworkID) }
