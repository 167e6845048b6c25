package vita49

import "fmt"

// Field names every optional context/command field this codec supports.
// The constants are declared in canonical wire order: CIF0 first, then
// CIF1, CIF2, CIF3, bit-descending within each indicator word.
type Field int

const (
	// CIF0
	FieldReferencePointID Field = iota
	FieldBandwidth
	FieldIFRefFreq
	FieldRFRefFreq
	FieldRFRefFreqOffset
	FieldIFBandOffset
	FieldReferenceLevel
	FieldGain
	FieldOverRangeCount
	FieldSampleRate
	FieldTimestampAdjustment
	FieldTimestampCalTime
	FieldTemperature
	FieldDeviceID
	FieldStateIndicators
	FieldPayloadFormat
	FieldFormattedGPS
	FieldFormattedINS
	FieldECEFEphemeris
	FieldRelativeEphemeris
	FieldEphemerisRefID
	FieldGPSASCII
	FieldAssociationLists
	// CIF1
	FieldPhaseOffset
	FieldPolarization
	FieldPointingVector
	FieldBeamWidths
	FieldRange
	FieldEbN0BER
	FieldThreshold
	FieldCompressionPoint
	FieldInterceptPoints
	FieldSNRNoiseFigure
	FieldAuxFrequency
	FieldAuxGain
	FieldAuxBandwidth
	FieldSpectrum
	FieldDiscreteIO32
	FieldDiscreteIO64
	FieldHealthStatus
	FieldVersionInformation
	FieldBufferSize
	// CIF2
	FieldBind
	FieldCitedSID
	FieldSiblingSID
	FieldParentSID
	FieldChildSID
	FieldCitedMessageID
	FieldControlleeID
	FieldControlleeUUID
	FieldControllerID
	FieldControllerUUID
	FieldInformationSource
	FieldTrackID
	FieldCountryCode
	FieldOperatorID
	FieldPlatformClass
	FieldPlatformInstance
	FieldPlatformDisplay
	FieldEMSDeviceClass
	FieldEMSDeviceType
	FieldEMSDeviceInstance
	FieldModulationClass
	FieldModulationType
	FieldFunctionID
	FieldModeID
	FieldEventID
	FieldFunctionPriorityID
	FieldCommunicationPriorityID
	FieldRFFootprint
	FieldRFFootprintRange
	// CIF3
	FieldTimestampDetails
	FieldTimestampSkew
	FieldRiseTime
	FieldFallTime
	FieldOffsetTime
	FieldPulseWidth
	FieldPeriod
	FieldDuration
	FieldDwell
	FieldJitter
	FieldAge
	FieldShelfLife
	FieldAirTemperature
	FieldSeaGroundTemperature
	FieldHumidity
	FieldBarometricPressure
	FieldNetworkID

	numFields
)

// Name returns the spec name of the field, e.g. "bandwidth_hz".
func (f Field) Name() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldDefs[f].name
}

func (f Field) String() string {
	return f.Name()
}

// Fields returns all supported fields in canonical wire order.
func Fields() []Field {
	out := make([]Field, numFields)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// cifFields is the shared value store behind context bodies, control and
// query-ack command payloads. The indicator words and the nullable slots
// are kept in lockstep by the accessor methods.
type cifFields struct {
	cif0, cif1, cif2, cif3, cif7 CIF

	referencePointID    *uint32
	bandwidth           *uint64
	ifRefFreq           *uint64
	rfRefFreq           *uint64
	rfRefFreqOffset     *uint64
	ifBandOffset        *uint64
	referenceLevel      *uint32
	gain                *uint32
	overRangeCount      *uint32
	sampleRate          *uint64
	timestampAdjustment *uint64
	timestampCalTime    *uint32
	temperature         *uint32
	deviceID            *DeviceID
	stateIndicators     *uint32
	payloadFormat       *uint64
	formattedGPS        *Geolocation
	formattedINS        *Geolocation
	ecefEphemeris       *Ephemeris
	relativeEphemeris   *Ephemeris
	ephemerisRefID      *uint32
	gpsASCII            *GPSASCII
	associationLists    *AssociationLists

	phaseOffset        *uint32
	polarization       *uint32
	pointingVector     *uint32
	beamWidths         *uint32
	rangeDistance      *uint32
	ebN0BER            *uint32
	threshold          *uint32
	compressionPoint   *uint32
	interceptPoints    *uint32
	snrNoiseFigure     *uint32
	auxFrequency       *uint64
	auxGain            *uint32
	auxBandwidth       *uint64
	spectrum           *Spectrum
	discreteIO32       *uint32
	discreteIO64       *uint64
	healthStatus       *uint32
	versionInformation *uint32
	bufferSize         *uint64

	bind                    *uint32
	citedSID                *uint32
	siblingSID              *uint32
	parentSID               *uint32
	childSID                *uint32
	citedMessageID          *uint32
	controlleeID            *uint32
	controlleeUUID          *UUID
	controllerID            *uint32
	controllerUUID          *UUID
	informationSource       *uint32
	trackID                 *uint32
	countryCode             *uint32
	operatorID              *uint32
	platformClass           *uint32
	platformInstance        *uint32
	platformDisplay         *uint32
	emsDeviceClass          *uint32
	emsDeviceType           *uint32
	emsDeviceInstance       *uint32
	modulationClass         *uint32
	modulationType          *uint32
	functionID              *uint32
	modeID                  *uint32
	eventID                 *uint32
	functionPriorityID      *uint32
	communicationPriorityID *uint32
	rfFootprint             *uint32
	rfFootprintRange        *uint32

	timestampDetails     *uint64
	timestampSkew        *uint64
	riseTime             *uint64
	fallTime             *uint64
	offsetTime           *uint64
	pulseWidth           *uint64
	period               *uint64
	duration             *uint64
	dwell                *uint64
	jitter               *uint64
	age                  *uint64
	shelfLife            *uint64
	airTemperature       *uint32
	seaGroundTemperature *uint32
	humidity             *uint32
	barometricPressure   *uint32
	networkID            *uint32

	// attrs holds CIF7 attribute replicas per field, as raw words in
	// wire order (replicas * field width).
	attrs map[Field][]uint32
}

// fieldDef describes one optional field: its home indicator bit, wire
// width, and the codec closures operating on a cifFields store. The
// table below is the single source of truth for field order, widths and
// Q-formats; decode, encode, sizing and the named view all walk it.
type fieldDef struct {
	field   Field
	name    string
	cif     int
	bit     uint
	words   int // fixed word count; 0 means variable
	read    func(c *cifFields, r *reader) error
	write   func(c *cifFields, w *writer)
	size    func(c *cifFields) int // only set for variable fields
	present func(c *cifFields) bool
	clear   func(c *cifFields)
	value   func(c *cifFields) any // named-view value; field is present
}

func u32Def(f Field, name string, cif int, bit uint, slot func(*cifFields) **uint32) fieldDef {
	return fieldDef{
		field: f, name: name, cif: cif, bit: bit, words: 1,
		read: func(c *cifFields, r *reader) error {
			v, err := r.u32()
			if err != nil {
				return err
			}
			*slot(c) = &v
			return nil
		},
		write:   func(c *cifFields, w *writer) { w.u32(**slot(c)) },
		present: func(c *cifFields) bool { return *slot(c) != nil },
		clear:   func(c *cifFields) { *slot(c) = nil },
		value:   func(c *cifFields) any { return **slot(c) },
	}
}

func u64Def(f Field, name string, cif int, bit uint, slot func(*cifFields) **uint64) fieldDef {
	return fieldDef{
		field: f, name: name, cif: cif, bit: bit, words: 2,
		read: func(c *cifFields, r *reader) error {
			v, err := r.u64()
			if err != nil {
				return err
			}
			*slot(c) = &v
			return nil
		},
		write:   func(c *cifFields, w *writer) { w.u64(**slot(c)) },
		present: func(c *cifFields) bool { return *slot(c) != nil },
		clear:   func(c *cifFields) { *slot(c) = nil },
		value:   func(c *cifFields) any { return **slot(c) },
	}
}

// freqDef is a 64-bit frequency word (radix 20); the named view shows Hz.
func freqDef(f Field, name string, cif int, bit uint, signed bool, slot func(*cifFields) **uint64) fieldDef {
	d := u64Def(f, name, cif, bit, slot)
	d.value = func(c *cifFields) any {
		if signed {
			return decHzI(**slot(c))
		}
		return decHzU(**slot(c))
	}
	return d
}

// q7Def is a 32-bit word whose low half is a signed Q9.7 value.
func q7Def(f Field, name string, cif int, bit uint, slot func(*cifFields) **uint32) fieldDef {
	d := u32Def(f, name, cif, bit, slot)
	d.value = func(c *cifFields) any { return decDB7(uint16(**slot(c))) }
	return d
}

// temp6Def is a 32-bit word whose low half is a signed Q10.6 value.
func temp6Def(f Field, name string, cif int, bit uint, slot func(*cifFields) **uint32) fieldDef {
	d := u32Def(f, name, cif, bit, slot)
	d.value = func(c *cifFields) any { return decTemp6(uint16(**slot(c))) }
	return d
}

// pairDef is a 32-bit word of two 16-bit subfields sharing one decoder.
func pairDef(f Field, name string, cif int, bit uint, slot func(*cifFields) **uint32, hiName, loName string, dec func(uint16) float64) fieldDef {
	d := u32Def(f, name, cif, bit, slot)
	d.value = func(c *cifFields) any {
		v := **slot(c)
		return map[string]any{hiName: dec(uint16(v >> 16)), loName: dec(uint16(v))}
	}
	return d
}

func uuidDef(f Field, name string, cif int, bit uint, slot func(*cifFields) **UUID) fieldDef {
	return fieldDef{
		field: f, name: name, cif: cif, bit: bit, words: 4,
		read: func(c *cifFields, r *reader) error {
			u, err := decodeUUID(r)
			if err != nil {
				return err
			}
			*slot(c) = &u
			return nil
		},
		write:   func(c *cifFields, w *writer) { (*slot(c)).encode(w) },
		present: func(c *cifFields) bool { return *slot(c) != nil },
		clear:   func(c *cifFields) { *slot(c) = nil },
		value:   func(c *cifFields) any { return (*slot(c)).String() },
	}
}

var fieldDefs = [numFields]fieldDef{
	// CIF0, bit-descending.
	u32Def(FieldReferencePointID, "reference_point_id", 0, 30, func(c *cifFields) **uint32 { return &c.referencePointID }),
	freqDef(FieldBandwidth, "bandwidth_hz", 0, 29, false, func(c *cifFields) **uint64 { return &c.bandwidth }),
	freqDef(FieldIFRefFreq, "if_ref_freq_hz", 0, 28, true, func(c *cifFields) **uint64 { return &c.ifRefFreq }),
	freqDef(FieldRFRefFreq, "rf_ref_freq_hz", 0, 27, false, func(c *cifFields) **uint64 { return &c.rfRefFreq }),
	freqDef(FieldRFRefFreqOffset, "rf_ref_freq_offset_hz", 0, 26, true, func(c *cifFields) **uint64 { return &c.rfRefFreqOffset }),
	freqDef(FieldIFBandOffset, "if_band_offset_hz", 0, 25, true, func(c *cifFields) **uint64 { return &c.ifBandOffset }),
	q7Def(FieldReferenceLevel, "reference_level_dbm", 0, 24, func(c *cifFields) **uint32 { return &c.referenceLevel }),
	{
		field: FieldGain, name: "gain", cif: 0, bit: 23, words: 1,
		read: func(c *cifFields, r *reader) error {
			v, err := r.u32()
			if err != nil {
				return err
			}
			c.gain = &v
			return nil
		},
		write:   func(c *cifFields, w *writer) { w.u32(*c.gain) },
		present: func(c *cifFields) bool { return c.gain != nil },
		clear:   func(c *cifFields) { c.gain = nil },
		value:   func(c *cifFields) any { return gainFromWord(*c.gain) },
	},
	u32Def(FieldOverRangeCount, "over_range_count", 0, 22, func(c *cifFields) **uint32 { return &c.overRangeCount }),
	freqDef(FieldSampleRate, "sample_rate_sps", 0, 21, false, func(c *cifFields) **uint64 { return &c.sampleRate }),
	u64Def(FieldTimestampAdjustment, "timestamp_adjustment", 0, 20, func(c *cifFields) **uint64 { return &c.timestampAdjustment }),
	u32Def(FieldTimestampCalTime, "timestamp_cal_time", 0, 19, func(c *cifFields) **uint32 { return &c.timestampCalTime }),
	temp6Def(FieldTemperature, "temperature_c", 0, 18, func(c *cifFields) **uint32 { return &c.temperature }),
	{
		field: FieldDeviceID, name: "device_id", cif: 0, bit: 17, words: 2,
		read: func(c *cifFields, r *reader) error {
			d, err := decodeDeviceID(r)
			if err != nil {
				return err
			}
			c.deviceID = &d
			return nil
		},
		write:   func(c *cifFields, w *writer) { c.deviceID.encode(w) },
		present: func(c *cifFields) bool { return c.deviceID != nil },
		clear:   func(c *cifFields) { c.deviceID = nil },
		value:   func(c *cifFields) any { return *c.deviceID },
	},
	u32Def(FieldStateIndicators, "state_event_indicators", 0, 16, func(c *cifFields) **uint32 { return &c.stateIndicators }),
	u64Def(FieldPayloadFormat, "signal_data_payload_format", 0, 15, func(c *cifFields) **uint64 { return &c.payloadFormat }),
	{
		field: FieldFormattedGPS, name: "formatted_gps", cif: 0, bit: 14, words: geolocationWords,
		read: func(c *cifFields, r *reader) error {
			g, err := decodeGeolocation(r)
			if err != nil {
				return err
			}
			c.formattedGPS = &g
			return nil
		},
		write:   func(c *cifFields, w *writer) { c.formattedGPS.encode(w) },
		present: func(c *cifFields) bool { return c.formattedGPS != nil },
		clear:   func(c *cifFields) { c.formattedGPS = nil },
		value:   func(c *cifFields) any { return *c.formattedGPS },
	},
	{
		field: FieldFormattedINS, name: "formatted_ins", cif: 0, bit: 13, words: geolocationWords,
		read: func(c *cifFields, r *reader) error {
			g, err := decodeGeolocation(r)
			if err != nil {
				return err
			}
			c.formattedINS = &g
			return nil
		},
		write:   func(c *cifFields, w *writer) { c.formattedINS.encode(w) },
		present: func(c *cifFields) bool { return c.formattedINS != nil },
		clear:   func(c *cifFields) { c.formattedINS = nil },
		value:   func(c *cifFields) any { return *c.formattedINS },
	},
	{
		field: FieldECEFEphemeris, name: "ecef_ephemeris", cif: 0, bit: 12, words: ephemerisWords,
		read: func(c *cifFields, r *reader) error {
			e, err := decodeEphemeris(r)
			if err != nil {
				return err
			}
			c.ecefEphemeris = &e
			return nil
		},
		write:   func(c *cifFields, w *writer) { c.ecefEphemeris.encode(w) },
		present: func(c *cifFields) bool { return c.ecefEphemeris != nil },
		clear:   func(c *cifFields) { c.ecefEphemeris = nil },
		value:   func(c *cifFields) any { return *c.ecefEphemeris },
	},
	{
		field: FieldRelativeEphemeris, name: "relative_ephemeris", cif: 0, bit: 11, words: ephemerisWords,
		read: func(c *cifFields, r *reader) error {
			e, err := decodeEphemeris(r)
			if err != nil {
				return err
			}
			c.relativeEphemeris = &e
			return nil
		},
		write:   func(c *cifFields, w *writer) { c.relativeEphemeris.encode(w) },
		present: func(c *cifFields) bool { return c.relativeEphemeris != nil },
		clear:   func(c *cifFields) { c.relativeEphemeris = nil },
		value:   func(c *cifFields) any { return *c.relativeEphemeris },
	},
	u32Def(FieldEphemerisRefID, "ephemeris_ref_id", 0, 10, func(c *cifFields) **uint32 { return &c.ephemerisRefID }),
	{
		field: FieldGPSASCII, name: "gps_ascii", cif: 0, bit: 9,
		read: func(c *cifFields, r *reader) error {
			g, err := decodeGPSASCII(r)
			if err != nil {
				return err
			}
			c.gpsASCII = &g
			return nil
		},
		write:   func(c *cifFields, w *writer) { c.gpsASCII.encode(w) },
		size:    func(c *cifFields) int { return c.gpsASCII.sizeWords() },
		present: func(c *cifFields) bool { return c.gpsASCII != nil },
		clear:   func(c *cifFields) { c.gpsASCII = nil },
		value:   func(c *cifFields) any { return *c.gpsASCII },
	},
	{
		field: FieldAssociationLists, name: "context_association_lists", cif: 0, bit: 8,
		read: func(c *cifFields, r *reader) error {
			a, err := decodeAssociationLists(r)
			if err != nil {
				return err
			}
			c.associationLists = &a
			return nil
		},
		write:   func(c *cifFields, w *writer) { c.associationLists.encode(w) },
		size:    func(c *cifFields) int { return c.associationLists.sizeWords() },
		present: func(c *cifFields) bool { return c.associationLists != nil },
		clear:   func(c *cifFields) { c.associationLists = nil },
		value:   func(c *cifFields) any { return *c.associationLists },
	},

	// CIF1.
	q7Def(FieldPhaseOffset, "phase_offset", 1, 31, func(c *cifFields) **uint32 { return &c.phaseOffset }),
	pairDef(FieldPolarization, "polarization", 1, 30, func(c *cifFields) **uint32 { return &c.polarization },
		"tilt_deg", "ellipticity_deg", decAngle13),
	pairDef(FieldPointingVector, "pointing_vector", 1, 29, func(c *cifFields) **uint32 { return &c.pointingVector },
		"elevation_deg", "azimuth_deg", decDB7),
	pairDef(FieldBeamWidths, "beam_widths", 1, 27, func(c *cifFields) **uint32 { return &c.beamWidths },
		"horizontal_deg", "vertical_deg", decDB7),
	u32Def(FieldRange, "range_m", 1, 26, func(c *cifFields) **uint32 { return &c.rangeDistance }),
	pairDef(FieldEbN0BER, "ebno_ber", 1, 20, func(c *cifFields) **uint32 { return &c.ebN0BER },
		"ebno_db", "ber", decDB7),
	pairDef(FieldThreshold, "threshold", 1, 19, func(c *cifFields) **uint32 { return &c.threshold },
		"stage2_dbm", "stage1_dbm", decDB7),
	q7Def(FieldCompressionPoint, "compression_point_dbm", 1, 18, func(c *cifFields) **uint32 { return &c.compressionPoint }),
	pairDef(FieldInterceptPoints, "intercept_points", 1, 17, func(c *cifFields) **uint32 { return &c.interceptPoints },
		"second_order_dbm", "third_order_dbm", decDB7),
	pairDef(FieldSNRNoiseFigure, "snr_noise_figure", 1, 16, func(c *cifFields) **uint32 { return &c.snrNoiseFigure },
		"snr_db", "noise_figure_db", decDB7),
	freqDef(FieldAuxFrequency, "aux_frequency_hz", 1, 15, false, func(c *cifFields) **uint64 { return &c.auxFrequency }),
	{
		field: FieldAuxGain, name: "aux_gain", cif: 1, bit: 14, words: 1,
		read: func(c *cifFields, r *reader) error {
			v, err := r.u32()
			if err != nil {
				return err
			}
			c.auxGain = &v
			return nil
		},
		write:   func(c *cifFields, w *writer) { w.u32(*c.auxGain) },
		present: func(c *cifFields) bool { return c.auxGain != nil },
		clear:   func(c *cifFields) { c.auxGain = nil },
		value:   func(c *cifFields) any { return gainFromWord(*c.auxGain) },
	},
	freqDef(FieldAuxBandwidth, "aux_bandwidth_hz", 1, 13, false, func(c *cifFields) **uint64 { return &c.auxBandwidth }),
	{
		field: FieldSpectrum, name: "spectrum", cif: 1, bit: 10, words: spectrumWords,
		read: func(c *cifFields, r *reader) error {
			s, err := decodeSpectrum(r)
			if err != nil {
				return err
			}
			c.spectrum = &s
			return nil
		},
		write:   func(c *cifFields, w *writer) { c.spectrum.encode(w) },
		present: func(c *cifFields) bool { return c.spectrum != nil },
		clear:   func(c *cifFields) { c.spectrum = nil },
		value:   func(c *cifFields) any { return *c.spectrum },
	},
	u32Def(FieldDiscreteIO32, "discrete_io_32", 1, 6, func(c *cifFields) **uint32 { return &c.discreteIO32 }),
	u64Def(FieldDiscreteIO64, "discrete_io_64", 1, 5, func(c *cifFields) **uint64 { return &c.discreteIO64 }),
	u32Def(FieldHealthStatus, "health_status", 1, 4, func(c *cifFields) **uint32 { return &c.healthStatus }),
	u32Def(FieldVersionInformation, "version_information", 1, 2, func(c *cifFields) **uint32 { return &c.versionInformation }),
	u64Def(FieldBufferSize, "buffer_size", 1, 1, func(c *cifFields) **uint64 { return &c.bufferSize }),

	// CIF2.
	u32Def(FieldBind, "bind", 2, 31, func(c *cifFields) **uint32 { return &c.bind }),
	u32Def(FieldCitedSID, "cited_sid", 2, 30, func(c *cifFields) **uint32 { return &c.citedSID }),
	u32Def(FieldSiblingSID, "sibling_sid", 2, 29, func(c *cifFields) **uint32 { return &c.siblingSID }),
	u32Def(FieldParentSID, "parent_sid", 2, 28, func(c *cifFields) **uint32 { return &c.parentSID }),
	u32Def(FieldChildSID, "child_sid", 2, 27, func(c *cifFields) **uint32 { return &c.childSID }),
	u32Def(FieldCitedMessageID, "cited_message_id", 2, 26, func(c *cifFields) **uint32 { return &c.citedMessageID }),
	u32Def(FieldControlleeID, "controllee_id", 2, 25, func(c *cifFields) **uint32 { return &c.controlleeID }),
	uuidDef(FieldControlleeUUID, "controllee_uuid", 2, 24, func(c *cifFields) **UUID { return &c.controlleeUUID }),
	u32Def(FieldControllerID, "controller_id", 2, 23, func(c *cifFields) **uint32 { return &c.controllerID }),
	uuidDef(FieldControllerUUID, "controller_uuid", 2, 22, func(c *cifFields) **UUID { return &c.controllerUUID }),
	u32Def(FieldInformationSource, "information_source", 2, 21, func(c *cifFields) **uint32 { return &c.informationSource }),
	u32Def(FieldTrackID, "track_id", 2, 20, func(c *cifFields) **uint32 { return &c.trackID }),
	u32Def(FieldCountryCode, "country_code", 2, 19, func(c *cifFields) **uint32 { return &c.countryCode }),
	u32Def(FieldOperatorID, "operator_id", 2, 18, func(c *cifFields) **uint32 { return &c.operatorID }),
	u32Def(FieldPlatformClass, "platform_class", 2, 17, func(c *cifFields) **uint32 { return &c.platformClass }),
	u32Def(FieldPlatformInstance, "platform_instance", 2, 16, func(c *cifFields) **uint32 { return &c.platformInstance }),
	u32Def(FieldPlatformDisplay, "platform_display", 2, 15, func(c *cifFields) **uint32 { return &c.platformDisplay }),
	u32Def(FieldEMSDeviceClass, "ems_device_class", 2, 14, func(c *cifFields) **uint32 { return &c.emsDeviceClass }),
	u32Def(FieldEMSDeviceType, "ems_device_type", 2, 13, func(c *cifFields) **uint32 { return &c.emsDeviceType }),
	u32Def(FieldEMSDeviceInstance, "ems_device_instance", 2, 12, func(c *cifFields) **uint32 { return &c.emsDeviceInstance }),
	u32Def(FieldModulationClass, "modulation_class", 2, 11, func(c *cifFields) **uint32 { return &c.modulationClass }),
	u32Def(FieldModulationType, "modulation_type", 2, 10, func(c *cifFields) **uint32 { return &c.modulationType }),
	u32Def(FieldFunctionID, "function_id", 2, 9, func(c *cifFields) **uint32 { return &c.functionID }),
	u32Def(FieldModeID, "mode_id", 2, 8, func(c *cifFields) **uint32 { return &c.modeID }),
	u32Def(FieldEventID, "event_id", 2, 7, func(c *cifFields) **uint32 { return &c.eventID }),
	u32Def(FieldFunctionPriorityID, "function_priority_id", 2, 6, func(c *cifFields) **uint32 { return &c.functionPriorityID }),
	u32Def(FieldCommunicationPriorityID, "communication_priority_id", 2, 5, func(c *cifFields) **uint32 { return &c.communicationPriorityID }),
	u32Def(FieldRFFootprint, "rf_footprint", 2, 4, func(c *cifFields) **uint32 { return &c.rfFootprint }),
	u32Def(FieldRFFootprintRange, "rf_footprint_range", 2, 3, func(c *cifFields) **uint32 { return &c.rfFootprintRange }),

	// CIF3.
	u64Def(FieldTimestampDetails, "timestamp_details", 3, 31, func(c *cifFields) **uint64 { return &c.timestampDetails }),
	u64Def(FieldTimestampSkew, "timestamp_skew", 3, 30, func(c *cifFields) **uint64 { return &c.timestampSkew }),
	u64Def(FieldRiseTime, "rise_time", 3, 27, func(c *cifFields) **uint64 { return &c.riseTime }),
	u64Def(FieldFallTime, "fall_time", 3, 26, func(c *cifFields) **uint64 { return &c.fallTime }),
	u64Def(FieldOffsetTime, "offset_time", 3, 25, func(c *cifFields) **uint64 { return &c.offsetTime }),
	u64Def(FieldPulseWidth, "pulse_width", 3, 24, func(c *cifFields) **uint64 { return &c.pulseWidth }),
	u64Def(FieldPeriod, "period", 3, 23, func(c *cifFields) **uint64 { return &c.period }),
	u64Def(FieldDuration, "duration", 3, 22, func(c *cifFields) **uint64 { return &c.duration }),
	u64Def(FieldDwell, "dwell", 3, 21, func(c *cifFields) **uint64 { return &c.dwell }),
	u64Def(FieldJitter, "jitter", 3, 20, func(c *cifFields) **uint64 { return &c.jitter }),
	u64Def(FieldAge, "age", 3, 17, func(c *cifFields) **uint64 { return &c.age }),
	u64Def(FieldShelfLife, "shelf_life", 3, 16, func(c *cifFields) **uint64 { return &c.shelfLife }),
	temp6Def(FieldAirTemperature, "air_temperature_c", 3, 7, func(c *cifFields) **uint32 { return &c.airTemperature }),
	temp6Def(FieldSeaGroundTemperature, "sea_ground_temperature_c", 3, 6, func(c *cifFields) **uint32 { return &c.seaGroundTemperature }),
	u32Def(FieldHumidity, "humidity", 3, 5, func(c *cifFields) **uint32 { return &c.humidity }),
	u32Def(FieldBarometricPressure, "barometric_pressure", 3, 4, func(c *cifFields) **uint32 { return &c.barometricPressure }),
	u32Def(FieldNetworkID, "network_id", 3, 0, func(c *cifFields) **uint32 { return &c.networkID }),
}

// cifKnownMask holds, per indicator word, the bits this codec can parse.
// Set bits outside the mask fail decoding with ErrUnsupportedField.
var cifKnownMask [4]uint32

func init() {
	for i := range fieldDefs {
		d := &fieldDefs[i]
		if d.field != Field(i) {
			panic(fmt.Sprintf("field table out of order at %s", d.name))
		}
		cifKnownMask[d.cif] |= 1 << d.bit
	}
	// CIF0 control bits are not data fields but are understood.
	cifKnownMask[0] |= 1<<cif0ChangeIndicator |
		1<<cif0Cif7Enable | 1<<cif0Cif3Enable | 1<<cif0Cif2Enable | 1<<cif0Cif1Enable
}
