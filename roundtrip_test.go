package vita49

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPrefixCombinations drives class id, trailer and timestamps through
// every presence combination on a signal data packet and checks byte
// round trips.
func TestPrefixCombinations(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		withClass := mask&1 != 0
		withTrailer := mask&2 != 0
		withTimestamps := mask&4 != 0
		t.Run(fmt.Sprintf("class=%v_trailer=%v_ts=%v", withClass, withTrailer, withTimestamps), func(t *testing.T) {
			p := NewSignalDataPacket()
			require.NoError(t, p.SetStreamID(0x42))
			require.NoError(t, p.SetSignalPayload([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
			if withClass {
				p.SetClassID(ClassID{OUI: 0xFF5654, InformationClass: 0x0001, PacketClass: 0x0002})
			}
			if withTrailer {
				var tr Trailer
				tr.SetValidData(true)
				require.NoError(t, p.SetTrailer(tr))
			}
			if withTimestamps {
				require.NoError(t, p.SetIntegerTimestamp(TSIUTC, 1700000000))
				require.NoError(t, p.SetFractionalTimestamp(TSFRealTimePs, 123456789))
			}

			buf, err := p.Encode()
			require.NoError(t, err)
			assert.Equal(t, int(p.Header().PacketSize)*4, len(buf))

			decoded, err := Decode(buf)
			require.NoError(t, err)
			hdr := decoded.Header()
			assert.Equal(t, withClass, hdr.ClassIDPresent)
			assert.Equal(t, withTrailer, hdr.TrailerPresent())
			if withTimestamps {
				assert.Equal(t, TSIUTC, hdr.TSI)
				assert.Equal(t, TSFRealTimePs, hdr.TSF)
			} else {
				assert.Equal(t, TSINone, hdr.TSI)
				assert.Equal(t, TSFNone, hdr.TSF)
			}

			reencoded, err := decoded.Encode()
			require.NoError(t, err)
			assert.Equal(t, buf, reencoded)
		})
	}
}

// TestContextKitchenSinkRoundTrip exercises scalar, record and
// variable-length fields across all four indicator words.
func TestContextKitchenSinkRoundTrip(t *testing.T) {
	p := NewContextPacket()
	require.NoError(t, p.SetStreamID(0xCAFEF00D))
	require.NoError(t, p.SetIntegerTimestamp(TSIGPS, 1234))
	require.NoError(t, p.SetFractionalTimestamp(TSFSampleCount, 99999))
	ctx, err := p.Context()
	require.NoError(t, err)

	ctx.SetContextChanged(true)
	ctx.SetReferencePointID(11)
	require.NoError(t, ctx.SetBandwidthHz(6e6))
	require.NoError(t, ctx.SetIFRefFreqHz(-70e6))
	require.NoError(t, ctx.SetRFRefFreqHz(2.4e9))
	require.NoError(t, ctx.SetReferenceLevelDbm(-20.5))
	require.NoError(t, ctx.SetGain(Gain{Stage1Db: 10, Stage2Db: -0.5}))
	ctx.SetOverRangeCount(2)
	require.NoError(t, ctx.SetSampleRateSps(8e6))
	require.NoError(t, ctx.SetTemperatureC(36.5))
	ctx.SetDeviceID(DeviceID{OUI: 0x00AB12, DeviceCode: 0x0007})
	ctx.SetStateIndicators(0x80000000)

	gps := Geolocation{TSI: TSIUTC, TSF: TSFRealTimePs, OUI: 0x123456, IntegerTimestamp: 42}
	require.NoError(t, gps.SetLatitudeDeg(51.477928))
	require.NoError(t, gps.SetLongitudeDeg(-0.001545))
	require.NoError(t, gps.SetAltitudeM(46.5))
	ctx.SetFormattedGPS(gps)

	eph := Ephemeris{TSI: TSIUTC, OUI: 0x9A8B7C}
	require.NoError(t, eph.SetPositionM(1000, -2000, 3000.5))
	ctx.SetECEFEphemeris(eph)
	ctx.SetEphemerisRefID(5)
	ctx.SetGPSASCII(GPSASCII{OUI: 0x1A2B3C, Text: "$GPGGA,123519,4807.038,N"})
	ctx.SetAssociationLists(AssociationLists{
		Sources:   []uint32{1, 2},
		Systems:   []uint32{3},
		Vectors:   []uint32{4, 5, 6},
		Async:     []uint32{7},
		AsyncTags: []uint32{8},
	})

	// CIF1.
	require.NoError(t, ctx.SetPhaseOffset(1.25))
	require.NoError(t, ctx.SetPolarization(0.5, -0.25))
	require.NoError(t, ctx.SetPointingVector(12.5, -45.0))
	require.NoError(t, ctx.SetBeamWidths(3.5, 2.25))
	require.NoError(t, ctx.SetRangeM(1024.5))
	require.NoError(t, ctx.SetSNRNoiseFigure(30.5, 4.5))
	require.NoError(t, ctx.SetAuxFrequencyHz(10e6))
	var spectrum Spectrum
	spectrum.SpectrumType = 0x101
	spectrum.NumTransformPoints = 1280
	spectrum.NumWindowPoints = 1280
	require.NoError(t, spectrum.SetResolutionHz(6.25e3))
	require.NoError(t, spectrum.SetSpanHz(8e6))
	spectrum.F1Index = -640
	spectrum.F2Index = 639
	ctx.SetSpectrum(spectrum)
	ctx.SetDiscreteIO32(0xF0F0F0F0)
	ctx.SetDiscreteIO64(0x0123456789ABCDEF)
	ctx.SetHealthStatus(0x0001)
	ctx.SetBufferSize(1 << 20)

	// CIF2.
	ctx.SetTrackID(77)
	ctx.SetCountryCode(0x5553)
	ctx.SetControlleeUUID(UUID{0x01, 0x02, 0x03})
	ctx.SetModulationType(3)

	// CIF3.
	ctx.SetTimestampSkew(250)
	ctx.SetRiseTime(1000)
	require.NoError(t, ctx.SetAirTemperatureC(-40))
	ctx.SetHumidity(55)
	ctx.SetNetworkID(0xDEAD)

	buf, err := p.Encode()
	require.NoError(t, err)
	require.Equal(t, int(p.Header().PacketSize)*4, len(buf))

	decoded, err := Decode(buf)
	require.NoError(t, err)
	reencoded, err := decoded.Encode()
	require.NoError(t, err)
	require.Equal(t, buf, reencoded, "byte round trip")

	// Semantic equality through the named projection.
	assert.Equal(t, p.Named(), decoded.Named())

	dctx, err := decoded.Context()
	require.NoError(t, err)
	assert.True(t, dctx.ContextChanged())
	gotGPS, ok := dctx.FormattedGPS()
	require.True(t, ok)
	assert.InDelta(t, 51.477928, gotGPS.LatitudeDeg(), 1e-6)
	gotSpec, ok := dctx.Spectrum()
	require.True(t, ok)
	assert.Equal(t, int32(-640), gotSpec.F1Index)
	assert.Equal(t, 6.25e3, gotSpec.ResolutionHz())
	gotAL, ok := dctx.AssociationLists()
	require.True(t, ok)
	assert.Equal(t, []uint32{8}, gotAL.AsyncTags)
	uuid, ok := dctx.ControlleeUUID()
	require.True(t, ok)
	assert.Equal(t, UUID{0x01, 0x02, 0x03}, uuid)
	temp, ok := dctx.AirTemperatureC()
	require.True(t, ok)
	assert.Equal(t, -40.0, temp)
}

func TestRefreshSizeIdempotent(t *testing.T) {
	p := NewContextPacket()
	ctx, err := p.Context()
	require.NoError(t, err)
	require.NoError(t, ctx.SetBandwidthHz(5e6))
	p.RefreshSize()
	first := p.Header()
	p.RefreshSize()
	require.Equal(t, first, p.Header())
	p.RefreshSize()
	require.Equal(t, first, p.Header())
}

func TestHeaderSizeEquation(t *testing.T) {
	builders := []func() *Packet{
		NewSignalDataPacket,
		NewSignalDataPacketNoStreamID,
		NewContextPacket,
		NewExtensionContextPacket,
		NewCommandPacket,
		NewCancellationPacket,
		NewValidationAckPacket,
		NewExecAckPacket,
		NewQueryAckPacket,
	}
	for _, build := range builders {
		p := build()
		buf, err := p.Encode()
		require.NoError(t, err)
		require.Equal(t, int(p.Header().PacketSize)*4, len(buf), "type %s", p.Header().Type)

		decoded, err := Decode(buf)
		require.NoError(t, err)
		reencoded, err := decoded.Encode()
		require.NoError(t, err)
		require.Equal(t, buf, reencoded, "type %s", p.Header().Type)
	}
}

func TestGPSASCIIPadding(t *testing.T) {
	// Text length not divisible by four forces zero padding to the word
	// boundary.
	for _, text := range []string{"", "A", "AB", "ABC", "ABCD", "ABCDE"} {
		p := NewContextPacket()
		ctx, err := p.Context()
		require.NoError(t, err)
		ctx.SetGPSASCII(GPSASCII{OUI: 0x123456, Text: text})
		buf, err := p.Encode()
		require.NoError(t, err)
		require.Equal(t, 0, len(buf)%4)

		decoded, err := Decode(buf)
		require.NoError(t, err)
		dctx, err := decoded.Context()
		require.NoError(t, err)
		got, ok := dctx.GPSASCII()
		require.True(t, ok)
		assert.Equal(t, text, got.Text)

		reencoded, err := decoded.Encode()
		require.NoError(t, err)
		assert.Equal(t, buf, reencoded)
	}
}

func TestPacketCountWraps(t *testing.T) {
	p := NewSignalDataPacket()
	p.SetPacketCount(0x1F)
	require.Equal(t, uint8(0xF), p.Header().PacketCount)
}
