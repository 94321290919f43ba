package pms

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// extendedWire builds 42 4D 00 1C, twelve big-endian words 1..12 with the
// temperature word set to temp, error/version bytes and the checksum.
func extendedWire(temp int16) []byte {
	b := []byte{0x42, 0x4d, 0x00, 0x1c}
	for i := 1; i <= 12; i++ {
		w := uint16(i * 10)
		if i == 11 {
			w = uint16(temp)
		}
		b = append(b, byte(w>>8), byte(w))
	}
	b = append(b, 0x03, 0x91)
	return frameWithChecksum(b...)
}

func TestParseFrameExtended(t *testing.T) {
	wire := extendedWire(-52)
	require.Len(t, wire, FrameSize)

	f, err := ParseFrame(wire)
	require.NoError(t, err)
	require.Equal(t, uint16(28), f.Len())
	require.Equal(t, Extended, f.Variant())
	require.Equal(t, wire, f.Bytes())

	r, ok := Decode(f).(*ExtendedReading)
	require.True(t, ok)
	require.Equal(t, PM{PM1: 10, PM25: 20, PM10: 30}, r.Std)
	require.Equal(t, PM{PM1: 40, PM25: 50, PM10: 60}, r.Atm)
	require.Equal(t, uint16(70), r.Count03)
	require.Equal(t, uint16(100), r.Count25)
	require.Equal(t, int16(-52), r.Temperature)
	require.InDelta(t, -5.2, r.Celsius(), 1e-9)
	require.Equal(t, uint16(120), r.Humidity)
	require.InDelta(t, 12.0, r.RelativeHumidity(), 1e-9)
	require.Equal(t, byte(0x03), r.ErrorCode)
	require.Equal(t, byte(0x91), r.Version)
}

func TestParseFrameChecksumOffByOne(t *testing.T) {
	wire := extendedWire(250)
	wire[len(wire)-1]++
	_, err := ParseFrame(wire)
	require.ErrorIs(t, err, ErrChecksum)

	var re *ReadError
	require.ErrorAs(t, err, &re)
	require.Equal(t, Extended, re.Variant)
	require.Equal(t, 4, re.Code())
}

func TestParseFrameCompactChecksumCode(t *testing.T) {
	wire := compactWire()
	wire[5]++
	_, err := ParseFrame(wire)
	var re *ReadError
	require.ErrorAs(t, err, &re)
	require.Equal(t, ChecksumError, re.Kind)
	require.Equal(t, 5, re.Code())
}

func TestNewFrameSignatureMismatch(t *testing.T) {
	wire := extendedWire(100)
	var buf [FrameSize]byte
	copy(buf[:], frameWithChecksum(append([]byte{Sig1, 0x4e}, wire[2:30]...)...))
	_, err := newFrame(&buf)
	require.ErrorIs(t, err, ErrSignature)
	require.False(t, errors.Is(err, ErrChecksum))
	var re *ReadError
	require.ErrorAs(t, err, &re)
	require.Equal(t, SignatureError, re.Kind)
	require.Equal(t, 6, re.Code())

	// the checksum is verified first.
	buf[FrameSize-1]++
	_, err = newFrame(&buf)
	require.ErrorIs(t, err, ErrChecksum)
}

func TestParseFrameIncomplete(t *testing.T) {
	_, err := ParseFrame(compactWire()[:10])
	require.ErrorIs(t, err, ErrBodyTimeout)
	_, err = ParseFrame([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrSyncTimeout)
}

func TestVariantBoundary(t *testing.T) {
	for _, l := range []uint16{1, 2, 20, 24, 26, 27, 29} {
		require.Equalf(t, Compact, VariantOf(l), "length %d", l)
	}
	require.Equal(t, Extended, VariantOf(28))

	for _, l := range []int{20, 22, 26, 28} {
		b := []byte{0x42, 0x4d, 0x00, byte(l)}
		b = append(b, make([]byte, l-2)...)
		f, err := ParseFrame(frameWithChecksum(b...))
		require.NoErrorf(t, err, "length %d", l)
		require.Equal(t, VariantOf(uint16(l)), f.Variant())
		require.Equal(t, VariantOf(uint16(l)), Decode(f).Variant())
	}
}

func TestNormalize(t *testing.T) {
	var buf [FrameSize]byte
	for i := range buf {
		buf[i] = byte(i)
	}
	words := normalize(&buf)
	require.Equal(t, uint16(0), words[0])
	require.Equal(t, uint16(0x0203), words[1])
	require.Equal(t, uint16(0x1e1f), words[15])
	// the buffer itself is untouched.
	require.Equal(t, byte(0), buf[0])
	require.Equal(t, byte(2), buf[2])
}

func TestReadingRoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		reading Reading
	}{
		{
			name: "extended",
			reading: &ExtendedReading{
				Std:         PM{PM1: 11, PM25: 17, PM10: 21},
				Atm:         PM{PM1: 9, PM25: 15, PM10: 20},
				Count03:     1890,
				Count05:     540,
				Count10:     92,
				Count25:     6,
				Temperature: 237,
				Humidity:    581,
				ErrorCode:   0,
				Version:     0x91,
			},
		},
		{
			name: "extended below zero",
			reading: &ExtendedReading{
				Atm:         PM{PM1: 0xffff, PM25: 0x8000, PM10: 1},
				Temperature: -400,
				Humidity:    1000,
			},
		},
		{
			name: "compact",
			reading: &CompactReading{
				Std:      PM{PM1: 30, PM25: 45, PM10: 52},
				Atm:      PM{PM1: 21, PM25: 32, PM10: 41},
				Reserved: [3]uint16{1, 2, 0xabcd},
				Length:   CompactLength,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wire := tc.reading.Bytes()
			f, err := ParseFrame(wire)
			require.NoError(t, err)
			require.Equal(t, tc.reading, Decode(f))

			var buf bytes.Buffer
			switch r := tc.reading.(type) {
			case *ExtendedReading:
				_, err = r.WriteTo(&buf)
			case *CompactReading:
				_, err = r.WriteTo(&buf)
			}
			require.NoError(t, err)
			require.Equal(t, wire, buf.Bytes())
		})
	}
}

func TestCompactLengthFallback(t *testing.T) {
	for _, l := range []uint16{0, 10, ExtendedLength, 40} {
		r := &CompactReading{Length: l}
		b := r.Bytes()
		require.Lenf(t, b, CompactLength+4, "length %d", l)
		_, err := ParseFrame(b)
		require.NoError(t, err)
	}
	r := &CompactReading{Length: 24}
	require.Len(t, r.Bytes(), 28)
}
