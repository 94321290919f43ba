package pms

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Field offsets in a frame.
const (
	offLength      = 2
	offStdPM1      = 4
	offStdPM25     = 6
	offStdPM10     = 8
	offAtmPM1      = 10
	offAtmPM25     = 12
	offAtmPM10     = 14
	offCount03     = 16
	offCount05     = 18
	offCount10     = 20
	offCount25     = 22
	offTemperature = 24
	offHumidity    = 26
	offErrorCode   = 28
	offVersion     = 29
	offReserved    = 16
)

// PM is a set of mass concentrations in µg/m³.
type PM struct {
	PM1  uint16 `json:"pm1_0"`
	PM25 uint16 `json:"pm2_5"`
	PM10 uint16 `json:"pm10"`
}

// Reading is a decoded frame, either *ExtendedReading or *CompactReading.
type Reading interface {
	Variant() Variant
	// Standard returns concentrations of standard particles (CF=1).
	Standard() PM
	// Atmospheric returns concentrations under atmospheric environment.
	Atmospheric() PM
	// Bytes encodes the reading into a wire frame.
	Bytes() []byte
	String() string
}

// ExtendedReading is the PMS5003T layout.
type ExtendedReading struct {
	Std PM
	Atm PM
	// Particles beyond 0.3/0.5/1.0/2.5 µm in 0.1 L of air.
	Count03 uint16
	Count05 uint16
	Count10 uint16
	Count25 uint16
	// Temperature in 0.1 °C.
	Temperature int16
	// Humidity in 0.1 %RH.
	Humidity  uint16
	ErrorCode byte
	Version   byte
}

// CompactReading is the PMS3003 layout.
type CompactReading struct {
	Std      PM
	Atm      PM
	Reserved [3]uint16
	// Length is the declared length, CompactLength when encoding a zero value.
	Length uint16
}

// Decode reads the named fields of a validated frame.
func Decode(f *Frame) Reading {
	std := PM{PM1: f.Word(offStdPM1), PM25: f.Word(offStdPM25), PM10: f.Word(offStdPM10)}
	atm := PM{PM1: f.Word(offAtmPM1), PM25: f.Word(offAtmPM25), PM10: f.Word(offAtmPM10)}
	if f.Variant() == Extended {
		return &ExtendedReading{
			Std:         std,
			Atm:         atm,
			Count03:     f.Word(offCount03),
			Count05:     f.Word(offCount05),
			Count10:     f.Word(offCount10),
			Count25:     f.Word(offCount25),
			Temperature: int16(f.Word(offTemperature)),
			Humidity:    f.Word(offHumidity),
			ErrorCode:   f.Byte(offErrorCode),
			Version:     f.Byte(offVersion),
		}
	}
	r := &CompactReading{Std: std, Atm: atm, Length: f.Len()}
	for i := range r.Reserved {
		r.Reserved[i] = f.Word(offReserved + i*2)
	}
	return r
}

// Variant implements Reading.
func (r *ExtendedReading) Variant() Variant { return Extended }

// Standard implements Reading.
func (r *ExtendedReading) Standard() PM { return r.Std }

// Atmospheric implements Reading.
func (r *ExtendedReading) Atmospheric() PM { return r.Atm }

// Celsius returns the temperature in °C.
func (r *ExtendedReading) Celsius() float64 {
	return float64(r.Temperature) / 10
}

// RelativeHumidity returns the humidity in %RH.
func (r *ExtendedReading) RelativeHumidity() float64 {
	return float64(r.Humidity) / 10
}

// Bytes implements Reading.
func (r *ExtendedReading) Bytes() []byte {
	b := make([]byte, ExtendedLength+headerSize)
	putHeader(b)
	putPM(b, r.Std, r.Atm)
	be := binary.BigEndian
	be.PutUint16(b[offCount03:], r.Count03)
	be.PutUint16(b[offCount05:], r.Count05)
	be.PutUint16(b[offCount10:], r.Count10)
	be.PutUint16(b[offCount25:], r.Count25)
	be.PutUint16(b[offTemperature:], uint16(r.Temperature))
	be.PutUint16(b[offHumidity:], r.Humidity)
	b[offErrorCode], b[offVersion] = r.ErrorCode, r.Version
	putChecksum(b)
	return b
}

// WriteTo writes encoded bytes.
func (r *ExtendedReading) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}

// String returns a debug representation.
func (r *ExtendedReading) String() string {
	return fmt.Sprintf("PMS5003T{pm1.0=%d, pm2.5=%d, pm10=%d, temp=%.1f, humi=%.1f}",
		r.Atm.PM1, r.Atm.PM25, r.Atm.PM10, r.Celsius(), r.RelativeHumidity())
}

// Variant implements Reading.
func (r *CompactReading) Variant() Variant { return Compact }

// Standard implements Reading.
func (r *CompactReading) Standard() PM { return r.Std }

// Atmospheric implements Reading.
func (r *CompactReading) Atmospheric() PM { return r.Atm }

// Bytes implements Reading. A Length unusable for the compact layout
// falls back to CompactLength.
func (r *CompactReading) Bytes() []byte {
	l := r.Length
	if l < CompactLength || l == ExtendedLength || int(l)+headerSize > FrameSize {
		l = CompactLength
	}
	b := make([]byte, int(l)+headerSize)
	putHeader(b)
	putPM(b, r.Std, r.Atm)
	for i, v := range r.Reserved {
		binary.BigEndian.PutUint16(b[offReserved+i*2:], v)
	}
	putChecksum(b)
	return b
}

// WriteTo writes encoded bytes.
func (r *CompactReading) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}

// String returns a debug representation.
func (r *CompactReading) String() string {
	return fmt.Sprintf("PMS3003{pm1.0=%d, pm2.5=%d, pm10=%d}", r.Atm.PM1, r.Atm.PM25, r.Atm.PM10)
}

func putHeader(b []byte) {
	b[0], b[1] = Sig1, Sig2
	binary.BigEndian.PutUint16(b[offLength:], uint16(len(b)-headerSize))
}

func putPM(b []byte, std, atm PM) {
	be := binary.BigEndian
	be.PutUint16(b[offStdPM1:], std.PM1)
	be.PutUint16(b[offStdPM25:], std.PM25)
	be.PutUint16(b[offStdPM10:], std.PM10)
	be.PutUint16(b[offAtmPM1:], atm.PM1)
	be.PutUint16(b[offAtmPM25:], atm.PM25)
	be.PutUint16(b[offAtmPM10:], atm.PM10)
}

func putChecksum(b []byte) {
	n := len(b) - checksumSize
	binary.BigEndian.PutUint16(b[n:], checksum(b[:n]))
}
