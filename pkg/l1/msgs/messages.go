package msgs

import (
	"errors"
	"time"

	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/pms.go/pkg/framework"
	"github.com/robotalks/pms.go/pkg/l0/pms"
	pb "github.com/robotalks/pms.go/pkg/proto/pms/v1"
)

// Reading is the event of a successful read.
type Reading struct {
	pb.Reading
}

// NewFrameReading creates a Reading event from a received frame. Raw and
// Length are taken from the wire as is.
func NewFrameReading(f *pms.Frame, at time.Time) *Reading {
	m := NewReading(pms.Decode(f), at)
	m.Raw = f.Bytes()
	m.Length = uint32(f.Len())
	return m
}

// NewReading creates a Reading event from a decoded reading. Raw holds the
// reading encoded again, use NewFrameReading to keep the received frame.
func NewReading(r pms.Reading, at time.Time) *Reading {
	std, atm := r.Standard(), r.Atmospheric()
	raw := r.Bytes()
	m := &Reading{Reading: pb.Reading{
		Variant:   int32(r.Variant()),
		Length:    uint32(len(raw) - 4),
		StdPm1:    uint32(std.PM1),
		StdPm25:   uint32(std.PM25),
		StdPm10:   uint32(std.PM10),
		AtmPm1:    uint32(atm.PM1),
		AtmPm25:   uint32(atm.PM25),
		AtmPm10:   uint32(atm.PM10),
		Raw:       raw,
		Timestamp: at.UnixNano() / int64(time.Millisecond),
	}}
	if ext, ok := r.(*pms.ExtendedReading); ok {
		m.Count_03 = uint32(ext.Count03)
		m.Count_05 = uint32(ext.Count05)
		m.Count_10 = uint32(ext.Count10)
		m.Count_25 = uint32(ext.Count25)
		m.Temperature = int32(ext.Temperature)
		m.Humidity = uint32(ext.Humidity)
		m.ErrorCode = uint32(ext.ErrorCode)
		m.Version = uint32(ext.Version)
	}
	return m
}

// NewMessage implements Message.
func (m *Reading) NewMessage() fx.Message { return &Reading{} }

// TypeID implements SerializableMessage.
func (m *Reading) TypeID() uint32 { return ReadingTypeID }

// Serializable implements SerializableMessage.
func (m *Reading) Serializable() proto.Message { return &m.Reading }

// Time returns the acquisition time.
func (m *Reading) Time() time.Time {
	return time.Unix(0, m.Timestamp*int64(time.Millisecond))
}

// SensorReading reconstructs the decoded frame. The raw frame is preferred
// when present.
func (m *Reading) SensorReading() (pms.Reading, error) {
	if len(m.Raw) > 0 {
		f, err := pms.ParseFrame(m.Raw)
		if err != nil {
			return nil, err
		}
		return pms.Decode(f), nil
	}
	std := pms.PM{PM1: uint16(m.StdPm1), PM25: uint16(m.StdPm25), PM10: uint16(m.StdPm10)}
	atm := pms.PM{PM1: uint16(m.AtmPm1), PM25: uint16(m.AtmPm25), PM10: uint16(m.AtmPm10)}
	if pms.Variant(m.Variant) == pms.Compact {
		return &pms.CompactReading{Std: std, Atm: atm, Length: uint16(m.Length)}, nil
	}
	return &pms.ExtendedReading{
		Std:         std,
		Atm:         atm,
		Count03:     uint16(m.Count_03),
		Count05:     uint16(m.Count_05),
		Count10:     uint16(m.Count_10),
		Count25:     uint16(m.Count_25),
		Temperature: int16(m.Temperature),
		Humidity:    uint16(m.Humidity),
		ErrorCode:   byte(m.ErrorCode),
		Version:     byte(m.Version),
	}, nil
}

// ReadFailure is the event of a failed read.
type ReadFailure struct {
	pb.ReadFailure
}

// NewReadFailure creates a ReadFailure event from the error returned by a read.
func NewReadFailure(err error, at time.Time) *ReadFailure {
	m := &ReadFailure{ReadFailure: pb.ReadFailure{
		Kind:      int32(pms.KindOf(err)),
		Code:      -1,
		Message:   err.Error(),
		Timestamp: at.UnixNano() / int64(time.Millisecond),
	}}
	var re *pms.ReadError
	if errors.As(err, &re) {
		m.Code = int32(re.Code())
	}
	return m
}

// NewMessage implements Message.
func (m *ReadFailure) NewMessage() fx.Message { return &ReadFailure{} }

// TypeID implements SerializableMessage.
func (m *ReadFailure) TypeID() uint32 { return ReadFailureTypeID }

// Serializable implements SerializableMessage.
func (m *ReadFailure) Serializable() proto.Message { return &m.ReadFailure }

// ErrorKind returns the failure classification.
func (m *ReadFailure) ErrorKind() pms.ErrorKind { return pms.ErrorKind(m.Kind) }

// Error implements error.
func (m *ReadFailure) Error() string { return m.Message }

// TypeID Groups
const (
	GroupSensor uint32 = 0x00010000
	GroupCustom uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	ReadingTypeID     uint32 = TypeIDKindEvent | GroupSensor | 0x0001
	ReadFailureTypeID uint32 = TypeIDKindEvent | GroupSensor | 0x0002
)
