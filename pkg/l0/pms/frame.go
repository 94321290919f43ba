package pms

import (
	"encoding/binary"
	"fmt"
)

// Frame layout constants.
const (
	// FrameSize is the capacity of the frame buffer.
	FrameSize = 32
	// ExtendedLength is the declared length of a PMS5003T frame.
	ExtendedLength = 28
	// CompactLength is the declared length of a PMS3003 frame.
	CompactLength = 20

	Sig1 byte = 0x42
	Sig2 byte = 0x4d

	headerSize   = 4
	checksumSize = 2
)

var (
	// CmdPassiveMode switches the sensor to passive (request/response) mode.
	CmdPassiveMode = []byte{0x42, 0x4d, 0xe1, 0x00, 0x00, 0x01, 0x70}
	// CmdRequestRead asks the sensor for one frame in passive mode.
	CmdRequestRead = []byte{0x42, 0x4d, 0xe2, 0x00, 0x00, 0x01, 0x71}
)

// Variant is the payload layout of a frame.
type Variant int

const (
	// Extended is the 32-byte PMS5003T layout with temperature and humidity.
	Extended Variant = iota
	// Compact is the shorter PMS3003 layout.
	Compact
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Extended:
		return "PMS5003T"
	case Compact:
		return "PMS3003"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// VariantOf resolves the variant from a declared length.
func VariantOf(declaredLen uint16) Variant {
	if declaredLen == ExtendedLength {
		return Extended
	}
	return Compact
}

// Frame is a validated frame. It's immutable once created.
type Frame struct {
	raw   [FrameSize]byte
	words [FrameSize / 2]uint16
}

// normalize converts the big-endian pairs after the signature into host
// order words. words[i] holds bytes 2i and 2i+1, words[0] stays zero.
func normalize(buf *[FrameSize]byte) (words [FrameSize / 2]uint16) {
	for i := 2; i < FrameSize; i += 2 {
		words[i/2] = binary.BigEndian.Uint16(buf[i:])
	}
	return
}

// checksum sums bytes modulo 65536.
func checksum(b []byte) (sum uint16) {
	for _, c := range b {
		sum += uint16(c)
	}
	return
}

// newFrame normalizes and validates a complete buffer. The declared length
// must already be known to fit the buffer.
func newFrame(buf *[FrameSize]byte) (*Frame, error) {
	f := &Frame{raw: *buf, words: normalize(buf)}
	n := f.checksumOffset()
	if sum, want := checksum(f.raw[:n]), f.Checksum(); sum != want {
		return nil, &ReadError{
			Kind:    ChecksumError,
			Variant: f.Variant(),
			Msg:     fmt.Sprintf("computed %04x, transmitted %04x", sum, want),
		}
	}
	if f.raw[0] != Sig1 || f.raw[1] != Sig2 {
		return nil, &ReadError{
			Kind: SignatureError,
			Msg:  fmt.Sprintf("got %02x %02x", f.raw[0], f.raw[1]),
		}
	}
	return f, nil
}

// ParseFrame validates a complete wire frame. Bytes before the signature
// are skipped, trailing bytes after the frame are ignored.
func ParseFrame(b []byte) (*Frame, error) {
	var p Parser
	p.Reset()
	for _, c := range b {
		if pr := p.Parse(c); pr.Err != nil {
			return nil, pr.Err
		} else if pr.Frame != nil {
			return pr.Frame, nil
		}
	}
	return nil, p.Timeout().Err
}

func (f *Frame) checksumOffset() int {
	return int(f.Len()) + headerSize - checksumSize
}

// Len returns the declared length.
func (f *Frame) Len() uint16 {
	return f.words[1]
}

// Variant returns the variant resolved from the declared length.
func (f *Frame) Variant() Variant {
	return VariantOf(f.Len())
}

// Checksum returns the transmitted checksum.
func (f *Frame) Checksum() uint16 {
	return binary.BigEndian.Uint16(f.raw[f.checksumOffset():])
}

// Word returns the 16-bit field at byte offset off, which must be even.
func (f *Frame) Word(off int) uint16 {
	return f.words[off/2]
}

// Byte returns the raw byte at offset off.
func (f *Frame) Byte(off int) byte {
	return f.raw[off]
}

// Bytes returns the frame as received on the wire.
func (f *Frame) Bytes() []byte {
	b := make([]byte, int(f.Len())+headerSize)
	copy(b, f.raw[:])
	return b
}

// String returns a debug representation of the frame.
func (f *Frame) String() string {
	return fmt.Sprintf("Frame{variant=%s, len=%d, checksum=%04x}", f.Variant(), f.Len(), f.Checksum())
}
