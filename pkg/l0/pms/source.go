package pms

import (
	"io"
	"os"
)

// Source is a half-duplex byte channel the sensor writes frames into.
// A Source may also implement `Err() error` to report a broken channel,
// which fails the read immediately instead of timing out.
type Source interface {
	// Available returns the number of bytes readable without blocking.
	Available() int
	// ReadByte reads the next byte, only valid when Available() > 0.
	ReadByte() (byte, error)
}

type errSource interface {
	Err() error
}

// StreamSource adapts an io.Reader to Source. The reader must return
// promptly when idle, e.g. a serial port with a short read timeout which
// returns (0, nil) or a timeout error.
type StreamSource struct {
	Reader io.Reader

	pending []byte
	chunk   [FrameSize]byte
	err     error
}

// NewStreamSource creates a StreamSource.
func NewStreamSource(r io.Reader) *StreamSource {
	return &StreamSource{Reader: r}
}

// Available implements Source.
func (s *StreamSource) Available() int {
	if len(s.pending) == 0 && s.err == nil {
		n, err := s.Reader.Read(s.chunk[:])
		s.pending = s.chunk[:n]
		if err != nil && err != io.EOF && !os.IsTimeout(err) {
			s.err = err
		}
	}
	return len(s.pending)
}

// ReadByte implements Source.
func (s *StreamSource) ReadByte() (byte, error) {
	if len(s.pending) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		return 0, io.ErrNoProgress
	}
	b := s.pending[0]
	s.pending = s.pending[1:]
	return b, nil
}

// Err returns the error which broke the underlying reader.
func (s *StreamSource) Err() error {
	return s.err
}
