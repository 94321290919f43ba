// Package stream frames packets over byte streams, e.g. record files.
package stream

import (
	"encoding/binary"
	"io"
)

// ReadWriter implements PacketReadWriter.
// Each packet is prefixed by 4-byte (little-endian) indicate the length.
type ReadWriter struct {
	io.ReadWriter
}

// New creates a ReadWriter with io.ReadWriter.
func New(s io.ReadWriter) *ReadWriter {
	return &ReadWriter{s}
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	return ReadPacket(p)
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return WritePacket(p, pkt)
}

// Close closes the underlying stream if it's closable.
func (p *ReadWriter) Close() error {
	if closer, ok := p.ReadWriter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Reader reads packets from a read-only stream, e.g. when replaying a
// record file.
type Reader struct {
	io.Reader
}

// ReadPacket implements PacketReader.
func (p *Reader) ReadPacket() ([]byte, error) {
	return ReadPacket(p)
}

// Writer writes packets to a write-only stream, e.g. a record file.
type Writer struct {
	io.Writer
}

// WritePacket implements PacketWriter.
func (p *Writer) WritePacket(pkt []byte) error {
	return WritePacket(p, pkt)
}

// Close closes the underlying stream if it's closable.
func (p *Writer) Close() error {
	if closer, ok := p.Writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// ReadPacket reads a length prefixed packet. A clean end of stream is
// reported as io.EOF, a partial packet as io.ErrUnexpectedEOF.
func ReadPacket(r io.Reader) ([]byte, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	pkt := make([]byte, size)
	if _, err := io.ReadFull(r, pkt); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return pkt, nil
}

// WritePacket writes a length prefixed packet.
func WritePacket(w io.Writer, pkt []byte) error {
	size := uint32(len(pkt))
	if err := binary.Write(w, binary.LittleEndian, size); err != nil {
		return err
	}
	_, err := w.Write(pkt[:size])
	return err
}
