package comm

import (
	"context"
	"io"
	"sync"

	fx "github.com/robotalks/pms.go/pkg/framework"
	"github.com/robotalks/pms.go/pkg/l1"
	"github.com/robotalks/pms.go/pkg/l1/msgs"
)

// Pipe sends outcomes as typed event packets.
type Pipe struct {
	Writer PacketWriter

	sendLock sync.Mutex
	seq      uint32
}

// NewPipe creates a Pipe with given PacketWriter.
func NewPipe(w PacketWriter) *Pipe {
	return &Pipe{Writer: w}
}

// EventMsg converts an outcome into the event message.
func EventMsg(o l1.Outcome) fx.Message {
	switch {
	case o.Err != nil:
		return msgs.NewReadFailure(o.Err, o.Time)
	case o.Frame != nil:
		return msgs.NewFrameReading(o.Frame, o.Time)
	}
	return msgs.NewReading(o.Reading, o.Time)
}

// Publish implements l1.Publisher.
func (p *Pipe) Publish(ctx context.Context, o l1.Outcome) error {
	return p.SendEventMsg(EventMsg(o))
}

// SendEventMsg sends a message which must be an event.
func (p *Pipe) SendEventMsg(msg fx.Message) error {
	typed, err := msgs.TypedFrom(msg)
	if err != nil {
		panic(err)
	}
	if !typed.IsEvent() {
		panic("message is not an event")
	}
	return p.SendTyped(typed)
}

// SendTyped sends a Typed message with the next sequence number.
func (p *Pipe) SendTyped(typed *msgs.Typed) error {
	p.sendLock.Lock()
	defer p.sendLock.Unlock()
	p.seq++
	typed.Sequence = p.seq
	pkt, err := typed.Encode()
	if err != nil {
		return err
	}
	return p.Writer.WritePacket(pkt)
}

// Close implements io.Closer.
func (p *Pipe) Close() error {
	if closer, ok := p.Writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// EventHandler receives decoded events.
type EventHandler func(fx.Message, *msgs.Typed) error

// ReceiveEvents decodes packets from r until it fails. Packets of unknown
// types are skipped.
func ReceiveEvents(ctx context.Context, r PacketReader, handler EventHandler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		pkt, err := r.ReadPacket()
		if err != nil {
			return err
		}
		msg, typed, err := msgs.DecodeMessage(pkt)
		if err != nil {
			if _, unknown := err.(*msgs.ErrUnknownType); unknown {
				continue
			}
			return err
		}
		if err = handler(msg, typed); err != nil {
			return err
		}
	}
}
