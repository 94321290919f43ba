package pms

import "fmt"

// Parser assembles frames from bytes received.
type Parser struct {
	state   parseState
	window  [2]byte
	buf     [FrameSize]byte
	recvLen int
	dataLen int
}

// SyncState indicates the progress of frame acquisition.
type SyncState int

const (
	// SyncStateSyncing means the parser is looking for the signature.
	SyncStateSyncing SyncState = iota
	// SyncStateReceiving means the signature matched and the body is being received.
	SyncStateReceiving
)

// String implements fmt.Stringer.
func (s SyncState) String() string {
	if s == SyncStateReceiving {
		return "receiving"
	}
	return "syncing"
}

// ParseResult indicates the result after one parsing step.
// At most one of Frame and Err is set.
type ParseResult struct {
	State SyncState
	Frame *Frame
	Err   error
}

type parseState int

const (
	stateSync parseState = iota // sliding the window over incoming bytes
	stateBody                   // signature consumed, filling buf
)

var signature = [2]byte{Sig1, Sig2}

// State gets the current sync state.
func (p *Parser) State() SyncState {
	if p.state == stateBody {
		return SyncStateReceiving
	}
	return SyncStateSyncing
}

// Reset discards any partial frame and starts a fresh signature window.
func (p *Parser) Reset() {
	p.state = stateSync
	p.window = [2]byte{}
	p.buf = [FrameSize]byte{}
	p.recvLen, p.dataLen = 0, 0
}

// Parse consumes one byte.
func (p *Parser) Parse(b byte) (pr ParseResult) {
	switch p.state {
	case stateSync:
		p.window[0], p.window[1] = p.window[1], b
		if p.window == signature {
			p.buf[0], p.buf[1] = Sig1, Sig2
			p.recvLen, p.dataLen = 2, 0
			p.state = stateBody
		}
	case stateBody:
		p.buf[p.recvLen] = b
		p.recvLen++
		if p.recvLen == headerSize {
			// length is read in wire order, before normalization.
			p.dataLen = int(p.buf[2])<<8 | int(p.buf[3])
			if p.dataLen == 0 {
				return p.fail(&ReadError{Kind: ZeroLength})
			}
			if p.dataLen+headerSize > FrameSize {
				return p.fail(&ReadError{
					Kind: BodyTimeout,
					Msg:  fmt.Sprintf("declared length %d exceeds %d bytes", p.dataLen, FrameSize),
				})
			}
		}
		if p.recvLen >= headerSize && p.recvLen >= p.dataLen+headerSize {
			return p.frameReady()
		}
	}
	pr.State = p.State()
	return
}

// Timeout notifies the parser the time budget of the current phase expired.
// It returns the error of that phase and resets the parser.
func (p *Parser) Timeout() (pr ParseResult) {
	if p.state == stateBody {
		msg := fmt.Sprintf("%d bytes received", p.recvLen)
		if p.dataLen > 0 {
			msg += fmt.Sprintf(", %d expected", p.dataLen+headerSize)
		}
		return p.fail(&ReadError{Kind: BodyTimeout, Msg: msg})
	}
	return p.fail(&ReadError{Kind: SyncTimeout})
}

func (p *Parser) fail(err error) (pr ParseResult) {
	p.Reset()
	pr.State, pr.Err = p.State(), err
	return
}

func (p *Parser) frameReady() (pr ParseResult) {
	f, err := newFrame(&p.buf)
	p.Reset()
	pr.State, pr.Frame, pr.Err = p.State(), f, err
	return
}
