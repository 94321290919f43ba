package sim

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/pms.go/pkg/l0/pms"
)

// Fault alters the response to one request.
type Fault int

// Faults
const (
	FaultNone Fault = iota
	// FaultSilent drops the response.
	FaultSilent
	// FaultChecksum corrupts the transmitted checksum.
	FaultChecksum
	// FaultZeroLength sends a header declaring zero length.
	FaultZeroLength
	// FaultTruncated sends only the first half of the frame.
	FaultTruncated
	// FaultNoise prefixes the frame with garbage.
	FaultNoise
)

var faultNames = map[Fault]string{
	FaultNone:       "none",
	FaultSilent:     "silent",
	FaultChecksum:   "checksum",
	FaultZeroLength: "zero-length",
	FaultTruncated:  "truncated",
	FaultNoise:      "noise",
}

// String implements fmt.Stringer.
func (f Fault) String() string {
	if name, ok := faultNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Fault(%d)", int(f))
}

// ParseFault parses the name of a fault.
func ParseFault(name string) (Fault, error) {
	for f, n := range faultNames {
		if n == name {
			return f, nil
		}
	}
	return FaultNone, fmt.Errorf("unknown fault %q", name)
}

// DefaultActiveInterval is how often a device in active mode sends frames.
const DefaultActiveInterval = time.Second

// Device is a simulated sensor implementing io.ReadWriteCloser like a
// serial port. It starts in active mode and switches to passive mode on
// the passive mode command, after which every request command is answered
// with one frame.
type Device struct {
	Variant pms.Variant
	Air     *Air
	// ReadTimeout is how long Read waits for data before returning (0, nil).
	ReadTimeout    time.Duration
	ActiveInterval time.Duration

	lock       sync.Mutex
	cond       *sync.Cond
	out        bytes.Buffer
	cmd        []byte
	faults     []Fault
	passive    bool
	closed     bool
	lastActive time.Time
	requests   int
}

// NewDevice creates a Device of the variant.
func NewDevice(v pms.Variant, seed int64) *Device {
	d := &Device{
		Variant:        v,
		Air:            NewAir(seed),
		ReadTimeout:    5 * time.Millisecond,
		ActiveInterval: DefaultActiveInterval,
	}
	d.cond = sync.NewCond(&d.lock)
	return d
}

// Inject queues faults applied to the following responses, one per response.
func (d *Device) Inject(faults ...Fault) {
	d.lock.Lock()
	d.faults = append(d.faults, faults...)
	d.lock.Unlock()
}

// Passive tells if the device is in passive mode.
func (d *Device) Passive() bool {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.passive
}

// Requests returns the number of request commands received.
func (d *Device) Requests() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.requests
}

// Write implements io.Writer. Commands may arrive in pieces; unknown bytes
// are discarded until a command signature is found.
func (d *Device) Write(b []byte) (int, error) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.closed {
		return 0, io.ErrClosedPipe
	}
	d.cmd = append(d.cmd, b...)
	for len(d.cmd) >= len(pms.CmdRequestRead) {
		if d.cmd[0] != pms.Sig1 || d.cmd[1] != pms.Sig2 {
			d.cmd = d.cmd[1:]
			continue
		}
		cmd := d.cmd[:len(pms.CmdRequestRead)]
		switch {
		case bytes.Equal(cmd, pms.CmdPassiveMode):
			glog.V(3).Info("sim: passive mode")
			d.passive = true
		case bytes.Equal(cmd, pms.CmdRequestRead):
			d.requests++
			if d.passive {
				d.respond()
			}
		default:
			glog.V(3).Infof("sim: unknown command % x", cmd)
		}
		d.cmd = d.cmd[len(cmd):]
	}
	return len(b), nil
}

// respond appends the next frame to the output, must be called with lock held.
func (d *Device) respond() {
	d.Air.Step()
	frame := d.Air.Reading(d.Variant).Bytes()
	fault := FaultNone
	if len(d.faults) > 0 {
		fault, d.faults = d.faults[0], d.faults[1:]
	}
	switch fault {
	case FaultSilent:
		frame = nil
	case FaultChecksum:
		frame[len(frame)-1]++
	case FaultZeroLength:
		frame = []byte{pms.Sig1, pms.Sig2, 0, 0}
	case FaultTruncated:
		frame = frame[:len(frame)/2]
	case FaultNoise:
		frame = append([]byte{0x00, pms.Sig2, 0xff, pms.Sig1, 0x00}, frame...)
	}
	if glog.V(3) {
		glog.Infof("sim: respond fault=%s % x", fault, frame)
	}
	d.out.Write(frame)
	d.cond.Broadcast()
}

// Read implements io.Reader. It returns (0, nil) when no data arrives
// within ReadTimeout, as a serial port with a read timeout does.
func (d *Device) Read(b []byte) (int, error) {
	deadline := time.Now().Add(d.ReadTimeout)
	d.lock.Lock()
	defer d.lock.Unlock()
	for {
		if d.closed {
			return 0, io.EOF
		}
		if !d.passive {
			d.activeFrame()
		}
		if d.out.Len() > 0 {
			return d.out.Read(b)
		}
		wait := time.Until(deadline)
		if wait <= 0 {
			return 0, nil
		}
		// cond has no timed wait, so wake up through a timer.
		timer := time.AfterFunc(wait, func() {
			d.lock.Lock()
			d.cond.Broadcast()
			d.lock.Unlock()
		})
		d.cond.Wait()
		timer.Stop()
	}
}

func (d *Device) activeFrame() {
	interval := d.ActiveInterval
	if interval <= 0 {
		interval = DefaultActiveInterval
	}
	if now := time.Now(); now.Sub(d.lastActive) >= interval {
		d.lastActive = now
		d.respond()
	}
}

// Close implements io.Closer.
func (d *Device) Close() error {
	d.lock.Lock()
	d.closed = true
	d.cond.Broadcast()
	d.lock.Unlock()
	return nil
}
