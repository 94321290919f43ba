package pms

import (
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"
)

// DelayKind names a tunable delay.
type DelayKind int

const (
	// AfterPassiveCmd is the settle time after switching to passive mode.
	AfterPassiveCmd DelayKind = iota
	// AfterRequestCmd is the settle time after requesting a reading.
	AfterRequestCmd
	// SerialRead is the poll interval between byte availability checks.
	SerialRead
)

// String implements fmt.Stringer.
func (k DelayKind) String() string {
	switch k {
	case AfterPassiveCmd:
		return "passive"
	case AfterRequestCmd:
		return "request"
	case SerialRead:
		return "read"
	}
	return fmt.Sprintf("DelayKind(%d)", int(k))
}

// ParseDelayKind parses the name returned by DelayKind.String.
func ParseDelayKind(name string) (DelayKind, error) {
	for k := AfterPassiveCmd; k <= SerialRead; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown delay %q", name)
}

// Timing paces reads against the slow sampling cycle of the sensor.
type Timing struct {
	AfterPassive time.Duration `yaml:"after_passive"`
	AfterRequest time.Duration `yaml:"after_request"`
	Poll         time.Duration `yaml:"poll"`
	SyncTimeout  time.Duration `yaml:"sync_timeout"`
	BodyTimeout  time.Duration `yaml:"body_timeout"`
}

// DefaultTiming returns the timing used with real sensors.
func DefaultTiming() Timing {
	return Timing{
		AfterPassive: 100 * time.Millisecond,
		AfterRequest: 30 * time.Millisecond,
		Poll:         5 * time.Millisecond,
		SyncTimeout:  1300 * time.Millisecond,
		BodyTimeout:  1500 * time.Millisecond,
	}
}

// Sensor reads frames from a PMS5003T/PMS3003 and stores the latest one.
// It's not safe for concurrent use. Timing must be configured before the
// first call of Begin or Read.
type Sensor struct {
	source  Source
	writer  io.Writer
	timing  Timing
	started bool

	reading Reading
	frame   *Frame
	lastErr ErrorKind
}

// NewSensor creates a Sensor over a serial port like stream.
func NewSensor(rw io.ReadWriter) *Sensor {
	return NewSensorWith(NewStreamSource(rw), rw)
}

// NewSensorWith creates a Sensor with a custom Source. Commands are
// written to w.
func NewSensorWith(src Source, w io.Writer) *Sensor {
	return &Sensor{source: src, writer: w, timing: DefaultTiming()}
}

// Timing returns the current timing.
func (s *Sensor) Timing() Timing {
	return s.timing
}

// SetTiming replaces the timing. Zero values keep the current ones.
func (s *Sensor) SetTiming(t Timing) error {
	if s.started {
		return ErrStarted
	}
	update := func(dst *time.Duration, val time.Duration) {
		if val != 0 {
			*dst = val
		}
	}
	update(&s.timing.AfterPassive, t.AfterPassive)
	update(&s.timing.AfterRequest, t.AfterRequest)
	update(&s.timing.Poll, t.Poll)
	update(&s.timing.SyncTimeout, t.SyncTimeout)
	update(&s.timing.BodyTimeout, t.BodyTimeout)
	return nil
}

// SetDelay changes one of the delays.
func (s *Sensor) SetDelay(kind DelayKind, d time.Duration) error {
	if s.started {
		return ErrStarted
	}
	if d < 0 {
		return fmt.Errorf("negative delay %v", d)
	}
	switch kind {
	case AfterPassiveCmd:
		s.timing.AfterPassive = d
	case AfterRequestCmd:
		s.timing.AfterRequest = d
	case SerialRead:
		s.timing.Poll = d
	default:
		return fmt.Errorf("unknown delay %v", kind)
	}
	return nil
}

// Begin switches the sensor to passive mode.
func (s *Sensor) Begin() error {
	s.started = true
	if _, err := s.writer.Write(CmdPassiveMode); err != nil {
		return &ReadError{Kind: SourceError, Msg: "write passive mode command", Err: err}
	}
	time.Sleep(s.timing.AfterPassive)
	return nil
}

// Read requests one frame and runs it through the whole pipeline. On
// success the reading is stored, on failure the stored reading is cleared
// and the error kind is recorded.
func (s *Sensor) Read() (Reading, error) {
	s.started = true
	if _, err := s.writer.Write(CmdRequestRead); err != nil {
		return nil, s.fail(&ReadError{Kind: SourceError, Msg: "write request command", Err: err})
	}
	time.Sleep(s.timing.AfterRequest)

	f, err := s.acquire()
	if err != nil {
		return nil, s.fail(err)
	}
	s.reading, s.frame, s.lastErr = Decode(f), f, NoError
	if glog.V(2) {
		glog.Infof("RCV % x %s", f.Bytes(), s.reading)
	}
	return s.reading, nil
}

func (s *Sensor) fail(err error) error {
	s.reading, s.frame, s.lastErr = nil, nil, KindOf(err)
	glog.V(3).Infof("read failed: %v", err)
	return err
}

// acquire scans for the signature and receives the body, each phase with
// its own time budget measured from the start of the phase.
func (s *Sensor) acquire() (*Frame, error) {
	var parser Parser
	parser.Reset()
	state := parser.State()
	deadline := time.Now().Add(s.timing.SyncTimeout)
	for {
		if s.source.Available() > 0 {
			b, err := s.source.ReadByte()
			if err != nil {
				return nil, &ReadError{Kind: SourceError, Err: err}
			}
			pr := parser.Parse(b)
			if pr.Err != nil {
				return nil, pr.Err
			}
			if pr.Frame != nil {
				return pr.Frame, nil
			}
			if pr.State != state {
				state = pr.State
				deadline = time.Now().Add(s.timing.BodyTimeout)
			}
		} else if es, ok := s.source.(errSource); ok && es.Err() != nil {
			return nil, &ReadError{Kind: SourceError, Err: es.Err()}
		}
		if !time.Now().Before(deadline) {
			return nil, parser.Timeout().Err
		}
		time.Sleep(s.timing.Poll)
	}
}

// LastErr returns the error kind of the last read.
func (s *Sensor) LastErr() ErrorKind {
	return s.lastErr
}

// Reading returns the stored reading.
func (s *Sensor) Reading() (Reading, error) {
	if s.reading == nil {
		return nil, ErrNoData
	}
	return s.reading, nil
}

// Frame returns the frame of the stored reading as received.
func (s *Sensor) Frame() (*Frame, error) {
	if s.frame == nil {
		return nil, ErrNoData
	}
	return s.frame, nil
}

// Variant returns the variant of the stored reading.
func (s *Sensor) Variant() (Variant, error) {
	r, err := s.Reading()
	if err != nil {
		return 0, err
	}
	return r.Variant(), nil
}

// PM1 returns PM1.0 in µg/m³ (atmospheric environment).
func (s *Sensor) PM1() (int, error) {
	r, err := s.Reading()
	if err != nil {
		return 0, err
	}
	return int(r.Atmospheric().PM1), nil
}

// PM25 returns PM2.5 in µg/m³ (atmospheric environment).
func (s *Sensor) PM25() (int, error) {
	r, err := s.Reading()
	if err != nil {
		return 0, err
	}
	return int(r.Atmospheric().PM25), nil
}

// PM10 returns PM10 in µg/m³ (atmospheric environment).
func (s *Sensor) PM10() (int, error) {
	r, err := s.Reading()
	if err != nil {
		return 0, err
	}
	return int(r.Atmospheric().PM10), nil
}

// Temperature returns the temperature in °C.
func (s *Sensor) Temperature() (float64, error) {
	ext, err := s.extended()
	if err != nil {
		return 0, err
	}
	return ext.Celsius(), nil
}

// Humidity returns the relative humidity in %RH.
func (s *Sensor) Humidity() (float64, error) {
	ext, err := s.extended()
	if err != nil {
		return 0, err
	}
	return ext.RelativeHumidity(), nil
}

func (s *Sensor) extended() (*ExtendedReading, error) {
	r, err := s.Reading()
	if err != nil {
		return nil, err
	}
	ext, ok := r.(*ExtendedReading)
	if !ok {
		return nil, ErrNotSupported
	}
	return ext, nil
}
