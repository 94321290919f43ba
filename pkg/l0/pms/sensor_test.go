package pms

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testPort answers each request command with the next queued response.
type testPort struct {
	responses [][]byte
	pending   bytes.Buffer
	written   bytes.Buffer
	readErr   error
	writeErr  error
}

func (p *testPort) Write(b []byte) (int, error) {
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	p.written.Write(b)
	if bytes.Equal(b, CmdRequestRead) && len(p.responses) > 0 {
		p.pending.Write(p.responses[0])
		p.responses = p.responses[1:]
	}
	return len(b), nil
}

func (p *testPort) Read(b []byte) (int, error) {
	if p.readErr != nil {
		return 0, p.readErr
	}
	if p.pending.Len() == 0 {
		return 0, nil
	}
	// deliver a few bytes at a time like a slow serial line.
	if len(b) > 3 {
		b = b[:3]
	}
	return p.pending.Read(b)
}

var testTiming = Timing{
	AfterPassive: time.Millisecond,
	AfterRequest: time.Millisecond,
	Poll:         time.Millisecond,
	SyncTimeout:  60 * time.Millisecond,
	BodyTimeout:  60 * time.Millisecond,
}

func newTestSensor(t *testing.T, responses ...[]byte) (*Sensor, *testPort) {
	port := &testPort{responses: responses}
	s := NewSensor(port)
	require.NoError(t, s.SetTiming(testTiming))
	return s, port
}

func TestSensorRead(t *testing.T) {
	wire := extendedWire(215)
	s, port := newTestSensor(t, append([]byte{0x00, 0x42}, wire...))

	_, err := s.Reading()
	require.ErrorIs(t, err, ErrNoData)

	require.NoError(t, s.Begin())
	r, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, Extended, r.Variant())
	require.Equal(t, NoError, s.LastErr())
	require.Equal(t, append(append([]byte{}, CmdPassiveMode...), CmdRequestRead...), port.written.Bytes())

	pm25, err := s.PM25()
	require.NoError(t, err)
	require.Equal(t, 50, pm25)
	pm1, err := s.PM1()
	require.NoError(t, err)
	require.Equal(t, 40, pm1)
	pm10, err := s.PM10()
	require.NoError(t, err)
	require.Equal(t, 60, pm10)
	temp, err := s.Temperature()
	require.NoError(t, err)
	require.InDelta(t, 21.5, temp, 1e-9)
	humi, err := s.Humidity()
	require.NoError(t, err)
	require.InDelta(t, 12.0, humi, 1e-9)
	variant, err := s.Variant()
	require.NoError(t, err)
	require.Equal(t, Extended, variant)
	f, err := s.Frame()
	require.NoError(t, err)
	require.Equal(t, wire, f.Bytes())
}

func TestSensorReadCompact(t *testing.T) {
	s, _ := newTestSensor(t, compactWire())
	r, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, Compact, r.Variant())
	pm25, err := s.PM25()
	require.NoError(t, err)
	require.Equal(t, 5, pm25)
	_, err = s.Temperature()
	require.ErrorIs(t, err, ErrNotSupported)
	_, err = s.Humidity()
	require.ErrorIs(t, err, ErrNotSupported)
}

func TestSensorReadFailures(t *testing.T) {
	corrupted := extendedWire(100)
	corrupted[len(corrupted)-1] ^= 0x01

	testCases := []struct {
		name     string
		response []byte
		kind     ErrorKind
	}{
		{"checksum", corrupted, ChecksumError},
		{"silence", nil, SyncTimeout},
		{"noise only", bytes.Repeat([]byte{0x4d, 0x42, 0x00}, 6), SyncTimeout},
		{"zero length", []byte{0x42, 0x4d, 0x00, 0x00, 0x01, 0x02}, ZeroLength},
		{"truncated", extendedWire(100)[:20], BodyTimeout},
		{"length only", []byte{0x42, 0x4d}, BodyTimeout},
		{"oversized", []byte{0x42, 0x4d, 0x00, 0x40}, BodyTimeout},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSensor(t, compactWire(), tc.response)
			_, err := s.Read()
			require.NoError(t, err)
			_, err = s.PM25()
			require.NoError(t, err)

			r, err := s.Read()
			require.Nil(t, r)
			require.Error(t, err)
			require.Equal(t, tc.kind, KindOf(err))
			require.Equal(t, tc.kind, s.LastErr())

			// a failed read clears the stored reading.
			_, err = s.PM25()
			require.ErrorIs(t, err, ErrNoData)
			_, err = s.Variant()
			require.ErrorIs(t, err, ErrNoData)
			_, err = s.Temperature()
			require.ErrorIs(t, err, ErrNoData)
		})
	}
}

func TestSensorRecoversAfterFailure(t *testing.T) {
	s, _ := newTestSensor(t, []byte{0x42, 0x4d, 0x00, 0x00}, extendedWire(10))
	_, err := s.Read()
	require.ErrorIs(t, err, ErrZeroLength)
	_, err = s.Frame()
	require.ErrorIs(t, err, ErrNoData)
	r, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, Extended, r.Variant())
	require.Equal(t, NoError, s.LastErr())
	_, err = s.Frame()
	require.NoError(t, err)
}

func TestSensorSyncTimeoutBounded(t *testing.T) {
	s, _ := newTestSensor(t)
	start := time.Now()
	_, err := s.Read()
	elapsed := time.Since(start)
	require.ErrorIs(t, err, ErrSyncTimeout)
	require.True(t, elapsed >= testTiming.SyncTimeout, "returned after %v", elapsed)
	// generous margin for slow CI schedulers.
	require.True(t, elapsed < testTiming.SyncTimeout+500*time.Millisecond, "returned after %v", elapsed)
}

func TestSensorSourceErrors(t *testing.T) {
	s, port := newTestSensor(t)
	port.readErr = errors.New("device unplugged")
	_, err := s.Read()
	require.ErrorIs(t, err, ErrSource)
	require.Contains(t, err.Error(), "device unplugged")

	s, port = newTestSensor(t)
	port.writeErr = io.ErrClosedPipe
	_, err = s.Read()
	require.ErrorIs(t, err, ErrSource)
	require.ErrorIs(t, err, io.ErrClosedPipe)
	require.ErrorIs(t, s.Begin(), io.ErrClosedPipe)
}

func TestSensorConfigureBeforeStart(t *testing.T) {
	s, _ := newTestSensor(t, compactWire())
	require.NoError(t, s.SetDelay(AfterPassiveCmd, 2*time.Millisecond))
	require.NoError(t, s.SetDelay(AfterRequestCmd, 3*time.Millisecond))
	require.NoError(t, s.SetDelay(SerialRead, 0))
	require.Error(t, s.SetDelay(SerialRead, -time.Millisecond))
	require.Error(t, s.SetDelay(DelayKind(9), time.Millisecond))

	timing := s.Timing()
	require.Equal(t, 2*time.Millisecond, timing.AfterPassive)
	require.Equal(t, 3*time.Millisecond, timing.AfterRequest)
	require.Equal(t, time.Duration(0), timing.Poll)
	require.Equal(t, testTiming.SyncTimeout, timing.SyncTimeout)

	_, err := s.Read()
	require.NoError(t, err)
	require.ErrorIs(t, s.SetDelay(SerialRead, time.Millisecond), ErrStarted)
	require.ErrorIs(t, s.SetTiming(DefaultTiming()), ErrStarted)
}

func TestErrorKind(t *testing.T) {
	require.Equal(t, "sync timeout", SyncTimeout.String())
	require.Equal(t, "ErrorKind(42)", ErrorKind(42).String())
	require.Equal(t, NoError, KindOf(nil))
	require.Equal(t, SourceError, KindOf(errors.New("x")))
	require.Equal(t, -1, (&ReadError{Kind: SourceError}).Code())
	require.Equal(t, 6, (&ReadError{Kind: SignatureError}).Code())
	require.Equal(t, "checksum error (PMS3003): bad", (&ReadError{Kind: ChecksumError, Variant: Compact, Msg: "bad"}).Error())
	require.False(t, errors.Is(ErrZeroLength, ErrBodyTimeout))
}

func TestParseDelayKind(t *testing.T) {
	for k := AfterPassiveCmd; k <= SerialRead; k++ {
		parsed, err := ParseDelayKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}
	_, err := ParseDelayKind("write")
	require.Error(t, err)
}
