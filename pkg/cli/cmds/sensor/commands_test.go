package sensor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pms.go/pkg/cli/sh"
	"github.com/robotalks/pms.go/pkg/l0/pms"
	"github.com/robotalks/pms.go/pkg/l1/env"
	pb "github.com/robotalks/pms.go/pkg/proto/pms/v1"
)

func newTestShell(t *testing.T, device string) *sh.Shell {
	conf := env.NewConfig()
	conf.Port.Device = device
	conf.Port.ReadTimeout = time.Millisecond
	conf.Timing = pms.Timing{
		AfterPassive: time.Millisecond,
		AfterRequest: time.Millisecond,
		Poll:         time.Millisecond,
		SyncTimeout:  50 * time.Millisecond,
		BodyTimeout:  50 * time.Millisecond,
	}
	s := &sh.Shell{Config: conf}
	t.Cleanup(func() { s.Close() })
	return s
}

func text(t *testing.T) func(*sh.Output, error) string {
	return func(out *sh.Output, err error) string {
		require.NoError(t, err)
		str, err := out.Format(false)
		require.NoError(t, err)
		return str
	}
}

func TestExtendedCommands(t *testing.T) {
	s := newTestShell(t, "sim:pms5003t")
	_, err := PMAction(s, nil)
	require.ErrorIs(t, err, pms.ErrNoData)

	_, err = PassiveAction(s, nil)
	require.NoError(t, err)
	out, err := ReadAction(s, nil)
	require.NoError(t, err)
	require.Contains(t, out.Text, "PMS5003T{")
	require.IsType(t, &pb.Reading{}, out.Value)

	require.Contains(t, text(t)(PMAction(s, nil)), "pm2.5=")
	require.Contains(t, text(t)(TempAction(s, nil)), "°C")
	require.Contains(t, text(t)(HumiAction(s, nil)), "%RH")
	require.Equal(t, "PMS5003T", text(t)(VariantAction(s, nil)))
}

func TestCompactCommands(t *testing.T) {
	s := newTestShell(t, "sim:pms3003")
	_, err := PassiveAction(s, nil)
	require.NoError(t, err)
	_, err = ReadAction(s, nil)
	require.NoError(t, err)
	require.Equal(t, "PMS3003", text(t)(VariantAction(s, nil)))
	_, err = TempAction(s, nil)
	require.ErrorIs(t, err, pms.ErrNotSupported)
	_, err = HumiAction(s, nil)
	require.ErrorIs(t, err, pms.ErrNotSupported)
}

func TestReadFailure(t *testing.T) {
	s := newTestShell(t, "sim:pms5003t")
	_, err := PassiveAction(s, nil)
	require.NoError(t, err)
	_, err = FaultAction(s, []string{"checksum"})
	require.NoError(t, err)
	out, err := ReadAction(s, nil)
	require.NoError(t, err)
	require.Contains(t, out.Text, "FAIL code=4 checksum error (PMS5003T)")
	failure := out.Value.(*pb.ReadFailure)
	require.Equal(t, int32(pms.ChecksumError), failure.Kind)
	_, err = PMAction(s, nil)
	require.ErrorIs(t, err, pms.ErrNoData)

	_, err = FaultAction(s, []string{"smoke"})
	require.Error(t, err)
	_, err = FaultAction(s, nil)
	require.Error(t, err)
}

func TestDelay(t *testing.T) {
	s := newTestShell(t, "sim:pms3003")
	require.Contains(t, text(t)(DelayAction(s, nil)), "passive=1ms request=1ms read=1ms")

	_, err := DelayAction(s, []string{"request", "40ms"})
	require.NoError(t, err)
	sensor, err := s.Sensor()
	require.NoError(t, err)
	require.Equal(t, 40*time.Millisecond, sensor.Timing().AfterRequest)

	_, err = DelayAction(s, []string{"request"})
	require.Error(t, err)
	_, err = DelayAction(s, []string{"write", "1ms"})
	require.Error(t, err)
	_, err = DelayAction(s, []string{"read", "soon"})
	require.Error(t, err)

	_, err = PassiveAction(s, nil)
	require.NoError(t, err)
	_, err = DelayAction(s, []string{"read", "2ms"})
	require.ErrorIs(t, err, pms.ErrStarted)
}
