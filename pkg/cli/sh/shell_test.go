package sh

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pms.go/pkg/l1"
	"github.com/robotalks/pms.go/pkg/l1/env"
	"github.com/robotalks/pms.go/pkg/sim"
)

func newTestShell() *Shell {
	conf := env.NewConfig()
	conf.Port.Device = "sim:pms3003"
	conf.Port.ReadTimeout = time.Millisecond
	conf.MQTTBrokerURL = ""
	return &Shell{Config: conf}
}

func TestOutputFormat(t *testing.T) {
	var out *Output
	text, err := out.Format(false)
	require.NoError(t, err)
	require.Equal(t, "OK", text)
	text, err = out.Format(true)
	require.NoError(t, err)
	require.Equal(t, "{}", text)

	out = &Output{Value: map[string]int{"pm2_5": 12}, Text: "pm2.5=12"}
	text, err = out.Format(false)
	require.NoError(t, err)
	require.Equal(t, "pm2.5=12", text)
	text, err = out.Format(true)
	require.NoError(t, err)
	require.Equal(t, `{"pm2_5":12}`, text)

	_, err = (&Output{Value: func() {}}).Format(true)
	require.Error(t, err)

	text, err = Text("%s", "PMS3003").Format(true)
	require.NoError(t, err)
	require.Equal(t, `"PMS3003"`, text)
}

func TestFormatInfo(t *testing.T) {
	info := l1.DeviceInfo{Ref: l1.DeviceRef{Type: "pms5003t", ID: "a1"}}
	require.Equal(t, "pms5003t/a1", FormatInfo(info))
	info.Meta.Port = "/dev/ttyUSB0"
	info.Meta.Description = "kitchen"
	require.Equal(t, "pms5003t/a1 [/dev/ttyUSB0]: kitchen", FormatInfo(info))
}

func TestOpenClose(t *testing.T) {
	s := newTestShell()
	sensor, err := s.Sensor()
	require.NoError(t, err)
	require.NotNil(t, sensor)
	require.Equal(t, "sim:pms3003", s.Conn.Name)
	require.Equal(t, s.Config.Timing, sensor.Timing())
	dev := s.Conn.Device.(*sim.Device)

	_, err = OpenAction(s, []string{"sim:pms5003t"})
	require.NoError(t, err)
	require.Equal(t, "sim:pms5003t", s.Conn.Name)
	_, err = dev.Read(make([]byte, 1))
	require.Error(t, err, "previous device closed")

	_, err = OpenAction(s, []string{"sim:unknown"})
	require.Error(t, err)
	require.Equal(t, "sim:pms5003t", s.Conn.Name)

	_, err = CloseAction(s, nil)
	require.NoError(t, err)
	require.Nil(t, s.Conn)
	require.NoError(t, s.Close())
}

func TestDiscoverRequiresBroker(t *testing.T) {
	_, err := newTestShell().Discover(context.Background())
	require.Error(t, err)
	_, err = DiscoverAction(newTestShell(), nil)
	require.Error(t, err)
}
