// Package sensor provides shell commands operating the opened sensor.
package sensor

import (
	"fmt"
	"time"

	"github.com/robotalks/pms.go/pkg/cli/sh"
	"github.com/robotalks/pms.go/pkg/l0/pms"
	"github.com/robotalks/pms.go/pkg/l1/msgs"
	"github.com/robotalks/pms.go/pkg/sim"
)

// PassiveAction switches the sensor to passive mode.
func PassiveAction(s *sh.Shell, args []string) (*sh.Output, error) {
	sensor, err := s.Sensor()
	if err != nil {
		return nil, err
	}
	return nil, sensor.Begin()
}

// ReadAction reads one frame. On failure the error kind and code are
// printed and the stored reading is cleared.
func ReadAction(s *sh.Shell, args []string) (*sh.Output, error) {
	sensor, err := s.Sensor()
	if err != nil {
		return nil, err
	}
	r, err := sensor.Read()
	if err != nil {
		failure := msgs.NewReadFailure(err, time.Now())
		return &sh.Output{
			Value: &failure.ReadFailure,
			Text:  fmt.Sprintf("FAIL code=%d %v", failure.Code, err),
		}, nil
	}
	f, err := sensor.Frame()
	if err != nil {
		return nil, err
	}
	return &sh.Output{Value: &msgs.NewFrameReading(f, time.Now()).Reading, Text: r.String()}, nil
}

// PMAction prints PM values of the stored reading.
func PMAction(s *sh.Shell, args []string) (*sh.Output, error) {
	sensor, err := s.Sensor()
	if err != nil {
		return nil, err
	}
	r, err := sensor.Reading()
	if err != nil {
		return nil, err
	}
	std, atm := r.Standard(), r.Atmospheric()
	return &sh.Output{
		Value: map[string]pms.PM{"std": std, "atm": atm},
		Text: fmt.Sprintf("pm1.0=%d pm2.5=%d pm10=%d (std %d/%d/%d)",
			atm.PM1, atm.PM25, atm.PM10, std.PM1, std.PM25, std.PM10),
	}, nil
}

// TempAction prints the temperature.
func TempAction(s *sh.Shell, args []string) (*sh.Output, error) {
	return floatValue(s, (*pms.Sensor).Temperature, "%.1f°C")
}

// HumiAction prints the relative humidity.
func HumiAction(s *sh.Shell, args []string) (*sh.Output, error) {
	return floatValue(s, (*pms.Sensor).Humidity, "%.1f%%RH")
}

func floatValue(s *sh.Shell, get func(*pms.Sensor) (float64, error), format string) (*sh.Output, error) {
	sensor, err := s.Sensor()
	if err != nil {
		return nil, err
	}
	val, err := get(sensor)
	if err != nil {
		return nil, err
	}
	return &sh.Output{Value: val, Text: fmt.Sprintf(format, val)}, nil
}

// VariantAction prints the variant of the stored reading.
func VariantAction(s *sh.Shell, args []string) (*sh.Output, error) {
	sensor, err := s.Sensor()
	if err != nil {
		return nil, err
	}
	v, err := sensor.Variant()
	if err != nil {
		return nil, err
	}
	return sh.Text("%s", v), nil
}

// DelayAction shows the timing, or changes a delay with KIND DURATION.
func DelayAction(s *sh.Shell, args []string) (*sh.Output, error) {
	sensor, err := s.Sensor()
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		t := sensor.Timing()
		return &sh.Output{
			Value: map[string]string{
				pms.AfterPassiveCmd.String(): t.AfterPassive.String(),
				pms.AfterRequestCmd.String(): t.AfterRequest.String(),
				pms.SerialRead.String():      t.Poll.String(),
			},
			Text: fmt.Sprintf("passive=%v request=%v read=%v sync-timeout=%v body-timeout=%v",
				t.AfterPassive, t.AfterRequest, t.Poll, t.SyncTimeout, t.BodyTimeout),
		}, nil
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("KIND DURATION required")
	}
	kind, err := pms.ParseDelayKind(args[0])
	if err != nil {
		return nil, err
	}
	d, err := time.ParseDuration(args[1])
	if err != nil {
		return nil, fmt.Errorf("Invalid DURATION: %v", err)
	}
	return nil, sensor.SetDelay(kind, d)
}

// FaultAction injects faults into the simulated device.
func FaultAction(s *sh.Shell, args []string) (*sh.Output, error) {
	if _, err := s.Sensor(); err != nil {
		return nil, err
	}
	dev, ok := s.Conn.Device.(*sim.Device)
	if !ok {
		return nil, fmt.Errorf("%s is not simulated", s.Conn.Name)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("FAULT required")
	}
	faults := make([]sim.Fault, 0, len(args))
	for _, arg := range args {
		f, err := sim.ParseFault(arg)
		if err != nil {
			return nil, err
		}
		faults = append(faults, f)
	}
	dev.Inject(faults...)
	return nil, nil
}

func init() {
	sh.AddCmds(
		sh.Cmd("passive", "", PassiveAction, "begin"),
		sh.Cmd("read", "", ReadAction, "r"),
		sh.Cmd("pm", "", PMAction),
		sh.Cmd("temp", "", TempAction),
		sh.Cmd("humi", "", HumiAction),
		sh.Cmd("variant", "", VariantAction),
		sh.Cmd("delay", "[passive|request|read DURATION]", DelayAction),
		sh.Cmd("fault", "none|silent|checksum|zero-length|truncated|noise ...", FaultAction),
	)
}
