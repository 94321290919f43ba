package env

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/pms.go/pkg/l0/pms"
	"github.com/robotalks/pms.go/pkg/l0/port"
	"github.com/robotalks/pms.go/pkg/l1"
	"github.com/robotalks/pms.go/pkg/l1/poller"
	"github.com/robotalks/pms.go/pkg/sim"
)

// SimPrefix selects the simulated device, e.g. sim:pms3003.
const SimPrefix = "sim"

// Config provides options to set up the sensor daemon. It's loaded from
// a YAML file first and then overridden by flags.
type Config struct {
	Type        string            `yaml:"type"`
	ID          string            `yaml:"id"`
	Description string            `yaml:"description"`
	Labels      map[string]string `yaml:"labels"`

	Port     port.Config   `yaml:"port"`
	Timing   pms.Timing    `yaml:"timing"`
	Interval time.Duration `yaml:"interval"`

	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string `yaml:"mqtt"`
	// HTTPAddr serves /metrics, /events and /reading, e.g. :9100.
	HTTPAddr string `yaml:"http"`
	// RecordFile appends all events to a file for replay.
	RecordFile string `yaml:"record"`
}

var defaultConfig = Config{
	Type:     "pms5003t",
	Port:     port.DefaultConfig(),
	Timing:   pms.DefaultTiming(),
	Interval: poller.DefaultInterval,
	HTTPAddr: ":9100",
}

func init() {
	defaultConfig.ID = MachineID()
	if val := os.Getenv("PMS_CONFIG"); val != "" {
		if err := defaultConfig.LoadFile(val); err != nil {
			log.Fatalln(err)
		}
	}
	if val := os.Getenv("PMS_PORT"); val != "" {
		defaultConfig.Port.Device = val
	}
	if val := os.Getenv("PMS_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
}

// SetupFlags sets command line flags. A -config file is applied when the
// flag is parsed, so flags after it override the file.
func SetupFlags() {
	flag.Func("config", "YAML config file.", defaultConfig.LoadFile)
	flag.StringVar(&defaultConfig.Type, "type", defaultConfig.Type, "Device type")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Device ID")
	flag.StringVar(&defaultConfig.Description, "desc", defaultConfig.Description, "Device description")
	flag.StringVar(&defaultConfig.Port.Device, "port", defaultConfig.Port.Device, "Serial device, or sim:pms5003t, sim:pms3003")
	flag.IntVar(&defaultConfig.Port.BaudRate, "baud", defaultConfig.Port.BaudRate, "Serial baud rate")
	flag.DurationVar(&defaultConfig.Interval, "interval", defaultConfig.Interval, "Read interval")
	flag.DurationVar(&defaultConfig.Timing.SyncTimeout, "sync-timeout", defaultConfig.Timing.SyncTimeout, "Time budget to find the frame signature")
	flag.DurationVar(&defaultConfig.Timing.BodyTimeout, "body-timeout", defaultConfig.Timing.BodyTimeout, "Time budget to receive the frame body")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultConfig.HTTPAddr, "http", defaultConfig.HTTPAddr, "HTTP listen address, empty to disable")
	flag.StringVar(&defaultConfig.RecordFile, "record", defaultConfig.RecordFile, "Append events to file")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// LoadFile merges the YAML file into the config. Absent keys keep their
// current values.
func (c *Config) LoadFile(fn string) error {
	data, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	return c.Load(data)
}

// Load merges YAML content into the config.
func (c *Config) Load(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Info builds the device information.
func (c *Config) Info() l1.DeviceInfo {
	return l1.DeviceInfo{
		Ref: l1.DeviceRef{Type: c.Type, ID: c.ID},
		Meta: l1.DeviceMeta{
			Description: c.Description,
			Port:        c.Port.Device,
			Labels:      c.Labels,
		},
	}
}

// IsSim tells if the simulated device is selected.
func (c *Config) IsSim() bool {
	return c.Port.Device == SimPrefix || strings.HasPrefix(c.Port.Device, SimPrefix+":")
}

// OpenDevice opens the serial port or the simulator.
func (c *Config) OpenDevice() (io.ReadWriteCloser, error) {
	if !c.IsSim() {
		return port.Open(c.Port)
	}
	variant := pms.Extended
	switch model := strings.TrimPrefix(strings.TrimPrefix(c.Port.Device, SimPrefix), ":"); model {
	case "", "pms5003t":
	case "pms3003":
		variant = pms.Compact
	default:
		return nil, fmt.Errorf("unknown simulated model %q", model)
	}
	dev := sim.NewDevice(variant, time.Now().UnixNano())
	if c.Port.ReadTimeout > 0 {
		dev.ReadTimeout = c.Port.ReadTimeout
	}
	return dev, nil
}
