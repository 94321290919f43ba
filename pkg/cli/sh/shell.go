package sh

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/pms.go/pkg/l0/pms"
	"github.com/robotalks/pms.go/pkg/l0/port"
	"github.com/robotalks/pms.go/pkg/l1"
	"github.com/robotalks/pms.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/pms.go/pkg/l1/env"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell  *ishell.Shell
	Config *env.Config
	Conn   *Conn
}

// Conn is an opened sensor.
type Conn struct {
	Device io.ReadWriteCloser
	Sensor *pms.Sensor
	Name   string
}

// Action implements a command. args excludes the command name.
type Action func(s *Shell, args []string) (*Output, error)

// Output is the result of an Action. Value is printed in JSON mode,
// otherwise Text.
type Output struct {
	Value interface{}
	Text  string
}

const (
	shellKey     = "$shell"
	closedPrompt = "[none] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		Cmd("ports", "", PortsAction, "lsport"),
		Cmd("open", "[PORT]", OpenAction, "o"),
		Cmd("close", "", CloseAction),
		Cmd("discover", "", DiscoverAction, "list", "l"),
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// Cmd adapts an Action to ishell.Cmd.
func Cmd(name, help string, action Action, aliases ...string) *ishell.Cmd {
	return &ishell.Cmd{
		Name:    name,
		Aliases: aliases,
		Help:    help,
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			out, err := action(s, c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			text, err := out.Format(s.OutputJSON)
			if err != nil {
				c.Err(err)
				return
			}
			if text != "" {
				c.Println(text)
			}
		},
	}
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(closedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Format renders the output.
func (o *Output) Format(asJSON bool) (string, error) {
	if o == nil {
		if asJSON {
			return "{}", nil
		}
		return "OK", nil
	}
	if !asJSON {
		return o.Text, nil
	}
	out, err := json.Marshal(o.Value)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Text creates Output with the same content for both modes.
func Text(format string, args ...interface{}) *Output {
	text := fmt.Sprintf(format, args...)
	return &Output{Value: text, Text: text}
}

// FormatInfo prints DeviceInfo into friendly string for display.
func FormatInfo(info l1.DeviceInfo) string {
	var w bytes.Buffer
	fmt.Fprintf(&w, "%s", info.Ref.Name())
	if info.Meta.Port != "" {
		fmt.Fprintf(&w, " [%s]", info.Meta.Port)
	}
	if info.Meta.Description != "" {
		fmt.Fprintf(&w, ": %s", info.Meta.Description)
	}
	return w.String()
}

// Open opens the device, an empty name selects the configured one. The
// previously opened device is closed.
func (s *Shell) Open(device string) error {
	conf := *s.Config
	if device != "" {
		conf.Port.Device = device
	}
	dev, err := conf.OpenDevice()
	if err != nil {
		return err
	}
	sensor := pms.NewSensor(dev)
	if err := sensor.SetTiming(conf.Timing); err != nil {
		dev.Close()
		return err
	}
	s.Close()
	s.Conn = &Conn{Device: dev, Sensor: sensor, Name: conf.Port.Device}
	if s.Shell != nil {
		s.Shell.SetPrompt(fmt.Sprintf("%s > ", conf.Port.Device))
	}
	return nil
}

// Close closes current device.
func (s *Shell) Close() error {
	if s.Conn == nil {
		return nil
	}
	err := s.Conn.Device.Close()
	s.Conn = nil
	if s.Shell != nil {
		s.Shell.SetPrompt(closedPrompt)
	}
	return err
}

// Sensor returns the sensor of the opened device and opens the configured
// one if none is opened.
func (s *Shell) Sensor() (*pms.Sensor, error) {
	if s.Conn == nil {
		if err := s.Open(""); err != nil {
			return nil, err
		}
	}
	return s.Conn.Sensor, nil
}

// Discover lists the devices which announced themselves on the MQTT broker.
func (s *Shell) Discover(ctx context.Context) ([]l1.DeviceInfo, error) {
	if s.Config.MQTTBrokerURL == "" {
		return nil, fmt.Errorf("MQTT broker URL not specified")
	}
	q, err := mqtt.NewQueueFromURL(s.Config.MQTTBrokerURL)
	if err != nil {
		return nil, err
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	defer q.Close()
	return mqtt.Discover(ctx, q, mqtt.DefaultDiscoverTimeout)
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	defer s.Close()
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

// PortsAction lists serial ports.
func PortsAction(s *Shell, args []string) (*Output, error) {
	ports, err := port.List()
	if err != nil {
		return nil, err
	}
	if len(ports) == 0 {
		// in case ports is nil, make it empty slice.
		return &Output{Value: []string{}, Text: "No serial ports found"}, nil
	}
	return &Output{Value: ports, Text: strings.Join(ports, "\n")}, nil
}

// OpenAction opens a device.
func OpenAction(s *Shell, args []string) (*Output, error) {
	var device string
	if len(args) > 0 {
		device = args[0]
	}
	if err := s.Open(device); err != nil {
		return nil, err
	}
	return nil, nil
}

// CloseAction closes current device.
func CloseAction(s *Shell, args []string) (*Output, error) {
	return nil, s.Close()
}

// DiscoverAction discovers devices on MQTT.
func DiscoverAction(s *Shell, args []string) (*Output, error) {
	infoList, err := s.Discover(context.TODO())
	if err != nil {
		return nil, err
	}
	if len(infoList) == 0 {
		return &Output{Value: []l1.DeviceInfo{}, Text: "No devices found"}, nil
	}
	lines := make([]string, len(infoList))
	for n, info := range infoList {
		lines[n] = FormatInfo(info)
	}
	return &Output{Value: infoList, Text: strings.Join(lines, "\n")}, nil
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(env.NewConfig()).Run(flag.Args()...)
}
