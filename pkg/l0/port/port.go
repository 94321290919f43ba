// Package port opens the serial port a PMS sensor is attached to.
package port

import (
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"
	"go.bug.st/serial"
)

// Config describes the serial line. The sensors talk 9600 8N1.
type Config struct {
	Device   string `yaml:"device"`
	BaudRate int    `yaml:"baud_rate"`
	// ReadTimeout bounds a single Read so the byte source can poll.
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// DefaultConfig returns the serial settings of PMS5003T and PMS3003.
func DefaultConfig() Config {
	return Config{
		Device:      "/dev/ttyUSB0",
		BaudRate:    9600,
		ReadTimeout: 5 * time.Millisecond,
	}
}

// Port is an opened serial port.
type Port interface {
	io.ReadWriteCloser
}

func (c Config) mode() *serial.Mode {
	baud := c.BaudRate
	if baud == 0 {
		baud = DefaultConfig().BaudRate
	}
	return &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

// Open opens the serial port and discards stale input.
func Open(c Config) (Port, error) {
	if c.Device == "" {
		return nil, fmt.Errorf("serial device not specified")
	}
	p, err := serial.Open(c.Device, c.mode())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.Device, err)
	}
	timeout := c.ReadTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().ReadTimeout
	}
	if err := p.SetReadTimeout(timeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", c.Device, err)
	}
	if err := p.ResetInputBuffer(); err != nil {
		glog.Warningf("reset input buffer of %s: %v", c.Device, err)
	}
	glog.V(1).Infof("opened %s at %d baud", c.Device, c.mode().BaudRate)
	return p, nil
}

// List enumerates serial ports on the system.
func List() ([]string, error) {
	return serial.GetPortsList()
}
