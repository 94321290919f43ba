package l1

import (
	"context"
	"time"

	"github.com/robotalks/pms.go/pkg/l0/pms"
)

// DeviceRef is a reference to a sensor device.
type DeviceRef struct {
	// Type is the device type, e.g. pms5003t.
	Type string
	// ID is unique ID of the device.
	ID string
}

// Name retrieves the name from ref.
func (r DeviceRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates DeviceRef is valid.
func (r DeviceRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// DeviceMeta provides metadata for a device.
type DeviceMeta struct {
	Description string            `json:"description,omitempty"`
	Port        string            `json:"port,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// DeviceInfo provides information of a device.
type DeviceInfo struct {
	Ref  DeviceRef
	Meta DeviceMeta
}

// Outcome is the result of one read cycle.
type Outcome struct {
	Time    time.Time
	Reading pms.Reading
	// Frame is the received frame of Reading, nil if the reading was not
	// read from a sensor.
	Frame *pms.Frame
	Err   error
}

// OK indicates the read succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Publisher delivers outcomes to consumers.
type Publisher interface {
	Publish(context.Context, Outcome) error
}

// PublishFunc is the func form of Publisher.
type PublishFunc func(context.Context, Outcome) error

// Publish implements Publisher.
func (f PublishFunc) Publish(ctx context.Context, o Outcome) error {
	return f(ctx, o)
}
