// Package poller reads the sensor periodically and publishes every outcome.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/pms.go/pkg/l0/pms"
	"github.com/robotalks/pms.go/pkg/l1"
)

// DefaultInterval is the default time between reads.
const DefaultInterval = 2 * time.Second

// Poller owns the Sensor, nothing else may use it while Run is active.
type Poller struct {
	Sensor    *pms.Sensor
	Publisher l1.Publisher
	Interval  time.Duration

	lock sync.RWMutex
	last l1.Outcome
}

// New creates a Poller.
func New(s *pms.Sensor, pub l1.Publisher, interval time.Duration) *Poller {
	return &Poller{Sensor: s, Publisher: pub, Interval: interval}
}

// Name implements Named.
func (p *Poller) Name() string {
	return "poller"
}

// Run implements Runnable.
func (p *Poller) Run(ctx context.Context) error {
	if err := p.Sensor.Begin(); err != nil {
		return err
	}
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		p.Poll(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Poll performs a single read and publishes the outcome. Nothing is
// published or recorded once ctx is done.
func (p *Poller) Poll(ctx context.Context) l1.Outcome {
	r, err := p.Sensor.Read()
	o := l1.Outcome{Time: time.Now(), Reading: r, Err: err}
	if err == nil {
		o.Frame, _ = p.Sensor.Frame()
	}
	if ctx.Err() != nil {
		// stopping, the device may have been closed under the read.
		glog.V(1).Infof("poll interrupted: %v", err)
		return o
	}
	if err != nil {
		glog.Warningf("read failed: %v", err)
	} else if glog.V(1) {
		glog.Infof("%s", r)
	}
	p.lock.Lock()
	p.last = o
	p.lock.Unlock()
	if p.Publisher != nil {
		if err := p.Publisher.Publish(ctx, o); err != nil {
			glog.Errorf("publish error: %v", err)
		}
	}
	return o
}

// Last returns the outcome of the latest read. ok is false before the
// first read.
func (p *Poller) Last() (o l1.Outcome, ok bool) {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.last, !p.last.Time.IsZero()
}
