package poller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pms.go/pkg/l0/pms"
	"github.com/robotalks/pms.go/pkg/l1"
	"github.com/robotalks/pms.go/pkg/sim"
)

type recorder struct {
	lock     sync.Mutex
	outcomes []l1.Outcome
}

func (r *recorder) Publish(_ context.Context, o l1.Outcome) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.outcomes = append(r.outcomes, o)
	return nil
}

func (r *recorder) count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.outcomes)
}

func newTestPoller(dev *sim.Device, pub l1.Publisher) *Poller {
	dev.ReadTimeout = time.Millisecond
	s := pms.NewSensor(dev)
	s.SetTiming(pms.Timing{
		AfterPassive: time.Millisecond,
		AfterRequest: time.Millisecond,
		Poll:         time.Millisecond,
		// a frame takes about FrameSize polls, keep a wide margin.
		SyncTimeout:  500 * time.Millisecond,
		BodyTimeout:  500 * time.Millisecond,
	})
	return New(s, pub, 5*time.Millisecond)
}

func TestPollerRun(t *testing.T) {
	dev := sim.NewDevice(pms.Extended, 3)
	dev.Inject(sim.FaultNone, sim.FaultChecksum)
	rec := &recorder{}
	p := newTestPoller(dev, rec)

	_, ok := p.Last()
	require.False(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx) }()
	require.Eventually(t, func() bool { return rec.count() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)

	rec.lock.Lock()
	defer rec.lock.Unlock()
	require.NoError(t, rec.outcomes[0].Err)
	require.True(t, rec.outcomes[0].OK())
	require.Equal(t, pms.Extended, rec.outcomes[0].Reading.Variant())
	require.ErrorIs(t, rec.outcomes[1].Err, pms.ErrChecksum)
	require.Nil(t, rec.outcomes[1].Reading)
	require.NoError(t, rec.outcomes[2].Err)

	last, ok := p.Last()
	require.True(t, ok)
	require.False(t, last.Time.IsZero())
}

func TestPollerBeginFails(t *testing.T) {
	dev := sim.NewDevice(pms.Compact, 1)
	dev.Close()
	p := newTestPoller(dev, nil)
	require.ErrorIs(t, p.Run(context.Background()), pms.ErrSource)
}

func TestPollWithoutPublisher(t *testing.T) {
	dev := sim.NewDevice(pms.Compact, 1)
	p := newTestPoller(dev, nil)
	require.NoError(t, p.Sensor.Begin())
	o := p.Poll(context.Background())
	require.NoError(t, o.Err)
	require.Equal(t, pms.Compact, o.Reading.Variant())
	require.NotNil(t, o.Frame)
	require.Equal(t, o.Reading.Bytes(), o.Frame.Bytes())
}

func TestPollAfterCancelNotPublished(t *testing.T) {
	dev := sim.NewDevice(pms.Extended, 1)
	rec := &recorder{}
	p := newTestPoller(dev, rec)
	require.NoError(t, p.Sensor.Begin())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dev.Close()
	o := p.Poll(ctx)
	require.ErrorIs(t, o.Err, pms.ErrSource)
	require.Zero(t, rec.count())
	_, ok := p.Last()
	require.False(t, ok)
}
