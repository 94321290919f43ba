package comm

import (
	"context"

	fx "github.com/robotalks/pms.go/pkg/framework"
	"github.com/robotalks/pms.go/pkg/l1"
)

// PublisherMux publishes outcomes with multiple Publishers.
type PublisherMux struct {
	Publishers []l1.Publisher
}

// Publish implements l1.Publisher. All publishers are invoked even if some
// of them fail.
func (m *PublisherMux) Publish(ctx context.Context, o l1.Outcome) error {
	var errs fx.AggregatedError
	for _, pub := range m.Publishers {
		errs.Add(pub.Publish(ctx, o))
	}
	return errs.Aggregate()
}

// Add adds more publishers.
func (m *PublisherMux) Add(pubs ...l1.Publisher) {
	m.Publishers = append(m.Publishers, pubs...)
}

// Runnables collects publishers which need to run in the background.
func (m *PublisherMux) Runnables() []fx.Runnable {
	var runnables []fx.Runnable
	for _, pub := range m.Publishers {
		if r, ok := pub.(fx.Runnable); ok {
			runnables = append(runnables, r)
		}
	}
	return runnables
}
