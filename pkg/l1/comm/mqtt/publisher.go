package mqtt

import (
	"context"
	"encoding/json"

	"github.com/robotalks/pms.go/pkg/l1"
	"github.com/robotalks/pms.go/pkg/l1/comm"
)

// Topic suffixes under <type>/<id>/.
const (
	MetaTopic    = "meta"
	ReadingTopic = "reading"
)

// Publisher implements l1.Publisher using MQTT.
// Events are published to <prefix><type>/<id>/reading and the device meta
// is retained at <prefix><type>/<id>/meta while connected.
type Publisher struct {
	Queue *Queue
	Info  l1.DeviceInfo

	metaJSON []byte
	pipe     *comm.Pipe
}

// NewPublisher creates a Publisher.
func NewPublisher(brokerURL string, info l1.DeviceInfo) (*Publisher, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+DeviceTopic(info.Ref, MetaTopic), nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("pms:" + info.Ref.Name())
	}
	return NewPublisherWith(NewQueue(opts, topicPrefix), info), nil
}

// NewPublisherWith creates a Publisher over an existing Queue.
func NewPublisherWith(q *Queue, info l1.DeviceInfo) *Publisher {
	meta, err := json.Marshal(&info.Meta)
	if err != nil {
		panic(err)
	}
	p := &Publisher{Queue: q, Info: info, metaJSON: meta}
	topic := DeviceTopic(info.Ref, ReadingTopic)
	p.pipe = comm.NewPipe(comm.PacketWriterFunc(func(pkt []byte) error {
		token := q.Pub(topic, pkt)
		token.Wait()
		return token.Error()
	}))
	q.OnConnect = func(*Queue) { p.onConnected() }
	return p
}

// DeviceTopic builds the topic of a device without the prefix.
func DeviceTopic(ref l1.DeviceRef, suffix string) string {
	return ref.Name() + "/" + suffix
}

// Publish implements l1.Publisher.
func (p *Publisher) Publish(ctx context.Context, o l1.Outcome) error {
	return p.pipe.Publish(ctx, o)
}

// Name implements Named.
func (p *Publisher) Name() string {
	return "mqtt"
}

// Run implements Runnable.
func (p *Publisher) Run(ctx context.Context) error {
	p.Queue.Connect()
	<-ctx.Done()
	p.Queue.PubWith(DeviceTopic(p.Info.Ref, MetaTopic), nil, 1, true).Wait()
	p.Queue.Close()
	return ctx.Err()
}

func (p *Publisher) onConnected() {
	p.Queue.PubWith(DeviceTopic(p.Info.Ref, MetaTopic), p.metaJSON, 1, true)
}
