package mqtt

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/pms.go/pkg/l1"
)

// DefaultDiscoverTimeout defines the default timeout value of discovery.
const DefaultDiscoverTimeout = 500 * time.Millisecond

// Discover collects the retained meta of devices until timeout. The Queue
// must be connected.
func Discover(ctx context.Context, q *Queue, timeout time.Duration) ([]l1.DeviceInfo, error) {
	resCh := make(chan l1.DeviceInfo, 1)
	sub := q.Sub("+/+/"+MetaTopic, Handler(func(topic string, payload []byte) {
		info, ok := parseMeta(topic, payload)
		if !ok {
			return
		}
		select {
		case resCh <- info:
		case <-time.After(time.Second):
		}
	}))
	defer sub.Close()

	if timeout == 0 {
		timeout = DefaultDiscoverTimeout
	}
	expire := time.After(timeout)
	var res []l1.DeviceInfo
	for {
		select {
		case info := <-resCh:
			res = append(res, info)
		case <-expire:
			return res, nil
		case <-ctx.Done():
			return res, ctx.Err()
		}
	}
}

// parseMeta accepts <type>/<id>/meta with a non-empty payload. An empty
// payload is the cleared meta of an offline device.
func parseMeta(topic string, payload []byte) (info l1.DeviceInfo, ok bool) {
	items := strings.Split(topic, "/")
	if len(items) != 3 || len(payload) == 0 {
		return
	}
	info.Ref = l1.DeviceRef{Type: items[0], ID: items[1]}
	if err := json.Unmarshal(payload, &info.Meta); err != nil {
		glog.Warningf("bad meta of %s: %v", info.Ref.Name(), err)
	}
	return info, true
}
