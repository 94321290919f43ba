package websocket

import (
	"context"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/pms.go/pkg/l1"
	"github.com/robotalks/pms.go/pkg/l1/comm"
)

// DefaultBacklog is the number of packets queued per client before
// packets are dropped for that client.
const DefaultBacklog = 16

// Hub broadcasts event packets to all connected clients. A slow client
// loses packets instead of blocking the others.
type Hub struct {
	Backlog int

	lock    sync.Mutex
	clients map[*client]struct{}
	pipe    *comm.Pipe
}

type client struct {
	rw     *ReadWriter
	sendCh chan []byte
}

// NewHub creates a Hub.
func NewHub() *Hub {
	h := &Hub{Backlog: DefaultBacklog, clients: make(map[*client]struct{})}
	h.pipe = comm.NewPipe(h)
	return h
}

// Handler returns the http.Handler accepting websocket clients.
func (h *Hub) Handler() http.Handler {
	return websocket.Handler(h.serve)
}

// Publish implements l1.Publisher.
func (h *Hub) Publish(ctx context.Context, o l1.Outcome) error {
	return h.pipe.Publish(ctx, o)
}

// WritePacket implements PacketWriter.
func (h *Hub) WritePacket(pkt []byte) error {
	h.lock.Lock()
	defer h.lock.Unlock()
	for c := range h.clients {
		select {
		case c.sendCh <- pkt:
		default:
			glog.V(2).Infof("websocket client %s lagging, packet dropped", c.rw.remote())
		}
	}
	return nil
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.clients)
}

func (h *Hub) serve(conn *websocket.Conn) {
	backlog := h.Backlog
	if backlog <= 0 {
		backlog = DefaultBacklog
	}
	c := &client{rw: New(conn), sendCh: make(chan []byte, backlog)}
	h.lock.Lock()
	h.clients[c] = struct{}{}
	h.lock.Unlock()
	glog.V(1).Infof("websocket client %s connected", c.rw.remote())

	defer func() {
		h.lock.Lock()
		delete(h.clients, c)
		h.lock.Unlock()
		conn.Close()
		glog.V(1).Infof("websocket client %s disconnected", c.rw.remote())
	}()

	// clients never send anything, reading only detects the close.
	closedCh := make(chan struct{})
	go func() {
		defer close(closedCh)
		for {
			if _, err := c.rw.ReadPacket(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closedCh:
			return
		case pkt := <-c.sendCh:
			if err := c.rw.WritePacket(pkt); err != nil {
				return
			}
		}
	}
}

func (p *ReadWriter) remote() string {
	return (*websocket.Conn)(p).Request().RemoteAddr
}
