package env

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"

	fx "github.com/robotalks/pms.go/pkg/framework"
	"github.com/robotalks/pms.go/pkg/l0/pms"
	"github.com/robotalks/pms.go/pkg/l1/comm"
	"github.com/robotalks/pms.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/pms.go/pkg/l1/comm/stream"
	"github.com/robotalks/pms.go/pkg/l1/comm/websocket"
	"github.com/robotalks/pms.go/pkg/l1/metrics"
	"github.com/robotalks/pms.go/pkg/l1/msgs"
	"github.com/robotalks/pms.go/pkg/l1/poller"
)

// Env is the env of the sensor daemon.
type Env struct {
	Config     *Config
	Device     io.ReadWriteCloser
	Sensor     *pms.Sensor
	Poller     *poller.Poller
	Publishers *comm.PublisherMux
	Registry   *prometheus.Registry
	Hub        *websocket.Hub

	closers []io.Closer
}

// NewEnv creates Env from config.
func (c *Config) NewEnv() (*Env, error) {
	info := c.Info()
	if !info.Ref.IsValid() {
		return nil, fmt.Errorf("device type and id must be specified")
	}
	dev, err := c.OpenDevice()
	if err != nil {
		return nil, err
	}
	e := &Env{
		Config:     c,
		Device:     dev,
		Sensor:     pms.NewSensor(dev),
		Publishers: &comm.PublisherMux{},
		Registry:   metrics.NewRegistry(),
		Hub:        websocket.NewHub(),
	}
	e.closers = append(e.closers, dev)
	if err := e.Sensor.SetTiming(c.Timing); err != nil {
		e.Close()
		return nil, err
	}
	e.Publishers.Add(metrics.NewSensorMetrics(e.Registry, info.Ref), e.Hub)
	if c.MQTTBrokerURL != "" {
		pub, err := mqtt.NewPublisher(c.MQTTBrokerURL, info)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("create MQTT publisher error: %w", err)
		}
		e.Publishers.Add(pub)
	}
	if c.RecordFile != "" {
		f, err := os.OpenFile(c.RecordFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			e.Close()
			return nil, err
		}
		pipe := comm.NewPipe(&stream.Writer{Writer: f})
		e.Publishers.Add(pipe)
		e.closers = append(e.closers, pipe)
	}
	e.Poller = poller.New(e.Sensor, e.Publishers, c.Interval)
	return e, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv() *Env {
	env, err := c.NewEnv()
	if err != nil {
		log.Fatalln(err)
	}
	return env
}

// Runnables returns what needs to run: the poller, the publishers with
// background work and the HTTP server if enabled.
func (e *Env) Runnables() []fx.Runnable {
	runnables := []fx.Runnable{
		fx.NamedRun("poller", fx.RunFunc(func(ctx context.Context) error {
			return fx.RunWithContextCloser(ctx, e, func() error {
				return e.Poller.Run(ctx)
			})
		})),
	}
	runnables = append(runnables, e.Publishers.Runnables()...)
	if e.Config.HTTPAddr != "" {
		runnables = append(runnables, fx.NamedRun("http", fx.RunFunc(e.serveHTTP)))
	}
	return runnables
}

// Close releases the device and record file.
func (e *Env) Close() error {
	var errs fx.AggregatedError
	for _, c := range e.closers {
		errs.Add(c.Close())
	}
	e.closers = nil
	return errs.Aggregate()
}

// ServeMux builds the HTTP handlers.
func (e *Env) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(e.Registry))
	mux.Handle("/events", e.Hub.Handler())
	mux.HandleFunc("/reading", e.serveReading)
	return mux
}

func (e *Env) serveHTTP(ctx context.Context) error {
	srv := &http.Server{Addr: e.Config.HTTPAddr, Handler: e.ServeMux()}
	glog.Infof("HTTP serving on %s", e.Config.HTTPAddr)
	return fx.RunWithContextCancel(ctx, func() { srv.Close() }, func() error {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func (e *Env) serveReading(w http.ResponseWriter, r *http.Request) {
	o, ok := e.Poller.Last()
	var body interface{}
	status := http.StatusOK
	switch {
	case !ok:
		status, body = http.StatusServiceUnavailable, map[string]string{"error": pms.ErrNoData.Error()}
	default:
		switch msg := comm.EventMsg(o).(type) {
		case *msgs.ReadFailure:
			status, body = http.StatusServiceUnavailable, &msg.ReadFailure
		case *msgs.Reading:
			body = &msg.Reading
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
