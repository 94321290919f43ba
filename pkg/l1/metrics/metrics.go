// Package metrics exports sensor readings as Prometheus metrics.
package metrics

import (
	"context"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robotalks/pms.go/pkg/l0/pms"
	"github.com/robotalks/pms.go/pkg/l1"
)

// NewRegistry creates a Registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the metrics in reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// SensorMetrics implements l1.Publisher and keeps the gauges at the values
// of the last successful read.
type SensorMetrics struct {
	Reads       *prometheus.CounterVec // labels: result
	PM          *prometheus.GaugeVec   // labels: env=std|atm, size
	Particles   *prometheus.GaugeVec   // labels: size
	Temperature prometheus.Gauge
	Humidity    prometheus.Gauge
	LastSuccess prometheus.Gauge
}

// NewSensorMetrics registers and returns the sensor metrics. Every metric
// carries the device labels.
func NewSensorMetrics(reg prometheus.Registerer, ref l1.DeviceRef) *SensorMetrics {
	labels := prometheus.Labels{"type": ref.Type, "id": ref.ID}
	m := &SensorMetrics{
		Reads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "pms_reads_total",
			Help:        "Sensor read attempts by result.",
			ConstLabels: labels,
		}, []string{"result"}),
		PM: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "pms_pm_micrograms_per_cubic_meter",
			Help:        "Particulate matter concentration.",
			ConstLabels: labels,
		}, []string{"env", "size"}),
		Particles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "pms_particles_per_deciliter",
			Help:        "Particles beyond the size in 0.1L of air.",
			ConstLabels: labels,
		}, []string{"size"}),
		Temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "pms_temperature_celsius",
			Help:        "Temperature.",
			ConstLabels: labels,
		}),
		Humidity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "pms_relative_humidity_percent",
			Help:        "Relative humidity.",
			ConstLabels: labels,
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "pms_last_success_timestamp_seconds",
			Help:        "Time of the last successful read.",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(m.Reads, m.PM, m.Particles, m.Temperature, m.Humidity, m.LastSuccess)
	return m
}

// ResultLabel converts an ErrorKind into a label value.
func ResultLabel(kind pms.ErrorKind) string {
	return strings.ReplaceAll(kind.String(), " ", "_")
}

// Publish implements l1.Publisher.
func (m *SensorMetrics) Publish(ctx context.Context, o l1.Outcome) error {
	m.Reads.WithLabelValues(ResultLabel(pms.KindOf(o.Err))).Inc()
	if o.Err != nil {
		return nil
	}
	setPM := func(env string, pm pms.PM) {
		m.PM.WithLabelValues(env, "pm1.0").Set(float64(pm.PM1))
		m.PM.WithLabelValues(env, "pm2.5").Set(float64(pm.PM25))
		m.PM.WithLabelValues(env, "pm10").Set(float64(pm.PM10))
	}
	setPM("std", o.Reading.Standard())
	setPM("atm", o.Reading.Atmospheric())
	if ext, ok := o.Reading.(*pms.ExtendedReading); ok {
		m.Particles.WithLabelValues("0.3").Set(float64(ext.Count03))
		m.Particles.WithLabelValues("0.5").Set(float64(ext.Count05))
		m.Particles.WithLabelValues("1.0").Set(float64(ext.Count10))
		m.Particles.WithLabelValues("2.5").Set(float64(ext.Count25))
		m.Temperature.Set(ext.Celsius())
		m.Humidity.Set(ext.RelativeHumidity())
	}
	m.LastSuccess.Set(float64(o.Time.UnixNano()) / 1e9)
	return nil
}
