package metrics

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/pms.go/pkg/l0/pms"
	"github.com/robotalks/pms.go/pkg/l1"
)

func TestSensorMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSensorMetrics(reg, l1.DeviceRef{Type: "pms5003t", ID: "abc"})
	ctx := context.Background()
	at := time.Unix(1700000000, 0)

	reading := &pms.ExtendedReading{
		Std:         pms.PM{PM1: 9, PM25: 14, PM10: 17},
		Atm:         pms.PM{PM1: 8, PM25: 13, PM10: 16},
		Count03:     1500,
		Temperature: 226,
		Humidity:    480,
	}
	require.NoError(t, m.Publish(ctx, l1.Outcome{Time: at, Reading: reading}))
	require.NoError(t, m.Publish(ctx, l1.Outcome{Time: at.Add(time.Second), Err: pms.ErrSyncTimeout}))
	require.NoError(t, m.Publish(ctx, l1.Outcome{Time: at.Add(2 * time.Second), Err: pms.ErrSyncTimeout}))

	require.Equal(t, 1.0, testutil.ToFloat64(m.Reads.WithLabelValues("ok")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Reads.WithLabelValues("sync_timeout")))
	require.Equal(t, 13.0, testutil.ToFloat64(m.PM.WithLabelValues("atm", "pm2.5")))
	require.Equal(t, 17.0, testutil.ToFloat64(m.PM.WithLabelValues("std", "pm10")))
	require.Equal(t, 1500.0, testutil.ToFloat64(m.Particles.WithLabelValues("0.3")))
	require.InDelta(t, 22.6, testutil.ToFloat64(m.Temperature), 1e-9)
	require.InDelta(t, 48.0, testutil.ToFloat64(m.Humidity), 1e-9)
	// failures keep the last good values.
	require.Equal(t, 1700000000.0, testutil.ToFloat64(m.LastSuccess))

	compact := &pms.CompactReading{Atm: pms.PM{PM25: 30}, Length: pms.CompactLength}
	require.NoError(t, m.Publish(ctx, l1.Outcome{Time: at, Reading: compact}))
	require.Equal(t, 30.0, testutil.ToFloat64(m.PM.WithLabelValues("atm", "pm2.5")))
	require.InDelta(t, 22.6, testutil.ToFloat64(m.Temperature), 1e-9)
}

func TestHandler(t *testing.T) {
	reg := NewRegistry()
	m := NewSensorMetrics(reg, l1.DeviceRef{Type: "pms3003", ID: "x"})
	require.NoError(t, m.Publish(context.Background(), l1.Outcome{Err: pms.ErrZeroLength}))

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), `pms_reads_total{id="x",result="zero_length",type="pms3003"} 1`)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestResultLabel(t *testing.T) {
	require.Equal(t, "ok", ResultLabel(pms.NoError))
	require.Equal(t, "body_timeout", ResultLabel(pms.BodyTimeout))
	require.Equal(t, "checksum_error", ResultLabel(pms.ChecksumError))
}
