package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDispatchMetrics(reg, "zetest")

	m.Observe(ddi.OpContextCreate, ze.ResultSuccess, 2*time.Microsecond)
	m.Observe(ddi.OpContextCreate, ze.ResultSuccess, 3*time.Microsecond)
	m.Observe(ddi.OpContextCreate, ze.ResultErrorUninitialized, time.Microsecond)
	m.Observe(ddi.OpDeviceGet, ze.ResultErrorUnsupportedVersion, time.Microsecond)

	t.Run("calls by op and result", func(t *testing.T) {
		assert.Equal(t, float64(2), testutil.ToFloat64(m.calls.WithLabelValues("zeContextCreate", ze.ResultSuccess.String())))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.calls.WithLabelValues("zeContextCreate", ze.ResultErrorUninitialized.String())))
		assert.Equal(t, 3, testutil.CollectAndCount(m.calls))
	})

	t.Run("failures by category", func(t *testing.T) {
		assert.Equal(t, float64(1), testutil.ToFloat64(m.failures.WithLabelValues("Context")))
		assert.Equal(t, float64(1), testutil.ToFloat64(m.failures.WithLabelValues("Device")))
	})

	t.Run("duration histogram", func(t *testing.T) {
		assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
	})
}

func TestDispatchMetrics_Drivers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDispatchMetrics(reg, "zetest")

	m.DriverLoaded("cpu", ze.APIVersion1_14)
	m.DriverLoaded("other", ze.APIVersion1_3)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.driversLoaded))
	assert.Equal(t, float64(1014), testutil.ToFloat64(m.records.WithLabelValues("cpu")))

	m.DriverUnloaded("cpu")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.driversLoaded))
	assert.Equal(t, 1, testutil.CollectAndCount(m.records))
}

func TestDispatchMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewDispatchMetrics(reg, "zetest")
	assert.Panics(t, func() {
		NewDispatchMetrics(reg, "zetest")
	})
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDispatchMetrics(reg, "zetest")
	m.Observe(ddi.OpInit, ze.ResultSuccess, time.Millisecond)

	rr := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, `zetest_dispatch_calls_total{op="zeInit"`))
	assert.Contains(t, body, "zetest_drivers_loaded 0")
}
