package app

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/fxnlabs/level-zero-loader/internal/config"
	"github.com/fxnlabs/level-zero-loader/internal/driver"
	"github.com/fxnlabs/level-zero-loader/internal/loader"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Logger.Verbosity = "error"
	return cfg
}

func firstDriver(t *testing.T, l *loader.Loader) ze.DriverHandle {
	t.Helper()
	require.Equal(t, ze.ResultSuccess, l.Init(0))
	count := uint32(0)
	require.Equal(t, ze.ResultSuccess, l.DriverGet(&count, nil))
	require.Equal(t, uint32(1), count)
	drivers := make([]ze.DriverHandle, count)
	require.Equal(t, ze.ResultSuccess, l.DriverGet(&count, drivers))
	return drivers[0]
}

func TestModule_Lifecycle(t *testing.T) {
	var (
		l   *loader.Loader
		mgr *driver.Manager
	)
	app := fxtest.New(t, Module(testConfig()), fx.Populate(&l, &mgr))
	app.RequireStart()

	assert.Equal(t, 1, mgr.Active())
	hDriver := firstDriver(t, l)

	var v ze.APIVersion
	require.Equal(t, ze.ResultSuccess, l.DriverGetApiVersion(hDriver, &v))
	assert.Equal(t, ze.APIVersionCurrent, v)

	app.RequireStop()
	assert.Equal(t, 0, mgr.Active())
	assert.Equal(t, ze.ResultErrorUninitialized, l.DriverGetApiVersion(hDriver, &v))
}

func TestModule_DriverVersionOverride(t *testing.T) {
	cfg := testConfig()
	cfg.Loader.Drivers = []config.DriverConfig{{Name: "cpu", APIVersion: ze.APIVersion1_2}}

	var l *loader.Loader
	app := fxtest.New(t, Module(cfg), fx.Populate(&l))
	app.RequireStart()
	defer app.RequireStop()

	hDriver := firstDriver(t, l)
	var desc string
	assert.Equal(t, ze.ResultErrorUnsupportedVersion, l.DriverGetLastErrorDescription(hDriver, &desc))
	assert.Zero(t, l.DriverGetDefaultContext(hDriver))

	var v ze.APIVersion
	require.Equal(t, ze.ResultSuccess, l.DriverGetApiVersion(hDriver, &v))
	assert.Equal(t, ze.APIVersion1_14, v)
}

func TestModule_Tracing(t *testing.T) {
	cfg := testConfig()
	cfg.Tracing.Enabled = true

	var buf bytes.Buffer
	var l *loader.Loader
	app := fxtest.New(t,
		Module(cfg),
		fx.Provide(fx.Annotate(
			func() io.Writer { return &buf },
			fx.ResultTags(`name:"trace_output"`),
		)),
		fx.Populate(&l),
	)
	app.RequireStart()
	defer app.RequireStop()

	firstDriver(t, l)
	assert.Contains(t, buf.String(), "zeInit -> ZE_RESULT_SUCCESS\n")
	assert.Contains(t, buf.String(), "zeDriverGet -> ZE_RESULT_SUCCESS\n")
}

func TestModule_Metrics(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = "zetest"
	cfg.Metrics.ListenAddress = "127.0.0.1:0"

	reg := prometheus.NewRegistry()
	var l *loader.Loader
	app := fxtest.New(t,
		Module(cfg),
		fx.Provide(func() prometheus.Registerer { return reg }),
		fx.Populate(&l),
	)
	app.RequireStart()

	hDriver := firstDriver(t, l)
	var v ze.APIVersion
	l.DriverGetApiVersion(hDriver, &v)

	count, err := testutil.GatherAndCount(reg, "zetest_dispatch_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	app.RequireStop()
	count, err = testutil.GatherAndCount(reg, "zetest_driver_api_version")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestModule_NoDrivers(t *testing.T) {
	cfg := testConfig()
	cfg.Loader.Drivers = []config.DriverConfig{{Name: "missing"}}

	app := fx.New(Module(cfg), fx.NopLogger)
	require.NoError(t, app.Err())

	err := app.Start(context.Background())
	assert.ErrorIs(t, err, ErrNoDrivers)
	assert.ErrorIs(t, err, driver.ErrUnknownDriver)
}
