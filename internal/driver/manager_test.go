package driver

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/registry"
	"github.com/fxnlabs/level-zero-loader/internal/trace"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockDriver struct {
	mock.Mock
	name    string
	version ze.APIVersion
}

func (m *mockDriver) Name() string              { return m.name }
func (m *mockDriver) APIVersion() ze.APIVersion { return m.version }

func (m *mockDriver) Open(issuer Issuer) (*ddi.Tables, error) {
	args := m.Called(issuer)
	tables, _ := args.Get(0).(*ddi.Tables)
	return tables, args.Error(1)
}

func (m *mockDriver) Close() error {
	return m.Called().Error(0)
}

// versionTables implements only zeDriverGetApiVersion.
func versionTables(v ze.APIVersion) *ddi.Tables {
	t := ddi.NewTables()
	t.Driver.GetApiVersion = ddi.Impl[ddi.PfnDriverGetApiVersion](func(_ ze.DriverHandle, out *ze.APIVersion) ze.Result {
		*out = v
		return ze.ResultSuccess
	})
	return t
}

type loadEvent struct {
	name    string
	version ze.APIVersion
	loaded  bool
}

type recordingObserver struct {
	mu     sync.Mutex
	events []loadEvent
	calls  []ddi.OpID
}

func (o *recordingObserver) DriverLoaded(name string, v ze.APIVersion) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, loadEvent{name: name, version: v, loaded: true})
}

func (o *recordingObserver) DriverUnloaded(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, loadEvent{name: name})
}

func (o *recordingObserver) Observe(op ddi.OpID, _ ze.Result, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, op)
}

func TestManager_Negotiate(t *testing.T) {
	testCases := []struct {
		name     string
		driver   ze.APIVersion
		ceiling  ze.APIVersion
		override ze.APIVersion
		want     ze.APIVersion
	}{
		{name: "driver matches loader", driver: ze.APIVersion1_14, want: ze.APIVersion1_14},
		{name: "loader ceiling", driver: ze.APIVersion1_14, ceiling: ze.APIVersion1_5, want: ze.APIVersion1_5},
		{name: "older driver", driver: ze.APIVersion1_2, ceiling: ze.APIVersion1_5, want: ze.APIVersion1_2},
		{name: "per driver override", driver: ze.APIVersion1_14, ceiling: ze.APIVersion1_5, override: ze.APIVersion1_3, want: ze.APIVersion1_3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var opts []ManagerOption
			if tc.ceiling != 0 {
				opts = append(opts, WithAPIVersion(tc.ceiling))
			}
			mgr := NewManager(registry.New(zap.NewNop()), zap.NewNop(), opts...)

			drv := &mockDriver{name: "fake", version: tc.driver}
			drv.On("Open", mock.Anything).Return(ddi.NewTables(), nil)
			drv.On("Close").Return(nil)

			require.NoError(t, mgr.Attach(drv, tc.override))
			rec, ok := mgr.Record("fake")
			require.True(t, ok)
			assert.Equal(t, tc.want, rec.Version())
			assert.True(t, rec.Valid())
			require.NoError(t, mgr.Close())
			drv.AssertExpectations(t)
		})
	}
}

func TestManager_OpenFailure(t *testing.T) {
	mgr := NewManager(registry.New(zap.NewNop()), zap.NewNop())
	drv := &mockDriver{name: "broken", version: ze.APIVersion1_0}
	drv.On("Open", mock.Anything).Return(nil, errors.New("no device"))
	drv.On("Close").Return(nil)

	err := mgr.Attach(drv, 0)
	assert.ErrorContains(t, err, "open driver broken: no device")

	rec, ok := mgr.Record("broken")
	require.True(t, ok)
	assert.False(t, rec.Valid())
	assert.Equal(t, 0, mgr.Active())
	assert.Len(t, mgr.Records(), 1)

	require.NoError(t, mgr.Close())
	assert.True(t, rec.TornDown())
}

func TestManager_Load(t *testing.T) {
	drv := &mockDriver{name: "manager-test", version: ze.APIVersion1_1}
	drv.On("Open", mock.Anything).Return(ddi.NewTables(), nil)
	drv.On("Close").Return(nil)
	Register("manager-test", func(*zap.Logger) (Driver, error) { return drv, nil })
	Register("manager-test-failing", func(*zap.Logger) (Driver, error) { return nil, errors.New("boom") })

	assert.Contains(t, Names(), "manager-test")
	assert.Panics(t, func() {
		Register("manager-test", func(*zap.Logger) (Driver, error) { return drv, nil })
	})

	mgr := NewManager(registry.New(zap.NewNop()), zap.NewNop())
	err := mgr.Load(
		Spec{Name: "manager-test"},
		Spec{Name: "missing"},
		Spec{Name: "manager-test-failing"},
	)
	assert.ErrorIs(t, err, ErrUnknownDriver)
	assert.ErrorContains(t, err, "create driver manager-test-failing: boom")
	assert.Equal(t, 1, mgr.Active())

	require.NoError(t, mgr.Close())
	drv.AssertExpectations(t)
}

func TestManager_Close(t *testing.T) {
	obs := &recordingObserver{}
	mgr := NewManager(registry.New(zap.NewNop()), zap.NewNop(), WithLoadObserver(obs))

	good := &mockDriver{name: "good", version: ze.APIVersion1_4}
	good.On("Open", mock.Anything).Return(ddi.NewTables(), nil)
	good.On("Close").Return(nil).Once()

	stuck := &mockDriver{name: "stuck", version: ze.APIVersion1_4}
	stuck.On("Open", mock.Anything).Return(ddi.NewTables(), nil)
	stuck.On("Close").Return(errors.New("busy")).Once()

	require.NoError(t, mgr.Attach(good, 0))
	require.NoError(t, mgr.Attach(stuck, 0))
	records := mgr.Records()

	err := mgr.Close()
	assert.ErrorContains(t, err, "close driver stuck: busy")
	for _, rec := range records {
		assert.True(t, rec.TornDown())
	}

	t.Run("second close is a no-op", func(t *testing.T) {
		assert.NoError(t, mgr.Close())
		assert.Empty(t, mgr.Records())
	})

	assert.Equal(t, []loadEvent{
		{name: "good", version: ze.APIVersion1_4, loaded: true},
		{name: "stuck", version: ze.APIVersion1_4, loaded: true},
		{name: "good"},
		{name: "stuck"},
	}, obs.events)
	good.AssertExpectations(t)
	stuck.AssertExpectations(t)
}

func TestManager_CloseDisabledDriver(t *testing.T) {
	obs := &recordingObserver{}
	mgr := NewManager(registry.New(zap.NewNop()), zap.NewNop(), WithLoadObserver(obs))

	drv := &mockDriver{name: "paused", version: ze.APIVersion1_4}
	drv.On("Open", mock.Anything).Return(ddi.NewTables(), nil)
	drv.On("Close").Return(nil)
	require.NoError(t, mgr.Attach(drv, 0))

	rec, ok := mgr.Record("paused")
	require.True(t, ok)
	rec.Disable()
	require.NoError(t, mgr.Close())

	assert.Equal(t, []loadEvent{
		{name: "paused", version: ze.APIVersion1_4, loaded: true},
		{name: "paused"},
	}, obs.events)
}

func TestManager_CloseNeverActivated(t *testing.T) {
	obs := &recordingObserver{}
	mgr := NewManager(registry.New(zap.NewNop()), zap.NewNop(), WithLoadObserver(obs))

	drv := &mockDriver{name: "broken", version: ze.APIVersion1_4}
	drv.On("Open", mock.Anything).Return((*ddi.Tables)(nil), errors.New("no device"))
	drv.On("Close").Return(nil)
	require.Error(t, mgr.Attach(drv, 0))
	require.NoError(t, mgr.Close())

	assert.Empty(t, obs.events)
}

func TestManager_TraceLayer(t *testing.T) {
	obs := &recordingObserver{}
	layer := trace.NewLayer(trace.WithObserver(obs))
	mgr := NewManager(registry.New(zap.NewNop()), zap.NewNop(), WithTraceLayer(layer))

	drv := &mockDriver{name: "traced", version: ze.APIVersion1_6}
	drv.On("Open", mock.Anything).Return(versionTables(ze.APIVersion1_6), nil)
	drv.On("Close").Return(nil)
	require.NoError(t, mgr.Attach(drv, 0))
	t.Cleanup(func() { _ = mgr.Close() })

	rec, ok := mgr.Record("traced")
	require.True(t, ok)
	fn, ok := rec.Tables().Driver.GetApiVersion.Get()
	require.True(t, ok)

	var v ze.APIVersion
	assert.Equal(t, ze.ResultSuccess, fn(1, &v))
	assert.Equal(t, ze.APIVersion1_6, v)
	assert.Equal(t, []ddi.OpID{ddi.OpDriverGetApiVersion}, obs.calls)
	assert.False(t, rec.Tables().Driver.Get.Implemented())
}
