package trace

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type countingObserver struct {
	ops     []ddi.OpID
	results []ze.Result
}

func (o *countingObserver) Observe(op ddi.OpID, result ze.Result, _ time.Duration) {
	o.ops = append(o.ops, op)
	o.results = append(o.results, result)
}

func deviceTables(seen *ze.DeviceHandle) *ddi.Tables {
	t := ddi.NewTables()
	t.Device.GetProperties = ddi.Impl[ddi.PfnDeviceGetProperties](func(h ze.DeviceHandle, p *ze.DeviceProperties) ze.Result {
		*seen = h
		p.VendorID = 0x8086
		return ze.ResultSuccess
	})
	t.Driver.GetDefaultContext = ddi.Impl[ddi.PfnDriverGetDefaultContext](func(h ze.DriverHandle) ze.ContextHandle {
		if h == 1 {
			return 77
		}
		return 0
	})
	return t
}

func TestLayer_Wrap(t *testing.T) {
	var seen ze.DeviceHandle
	src := deviceTables(&seen)
	src.Image = nil

	wrapped := NewLayer().Wrap(src)
	require.NotSame(t, src, wrapped)
	require.NoError(t, wrapped.Validate())
	assert.Equal(t, src.Implemented(), wrapped.Implemented())
	assert.Nil(t, wrapped.Image)
	assert.False(t, wrapped.Has(ddi.OpDeviceGetStatus))
	assert.Nil(t, NewLayer().Wrap(nil))

	fn, ok := wrapped.Device.GetProperties.Get()
	require.True(t, ok)
	var props ze.DeviceProperties
	assert.Equal(t, ze.ResultSuccess, fn(5, &props))
	assert.Equal(t, ze.DeviceHandle(5), seen)
	assert.Equal(t, uint32(0x8086), props.VendorID)
}

func TestLayer_Callbacks(t *testing.T) {
	var seen ze.DeviceHandle
	var order []string
	var epilogueResult ze.Result
	var epilogueVendor uint32

	prologue := Callbacks{}
	prologue.Device.GetProperties = func(params *DeviceGetPropertiesParams, _ ze.Result, user any, instance *any) {
		order = append(order, "prologue:"+user.(string))
		*params.PhDevice = 9
		*instance = "from prologue"
	}
	epilogue := Callbacks{}
	epilogue.Device.GetProperties = func(params *DeviceGetPropertiesParams, result ze.Result, _ any, instance *any) {
		order = append(order, "epilogue:"+(*instance).(string))
		epilogueResult = result
		epilogueVendor = (*params.PpDeviceProperties).VendorID
	}
	obs := &countingObserver{}

	layer := NewLayer(WithPrologue(prologue), WithEpilogue(epilogue), WithUserData("tracer"), WithObserver(obs))
	fn, ok := layer.Wrap(deviceTables(&seen)).Device.GetProperties.Get()
	require.True(t, ok)

	var props ze.DeviceProperties
	assert.Equal(t, ze.ResultSuccess, fn(5, &props))
	assert.Equal(t, ze.DeviceHandle(9), seen, "prologue rewrites the argument")
	assert.Equal(t, []string{"prologue:tracer", "epilogue:from prologue"}, order)
	assert.Equal(t, ze.ResultSuccess, epilogueResult)
	assert.Equal(t, uint32(0x8086), epilogueVendor)
	assert.Equal(t, []ddi.OpID{ddi.OpDeviceGetProperties}, obs.ops)
}

func TestLayer_HandleReturning(t *testing.T) {
	var results []ze.Result
	epilogue := Uniform(func(op ddi.OpID, _ any, result ze.Result) {
		assert.Equal(t, ddi.OpDriverGetDefaultContext, op)
		results = append(results, result)
	})
	var seen ze.DeviceHandle
	fn, ok := NewLayer(WithEpilogue(epilogue)).Wrap(deviceTables(&seen)).Driver.GetDefaultContext.Get()
	require.True(t, ok)

	assert.Equal(t, ze.ContextHandle(77), fn(1))
	assert.Zero(t, fn(2))
	assert.Equal(t, []ze.Result{ze.ResultSuccess, ze.ResultErrorInvalidNullHandle}, results)
}

func TestDumper(t *testing.T) {
	testCases := []struct {
		name       string
		opts       []DumperOption
		want       string
		wantParams bool
	}{
		{
			name: "results only",
			want: "zeDeviceGetProperties -> ZE_RESULT_SUCCESS\n",
		},
		{
			name:       "with params",
			opts:       []DumperOption{WithParams()},
			want:       "zeDeviceGetProperties -> ZE_RESULT_SUCCESS &",
			wantParams: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			d := NewDumper(&buf, tc.opts...)
			var seen ze.DeviceHandle
			fn, _ := NewLayer(WithEpilogue(Uniform(d.Hook))).Wrap(deviceTables(&seen)).Device.GetProperties.Get()

			var props ze.DeviceProperties
			fn(3, &props)
			assert.True(t, strings.HasPrefix(buf.String(), tc.want), buf.String())
			assert.Equal(t, tc.wantParams, strings.Contains(buf.String(), "DeviceGetPropertiesParams"))
		})
	}
}

func TestLogHook(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	hook := LogHook(zap.New(core))

	hook(ddi.OpInit, nil, ze.ResultSuccess)
	hook(ddi.OpDeviceGet, nil, ze.ResultErrorUninitialized)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Call failed", entry.Message)
	assert.Equal(t, "zeDeviceGet", entry.ContextMap()["op"])
}
