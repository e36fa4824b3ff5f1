package loader

import (
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/registry"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const sentinelVendor = 0xC0FFEE

// stub records every downstream call it receives.
type stub struct {
	calls   atomic.Int64
	drivers []ze.DriverHandle
	ctx     ze.ContextHandle
	linked  []ze.ModuleHandle
}

func (s *stub) tables() *ddi.Tables {
	t := ddi.NewTables()
	t.Global.Init = ddi.Impl[ddi.PfnInit](func(ze.InitFlags) ze.Result {
		s.calls.Add(1)
		return ze.ResultSuccess
	})
	t.Driver.Get = ddi.Impl[ddi.PfnDriverGet](func(pCount *uint32, phDrivers []ze.DriverHandle) ze.Result {
		s.calls.Add(1)
		if phDrivers == nil || *pCount == 0 {
			*pCount = uint32(len(s.drivers))
			return ze.ResultSuccess
		}
		*pCount = uint32(copy(phDrivers[:*pCount], s.drivers))
		return ze.ResultSuccess
	})
	t.Driver.GetDefaultContext = ddi.Impl[ddi.PfnDriverGetDefaultContext](func(ze.DriverHandle) ze.ContextHandle {
		s.calls.Add(1)
		return s.ctx
	})
	t.Device.GetProperties = ddi.Impl[ddi.PfnDeviceGetProperties](func(_ ze.DeviceHandle, p *ze.DeviceProperties) ze.Result {
		s.calls.Add(1)
		p.VendorID = sentinelVendor
		return ze.ResultSuccess
	})
	t.CommandQueue.GetOrdinal = ddi.Impl[ddi.PfnCommandQueueGetOrdinal](func(_ ze.CommandQueueHandle, p *uint32) ze.Result {
		s.calls.Add(1)
		*p = 7
		return ze.ResultSuccess
	})
	t.Module.DynamicLink = ddi.Impl[ddi.PfnModuleDynamicLink](func(n uint32, phModules []ze.ModuleHandle, _ *ze.ModuleBuildLogHandle) ze.Result {
		s.calls.Add(1)
		s.linked = append([]ze.ModuleHandle(nil), phModules[:n]...)
		return ze.ResultSuccess
	})
	return t
}

type env struct {
	reg *registry.Registry
	l   *Loader
}

func newEnv(opts ...Option) *env {
	reg := registry.New(zap.NewNop())
	return &env{reg: reg, l: New(reg, opts...)}
}

// record creates and activates a record serving s at version v.
func (e *env) record(t *testing.T, name string, v ze.APIVersion, s *stub) *registry.Record {
	t.Helper()
	rec := e.reg.NewRecord(name, v)
	if s != nil {
		require.NoError(t, e.reg.Activate(rec, s.tables()))
	}
	return rec
}

func TestLoader_Gate(t *testing.T) {
	testCases := []struct {
		name    string
		version ze.APIVersion
		setup   func(t *testing.T, e *env, rec *registry.Record)
		want    ze.Result
		calls   int64
	}{
		{
			name:    "never activated",
			version: ze.APIVersion1_14,
			want:    ze.ResultErrorUninitialized,
		},
		{
			name:    "disabled",
			version: ze.APIVersion1_14,
			setup: func(_ *testing.T, _ *env, rec *registry.Record) {
				rec.Disable()
			},
			want: ze.ResultErrorUninitialized,
		},
		{
			name:    "torn down",
			version: ze.APIVersion1_14,
			setup: func(t *testing.T, e *env, rec *registry.Record) {
				require.NoError(t, e.reg.Teardown(rec))
			},
			want: ze.ResultErrorUninitialized,
		},
		{
			name:    "version below minimum",
			version: ze.APIVersion1_0,
			want:    ze.ResultErrorUnsupportedVersion,
		},
		{
			name:    "version checked before sub-table",
			version: ze.APIVersion1_8,
			setup: func(_ *testing.T, _ *env, rec *registry.Record) {
				rec.Tables().CommandQueue = nil
			},
			want: ze.ResultErrorUnsupportedVersion,
		},
		{
			name:    "sub-table absent",
			version: ze.APIVersion1_14,
			setup: func(_ *testing.T, _ *env, rec *registry.Record) {
				rec.Tables().CommandQueue = nil
			},
			want: ze.ResultErrorUninitialized,
		},
		{
			name:    "entry unimplemented",
			version: ze.APIVersion1_14,
			setup: func(_ *testing.T, _ *env, rec *registry.Record) {
				rec.Tables().CommandQueue.GetOrdinal = ddi.Unimplemented[ddi.PfnCommandQueueGetOrdinal]()
			},
			want: ze.ResultErrorUninitialized,
		},
		{
			name:    "forwarded at exact minimum",
			version: ze.APIVersion1_9,
			want:    ze.ResultSuccess,
			calls:   1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv()
			s := &stub{}
			var rec *registry.Record
			if tc.name == "never activated" {
				rec = e.record(t, "drv", tc.version, nil)
			} else {
				rec = e.record(t, "drv", tc.version, s)
			}
			h := ze.CommandQueueHandle(rec.Issue())
			if tc.setup != nil {
				tc.setup(t, e, rec)
			}

			var ordinal uint32
			assert.Equal(t, tc.want, e.l.CommandQueueGetOrdinal(h, &ordinal))
			assert.Equal(t, tc.calls, s.calls.Load())
			assert.Equal(t, tc.want, e.l.Check(rec, ddi.OpCommandQueueGetOrdinal))
			if tc.want == ze.ResultSuccess {
				assert.Equal(t, uint32(7), ordinal)
			} else {
				assert.Zero(t, ordinal)
			}
		})
	}
}

func TestLoader_UnknownHandle(t *testing.T) {
	e := newEnv()
	s := &stub{}
	rec := e.record(t, "drv", ze.APIVersion1_14, s)
	h := rec.Issue()

	var props ze.DeviceProperties
	assert.Equal(t, ze.ResultErrorInvalidNullHandle, e.l.DeviceGetProperties(0, &props))
	assert.Equal(t, ze.ResultErrorInvalidNullHandle, e.l.DeviceGetProperties(ze.DeviceHandle(h+1000), &props))
	assert.Zero(t, s.calls.Load())

	require.NoError(t, rec.Release(h))
	assert.Equal(t, ze.ResultErrorInvalidNullHandle, e.l.DeviceGetProperties(ze.DeviceHandle(h), &props))
}

func TestLoader_ForwardsUnchanged(t *testing.T) {
	e := newEnv()
	s := &stub{}
	rec := e.record(t, "drv", ze.APIVersion1_0, s)
	h := ze.DeviceHandle(rec.Issue())

	var got ze.DeviceProperties
	var seenHandle ze.DeviceHandle
	var seenPtr *ze.DeviceProperties
	rec.Tables().Device.GetProperties = ddi.Impl[ddi.PfnDeviceGetProperties](func(hDevice ze.DeviceHandle, p *ze.DeviceProperties) ze.Result {
		s.calls.Add(1)
		seenHandle, seenPtr = hDevice, p
		p.VendorID = sentinelVendor
		return ze.ResultNotReady
	})

	assert.Equal(t, ze.ResultNotReady, e.l.DeviceGetProperties(h, &got))
	assert.Equal(t, h, seenHandle)
	assert.Same(t, &got, seenPtr)
	assert.Equal(t, uint32(sentinelVendor), got.VendorID)

	// Queries are not cached.
	got = ze.DeviceProperties{}
	assert.Equal(t, ze.ResultNotReady, e.l.DeviceGetProperties(h, &got))
	assert.Equal(t, uint32(sentinelVendor), got.VendorID)
	assert.Equal(t, int64(2), s.calls.Load())
}

func TestLoader_HandleReturningOps(t *testing.T) {
	e := newEnv()
	s := &stub{ctx: 42}
	rec := e.record(t, "drv", ze.APIVersion1_14, s)
	old := e.record(t, "old", ze.APIVersion1_13, &stub{ctx: 43})
	h := ze.DriverHandle(rec.Issue())

	assert.Equal(t, ze.ContextHandle(42), e.l.DriverGetDefaultContext(h))
	assert.Zero(t, e.l.DriverGetDefaultContext(0))
	assert.Zero(t, e.l.DriverGetDefaultContext(ze.DriverHandle(old.Issue())))

	rec.Tables().Driver.GetDefaultContext = ddi.Unimplemented[ddi.PfnDriverGetDefaultContext]()
	assert.Zero(t, e.l.DriverGetDefaultContext(h))

	require.NoError(t, e.reg.Teardown(rec))
	assert.Zero(t, e.l.DriverGetDefaultContext(h))
	assert.Equal(t, int64(1), s.calls.Load())
}

func TestLoader_HandleArrays(t *testing.T) {
	newPair := func(t *testing.T, opts ...Option) (*env, *stub, *registry.Record, *stub, *registry.Record) {
		e := newEnv(opts...)
		sa, sb := &stub{}, &stub{}
		a := e.record(t, "a", ze.APIVersion1_14, sa)
		b := e.record(t, "b", ze.APIVersion1_14, sb)
		return e, sa, a, sb, b
	}

	t.Run("first element torn down", func(t *testing.T) {
		e, sa, a, sb, b := newPair(t)
		mods := []ze.ModuleHandle{ze.ModuleHandle(a.Issue()), ze.ModuleHandle(b.Issue())}
		require.NoError(t, e.reg.Teardown(a))

		assert.Equal(t, ze.ResultErrorUninitialized, e.l.ModuleDynamicLink(2, mods, nil))
		assert.Zero(t, sa.calls.Load())
		assert.Zero(t, sb.calls.Load())
	})

	t.Run("later elements are not checked", func(t *testing.T) {
		e, _, a, sb, b := newPair(t)
		mods := []ze.ModuleHandle{ze.ModuleHandle(b.Issue()), ze.ModuleHandle(a.Issue()), 0}
		require.NoError(t, e.reg.Teardown(a))

		assert.Equal(t, ze.ResultSuccess, e.l.ModuleDynamicLink(3, mods, nil))
		assert.Equal(t, mods, sb.linked)
	})

	t.Run("empty array", func(t *testing.T) {
		e, _, _, _, _ := newPair(t)
		assert.Equal(t, ze.ResultErrorInvalidNullHandle, e.l.ModuleDynamicLink(0, nil, nil))
	})

	t.Run("strict mixed records", func(t *testing.T) {
		e, sa, a, _, b := newPair(t, WithStrictHandleArrays())
		mods := []ze.ModuleHandle{ze.ModuleHandle(a.Issue()), ze.ModuleHandle(b.Issue())}
		assert.Equal(t, ze.ResultErrorInvalidArgument, e.l.ModuleDynamicLink(2, mods, nil))
		assert.Zero(t, sa.calls.Load())
	})

	t.Run("strict unknown element", func(t *testing.T) {
		e, _, a, _, _ := newPair(t, WithStrictHandleArrays())
		mods := []ze.ModuleHandle{ze.ModuleHandle(a.Issue()), 9999}
		assert.Equal(t, ze.ResultErrorInvalidNullHandle, e.l.ModuleDynamicLink(2, mods, nil))
	})

	t.Run("strict homogeneous", func(t *testing.T) {
		e, sa, a, _, _ := newPair(t, WithStrictHandleArrays())
		mods := []ze.ModuleHandle{ze.ModuleHandle(a.Issue()), ze.ModuleHandle(a.Issue())}
		assert.Equal(t, ze.ResultSuccess, e.l.ModuleDynamicLink(2, mods, nil))
		assert.Equal(t, int64(1), sa.calls.Load())
	})
}

func TestLoader_Init(t *testing.T) {
	t.Run("no records", func(t *testing.T) {
		assert.Equal(t, ze.ResultErrorUninitialized, newEnv().l.Init(0))
	})

	t.Run("one usable record is enough", func(t *testing.T) {
		e := newEnv()
		e.record(t, "old", ze.APIVersion1_0, nil)
		s := &stub{}
		e.record(t, "good", ze.APIVersion1_0, s)
		assert.Equal(t, ze.ResultSuccess, e.l.Init(0))
		assert.Equal(t, int64(1), s.calls.Load())
	})

	t.Run("first failure is reported", func(t *testing.T) {
		e := newEnv()
		rec := e.record(t, "broken", ze.APIVersion1_0, &stub{})
		rec.Tables().Global.Init = ddi.Impl[ddi.PfnInit](func(ze.InitFlags) ze.Result { return ze.ResultErrorDeviceLost })
		e.record(t, "invalid", ze.APIVersion1_0, nil)
		assert.Equal(t, ze.ResultErrorDeviceLost, e.l.Init(0))
	})
}

func TestLoader_DriverGet(t *testing.T) {
	e := newEnv()
	sa := &stub{}
	a := e.record(t, "a", ze.APIVersion1_14, sa)
	sa.drivers = []ze.DriverHandle{ze.DriverHandle(a.Issue())}
	sb := &stub{}
	b := e.record(t, "b", ze.APIVersion1_14, sb)
	sb.drivers = []ze.DriverHandle{ze.DriverHandle(b.Issue()), ze.DriverHandle(b.Issue())}
	e.record(t, "dead", ze.APIVersion1_14, nil)

	var count uint32
	require.Equal(t, ze.ResultSuccess, e.l.DriverGet(&count, nil))
	assert.Equal(t, uint32(3), count)

	all := make([]ze.DriverHandle, count)
	require.Equal(t, ze.ResultSuccess, e.l.DriverGet(&count, all))
	assert.Equal(t, append(append([]ze.DriverHandle(nil), sa.drivers...), sb.drivers...), all)

	count = 2
	part := make([]ze.DriverHandle, 2)
	require.Equal(t, ze.ResultSuccess, e.l.DriverGet(&count, part))
	assert.Equal(t, uint32(2), count)
	assert.Equal(t, []ze.DriverHandle{sa.drivers[0], sb.drivers[0]}, part)

	assert.Equal(t, ze.ResultErrorInvalidNullPointer, e.l.DriverGet(nil, nil))

	t.Run("init drivers requires 1.10", func(t *testing.T) {
		old := newEnv()
		old.record(t, "old", ze.APIVersion1_9, &stub{})
		var n uint32
		res := old.l.InitDrivers(&n, nil, &ze.InitDriverTypeDesc{})
		assert.Equal(t, ze.ResultErrorUnsupportedVersion, res)
		assert.Equal(t, ze.ResultErrorInvalidNullPointer, old.l.InitDrivers(&n, nil, nil))
	})

	t.Run("init drivers runs once per record", func(t *testing.T) {
		e := newEnv()
		var inits []int
		for i := 0; i < 2; i++ {
			rec := e.record(t, string(rune('a'+i)), ze.APIVersion1_14, &stub{})
			h := ze.DriverHandle(rec.Issue())
			inits = append(inits, 0)
			idx := i
			rec.Tables().Global.InitDrivers = ddi.Impl[ddi.PfnInitDrivers](func(pCount *uint32, phDrivers []ze.DriverHandle, _ *ze.InitDriverTypeDesc) ze.Result {
				inits[idx]++
				if phDrivers == nil || *pCount == 0 {
					*pCount = 1
					return ze.ResultSuccess
				}
				phDrivers[0] = h
				*pCount = 1
				return ze.ResultSuccess
			})
		}
		desc := &ze.InitDriverTypeDesc{}

		var n uint32
		require.Equal(t, ze.ResultSuccess, e.l.InitDrivers(&n, nil, desc))
		assert.Equal(t, uint32(2), n)
		assert.Equal(t, []int{1, 1}, inits)

		got := make([]ze.DriverHandle, n)
		require.Equal(t, ze.ResultSuccess, e.l.InitDrivers(&n, got, desc))
		assert.Equal(t, uint32(2), n)
		assert.NotContains(t, got, ze.DriverHandle(0))
		assert.Equal(t, []int{2, 2}, inits)

		n = 1
		one := make([]ze.DriverHandle, 1)
		require.Equal(t, ze.ResultSuccess, e.l.InitDrivers(&n, one, desc))
		assert.Equal(t, uint32(1), n)
		assert.Equal(t, got[0], one[0])
		assert.Equal(t, []int{3, 3}, inits)
	})
}

func TestLoader_Concurrent(t *testing.T) {
	e := newEnv()
	stubs := []*stub{{}, {}, {}}
	var handles []ze.DeviceHandle
	for i, s := range stubs {
		rec := e.record(t, string(rune('a'+i)), ze.APIVersion1_14, s)
		handles = append(handles, ze.DeviceHandle(rec.Issue()))
	}

	const perWorker = 500
	var g errgroup.Group
	for w := 0; w < 12; w++ {
		h := handles[w%len(handles)]
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				var props ze.DeviceProperties
				if res := e.l.DeviceGetProperties(h, &props); res != ze.ResultSuccess {
					return res
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, s := range stubs {
		assert.Equal(t, int64(4*perWorker), s.calls.Load())
	}
}

// Pointer arguments reach the driver as the same address.
func TestLoader_PointerIdentity(t *testing.T) {
	e := newEnv()
	rec := e.record(t, "drv", ze.APIVersion1_14, &stub{})
	var seen unsafe.Pointer
	rec.Tables().Mem.Free = ddi.Impl[ddi.PfnMemFree](func(_ ze.ContextHandle, ptr unsafe.Pointer) ze.Result {
		seen = ptr
		return ze.ResultSuccess
	})
	buf := make([]byte, 8)
	p := unsafe.Pointer(&buf[0])
	require.Equal(t, ze.ResultSuccess, e.l.MemFree(ze.ContextHandle(rec.Issue()), p))
	assert.Equal(t, p, seen)
}
