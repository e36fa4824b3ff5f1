package cpu

import (
	"testing"
	"time"
	"unsafe"

	"github.com/fxnlabs/level-zero-loader/internal/driver"
	"github.com/fxnlabs/level-zero-loader/internal/loader"
	"github.com/fxnlabs/level-zero-loader/internal/registry"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	l   *loader.Loader
	mgr *driver.Manager
	drv ze.DriverHandle
	dev ze.DeviceHandle
	ctx ze.ContextHandle
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zap.NewNop()
	reg := registry.New(log)
	mgr := driver.NewManager(reg, log)
	require.NoError(t, mgr.Attach(New(log), 0))
	t.Cleanup(func() { _ = mgr.Close() })

	f := &fixture{l: loader.New(reg), mgr: mgr}
	require.Equal(t, ze.ResultSuccess, f.l.Init(0))

	count := uint32(1)
	drivers := make([]ze.DriverHandle, 1)
	require.Equal(t, ze.ResultSuccess, f.l.DriverGet(&count, drivers))
	f.drv = drivers[0]

	devices := make([]ze.DeviceHandle, 1)
	require.Equal(t, ze.ResultSuccess, f.l.DeviceGet(f.drv, &count, devices))
	f.dev = devices[0]

	f.ctx = f.l.DriverGetDefaultContext(f.drv)
	require.NotZero(t, f.ctx)
	return f
}

// floats allocates shared memory for n float32 values.
func (f *fixture) floats(t *testing.T, n int) (unsafe.Pointer, []float32) {
	t.Helper()
	var ptr unsafe.Pointer
	res := f.l.MemAllocShared(f.ctx, &ze.DeviceMemAllocDesc{}, &ze.HostMemAllocDesc{}, uint64(n*4), 0, f.dev, &ptr)
	require.Equal(t, ze.ResultSuccess, res)
	t.Cleanup(func() { f.l.MemFree(f.ctx, ptr) })
	return ptr, unsafe.Slice((*float32)(ptr), n)
}

func (f *fixture) kernel(t *testing.T, name string) ze.KernelHandle {
	t.Helper()
	var mod ze.ModuleHandle
	desc := &ze.ModuleDesc{Format: ze.ModuleFormatNative, InputModule: []byte(name + "\n")}
	require.Equal(t, ze.ResultSuccess, f.l.ModuleCreate(f.ctx, f.dev, desc, &mod, nil))

	var k ze.KernelHandle
	require.Equal(t, ze.ResultSuccess, f.l.KernelCreate(mod, &ze.KernelDesc{KernelName: name}, &k))
	t.Cleanup(func() {
		f.l.KernelDestroy(k)
		f.l.ModuleDestroy(mod)
	})
	return k
}

func (f *fixture) setPointer(t *testing.T, k ze.KernelHandle, index uint32, ptr unsafe.Pointer) {
	t.Helper()
	res := f.l.KernelSetArgumentValue(k, index, uint64(unsafe.Sizeof(ptr)), unsafe.Pointer(&ptr))
	require.Equal(t, ze.ResultSuccess, res)
}

func (f *fixture) setUint32(t *testing.T, k ze.KernelHandle, index uint32, v uint32) {
	t.Helper()
	require.Equal(t, ze.ResultSuccess, f.l.KernelSetArgumentValue(k, index, 4, unsafe.Pointer(&v)))
}

// submit records a command list with build and runs it on a fresh queue,
// waiting on a fence.
func (f *fixture) submit(t *testing.T, build func(cl ze.CommandListHandle)) {
	t.Helper()
	var cl ze.CommandListHandle
	require.Equal(t, ze.ResultSuccess, f.l.CommandListCreate(f.ctx, f.dev, &ze.CommandListDesc{}, &cl))
	defer f.l.CommandListDestroy(cl)
	build(cl)
	require.Equal(t, ze.ResultSuccess, f.l.CommandListClose(cl))

	var q ze.CommandQueueHandle
	require.Equal(t, ze.ResultSuccess, f.l.CommandQueueCreate(f.ctx, f.dev, &ze.CommandQueueDesc{Mode: ze.CommandQueueModeAsynchronous}, &q))
	defer f.l.CommandQueueDestroy(q)

	var fence ze.FenceHandle
	require.Equal(t, ze.ResultSuccess, f.l.FenceCreate(q, &ze.FenceDesc{}, &fence))
	defer f.l.FenceDestroy(fence)

	require.Equal(t, ze.ResultSuccess, f.l.CommandQueueExecuteCommandLists(q, 1, []ze.CommandListHandle{cl}, fence))
	require.Equal(t, ze.ResultSuccess, f.l.FenceHostSynchronize(fence, ze.TimeoutInfinite))
	assert.Equal(t, ze.ResultSuccess, f.l.FenceQueryStatus(fence))
	require.Equal(t, ze.ResultSuccess, f.l.CommandQueueSynchronize(q, ze.TimeoutInfinite))
}

func TestDriver_Enumerate(t *testing.T) {
	f := newFixture(t)

	var count uint32
	require.Equal(t, ze.ResultSuccess, f.l.DriverGet(&count, nil))
	assert.Equal(t, uint32(1), count)

	var version ze.APIVersion
	require.Equal(t, ze.ResultSuccess, f.l.DriverGetApiVersion(f.drv, &version))
	assert.Equal(t, APIVersion, version)

	var props ze.DeviceProperties
	require.Equal(t, ze.ResultSuccess, f.l.DeviceGetProperties(f.dev, &props))
	assert.Equal(t, ze.DeviceTypeCPU, props.Type)
	assert.Contains(t, props.Name, "CPU")
	assert.NotEqual(t, ze.UUID{}, props.UUID)

	count = 0
	require.Equal(t, ze.ResultSuccess, f.l.DeviceGetSubDevices(f.dev, &count, nil))
	assert.Zero(t, count)

	count = 0
	require.Equal(t, ze.ResultSuccess, f.l.DeviceGetMemoryProperties(f.dev, &count, nil))
	require.Equal(t, uint32(1), count)
	mem := make([]ze.DeviceMemoryProperties, count)
	require.Equal(t, ze.ResultSuccess, f.l.DeviceGetMemoryProperties(f.dev, &count, mem))
	assert.Equal(t, "host", mem[0].Name)

	var peer ze.Bool
	require.Equal(t, ze.ResultSuccess, f.l.DeviceCanAccessPeer(f.dev, f.dev, &peer))
	assert.Equal(t, ze.True, peer)

	count = 0
	require.Equal(t, ze.ResultSuccess, f.l.DriverGetExtensionProperties(f.drv, &count, nil))
	assert.Equal(t, uint32(len(extensions)), count)
}

func TestDriver_MatMul(t *testing.T) {
	testCases := []struct {
		name    string
		m, k, n int
		setupA  func(a []float32, m, k int)
		setupB  func(b []float32, k, n int)
	}{
		{
			name: "identity",
			m:    3, k: 3, n: 3,
			setupA: func(a []float32, m, k int) {
				for i := 0; i < m; i++ {
					a[i*k+i] = 1
				}
			},
			setupB: func(b []float32, k, n int) {
				for i := range b {
					b[i] = float32(i + 1)
				}
			},
		},
		{
			name: "rectangular",
			m:    2, k: 4, n: 3,
			setupA: func(a []float32, m, k int) {
				for i := range a {
					a[i] = float32(i)
				}
			},
			setupB: func(b []float32, k, n int) {
				for i := range b {
					b[i] = float32(i%3) - 1
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			pa, a := f.floats(t, tc.m*tc.k)
			pb, b := f.floats(t, tc.k*tc.n)
			pc, c := f.floats(t, tc.m*tc.n)
			tc.setupA(a, tc.m, tc.k)
			tc.setupB(b, tc.k, tc.n)

			k := f.kernel(t, "matmul")
			f.setPointer(t, k, 0, pa)
			f.setPointer(t, k, 1, pb)
			f.setPointer(t, k, 2, pc)
			f.setUint32(t, k, 3, uint32(tc.m))
			f.setUint32(t, k, 4, uint32(tc.k))
			f.setUint32(t, k, 5, uint32(tc.n))

			f.submit(t, func(cl ze.CommandListHandle) {
				res := f.l.CommandListAppendLaunchKernel(cl, k, &ze.GroupCount{GroupCountX: 1, GroupCountY: 1, GroupCountZ: 1}, 0, 0, nil)
				require.Equal(t, ze.ResultSuccess, res)
			})

			for i := 0; i < tc.m; i++ {
				for j := 0; j < tc.n; j++ {
					var want float32
					for l := 0; l < tc.k; l++ {
						want += a[i*tc.k+l] * b[l*tc.n+j]
					}
					assert.InDelta(t, want, c[i*tc.n+j], 1e-5, "C[%d][%d]", i, j)
				}
			}
		})
	}
}

func TestDriver_VectorAddImmediate(t *testing.T) {
	f := newFixture(t)
	const n = 16
	pa, a := f.floats(t, n)
	pb, b := f.floats(t, n)
	pc, c := f.floats(t, n)
	for i := range a {
		a[i] = float32(i)
		b[i] = float32(2 * i)
	}

	k := f.kernel(t, "vector_add")
	f.setPointer(t, k, 0, pa)
	f.setPointer(t, k, 1, pb)
	f.setPointer(t, k, 2, pc)
	f.setUint32(t, k, 3, n)

	var cl ze.CommandListHandle
	require.Equal(t, ze.ResultSuccess, f.l.CommandListCreateImmediate(f.ctx, f.dev, &ze.CommandQueueDesc{Index: 2}, &cl))
	defer f.l.CommandListDestroy(cl)

	var immediate ze.Bool
	require.Equal(t, ze.ResultSuccess, f.l.CommandListIsImmediate(cl, &immediate))
	assert.Equal(t, ze.True, immediate)
	var index uint32
	require.Equal(t, ze.ResultSuccess, f.l.CommandListImmediateGetIndex(cl, &index))
	assert.Equal(t, uint32(2), index)

	res := f.l.CommandListAppendLaunchKernel(cl, k, &ze.GroupCount{GroupCountX: n, GroupCountY: 1, GroupCountZ: 1}, 0, 0, nil)
	require.Equal(t, ze.ResultSuccess, res)
	require.Equal(t, ze.ResultSuccess, f.l.CommandListHostSynchronize(cl, 0))

	for i := range c {
		assert.Equal(t, float32(3*i), c[i])
	}
}

func TestDriver_FillCopyAndEvents(t *testing.T) {
	f := newFixture(t)
	const n = 8
	src, srcData := f.floats(t, n)
	dst, dstData := f.floats(t, n)

	var pool ze.EventPoolHandle
	poolDesc := &ze.EventPoolDesc{Flags: ze.EventPoolFlagHostVisible | ze.EventPoolFlagKernelTimestamp, Count: 2}
	require.Equal(t, ze.ResultSuccess, f.l.EventPoolCreate(f.ctx, poolDesc, 1, []ze.DeviceHandle{f.dev}, &pool))
	defer f.l.EventPoolDestroy(pool)

	var gate, done ze.EventHandle
	require.Equal(t, ze.ResultSuccess, f.l.EventCreate(pool, &ze.EventDesc{Index: 0}, &gate))
	require.Equal(t, ze.ResultSuccess, f.l.EventCreate(pool, &ze.EventDesc{Index: 1, Signal: ze.EventScopeFlagHost}, &done))
	defer f.l.EventDestroy(gate)
	defer f.l.EventDestroy(done)

	var dup ze.EventHandle
	assert.Equal(t, ze.ResultErrorInvalidArgument, f.l.EventCreate(pool, &ze.EventDesc{Index: 1}, &dup))
	assert.Equal(t, ze.ResultErrorHandleObjectInUse, f.l.EventPoolDestroy(pool))

	var cl ze.CommandListHandle
	require.Equal(t, ze.ResultSuccess, f.l.CommandListCreate(f.ctx, f.dev, &ze.CommandListDesc{}, &cl))
	defer f.l.CommandListDestroy(cl)

	pattern := float32(1.5)
	require.Equal(t, ze.ResultSuccess, f.l.CommandListAppendMemoryFill(cl, src, unsafe.Pointer(&pattern), 4, n*4, 0, 1, []ze.EventHandle{gate}))
	require.Equal(t, ze.ResultSuccess, f.l.CommandListAppendBarrier(cl, 0, 0, nil))
	require.Equal(t, ze.ResultSuccess, f.l.CommandListAppendMemoryCopy(cl, dst, src, n*4, done, 0, nil))
	require.Equal(t, ze.ResultSuccess, f.l.CommandListClose(cl))
	assert.Equal(t, ze.ResultErrorInvalidArgument, f.l.CommandListAppendBarrier(cl, 0, 0, nil), "closed lists reject appends")

	var q ze.CommandQueueHandle
	require.Equal(t, ze.ResultSuccess, f.l.CommandQueueCreate(f.ctx, f.dev, &ze.CommandQueueDesc{}, &q))
	defer f.l.CommandQueueDestroy(q)
	require.Equal(t, ze.ResultSuccess, f.l.CommandQueueExecuteCommandLists(q, 1, []ze.CommandListHandle{cl}, 0))

	// The list is blocked on gate until the host signals it.
	assert.Equal(t, ze.ResultNotReady, f.l.CommandQueueSynchronize(q, 0))
	assert.Equal(t, ze.ResultNotReady, f.l.EventHostSynchronize(done, 1000))
	assert.Equal(t, ze.ResultNotReady, f.l.EventQueryStatus(done))

	require.Equal(t, ze.ResultSuccess, f.l.EventHostSignal(gate))
	require.Equal(t, ze.ResultSuccess, f.l.EventHostSynchronize(done, ze.TimeoutInfinite))
	require.Equal(t, ze.ResultSuccess, f.l.CommandQueueSynchronize(q, ze.TimeoutInfinite))

	for i := 0; i < n; i++ {
		assert.Equal(t, float32(1.5), srcData[i])
		assert.Equal(t, float32(1.5), dstData[i])
	}

	var ts ze.KernelTimestampResult
	require.Equal(t, ze.ResultSuccess, f.l.EventQueryKernelTimestamp(done, &ts))
	assert.LessOrEqual(t, ts.Global.KernelStart, ts.Global.KernelEnd)

	var scope ze.EventScopeFlags
	require.Equal(t, ze.ResultSuccess, f.l.EventGetSignalScope(done, &scope))
	assert.Equal(t, ze.EventScopeFlagHost, scope)

	require.Equal(t, ze.ResultSuccess, f.l.EventHostReset(done))
	assert.Equal(t, ze.ResultNotReady, f.l.EventQueryStatus(done))
}

func TestDriver_QueueFullStaysResponsive(t *testing.T) {
	f := newFixture(t)

	var pool ze.EventPoolHandle
	require.Equal(t, ze.ResultSuccess, f.l.EventPoolCreate(f.ctx, &ze.EventPoolDesc{Count: 1}, 1, []ze.DeviceHandle{f.dev}, &pool))
	defer f.l.EventPoolDestroy(pool)
	var gate ze.EventHandle
	require.Equal(t, ze.ResultSuccess, f.l.EventCreate(pool, &ze.EventDesc{Index: 0}, &gate))
	defer f.l.EventDestroy(gate)

	var cl ze.CommandListHandle
	require.Equal(t, ze.ResultSuccess, f.l.CommandListCreate(f.ctx, f.dev, &ze.CommandListDesc{}, &cl))
	defer f.l.CommandListDestroy(cl)
	require.Equal(t, ze.ResultSuccess, f.l.CommandListAppendWaitOnEvents(cl, 1, []ze.EventHandle{gate}))
	require.Equal(t, ze.ResultSuccess, f.l.CommandListClose(cl))

	var q ze.CommandQueueHandle
	require.Equal(t, ze.ResultSuccess, f.l.CommandQueueCreate(f.ctx, f.dev, &ze.CommandQueueDesc{}, &q))

	// The worker blocks on the first list and the rest fill the channel.
	lists := []ze.CommandListHandle{cl}
	for i := 0; i < queueDepth+1; i++ {
		require.Equal(t, ze.ResultSuccess, f.l.CommandQueueExecuteCommandLists(q, 1, lists, 0))
	}
	blocked := make(chan ze.Result, 1)
	go func() { blocked <- f.l.CommandQueueExecuteCommandLists(q, 1, lists, 0) }()

	within := func(name string, fn func() ze.Result) ze.Result {
		t.Helper()
		out := make(chan ze.Result, 1)
		go func() { out <- fn() }()
		select {
		case res := <-out:
			return res
		case <-time.After(2 * time.Second):
			t.Fatalf("%s did not return", name)
			return 0
		}
	}

	assert.Equal(t, ze.ResultNotReady, within("poll", func() ze.Result { return f.l.CommandQueueSynchronize(q, 0) }))
	assert.Equal(t, ze.ResultNotReady, within("timed wait", func() ze.Result { return f.l.CommandQueueSynchronize(q, 1000) }))
	assert.Equal(t, ze.ResultSuccess, within("destroy", func() ze.Result { return f.l.CommandQueueDestroy(q) }))

	select {
	case res := <-blocked:
		assert.Contains(t, []ze.Result{ze.ResultSuccess, ze.ResultErrorUninitialized}, res)
	case <-time.After(2 * time.Second):
		t.Fatal("pending submission did not return after destroy")
	}
}

func TestDriver_Memory(t *testing.T) {
	f := newFixture(t)

	var ptr unsafe.Pointer
	require.Equal(t, ze.ResultSuccess, f.l.MemAllocDevice(f.ctx, &ze.DeviceMemAllocDesc{}, 256, 64, f.dev, &ptr))
	assert.Zero(t, uintptr(ptr)%64)

	interior := unsafe.Add(ptr, 100)
	var props ze.MemoryAllocationProperties
	var owner ze.DeviceHandle
	require.Equal(t, ze.ResultSuccess, f.l.MemGetAllocProperties(f.ctx, interior, &props, &owner))
	assert.Equal(t, ze.MemoryTypeDevice, props.Type)
	assert.Equal(t, f.dev, owner)

	var base unsafe.Pointer
	var size uint64
	require.Equal(t, ze.ResultSuccess, f.l.MemGetAddressRange(f.ctx, interior, &base, &size))
	assert.Equal(t, ptr, base)
	assert.Equal(t, uint64(256), size)

	assert.Equal(t, ze.ResultErrorInvalidArgument, f.l.MemFree(f.ctx, interior), "only base pointers can be freed")
	require.Equal(t, ze.ResultSuccess, f.l.MemFreeExt(f.ctx, &ze.MemoryFreeExtDesc{}, ptr))

	require.Equal(t, ze.ResultSuccess, f.l.MemGetAllocProperties(f.ctx, ptr, &props, nil))
	assert.Equal(t, ze.MemoryTypeUnknown, props.Type)

	assert.Equal(t, ze.ResultErrorInvalidSize, f.l.MemAllocHost(f.ctx, &ze.HostMemAllocDesc{}, 0, 0, &ptr))
	assert.Equal(t, ze.ResultErrorInvalidArgument, f.l.MemAllocHost(f.ctx, &ze.HostMemAllocDesc{}, 16, 3, &ptr))
}

func TestDriver_ContextOwnsAllocations(t *testing.T) {
	f := newFixture(t)

	var ctx ze.ContextHandle
	require.Equal(t, ze.ResultSuccess, f.l.ContextCreate(f.drv, &ze.ContextDesc{}, &ctx))
	require.Equal(t, ze.ResultSuccess, f.l.ContextGetStatus(ctx))

	var ptr unsafe.Pointer
	require.Equal(t, ze.ResultSuccess, f.l.MemAllocHost(ctx, &ze.HostMemAllocDesc{}, 64, 0, &ptr))
	require.Equal(t, ze.ResultSuccess, f.l.ContextDestroy(ctx))

	var props ze.MemoryAllocationProperties
	require.Equal(t, ze.ResultSuccess, f.l.MemGetAllocProperties(f.ctx, ptr, &props, nil))
	assert.Equal(t, ze.MemoryTypeUnknown, props.Type)

	assert.Equal(t, ze.ResultErrorInvalidArgument, f.l.ContextDestroy(f.ctx), "the default context outlives callers")
}

func TestDriver_ModuleBuild(t *testing.T) {
	f := newFixture(t)

	var mod ze.ModuleHandle
	var log ze.ModuleBuildLogHandle
	desc := &ze.ModuleDesc{Format: ze.ModuleFormatNative, InputModule: []byte("matmul\nfft\n")}
	assert.Equal(t, ze.ResultErrorModuleBuildFailure, f.l.ModuleCreate(f.ctx, f.dev, desc, &mod, &log))
	require.NotZero(t, log)

	var size uint64
	require.Equal(t, ze.ResultSuccess, f.l.ModuleBuildLogGetString(log, &size, nil))
	text := make([]byte, size)
	require.Equal(t, ze.ResultSuccess, f.l.ModuleBuildLogGetString(log, &size, text))
	assert.Contains(t, string(text), "fft")
	require.Equal(t, ze.ResultSuccess, f.l.ModuleBuildLogDestroy(log))

	var lastErr string
	require.Equal(t, ze.ResultSuccess, f.l.DriverGetLastErrorDescription(f.drv, &lastErr))
	assert.Contains(t, lastErr, "fft")

	desc.Format = ze.ModuleFormatILSPIRV
	assert.Equal(t, ze.ResultErrorModuleBuildFailure, f.l.ModuleCreate(f.ctx, f.dev, desc, &mod, nil))

	desc = &ze.ModuleDesc{Format: ze.ModuleFormatNative, InputModule: []byte("# builtins\nmatmul\n\nvector_add\nmatmul\n")}
	require.Equal(t, ze.ResultSuccess, f.l.ModuleCreate(f.ctx, f.dev, desc, &mod, nil))

	var count uint32
	require.Equal(t, ze.ResultSuccess, f.l.ModuleGetKernelNames(mod, &count, nil))
	names := make([]string, count)
	require.Equal(t, ze.ResultSuccess, f.l.ModuleGetKernelNames(mod, &count, names))
	assert.Equal(t, []string{"matmul", "vector_add"}, names)

	require.Equal(t, ze.ResultSuccess, f.l.ModuleDynamicLink(1, []ze.ModuleHandle{mod}, nil))

	var k ze.KernelHandle
	assert.Equal(t, ze.ResultErrorInvalidKernelName, f.l.KernelCreate(mod, &ze.KernelDesc{KernelName: "fft"}, &k))
	require.Equal(t, ze.ResultSuccess, f.l.KernelCreate(mod, &ze.KernelDesc{KernelName: "vector_add"}, &k))
	assert.Equal(t, ze.ResultErrorHandleObjectInUse, f.l.ModuleDestroy(mod))

	var kprops ze.KernelProperties
	require.Equal(t, ze.ResultSuccess, f.l.KernelGetProperties(k, &kprops))
	assert.Equal(t, uint32(4), kprops.NumKernelArgs)

	size = 0
	require.Equal(t, ze.ResultSuccess, f.l.KernelGetName(k, &size, nil))
	name := make([]byte, size)
	require.Equal(t, ze.ResultSuccess, f.l.KernelGetName(k, &size, name))
	assert.Equal(t, "vector_add\x00", string(name))

	require.Equal(t, ze.ResultSuccess, f.l.KernelDestroy(k))
	require.Equal(t, ze.ResultSuccess, f.l.ModuleDestroy(mod))
}

func TestKernel_Arguments(t *testing.T) {
	f := newFixture(t)
	k := f.kernel(t, "vector_add")

	v := uint32(1)
	assert.Equal(t, ze.ResultErrorInvalidKernelArgumentIndex, f.l.KernelSetArgumentValue(k, 4, 4, unsafe.Pointer(&v)))
	assert.Equal(t, ze.ResultErrorInvalidSize, f.l.KernelSetArgumentValue(k, 3, 8, unsafe.Pointer(&v)))
	assert.Equal(t, ze.ResultErrorInvalidNullPointer, f.l.KernelSetArgumentValue(k, 3, 4, nil))

	var cl ze.CommandListHandle
	require.Equal(t, ze.ResultSuccess, f.l.CommandListCreate(f.ctx, f.dev, &ze.CommandListDesc{}, &cl))
	defer f.l.CommandListDestroy(cl)
	groups := &ze.GroupCount{GroupCountX: 1, GroupCountY: 1, GroupCountZ: 1}
	assert.Equal(t, ze.ResultErrorInvalidArgument, f.l.CommandListAppendLaunchKernel(cl, k, groups, 0, 0, nil), "unset arguments")

	stack := make([]float32, 4)
	f.setPointer(t, k, 0, unsafe.Pointer(&stack[0]))
	assert.Equal(t, ze.ResultErrorInvalidArgument, f.l.CommandListAppendLaunchKernel(cl, k, groups, 0, 0, nil), "pointers outside device allocations")

	var x, y, z uint32
	require.Equal(t, ze.ResultSuccess, f.l.KernelSuggestGroupSize(k, 4096, 6, 1, &x, &y, &z))
	assert.Equal(t, uint32(1024), x)
	assert.Equal(t, uint32(1), y)
	assert.Equal(t, uint32(1), z)
	assert.Equal(t, ze.ResultErrorInvalidArgument, f.l.KernelSetGroupSize(k, 64, 64, 1))
	assert.Equal(t, ze.ResultSuccess, f.l.KernelSetGroupSize(k, 32, 32, 1))
}

func TestDriver_UnsupportedEntries(t *testing.T) {
	f := newFixture(t)

	var img ze.ImageHandle
	assert.Equal(t, ze.ResultErrorUninitialized, f.l.ImageCreate(f.ctx, f.dev, &ze.ImageDesc{}, &img), "absent category")

	var ipc ze.IpcMemHandle
	assert.Equal(t, ze.ResultErrorUninitialized, f.l.MemGetIpcHandle(f.ctx, nil, &ipc), "unimplemented entry")
}

func TestDriver_Teardown(t *testing.T) {
	f := newFixture(t)

	var q ze.CommandQueueHandle
	require.Equal(t, ze.ResultSuccess, f.l.CommandQueueCreate(f.ctx, f.dev, &ze.CommandQueueDesc{}, &q))
	require.NoError(t, f.mgr.Close())

	assert.Equal(t, ze.ResultErrorUninitialized, f.l.CommandQueueSynchronize(q, 0))
	assert.Equal(t, ze.ResultErrorUninitialized, f.l.DeviceGetStatus(f.dev))
	assert.Zero(t, f.l.DriverGetDefaultContext(f.drv))

	var count uint32
	assert.Equal(t, ze.ResultErrorUninitialized, f.l.DriverGet(&count, nil))
}
