//go:build integration

package integration

import (
	"bytes"
	"io"
	"testing"
	"unsafe"

	"github.com/fxnlabs/level-zero-loader/internal/app"
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

func TestVectorAdd_EndToEnd(t *testing.T) {
	cfg := config.Default()
	cfg.Logger.Verbosity = "error"
	cfg.Tracing.Enabled = true
	cfg.Metrics.Enabled = true
	cfg.Metrics.Namespace = "zeint"

	var (
		l   *loader.Loader
		mgr *driver.Manager
		buf bytes.Buffer
	)
	reg := prometheus.NewRegistry()
	fxApp := fxtest.New(t,
		app.Module(cfg),
		fx.Provide(
			func() prometheus.Registerer { return reg },
			fx.Annotate(
				func() io.Writer { return &buf },
				fx.ResultTags(`name:"trace_output"`),
			),
		),
		fx.Populate(&l, &mgr),
	)
	fxApp.RequireStart()
	defer fxApp.RequireStop()

	require.Equal(t, ze.ResultSuccess, l.Init(0))
	count := uint32(1)
	drivers := make([]ze.DriverHandle, 1)
	require.Equal(t, ze.ResultSuccess, l.DriverGet(&count, drivers))
	devices := make([]ze.DeviceHandle, 1)
	require.Equal(t, ze.ResultSuccess, l.DeviceGet(drivers[0], &count, devices))
	dev := devices[0]

	var ctx ze.ContextHandle
	require.Equal(t, ze.ResultSuccess, l.ContextCreate(drivers[0], &ze.ContextDesc{}, &ctx))
	defer l.ContextDestroy(ctx)

	const n = 64
	bufs := make([]unsafe.Pointer, 3)
	for i := range bufs {
		require.Equal(t, ze.ResultSuccess, l.MemAllocHost(ctx, &ze.HostMemAllocDesc{}, n*4, 0, &bufs[i]))
		defer l.MemFree(ctx, bufs[i])
	}
	a := unsafe.Slice((*float32)(bufs[0]), n)
	b := unsafe.Slice((*float32)(bufs[1]), n)
	c := unsafe.Slice((*float32)(bufs[2]), n)
	for i := 0; i < n; i++ {
		a[i] = float32(i)
		b[i] = float32(2 * i)
	}

	var mod ze.ModuleHandle
	desc := &ze.ModuleDesc{Format: ze.ModuleFormatNative, InputModule: []byte("vector_add\n")}
	require.Equal(t, ze.ResultSuccess, l.ModuleCreate(ctx, dev, desc, &mod, nil))
	defer l.ModuleDestroy(mod)

	var kern ze.KernelHandle
	require.Equal(t, ze.ResultSuccess, l.KernelCreate(mod, &ze.KernelDesc{KernelName: "vector_add"}, &kern))
	defer l.KernelDestroy(kern)

	ptrSize := uint64(unsafe.Sizeof(uintptr(0)))
	for i := range bufs {
		require.Equal(t, ze.ResultSuccess, l.KernelSetArgumentValue(kern, uint32(i), ptrSize, unsafe.Pointer(&bufs[i])))
	}
	size := uint32(n)
	require.Equal(t, ze.ResultSuccess, l.KernelSetArgumentValue(kern, 3, 4, unsafe.Pointer(&size)))

	var queue ze.CommandQueueHandle
	require.Equal(t, ze.ResultSuccess, l.CommandQueueCreate(ctx, dev, &ze.CommandQueueDesc{Mode: ze.CommandQueueModeAsynchronous}, &queue))
	defer l.CommandQueueDestroy(queue)

	var list ze.CommandListHandle
	require.Equal(t, ze.ResultSuccess, l.CommandListCreate(ctx, dev, &ze.CommandListDesc{}, &list))
	defer l.CommandListDestroy(list)

	groups := &ze.GroupCount{GroupCountX: 1, GroupCountY: 1, GroupCountZ: 1}
	require.Equal(t, ze.ResultSuccess, l.CommandListAppendLaunchKernel(list, kern, groups, 0, 0, nil))
	require.Equal(t, ze.ResultSuccess, l.CommandListClose(list))
	require.Equal(t, ze.ResultSuccess, l.CommandQueueExecuteCommandLists(queue, 1, []ze.CommandListHandle{list}, 0))
	require.Equal(t, ze.ResultSuccess, l.CommandQueueSynchronize(queue, ze.TimeoutInfinite))

	for i := 0; i < n; i++ {
		assert.Equal(t, float32(3*i), c[i], "element %d", i)
	}

	assert.Contains(t, buf.String(), "zeCommandQueueExecuteCommandLists -> ZE_RESULT_SUCCESS\n")
	series, err := testutil.GatherAndCount(reg, "zeint_driver_api_version")
	require.NoError(t, err)
	assert.Equal(t, 1, series)
	assert.Equal(t, 1, mgr.Active())
}
