package main

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/common-nighthawk/go-figure"
	"github.com/fxnlabs/level-zero-loader/internal/driver"
	"github.com/fxnlabs/level-zero-loader/internal/loader"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Multiply two matrices on the first device through the loader",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "m", Value: 2, Usage: "Rows of A"},
			&cli.UintFlag{Name: "k", Value: 3, Usage: "Columns of A and rows of B"},
			&cli.UintFlag{Name: "n", Value: 2, Usage: "Columns of B"},
			&cli.BoolFlag{Name: "no-banner", Usage: "Skip the banner"},
		},
		Action: func(c *cli.Context) error {
			if !c.Bool("no-banner") {
				fmt.Fprintln(c.App.Writer, figure.NewFigure("zeloader", "", true).String())
			}
			m, k, n := uint32(c.Uint("m")), uint32(c.Uint("k")), uint32(c.Uint("n"))
			return withLoader(c, func(l *loader.Loader, _ *driver.Manager) error {
				out, err := runMatMul(l, m, k, n)
				if err != nil {
					return err
				}
				loggerFrom(c).Info("Demo finished", zap.Uint32("m", m), zap.Uint32("k", k), zap.Uint32("n", n))

				tw := table.NewWriter()
				tw.SetOutputMirror(c.App.Writer)
				tw.SetStyle(table.StyleLight)
				tw.SetTitle("C = A x B")
				for i := uint32(0); i < m; i++ {
					row := make(table.Row, n)
					for j := uint32(0); j < n; j++ {
						row[j] = out[i*n+j]
					}
					tw.AppendRow(row)
				}
				tw.Render()
				return nil
			})
		},
	}
}

func call(res ze.Result, what string) error {
	if res == ze.ResultSuccess {
		return nil
	}
	return fmt.Errorf("%s: %w", what, res)
}

// runMatMul multiplies A[i][j] = i+j by B[i][j] = i-j on the first device of
// the first driver, using an immediate command list.
func runMatMul(l *loader.Loader, m, k, n uint32) (out []float32, err error) {
	if m == 0 || k == 0 || n == 0 {
		return nil, errors.New("matrix dimensions must be positive")
	}
	if err := call(l.Init(0), "init"); err != nil {
		return nil, err
	}
	count := uint32(1)
	drivers := make([]ze.DriverHandle, 1)
	if err := call(l.DriverGet(&count, drivers), "get drivers"); err != nil {
		return nil, err
	}
	devices := make([]ze.DeviceHandle, 1)
	if err := call(l.DeviceGet(drivers[0], &count, devices), "get devices"); err != nil {
		return nil, err
	}
	dev := devices[0]

	var ctx ze.ContextHandle
	if err := call(l.ContextCreate(drivers[0], &ze.ContextDesc{}, &ctx), "create context"); err != nil {
		return nil, err
	}
	defer func() { multierr.AppendInto(&err, call(l.ContextDestroy(ctx), "destroy context")) }()

	alloc := func(elems uint32) (unsafe.Pointer, []float32, error) {
		var p unsafe.Pointer
		res := l.MemAllocShared(ctx, &ze.DeviceMemAllocDesc{}, &ze.HostMemAllocDesc{}, uint64(elems)*4, 0, dev, &p)
		if err := call(res, "allocate"); err != nil {
			return nil, nil, err
		}
		return p, unsafe.Slice((*float32)(p), elems), nil
	}
	pa, a, err := alloc(m * k)
	if err != nil {
		return nil, err
	}
	pb, b, err := alloc(k * n)
	if err != nil {
		return nil, err
	}
	pc, c, err := alloc(m * n)
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < m; i++ {
		for j := uint32(0); j < k; j++ {
			a[i*k+j] = float32(i + j)
		}
	}
	for i := uint32(0); i < k; i++ {
		for j := uint32(0); j < n; j++ {
			b[i*n+j] = float32(i) - float32(j)
		}
	}

	var mod ze.ModuleHandle
	desc := &ze.ModuleDesc{Format: ze.ModuleFormatNative, InputModule: []byte("matmul\n")}
	if err := call(l.ModuleCreate(ctx, dev, desc, &mod, nil), "create module"); err != nil {
		return nil, err
	}
	defer func() { multierr.AppendInto(&err, call(l.ModuleDestroy(mod), "destroy module")) }()

	var kern ze.KernelHandle
	if err := call(l.KernelCreate(mod, &ze.KernelDesc{KernelName: "matmul"}, &kern), "create kernel"); err != nil {
		return nil, err
	}
	defer func() { multierr.AppendInto(&err, call(l.KernelDestroy(kern), "destroy kernel")) }()

	ptrSize := uint64(unsafe.Sizeof(uintptr(0)))
	for i, p := range []unsafe.Pointer{pa, pb, pc} {
		if err := call(l.KernelSetArgumentValue(kern, uint32(i), ptrSize, unsafe.Pointer(&p)), "set pointer argument"); err != nil {
			return nil, err
		}
	}
	for i, v := range []uint32{m, k, n} {
		if err := call(l.KernelSetArgumentValue(kern, uint32(3+i), 4, unsafe.Pointer(&v)), "set size argument"); err != nil {
			return nil, err
		}
	}

	var cl ze.CommandListHandle
	qdesc := &ze.CommandQueueDesc{Mode: ze.CommandQueueModeSynchronous}
	if err := call(l.CommandListCreateImmediate(ctx, dev, qdesc, &cl), "create command list"); err != nil {
		return nil, err
	}
	defer func() { multierr.AppendInto(&err, call(l.CommandListDestroy(cl), "destroy command list")) }()

	groups := &ze.GroupCount{GroupCountX: 1, GroupCountY: 1, GroupCountZ: 1}
	if err := call(l.CommandListAppendLaunchKernel(cl, kern, groups, 0, 0, nil), "launch"); err != nil {
		return nil, err
	}
	if err := call(l.CommandListHostSynchronize(cl, ze.TimeoutInfinite), "synchronize"); err != nil {
		return nil, err
	}
	return append([]float32(nil), c...), nil
}
