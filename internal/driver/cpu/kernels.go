package cpu

import (
	"encoding/binary"
	"fmt"
	"sort"
	"sync"
	"unsafe"

	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"gonum.org/v1/gonum/mat"
)

type argKind uint8

const (
	argPointer argKind = iota
	argUint32
)

func (k argKind) size() uint64 {
	if k == argPointer {
		return uint64(unsafe.Sizeof(uintptr(0)))
	}
	return 4
}

// boundArg is a kernel argument resolved at append time.
type boundArg struct {
	mem []byte
	u32 uint32
}

// builtin is a kernel the driver can execute natively.
type builtin struct {
	args []argKind
	run  func(args []boundArg, groups ze.GroupCount) error
}

var builtins = map[string]*builtin{
	// matmul computes C = A * B on row-major float32 matrices where A is
	// M x K and B is K x N. Arguments: A, B, C, M, K, N.
	"matmul": {
		args: []argKind{argPointer, argPointer, argPointer, argUint32, argUint32, argUint32},
		run:  matmul,
	},
	// vector_add computes C[i] = A[i] + B[i] for i < N. Arguments: A, B, C, N.
	"vector_add": {
		args: []argKind{argPointer, argPointer, argPointer, argUint32},
		run:  vectorAdd,
	},
}

// BuiltinKernels lists the kernel names a native module may contain.
func BuiltinKernels() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func float32s(mem []byte, n int) ([]float32, error) {
	if len(mem) < n*4 {
		return nil, fmt.Errorf("buffer holds %d bytes, need %d", len(mem), n*4)
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(mem))), n), nil
}

func widen(in []float32) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

func matmul(args []boundArg, _ ze.GroupCount) error {
	m, k, n := int(args[3].u32), int(args[4].u32), int(args[5].u32)
	if m == 0 || k == 0 || n == 0 {
		return fmt.Errorf("invalid dimensions %dx%dx%d", m, k, n)
	}
	a, err := float32s(args[0].mem, m*k)
	if err != nil {
		return fmt.Errorf("matrix A: %w", err)
	}
	b, err := float32s(args[1].mem, k*n)
	if err != nil {
		return fmt.Errorf("matrix B: %w", err)
	}
	c, err := float32s(args[2].mem, m*n)
	if err != nil {
		return fmt.Errorf("matrix C: %w", err)
	}

	var res mat.Dense
	res.Mul(mat.NewDense(m, k, widen(a)), mat.NewDense(k, n, widen(b)))
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			c[i*n+j] = float32(res.At(i, j))
		}
	}
	return nil
}

func vectorAdd(args []boundArg, _ ze.GroupCount) error {
	n := int(args[3].u32)
	a, err := float32s(args[0].mem, n)
	if err != nil {
		return fmt.Errorf("vector A: %w", err)
	}
	b, err := float32s(args[1].mem, n)
	if err != nil {
		return fmt.Errorf("vector B: %w", err)
	}
	c, err := float32s(args[2].mem, n)
	if err != nil {
		return fmt.Errorf("vector C: %w", err)
	}
	for i := range c {
		c[i] = a[i] + b[i]
	}
	return nil
}

type kernel struct {
	handle ze.KernelHandle
	module *module
	name   string
	def    *builtin

	mu        sync.Mutex
	args      [][]byte
	groupSize [3]uint32
	offset    [3]uint32
	indirect  ze.KernelIndirectAccessFlags
	cache     ze.CacheConfigFlags
}

func newKernel(mod *module, name string, def *builtin) *kernel {
	return &kernel{
		module:    mod,
		name:      name,
		def:       def,
		args:      make([][]byte, len(def.args)),
		groupSize: [3]uint32{1, 1, 1},
	}
}

func (k *kernel) setArg(index uint32, size uint64, value unsafe.Pointer) ze.Result {
	if int(index) >= len(k.def.args) {
		return ze.ResultErrorInvalidKernelArgumentIndex
	}
	kind := k.def.args[index]
	if size != kind.size() {
		return ze.ResultErrorInvalidSize
	}
	arg := make([]byte, size)
	switch {
	case value != nil:
		copy(arg, unsafe.Slice((*byte)(value), size))
	case kind != argPointer:
		return ze.ResultErrorInvalidNullPointer
	}
	k.mu.Lock()
	k.args[index] = arg
	k.mu.Unlock()
	return ze.ResultSuccess
}

// bind snapshots the current arguments, resolving pointer arguments to the
// allocations they address.
func (k *kernel) bind(mem *memory) (func(ze.GroupCount) error, error) {
	k.mu.Lock()
	raw := append([][]byte(nil), k.args...)
	k.mu.Unlock()

	bound := make([]boundArg, len(raw))
	for i, arg := range raw {
		if arg == nil {
			return nil, fmt.Errorf("argument %d is not set", i)
		}
		switch k.def.args[i] {
		case argPointer:
			p := uintptr(binary.NativeEndian.Uint64(arg))
			if p == 0 {
				return nil, fmt.Errorf("argument %d is a null pointer", i)
			}
			buf, ok := mem.resolve(p)
			if !ok {
				return nil, fmt.Errorf("argument %d does not address a device allocation", i)
			}
			bound[i].mem = buf
		case argUint32:
			bound[i].u32 = binary.NativeEndian.Uint32(arg)
		}
	}
	run := k.def.run
	return func(groups ze.GroupCount) error { return run(bound, groups) }, nil
}
