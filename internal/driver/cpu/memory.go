package cpu

import (
	"sync"
	"unsafe"

	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/tidwall/btree"
)

const (
	minAlignment  = 16
	pageSize      = 4096
	maxAllocSize  = 1 << 32
	totalMemory   = 1 << 34
	allocTreeSize = 64
)

type allocation struct {
	base uintptr
	data []byte
	kind ze.MemoryType
	id   uint64
	ctx  *hostContext
	dev  *device
}

func (a *allocation) end() uintptr { return a.base + uintptr(len(a.data)) }

// memory tracks live allocations ordered by base address so that any
// interior pointer can be mapped back to its allocation.
type memory struct {
	mu     sync.RWMutex
	tree   *btree.BTreeG[*allocation]
	nextID uint64
}

func newMemory() *memory {
	less := func(a, b *allocation) bool { return a.base < b.base }
	return &memory{
		tree: btree.NewBTreeGOptions(less, btree.Options{NoLocks: true, Degree: allocTreeSize}),
	}
}

func (m *memory) alloc(size, alignment uint64, kind ze.MemoryType, ctx *hostContext, dev *device) (*allocation, ze.Result) {
	if size == 0 || size > maxAllocSize {
		return nil, ze.ResultErrorInvalidSize
	}
	if alignment&(alignment-1) != 0 {
		return nil, ze.ResultErrorInvalidArgument
	}
	align := uint64(max(alignment, minAlignment))

	buf := make([]byte, size+align)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := (align - uint64(addr)%align) % align

	a := &allocation{
		base: addr + uintptr(off),
		data: buf[off : off+size : off+size],
		kind: kind,
		ctx:  ctx,
		dev:  dev,
	}

	m.mu.Lock()
	m.nextID++
	a.id = m.nextID
	m.tree.Set(a)
	m.mu.Unlock()
	return a, ze.ResultSuccess
}

// find returns the allocation containing p.
func (m *memory) find(p uintptr) (*allocation, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var found *allocation
	m.tree.Descend(&allocation{base: p}, func(a *allocation) bool {
		found = a
		return false
	})
	if found == nil || p >= found.end() {
		return nil, false
	}
	return found, true
}

// free removes the allocation whose base is ptr.
func (m *memory) free(ptr unsafe.Pointer) (*allocation, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.tree.Delete(&allocation{base: uintptr(ptr)})
	return a, ok
}

// freeContext releases every allocation owned by ctx.
func (m *memory) freeContext(ctx *hostContext) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var owned []*allocation
	m.tree.Scan(func(a *allocation) bool {
		if a.ctx == ctx {
			owned = append(owned, a)
		}
		return true
	})
	for _, a := range owned {
		m.tree.Delete(a)
	}
	return len(owned)
}

// span returns size bytes at ptr. Pointers into an allocation are bounds
// checked; other pointers are taken to be caller-owned host memory.
func (m *memory) span(ptr unsafe.Pointer, size uint64) ([]byte, ze.Result) {
	if ptr == nil {
		return nil, ze.ResultErrorInvalidNullPointer
	}
	if size == 0 {
		return nil, ze.ResultSuccess
	}
	p := uintptr(ptr)
	if a, ok := m.find(p); ok {
		off := p - a.base
		if uint64(len(a.data))-uint64(off) < size {
			return nil, ze.ResultErrorInvalidSize
		}
		return a.data[off : uint64(off)+size], ze.ResultSuccess
	}
	return unsafe.Slice((*byte)(ptr), size), ze.ResultSuccess
}

// resolve maps a device address stored in a kernel argument to the bytes
// from that address to the end of its allocation.
func (m *memory) resolve(p uintptr) ([]byte, bool) {
	a, ok := m.find(p)
	if !ok {
		return nil, false
	}
	return a.data[p-a.base:], true
}

func (m *memory) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tree.Len()
}

func (m *memory) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tree.Clear()
}

// Memory entry points.

func (d *Driver) memAllocShared(hContext ze.ContextHandle, deviceDesc *ze.DeviceMemAllocDesc, hostDesc *ze.HostMemAllocDesc, size uint64, alignment uint64, hDevice ze.DeviceHandle, pptr *unsafe.Pointer) ze.Result {
	if deviceDesc == nil || hostDesc == nil || pptr == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	var dev *device
	if hDevice != 0 {
		var ok bool
		if dev, ok = lookup[*device](d, ze.Handle(hDevice)); !ok {
			return ze.ResultErrorInvalidNullHandle
		}
	}
	return d.allocate(hContext, size, alignment, ze.MemoryTypeShared, dev, pptr)
}

func (d *Driver) memAllocDevice(hContext ze.ContextHandle, deviceDesc *ze.DeviceMemAllocDesc, size uint64, alignment uint64, hDevice ze.DeviceHandle, pptr *unsafe.Pointer) ze.Result {
	if deviceDesc == nil || pptr == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	dev, ok := lookup[*device](d, ze.Handle(hDevice))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if deviceDesc.Ordinal != 0 {
		return ze.ResultErrorInvalidArgument
	}
	return d.allocate(hContext, size, alignment, ze.MemoryTypeDevice, dev, pptr)
}

func (d *Driver) memAllocHost(hContext ze.ContextHandle, hostDesc *ze.HostMemAllocDesc, size uint64, alignment uint64, pptr *unsafe.Pointer) ze.Result {
	if hostDesc == nil || pptr == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	return d.allocate(hContext, size, alignment, ze.MemoryTypeHost, nil, pptr)
}

func (d *Driver) allocate(hContext ze.ContextHandle, size, alignment uint64, kind ze.MemoryType, dev *device, pptr *unsafe.Pointer) ze.Result {
	ctx, ok := lookup[*hostContext](d, ze.Handle(hContext))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	a, res := d.mem.alloc(size, alignment, kind, ctx, dev)
	if res != ze.ResultSuccess {
		d.setLastError("cannot allocate %d bytes of %s memory with alignment %d: %s", size, kind, alignment, res)
		return res
	}
	*pptr = unsafe.Pointer(unsafe.SliceData(a.data))
	return ze.ResultSuccess
}

func (d *Driver) memFree(hContext ze.ContextHandle, ptr unsafe.Pointer) ze.Result {
	if _, ok := lookup[*hostContext](d, ze.Handle(hContext)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if ptr == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	if _, ok := d.mem.free(ptr); !ok {
		return ze.ResultErrorInvalidArgument
	}
	return ze.ResultSuccess
}

func (d *Driver) memFreeExt(hContext ze.ContextHandle, pMemFreeDesc *ze.MemoryFreeExtDesc, ptr unsafe.Pointer) ze.Result {
	if pMemFreeDesc == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	// Execution is synchronous with respect to the host, so every free policy
	// degenerates to an immediate free.
	return d.memFree(hContext, ptr)
}

func (d *Driver) memGetAllocProperties(hContext ze.ContextHandle, ptr unsafe.Pointer, pMemAllocProperties *ze.MemoryAllocationProperties, phDevice *ze.DeviceHandle) ze.Result {
	if _, ok := lookup[*hostContext](d, ze.Handle(hContext)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if pMemAllocProperties == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	a, ok := d.mem.find(uintptr(ptr))
	if !ok {
		*pMemAllocProperties = ze.MemoryAllocationProperties{Type: ze.MemoryTypeUnknown}
		return ze.ResultSuccess
	}
	*pMemAllocProperties = ze.MemoryAllocationProperties{Type: a.kind, ID: a.id, PageSize: pageSize}
	if phDevice != nil {
		*phDevice = 0
		if a.dev != nil {
			*phDevice = a.dev.handle
		}
	}
	return ze.ResultSuccess
}

func (d *Driver) memGetAddressRange(hContext ze.ContextHandle, ptr unsafe.Pointer, pBase *unsafe.Pointer, pSize *uint64) ze.Result {
	if _, ok := lookup[*hostContext](d, ze.Handle(hContext)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	a, ok := d.mem.find(uintptr(ptr))
	if !ok {
		return ze.ResultErrorInvalidArgument
	}
	if pBase != nil {
		*pBase = unsafe.Pointer(unsafe.SliceData(a.data))
	}
	if pSize != nil {
		*pSize = uint64(len(a.data))
	}
	return ze.ResultSuccess
}
