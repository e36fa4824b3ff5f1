package cpu

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/fxnlabs/level-zero-loader/internal/ze"
)

// command is one recorded operation. It runs on a queue worker, or on the
// caller for immediate lists.
type command func(x *execContext) error

type execContext struct {
	quit <-chan struct{}
	now  func() uint64
}

func (x *execContext) wait(ev *event) error {
	select {
	case <-ev.sig.done():
		return nil
	case <-x.quit:
		return errQueueStopped
	}
}

type cmdList struct {
	handle    ze.CommandListHandle
	ctx       *hostContext
	dev       *device
	ordinal   uint32
	index     uint32
	immediate bool

	mu     sync.Mutex
	cmds   []command
	closed bool
	last   chan struct{}
}

// executable returns the recorded commands of a closed list.
func (cl *cmdList) executable() ([]command, ze.Result) {
	if cl.immediate {
		return nil, ze.ResultErrorInvalidArgument
	}
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if !cl.closed {
		return nil, ze.ResultErrorInvalidArgument
	}
	return cl.cmds, ze.ResultSuccess
}

func (cl *cmdList) submitted(done chan struct{}) {
	cl.mu.Lock()
	cl.last = done
	cl.mu.Unlock()
}

// record appends cmds, or runs them at once on an immediate list.
func (cl *cmdList) record(cmds ...command) ze.Result {
	if cl.immediate {
		x := &execContext{quit: cl.ctx.driver.quit, now: cl.ctx.driver.now}
		for _, cmd := range cmds {
			if err := cmd(x); err != nil {
				cl.ctx.driver.setLastError("immediate command list %d: %v", cl.handle, err)
				return ze.ResultErrorUnknown
			}
		}
		return ze.ResultSuccess
	}
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if cl.closed {
		return ze.ResultErrorInvalidArgument
	}
	cl.cmds = append(cl.cmds, cmds...)
	return ze.ResultSuccess
}

// events resolves the signal event and wait list shared by most append
// entry points.
func (d *Driver) events(hSignalEvent ze.EventHandle, numWaitEvents uint32, phWaitEvents []ze.EventHandle) (*event, []*event, ze.Result) {
	var signalEv *event
	if hSignalEvent != 0 {
		ev, ok := lookup[*event](d, ze.Handle(hSignalEvent))
		if !ok {
			return nil, nil, ze.ResultErrorInvalidNullHandle
		}
		signalEv = ev
	}
	if int(numWaitEvents) > len(phWaitEvents) {
		return nil, nil, ze.ResultErrorInvalidSize
	}
	waits := make([]*event, 0, numWaitEvents)
	for _, h := range phWaitEvents[:numWaitEvents] {
		ev, ok := lookup[*event](d, ze.Handle(h))
		if !ok {
			return nil, nil, ze.ResultErrorInvalidNullHandle
		}
		waits = append(waits, ev)
	}
	return signalEv, waits, ze.ResultSuccess
}

// appendOp records op between its wait list and its signal event.
func (d *Driver) appendOp(hCommandList ze.CommandListHandle, op command, hSignalEvent ze.EventHandle, numWaitEvents uint32, phWaitEvents []ze.EventHandle) ze.Result {
	cl, ok := lookup[*cmdList](d, ze.Handle(hCommandList))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	signalEv, waits, res := d.events(hSignalEvent, numWaitEvents, phWaitEvents)
	if res != ze.ResultSuccess {
		return res
	}
	return cl.record(func(x *execContext) error {
		for _, ev := range waits {
			if err := x.wait(ev); err != nil {
				return err
			}
		}
		start := x.now()
		if op != nil {
			if err := op(x); err != nil {
				return err
			}
		}
		if signalEv != nil {
			signalEv.complete(start, x.now())
		}
		return nil
	})
}

// Command list entry points.

func (d *Driver) newCmdList(hContext ze.ContextHandle, hDevice ze.DeviceHandle, ordinal, index uint32, immediate bool, ph *ze.CommandListHandle) ze.Result {
	ctx, ok := lookup[*hostContext](d, ze.Handle(hContext))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	dev, ok := lookup[*device](d, ze.Handle(hDevice))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if ordinal != 0 {
		return ze.ResultErrorInvalidArgument
	}
	cl := &cmdList{ctx: ctx, dev: dev, ordinal: ordinal, index: index, immediate: immediate}
	cl.handle = ze.CommandListHandle(d.register(cl))
	if cl.handle == 0 {
		return ze.ResultErrorUninitialized
	}
	*ph = cl.handle
	return ze.ResultSuccess
}

func (d *Driver) commandListCreate(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.CommandListDesc, phCommandList *ze.CommandListHandle) ze.Result {
	if desc == nil || phCommandList == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	return d.newCmdList(hContext, hDevice, desc.CommandQueueGroupOrdinal, 0, false, phCommandList)
}

func (d *Driver) commandListCreateImmediate(hContext ze.ContextHandle, hDevice ze.DeviceHandle, altdesc *ze.CommandQueueDesc, phCommandList *ze.CommandListHandle) ze.Result {
	if altdesc == nil || phCommandList == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	return d.newCmdList(hContext, hDevice, altdesc.Ordinal, altdesc.Index, true, phCommandList)
}

func (d *Driver) commandListDestroy(hCommandList ze.CommandListHandle) ze.Result {
	if _, ok := lookup[*cmdList](d, ze.Handle(hCommandList)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	d.unregister(ze.Handle(hCommandList))
	return ze.ResultSuccess
}

func (d *Driver) commandListClose(hCommandList ze.CommandListHandle) ze.Result {
	cl, ok := lookup[*cmdList](d, ze.Handle(hCommandList))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	cl.mu.Lock()
	cl.closed = true
	cl.mu.Unlock()
	return ze.ResultSuccess
}

func (d *Driver) commandListReset(hCommandList ze.CommandListHandle) ze.Result {
	cl, ok := lookup[*cmdList](d, ze.Handle(hCommandList))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	cl.mu.Lock()
	cl.cmds = nil
	cl.closed = false
	cl.mu.Unlock()
	return ze.ResultSuccess
}

func (d *Driver) commandListHostSynchronize(hCommandList ze.CommandListHandle, timeout uint64) ze.Result {
	cl, ok := lookup[*cmdList](d, ze.Handle(hCommandList))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	cl.mu.Lock()
	last := cl.last
	cl.mu.Unlock()
	if last == nil {
		return ze.ResultSuccess
	}
	return waitTimeout(last, timeout)
}

func (d *Driver) commandListAppendBarrier(hCommandList ze.CommandListHandle, hSignalEvent ze.EventHandle, numWaitEvents uint32, phWaitEvents []ze.EventHandle) ze.Result {
	// Commands of a list already run in order.
	return d.appendOp(hCommandList, nil, hSignalEvent, numWaitEvents, phWaitEvents)
}

func (d *Driver) commandListAppendMemoryCopy(hCommandList ze.CommandListHandle, dstptr unsafe.Pointer, srcptr unsafe.Pointer, size uint64, hSignalEvent ze.EventHandle, numWaitEvents uint32, phWaitEvents []ze.EventHandle) ze.Result {
	dst, res := d.mem.span(dstptr, size)
	if res != ze.ResultSuccess {
		return res
	}
	src, res := d.mem.span(srcptr, size)
	if res != ze.ResultSuccess {
		return res
	}
	return d.appendOp(hCommandList, func(*execContext) error {
		copy(dst, src)
		return nil
	}, hSignalEvent, numWaitEvents, phWaitEvents)
}

func (d *Driver) commandListAppendMemoryFill(hCommandList ze.CommandListHandle, ptr unsafe.Pointer, pattern unsafe.Pointer, patternSize uint64, size uint64, hSignalEvent ze.EventHandle, numWaitEvents uint32, phWaitEvents []ze.EventHandle) ze.Result {
	if patternSize == 0 || patternSize > maxFillPattern || patternSize&(patternSize-1) != 0 {
		return ze.ResultErrorInvalidSize
	}
	if size%patternSize != 0 {
		return ze.ResultErrorInvalidSize
	}
	dst, res := d.mem.span(ptr, size)
	if res != ze.ResultSuccess {
		return res
	}
	if pattern == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	pat := make([]byte, patternSize)
	copy(pat, unsafe.Slice((*byte)(pattern), patternSize))
	return d.appendOp(hCommandList, func(*execContext) error {
		for off := 0; off < len(dst); off += len(pat) {
			copy(dst[off:], pat)
		}
		return nil
	}, hSignalEvent, numWaitEvents, phWaitEvents)
}

func (d *Driver) commandListAppendWriteGlobalTimestamp(hCommandList ze.CommandListHandle, dstptr *uint64, hSignalEvent ze.EventHandle, numWaitEvents uint32, phWaitEvents []ze.EventHandle) ze.Result {
	if dstptr == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	return d.appendOp(hCommandList, func(x *execContext) error {
		*dstptr = x.now()
		return nil
	}, hSignalEvent, numWaitEvents, phWaitEvents)
}

// Prefetch and advice are hints with no effect on host memory.
func (d *Driver) commandListAppendMemoryPrefetch(hCommandList ze.CommandListHandle, ptr unsafe.Pointer, size uint64) ze.Result {
	if _, res := d.mem.span(ptr, size); res != ze.ResultSuccess {
		return res
	}
	return d.appendOp(hCommandList, nil, 0, 0, nil)
}

func (d *Driver) commandListAppendMemAdvise(hCommandList ze.CommandListHandle, hDevice ze.DeviceHandle, ptr unsafe.Pointer, size uint64, advice ze.MemoryAdvice) ze.Result {
	if _, ok := lookup[*device](d, ze.Handle(hDevice)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if _, res := d.mem.span(ptr, size); res != ze.ResultSuccess {
		return res
	}
	return d.appendOp(hCommandList, nil, 0, 0, nil)
}

func (d *Driver) commandListAppendSignalEvent(hCommandList ze.CommandListHandle, hEvent ze.EventHandle) ze.Result {
	if hEvent == 0 {
		return ze.ResultErrorInvalidNullHandle
	}
	return d.appendOp(hCommandList, nil, hEvent, 0, nil)
}

func (d *Driver) commandListAppendWaitOnEvents(hCommandList ze.CommandListHandle, numEvents uint32, phEvents []ze.EventHandle) ze.Result {
	if numEvents == 0 {
		return ze.ResultErrorInvalidSize
	}
	return d.appendOp(hCommandList, nil, 0, numEvents, phEvents)
}

func (d *Driver) commandListAppendEventReset(hCommandList ze.CommandListHandle, hEvent ze.EventHandle) ze.Result {
	ev, ok := lookup[*event](d, ze.Handle(hEvent))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return d.appendOp(hCommandList, func(*execContext) error {
		ev.sig.reset()
		return nil
	}, 0, 0, nil)
}

func (d *Driver) commandListAppendLaunchKernel(hCommandList ze.CommandListHandle, hKernel ze.KernelHandle, pLaunchFuncArgs *ze.GroupCount, hSignalEvent ze.EventHandle, numWaitEvents uint32, phWaitEvents []ze.EventHandle) ze.Result {
	k, ok := lookup[*kernel](d, ze.Handle(hKernel))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if pLaunchFuncArgs == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	groups := *pLaunchFuncArgs
	if groups.GroupCountX == 0 || groups.GroupCountY == 0 || groups.GroupCountZ == 0 {
		return ze.ResultErrorInvalidArgument
	}
	launch, err := k.bind(d.mem)
	if err != nil {
		d.setLastError("launch %s: %v", k.name, err)
		return ze.ResultErrorInvalidArgument
	}
	return d.appendOp(hCommandList, func(*execContext) error {
		if err := launch(groups); err != nil {
			return fmt.Errorf("kernel %s: %w", k.name, err)
		}
		return nil
	}, hSignalEvent, numWaitEvents, phWaitEvents)
}

func (d *Driver) commandListGetDeviceHandle(hCommandList ze.CommandListHandle, phDevice *ze.DeviceHandle) ze.Result {
	cl, ok := lookup[*cmdList](d, ze.Handle(hCommandList))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if phDevice == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*phDevice = cl.dev.handle
	return ze.ResultSuccess
}

func (d *Driver) commandListGetContextHandle(hCommandList ze.CommandListHandle, phContext *ze.ContextHandle) ze.Result {
	cl, ok := lookup[*cmdList](d, ze.Handle(hCommandList))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if phContext == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*phContext = cl.ctx.handle
	return ze.ResultSuccess
}

func (d *Driver) commandListGetOrdinal(hCommandList ze.CommandListHandle, pOrdinal *uint32) ze.Result {
	cl, ok := lookup[*cmdList](d, ze.Handle(hCommandList))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if pOrdinal == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*pOrdinal = cl.ordinal
	return ze.ResultSuccess
}

func (d *Driver) commandListImmediateGetIndex(hCommandListImmediate ze.CommandListHandle, pIndex *uint32) ze.Result {
	cl, ok := lookup[*cmdList](d, ze.Handle(hCommandListImmediate))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if !cl.immediate {
		return ze.ResultErrorInvalidArgument
	}
	if pIndex == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*pIndex = cl.index
	return ze.ResultSuccess
}

func (d *Driver) commandListIsImmediate(hCommandList ze.CommandListHandle, pIsImmediate *ze.Bool) ze.Result {
	cl, ok := lookup[*cmdList](d, ze.Handle(hCommandList))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if pIsImmediate == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*pIsImmediate = ze.BoolOf(cl.immediate)
	return ze.ResultSuccess
}
