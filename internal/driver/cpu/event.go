package cpu

import (
	"sync"

	"github.com/fxnlabs/level-zero-loader/internal/ze"
)

type eventPool struct {
	handle ze.EventPoolHandle
	ctx    *hostContext
	desc   ze.EventPoolDesc

	mu   sync.Mutex
	used map[uint32]*event
}

type event struct {
	handle ze.EventHandle
	pool   *eventPool
	desc   ze.EventDesc
	sig    *signal

	mu    sync.Mutex
	stamp ze.KernelTimestampResult
}

// complete records the execution window of the command that signals ev.
func (ev *event) complete(start, end uint64) {
	ev.mu.Lock()
	ev.stamp = ze.KernelTimestampResult{
		Global:  ze.KernelTimestampData{KernelStart: start, KernelEnd: end},
		Context: ze.KernelTimestampData{KernelStart: start, KernelEnd: end},
	}
	ev.mu.Unlock()
	ev.sig.fire(end)
}

func (ev *event) timestamp() ze.KernelTimestampResult {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	return ev.stamp
}

func (d *Driver) eventPoolCreate(hContext ze.ContextHandle, desc *ze.EventPoolDesc, numDevices uint32, phDevices []ze.DeviceHandle, phEventPool *ze.EventPoolHandle) ze.Result {
	ctx, ok := lookup[*hostContext](d, ze.Handle(hContext))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if desc == nil || phEventPool == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	if desc.Count == 0 || int(numDevices) > len(phDevices) {
		return ze.ResultErrorInvalidSize
	}
	for _, h := range phDevices[:numDevices] {
		if _, ok := lookup[*device](d, ze.Handle(h)); !ok {
			return ze.ResultErrorInvalidNullHandle
		}
	}
	pool := &eventPool{ctx: ctx, desc: *desc, used: make(map[uint32]*event)}
	pool.handle = ze.EventPoolHandle(d.register(pool))
	if pool.handle == 0 {
		return ze.ResultErrorUninitialized
	}
	*phEventPool = pool.handle
	return ze.ResultSuccess
}

func (d *Driver) eventPoolDestroy(hEventPool ze.EventPoolHandle) ze.Result {
	pool, ok := lookup[*eventPool](d, ze.Handle(hEventPool))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	pool.mu.Lock()
	inUse := len(pool.used)
	pool.mu.Unlock()
	if inUse > 0 {
		d.setLastError("event pool %d still has %d events", hEventPool, inUse)
		return ze.ResultErrorHandleObjectInUse
	}
	d.unregister(ze.Handle(hEventPool))
	return ze.ResultSuccess
}

func (d *Driver) eventPoolGetContextHandle(hEventPool ze.EventPoolHandle, phContext *ze.ContextHandle) ze.Result {
	pool, ok := lookup[*eventPool](d, ze.Handle(hEventPool))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if phContext == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*phContext = pool.ctx.handle
	return ze.ResultSuccess
}

func (d *Driver) eventPoolGetFlags(hEventPool ze.EventPoolHandle, pFlags *ze.EventPoolFlags) ze.Result {
	pool, ok := lookup[*eventPool](d, ze.Handle(hEventPool))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if pFlags == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*pFlags = pool.desc.Flags
	return ze.ResultSuccess
}

func (d *Driver) eventCreate(hEventPool ze.EventPoolHandle, desc *ze.EventDesc, phEvent *ze.EventHandle) ze.Result {
	pool, ok := lookup[*eventPool](d, ze.Handle(hEventPool))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if desc == nil || phEvent == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	if desc.Index >= pool.desc.Count {
		return ze.ResultErrorInvalidArgument
	}

	ev := &event{pool: pool, desc: *desc, sig: newSignal()}
	pool.mu.Lock()
	if _, taken := pool.used[desc.Index]; taken {
		pool.mu.Unlock()
		return ze.ResultErrorInvalidArgument
	}
	pool.used[desc.Index] = ev
	pool.mu.Unlock()

	ev.handle = ze.EventHandle(d.register(ev))
	if ev.handle == 0 {
		pool.release(desc.Index)
		return ze.ResultErrorUninitialized
	}
	*phEvent = ev.handle
	return ze.ResultSuccess
}

func (p *eventPool) release(index uint32) {
	p.mu.Lock()
	delete(p.used, index)
	p.mu.Unlock()
}

func (d *Driver) eventDestroy(hEvent ze.EventHandle) ze.Result {
	ev, ok := lookup[*event](d, ze.Handle(hEvent))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	ev.pool.release(ev.desc.Index)
	d.unregister(ze.Handle(hEvent))
	return ze.ResultSuccess
}

func (d *Driver) eventHostSignal(hEvent ze.EventHandle) ze.Result {
	ev, ok := lookup[*event](d, ze.Handle(hEvent))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	now := d.now()
	ev.complete(now, now)
	return ze.ResultSuccess
}

func (d *Driver) eventHostSynchronize(hEvent ze.EventHandle, timeout uint64) ze.Result {
	ev, ok := lookup[*event](d, ze.Handle(hEvent))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return waitTimeout(ev.sig.done(), timeout)
}

func (d *Driver) eventQueryStatus(hEvent ze.EventHandle) ze.Result {
	ev, ok := lookup[*event](d, ze.Handle(hEvent))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if ev.sig.isSet() {
		return ze.ResultSuccess
	}
	return ze.ResultNotReady
}

func (d *Driver) eventHostReset(hEvent ze.EventHandle) ze.Result {
	ev, ok := lookup[*event](d, ze.Handle(hEvent))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	ev.sig.reset()
	return ze.ResultSuccess
}

func (d *Driver) eventQueryKernelTimestamp(hEvent ze.EventHandle, dstptr *ze.KernelTimestampResult) ze.Result {
	ev, ok := lookup[*event](d, ze.Handle(hEvent))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if dstptr == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	if ev.pool.desc.Flags&ze.EventPoolFlagKernelTimestamp == 0 {
		return ze.ResultErrorInvalidArgument
	}
	if !ev.sig.isSet() {
		return ze.ResultNotReady
	}
	*dstptr = ev.timestamp()
	return ze.ResultSuccess
}

func (d *Driver) eventGetEventPool(hEvent ze.EventHandle, phEventPool *ze.EventPoolHandle) ze.Result {
	ev, ok := lookup[*event](d, ze.Handle(hEvent))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if phEventPool == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*phEventPool = ev.pool.handle
	return ze.ResultSuccess
}

func (d *Driver) eventGetSignalScope(hEvent ze.EventHandle, pSignalScope *ze.EventScopeFlags) ze.Result {
	ev, ok := lookup[*event](d, ze.Handle(hEvent))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if pSignalScope == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*pSignalScope = ev.desc.Signal
	return ze.ResultSuccess
}

func (d *Driver) eventGetWaitScope(hEvent ze.EventHandle, pWaitScope *ze.EventScopeFlags) ze.Result {
	ev, ok := lookup[*event](d, ze.Handle(hEvent))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if pWaitScope == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*pWaitScope = ev.desc.Wait
	return ze.ResultSuccess
}
