package cpu

import (
	"errors"
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"go.uber.org/zap"
)

const queueDepth = 64

var errQueueStopped = errors.New("command queue stopped")

// signal is a resettable one-shot broadcast.
type signal struct {
	mu  sync.Mutex
	ch  chan struct{}
	set bool
	at  uint64
}

func newSignal() *signal {
	return &signal{ch: make(chan struct{})}
}

func (s *signal) fire(at uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		s.set = true
		s.at = at
		close(s.ch)
	}
}

func (s *signal) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set {
		s.set = false
		s.at = 0
		s.ch = make(chan struct{})
	}
}

func (s *signal) done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch
}

func (s *signal) isSet() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set
}

// waitTimeout waits for done. A zero timeout polls, ze.TimeoutInfinite never
// expires and any other value is a deadline in nanoseconds.
func waitTimeout(done <-chan struct{}, timeout uint64) ze.Result {
	select {
	case <-done:
		return ze.ResultSuccess
	default:
	}
	if timeout == 0 {
		return ze.ResultNotReady
	}
	if timeout == ze.TimeoutInfinite || timeout > math.MaxInt64 {
		<-done
		return ze.ResultSuccess
	}
	timer := time.NewTimer(time.Duration(timeout))
	defer timer.Stop()
	select {
	case <-done:
		return ze.ResultSuccess
	case <-timer.C:
		return ze.ResultNotReady
	}
}

type hostContext struct {
	driver *Driver
	handle ze.ContextHandle
}

type fence struct {
	handle ze.FenceHandle
	queue  *queue
	sig    *signal
}

type submission struct {
	cmds  []command
	fence *fence
	done  chan struct{}
}

// queue executes submissions in order on its own goroutine.
type queue struct {
	handle ze.CommandQueueHandle
	ctx    *hostContext
	dev    *device
	desc   ze.CommandQueueDesc
	logger *zap.Logger

	jobs   chan *submission
	quit   chan struct{}
	exited chan struct{}

	// sendMu orders submissions and is held across the channel send. mu
	// guards last and closed and is never held while blocking.
	sendMu sync.Mutex
	mu     sync.Mutex
	last   chan struct{}
	closed bool

	faultMu sync.Mutex
	fault   error
}

func newQueue(ctx *hostContext, dev *device, desc ze.CommandQueueDesc, logger *zap.Logger) *queue {
	q := &queue{
		ctx:    ctx,
		dev:    dev,
		desc:   desc,
		logger: logger,
		jobs:   make(chan *submission, queueDepth),
		quit:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *queue) run() {
	defer close(q.exited)
	for job := range q.jobs {
		q.execute(job)
	}
}

func (q *queue) execute(job *submission) {
	defer close(job.done)
	x := &execContext{quit: q.quit, now: q.ctx.driver.now}
	for _, cmd := range job.cmds {
		if err := cmd(x); err != nil {
			q.logger.Error("Command failed", zap.Uint64("queue", uint64(q.handle)), zap.Error(err))
			q.faultMu.Lock()
			if q.fault == nil {
				q.fault = err
			}
			q.faultMu.Unlock()
			break
		}
	}
	if job.fence != nil {
		job.fence.sig.fire(q.ctx.driver.now())
	}
}

func (q *queue) submit(cmds []command, f *fence) (chan struct{}, ze.Result) {
	job := &submission{cmds: cmds, fence: f, done: make(chan struct{})}
	q.sendMu.Lock()
	defer q.sendMu.Unlock()

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil, ze.ResultErrorUninitialized
	}
	q.last = job.done
	q.mu.Unlock()

	select {
	case q.jobs <- job:
		return job.done, ze.ResultSuccess
	case <-q.quit:
		if f != nil {
			f.sig.fire(q.ctx.driver.now())
		}
		close(job.done)
		return nil, ze.ResultErrorUninitialized
	}
}

func (q *queue) synchronize(timeout uint64) ze.Result {
	q.mu.Lock()
	last := q.last
	q.mu.Unlock()
	if last == nil {
		return ze.ResultSuccess
	}
	if res := waitTimeout(last, timeout); res != ze.ResultSuccess {
		return res
	}
	q.faultMu.Lock()
	err := q.fault
	q.fault = nil
	q.faultMu.Unlock()
	if err != nil {
		return ze.ResultErrorUnknown
	}
	return ze.ResultSuccess
}

// stop releases commands blocked on events and waits for the worker. A
// submitter waiting on a full queue gives up once quit is closed.
func (q *queue) stop() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.quit)
	q.mu.Unlock()

	q.sendMu.Lock()
	close(q.jobs)
	q.sendMu.Unlock()
	<-q.exited
}

// Context entry points.

func (d *Driver) contextCreate(hDriver ze.DriverHandle, desc *ze.ContextDesc, phContext *ze.ContextHandle) ze.Result {
	if hDriver != d.handle {
		return ze.ResultErrorInvalidNullHandle
	}
	if desc == nil || phContext == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	ctx := &hostContext{driver: d}
	ctx.handle = ze.ContextHandle(d.register(ctx))
	if ctx.handle == 0 {
		return ze.ResultErrorUninitialized
	}
	*phContext = ctx.handle
	return ze.ResultSuccess
}

func (d *Driver) contextCreateEx(hDriver ze.DriverHandle, desc *ze.ContextDesc, numDevices uint32, phDevices []ze.DeviceHandle, phContext *ze.ContextHandle) ze.Result {
	if int(numDevices) > len(phDevices) {
		return ze.ResultErrorInvalidSize
	}
	for _, h := range phDevices[:numDevices] {
		if _, ok := lookup[*device](d, ze.Handle(h)); !ok {
			return ze.ResultErrorInvalidNullHandle
		}
	}
	return d.contextCreate(hDriver, desc, phContext)
}

func (d *Driver) contextDestroy(hContext ze.ContextHandle) ze.Result {
	ctx, ok := lookup[*hostContext](d, ze.Handle(hContext))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if ctx == d.defaultCtx {
		return ze.ResultErrorInvalidArgument
	}
	if n := d.mem.freeContext(ctx); n > 0 {
		d.logger.Debug("Released context allocations", zap.Uint64("context", uint64(hContext)), zap.Int("count", n))
	}
	d.unregister(ze.Handle(hContext))
	return ze.ResultSuccess
}

func (d *Driver) contextGetStatus(hContext ze.ContextHandle) ze.Result {
	if _, ok := lookup[*hostContext](d, ze.Handle(hContext)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return ze.ResultSuccess
}

func (d *Driver) contextSystemBarrier(hContext ze.ContextHandle, hDevice ze.DeviceHandle) ze.Result {
	if _, ok := lookup[*hostContext](d, ze.Handle(hContext)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	dev, ok := lookup[*device](d, ze.Handle(hDevice))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return dev.synchronize()
}

// contextResidency serves both MakeMemoryResident and EvictMemory: host
// memory is always resident, so only the range is checked.
func (d *Driver) contextResidency(hContext ze.ContextHandle, hDevice ze.DeviceHandle, ptr unsafe.Pointer, size uint64) ze.Result {
	if _, ok := lookup[*hostContext](d, ze.Handle(hContext)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if _, ok := lookup[*device](d, ze.Handle(hDevice)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if _, ok := d.mem.find(uintptr(ptr)); !ok {
		return ze.ResultErrorInvalidArgument
	}
	_, res := d.mem.span(ptr, size)
	return res
}

// Command queue entry points.

func (d *Driver) commandQueueCreate(hContext ze.ContextHandle, hDevice ze.DeviceHandle, desc *ze.CommandQueueDesc, phCommandQueue *ze.CommandQueueHandle) ze.Result {
	ctx, ok := lookup[*hostContext](d, ze.Handle(hContext))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	dev, ok := lookup[*device](d, ze.Handle(hDevice))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if desc == nil || phCommandQueue == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	if desc.Ordinal != 0 {
		return ze.ResultErrorInvalidArgument
	}
	if desc.Mode > ze.CommandQueueModeAsynchronous {
		return ze.ResultErrorInvalidEnumeration
	}
	q := newQueue(ctx, dev, *desc, d.logger)
	q.handle = ze.CommandQueueHandle(d.register(q))
	if q.handle == 0 {
		q.stop()
		return ze.ResultErrorUninitialized
	}
	*phCommandQueue = q.handle
	return ze.ResultSuccess
}

func (d *Driver) commandQueueDestroy(hCommandQueue ze.CommandQueueHandle) ze.Result {
	q, ok := lookup[*queue](d, ze.Handle(hCommandQueue))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	d.unregister(ze.Handle(hCommandQueue))
	q.stop()
	return ze.ResultSuccess
}

func (d *Driver) commandQueueExecuteCommandLists(hCommandQueue ze.CommandQueueHandle, numCommandLists uint32, phCommandLists []ze.CommandListHandle, hFence ze.FenceHandle) ze.Result {
	q, ok := lookup[*queue](d, ze.Handle(hCommandQueue))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if numCommandLists == 0 || int(numCommandLists) > len(phCommandLists) {
		return ze.ResultErrorInvalidSize
	}
	var f *fence
	if hFence != 0 {
		if f, ok = lookup[*fence](d, ze.Handle(hFence)); !ok || f.queue != q {
			return ze.ResultErrorInvalidNullHandle
		}
	}

	lists := make([]*cmdList, 0, numCommandLists)
	var cmds []command
	for _, h := range phCommandLists[:numCommandLists] {
		cl, ok := lookup[*cmdList](d, ze.Handle(h))
		if !ok {
			return ze.ResultErrorInvalidNullHandle
		}
		snapshot, res := cl.executable()
		if res != ze.ResultSuccess {
			return res
		}
		lists = append(lists, cl)
		cmds = append(cmds, snapshot...)
	}

	done, res := q.submit(cmds, f)
	if res != ze.ResultSuccess {
		return res
	}
	for _, cl := range lists {
		cl.submitted(done)
	}
	if q.desc.Mode == ze.CommandQueueModeSynchronous {
		<-done
	}
	return ze.ResultSuccess
}

func (d *Driver) commandQueueSynchronize(hCommandQueue ze.CommandQueueHandle, timeout uint64) ze.Result {
	q, ok := lookup[*queue](d, ze.Handle(hCommandQueue))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return q.synchronize(timeout)
}

func (d *Driver) commandQueueGetOrdinal(hCommandQueue ze.CommandQueueHandle, pOrdinal *uint32) ze.Result {
	q, ok := lookup[*queue](d, ze.Handle(hCommandQueue))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if pOrdinal == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*pOrdinal = q.desc.Ordinal
	return ze.ResultSuccess
}

func (d *Driver) commandQueueGetIndex(hCommandQueue ze.CommandQueueHandle, pIndex *uint32) ze.Result {
	q, ok := lookup[*queue](d, ze.Handle(hCommandQueue))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if pIndex == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	*pIndex = q.desc.Index
	return ze.ResultSuccess
}

// Fence entry points.

func (d *Driver) fenceCreate(hCommandQueue ze.CommandQueueHandle, desc *ze.FenceDesc, phFence *ze.FenceHandle) ze.Result {
	q, ok := lookup[*queue](d, ze.Handle(hCommandQueue))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if desc == nil || phFence == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	f := &fence{queue: q, sig: newSignal()}
	f.handle = ze.FenceHandle(d.register(f))
	if f.handle == 0 {
		return ze.ResultErrorUninitialized
	}
	*phFence = f.handle
	return ze.ResultSuccess
}

func (d *Driver) fenceDestroy(hFence ze.FenceHandle) ze.Result {
	if _, ok := lookup[*fence](d, ze.Handle(hFence)); !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	d.unregister(ze.Handle(hFence))
	return ze.ResultSuccess
}

func (d *Driver) fenceHostSynchronize(hFence ze.FenceHandle, timeout uint64) ze.Result {
	f, ok := lookup[*fence](d, ze.Handle(hFence))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	return waitTimeout(f.sig.done(), timeout)
}

func (d *Driver) fenceQueryStatus(hFence ze.FenceHandle) ze.Result {
	f, ok := lookup[*fence](d, ze.Handle(hFence))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	if f.sig.isSet() {
		return ze.ResultSuccess
	}
	return ze.ResultNotReady
}

func (d *Driver) fenceReset(hFence ze.FenceHandle) ze.Result {
	f, ok := lookup[*fence](d, ze.Handle(hFence))
	if !ok {
		return ze.ResultErrorInvalidNullHandle
	}
	f.sig.reset()
	return ze.ResultSuccess
}
