// Package cpu is a reference driver that executes on the host. Device memory
// is host memory, command queues run on worker goroutines and modules are
// lists of builtin kernels.
package cpu

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/driver"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	Name = "cpu"

	// APIVersion is the highest API version the driver implements.
	APIVersion = ze.APIVersion1_14

	driverVersion = 1<<24 | 0<<16 | 1
)

// namespace seeds the driver and device UUIDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/fxnlabs/level-zero-loader/driver/cpu"))

func init() {
	driver.Register(Name, func(logger *zap.Logger) (driver.Driver, error) {
		return New(logger), nil
	})
}

// Driver implements driver.Driver on the host CPU.
type Driver struct {
	logger *zap.Logger
	epoch  time.Time
	quit   chan struct{}

	mu        sync.RWMutex
	issuer    driver.Issuer
	objects   map[ze.Handle]any
	lastError string
	closed    bool

	mem        *memory
	handle     ze.DriverHandle
	dev        *device
	defaultCtx *hostContext
}

func New(logger *zap.Logger) *Driver {
	return &Driver{
		logger:  logger.Named("cpu_driver"),
		epoch:   time.Now(),
		quit:    make(chan struct{}),
		objects: make(map[ze.Handle]any),
		mem:     newMemory(),
	}
}

func (d *Driver) Name() string              { return Name }
func (d *Driver) APIVersion() ze.APIVersion { return APIVersion }

// Open issues the driver, device and default context handles and returns the
// dispatch tables.
func (d *Driver) Open(issuer driver.Issuer) (*ddi.Tables, error) {
	d.mu.Lock()
	if d.issuer != nil {
		d.mu.Unlock()
		return nil, fmt.Errorf("cpu driver already open")
	}
	d.issuer = issuer
	d.mu.Unlock()

	d.handle = ze.DriverHandle(d.register(d))
	if d.handle == 0 {
		return nil, fmt.Errorf("cpu driver: issuer returned a null handle")
	}
	d.dev = newDevice(d, 0)
	d.dev.handle = ze.DeviceHandle(d.register(d.dev))
	d.defaultCtx = &hostContext{driver: d}
	d.defaultCtx.handle = ze.ContextHandle(d.register(d.defaultCtx))

	d.logger.Info("CPU driver opened",
		zap.String("device", d.dev.props.Name),
		zap.Int("cpus", runtime.NumCPU()))
	return d.tables(), nil
}

// Close stops every command queue and releases all objects.
func (d *Driver) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.quit)
	var queues []*queue
	for _, obj := range d.objects {
		if q, ok := obj.(*queue); ok {
			queues = append(queues, q)
		}
	}
	d.objects = make(map[ze.Handle]any)
	d.mu.Unlock()

	for _, q := range queues {
		q.stop()
	}
	d.mem.reset()
	d.logger.Info("CPU driver closed", zap.Int("queues_stopped", len(queues)))
	return nil
}

func (d *Driver) register(obj any) ze.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.issuer == nil || d.closed {
		return ze.NullHandle
	}
	h := d.issuer.Issue()
	if h != ze.NullHandle {
		d.objects[h] = obj
	}
	return h
}

func (d *Driver) unregister(h ze.Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.objects[h]; !ok {
		return
	}
	delete(d.objects, h)
	if err := d.issuer.Release(h); err != nil {
		d.logger.Warn("Failed to release handle", zap.Uint64("handle", uint64(h)), zap.Error(err))
	}
}

func (d *Driver) setLastError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	d.mu.Lock()
	d.lastError = msg
	d.mu.Unlock()
	d.logger.Debug("Driver error", zap.String("description", msg))
}

func (d *Driver) now() uint64 {
	return uint64(time.Since(d.epoch).Nanoseconds())
}

// lookup returns the object behind h if it has type T.
func lookup[T any](d *Driver, h ze.Handle) (T, bool) {
	d.mu.RLock()
	obj, ok := d.objects[h]
	d.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := obj.(T)
	return t, ok
}

// fill implements the count-then-fill protocol of enumeration entry points:
// a zero *pCount or a nil out asks for the number of items.
func fill[T any](pCount *uint32, out []T, items []T) ze.Result {
	if pCount == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	if *pCount == 0 || out == nil {
		*pCount = uint32(len(items))
		return ze.ResultSuccess
	}
	n := min(int(*pCount), len(items), len(out))
	copy(out, items[:n])
	*pCount = uint32(n)
	return ze.ResultSuccess
}
