package driver

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fxnlabs/level-zero-loader/internal/registry"
	"github.com/fxnlabs/level-zero-loader/internal/trace"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Spec selects one driver to load.
type Spec struct {
	Name string
	// APIVersion overrides the manager's ceiling for this driver when set.
	APIVersion ze.APIVersion
}

// Manager loads drivers into dispatch records and tears them down.
type Manager struct {
	mu       sync.Mutex
	registry *registry.Registry
	ceiling  ze.APIVersion
	layer    *trace.Layer
	observer LoadObserver
	loaded   []*loaded
	logger   *zap.Logger
}

type loaded struct {
	driver Driver
	record *registry.Record
	// announced is set once the load observer has seen the driver.
	announced bool
}

// LoadObserver is told when a driver record becomes valid and when it is
// torn down.
type LoadObserver interface {
	DriverLoaded(name string, v ze.APIVersion)
	DriverUnloaded(name string)
}

type ManagerOption func(*Manager)

// WithAPIVersion caps the version negotiated with every driver.
func WithAPIVersion(v ze.APIVersion) ManagerOption {
	return func(m *Manager) {
		m.ceiling = v
	}
}

// WithTraceLayer wraps every driver's tables with layer.
func WithTraceLayer(layer *trace.Layer) ManagerOption {
	return func(m *Manager) {
		m.layer = layer
	}
}

func WithLoadObserver(o LoadObserver) ManagerOption {
	return func(m *Manager) {
		m.observer = o
	}
}

func NewManager(reg *registry.Registry, logger *zap.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		registry: reg,
		ceiling:  ze.APIVersionCurrent,
		logger:   logger.Named("driver_manager"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load creates and opens each driver. A driver whose Open or activation
// fails keeps an invalid record, so calls on any handle it issued report an
// uninitialized result. Failures are combined into the returned error.
func (m *Manager) Load(specs ...Spec) error {
	var errs error
	for _, spec := range specs {
		factory, err := Lookup(spec.Name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		drv, err := factory(m.logger)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("create driver %s: %w", spec.Name, err))
			continue
		}
		if err := m.Attach(drv, spec.APIVersion); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Attach loads an already constructed driver. override, when non-zero,
// replaces the manager's ceiling for this driver.
func (m *Manager) Attach(drv Driver, override ze.APIVersion) error {
	version := m.negotiate(drv.APIVersion(), override)
	rec := m.registry.NewRecord(drv.Name(), version)

	entry := &loaded{driver: drv, record: rec}
	m.mu.Lock()
	m.loaded = append(m.loaded, entry)
	m.mu.Unlock()

	logger := m.logger.With(zap.String("driver", drv.Name()), zap.Stringer("api_version", version))
	tables, err := drv.Open(rec)
	if err != nil {
		logger.Error("Failed to open driver", zap.Error(err))
		return fmt.Errorf("open driver %s: %w", drv.Name(), err)
	}
	if m.layer != nil {
		tables = m.layer.Wrap(tables)
	}
	if err := m.registry.Activate(rec, tables); err != nil {
		logger.Error("Failed to activate driver tables", zap.Error(err))
		return err
	}
	if m.observer != nil {
		m.observer.DriverLoaded(drv.Name(), version)
		m.mu.Lock()
		entry.announced = true
		m.mu.Unlock()
	}
	logger.Info("Driver loaded",
		zap.Int("implemented_entries", tables.Implemented()),
		zap.Bool("traced", m.layer != nil))
	return nil
}

func (m *Manager) negotiate(driverVersion, override ze.APIVersion) ze.APIVersion {
	limit := m.ceiling
	if override != 0 {
		limit = override
	}
	if driverVersion < limit {
		return driverVersion
	}
	return limit
}

// Records returns the records of every attached driver, loaded or not.
func (m *Manager) Records() []*registry.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*registry.Record, 0, len(m.loaded))
	for _, l := range m.loaded {
		out = append(out, l.record)
	}
	return out
}

// Record returns the record of the first attached driver called name.
func (m *Manager) Record(name string) (*registry.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.loaded {
		if l.record.Name() == name {
			return l.record, true
		}
	}
	return nil, false
}

// Active counts the valid records.
func (m *Manager) Active() int {
	n := 0
	for _, rec := range m.Records() {
		if rec.Valid() {
			n++
		}
	}
	return n
}

// Close tears down every record and closes its driver. It is safe to call
// more than once.
func (m *Manager) Close() error {
	m.mu.Lock()
	all := m.loaded
	m.loaded = nil
	announced := make([]bool, len(all))
	for i, l := range all {
		announced[i] = l.announced
	}
	m.mu.Unlock()

	var errs error
	for i, l := range all {
		if err := m.registry.Teardown(l.record); err != nil && !errors.Is(err, registry.ErrTornDown) {
			errs = multierr.Append(errs, err)
		}
		if announced[i] {
			m.observer.DriverUnloaded(l.driver.Name())
		}
		if err := l.driver.Close(); err != nil {
			m.logger.Warn("Failed to close driver", zap.String("driver", l.driver.Name()), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("close driver %s: %w", l.driver.Name(), err))
		}
	}
	if len(all) > 0 {
		m.logger.Info("Drivers unloaded", zap.Int("count", len(all)))
	}
	return errs
}
