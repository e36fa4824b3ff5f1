// Package registry maps opaque handles to the dispatch record of the driver
// that issued them.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"go.uber.org/zap"
)

var (
	ErrNullHandle    = errors.New("null handle")
	ErrUnknownHandle = errors.New("unknown handle")
	ErrForeignHandle = errors.New("handle owned by another record")
	ErrTornDown      = errors.New("record already torn down")
	ErrNotActive     = errors.New("record has no dispatch tables")
)

// Registry is the side table from handle to dispatch record. Lookups take a
// read lock only and never allocate.
type Registry struct {
	mu      sync.RWMutex
	handles map[ze.Handle]*Record
	records []*Record
	next    ze.Handle
	logger  *zap.Logger
}

// New creates an empty registry.
func New(logger *zap.Logger) *Registry {
	return &Registry{
		handles: make(map[ze.Handle]*Record),
		logger:  logger.Named("registry"),
	}
}

// NewRecord creates an invalid record for one driver instance. The negotiated
// version is fixed for the record's lifetime.
func (r *Registry) NewRecord(name string, version ze.APIVersion) *Record {
	rec := &Record{name: name, version: version, registry: r}
	r.mu.Lock()
	rec.id = len(r.records)
	r.records = append(r.records, rec)
	r.mu.Unlock()
	r.logger.Debug("Dispatch record created",
		zap.String("driver", name),
		zap.Stringer("api_version", version))
	return rec
}

// Activate installs validated tables and marks the record valid.
func (r *Registry) Activate(rec *Record, tables *ddi.Tables) error {
	rec.life.Lock()
	defer rec.life.Unlock()
	if rec.torn.Load() {
		return fmt.Errorf("activate %s: %w", rec.name, ErrTornDown)
	}
	if err := tables.Validate(); err != nil {
		return fmt.Errorf("activate %s: %w", rec.name, err)
	}
	rec.tables.Store(tables)
	rec.valid.Store(true)
	r.logger.Debug("Dispatch record activated",
		zap.String("driver", rec.name),
		zap.Int("implemented", tables.Implemented()))
	return nil
}

// Resolve returns the record that issued h.
func (r *Registry) Resolve(h ze.Handle) (*Record, error) {
	if h == ze.NullHandle {
		return nil, ErrNullHandle
	}
	r.mu.RLock()
	rec, ok := r.handles[h]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownHandle
	}
	return rec, nil
}

// Teardown invalidates rec and releases its tables. Handles stay mapped so
// calls on them keep failing with an uninitialized result instead of
// resolving to nothing. A second teardown returns ErrTornDown and has no
// effect.
func (r *Registry) Teardown(rec *Record) error {
	rec.life.Lock()
	defer rec.life.Unlock()
	if !rec.torn.CompareAndSwap(false, true) {
		return ErrTornDown
	}
	rec.valid.Store(false)
	if t := rec.tables.Swap(nil); t != nil {
		t.Release()
	}
	r.logger.Debug("Dispatch record torn down",
		zap.String("driver", rec.name),
		zap.Int64("handles", rec.handles.Load()))
	return nil
}

// Records returns every record in creation order.
func (r *Registry) Records() []*Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}

func (r *Registry) issue(rec *Record) ze.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	h := r.next
	r.handles[h] = rec
	rec.handles.Add(1)
	return h
}

func (r *Registry) release(rec *Record, h ze.Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.handles[h]
	if !ok {
		return ErrUnknownHandle
	}
	if owner != rec {
		return ErrForeignHandle
	}
	delete(r.handles, h)
	rec.handles.Add(-1)
	return nil
}
