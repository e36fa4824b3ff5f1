package registry

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
)

// Record is the dispatch record of one driver instance: its identity,
// negotiated version, tables and validity flag.
type Record struct {
	id       int
	name     string
	version  ze.APIVersion
	registry *Registry

	// life serializes activation, enabling and teardown. Readers only use
	// the atomics below.
	life sync.Mutex

	valid   atomic.Bool
	torn    atomic.Bool
	tables  atomic.Pointer[ddi.Tables]
	handles atomic.Int64
}

func (rec *Record) ID() int                { return rec.id }
func (rec *Record) Name() string           { return rec.name }
func (rec *Record) Version() ze.APIVersion { return rec.version }
func (rec *Record) Valid() bool            { return rec.valid.Load() }
func (rec *Record) TornDown() bool         { return rec.torn.Load() }
func (rec *Record) Tables() *ddi.Tables    { return rec.tables.Load() }
func (rec *Record) Handles() int           { return int(rec.handles.Load()) }

// Issue registers a new handle owned by rec. It returns the null handle once
// the record has been torn down.
func (rec *Record) Issue() ze.Handle {
	if rec.torn.Load() {
		return ze.NullHandle
	}
	return rec.registry.issue(rec)
}

// Release unregisters h. Only the owning record may release a handle.
func (rec *Record) Release(h ze.Handle) error {
	if h == ze.NullHandle {
		return ErrNullHandle
	}
	return rec.registry.release(rec, h)
}

// Disable clears the validity flag. Nothing else about the record changes.
func (rec *Record) Disable() {
	rec.valid.Store(false)
}

// Enable sets the validity flag again. Torn down or never activated records
// cannot be enabled.
func (rec *Record) Enable() error {
	rec.life.Lock()
	defer rec.life.Unlock()
	if rec.torn.Load() {
		return fmt.Errorf("enable %s: %w", rec.name, ErrTornDown)
	}
	if rec.tables.Load() == nil {
		return fmt.Errorf("enable %s: %w", rec.name, ErrNotActive)
	}
	rec.valid.Store(true)
	return nil
}

func (rec *Record) String() string {
	return fmt.Sprintf("%s#%d(v%s)", rec.name, rec.id, rec.version)
}
