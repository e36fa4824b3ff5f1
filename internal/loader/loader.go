// Package loader exposes every catalogued entry point. Each call resolves the
// dispatch record of its designated handle, checks the record's validity,
// negotiated version and tables, and forwards the original arguments to the
// driver. The loader holds no mutable state and takes no locks of its own.
package loader

import (
	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/registry"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
)

type Loader struct {
	registry *registry.Registry
	strict   bool
}

type Option func(*Loader)

// WithStrictHandleArrays makes operations taking a handle array reject arrays
// whose elements belong to different records with ResultErrorInvalidArgument.
// By default only the first element is resolved.
func WithStrictHandleArrays() Option {
	return func(l *Loader) {
		l.strict = true
	}
}

func New(reg *registry.Registry, opts ...Option) *Loader {
	l := &Loader{registry: reg}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) Registry() *registry.Registry {
	return l.registry
}

// Check reports the result the gate would produce for op on rec, including
// the entry lookup, without calling the driver.
func (l *Loader) Check(rec *registry.Record, op ddi.OpID) ze.Result {
	t, res := gate(rec, op)
	if res != ze.ResultSuccess {
		return res
	}
	if !t.Has(op) {
		return ze.ResultErrorUninitialized
	}
	return ze.ResultSuccess
}

func (l *Loader) resolve(h ze.Handle, op ddi.OpID) (*ddi.Tables, ze.Result) {
	rec, err := l.registry.Resolve(h)
	if err != nil {
		return nil, ze.ResultErrorInvalidNullHandle
	}
	return gate(rec, op)
}

// resolveFirst resolves the record from the first element of hs.
func resolveFirst[H ~uint64](l *Loader, hs []H, op ddi.OpID) (*ddi.Tables, ze.Result) {
	if len(hs) == 0 {
		return nil, ze.ResultErrorInvalidNullHandle
	}
	rec, err := l.registry.Resolve(ze.Handle(hs[0]))
	if err != nil {
		return nil, ze.ResultErrorInvalidNullHandle
	}
	if l.strict {
		for _, h := range hs[1:] {
			other, err := l.registry.Resolve(ze.Handle(h))
			if err != nil {
				return nil, ze.ResultErrorInvalidNullHandle
			}
			if other != rec {
				return nil, ze.ResultErrorInvalidArgument
			}
		}
	}
	return gate(rec, op)
}

// gate applies, in order: validity, version, sub-table presence.
func gate(rec *registry.Record, op ddi.OpID) (*ddi.Tables, ze.Result) {
	if !rec.Valid() {
		return nil, ze.ResultErrorUninitialized
	}
	desc := ddi.Describe(op)
	if rec.Version() < desc.Since {
		return nil, ze.ResultErrorUnsupportedVersion
	}
	t := rec.Tables()
	if t == nil || !t.Present(desc.Category) {
		return nil, ze.ResultErrorUninitialized
	}
	return t, ze.ResultSuccess
}
