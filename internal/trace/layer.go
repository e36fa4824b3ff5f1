// Package trace declares the per-entry-point parameter records and callback
// types, and provides a Layer that interposes prologue and epilogue callbacks
// on a driver's dispatch tables.
package trace

import (
	"time"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
)

// Observer receives the outcome of every traced call.
type Observer interface {
	Observe(op ddi.OpID, result ze.Result, elapsed time.Duration)
}

// Hook receives every traced call with its parameter record.
type Hook func(op ddi.OpID, params any, result ze.Result)

// Layer is immutable once built. Tables wrapped by a layer call the prologue
// before the driver and the epilogue after it; a prologue may rewrite the
// arguments through the params record.
type Layer struct {
	prologue Callbacks
	epilogue Callbacks
	userData any
	observer Observer
}

type Option func(*Layer)

func WithPrologue(cb Callbacks) Option {
	return func(l *Layer) { l.prologue = cb }
}

func WithEpilogue(cb Callbacks) Option {
	return func(l *Layer) { l.epilogue = cb }
}

// WithUserData sets the tracer user data passed to every callback.
func WithUserData(v any) Option {
	return func(l *Layer) { l.userData = v }
}

func WithObserver(o Observer) Option {
	return func(l *Layer) { l.observer = o }
}

func NewLayer(opts ...Option) *Layer {
	l := &Layer{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Wrap returns new tables whose implemented entries are traced. Unset and
// unimplemented entries keep their state and absent sub-tables stay absent.
func (l *Layer) Wrap(t *ddi.Tables) *ddi.Tables {
	if t == nil {
		return nil
	}
	return l.wrap(t)
}

func wrapProc[F any](p ddi.Proc[F], wrap func(F) F) ddi.Proc[F] {
	fn, ok := p.Get()
	if !ok {
		return p
	}
	return ddi.Impl(wrap(fn))
}

func invoke[P any, C ~func(*P, ze.Result, any, *any)](l *Layer, op ddi.OpID, params *P, prologue, epilogue C, call func() ze.Result) ze.Result {
	var instance any
	if pro := (func(*P, ze.Result, any, *any))(prologue); pro != nil {
		pro(params, ze.ResultSuccess, l.userData, &instance)
	}
	start := time.Now()
	result := call()
	if l.observer != nil {
		l.observer.Observe(op, result, time.Since(start))
	}
	if epi := (func(*P, ze.Result, any, *any))(epilogue); epi != nil {
		epi(params, result, l.userData, &instance)
	}
	return result
}

// invokeHandle traces an entry point that returns a handle instead of a
// result. Callbacks see ResultSuccess for a non-null handle and
// ResultErrorInvalidNullHandle otherwise.
func invokeHandle[P any, C ~func(*P, ze.Result, any, *any), H ~uint64](l *Layer, op ddi.OpID, params *P, prologue, epilogue C, call func() H) H {
	var h H
	invoke(l, op, params, prologue, epilogue, func() ze.Result {
		h = call()
		if h == 0 {
			return ze.ResultErrorInvalidNullHandle
		}
		return ze.ResultSuccess
	})
	return h
}
