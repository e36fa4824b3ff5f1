package ddi

import "reflect"

type procState uint8

const (
	procUnset procState = iota
	procUnimplemented
	procImplemented
)

// Proc is one dispatch table entry. Its zero value is unset, which Tables
// validation rejects: a driver must either implement an entry or declare it
// unimplemented.
type Proc[F any] struct {
	fn    F
	state procState
}

// Impl returns an implemented entry. A nil fn yields an unimplemented one.
func Impl[F any](fn F) Proc[F] {
	if isNilFunc(fn) {
		return Unimplemented[F]()
	}
	return Proc[F]{fn: fn, state: procImplemented}
}

// Unimplemented returns an entry that is explicitly not provided.
func Unimplemented[F any]() Proc[F] {
	return Proc[F]{state: procUnimplemented}
}

// Get returns the function and whether it can be called.
func (p Proc[F]) Get() (F, bool) {
	return p.fn, p.state == procImplemented
}

func (p Proc[F]) IsSet() bool {
	return p.state != procUnset
}

func (p Proc[F]) Implemented() bool {
	return p.state == procImplemented
}

func isNilFunc(fn any) bool {
	v := reflect.ValueOf(fn)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}
