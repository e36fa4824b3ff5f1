package loader

import (
	"reflect"
	"strings"
	"testing"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/registry"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var zePkg = reflect.TypeOf(ze.Handle(0)).PkgPath()

func isHandleType(t reflect.Type) bool {
	return t.PkgPath() == zePkg && t.Kind() == reflect.Uint64 && strings.HasSuffix(t.Name(), "Handle")
}

// callArgs builds zero arguments for fn, with h in every handle parameter and
// as the only element of every handle slice.
func callArgs(fn reflect.Type, h ze.Handle) []reflect.Value {
	args := make([]reflect.Value, fn.NumIn())
	for i := range args {
		in := fn.In(i)
		v := reflect.New(in).Elem()
		switch {
		case isHandleType(in):
			v.SetUint(uint64(h))
		case in.Kind() == reflect.Slice && isHandleType(in.Elem()):
			v = reflect.MakeSlice(in, 1, 1)
			v.Index(0).SetUint(uint64(h))
		}
		args[i] = v
	}
	return args
}

// clearCategory sets the sub-table of c to nil.
func clearCategory(t *ddi.Tables, c ddi.Category) {
	f := reflect.ValueOf(t).Elem().FieldByName(c.String())
	f.Set(reflect.Zero(f.Type()))
}

func TestLoader_GateEveryOperation(t *testing.T) {
	type scenario struct {
		name    string
		version func(op ddi.Op) ze.APIVersion
		setup   func(op ddi.Op, rec *registry.Record)
		want    ze.Result
		skip    func(op ddi.Op) bool
	}
	current := func(ddi.Op) ze.APIVersion { return ze.APIVersionCurrent }
	scenarios := []scenario{
		{
			name:    "invalid record",
			version: func(ddi.Op) ze.APIVersion { return ze.APIVersion1_0 },
			setup:   func(_ ddi.Op, rec *registry.Record) { rec.Disable() },
			want:    ze.ResultErrorUninitialized,
		},
		{
			name:    "version below minimum",
			version: func(op ddi.Op) ze.APIVersion { return op.Since - 1 },
			setup:   func(op ddi.Op, rec *registry.Record) { clearCategory(rec.Tables(), op.Category) },
			want:    ze.ResultErrorUnsupportedVersion,
			skip:    func(op ddi.Op) bool { return op.Since <= ze.APIVersion1_0 },
		},
		{
			name:    "sub-table absent",
			version: current,
			setup:   func(op ddi.Op, rec *registry.Record) { clearCategory(rec.Tables(), op.Category) },
			want:    ze.ResultErrorUninitialized,
		},
		{
			name:    "entry unimplemented",
			version: current,
			want:    ze.ResultErrorUninitialized,
		},
	}

	covered := 0
	for _, op := range ddi.Ops() {
		if op.Loader || op.Handle == "" {
			continue
		}
		covered++
		t.Run(op.Symbol, func(t *testing.T) {
			for _, sc := range scenarios {
				if sc.skip != nil && sc.skip(op) {
					continue
				}
				e := newEnv()
				rec := e.reg.NewRecord("drv", sc.version(op))
				require.NoError(t, e.reg.Activate(rec, ddi.NewTables()))
				h := rec.Issue()
				require.NotZero(t, h)
				if sc.setup != nil {
					sc.setup(op, rec)
				}

				method := reflect.ValueOf(e.l).MethodByName(strings.TrimPrefix(op.Symbol, "ze"))
				require.True(t, method.IsValid(), "no loader method for %s", op.Symbol)
				out := method.Call(callArgs(method.Type(), h))
				require.Len(t, out, 1)

				if op.ReturnsHandle {
					assert.Zero(t, out[0].Uint(), sc.name)
				} else {
					assert.Equal(t, sc.want, out[0].Interface(), sc.name)
				}
				assert.Equal(t, sc.want, e.l.Check(rec, op.ID), sc.name)
			}
		})
	}
	assert.Greater(t, covered, 190)
}
