package ddi

import (
	"errors"
	"testing"

	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestProc(t *testing.T) {
	var zero Proc[PfnInit]
	assert.False(t, zero.IsSet())
	assert.False(t, zero.Implemented())

	unimpl := Unimplemented[PfnInit]()
	assert.True(t, unimpl.IsSet())
	assert.False(t, unimpl.Implemented())
	_, ok := unimpl.Get()
	assert.False(t, ok)

	var nilFn PfnInit
	assert.Equal(t, unimpl, Impl(nilFn))

	p := Impl[PfnInit](func(ze.InitFlags) ze.Result { return ze.ResultNotReady })
	fn, ok := p.Get()
	require.True(t, ok)
	assert.Equal(t, ze.ResultNotReady, fn(0))
}

func TestOps(t *testing.T) {
	all := Ops()
	require.NotEmpty(t, all)
	for i, op := range all {
		assert.Equal(t, OpID(i+1), op.ID)
		assert.True(t, op.ID.Valid())
		assert.Equal(t, op.Symbol, op.ID.String())
		if op.Loader {
			assert.Empty(t, op.Handle, op.Symbol)
		} else {
			assert.NotEmpty(t, op.Handle, op.Symbol)
		}
		assert.LessOrEqual(t, op.Since, ze.APIVersionCurrent, op.Symbol)
	}

	all[0].Symbol = "mutated"
	assert.Equal(t, "zeInit", Describe(OpInit).Symbol)

	assert.False(t, OpID(0).Valid())
	assert.Equal(t, "OpID(0)", OpID(0).String())
	assert.Panics(t, func() { Describe(OpID(len(all) + 1)) })
}

func TestLookupOp(t *testing.T) {
	op, ok := LookupOp("zeMemAllocShared")
	require.True(t, ok)
	assert.Equal(t, OpMemAllocShared, op.ID)
	assert.Equal(t, CategoryMem, op.Category)
	assert.Equal(t, "hContext", op.Handle)

	op, ok = LookupOp("zeDriverGetDefaultContext")
	require.True(t, ok)
	assert.True(t, op.ReturnsHandle)
	assert.Equal(t, ze.APIVersion1_14, op.Since)

	_, ok = LookupOp("zeNothing")
	assert.False(t, ok)
}

func TestCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	_, err := ParseCategory("Bogus")
	assert.Error(t, err)
	assert.Equal(t, "Category(200)", Category(200).String())
}

func TestTables(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		var tables *Tables
		assert.ErrorIs(t, tables.Validate(), ErrNilTables)
		assert.Zero(t, tables.Implemented())
		assert.False(t, tables.Has(OpInit))
	})

	t.Run("fresh tables are valid and empty", func(t *testing.T) {
		tables := NewTables()
		require.NoError(t, tables.Validate())
		assert.Zero(t, tables.Implemented())
		for _, c := range Categories() {
			assert.True(t, tables.Present(c), c.String())
		}
	})

	t.Run("implemented entries", func(t *testing.T) {
		tables := NewTables()
		tables.Context.Create = Impl[PfnContextCreate](func(ze.DriverHandle, *ze.ContextDesc, *ze.ContextHandle) ze.Result {
			return ze.ResultSuccess
		})
		assert.Equal(t, 1, tables.Implemented())
		assert.True(t, tables.Has(OpContextCreate))
		assert.False(t, tables.Has(OpContextDestroy))
		assert.False(t, tables.Has(OpID(0)))

		tables.Context = nil
		assert.False(t, tables.Present(CategoryContext))
		assert.False(t, tables.Has(OpContextCreate))
		assert.NoError(t, tables.Validate())
	})

	t.Run("unset entries are all reported", func(t *testing.T) {
		tables := &Tables{Fence: &FenceTable{}}
		err := tables.Validate()
		require.Error(t, err)
		errs := multierr.Errors(err)
		assert.Len(t, errs, len(categoryOps(CategoryFence)))
		for _, e := range errs {
			assert.True(t, errors.Is(e, ErrUnsetEntry))
		}
	})

	t.Run("release", func(t *testing.T) {
		tables := NewTables()
		tables.Release()
		for _, c := range Categories() {
			assert.False(t, tables.Present(c))
		}
	})
}

func categoryOps(c Category) []Op {
	var out []Op
	for _, op := range Ops() {
		if op.Category == c {
			out = append(out, op)
		}
	}
	return out
}
