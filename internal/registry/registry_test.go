package registry

import (
	"sync"
	"testing"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newActiveRecord(t *testing.T, r *Registry, name string) *Record {
	t.Helper()
	rec := r.NewRecord(name, ze.APIVersion1_5)
	require.NoError(t, r.Activate(rec, ddi.NewTables()))
	return rec
}

func TestRegistry_NewRecord(t *testing.T) {
	r := New(zap.NewNop())
	a := r.NewRecord("a", ze.APIVersion1_0)
	b := r.NewRecord("b", ze.APIVersion1_14)

	assert.Equal(t, 0, a.ID())
	assert.Equal(t, 1, b.ID())
	assert.Equal(t, ze.APIVersion1_14, b.Version())
	assert.False(t, a.Valid())
	assert.Nil(t, a.Tables())
	assert.Equal(t, []*Record{a, b}, r.Records())
	assert.Equal(t, "b#1(v1.14)", b.String())
}

func TestRegistry_Resolve(t *testing.T) {
	r := New(zap.NewNop())
	a := newActiveRecord(t, r, "a")
	b := newActiveRecord(t, r, "b")

	ha := a.Issue()
	hb := b.Issue()
	require.NotEqual(t, ze.NullHandle, ha)
	require.NotEqual(t, ha, hb)

	testCases := []struct {
		name    string
		handle  ze.Handle
		want    *Record
		wantErr error
	}{
		{name: "first record", handle: ha, want: a},
		{name: "second record", handle: hb, want: b},
		{name: "null handle", handle: ze.NullHandle, wantErr: ErrNullHandle},
		{name: "never issued", handle: hb + 100, wantErr: ErrUnknownHandle},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := r.Resolve(tc.handle)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, rec)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tc.want, rec)
		})
	}
}

func TestRecord_Release(t *testing.T) {
	r := New(zap.NewNop())
	a := newActiveRecord(t, r, "a")
	b := newActiveRecord(t, r, "b")
	h := a.Issue()
	assert.Equal(t, 1, a.Handles())

	assert.ErrorIs(t, b.Release(h), ErrForeignHandle)
	assert.ErrorIs(t, a.Release(ze.NullHandle), ErrNullHandle)
	require.NoError(t, a.Release(h))
	assert.ErrorIs(t, a.Release(h), ErrUnknownHandle)

	_, err := r.Resolve(h)
	assert.ErrorIs(t, err, ErrUnknownHandle)
	assert.Equal(t, 0, a.Handles())
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Activate(t *testing.T) {
	r := New(zap.NewNop())

	t.Run("nil tables", func(t *testing.T) {
		rec := r.NewRecord("nil", ze.APIVersion1_0)
		assert.ErrorIs(t, r.Activate(rec, nil), ddi.ErrNilTables)
		assert.False(t, rec.Valid())
	})

	t.Run("unset entries", func(t *testing.T) {
		rec := r.NewRecord("partial", ze.APIVersion1_0)
		tables := &ddi.Tables{Context: &ddi.ContextTable{}}
		err := r.Activate(rec, tables)
		assert.ErrorIs(t, err, ddi.ErrUnsetEntry)
		assert.ErrorContains(t, err, "Context.Create")
		assert.False(t, rec.Valid())
	})

	t.Run("absent sub-tables", func(t *testing.T) {
		rec := r.NewRecord("sparse", ze.APIVersion1_0)
		require.NoError(t, r.Activate(rec, &ddi.Tables{Global: ddi.NewGlobalTable()}))
		assert.True(t, rec.Valid())
	})
}

func TestRegistry_Teardown(t *testing.T) {
	r := New(zap.NewNop())
	rec := newActiveRecord(t, r, "a")
	h := rec.Issue()

	require.NoError(t, r.Teardown(rec))
	assert.False(t, rec.Valid())
	assert.True(t, rec.TornDown())
	assert.Nil(t, rec.Tables())

	t.Run("second teardown", func(t *testing.T) {
		assert.ErrorIs(t, r.Teardown(rec), ErrTornDown)
		assert.True(t, rec.TornDown())
	})

	t.Run("handles stay mapped", func(t *testing.T) {
		got, err := r.Resolve(h)
		require.NoError(t, err)
		assert.Same(t, rec, got)
	})

	t.Run("no new handles", func(t *testing.T) {
		assert.Equal(t, ze.NullHandle, rec.Issue())
	})

	t.Run("cannot reactivate", func(t *testing.T) {
		assert.ErrorIs(t, r.Activate(rec, ddi.NewTables()), ErrTornDown)
		assert.ErrorIs(t, rec.Enable(), ErrTornDown)
	})
}

func TestRecord_DisableEnable(t *testing.T) {
	r := New(zap.NewNop())

	inactive := r.NewRecord("inactive", ze.APIVersion1_0)
	assert.ErrorIs(t, inactive.Enable(), ErrNotActive)

	rec := newActiveRecord(t, r, "a")
	rec.Disable()
	assert.False(t, rec.Valid())
	assert.NotNil(t, rec.Tables())
	require.NoError(t, rec.Enable())
	assert.True(t, rec.Valid())
}

func TestRegistry_Concurrent(t *testing.T) {
	r := New(zap.NewNop())
	records := []*Record{newActiveRecord(t, r, "a"), newActiveRecord(t, r, "b")}

	const perWorker = 200
	var (
		mu     sync.Mutex
		issued = make(map[ze.Handle]*Record)
	)
	var g errgroup.Group
	for w := 0; w < 8; w++ {
		rec := records[w%len(records)]
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				h := rec.Issue()
				got, err := r.Resolve(h)
				if err != nil {
					return err
				}
				if got != rec {
					return ErrForeignHandle
				}
				mu.Lock()
				issued[h] = rec
				mu.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, issued, 8*perWorker)
	assert.Equal(t, 8*perWorker, r.Len())
	assert.Equal(t, 4*perWorker, records[0].Handles())
}

func TestRegistry_ActivateRacesTeardown(t *testing.T) {
	r := New(zap.NewNop())
	for i := 0; i < 500; i++ {
		rec := r.NewRecord("race", ze.APIVersion1_0)
		var g errgroup.Group
		g.Go(func() error {
			_ = r.Activate(rec, ddi.NewTables())
			return nil
		})
		g.Go(func() error {
			_ = rec.Enable()
			return nil
		})
		g.Go(func() error {
			return r.Teardown(rec)
		})
		require.NoError(t, g.Wait())

		require.True(t, rec.TornDown())
		require.False(t, rec.Valid(), "iteration %d left a torn down record valid", i)
		require.Nil(t, rec.Tables(), "iteration %d left tables on a torn down record", i)
	}
}
