package loader

import (
	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/registry"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
)

// Init forwards zeInit to every record that passes the gate. It succeeds when
// at least one driver initializes; otherwise the first failure is returned.
func (l *Loader) Init(flags ze.InitFlags) ze.Result {
	first := ze.ResultErrorUninitialized
	failed := false
	ok := false
	for _, rec := range l.registry.Records() {
		t, res := gate(rec, ddi.OpInit)
		if res == ze.ResultSuccess {
			fn, implemented := t.Global.Init.Get()
			if !implemented {
				res = ze.ResultErrorUninitialized
			} else {
				res = fn(flags)
			}
		}
		if res == ze.ResultSuccess {
			ok = true
			continue
		}
		if !failed {
			first, failed = res, true
		}
	}
	if ok {
		return ze.ResultSuccess
	}
	return first
}

// DriverGet forwards zeDriverGet to every record that passes the gate and
// concatenates the driver handles in record creation order.
func (l *Loader) DriverGet(pCount *uint32, phDrivers []ze.DriverHandle) ze.Result {
	return l.collectDrivers(pCount, phDrivers, ddi.OpDriverGet, func(t *ddi.Tables) (ddi.PfnDriverGet, bool) {
		return t.Driver.Get.Get()
	})
}

// InitDrivers forwards zeInitDrivers, which requires API version 1.10, and
// collects driver handles like DriverGet. Each record's zeInitDrivers runs
// once per call.
func (l *Loader) InitDrivers(pCount *uint32, phDrivers []ze.DriverHandle, desc *ze.InitDriverTypeDesc) ze.Result {
	if desc == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	return l.collectDrivers(pCount, phDrivers, ddi.OpInitDrivers, func(t *ddi.Tables) (ddi.PfnDriverGet, bool) {
		fn, ok := t.Global.InitDrivers.Get()
		if !ok {
			return nil, false
		}
		return func(pCount *uint32, phDrivers []ze.DriverHandle) ze.Result {
			return fn(pCount, phDrivers, desc)
		}, true
	})
}

type driverQuery func(t *ddi.Tables) (ddi.PfnDriverGet, bool)

// collectDrivers implements the count-then-fill protocol across records. A
// nil phDrivers or a zero *pCount asks for the total count.
func (l *Loader) collectDrivers(pCount *uint32, phDrivers []ze.DriverHandle, op ddi.OpID, query driverQuery) ze.Result {
	if pCount == nil {
		return ze.ResultErrorInvalidNullPointer
	}
	want := int(*pCount)
	if phDrivers == nil {
		want = 0
	}
	if want > len(phDrivers) {
		want = len(phDrivers)
	}

	var (
		total  int
		found  bool
		failed bool
		first  = ze.ResultErrorUninitialized
	)
	for _, rec := range l.registry.Records() {
		n, res := queryRecord(rec, op, query, phDrivers, total, want)
		if res != ze.ResultSuccess {
			if !failed {
				first, failed = res, true
			}
			continue
		}
		found = true
		total += n
	}
	if !found {
		return first
	}
	if want > 0 && total > want {
		total = want
	}
	*pCount = uint32(total)
	return ze.ResultSuccess
}

// queryRecord asks one record for its driver handles with a single call. When
// the caller's buffer still has room the record fills phDrivers[offset:want]
// directly; otherwise it is only asked for its count.
func queryRecord(rec *registry.Record, op ddi.OpID, query driverQuery, phDrivers []ze.DriverHandle, offset, want int) (int, ze.Result) {
	t, res := gate(rec, op)
	if res != ze.ResultSuccess {
		return 0, res
	}
	fn, ok := query(t)
	if !ok {
		return 0, ze.ResultErrorUninitialized
	}
	if want == 0 || offset >= want {
		var count uint32
		if res := fn(&count, nil); res != ze.ResultSuccess {
			return 0, res
		}
		return int(count), ze.ResultSuccess
	}
	count := uint32(want - offset)
	if res := fn(&count, phDrivers[offset:want]); res != ze.ResultSuccess {
		return 0, res
	}
	if int(count) > want-offset {
		count = uint32(want - offset)
	}
	return int(count), ze.ResultSuccess
}
