package ddi

import (
	"fmt"
	"sync"

	"github.com/fxnlabs/level-zero-loader/internal/ze"
)

//go:generate go run ../../cmd/ddigen -catalog catalog.yaml -root ../..

// OpID identifies a catalogued entry point. The zero value is invalid.
type OpID uint16

// Op describes one entry point.
type Op struct {
	ID       OpID
	Symbol   string
	Category Category
	// Field is the entry's name inside its category table.
	Field string
	Since ze.APIVersion
	// Handle names the parameter the dispatch record is resolved from.
	// Empty for loader-level operations.
	Handle        string
	HandleArray   bool
	ReturnsHandle bool
	// Loader marks operations dispatched by the loader across all drivers.
	Loader bool
}

func (id OpID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("OpID(%d)", uint16(id))
	}
	return ops[id-1].Symbol
}

func (id OpID) Valid() bool {
	return id > 0 && int(id) <= len(ops)
}

// Describe returns the descriptor of id. It panics on an invalid id.
func Describe(id OpID) Op {
	if !id.Valid() {
		panic(fmt.Sprintf("ddi: invalid operation id %d", uint16(id)))
	}
	return ops[id-1]
}

// Ops returns every catalogued operation in catalog order.
func Ops() []Op {
	out := make([]Op, len(ops))
	copy(out, ops[:])
	return out
}

var (
	symbolsOnce sync.Once
	symbols     map[string]OpID
)

// LookupOp finds an operation by its C symbol, e.g. "zeDeviceGetProperties".
func LookupOp(symbol string) (Op, bool) {
	symbolsOnce.Do(func() {
		symbols = make(map[string]OpID, len(ops))
		for _, op := range ops {
			symbols[op.Symbol] = op.ID
		}
	})
	id, ok := symbols[symbol]
	if !ok {
		return Op{}, false
	}
	return ops[id-1], true
}
