// Package driver defines the contract between the loader and a driver
// implementation, a registry of driver factories and the Manager that loads
// drivers into dispatch records.
package driver

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"go.uber.org/zap"
)

var (
	ErrUnknownDriver   = errors.New("unknown driver")
	ErrDuplicateDriver = errors.New("driver already registered")
)

// Issuer hands out handles bound to one dispatch record. It is implemented by
// registry.Record.
type Issuer interface {
	Issue() ze.Handle
	Release(h ze.Handle) error
}

// Driver is one implementation of the API.
//
// Implementation notes:
//   - Every handle a driver returns to callers must come from the Issuer
//     passed to Open, so that the loader can route calls on it.
//   - The tables returned by Open must set every entry of every present
//     sub-table, to an implementation or to ddi.Unimplemented.
//   - Drivers must be safe for concurrent calls on different handles.
type Driver interface {
	// Name identifies the driver in configuration and logs.
	Name() string

	// APIVersion returns the highest API version the driver implements.
	// The loader negotiates the record version down from it.
	APIVersion() ze.APIVersion

	// Open prepares the driver and returns its dispatch tables. It is
	// called once.
	Open(issuer Issuer) (*ddi.Tables, error)

	// Close releases everything the driver holds. The loader tears down the
	// driver's record before calling it.
	Close() error
}

// Factory creates a driver instance.
type Factory func(logger *zap.Logger) (Driver, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]Factory)
)

// Register makes a driver factory available by name. It is meant to be
// called from init functions and panics on duplicates.
func Register(name string, factory Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	if factory == nil {
		panic("driver: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic(fmt.Sprintf("driver: %v: %s", ErrDuplicateDriver, name))
	}
	factories[name] = factory
}

func Lookup(name string) (Factory, error) {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, name)
	}
	return f, nil
}

// Names returns the registered driver names, sorted.
func Names() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
