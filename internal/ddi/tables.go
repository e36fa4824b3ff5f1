// Package ddi defines the driver dispatch interface: one function table per
// API category, aggregated in Tables, and the static catalog of entry points.
package ddi

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	ErrNilTables  = errors.New("dispatch tables are nil")
	ErrUnsetEntry = errors.New("dispatch entry not set")
)

// Validate reports every entry of a present sub-table that was left unset.
// Absent sub-tables are allowed.
func (t *Tables) Validate() error {
	if t == nil {
		return ErrNilTables
	}
	var err error
	for _, name := range t.unsetEntries() {
		err = multierr.Append(err, fmt.Errorf("%w: %s", ErrUnsetEntry, name))
	}
	return err
}

// Implemented counts the callable entries across all present sub-tables.
func (t *Tables) Implemented() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, op := range ops {
		if t.implemented(op.ID) {
			n++
		}
	}
	return n
}

// Has reports whether op is present and implemented in t.
func (t *Tables) Has(op OpID) bool {
	if t == nil || !op.Valid() {
		return false
	}
	return t.implemented(op)
}

func appendUnset[F any](missing []string, p Proc[F], name string) []string {
	if !p.IsSet() {
		return append(missing, name)
	}
	return missing
}
