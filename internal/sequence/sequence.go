// Package sequence produces human-facing sequential identifiers scoped per
// calendar year: variable symbols for bank transfers and invoice numbers.
package sequence

import (
	"context"
	"fmt"
)

// Name identifies one of the independent counters.
type Name string

const (
	VariableSymbol Name = "variable_symbol"
	InvoiceNumber  Name = "invoice_number"
)

// ErrCorruptCounter signals that the counter store returned a value no valid
// increment sequence can produce. It indicates stored-data corruption and is
// never recovered silently.
var ErrCorruptCounter = fmt.Errorf("sequence: counter store returned a non-positive value")

// Store atomically increments a per-name, per-year counter and returns the
// new value. The read-increment-write must be a single unit: two concurrent
// calls for the same (name, year) must never observe the same value.
type Store interface {
	Increment(ctx context.Context, name Name, year int) (int, error)
}

// Generator formats counter values into year-prefixed identifiers.
type Generator struct {
	store Store
}

func NewGenerator(store Store) *Generator {
	return &Generator{store: store}
}

// Next allocates the next identifier for the given counter and year,
// e.g. "2025-001". Counters never decrease and are never reused; the numeric
// part restarts at 1 when the year changes.
func (g *Generator) Next(ctx context.Context, name Name, year int) (string, error) {
	n, err := g.store.Increment(ctx, name, year)
	if err != nil {
		return "", err
	}
	if n < 1 {
		return "", ErrCorruptCounter
	}
	return Format(year, n), nil
}

// Format renders a counter value with the year prefix and the sequence
// zero-padded to at least three digits. Values beyond 999 simply grow wider.
func Format(year, n int) string {
	return fmt.Sprintf("%d-%03d", year, n)
}
