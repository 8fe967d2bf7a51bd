// Package cme: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ...)); callers match them with errors.Is. None of
// the algorithms panic on user-triggered conditions.
package cme

import "errors"

var (
	// ErrEmptyCatalog indicates a catalog with no records was supplied.
	ErrEmptyCatalog = errors.New("cme: empty catalog")

	// ErrMalformedParam indicates a record violating its invariants,
	// e.g. len(a) or len(b) not matching n.
	ErrMalformedParam = errors.New("cme: malformed parameter record")

	// ErrBadBudget indicates a non-positive evaluation budget.
	ErrBadBudget = errors.New("cme: evaluation budget must be positive")
)
