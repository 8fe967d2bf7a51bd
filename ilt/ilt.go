package ilt

import (
	"errors"
	"fmt"

	"github.com/cemsbv/iltcme/cme"
	"github.com/cemsbv/iltcme/laplace"
)

// ErrNonPositiveTime indicates a time point <= 0 in the input sequence.
var ErrNonPositiveTime = errors.New("ilt: time points must be positive")

// Invert — CME inverse Laplace transform
//
// Description:
//
//	Approximates the inverse Laplace transform of the named function at
//	every time point in times, spending at most maxEvals evaluations of
//	the Laplace-domain function per point.
//
// Algorithm Outline:
//  1. Resolve name in the fixed transform catalog.
//  2. Select the steepest CME record with n+1 <= maxEvals (one scan of
//     the catalog; see cme.Select for the pass-through default when
//     nothing fits the budget).
//  3. Build eta/beta node vectors once (cme.Nodes).
//  4. For each t: f(t) = Re(Σ_k eta[k]·F(beta[k]/t)) / t.
//
// The result preserves input order: out[i] corresponds to times[i], and
// len(out) == len(times). On any error the whole call fails with a nil
// result — never partial values.
//
// Errors:
//   - laplace.ErrUnknownTransform — name outside the fixed catalog.
//   - cme.ErrBadBudget            — maxEvals < 1.
//   - cme.ErrEmptyCatalog         — catalog has no records.
//   - cme.ErrMalformedParam       — a record violates len(a)==len(b)==n.
//   - ErrNonPositiveTime          — some times[i] <= 0.
func Invert(name string, times []float64, maxEvals int, catalog cme.Catalog) ([]float64, error) {
	fn, err := laplace.Lookup(name)
	if err != nil {
		return nil, err
	}

	steepest, err := cme.Select(catalog, maxEvals)
	if err != nil {
		return nil, err
	}
	eta, beta := cme.Nodes(steepest)

	out := make([]float64, len(times))
	for i, t := range times {
		if t <= 0 {
			return nil, fmt.Errorf("%w: times[%d] = %v", ErrNonPositiveTime, i, t)
		}
		out[i] = pointAt(fn, eta, beta, t)
	}
	return out, nil
}

// pointAt evaluates the quadrature at a single time point. The imaginary
// part of the accumulated sum is discarded only here, after the full
// complex reduction.
func pointAt(fn laplace.Func, eta, beta []complex128, t float64) float64 {
	var acc complex128
	for k := range eta {
		acc += eta[k] * fn(beta[k]/complex(t, 0))
	}
	return real(acc) / t
}
