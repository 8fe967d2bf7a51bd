// Package ilt inverts Laplace transforms numerically with the CME
// quadrature.
//
// 🚀 How it works
//
//	Invert picks the steepest CME record the evaluation budget admits
//	(cme.Select), expands it once into complex weights eta and nodes beta
//	(cme.Nodes), and then for every requested time point t computes
//
//	    f(t) ≈ Re(Σ_k eta[k] · F(beta[k]/t)) / t
//
//	where F is the named Laplace-domain function from package laplace.
//	Selection and node construction happen once per call; each time point
//	costs n+1 evaluations of F.
//
// ⚙️ Usage:
//
//	cat, err := cmedata.Standard()
//	if err != nil { ... }
//	vals, err := ilt.Invert(laplace.Exponential, []float64{1, 2, 3}, 50, cat)
//	// vals[i] ≈ e^{-T[i]}
//
// Guarantees:
//   - output order and length match the input time points exactly
//   - all intermediate arithmetic is complex128; only the final reduction
//     drops the imaginary part
//   - errors are surfaced immediately and atomically — no partial results
//
// Complexity: O(len(T)·(n+1)) complex evaluations, no allocation beyond
// the two node vectors and the result slice.
package ilt
