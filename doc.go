// Package iltcme computes numerical inverse Laplace transforms with the
// Concentrated Matrix-Exponential (CME) method.
//
// 🚀 What is ILT-CME?
//
//	Given a Laplace-domain function F(s) and a time point t, the inverse
//	transform f(t) is approximated by a weighted sum of evaluations of F
//	at complex abscissas — a Bromwich-contour quadrature whose weights
//	and nodes come from a precomputed table of CME distributions. The
//	lower the distribution's squared coefficient of variation (cv2), the
//	sharper the quadrature; the table lets you trade accuracy against a
//	cap on the number of function evaluations per time point.
//
// ✨ What's inside:
//   - cme/     — parameter records, catalog validation, steepest-in-budget
//     selection and complex node/weight construction
//   - laplace/ — the fixed catalog of named Laplace-domain transforms
//     (exponential, sine, heavyside, expheavyside, squarewave, staircase)
//   - ilt/     — the inverter: Invert(name, T, maxEvals, catalog)
//   - cmedata/ — the embedded standard coefficient catalog, decoded once
//     on first use
//   - cmd/ilt  — a small CLI wrapping the same inputs and outputs
//
// Quick start:
//
//	cat, err := cmedata.Standard()
//	if err != nil { ... }
//	vals, err := ilt.Invert(laplace.Sine, []float64{0.5, 1.0, 2.0}, 50, cat)
//
// Everything is deterministic and purely functional: no hidden state, no
// goroutines, O(len(T)·(n+1)) complex evaluations per call.
package iltcme
