// Package cme models Concentrated Matrix-Exponential (CME) parameter
// records and turns them into quadrature nodes and weights for inverse
// Laplace transformation.
//
// A CME distribution of order n is described by a record
// (cv2, n, mu1, omega, c, a, b): cv2 is its squared coefficient of
// variation (lower ⇒ more concentrated ⇒ sharper quadrature), n the number
// of oscillatory terms, mu1 the mean-normalizing scale, omega the angular
// step between nodes, and c plus the a/b sequences the real and imaginary
// weight components. A Catalog is an ordered, read-only collection of such
// records.
//
// Two operations live here:
//
//   - Select picks the steepest record (minimum cv2) whose evaluation
//     count n+1 fits a caller-supplied budget.
//   - Nodes expands a record into the complex weight vector eta and node
//     vector beta, both of length n+1:
//
//     eta[0]  = c·mu1            beta[0] = mu1
//     eta[k]  = (a[k-1] + i·b[k-1])·mu1
//     beta[k] = (1 + i·k·omega)·mu1        for k = 1..n
//
// Both are pure and deterministic; the catalog is never mutated.
package cme
