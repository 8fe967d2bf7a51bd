// Package laplace defines the closed catalog of named Laplace-domain
// functions available for inversion.
//
// Each entry is a pure func(complex128) complex128 evaluating the forward
// transform F(s) at a complex argument. The catalog is fixed at compile
// time and never mutated; Lookup resolves a name to its function, Names
// lists the supported names.
//
// Supported transforms and their time-domain counterparts:
//
//	exponential   F(s) = 1/(1+s)              f(t) = e^{-t}
//	sine          F(s) = 1/(1+s²)             f(t) = sin(t)
//	heavyside     F(s) = e^{-s}/s             f(t) = H(t-1)
//	expheavyside  F(s) = e^{-s}/(1+s)         f(t) = e^{-(t-1)}·H(t-1)
//	squarewave    F(s) = 1/(s·(1+e^{s}))      unit square wave, period 2
//	staircase     F(s) = 1/(s·(e^{s}-1))      f(t) = ⌊t⌋
package laplace
