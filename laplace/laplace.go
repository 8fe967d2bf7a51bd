package laplace

import (
	"errors"
	"fmt"
	"math/cmplx"
	"sort"
)

// Func is a Laplace-domain function F of one complex argument.
type Func func(s complex128) complex128

// ErrUnknownTransform indicates a name outside the fixed catalog.
var ErrUnknownTransform = errors.New("laplace: unknown transform name")

// Names of the supported transforms, exported so callers need not retype
// the string keys.
const (
	Exponential  = "exponential"
	Sine         = "sine"
	Heavyside    = "heavyside"
	ExpHeavyside = "expheavyside"
	SquareWave   = "squarewave"
	Staircase    = "staircase"
)

// transforms is the closed catalog. Defined once, read-only.
var transforms = map[string]Func{
	Exponential: func(s complex128) complex128 {
		return 1 / (1 + s)
	},
	Sine: func(s complex128) complex128 {
		return 1 / (1 + s*s)
	},
	Heavyside: func(s complex128) complex128 {
		return cmplx.Exp(-s) / s
	},
	ExpHeavyside: func(s complex128) complex128 {
		return cmplx.Exp(-s) / (1 + s)
	},
	SquareWave: func(s complex128) complex128 {
		return 1 / s * (1 / (1 + cmplx.Exp(s)))
	},
	Staircase: func(s complex128) complex128 {
		return 1 / s * (1 / (cmplx.Exp(s) - 1))
	},
}

// Lookup resolves name to its transform, or ErrUnknownTransform (wrapped
// with the offending name) when the name is outside the catalog.
func Lookup(name string) (Func, error) {
	f, ok := transforms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
	return f, nil
}

// Names returns the supported transform names in lexical order.
func Names() []string {
	out := make([]string, 0, len(transforms))
	for name := range transforms {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
