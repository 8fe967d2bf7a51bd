// Package cme: CME parameter record and catalog types.
package cme

import "fmt"

// Param is a single CME parameter record. Field names and JSON tags follow
// the serialized coefficient table consumed by every implementation of the
// method, so a catalog blob decodes straight into []Param.
//
// Invariants (checked by Validate):
//   - N >= 0 and len(A) == len(B) == N
//   - Mu1 > 0
//
// A Param is immutable once loaded; the algorithms only read it.
type Param struct {
	// CV2 is the squared coefficient of variation. Lower is steeper, i.e.
	// a more concentrated distribution and a more accurate quadrature.
	CV2 float64 `json:"cv2"`

	// N is the number of oscillatory terms; evaluating the quadrature
	// built from this record costs N+1 function evaluations per point.
	N int `json:"n"`

	// Mu1 is the positive scale factor normalizing the distribution mean.
	Mu1 float64 `json:"mu1"`

	// Omega is the angular step between consecutive oscillatory nodes.
	Omega float64 `json:"omega"`

	// C is the weight of the non-oscillatory term.
	C float64 `json:"c"`

	// A and B hold the real and imaginary parts of the N oscillatory
	// weights, in node order.
	A []float64 `json:"a"`
	B []float64 `json:"b"`
}

// Validate reports ErrMalformedParam if the record's invariants are
// violated.
func (p *Param) Validate() error {
	if p.N < 0 {
		return fmt.Errorf("%w: n = %d", ErrMalformedParam, p.N)
	}
	if len(p.A) != p.N || len(p.B) != p.N {
		return fmt.Errorf("%w: n = %d but len(a) = %d, len(b) = %d",
			ErrMalformedParam, p.N, len(p.A), len(p.B))
	}
	if p.Mu1 <= 0 {
		return fmt.Errorf("%w: mu1 = %v", ErrMalformedParam, p.Mu1)
	}
	return nil
}

// Catalog is an ordered collection of CME parameter records. It is loaded
// once (see package cmedata for the standard table) and treated as
// read-only afterwards; concurrent readers need no locking.
type Catalog []Param

// Validate reports ErrEmptyCatalog for an empty catalog and
// ErrMalformedParam (wrapped with the record index) for the first record
// violating its invariants.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	for i := range c {
		if err := c[i].Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
