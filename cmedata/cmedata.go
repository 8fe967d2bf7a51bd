// Package cmedata ships the standard CME coefficient catalog.
//
// The table is embedded in the binary and decoded at most once, on first
// use, behind a sync.OnceValues guard; after that it is read-only and safe
// for concurrent use. Records cover orders 1–100 densely and continue
// sparsely up to 300, with cv2 falling from ~2.0e-1 to ~2.1e-4.
//
// Callers with their own coefficient table can bypass the embedded one
// with Load and pass the result anywhere a cme.Catalog is expected.
package cmedata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/cemsbv/iltcme/cme"
)

//go:embed coefficients.json
var coefficients []byte

// standard decodes the embedded table exactly once.
var standard = sync.OnceValues(func() (cme.Catalog, error) {
	var cat cme.Catalog
	if err := json.Unmarshal(coefficients, &cat); err != nil {
		return nil, fmt.Errorf("cmedata: decode embedded catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("cmedata: embedded catalog: %w", err)
	}
	return cat, nil
})

// Standard returns the embedded coefficient catalog. The first call
// decodes and validates it; subsequent calls return the cached value. The
// returned catalog must be treated as read-only.
func Standard() (cme.Catalog, error) {
	return standard()
}

// Load decodes and validates a coefficient catalog from r. The serialized
// form is a JSON array of records with fields cv2, n, mu1, omega, c, a
// and b (see cme.Param).
func Load(r io.Reader) (cme.Catalog, error) {
	var cat cme.Catalog
	if err := json.NewDecoder(r).Decode(&cat); err != nil {
		return nil, fmt.Errorf("cmedata: decode catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}
