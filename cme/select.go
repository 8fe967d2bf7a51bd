package cme

// Select — steepest-in-budget catalog selection
//
// Description:
//
//	Scans the catalog and returns the record with the smallest cv2 among
//	those whose evaluation count n+1 does not exceed maxEvals. Ties in
//	cv2 are not replaced (strict < only), so the earliest record among
//	equal-cv2 eligible candidates wins.
//
// Compatibility default:
//
//	The first catalog entry is the running best from the start, without a
//	budget check. If no entry fits the budget the first entry is returned
//	even when its own n+1 exceeds maxEvals. This mirrors the reference
//	implementations of the method; callers needing a hard cap must ensure
//	the catalog's first record fits their budget.
//
// Complexity: O(len(c)) for the scan plus O(Σ n) for catalog validation.
//
// Errors:
//   - ErrEmptyCatalog    — c has no records.
//   - ErrBadBudget       — maxEvals < 1.
//   - ErrMalformedParam  — some record violates len(a) == len(b) == n.
func Select(c Catalog, maxEvals int) (*Param, error) {
	if maxEvals < 1 {
		return nil, ErrBadBudget
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	steepest := &c[0]
	for i := 1; i < len(c); i++ {
		p := &c[i]
		if p.CV2 < steepest.CV2 && p.N+1 <= maxEvals {
			steepest = p
		}
	}
	return steepest, nil
}
