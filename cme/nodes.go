package cme

// Nodes — quadrature node/weight construction
//
// Description:
//
//	Expands a CME record into the complex weight vector eta and node
//	vector beta used by the Bromwich quadrature
//
//	    f(t) ≈ Re(Σ_k eta[k] · F(beta[k]/t)) / t.
//
//	Both vectors have length p.N+1: index 0 carries the non-oscillatory
//	term, indices 1..N the oscillatory ones.
//
// Pure function of the record: no side effects, deterministic, p is only
// read. The caller must pass a validated record (see Param.Validate);
// Select already guarantees this for its result.
func Nodes(p *Param) (eta, beta []complex128) {
	eta = make([]complex128, p.N+1)
	beta = make([]complex128, p.N+1)

	eta[0] = complex(p.C*p.Mu1, 0)
	beta[0] = complex(p.Mu1, 0)
	for k := 1; k <= p.N; k++ {
		eta[k] = complex(p.A[k-1]*p.Mu1, p.B[k-1]*p.Mu1)
		beta[k] = complex(p.Mu1, p.Mu1*float64(k)*p.Omega)
	}
	return eta, beta
}
