// Copyright 2024 The bscn-pde Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// Coefficients holds the per-interior-node Crank–Nicolson coefficients.
// They are time- and solution-independent for a single solve, so they are
// built once and reused at every time step — mirrors gofem's DynCoefs,
// computed once per Δt and reused across the assembly of every element.
//
// Interior vectors are indexed 0..NS-2, corresponding to grid nodes
// 1..NS-1; node 0 and node NS are boundary nodes and never appear here.
type Coefficients struct {
	// implicit operator A (applied to the unknowns at τ+Δτ)
	A, B, C []float64
	// explicit operator D,E,F (applied to the knowns at τ)
	D, E, F []float64
}

// NewCoefficients builds the Crank–Nicolson coefficients for a grid and
// the PDE's financial parameters (volatility σ, risk-free rate r,
// dividend yield q).
func NewCoefficients(g *Grid, sigma, r, q float64) *Coefficients {
	n := len(g.Nodes) - 1 // NS
	interior := n - 1     // number of interior nodes, 1..NS-1

	c := &Coefficients{
		A: make([]float64, interior),
		B: make([]float64, interior),
		C: make([]float64, interior),
		D: make([]float64, interior),
		E: make([]float64, interior),
		F: make([]float64, interior),
	}

	sigma2 := sigma * sigma
	ds2 := g.Ds * g.Ds

	for k := 0; k < interior; k++ {
		i := k + 1 // grid index
		s := g.Nodes[i]

		diff := sigma2 * s * s / ds2
		drift := (r - q) * s / g.Ds

		alpha := 0.25 * g.Dtau * (diff - drift)
		beta := -0.5 * g.Dtau * (diff + r)
		gamma := 0.25 * g.Dtau * (diff + drift)

		c.A[k] = -alpha
		c.B[k] = 1 - beta
		c.C[k] = -gamma

		c.D[k] = alpha
		c.E[k] = 1 + beta
		c.F[k] = gamma
	}
	return c
}
