// Copyright 2024 The bscn-pde Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/quantlab/bscn-pde/mdl"
	"github.com/quantlab/bscn-pde/num"
)

// SolutionSnapshot is the discrete solution vector aligned with a Grid's
// Nodes: len(SolutionSnapshot) == len(Grid.Nodes).
type SolutionSnapshot []float64

// Stepper marches the Crank–Nicolson solution backward in time, from the
// terminal payoff (τ=0) to today (τ=T). It owns its two snapshot buffers
// for the duration of one solve and rotates between them every step
// rather than allocating — the same buffer-rotation discipline gofem's
// time-marching solvers apply to their state vectors.
type Stepper struct {
	Grid   *Grid
	Coef   *Coefficients
	Model  mdl.Boundary
	Strike float64
	R, Q   float64
}

// NewStepper builds a Stepper for one solve.
func NewStepper(g *Grid, c *Coefficients, model mdl.Boundary, strike, r, q float64) *Stepper {
	return &Stepper{Grid: g, Coef: c, Model: model, Strike: strike, R: r, Q: q}
}

// Result bundles what the orchestrator and the sensitivity estimator need
// out of one Crank–Nicolson solve.
type Result struct {
	Today        SolutionSnapshot // solution at τ=T (today)
	FirstStep    SolutionSnapshot // solution after the first backward step, τ=Δτ (used for Theta)
	ResidualNorm float64          // monotone-nondecreasing ℓ∞ accumulator
}

// Run executes NT backward time steps and returns today's solution, the
// first-step snapshot, and the accumulated residual norm.
func (o *Stepper) Run(nt int) Result {
	n := len(o.Grid.Nodes) - 1 // NS
	interior := n - 1

	v := make(SolutionSnapshot, n+1)
	la.VecCopy(v, 1, o.Grid.Payoff)
	vNext := make(SolutionSnapshot, n+1)

	rhs := make([]float64, interior)
	lhs := make([]float64, interior)

	var firstStep SolutionSnapshot
	var residualNorm float64

	A, B, C := o.Coef.A, o.Coef.B, o.Coef.C
	D, E, F := o.Coef.D, o.Coef.E, o.Coef.F

	for step := 0; step < nt; step++ {
		tau := float64(step) * o.Grid.Dtau
		tauNext := tau + o.Grid.Dtau

		// pin boundaries of v at τ
		v[0] = o.Model.Lower(o.Strike, o.R, o.Q, tau)
		v[n] = o.Model.Upper(o.Grid.SMax, o.Strike, o.R, o.Q, tau)

		// explicit right-hand side over the interior
		for k := 0; k < interior; k++ {
			i := k + 1
			rhs[k] = D[k]*v[i-1] + E[k]*v[i] + F[k]*v[i+1]
		}

		// boundary values at τ' fold into the implicit contribution
		lowerNext := o.Model.Lower(o.Strike, o.R, o.Q, tauNext)
		upperNext := o.Model.Upper(o.Grid.SMax, o.Strike, o.R, o.Q, tauNext)
		rhs[0] -= A[0] * lowerNext
		rhs[interior-1] -= C[interior-1] * upperNext

		// solve the implicit tridiagonal system for the interior
		xInterior := num.Thomas(A, B, C, rhs)

		la.VecFill(vNext, 0)
		vNext[0] = lowerNext
		vNext[n] = upperNext
		for k := 0; k < interior; k++ {
			vNext[k+1] = xInterior[k]
		}

		// post-hoc residual check against the boundary-adjusted rhs —
		// this measures the interior linear-system residual only; the
		// boundaries are never re-added into the comparison.
		for k := 0; k < interior; k++ {
			i := k + 1
			lhs[k] = A[k]*vNext[i-1] + B[k]*vNext[i] + C[k]*vNext[i+1]
		}
		residualNorm = math.Max(residualNorm, linfDiff(lhs, rhs))

		if step == 0 {
			firstStep = make(SolutionSnapshot, n+1)
			la.VecCopy(firstStep, 1, vNext)
		}

		v, vNext = vNext, v
	}

	if firstStep == nil {
		// NT == 0 is excluded by SolverConfig.Validate, but stay defensive.
		firstStep = make(SolutionSnapshot, n+1)
		la.VecCopy(firstStep, 1, v)
	}

	return Result{Today: v, FirstStep: firstStep, ResidualNorm: residualNorm}
}

func linfDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > m {
			m = d
		}
	}
	return m
}
