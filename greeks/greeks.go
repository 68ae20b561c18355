// Copyright 2024 The bscn-pde Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package greeks implements the sensitivity estimator: Delta/Gamma by
// finite differences on the solved grid, Theta from the stepper's
// first-step snapshot, and Vega/Rho by central bump-and-reprice through
// a failure-capturing adapter so a non-finite or erroring bumped solve
// never escapes into the caller — it just leaves that Greek unreported.
package greeks

import (
	"math"
	"sort"

	"github.com/quantlab/bscn-pde/fem"
	"github.com/quantlab/bscn-pde/inp"
)

// Set is the sensitivity record. Each field is nil when that Greek could
// not be computed; absence is never encoded as NaN.
type Set struct {
	Delta *float64
	Gamma *float64
	Theta *float64
	Vega  *float64
	Rho   *float64
}

func ptr(v float64) *float64 { return &v }

// Estimate computes the full Greeks record for a base solve already
// produced by fem.Solve, plus the four bumped solves (σ±hσ, r±hr) it
// drives itself.
func Estimate(req inp.PricingRequest, g *fem.Grid, base fem.Result, fairValue, sigma, r float64) Set {
	var s Set

	if delta, gamma, ok := centralDifference(g, base.Today, req.Spot); ok {
		s.Delta = ptr(delta)
		s.Gamma = ptr(gamma)
	}

	if req.Expiry > 1e-6 {
		vFirst := fem.Interpolate(g, base.FirstStep, req.Spot)
		theta := -(vFirst - fairValue) / g.Dtau
		s.Theta = ptr(theta)
	}

	hSigma := math.Max(1e-4, 0.01*sigma)
	if pUp, okUp := repriceAt(req, sigma+hSigma, r); okUp {
		if pDown, okDown := repriceAt(req, sigma-hSigma, r); okDown {
			vega := (pUp - pDown) / (2 * hSigma)
			s.Vega = ptr(vega)
		}
	}

	const hR = 1e-4
	if pUp, okUp := repriceAt(req, sigma, r+hR); okUp {
		if pDown, okDown := repriceAt(req, sigma, r-hR); okDown {
			rho := (pUp - pDown) / (2 * hR)
			s.Rho = ptr(rho)
		}
	}

	return s
}

// centralDifference computes Delta (order 1) and Gamma (order 2) at the
// first node at or above the spot, clamped to the interior index range
// 1..NS-1. Defensively reports absence when the
// solution has fewer than 3 nodes, which SolverConfig's [50,2000] bound
// makes unreachable in practice.
func centralDifference(g *fem.Grid, v fem.SolutionSnapshot, spot float64) (delta, gamma float64, ok bool) {
	n := len(v)
	if n < 3 {
		return 0, 0, false
	}
	idx := sort.SearchFloat64s(g.Nodes, spot)
	if idx < 1 {
		idx = 1
	}
	if idx > n-2 {
		idx = n - 2
	}
	ds := g.Ds
	delta = (v[idx+1] - v[idx-1]) / (2 * ds)
	gamma = (v[idx+1] - 2*v[idx] + v[idx-1]) / (ds * ds)
	return delta, gamma, true
}

// repriceAt runs a full solve at a bumped (sigma, r) pair on the same
// grid configuration and interpolates the result at the spot. It
// recovers from any panic so a degenerate bumped solve can never take
// down the base pricing; it also screens out non-finite outputs, which
// the Thomas solver's pivot guard makes unlikely but not impossible.
func repriceAt(req inp.PricingRequest, sigma, r float64) (price float64, ok bool) {
	sigma = math.Max(sigma, 1e-4)
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	g, res, err := fem.Solve(req, sigma, r)
	if err != nil {
		return 0, false
	}
	price = fem.Interpolate(g, res.Today, req.Spot)
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, false
	}
	return price, true
}
