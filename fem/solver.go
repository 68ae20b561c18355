// Copyright 2024 The bscn-pde Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/quantlab/bscn-pde/inp"
	"github.com/quantlab/bscn-pde/mdl"
)

// Solve runs one full Crank–Nicolson backward solve for the given
// (already-resolved) request, volatility, and risk-free rate — the
// caller (package pricer) supplies sigma/r explicitly rather than
// reading them off req so that Vega/Rho bump-and-reprice can reuse this
// same entry point with a perturbed parameter and an unperturbed grid
// configuration.
func Solve(req inp.PricingRequest, sigma, r float64) (*Grid, Result, error) {
	model, err := mdl.New(req.OptionType)
	if err != nil {
		return nil, Result{}, chk.Err("cannot resolve option model: %v", err)
	}

	g, err := NewGrid(req, model)
	if err != nil {
		return nil, Result{}, chk.Err("cannot build grid: %v", err)
	}

	coef := NewCoefficients(g, sigma, r, req.DividendYield)
	stepper := NewStepper(g, coef, model, req.Strike, r, req.DividendYield)
	result := stepper.Run(req.Config.NT)

	return g, result, nil
}
