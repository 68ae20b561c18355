// Copyright 2024 The bscn-pde Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the space–time grid, the Crank–Nicolson
// coefficients, the backward time-stepper, and the piecewise-linear
// interpolator that together solve the Black–Scholes PDE. The package
// name follows gofem's own `fem` package, generalized from
// continuum-mechanics elements to a single scalar 1D
// diffusion-advection-reaction equation.
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/quantlab/bscn-pde/inp"
	"github.com/quantlab/bscn-pde/mdl"
)

// Grid holds the spatial discretization and the terminal payoff.
type Grid struct {
	SMax   float64   // upper bound of the truncated spatial domain
	Ds     float64   // spatial step
	Dtau   float64   // time step
	Nodes  []float64 // s_i = i*Ds, i = 0..NS
	Payoff []float64 // V(s_i, τ=0)
}

// NewGrid builds the space–time grid and the terminal payoff for the
// given request, resolved config, and option model.
func NewGrid(req inp.PricingRequest, model mdl.Payoff) (*Grid, error) {
	cfg := req.Config
	if err := cfg.Validate(); err != nil {
		return nil, chk.Err("cannot build grid: %v", err)
	}
	if cfg.NS < 3 {
		return nil, chk.Err("grid_size must be >= 3; got %d", cfg.NS)
	}

	seed := utl.Max(req.Spot, req.Strike)
	seed = utl.Max(seed, 1.0)
	sMax := cfg.SMaxMultiplier * seed
	ds := sMax / float64(cfg.NS)
	dtau := req.Expiry / float64(cfg.NT)

	if ds <= 0 {
		return nil, chk.Err("Δs must be positive; got %v", ds)
	}
	if dtau <= 0 {
		return nil, chk.Err("Δτ must be positive; got %v", dtau)
	}

	nodes := utl.LinSpace(0, sMax, cfg.NS+1)
	payoff := make([]float64, cfg.NS+1)
	for i, s := range nodes {
		payoff[i] = model.Terminal(s, req.Strike)
	}

	return &Grid{
		SMax:   sMax,
		Ds:     ds,
		Dtau:   dtau,
		Nodes:  nodes,
		Payoff: payoff,
	}, nil
}
