// Copyright 2024 The bscn-pde Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pricer implements the pricing orchestrator: it resolves
// configuration, runs the base Crank–Nicolson solve, drives the four
// bumped solves the sensitivity estimator needs, and assembles the final
// result together with diagnostics and human-readable warnings. Mirrors
// the way gofem's fem.FEM ties together Domain, DynCoefs, and Solver into
// one Run() call.
package pricer

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/quantlab/bscn-pde/fem"
	"github.com/quantlab/bscn-pde/greeks"
	"github.com/quantlab/bscn-pde/inp"
)

// Diagnostics reports numerical-quality indicators for one solve.
type Diagnostics struct {
	GridPoints     int      // N_S
	TimeSteps      int      // N_T
	ResidualNorm   float64  // ℓ∞ over all steps of A·x − b
	RuntimeMs      *float64 // never populated by the core; a caller may stamp it after timing Price itself
	BoundarySpread float64  // |V(0)| + |V(s_max)| at today
	SMax           float64
}

// PricingResult is the core's output.
type PricingResult struct {
	Symbol      string
	OptionType  inp.OptionKind
	FairValue   float64
	Price       float64
	Quantity    int
	Greeks      greeks.Set
	Diagnostics Diagnostics
	Warnings    []string
}

// Price resolves req's configuration, solves the PDE, and assembles the
// full pricing result. It never returns an error for in-range inputs
// except when the base fair value itself comes out non-finite — see the
// non-finite base price decision recorded in SPEC_FULL.md: a Go caller
// gets an explicit error rather than a silently degraded result.
func Price(req inp.PricingRequest) (PricingResult, error) {
	resolved := req.Resolved()
	if err := resolved.Config.Validate(); err != nil {
		return PricingResult{}, chk.Err("invalid solver configuration: %v", err)
	}

	g, base, err := fem.Solve(resolved, resolved.Volatility, resolved.RiskFreeRate)
	if err != nil {
		return PricingResult{}, chk.Err("base solve failed: %v", err)
	}

	fairValue := fem.Interpolate(g, base.Today, resolved.Spot)
	if math.IsNaN(fairValue) || math.IsInf(fairValue, 0) {
		return PricingResult{}, chk.Err("non-finite fair value computed for %q (%v)", resolved.Symbol, fairValue)
	}

	sens := greeks.Estimate(resolved, g, base, fairValue, resolved.Volatility, resolved.RiskFreeRate)

	boundarySpread := math.Abs(base.Today[0]) + math.Abs(base.Today[len(base.Today)-1])

	diag := Diagnostics{
		GridPoints:     resolved.Config.NS,
		TimeSteps:      resolved.Config.NT,
		ResidualNorm:   base.ResidualNorm,
		BoundarySpread: boundarySpread,
		SMax:           g.SMax,
	}

	warnings := buildWarnings(diag, fairValue)

	return PricingResult{
		Symbol:      strings.ToUpper(resolved.Symbol),
		OptionType:  resolved.OptionType,
		FairValue:   fairValue,
		Price:       fairValue * float64(resolved.Quantity),
		Quantity:    resolved.Quantity,
		Greeks:      sens,
		Diagnostics: diag,
		Warnings:    warnings,
	}, nil
}

func buildWarnings(diag Diagnostics, fairValue float64) []string {
	var warnings []string
	if diag.ResidualNorm > 1e-3 {
		warnings = append(warnings, io.Sf(
			"High residual norm detected (%.2e); consider increasing grid resolution.", diag.ResidualNorm))
	}
	if diag.BoundarySpread > math.Max(1.0, 0.05*fairValue) {
		warnings = append(warnings,
			"Boundary spread is large; increase s_max_multiplier or check inputs.")
	}
	return warnings
}
