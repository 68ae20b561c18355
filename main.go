// Copyright 2024 The bscn-pde Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bscn-pde prices a single European option described by a JSON request
// file and prints the resulting fair value, Greeks, and diagnostics.
//
// This command is the boundary collaborator the specification calls out
// as external to the core: it owns JSON decoding, symbolic-field
// validation, and process lifecycle. The core (packages inp, mdl, num,
// fem, greeks, pricer) never touches any of that.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/quantlab/bscn-pde/inp"
	"github.com/quantlab/bscn-pde/pricer"
)

// requestFile is the JSON shape read off disk; OptionType stays a string
// here and is canonicalized to inp.OptionKind only after validation,
// exactly the boundary-vs-core split the specification draws.
type requestFile struct {
	Symbol         string  `json:"symbol"`
	OptionType     string  `json:"option_type"`
	Spot           float64 `json:"spot"`
	Strike         float64 `json:"strike"`
	Expiry         float64 `json:"expiry"`
	Volatility     float64 `json:"volatility"`
	RiskFreeRate   float64 `json:"risk_free_rate"`
	DividendYield  float64 `json:"dividend_yield"`
	Quantity       int     `json:"quantity"`
	GridSize       int     `json:"grid_size"`
	TimeSteps      int     `json:"time_steps"`
	SMaxMultiplier float64 `json:"s_max_multiplier"`
}

func (f requestFile) toRequest() (inp.PricingRequest, error) {
	if f.Symbol == "" {
		return inp.PricingRequest{}, chk.Err("symbol is required")
	}
	kind, err := inp.ParseOptionKind(f.OptionType)
	if err != nil {
		return inp.PricingRequest{}, err
	}
	if f.Spot <= 0 || f.Strike <= 0 || f.Expiry <= 0 || f.Volatility <= 0 {
		return inp.PricingRequest{}, chk.Err("spot, strike, expiry, and volatility must be strictly positive")
	}
	return inp.PricingRequest{
		Symbol:        f.Symbol,
		OptionType:    kind,
		Spot:          f.Spot,
		Strike:        f.Strike,
		Expiry:        f.Expiry,
		Volatility:    f.Volatility,
		RiskFreeRate:  f.RiskFreeRate,
		DividendYield: f.DividendYield,
		Quantity:      f.Quantity,
		Config: inp.SolverConfig{
			NS:             f.GridSize,
			NT:             f.TimeSteps,
			SMaxMultiplier: f.SMaxMultiplier,
		},
	}, nil
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide a pricing request JSON file. Ex.: bscn-pde request.json")
	}
	fnamepath := flag.Arg(0)

	io.PfWhite("\nbscn-pde -- Black-Scholes Crank-Nicolson option pricer\n\n")

	buf, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("cannot read request file: %v", err)
	}

	var rf requestFile
	if err := json.Unmarshal(buf, &rf); err != nil {
		chk.Panic("cannot parse request file: %v", err)
	}

	req, err := rf.toRequest()
	if err != nil {
		chk.Panic("invalid request: %v", err)
	}

	result, err := pricer.Price(req)
	if err != nil {
		chk.Panic("pricing failed: %v", err)
	}

	printResult(result)
}

func printResult(r pricer.PricingResult) {
	io.Pf("symbol:       %s\n", r.Symbol)
	io.Pf("option_type:  %s\n", r.OptionType)
	io.Pf("fair_value:   %v\n", r.FairValue)
	io.Pf("price:        %v (quantity=%d)\n", r.Price, r.Quantity)

	io.Pf("\ngreeks:\n")
	printGreek("delta", r.Greeks.Delta)
	printGreek("gamma", r.Greeks.Gamma)
	printGreek("theta", r.Greeks.Theta)
	printGreek("vega", r.Greeks.Vega)
	printGreek("rho", r.Greeks.Rho)

	io.Pf("\ndiagnostics:\n")
	io.Pf("  grid_points:     %d\n", r.Diagnostics.GridPoints)
	io.Pf("  time_steps:      %d\n", r.Diagnostics.TimeSteps)
	io.Pf("  residual_norm:   %v\n", r.Diagnostics.ResidualNorm)
	io.Pf("  boundary_spread: %v\n", r.Diagnostics.BoundarySpread)
	io.Pf("  s_max:           %v\n", r.Diagnostics.SMax)

	if len(r.Warnings) > 0 {
		io.Pf("\nwarnings:\n")
		for _, w := range r.Warnings {
			io.PfYel("  - %s\n", w)
		}
	}
	io.Pf("\n")
}

func printGreek(name string, v *float64) {
	if v == nil {
		io.Pf("  %-6s (unreported)\n", name+":")
		return
	}
	io.Pf("  %-6s %v\n", name+":", *v)
}
