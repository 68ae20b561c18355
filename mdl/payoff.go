// Copyright 2024 The bscn-pde Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements the terminal payoff and the far-field boundary
// behaviour of European options, keyed by option kind the way gofem's
// mdl/solid and mdl/retention packages key material models by name: an
// allocator map plus a New(kind) constructor.
package mdl

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/quantlab/bscn-pde/inp"
)

// Payoff computes the terminal condition V(s, τ=0) for a single node.
type Payoff interface {
	Terminal(s, strike float64) float64
}

// Boundary yields the two far-field boundary values of the option at
// backward time τ, given the truncated domain's upper bound s_max.
type Boundary interface {
	Lower(strike, r, q, tau float64) float64
	Upper(sMax, strike, r, q, tau float64) float64
}

// Model bundles Payoff and Boundary for one option kind.
type Model interface {
	Payoff
	Boundary
}

type callModel struct{}

func (callModel) Terminal(s, strike float64) float64 {
	return math.Max(s-strike, 0.0)
}

func (callModel) Lower(strike, r, q, tau float64) float64 {
	return 0.0
}

func (callModel) Upper(sMax, strike, r, q, tau float64) float64 {
	return sMax*math.Exp(-q*tau) - strike*math.Exp(-r*tau)
}

type putModel struct{}

func (putModel) Terminal(s, strike float64) float64 {
	return math.Max(strike-s, 0.0)
}

func (putModel) Lower(strike, r, q, tau float64) float64 {
	return strike * math.Exp(-r*tau)
}

func (putModel) Upper(sMax, strike, r, q, tau float64) float64 {
	return 0.0
}

// allocators holds all available option models; kind => allocator.
var allocators = map[inp.OptionKind]func() Model{
	inp.Call: func() Model { return callModel{} },
	inp.Put:  func() Model { return putModel{} },
}

// New returns the payoff/boundary model for the given option kind.
func New(kind inp.OptionKind) (Model, error) {
	allocator, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("option kind %v is not available in 'mdl' database", kind)
	}
	return allocator(), nil
}
