// Copyright 2024 The bscn-pde Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp holds the data read at the boundary of the pricing core:
// the pricing request and the solver configuration, plus the single
// point where optional overrides resolve to concrete defaults.
package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// OptionKind enumerates the European option payoffs this solver supports.
type OptionKind int

const (
	// Call is a European call option.
	Call OptionKind = iota
	// Put is a European put option.
	Put
)

// String returns the lower-case canonical name of the option kind.
func (k OptionKind) String() string {
	switch k {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return "unknown"
	}
}

// ParseOptionKind canonicalises a boundary-supplied option type string,
// case-insensitively, to an OptionKind. The boundary (HTTP handler, CLI,
// etc.) is expected to call this before the request ever reaches the core.
func ParseOptionKind(s string) (OptionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	}
	return 0, chk.Err("option_type %q is not 'call' or 'put'", s)
}

// SolverConfig holds the Crank–Nicolson grid resolution. Zero-valued
// fields are optional overrides; SetDefault fills in the production
// defaults for any field left unset by the caller.
type SolverConfig struct {
	NS             int     `json:"grid_size"`        // number of spatial intervals
	NT             int     `json:"time_steps"`       // number of time steps
	SMaxMultiplier float64 `json:"s_max_multiplier"` // s_max = SMaxMultiplier * max(S0, K, 1)
}

// SetDefault fills any zero-valued field with the production default.
// Mirrors the gofem convention of a dedicated SetDefault method invoked
// once per resolution rather than scattering defaults across call sites.
func (o *SolverConfig) SetDefault() {
	if o.NS == 0 {
		o.NS = 400
	}
	if o.NT == 0 {
		o.NT = 800
	}
	if o.SMaxMultiplier == 0 {
		o.SMaxMultiplier = 6.0
	}
}

// Validate checks the resolved configuration against the bounds in the
// specification. Called defensively by the orchestrator even though the
// boundary collaborator is expected to have already enforced these limits
// on any caller-supplied override.
func (o SolverConfig) Validate() error {
	if o.NS < 50 || o.NS > 2000 {
		return chk.Err("grid_size must be within [50, 2000]; got %d", o.NS)
	}
	if o.NT < 50 || o.NT > 4000 {
		return chk.Err("time_steps must be within [50, 4000]; got %d", o.NT)
	}
	if o.SMaxMultiplier <= 2.0 || o.SMaxMultiplier > 20.0 {
		return chk.Err("s_max_multiplier must be within (2, 20]; got %v", o.SMaxMultiplier)
	}
	return nil
}

// PricingRequest is the validated input the core consumes. Symbolic-field
// validation, JSON decoding, and transport are the boundary collaborator's
// responsibility; by the time a PricingRequest reaches pricer.Price every
// field here is assumed in-range.
type PricingRequest struct {
	Symbol        string       `json:"symbol"`
	OptionType    OptionKind   `json:"option_type"`
	Spot          float64      `json:"spot"`
	Strike        float64      `json:"strike"`
	Expiry        float64      `json:"expiry"`
	Volatility    float64      `json:"volatility"`
	RiskFreeRate  float64      `json:"risk_free_rate"`
	DividendYield float64      `json:"dividend_yield"`
	Quantity      int          `json:"quantity"`
	Config        SolverConfig `json:"-"` // overrides; defaults resolved centrally by the orchestrator
}

// Resolved returns a copy of req with Quantity and Config defaults filled
// in. This is the single centralized resolution step the spec calls for;
// pricer.Price calls it once at orchestrator entry.
func (req PricingRequest) Resolved() PricingRequest {
	out := req
	if out.Quantity == 0 {
		out.Quantity = 1
	}
	out.Config.SetDefault()
	return out
}
