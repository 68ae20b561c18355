// Copyright 2024 The bscn-pde Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package viz renders diagnostic plots of a solved Crank–Nicolson grid,
// the way gofem's `out` package wraps gosl/plt for post-processing
// finite-element results. It is enrichment beyond spec.md: nothing in the
// pricing core calls it, and it performs no I/O unless explicitly asked
// to Save a figure.
package viz

import (
	"github.com/cpmech/gosl/plt"

	"github.com/quantlab/bscn-pde/fem"
)

// PlotSolution draws the payoff and the today-solution curves against
// the spatial grid, mirroring the style of gofem's out/t_plot_test.go:
// one plt.Plot call per curve, a single plt.Gll for axis labels.
func PlotSolution(g *fem.Grid, today fem.SolutionSnapshot, title string) {
	plt.Plot(g.Nodes, g.Payoff, &plt.A{C: "k", Ls: "--", L: "payoff"})
	plt.Plot(g.Nodes, today, &plt.A{C: "b", Ls: "-", L: "today"})
	plt.Gll("$S$", "$V$", nil)
	plt.Title(title, nil)
}

// SaveSolution renders PlotSolution and writes the figure to dirout/fname.
func SaveSolution(g *fem.Grid, today fem.SolutionSnapshot, title, dirout, fname string) {
	plt.Clf()
	PlotSolution(g, today, title)
	plt.Save(dirout, fname)
}
