// Copyright 2024 The bscn-pde Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "sort"

// Interpolate evaluates a discrete solution at an arbitrary spot by
// piecewise-linear interpolation. Spots at or below the first grid node
// clamp to v[0]; spots at or above the last node clamp to v[NS].
func Interpolate(g *Grid, v SolutionSnapshot, spot float64) float64 {
	n := len(g.Nodes)
	if spot <= g.Nodes[0] {
		return v[0]
	}
	if spot >= g.Nodes[n-1] {
		return v[n-1]
	}

	// index of the first node >= spot
	i := sort.SearchFloat64s(g.Nodes, spot)
	if i == 0 {
		return v[0]
	}
	if g.Nodes[i] == spot {
		return v[i]
	}

	lo, hi := i-1, i
	w := (spot - g.Nodes[lo]) / (g.Nodes[hi] - g.Nodes[lo])
	return v[lo] + w*(v[hi]-v[lo])
}
