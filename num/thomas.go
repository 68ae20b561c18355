// Copyright 2024 The bscn-pde Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package num implements direct linear-system solvers for the structured
// matrices produced by finite-difference discretizations; currently just
// the tridiagonal (Thomas) algorithm used by the Crank–Nicolson stepper.
package num

// pivotFloor is the minimum admissible magnitude of a Thomas-algorithm
// pivot denominator. Smaller magnitudes are replaced by ±pivotFloor,
// preserving sign (zero treated as positive), trading a small controlled
// perturbation for unconditional robustness: the solver never panics or
// returns an error on a degenerate pivot.
const pivotFloor = 1e-12

// guardPivot clamps a near-zero denominator to ±pivotFloor.
func guardPivot(denom float64) float64 {
	if denom >= 0 && denom < pivotFloor {
		return pivotFloor
	}
	if denom < 0 && denom > -pivotFloor {
		return -pivotFloor
	}
	return denom
}

// Thomas solves T·x = b for a tridiagonal matrix T given as three
// vectors: lower[i] is the sub-diagonal entry on row i (lower[0] unused),
// diag[i] is the main diagonal, and upper[i] is the super-diagonal entry
// on row i (upper[n-1] unused). Returns x such that T·x = b.
//
// n = 0 returns an empty slice.
func Thomas(lower, diag, upper, b []float64) (x []float64) {
	n := len(diag)
	if n == 0 {
		return []float64{}
	}

	cPrime := make([]float64, n)
	dPrime := make([]float64, n)

	denom := guardPivot(diag[0])
	dPrime[0] = b[0] / denom
	if n > 1 {
		cPrime[0] = upper[0] / denom
	}

	for i := 1; i < n; i++ {
		denom = guardPivot(diag[i] - lower[i]*cPrime[i-1])
		if i < n-1 {
			cPrime[i] = upper[i] / denom
		}
		dPrime[i] = (b[i] - lower[i]*dPrime[i-1]) / denom
	}

	x = make([]float64, n)
	x[n-1] = dPrime[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dPrime[i] - cPrime[i]*x[i+1]
	}
	return x
}
