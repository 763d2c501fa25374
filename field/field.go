// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package field implements the tectal depolarization field and its relaxation
to a converged steady state, given the summed synaptic drive from the
currently active retinal units.

The field H evolves under

	dH/dt = H0 + conv(threshold(H, Theta)) + Alpha * H

where H0 is the (fixed) retinal drive, conv applies the lateral interaction
kernel (see package lateral) with zero-fill boundaries, and Alpha is the
(negative) membrane decay constant.  Integration is simple Euler with step
Dt, and the loop terminates when the grid mean stabilizes to within a
relative tolerance, following the original model's criterion.
*/
package field

import (
	"errors"
	"fmt"
	"math"

	"github.com/emer/etable/v2/etensor"
	"github.com/emer/retinotopy/lateral"
)

// ErrNotConverged is returned by Relax when the field fails to satisfy the
// convergence criterion within MaxIters relaxation steps.  The original
// model iterates without bound; the cap converts that liveness risk into an
// explicit error.
var ErrNotConverged = errors.New("field: relaxation did not converge")

// ErrDiverged is returned by Relax when the field mean becomes NaN or Inf.
var ErrDiverged = errors.New("field: relaxation diverged")

// Params are the tectal field dynamics parameters.
type Params struct {

	// Euler integration time step
	Dt float64 `default:"1" min:"0"`

	// membrane decay constant -- typically negative
	Alpha float64 `default:"-0.5"`

	// firing threshold: field values must exceed this to contribute
	// post-threshold activity.  Callers scale this in proportion to the
	// number of active afferents -- see pattern.Gen.ThresholdScale.
	Theta float64 `default:"10" min:"0"`

	// relative tolerance on the change in grid mean for convergence
	Tol float64 `default:"0.005" min:"0"`

	// hard cap on relaxation steps, after which Relax returns ErrNotConverged
	MaxIters int `default:"10000" min:"1"`

	// lateral interaction kernel parameters
	Lateral lateral.Params `view:"inline"`
}

func (fp *Params) Defaults() {
	fp.Dt = 1
	fp.Alpha = -0.5
	fp.Theta = 10
	fp.Tol = 0.005
	fp.MaxIters = 10000
	fp.Lateral.Defaults()
}

func (fp *Params) Update() {
	fp.Lateral.Update()
}

// Threshold applies the firing threshold elementwise into dst:
// dst = max(0, src - theta).  dst is reshaped to match src.
func Threshold(dst, src *etensor.Float64, theta float64) {
	dst.SetShape(src.Shp, nil, src.Nms)
	for i, v := range src.Values {
		if v > theta {
			dst.Values[i] = v - theta
		} else {
			dst.Values[i] = 0
		}
	}
}

// Mean returns the mean over all values of the grid, including any
// boundary cells -- this matches the original model's convergence
// statistic, which does not exclude the zero-filled border.
func Mean(g *etensor.Float64) float64 {
	n := len(g.Values)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range g.Values {
		sum += v
	}
	return sum / float64(n)
}

// Relax integrates the field from initial drive h0 until the grid mean
// converges, returning the converged field, the number of relaxation steps
// taken, and an error if the field diverged or failed to converge within
// MaxIters.  h0 is not modified.
func (fp *Params) Relax(h0 *etensor.Float64) (*etensor.Float64, int, error) {
	ny := h0.Dim(0)
	nx := h0.Dim(1)
	h := etensor.NewFloat64([]int{ny, nx}, nil, []string{"Y", "X"})
	copy(h.Values, h0.Values)
	hstar := etensor.NewFloat64([]int{ny, nx}, nil, []string{"Y", "X"})
	conv := etensor.NewFloat64([]int{ny, nx}, nil, []string{"Y", "X"})

	for itr := 1; itr <= fp.MaxIters; itr++ {
		m := Mean(h)
		Threshold(hstar, h, fp.Theta)
		fp.Lateral.Convolve(conv, hstar)
		for i := range h.Values {
			dh := h0.Values[i] + conv.Values[i] + fp.Alpha*h.Values[i]
			h.Values[i] += dh * fp.Dt
		}
		mNew := Mean(h)
		if math.IsNaN(mNew) || math.IsInf(mNew, 0) {
			return h, itr, fmt.Errorf("%w after %d steps", ErrDiverged, itr)
		}
		if math.Abs(mNew-m) < fp.Tol*m {
			return h, itr, nil
		}
	}
	return h, fp.MaxIters, fmt.Errorf("%w within %d steps (mean %g)", ErrNotConverged, fp.MaxIters, Mean(h))
}
