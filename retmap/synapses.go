// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"fmt"
	"math"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// MinRowMean is the smallest absolute tectal row mean that Normalize will
// rescale -- anything closer to zero has no defined scale factor and is
// reported as an error instead of propagating Inf/NaN into the weights.
const MinRowMean = 1.0e-12

// WtInitParams are initial weight random distribution parameters.
type WtInitParams struct {
	erand.RndParams
}

func (wp *WtInitParams) Defaults() {
	wp.Dist = erand.Gaussian
	wp.Mean = 2.5
	wp.Var = 0.14
}

// SynapseMatrix holds the strength of the synaptic connection from every
// retinal unit to every tectal unit, as a dense [XT*YT, XR*YR] matrix.
// Tectal and retinal flat indices are row-major over their sheets
// (index = y*xdim + x).
type SynapseMatrix struct {

	// x dimension of the tectal sheet
	XT int `min:"2"`

	// y dimension of the tectal sheet
	YT int `min:"2"`

	// x dimension of the retinal sheet
	XR int `min:"2"`

	// y dimension of the retinal sheet
	YR int `min:"2"`

	// initial weight distribution -- its Mean is also the per-row mean
	// restored by every Normalize call
	Init WtInitParams `view:"inline"`

	// the weights [tectal, retinal]
	Wts etensor.Float64 `view:"no-inline"`
}

func (sm *SynapseMatrix) Defaults() {
	sm.Init.Defaults()
}

// Config sets the sheet dimensions and allocates the weight matrix.
func (sm *SynapseMatrix) Config(xt, yt, xr, yr int) {
	sm.XT = xt
	sm.YT = yt
	sm.XR = xr
	sm.YR = yr
	sm.Wts.SetShape([]int{xt * yt, xr * yr}, nil, []string{"Tectal", "Retinal"})
}

// NTectal returns the number of tectal units.
func (sm *SynapseMatrix) NTectal() int { return sm.XT * sm.YT }

// NRetinal returns the number of retinal units.
func (sm *SynapseMatrix) NRetinal() int { return sm.XR * sm.YR }

// InitWeights samples every weight independently from the initial
// distribution, using the given random source.
func (sm *SynapseMatrix) InitWeights(rnd erand.Rand) {
	for i := range sm.Wts.Values {
		sm.Wts.Values[i] = sm.Init.Gen(-1, rnd)
	}
}

// RowMean returns the mean weight of all retinal connections onto tectal
// unit t.
func (sm *SynapseMatrix) RowMean(t int) float64 {
	nr := sm.NRetinal()
	row := sm.Wts.Values[t*nr : (t+1)*nr]
	sum := 0.0
	for _, v := range row {
		sum += v
	}
	return sum / float64(nr)
}

// Normalize rescales every tectal unit's incoming weights so that their
// mean equals the initial distribution mean, preventing any one unit's
// weights from growing without bound relative to the others.  Returns an
// error if any row mean is too close to zero to rescale.
func (sm *SynapseMatrix) Normalize() error {
	nr := sm.NRetinal()
	nt := sm.NTectal()
	for t := 0; t < nt; t++ {
		rm := sm.RowMean(t)
		if math.Abs(rm) < MinRowMean {
			return fmt.Errorf("retmap: cannot normalize: tectal unit %d has row mean %g", t, rm)
		}
		sc := sm.Init.Mean / rm
		row := sm.Wts.Values[t*nr : (t+1)*nr]
		for i := range row {
			row[i] *= sc
		}
	}
	return nil
}

// Drive computes the initial tectal depolarization H0 for the given set
// of active retinal units: each tectal unit's summed synaptic input,
// reshaped to a [YT, XT] grid.
func (sm *SynapseMatrix) Drive(active []int) *etensor.Float64 {
	h0 := etensor.NewFloat64([]int{sm.YT, sm.XT}, nil, []string{"Y", "X"})
	nr := sm.NRetinal()
	nt := sm.NTectal()
	for t := 0; t < nt; t++ {
		row := sm.Wts.Values[t*nr : (t+1)*nr]
		sum := 0.0
		for _, r := range active {
			sum += row[r]
		}
		h0.Values[t] = sum
	}
	return h0
}

// WtRange returns the range over all weights in the matrix.
func (sm *SynapseMatrix) WtRange() minmax.F64 {
	var rng minmax.F64
	rng.SetInfinity()
	for _, v := range sm.Wts.Values {
		rng.FitValInRange(v)
	}
	return rng
}

// SizeReport returns a summary of the matrix dimensions and memory use.
func (sm *SynapseMatrix) SizeReport() string {
	mem := uint64(len(sm.Wts.Values)) * 8
	return fmt.Sprintf("%d tectal x %d retinal units: %d synapses, %v",
		sm.NTectal(), sm.NRetinal(), len(sm.Wts.Values), (datasize.ByteSize)(mem).HumanReadable())
}
