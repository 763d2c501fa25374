// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package polarity seeds the initial synaptic weight matrix with polarity
markers, the localized weight biases that nucleate the orientation of the
retinotopic map.  Without markers the map self-organizes but its
orientation is arbitrary; with them, corresponding corners of the retinal
and tectal sheets are pre-linked so the map forms in a consistent
orientation across runs.
*/
package polarity

import (
	"fmt"
	"math"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/etensor"
)

// Params configure polarity marker seeding.
type Params struct {

	// seeding mode
	Type MarkerTypes

	// for SquareMarkers, use the fixed default block location instead of
	// a random one, making the seed deterministic
	DefaultBlock bool `default:"true"`

	// multiplier applied to marked synapses (SquareMarkers), and the
	// peak multiplier of the graded ramp
	Strength float64 `default:"5" min:"0"`
}

func (pp *Params) Defaults() {
	pp.Type = SquareMarkers
	pp.DefaultBlock = true
	pp.Strength = 5
}

// Seed applies the configured polarity markers to weight matrix s of
// shape [XT*YT, XR*YR].  rnd is only used for the random block location
// of SquareMarkers when DefaultBlock is off.
func (pp *Params) Seed(s *etensor.Float64, xt, yt, xr, yr int, rnd erand.Rand) error {
	switch pp.Type {
	case NoMarkers:
		return nil
	case SquareMarkers:
		pp.squareMarkers(s, xt, yt, xr, yr, rnd)
		return nil
	case GradedMarkers:
		pp.gradedMarkers(s, xt, yt, xr, yr)
		return nil
	}
	return fmt.Errorf("polarity: invalid marker type: %d", pp.Type)
}

// squareMarkers strengthens the four matched synapses between a 2x2
// retinal block and a 2x2 tectal block by Strength.
func (pp *Params) squareMarkers(s *etensor.Float64, xt, yt, xr, yr int, rnd erand.Rand) {
	rpm := pp.blockIndexes(xr, yr, rnd)
	tpm := pp.blockIndexes(xt, yt, rnd)
	for i := 0; i < 4; i++ {
		v := s.Value([]int{tpm[i], rpm[i]})
		s.Set([]int{tpm[i], rpm[i]}, v*pp.Strength)
	}
}

// blockIndexes returns the four flat unit indices of a 2x2 marker block
// on an nx x ny sheet.  The default block sits at the middle of the top
// two rows, with members at +1 x and +1 y from the origin.  A random
// block draws its origin uniformly from [0, dim-2] on each axis, and the
// second row of the block lies at -1 y from the origin, wrapping to the
// bottom row when the origin is at y 0 -- this reproduces the original
// model's offset scheme, which differs from the default-block layout.
func (pp *Params) blockIndexes(nx, ny int, rnd erand.Rand) [4]int {
	if pp.DefaultBlock {
		x1 := nx / 2
		return [4]int{x1, x1 + 1, nx + x1, nx + x1 + 1}
	}
	y1 := rnd.Intn(ny-1, -1)
	x1 := rnd.Intn(nx-1, -1)
	y3 := y1 - 1
	if y3 < 0 {
		y3 += ny
	}
	return [4]int{y1*nx + x1, y1*nx + x1 + 1, y3*nx + x1, y3*nx + x1 + 1}
}

// gradedMarkers multiplies every synapse whose retinal and tectal units
// lie close together in normalized sheet coordinates, ramping linearly
// from Strength at zero distance down to 1 at half the maximum distance.
// This is a dense O(T*R) pass over the whole matrix.
func (pp *Params) gradedMarkers(s *etensor.Float64, xt, yt, xr, yr int) {
	nr := xr * yr
	nt := xt * yt
	ramp := 2 * (pp.Strength - 1) // multiplier = Strength - ramp*d, reaching 1 at d = 0.5
	for t := 0; t < nt; t++ {
		ty := float64(t/xt) / float64(yt)
		tx := float64(t%xt) / float64(xt)
		for r := 0; r < nr; r++ {
			ry := float64(r/xr) / float64(yr)
			rx := float64(r%xr) / float64(xr)
			dy := ry - ty
			dx := rx - tx
			d := math.Sqrt(dy*dy+dx*dx) / math.Sqrt2
			if d < 0.5 {
				s.Values[t*nr+r] *= pp.Strength - ramp*d
			}
		}
	}
}
