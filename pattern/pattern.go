// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pattern generates the set of retinal units that fire together on
each simulation loop.  Eight activation patterns are supported (see
PatternTypes), ranging from fully correlated (whole-sheet strobe) through
locally correlated (adjacent pairs, 2x2 squares, column/row sweeps) to
uncorrelated single units, which exercise the model's dependence on
correlated afferent activity for map formation.

All stochastic selection goes through an injected erand.Rand source, so a
fixed seed reproduces the exact stimulus sequence.
*/
package pattern

import (
	"fmt"

	"github.com/emer/emergent/v2/env"
	"github.com/emer/emergent/v2/erand"
)

// Gen generates retinal activation patterns, one set of active unit
// indices per simulation loop.
type Gen struct {

	// which activation pattern to generate
	Type PatternTypes

	// x dimension of the retinal sheet
	XR int `min:"2"`

	// y dimension of the retinal sheet
	YR int `min:"2"`

	// random source for stochastic patterns -- inject a fixed-seed
	// source for reproducible stimulus sequences
	Rnd erand.Rand `view:"-"`

	// Trial counts patterns generated, one per simulation loop --
	// its Cur value is the loop index n used by the deterministic
	// Sweep and OcularDominance patterns
	Trial env.Ctr `view:"inline"`
}

// Config sets the sheet dimensions and random source.
func (gn *Gen) Config(xr, yr int, rnd erand.Rand) {
	gn.XR = xr
	gn.YR = yr
	gn.Rnd = rnd
}

func (gn *Gen) Init() {
	gn.Trial.Scale = env.Trial
	gn.Trial.Init()
	gn.Trial.Cur = -1 // first Step generates pattern for loop 0
}

// Step advances the trial counter and generates the active retinal set
// for the new loop.
func (gn *Gen) Step() ([]int, error) {
	gn.Trial.Incr()
	return gn.Active(gn.Trial.Cur)
}

// Active returns the set of active retinal unit indices for loop n,
// according to the configured pattern type.
func (gn *Gen) Active(n int) ([]int, error) {
	switch gn.Type {
	case Pairs:
		return gn.Pair(), nil
	case TwoPairs:
		return gn.TwoPair(), nil
	case Singles:
		return gn.Single(), nil
	case TwoSingles:
		return gn.TwoSingle(), nil
	case Squares:
		return gn.Square(), nil
	case Sweep:
		return gn.SweepAt(n), nil
	case Strobe:
		return gn.All(), nil
	case OcularDominance:
		return gn.HalfAt(n), nil
	}
	return nil, fmt.Errorf("pattern: invalid pattern type: %d", gn.Type)
}

// ThresholdScale returns the multiplier to apply to the firing threshold
// theta and the modification threshold epsilon, relative to the Pairs
// baseline, to compensate for the number of simultaneously active
// afferents.  This scaling is a caller contract: Gen does not apply it.
func (gn *Gen) ThresholdScale() float64 {
	switch gn.Type {
	case Singles:
		return 0.5
	case TwoPairs, Squares:
		return 2
	case Sweep:
		return float64(gn.XR)
	case Strobe:
		return float64(gn.XR*gn.YR) / 2
	case OcularDominance:
		return float64(gn.XR*gn.YR) / 4
	}
	return 1
}

// Index returns the flat retinal unit index for sheet coordinates (y, x).
func (gn *Gen) Index(y, x int) int {
	return y*gn.XR + x
}

// choose returns one of the given values uniformly at random.
func (gn *Gen) choose(opts ...int) int {
	return opts[gn.Rnd.Intn(len(opts), -1)]
}

// adjacent returns the coordinates of a randomly selected unit adjacent
// to (y, x), in bounds.  The y offset is drawn first, restricted to
// in-bounds rows, and the x coordinate moves only when the y offset came
// out zero, so the result is always a von Neumann neighbor.
func (gn *Gen) adjacent(y, x int) (int, int) {
	var ay int
	switch y {
	case 0:
		ay = gn.choose(y, y+1)
	case gn.YR - 1:
		ay = gn.choose(y, y-1)
	default:
		ay = gn.choose(y-1, y, y+1)
	}
	ax := x
	if ay == y {
		switch x {
		case 0:
			ax = x + 1
		case gn.XR - 1:
			ax = x - 1
		default:
			ax = gn.choose(x-1, x+1)
		}
	}
	return ay, ax
}

// Pair selects one uniform random unit and one adjacent unit.
func (gn *Gen) Pair() []int {
	y1 := gn.Rnd.Intn(gn.YR, -1)
	x1 := gn.Rnd.Intn(gn.XR, -1)
	y2, x2 := gn.adjacent(y1, x1)
	return []int{gn.Index(y1, x1), gn.Index(y2, x2)}
}

// TwoPair selects two adjacent pairs, with the second pair resampled
// until it is disjoint from the first.
func (gn *Gen) TwoPair() []int {
	y1 := gn.Rnd.Intn(gn.YR, -1)
	x1 := gn.Rnd.Intn(gn.XR, -1)
	rn1 := gn.Index(y1, x1)
	y2, x2 := gn.adjacent(y1, x1)
	rn2 := gn.Index(y2, x2)

	var y3, x3 int
	rn3 := rn1
	for rn3 == rn1 || rn3 == rn2 {
		y3 = gn.Rnd.Intn(gn.YR, -1)
		x3 = gn.Rnd.Intn(gn.XR, -1)
		rn3 = gn.Index(y3, x3)
	}
	rn4 := rn1
	for rn4 == rn1 || rn4 == rn2 {
		y4, x4 := gn.adjacent(y3, x3)
		rn4 = gn.Index(y4, x4)
	}
	return []int{rn1, rn2, rn3, rn4}
}

// Single selects one uniform random unit.
func (gn *Gen) Single() []int {
	y1 := gn.Rnd.Intn(gn.YR, -1)
	x1 := gn.Rnd.Intn(gn.XR, -1)
	return []int{gn.Index(y1, x1)}
}

// TwoSingle selects two distinct uniform random units.
func (gn *Gen) TwoSingle() []int {
	y1 := gn.Rnd.Intn(gn.YR, -1)
	x1 := gn.Rnd.Intn(gn.XR, -1)
	rn1 := gn.Index(y1, x1)
	rn2 := rn1
	for rn2 == rn1 {
		y2 := gn.Rnd.Intn(gn.YR, -1)
		x2 := gn.Rnd.Intn(gn.XR, -1)
		rn2 = gn.Index(y2, x2)
	}
	return []int{rn1, rn2}
}

// Square selects a 2x2 block: a random unit, its vertical and horizontal
// neighbors (clamped to the interior neighbor on edge rows/columns), and
// the unit diagonal from those two.
func (gn *Gen) Square() []int {
	y1 := gn.Rnd.Intn(gn.YR, -1)
	x1 := gn.Rnd.Intn(gn.XR, -1)
	var y2 int
	switch y1 {
	case 0:
		y2 = 1
	case gn.YR - 1:
		y2 = gn.YR - 2
	default:
		y2 = gn.choose(y1-1, y1+1)
	}
	var x3 int
	switch x1 {
	case 0:
		x3 = 1
	case gn.XR - 1:
		x3 = gn.XR - 2
	default:
		x3 = gn.choose(x1-1, x1+1)
	}
	return []int{gn.Index(y1, x1), gn.Index(y2, x1), gn.Index(y1, x3), gn.Index(y2, x3)}
}

// SweepAt returns the sweep pattern for loop n: columns 0..YR-1 are
// activated on successive loops, then rows, cycling with period XR+YR.
// Note the original model's row index arithmetic (sweep - XR) is kept
// as-is: it coincides with (sweep - YR) on the square sheets the model
// requires.
func (gn *Gen) SweepAt(n int) []int {
	sweep := n % (gn.XR + gn.YR)
	if sweep < gn.YR {
		act := make([]int, gn.YR)
		for y := 0; y < gn.YR; y++ {
			act[y] = gn.Index(y, sweep)
		}
		return act
	}
	row := sweep - gn.XR
	act := make([]int, gn.XR)
	for x := 0; x < gn.XR; x++ {
		act[x] = gn.Index(row, x)
	}
	return act
}

// All returns every retinal unit (the strobe pattern).
func (gn *Gen) All() []int {
	act := make([]int, gn.XR*gn.YR)
	for i := range act {
		act[i] = i
	}
	return act
}

// HalfAt returns the ocular dominance pattern for loop n: the left half
// of the sheet (x < XR/2) on even loops, the right half on odd loops.
func (gn *Gen) HalfAt(n int) []int {
	hx := gn.XR / 2
	x0 := 0
	if n%2 == 1 {
		x0 = hx
	}
	act := make([]int, 0, gn.YR*hx)
	for y := 0; y < gn.YR; y++ {
		for x := x0; x < x0+hx; x++ {
			act = append(act, gn.Index(y, x))
		}
	}
	return act
}
