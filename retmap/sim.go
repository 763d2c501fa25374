// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"fmt"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/empi/v2/mpi"
	"github.com/emer/retinotopy/field"
	"github.com/emer/retinotopy/pattern"
	"github.com/emer/retinotopy/polarity"
)

// MinLoops is the smallest nonzero loop count Run accepts: below this the
// decile progress reporting has no meaningful granularity.
const MinLoops = 10

// Sim drives the full map formation simulation: it seeds the synapse
// matrix, then on each loop generates a retinal activation pattern,
// relaxes the tectal field, applies Hebbian learning and renormalizes.
type Sim struct {

	// number of activation / relaxation / learning loops to run.
	// 0 means no learning (initial weights only); otherwise must be
	// at least MinLoops.
	NumLoops int `default:"1000"`

	// snapshot the weights every this many loops via SnapFunc --
	// 0 disables snapshots
	SnapInterval int `default:"0"`

	// random seed for weight initialization, polarity block placement
	// and stochastic patterns
	RndSeed int64 `default:"1"`

	// report decile progress during Run via mpi.Printf
	Verbose bool

	// the synapse matrix
	Syn SynapseMatrix

	// initial polarity marker seeding
	Polarity polarity.Params `view:"inline"`

	// retinal activation pattern generator
	Pat pattern.Gen

	// tectal field relaxation parameters
	Field field.Params `view:"inline"`

	// Hebbian learning parameters
	Learn LearnParams `view:"inline"`

	// total relaxation iterations taken across all loops so far
	RelaxIters int `inactive:"+"`

	// if non-nil, called by Run every SnapInterval loops with the
	// just-completed loop number
	SnapFunc func(loop int, sm *SynapseMatrix) error `view:"-" json:"-"`

	// random source, created from RndSeed in Init
	Rnd *erand.SysRand `view:"-"`
}

func (ss *Sim) Defaults() {
	ss.NumLoops = 1000
	ss.SnapInterval = 0
	ss.RndSeed = 1
	ss.Syn.Defaults()
	ss.Polarity.Defaults()
	ss.Field.Defaults()
	ss.Learn.Defaults()
}

// Config sets the sheet dimensions on the synapse matrix and pattern
// generator.  Both sheets must be square.
func (ss *Sim) Config(xt, yt, xr, yr int) {
	ss.Syn.Config(xt, yt, xr, yr)
	ss.Pat.Config(xr, yr, nil) // Rnd injected in Init
}

// ApplyThresholdScale scales the firing threshold theta and the
// modification threshold epsilon by the pattern generator's factor, which
// compensates for patterns that co-activate more or fewer afferents than
// the 2-unit baseline.  Call once after Config, before Init.
func (ss *Sim) ApplyThresholdScale() {
	sc := ss.Pat.ThresholdScale()
	ss.Field.Theta *= sc
	ss.Learn.Epsilon *= sc
}

// Validate checks the configuration for errors that would make the run
// meaningless, before any weights are allocated or modified.
func (ss *Sim) Validate() error {
	if ss.Syn.XT < 2 || ss.Syn.YT < 2 || ss.Syn.XR < 2 || ss.Syn.YR < 2 {
		return fmt.Errorf("retmap: sheet dimensions must be at least 2, got tectal %dx%d retinal %dx%d", ss.Syn.XT, ss.Syn.YT, ss.Syn.XR, ss.Syn.YR)
	}
	if ss.Syn.XT != ss.Syn.YT || ss.Syn.XR != ss.Syn.YR {
		return fmt.Errorf("retmap: sheets must be square, got tectal %dx%d retinal %dx%d", ss.Syn.XT, ss.Syn.YT, ss.Syn.XR, ss.Syn.YR)
	}
	if ss.NumLoops != 0 && ss.NumLoops < MinLoops {
		return fmt.Errorf("retmap: NumLoops must be 0 or at least %d, got %d", MinLoops, ss.NumLoops)
	}
	if ss.Pat.Type < 0 || ss.Pat.Type >= pattern.PatternTypesN {
		return fmt.Errorf("retmap: invalid pattern type: %d", ss.Pat.Type)
	}
	if ss.Polarity.Type < 0 || ss.Polarity.Type >= polarity.MarkerTypesN {
		return fmt.Errorf("retmap: invalid polarity marker type: %d", ss.Polarity.Type)
	}
	if ss.Field.Dt <= 0 {
		return fmt.Errorf("retmap: field Dt must be positive, got %g", ss.Field.Dt)
	}
	if ss.Field.Tol <= 0 {
		return fmt.Errorf("retmap: field Tol must be positive, got %g", ss.Field.Tol)
	}
	if ss.Field.MaxIters <= 0 {
		return fmt.Errorf("retmap: field MaxIters must be positive, got %d", ss.Field.MaxIters)
	}
	return nil
}

// Init validates the configuration, creates the random source, samples
// the initial weights, seeds the polarity markers, and normalizes, so
// that the matrix is ready for Step or Run.
func (ss *Sim) Init() error {
	if err := ss.Validate(); err != nil {
		return err
	}
	ss.Rnd = erand.NewSysRand(ss.RndSeed)
	ss.Pat.Rnd = ss.Rnd
	ss.Pat.Init()
	ss.Field.Update()
	ss.RelaxIters = 0

	ss.Syn.InitWeights(ss.Rnd)
	err := ss.Polarity.Seed(&ss.Syn.Wts, ss.Syn.XT, ss.Syn.YT, ss.Syn.XR, ss.Syn.YR, ss.Rnd)
	if err != nil {
		return err
	}
	return ss.Syn.Normalize()
}

// Step runs one loop: generate a pattern, relax the field, learn,
// normalize.
func (ss *Sim) Step() error {
	active, err := ss.Pat.Step()
	if err != nil {
		return err
	}
	h0 := ss.Syn.Drive(active)
	h, itrs, err := ss.Field.Relax(h0)
	ss.RelaxIters += itrs
	if err != nil {
		return fmt.Errorf("retmap: loop %d: %w", ss.Pat.Trial.Cur, err)
	}
	ss.Learn.Hebbian(&ss.Syn, h, ss.Field.Theta, active)
	return ss.Syn.Normalize()
}

// Run executes NumLoops loops, reporting progress at each decile when
// Verbose is set and snapshotting via SnapFunc every SnapInterval loops.
// Init must have been called first.
func (ss *Sim) Run() error {
	dec := ss.NumLoops / 10
	for n := 0; n < ss.NumLoops; n++ {
		if err := ss.Step(); err != nil {
			return err
		}
		if ss.Verbose && dec > 0 && (n+1)%dec == 0 {
			mpi.Printf("loop %d of %d (%d%%), %d relaxation iterations so far\n",
				n+1, ss.NumLoops, 100*(n+1)/ss.NumLoops, ss.RelaxIters)
		}
		if ss.SnapFunc != nil && ss.SnapInterval > 0 && (n+1)%ss.SnapInterval == 0 {
			if err := ss.SnapFunc(n+1, &ss.Syn); err != nil {
				return err
			}
		}
	}
	return nil
}
